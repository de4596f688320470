package model

import "wagerpool_backend/pkg/fair"

// ProtocolConfig is the process-wide protocol settings snapshot. It is read
// once at bet-placement time and its derived values are locked into the game
// record, so later edits never retroactively affect an in-flight round.
type ProtocolConfig struct {
	ProtocolFeeBps    uint64 `yaml:"protocol_fee_bps"`
	DefaultPoolFeeBps uint64 `yaml:"default_pool_fee_bps"`

	MaxCreatorFeeBps uint64 `yaml:"max_creator_fee_bps"`
	MaxHouseEdgeBps  uint64 `yaml:"max_house_edge_bps"`
	MaxPayoutBps     uint64 `yaml:"max_payout_bps"`

	JackpotSplit           fair.JackpotSplit `yaml:"jackpot_split"`
	BonusToJackpotRatioBps uint64            `yaml:"bonus_to_jackpot_ratio_bps"`
	BaseJackpotProbUbps    uint64            `yaml:"base_jackpot_probability_ubps"`

	PoolWithdrawFeeBps uint64 `yaml:"pool_withdraw_fee_bps"`
	MinWager           uint64 `yaml:"min_wager"`

	PoolCreationAllowed bool `yaml:"pool_creation_allowed"`
	DepositsAllowed     bool `yaml:"deposits_allowed"`
	WithdrawalsAllowed  bool `yaml:"withdrawals_allowed"`
	PlayingAllowed      bool `yaml:"playing_allowed"`
}

// DefaultProtocolConfig returns the protocol defaults: 2% protocol fee,
// 1% pool fee, 70/10/10/10 jackpot split, 3% max house edge, 5% max creator
// fee, 100% max payout, 1% withdraw fee.
func DefaultProtocolConfig() ProtocolConfig {
	return ProtocolConfig{
		ProtocolFeeBps:    200,
		DefaultPoolFeeBps: 100,
		MaxCreatorFeeBps:  500,
		MaxHouseEdgeBps:   300,
		MaxPayoutBps:      10_000,
		JackpotSplit: fair.JackpotSplit{
			ToUserBps:     7_000,
			ToCreatorBps:  1_000,
			ToPoolBps:     1_000,
			ToProtocolBps: 1_000,
		},
		BonusToJackpotRatioBps: 1_000,
		BaseJackpotProbUbps:    1_000,
		PoolWithdrawFeeBps:     100,
		MinWager:               1_000,
		PoolCreationAllowed:    true,
		DepositsAllowed:        true,
		WithdrawalsAllowed:     true,
		PlayingAllowed:         true,
	}
}
