package protocol

type ConfigResponse struct {
	ProtocolFeeBps    uint64 `json:"protocol_fee_bps"`
	DefaultPoolFeeBps uint64 `json:"default_pool_fee_bps"`

	MaxCreatorFeeBps uint64 `json:"max_creator_fee_bps"`
	MaxHouseEdgeBps  uint64 `json:"max_house_edge_bps"`
	MaxPayoutBps     uint64 `json:"max_payout_bps"`

	JackpotToUserBps     uint64 `json:"jackpot_to_user_bps"`
	JackpotToCreatorBps  uint64 `json:"jackpot_to_creator_bps"`
	JackpotToPoolBps     uint64 `json:"jackpot_to_pool_bps"`
	JackpotToProtocolBps uint64 `json:"jackpot_to_protocol_bps"`

	BonusToJackpotRatioBps uint64 `json:"bonus_to_jackpot_ratio_bps"`
	BaseJackpotProbUbps    uint64 `json:"base_jackpot_probability_ubps"`

	PoolWithdrawFeeBps uint64 `json:"pool_withdraw_fee_bps"`
	MinWager           uint64 `json:"min_wager"`

	PoolCreationAllowed bool `json:"pool_creation_allowed"`
	DepositsAllowed     bool `json:"deposits_allowed"`
	WithdrawalsAllowed  bool `json:"withdrawals_allowed"`
	PlayingAllowed      bool `json:"playing_allowed"`
}

type StatsResponse struct {
	RoundsSettled  uint64 `json:"rounds_settled"`
	TotalWagered   uint64 `json:"total_wagered"`
	TotalPaidOut   uint64 `json:"total_paid_out"`
	JackpotsHit    uint64 `json:"jackpots_hit"`
	TotalDeposited uint64 `json:"total_deposited"`
	TotalWithdrawn uint64 `json:"total_withdrawn"`
}
