package game

import "time"

type OpenRoundRequest struct {
	PoolID        string   `json:"pool_id"`
	Creator       string   `json:"creator"`
	Wager         uint64   `json:"wager"`
	Bet           []uint32 `json:"bet"`
	ClientSeed    string   `json:"client_seed"`
	Metadata      string   `json:"metadata,omitempty"`
	CreatorFeeBps uint64   `json:"creator_fee_bps,omitempty"`
	JackpotFeeBps uint64   `json:"jackpot_fee_bps,omitempty"`
}

type SettleRoundRequest struct {
	RevealedSeed string `json:"revealed_seed"`
	NextSeedHash string `json:"next_seed_hash"`
}

type ProvideSeedHashRequest struct {
	SeedHash string `json:"seed_hash"`
}

type GameResponse struct {
	ID      string `json:"id"`
	Owner   string `json:"owner"`
	Creator string `json:"creator,omitempty"`
	PoolID  string `json:"pool_id"`
	Nonce   uint64 `json:"nonce"`
	Status  string `json:"status"`

	Wager      uint64   `json:"wager"`
	Bet        []uint32 `json:"bet"`
	ClientSeed string   `json:"client_seed"`
	Metadata   string   `json:"metadata,omitempty"`

	CreatorFee    uint64 `json:"creator_fee"`
	ProtocolFee   uint64 `json:"protocol_fee"`
	PoolFee       uint64 `json:"pool_fee"`
	JackpotFee    uint64 `json:"jackpot_fee"`
	NetWager      uint64 `json:"net_wager"`
	PayoutReserve uint64 `json:"payout_reserve"`

	CommittedSeedHash      string `json:"committed_seed_hash"`
	RevealedSeed           string `json:"revealed_seed,omitempty"`
	NextSeedHash           string `json:"next_seed_hash,omitempty"`
	JackpotProbabilityUbps uint64 `json:"jackpot_probability_ubps"`

	ResultIndex   int    `json:"result_index"`
	MultiplierBps uint64 `json:"multiplier_bps"`
	Payout        uint64 `json:"payout"`
	JackpotWon    bool   `json:"jackpot_won"`
	JackpotPayout uint64 `json:"jackpot_payout"`

	CreatedAt time.Time  `json:"created_at"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
}

type SettleRoundResponse struct {
	Game GameResponse `json:"game"`

	TotalPayout      uint64 `json:"total_payout"`
	JackpotToUser    uint64 `json:"jackpot_to_user"`
	JackpotToCreator uint64 `json:"jackpot_to_creator"`
	JackpotToPool    uint64 `json:"jackpot_to_pool"`
	JackpotToProto   uint64 `json:"jackpot_to_protocol"`
	PoolLiquidity    uint64 `json:"pool_liquidity"`
}

type PlayerResponse struct {
	Owner           string `json:"owner"`
	Nonce           uint64 `json:"nonce"`
	PendingSeedHash string `json:"pending_seed_hash,omitempty"`
	TotalWagered    uint64 `json:"total_wagered"`
	TotalWon        uint64 `json:"total_won"`
	GamesPlayed     uint64 `json:"games_played"`
}
