package pool

import "time"

type CreatePoolRequest struct {
	UnderlyingAsset string `json:"underlying_asset"`
	MinWager        uint64 `json:"min_wager,omitempty"`
	MaxWager        uint64 `json:"max_wager,omitempty"`
}

type DepositRequest struct {
	Amount uint64 `json:"amount"`
}

type WithdrawRequest struct {
	LPAmount uint64 `json:"lp_amount"`
}

type PoolResponse struct {
	ID              string `json:"id"`
	Authority       string `json:"authority"`
	UnderlyingAsset string `json:"underlying_asset"`

	LPSupply       uint64 `json:"lp_supply"`
	TotalLiquidity uint64 `json:"total_liquidity"`
	JackpotBalance uint64 `json:"jackpot_balance"`
	BonusBalance   uint64 `json:"bonus_balance"`

	MinWager   uint64 `json:"min_wager"`
	MaxWager   uint64 `json:"max_wager"`
	PlaysCount uint64 `json:"plays_count"`
	IsActive   bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

type PoolChangeResponse struct {
	PoolID        string `json:"pool_id"`
	Action        string `json:"action"`
	Amount        uint64 `json:"amount"`
	LPAmount      uint64 `json:"lp_amount"`
	FeeAmount     uint64 `json:"fee_amount,omitempty"`
	PostLiquidity uint64 `json:"post_liquidity"`
	PostLPSupply  uint64 `json:"post_lp_supply"`
}
