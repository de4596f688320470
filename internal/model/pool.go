package model

import (
	"time"

	"github.com/google/uuid"
)

// Pool is a long-lived liquidity pool backing wagers in one underlying
// asset. TotalLiquidity and LPSupply move together except for fee accrual,
// which raises liquidity faster than supply.
type Pool struct {
	ID              uuid.UUID
	Authority       string
	UnderlyingAsset string

	LPSupply       uint64
	TotalLiquidity uint64
	JackpotBalance uint64
	BonusBalance   uint64

	MinWager   uint64
	MaxWager   uint64 // 0 means no cap
	PlaysCount uint64

	// Optional per-pool fee overrides. When the flag is false the protocol
	// config default applies.
	CustomPoolFee      bool
	CustomPoolFeeBps   uint64
	CustomProtoFee     bool
	CustomProtoFeeBps  uint64
	CustomMaxPayout    bool
	CustomMaxPayoutBps uint64

	IsActive  bool
	CreatedAt time.Time
}

// PoolFeeBps resolves the pool fee, falling back to the config default.
func (p *Pool) PoolFeeBps(defaultBps uint64) uint64 {
	if p.CustomPoolFee {
		return p.CustomPoolFeeBps
	}
	return defaultBps
}

// ProtocolFeeBps resolves the protocol fee, falling back to the default.
func (p *Pool) ProtocolFeeBps(defaultBps uint64) uint64 {
	if p.CustomProtoFee {
		return p.CustomProtoFeeBps
	}
	return defaultBps
}

// MaxPayoutBps resolves the max payout ceiling, falling back to the default.
func (p *Pool) MaxPayoutBps(defaultBps uint64) uint64 {
	if p.CustomMaxPayout {
		return p.CustomMaxPayoutBps
	}
	return defaultBps
}

// PoolAction tags a liquidity movement.
type PoolAction string

const (
	PoolActionDeposit  PoolAction = "deposit"
	PoolActionWithdraw PoolAction = "withdraw"
)

// PoolChange reports the effect of a deposit or withdrawal.
type PoolChange struct {
	PoolID        uuid.UUID
	Owner         string
	Action        PoolAction
	Amount        uint64
	LPAmount      uint64
	FeeAmount     uint64
	PostLiquidity uint64
	PostLPSupply  uint64
}

// CreatePool carries a pool creation request into the pool service.
type CreatePool struct {
	Authority       string
	UnderlyingAsset string
	MinWager        uint64
	MaxWager        uint64
}
