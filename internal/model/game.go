package model

import (
	"time"

	"github.com/google/uuid"
)

// GameStatus is the lifecycle of a game record. Transitions move strictly
// forward: AwaitingResult is the implicit pre-creation state, a record is
// created directly in ResultRequested and settles exactly once into Ready.
type GameStatus string

const (
	GameStatusAwaitingResult  GameStatus = "awaiting_result"
	GameStatusResultRequested GameStatus = "result_requested"
	GameStatusReady           GameStatus = "ready"
)

// Game is one in-flight or settled round.
type Game struct {
	ID      uuid.UUID
	Owner   string
	Creator string
	PoolID  uuid.UUID
	Nonce   uint64
	Status  GameStatus

	Wager      uint64
	Bet        []uint32
	ClientSeed string
	Metadata   string

	// Fees and net wager, locked at round open.
	CreatorFee  uint64
	ProtocolFee uint64
	PoolFee     uint64
	JackpotFee  uint64
	NetWager    uint64

	// Liquidity reserved against the round's maximum payout at open,
	// released back to the pool at settlement.
	PayoutReserve uint64

	// Commit-reveal fields. CommittedSeedHash is fixed at open; the rest are
	// populated only at settlement.
	CommittedSeedHash string
	RevealedSeed      string
	NextSeedHash      string

	JackpotProbabilityUbps uint64

	// Settlement outcome.
	ResultIndex   int
	MultiplierBps uint64
	Payout        uint64
	JackpotWon    bool
	JackpotPayout uint64

	CreatedAt time.Time
	SettledAt time.Time
}

// OpenRound carries a bet placement request into the game service.
type OpenRound struct {
	PoolID        uuid.UUID
	Owner         string
	Creator       string
	Wager         uint64
	Bet           []uint32
	ClientSeed    string
	Metadata      string
	CreatorFeeBps uint64
	JackpotFeeBps uint64
}

// SettleResult is the full audit trail of a settled round, also emitted to
// the log so third parties can re-derive the outcome.
type SettleResult struct {
	Game *Game

	TotalPayout      uint64
	JackpotToUser    uint64
	JackpotToCreator uint64
	JackpotToPool    uint64
	JackpotToProto   uint64
	PoolLiquidity    uint64
}
