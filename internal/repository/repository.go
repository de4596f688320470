package repository

import (
	"context"

	"github.com/google/uuid"

	"wagerpool_backend/internal/model"
)

type GameRepository interface {
	CreateGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id uuid.UUID) (*model.Game, error)

	// SettleGame writes the settlement fields and flips the status from
	// ResultRequested to Ready in one conditional update. Returns false when
	// the game was not in ResultRequested, so a concurrent or repeated
	// settlement can never apply twice.
	SettleGame(ctx context.Context, game *model.Game) (bool, error)
}

type PoolRepository interface {
	CreatePool(ctx context.Context, pool *model.Pool) error
	GetPool(ctx context.Context, id uuid.UUID) (*model.Pool, error)

	// GetPoolForUpdate locks the pool row for the rest of the transaction.
	// Operations against the same pool serialize on this lock; different
	// pools never contend.
	GetPoolForUpdate(ctx context.Context, id uuid.UUID) (*model.Pool, error)
	UpdatePool(ctx context.Context, pool *model.Pool) error
}

type PlayerRepository interface {
	GetPlayer(ctx context.Context, owner string) (*model.Player, error)
	GetPlayerForUpdate(ctx context.Context, owner string) (*model.Player, error)
	CreatePlayer(ctx context.Context, player *model.Player) error
	UpdatePlayer(ctx context.Context, player *model.Player) error

	// SetPendingSeedHash installs a new commitment only when the stored one
	// still equals old. Returns false when the compare-and-set lost.
	SetPendingSeedHash(ctx context.Context, owner, old, next string) (bool, error)
}

// StatsRepository aggregates settlement statistics for reporting. Not
// settlement-critical.
type StatsRepository interface {
	RecordSettlement(wager, payout uint64, jackpotWon bool)
	RecordPoolChange(action model.PoolAction, amount uint64)
	Snapshot() model.ProtocolStats
}
