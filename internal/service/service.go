package service

import (
	"context"

	"github.com/google/uuid"

	"wagerpool_backend/internal/model"
)

type GameService interface {
	// OpenRound validates the bet, locks fees and reserves, and creates the
	// game in ResultRequested status.
	OpenRound(ctx context.Context, req model.OpenRound) (*model.Game, error)

	// SettleRound reveals the committed seed, resolves the outcome and pays
	// it out. nextSeedHash becomes the player's commitment for the next
	// round. Settles each game at most once.
	SettleRound(ctx context.Context, gameID uuid.UUID, revealedSeed, nextSeedHash string) (*model.SettleResult, error)

	Game(ctx context.Context, gameID uuid.UUID) (*model.Game, error)
	Player(ctx context.Context, owner string) (*model.Player, error)

	// ProvideSeedHash installs the initial commitment for a player that has
	// none pending yet.
	ProvideSeedHash(ctx context.Context, owner, seedHash string) error
}

type PoolService interface {
	CreatePool(ctx context.Context, req model.CreatePool) (*model.Pool, error)
	Deposit(ctx context.Context, poolID uuid.UUID, owner string, amount uint64) (*model.PoolChange, error)
	Withdraw(ctx context.Context, poolID uuid.UUID, owner string, lpAmount uint64) (*model.PoolChange, error)
	Pool(ctx context.Context, poolID uuid.UUID) (*model.Pool, error)
}
