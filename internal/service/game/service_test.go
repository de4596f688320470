package game

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/internal/repository"
	"wagerpool_backend/internal/repository/stats_repo"
	"wagerpool_backend/internal/service"
)

// Precomputed commit-reveal vector shared across the tests. The digest for
// (seed-alpha, client-1, nonce 7) yields result draw 14 mod 100 and jackpot
// draw 338533.
const (
	testSeed     = "seed-alpha"
	testSeedHash = "ba316cd7abc9b7dc6f5cec2defbf1cc58860fda6c517901400c681b729c1e5d8"
	testNextSeed = "seed-beta"
)

// txManagerStub runs the closure directly. The fakes have no transaction
// semantics to manage.
type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeGameRepo struct {
	games map[uuid.UUID]model.Game
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[uuid.UUID]model.Game)}
}

func (f *fakeGameRepo) CreateGame(_ context.Context, game *model.Game) error {
	f.games[game.ID] = *game
	return nil
}

func (f *fakeGameRepo) GetGame(_ context.Context, id uuid.UUID) (*model.Game, error) {
	game, ok := f.games[id]
	if !ok {
		return nil, gameerr.ErrGameNotFound
	}
	return &game, nil
}

func (f *fakeGameRepo) SettleGame(_ context.Context, game *model.Game) (bool, error) {
	stored, ok := f.games[game.ID]
	if !ok {
		return false, gameerr.ErrGameNotFound
	}
	if stored.Status != model.GameStatusResultRequested {
		return false, nil
	}
	f.games[game.ID] = *game
	return true, nil
}

type fakePoolRepo struct {
	pools map[uuid.UUID]model.Pool
}

func newFakePoolRepo() *fakePoolRepo {
	return &fakePoolRepo{pools: make(map[uuid.UUID]model.Pool)}
}

func (f *fakePoolRepo) CreatePool(_ context.Context, pool *model.Pool) error {
	f.pools[pool.ID] = *pool
	return nil
}

func (f *fakePoolRepo) GetPool(_ context.Context, id uuid.UUID) (*model.Pool, error) {
	pool, ok := f.pools[id]
	if !ok {
		return nil, gameerr.ErrPoolNotFound
	}
	return &pool, nil
}

func (f *fakePoolRepo) GetPoolForUpdate(ctx context.Context, id uuid.UUID) (*model.Pool, error) {
	return f.GetPool(ctx, id)
}

func (f *fakePoolRepo) UpdatePool(_ context.Context, pool *model.Pool) error {
	if _, ok := f.pools[pool.ID]; !ok {
		return gameerr.ErrPoolNotFound
	}
	f.pools[pool.ID] = *pool
	return nil
}

type fakePlayerRepo struct {
	players map[string]model.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[string]model.Player)}
}

func (f *fakePlayerRepo) GetPlayer(_ context.Context, owner string) (*model.Player, error) {
	player, ok := f.players[owner]
	if !ok {
		return nil, gameerr.ErrPlayerNotFound
	}
	return &player, nil
}

func (f *fakePlayerRepo) GetPlayerForUpdate(ctx context.Context, owner string) (*model.Player, error) {
	return f.GetPlayer(ctx, owner)
}

func (f *fakePlayerRepo) CreatePlayer(_ context.Context, player *model.Player) error {
	if _, ok := f.players[player.Owner]; ok {
		return nil
	}
	f.players[player.Owner] = *player
	return nil
}

func (f *fakePlayerRepo) UpdatePlayer(_ context.Context, player *model.Player) error {
	if _, ok := f.players[player.Owner]; !ok {
		return gameerr.ErrPlayerNotFound
	}
	f.players[player.Owner] = *player
	return nil
}

func (f *fakePlayerRepo) SetPendingSeedHash(_ context.Context, owner, old, next string) (bool, error) {
	player, ok := f.players[owner]
	if !ok {
		return false, nil
	}
	if player.PendingSeedHash != old {
		return false, nil
	}
	player.PendingSeedHash = next
	f.players[owner] = player
	return true, nil
}

// testEnv bundles a game service over fresh fakes with one funded pool and
// one committed player.
type testEnv struct {
	svc     service.GameService
	games   *fakeGameRepo
	pools   *fakePoolRepo
	players *fakePlayerRepo
	stats   repository.StatsRepository
	poolID  uuid.UUID
	owner   string
	creator string
}

func newTestEnv(cfg model.ProtocolConfig) *testEnv {
	env := &testEnv{
		games:   newFakeGameRepo(),
		pools:   newFakePoolRepo(),
		players: newFakePlayerRepo(),
		stats:   stats_repo.NewStatsRepository(),
		poolID:  uuid.New(),
		owner:   "player-1",
		creator: "creator-1",
	}

	env.pools.pools[env.poolID] = model.Pool{
		ID:              env.poolID,
		Authority:       "authority-1",
		UnderlyingAsset: "USDC",
		LPSupply:        100_000_000,
		TotalLiquidity:  100_000_000,
		MinWager:        1_000,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}

	env.players.players[env.owner] = model.Player{
		Owner:           env.owner,
		Nonce:           6,
		PendingSeedHash: testSeedHash,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	env.svc = NewGameService(env.games, env.pools, env.players, env.stats, txManagerStub{}, cfg)
	return env
}

// zeroFeeConfig keeps every fee at zero so payout math is easy to follow in
// the assertions.
func zeroFeeConfig() model.ProtocolConfig {
	cfg := model.DefaultProtocolConfig()
	cfg.ProtocolFeeBps = 0
	cfg.DefaultPoolFeeBps = 0
	cfg.MaxHouseEdgeBps = 10_000
	cfg.MinWager = 1_000
	cfg.BaseJackpotProbUbps = 0
	return cfg
}

func openCoinFlip(env *testEnv, wager uint64) (*model.Game, error) {
	return env.svc.OpenRound(context.Background(), model.OpenRound{
		PoolID:     env.poolID,
		Owner:      env.owner,
		Creator:    env.creator,
		Wager:      wager,
		Bet:        []uint32{50, 50},
		ClientSeed: "client-1",
	})
}
