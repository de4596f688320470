package pool

import (
	"context"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/internal/repository/stats_repo"
	"wagerpool_backend/internal/service"
)

type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestService(cfg model.ProtocolConfig) (service.PoolService, *fakePoolRepo) {
	repo := newFakePoolRepo()
	svc := NewPoolService(repo, stats_repo.NewStatsRepository(), txManagerStub{}, cfg)
	return svc, repo
}

func seedPool(repo *fakePoolRepo, liquidity, supply uint64) uuid.UUID {
	id := uuid.New()
	repo.pools[id] = model.Pool{
		ID:              id,
		Authority:       "authority-1",
		UnderlyingAsset: "USDC",
		TotalLiquidity:  liquidity,
		LPSupply:        supply,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}
	return id
}

func TestCreatePool(t *testing.T) {
	svc, repo := newTestService(model.DefaultProtocolConfig())

	pool, err := svc.CreatePool(context.Background(), model.CreatePool{
		Authority:       "authority-1",
		UnderlyingAsset: "USDC",
		MinWager:        1_000,
	})
	require.NoError(t, err)
	require.True(t, pool.IsActive)
	require.Zero(t, pool.TotalLiquidity)
	require.Zero(t, pool.LPSupply)

	stored, err := repo.GetPool(context.Background(), pool.ID)
	require.NoError(t, err)
	require.Equal(t, "USDC", stored.UnderlyingAsset)

	_, err = svc.CreatePool(context.Background(), model.CreatePool{UnderlyingAsset: "USDC"})
	require.ErrorIs(t, err, gameerr.ErrInvalidPoolParams)
}

func TestCreatePoolDisabled(t *testing.T) {
	cfg := model.DefaultProtocolConfig()
	cfg.PoolCreationAllowed = false
	svc, _ := newTestService(cfg)

	_, err := svc.CreatePool(context.Background(), model.CreatePool{
		Authority:       "authority-1",
		UnderlyingAsset: "USDC",
	})
	require.ErrorIs(t, err, gameerr.ErrFeatureDisabled)
}

func TestDepositBootstrap(t *testing.T) {
	svc, repo := newTestService(model.DefaultProtocolConfig())
	poolID := seedPool(repo, 0, 0)

	change, err := svc.Deposit(context.Background(), poolID, "lp-1", 5_000)
	require.NoError(t, err)

	// The first deposit mints shares 1:1.
	require.Equal(t, uint64(5_000), change.LPAmount)
	require.Equal(t, uint64(5_000), change.PostLiquidity)
	require.Equal(t, uint64(5_000), change.PostLPSupply)
}

func TestDepositProportional(t *testing.T) {
	svc, repo := newTestService(model.DefaultProtocolConfig())
	poolID := seedPool(repo, 10_000, 5_000)

	change, err := svc.Deposit(context.Background(), poolID, "lp-1", 1_000)
	require.NoError(t, err)

	// Share price is 2, so 1000 of liquidity mints 500 shares.
	require.Equal(t, uint64(500), change.LPAmount)
	require.Equal(t, uint64(11_000), change.PostLiquidity)
	require.Equal(t, uint64(5_500), change.PostLPSupply)
}

func TestDepositRejected(t *testing.T) {
	cfg := model.DefaultProtocolConfig()
	svc, repo := newTestService(cfg)
	poolID := seedPool(repo, 10_000, 5_000)

	_, err := svc.Deposit(context.Background(), poolID, "lp-1", 0)
	require.ErrorIs(t, err, gameerr.ErrInvalidAmount)

	_, err = svc.Deposit(context.Background(), uuid.New(), "lp-1", 1_000)
	require.ErrorIs(t, err, gameerr.ErrPoolNotFound)

	inactive := repo.pools[poolID]
	inactive.IsActive = false
	repo.pools[poolID] = inactive
	_, err = svc.Deposit(context.Background(), poolID, "lp-1", 1_000)
	require.ErrorIs(t, err, gameerr.ErrPoolInactive)

	cfg.DepositsAllowed = false
	svc, repo = newTestService(cfg)
	poolID = seedPool(repo, 10_000, 5_000)
	_, err = svc.Deposit(context.Background(), poolID, "lp-1", 1_000)
	require.ErrorIs(t, err, gameerr.ErrFeatureDisabled)
}

func TestWithdraw(t *testing.T) {
	svc, repo := newTestService(model.DefaultProtocolConfig())
	poolID := seedPool(repo, 10_000, 5_000)

	change, err := svc.Withdraw(context.Background(), poolID, "lp-1", 500)
	require.NoError(t, err)

	// 500 shares claim 1000 of liquidity; the 1% withdraw fee stays in the
	// pool for the remaining holders.
	require.Equal(t, uint64(990), change.Amount)
	require.Equal(t, uint64(10), change.FeeAmount)
	require.Equal(t, uint64(9_010), change.PostLiquidity)
	require.Equal(t, uint64(4_500), change.PostLPSupply)

	// The share price rose for everyone left.
	stored, err := repo.GetPool(context.Background(), poolID)
	require.NoError(t, err)
	require.Greater(t,
		stored.TotalLiquidity*1_000/stored.LPSupply,
		uint64(10_000)*1_000/uint64(5_000),
	)
}

func TestWithdrawExceedsSupply(t *testing.T) {
	svc, repo := newTestService(model.DefaultProtocolConfig())
	poolID := seedPool(repo, 10_000, 5_000)

	_, err := svc.Withdraw(context.Background(), poolID, "lp-1", 5_001)
	require.ErrorIs(t, err, gameerr.ErrWithdrawalExceedsSupply)
}

func TestWithdrawDisabled(t *testing.T) {
	cfg := model.DefaultProtocolConfig()
	cfg.WithdrawalsAllowed = false
	svc, repo := newTestService(cfg)
	poolID := seedPool(repo, 10_000, 5_000)

	_, err := svc.Withdraw(context.Background(), poolID, "lp-1", 500)
	require.ErrorIs(t, err, gameerr.ErrFeatureDisabled)
}
