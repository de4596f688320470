package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
)

func TestOpenRoundLocksFeesAndReserve(t *testing.T) {
	env := newTestEnv(model.DefaultProtocolConfig())

	game, err := env.svc.OpenRound(context.Background(), model.OpenRound{
		PoolID:        env.poolID,
		Owner:         env.owner,
		Creator:       env.creator,
		Wager:         1_000_000,
		Bet:           []uint32{50, 50},
		ClientSeed:    "client-1",
		CreatorFeeBps: 100,
		JackpotFeeBps: 50,
	})
	require.NoError(t, err)

	require.Equal(t, model.GameStatusResultRequested, game.Status)
	require.Equal(t, uint64(7), game.Nonce)
	require.Equal(t, testSeedHash, game.CommittedSeedHash)

	// 1% creator, 2% protocol, 1% pool, 0.5% jackpot.
	require.Equal(t, uint64(10_000), game.CreatorFee)
	require.Equal(t, uint64(20_000), game.ProtocolFee)
	require.Equal(t, uint64(10_000), game.PoolFee)
	require.Equal(t, uint64(5_000), game.JackpotFee)
	require.Equal(t, uint64(955_000), game.NetWager)

	// Reserve covers the worst case: netWager at the 2x multiplier.
	require.Equal(t, uint64(1_910_000), game.PayoutReserve)

	// Base probability 1000 ubps scaled by the 100 bps wager share.
	require.Equal(t, uint64(100_000), game.JackpotProbabilityUbps)

	pool, err := env.pools.GetPool(context.Background(), env.poolID)
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000-1_910_000), pool.TotalLiquidity)

	player, err := env.players.GetPlayer(context.Background(), env.owner)
	require.NoError(t, err)
	require.Equal(t, uint64(7), player.Nonce)
	require.Equal(t, uint64(1_000_000), player.TotalWagered)
}

func TestOpenRoundRequiresCommitment(t *testing.T) {
	env := newTestEnv(zeroFeeConfig())

	_, err := env.svc.OpenRound(context.Background(), model.OpenRound{
		PoolID:     env.poolID,
		Owner:      "stranger",
		Wager:      1_000_000,
		Bet:        []uint32{50, 50},
		ClientSeed: "client-1",
	})
	require.ErrorIs(t, err, gameerr.ErrRngNotReady)

	// A player whose commitment was consumed but never replaced is also
	// rejected.
	player := env.players.players[env.owner]
	player.PendingSeedHash = ""
	env.players.players[env.owner] = player

	_, err = openCoinFlip(env, 1_000_000)
	require.ErrorIs(t, err, gameerr.ErrRngNotReady)
}

func TestOpenRoundValidation(t *testing.T) {
	env := newTestEnv(zeroFeeConfig())

	_, err := env.svc.OpenRound(context.Background(), model.OpenRound{
		PoolID:     env.poolID,
		Owner:      env.owner,
		Wager:      1_000_000,
		Bet:        []uint32{100},
		ClientSeed: "client-1",
	})
	require.ErrorIs(t, err, gameerr.ErrTooFewOutcomes)

	_, err = openCoinFlip(env, 10)
	require.ErrorIs(t, err, gameerr.ErrInvalidWager)

	_, err = env.svc.OpenRound(context.Background(), model.OpenRound{
		PoolID: env.poolID,
		Owner:  env.owner,
		Wager:  1_000_000,
		Bet:    []uint32{50, 50},
	})
	require.ErrorIs(t, err, gameerr.ErrInvalidClientSeed)

	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	_, err = env.svc.OpenRound(context.Background(), model.OpenRound{
		PoolID:     env.poolID,
		Owner:      env.owner,
		Wager:      1_000_000,
		Bet:        []uint32{50, 50},
		ClientSeed: "client-1",
		Metadata:   string(long),
	})
	require.ErrorIs(t, err, gameerr.ErrInvalidMetadata)
}

func TestOpenRoundFeatureDisabled(t *testing.T) {
	cfg := zeroFeeConfig()
	cfg.PlayingAllowed = false
	env := newTestEnv(cfg)

	_, err := openCoinFlip(env, 1_000_000)
	require.ErrorIs(t, err, gameerr.ErrFeatureDisabled)

	pool, err := env.pools.GetPool(context.Background(), env.poolID)
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000), pool.TotalLiquidity)
}

func TestOpenRoundCreatorFeeCeiling(t *testing.T) {
	env := newTestEnv(model.DefaultProtocolConfig())

	_, err := env.svc.OpenRound(context.Background(), model.OpenRound{
		PoolID:        env.poolID,
		Owner:         env.owner,
		Creator:       env.creator,
		Wager:         1_000_000,
		Bet:           []uint32{50, 50},
		ClientSeed:    "client-1",
		CreatorFeeBps: 600,
	})
	require.ErrorIs(t, err, gameerr.ErrFeeOutOfBounds)
}

func TestOpenRoundInactivePool(t *testing.T) {
	env := newTestEnv(zeroFeeConfig())
	pool := env.pools.pools[env.poolID]
	pool.IsActive = false
	env.pools.pools[env.poolID] = pool

	_, err := openCoinFlip(env, 1_000_000)
	require.ErrorIs(t, err, gameerr.ErrPoolInactive)
}

func TestOpenRoundMaxPayoutExceeded(t *testing.T) {
	cfg := zeroFeeConfig()
	cfg.MaxPayoutBps = 50
	env := newTestEnv(cfg)

	// 100x top multiplier against a 0.5% payout cap.
	_, err := env.svc.OpenRound(context.Background(), model.OpenRound{
		PoolID:     env.poolID,
		Owner:      env.owner,
		Wager:      10_000,
		Bet:        []uint32{1, 99},
		ClientSeed: "client-1",
	})
	require.ErrorIs(t, err, gameerr.ErrMaxPayoutExceeded)
}
