package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/pkg/fair"
)

// OpenRound validates the request, locks the fee decomposition and payout
// reserve into a new game record and commits it in ResultRequested status.
// The pool row lock serializes rounds against the same pool; the player row
// lock serializes the nonce increment.
func (s *serv) OpenRound(ctx context.Context, req model.OpenRound) (*model.Game, error) {
	if !s.cfg.PlayingAllowed {
		return nil, gameerr.ErrFeatureDisabled
	}

	if req.ClientSeed == "" || len(req.ClientSeed) > fair.MaxSeedLength {
		return nil, gameerr.ErrInvalidClientSeed
	}
	if len(req.Metadata) > fair.MaxMetadataLength {
		return nil, gameerr.ErrInvalidMetadata
	}

	if err := fair.ValidateBet(req.Bet).Err(); err != nil {
		return nil, err
	}

	if req.CreatorFeeBps > s.cfg.MaxCreatorFeeBps {
		return nil, fmt.Errorf("creator fee %d bps exceeds maximum %d: %w",
			req.CreatorFeeBps, s.cfg.MaxCreatorFeeBps, gameerr.ErrFeeOutOfBounds)
	}

	// The edge is a property of the bet vector alone, so it is checked
	// before any locks are taken.
	if edge := fair.HouseEdgeBps(req.Bet); edge > s.cfg.MaxHouseEdgeBps {
		return nil, fmt.Errorf("house edge %d bps exceeds maximum %d: %w",
			edge, s.cfg.MaxHouseEdgeBps, gameerr.ErrHouseEdgeTooHigh)
	}

	var game *model.Game

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		pool, err := s.poolRepo.GetPoolForUpdate(txCtx, req.PoolID)
		if err != nil {
			return err
		}
		if !pool.IsActive {
			return gameerr.ErrPoolInactive
		}

		minWager := pool.MinWager
		if s.cfg.MinWager > minWager {
			minWager = s.cfg.MinWager
		}
		if err := fair.ValidateWager(req.Wager, minWager, pool.MaxWager, pool.TotalLiquidity); err != nil {
			return err
		}

		fees, err := fair.CalculateFees(
			req.Wager,
			req.CreatorFeeBps,
			pool.ProtocolFeeBps(s.cfg.ProtocolFeeBps),
			pool.PoolFeeBps(s.cfg.DefaultPoolFeeBps),
			req.JackpotFeeBps,
		)
		if err != nil {
			return err
		}

		// Reserve the worst-case payout so the pool can always honor the
		// round, no matter what other rounds settle in between.
		reserve, err := fair.Payout(fees.NetWager, fair.MaxMultiplier(req.Bet))
		if err != nil {
			return err
		}

		maxPayout, err := fair.MulDiv(pool.TotalLiquidity, pool.MaxPayoutBps(s.cfg.MaxPayoutBps), fair.BPSPerWhole)
		if err != nil {
			return err
		}
		if reserve > maxPayout {
			return fmt.Errorf("potential payout %d exceeds pool maximum %d: %w",
				reserve, maxPayout, gameerr.ErrMaxPayoutExceeded)
		}

		player, err := s.playerRepo.GetPlayerForUpdate(txCtx, req.Owner)
		if err != nil {
			if errors.Is(err, gameerr.ErrPlayerNotFound) {
				return gameerr.ErrRngNotReady
			}
			return err
		}
		if player.PendingSeedHash == "" {
			return gameerr.ErrRngNotReady
		}

		jackpotProb := fair.JackpotProbabilityUbps(s.cfg.BaseJackpotProbUbps, req.Wager, pool.TotalLiquidity)

		pool.TotalLiquidity, err = fair.SubChecked(pool.TotalLiquidity, reserve)
		if err != nil {
			return gameerr.ErrInsufficientLiquidity
		}

		player.Nonce++
		player.TotalWagered, err = fair.AddChecked(player.TotalWagered, req.Wager)
		if err != nil {
			return err
		}
		player.UpdatedAt = time.Now().UTC()

		game = &model.Game{
			ID:      uuid.New(),
			Owner:   req.Owner,
			Creator: req.Creator,
			PoolID:  req.PoolID,
			Nonce:   player.Nonce,
			Status:  model.GameStatusResultRequested,

			Wager:      req.Wager,
			Bet:        req.Bet,
			ClientSeed: req.ClientSeed,
			Metadata:   req.Metadata,

			CreatorFee:  fees.Creator,
			ProtocolFee: fees.Protocol,
			PoolFee:     fees.Pool,
			JackpotFee:  fees.Jackpot,
			NetWager:    fees.NetWager,

			PayoutReserve: reserve,

			CommittedSeedHash:      player.PendingSeedHash,
			JackpotProbabilityUbps: jackpotProb,

			ResultIndex: -1,
			CreatedAt:   time.Now().UTC(),
		}

		if err := s.gameRepo.CreateGame(txCtx, game); err != nil {
			return err
		}
		if err := s.playerRepo.UpdatePlayer(txCtx, player); err != nil {
			return err
		}
		return s.poolRepo.UpdatePool(txCtx, pool)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("round opened: game=%s owner=%s pool=%s nonce=%d wager=%d reserve=%d",
		game.ID, game.Owner, game.PoolID, game.Nonce, game.Wager, game.PayoutReserve)

	return game, nil
}
