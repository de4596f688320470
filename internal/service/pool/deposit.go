package pool

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/pkg/fair"
)

// Deposit adds liquidity to a pool and mints LP shares at the current share
// price. The first deposit into an empty pool mints 1:1.
func (s *serv) Deposit(ctx context.Context, poolID uuid.UUID, owner string, amount uint64) (*model.PoolChange, error) {
	if !s.cfg.DepositsAllowed {
		return nil, gameerr.ErrFeatureDisabled
	}
	if amount == 0 {
		return nil, gameerr.ErrInvalidAmount
	}

	var change *model.PoolChange

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		pool, err := s.poolRepo.GetPoolForUpdate(txCtx, poolID)
		if err != nil {
			return err
		}
		if !pool.IsActive {
			return gameerr.ErrPoolInactive
		}

		lpAmount, err := fair.CalculateLPTokens(amount, pool.TotalLiquidity, pool.LPSupply)
		if err != nil {
			return err
		}

		pool.TotalLiquidity, err = fair.AddChecked(pool.TotalLiquidity, amount)
		if err != nil {
			return err
		}
		pool.LPSupply, err = fair.AddChecked(pool.LPSupply, lpAmount)
		if err != nil {
			return err
		}

		if err := s.poolRepo.UpdatePool(txCtx, pool); err != nil {
			return err
		}

		change = &model.PoolChange{
			PoolID:        pool.ID,
			Owner:         owner,
			Action:        model.PoolActionDeposit,
			Amount:        amount,
			LPAmount:      lpAmount,
			PostLiquidity: pool.TotalLiquidity,
			PostLPSupply:  pool.LPSupply,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.RecordPoolChange(model.PoolActionDeposit, amount)

	log.Printf("pool deposit: pool=%s owner=%s amount=%d lp=%d", change.PoolID, owner, amount, change.LPAmount)

	return change, nil
}
