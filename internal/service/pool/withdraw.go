package pool

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/pkg/fair"
)

// Withdraw burns LP shares and releases the proportional liquidity, minus
// the withdraw fee. The fee stays in the pool, raising the share price for
// the remaining holders.
func (s *serv) Withdraw(ctx context.Context, poolID uuid.UUID, owner string, lpAmount uint64) (*model.PoolChange, error) {
	if !s.cfg.WithdrawalsAllowed {
		return nil, gameerr.ErrFeatureDisabled
	}
	if lpAmount == 0 {
		return nil, gameerr.ErrInvalidAmount
	}

	var change *model.PoolChange

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		pool, err := s.poolRepo.GetPoolForUpdate(txCtx, poolID)
		if err != nil {
			return err
		}

		if lpAmount > pool.LPSupply {
			return gameerr.ErrWithdrawalExceedsSupply
		}

		amount, err := fair.CalculateWithdrawAmount(lpAmount, pool.TotalLiquidity, pool.LPSupply)
		if err != nil {
			return err
		}

		fee, err := fair.Fee(amount, s.cfg.PoolWithdrawFeeBps)
		if err != nil {
			return err
		}
		released := amount - fee

		pool.TotalLiquidity, err = fair.SubChecked(pool.TotalLiquidity, released)
		if err != nil {
			return gameerr.ErrInsufficientLiquidity
		}
		pool.LPSupply -= lpAmount

		if err := s.poolRepo.UpdatePool(txCtx, pool); err != nil {
			return err
		}

		change = &model.PoolChange{
			PoolID:        pool.ID,
			Owner:         owner,
			Action:        model.PoolActionWithdraw,
			Amount:        released,
			LPAmount:      lpAmount,
			FeeAmount:     fee,
			PostLiquidity: pool.TotalLiquidity,
			PostLPSupply:  pool.LPSupply,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.RecordPoolChange(model.PoolActionWithdraw, change.Amount)

	log.Printf("pool withdrawal: pool=%s owner=%s lp=%d released=%d fee=%d",
		change.PoolID, owner, change.LPAmount, change.Amount, change.FeeAmount)

	return change, nil
}
