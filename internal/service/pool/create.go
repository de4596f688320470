package pool

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
)

// CreatePool registers a new empty pool. The pool starts active with zero
// liquidity; the first deposit bootstraps the share price at 1:1.
func (s *serv) CreatePool(ctx context.Context, req model.CreatePool) (*model.Pool, error) {
	if !s.cfg.PoolCreationAllowed {
		return nil, gameerr.ErrFeatureDisabled
	}
	if req.Authority == "" || req.UnderlyingAsset == "" {
		return nil, gameerr.ErrInvalidPoolParams
	}

	pool := &model.Pool{
		ID:              uuid.New(),
		Authority:       req.Authority,
		UnderlyingAsset: req.UnderlyingAsset,
		MinWager:        req.MinWager,
		MaxWager:        req.MaxWager,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.poolRepo.CreatePool(ctx, pool); err != nil {
		return nil, err
	}

	log.Printf("pool created: pool=%s authority=%s asset=%s", pool.ID, pool.Authority, pool.UnderlyingAsset)

	return pool, nil
}

// Pool returns the pool record.
func (s *serv) Pool(ctx context.Context, poolID uuid.UUID) (*model.Pool, error) {
	return s.poolRepo.GetPool(ctx, poolID)
}
