package pool

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"wagerpool_backend/internal/model"
	"wagerpool_backend/internal/repository"
	"wagerpool_backend/internal/service"
)

type serv struct {
	poolRepo  repository.PoolRepository
	statsRepo repository.StatsRepository
	txManager trm.Manager
	cfg       model.ProtocolConfig
}

// NewPoolService wires the liquidity pool service.
func NewPoolService(
	poolRepo repository.PoolRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	cfg model.ProtocolConfig,
) service.PoolService {
	return &serv{
		poolRepo:  poolRepo,
		statsRepo: statsRepo,
		txManager: txManager,
		cfg:       cfg,
	}
}
