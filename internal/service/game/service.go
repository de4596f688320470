package game

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"wagerpool_backend/internal/model"
	"wagerpool_backend/internal/repository"
	"wagerpool_backend/internal/service"
)

type serv struct {
	gameRepo   repository.GameRepository
	poolRepo   repository.PoolRepository
	playerRepo repository.PlayerRepository
	statsRepo  repository.StatsRepository
	txManager  trm.Manager
	cfg        model.ProtocolConfig
}

// NewGameService wires the round lifecycle service. cfg is captured once;
// runtime edits require a restart and never affect in-flight rounds.
func NewGameService(
	gameRepo repository.GameRepository,
	poolRepo repository.PoolRepository,
	playerRepo repository.PlayerRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	cfg model.ProtocolConfig,
) service.GameService {
	return &serv{
		gameRepo:   gameRepo,
		poolRepo:   poolRepo,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		txManager:  txManager,
		cfg:        cfg,
	}
}
