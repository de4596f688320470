package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	gameAPI "wagerpool_backend/internal/api/game"
	poolAPI "wagerpool_backend/internal/api/pool"
	protocolAPI "wagerpool_backend/internal/api/protocol"
	"wagerpool_backend/internal/config"
	"wagerpool_backend/internal/config/env"
	"wagerpool_backend/internal/middleware"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/internal/repository"
	"wagerpool_backend/internal/repository/game_repo"
	"wagerpool_backend/internal/repository/player_repo"
	"wagerpool_backend/internal/repository/pool_repo"
	"wagerpool_backend/internal/repository/stats_repo"
	"wagerpool_backend/internal/service"
	"wagerpool_backend/internal/service/game"
	"wagerpool_backend/internal/service/pool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Protocol settings
	protocolCfg *model.ProtocolConfig

	// Game bits
	gameRepo   repository.GameRepository
	playerRepo repository.PlayerRepository
	gameServ   service.GameService
	gameHand   *gameAPI.Handler

	// Pool bits
	poolRepo repository.PoolRepository
	poolServ service.PoolService
	poolHand *poolAPI.Handler

	// Stats and protocol surface
	statsRepo repository.StatsRepository
	protoHand *protocolAPI.Handler

	// Router and HTTP config
	jwtCfg  config.JWTConfig
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) ProtocolCfg() model.ProtocolConfig {
	if sp.protocolCfg == nil {
		cfg, err := env.NewProtocolConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get protocol config: " + err.Error())
		}
		sp.protocolCfg = &cfg
	}
	return *sp.protocolCfg
}

func (sp *ServiceProvider) GameRepository(ctx context.Context) repository.GameRepository {
	if sp.gameRepo == nil {
		sp.gameRepo = game_repo.NewGameRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) PoolRepository(ctx context.Context) repository.PoolRepository {
	if sp.poolRepo == nil {
		sp.poolRepo = pool_repo.NewPoolRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.poolRepo
}

func (sp *ServiceProvider) PlayerRepository(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.GameRepository(ctx),
			sp.PoolRepository(ctx),
			sp.PlayerRepository(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.ProtocolCfg(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) PoolService(ctx context.Context) service.PoolService {
	if sp.poolServ == nil {
		sp.poolServ = pool.NewPoolService(
			sp.PoolRepository(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.ProtocolCfg(),
		)
	}
	return sp.poolServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) PoolHandler(ctx context.Context) *poolAPI.Handler {
	if sp.poolHand == nil {
		sp.poolHand = poolAPI.NewHandler(poolAPI.HandlerDeps{Serv: sp.PoolService(ctx)})
	}
	return sp.poolHand
}

func (sp *ServiceProvider) ProtocolHandler() *protocolAPI.Handler {
	if sp.protoHand == nil {
		sp.protoHand = protocolAPI.NewHandler(protocolAPI.HandlerDeps{
			Cfg:       sp.ProtocolCfg(),
			StatsRepo: sp.StatsRepository(),
		})
	}
	return sp.protoHand
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		sp.httpCfg = env.NewHTTPConfig()
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		gameHandler := sp.GameHandler(ctx)
		poolHandler := sp.PoolHandler(ctx)
		protoHandler := sp.ProtocolHandler()
		auth := middleware.Auth(sp.JWTCfg())

		// Mutations require an authenticated caller.
		r.Group(func(rr chi.Router) {
			rr.Use(auth)

			rr.Post("/games/open", gameHandler.Open)
			rr.Post("/games/{id}/settle", gameHandler.Settle)
			rr.Post("/players/{owner}/seed-hash", gameHandler.ProvideSeedHash)

			rr.Post("/pools", poolHandler.Create)
			rr.Post("/pools/{id}/deposit", poolHandler.Deposit)
			rr.Post("/pools/{id}/withdraw", poolHandler.Withdraw)
		})

		// Read surface is public.
		r.Get("/games/{id}", gameHandler.Get)
		r.Get("/players/{owner}", gameHandler.GetPlayer)
		r.Get("/pools/{id}", poolHandler.Get)
		r.Get("/config", protoHandler.Config)
		r.Get("/stats", protoHandler.Stats)

		sp.router = r
	}

	return sp.router
}
