package main

import (
	"context"
	"fmt"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/gamedesk/backend/api/handler"
	"github.com/gamedesk/backend/internal/config"
	"github.com/gamedesk/backend/internal/infrastructure/journal"
	"github.com/gamedesk/backend/internal/infrastructure/monitor"
	pgInfra "github.com/gamedesk/backend/internal/infrastructure/postgres"
	redisInfra "github.com/gamedesk/backend/internal/infrastructure/redis"
	"github.com/gamedesk/backend/internal/middleware"
	"github.com/gamedesk/backend/internal/router"
	"github.com/gamedesk/backend/internal/services"
	"github.com/gamedesk/backend/internal/services/lifecycle"
	"github.com/gamedesk/backend/internal/store"
	"github.com/gamedesk/backend/pkg/httpcontext"
	"github.com/gamedesk/backend/pkg/logger"
	"github.com/gamedesk/backend/repository"
	boltRepo "github.com/gamedesk/backend/repository/bolt"
	pgRepo "github.com/gamedesk/backend/repository/postgres"
	redisRepo "github.com/gamedesk/backend/repository/redis"
	restRepo "github.com/gamedesk/backend/repository/rest"
	gamesUC "github.com/gamedesk/backend/usecase/games"
	membersUC "github.com/gamedesk/backend/usecase/members"
	tasksUC "github.com/gamedesk/backend/usecase/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	gateway, err := openGateway(appCtx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("storage gateway failed", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	manager.Register("gateway", func(ctx context.Context) error {
		return gateway.Close()
	})

	var flushJournal *journal.Store
	if cfg.Journal.Enabled {
		flushJournal, err = journal.Open(cfg.Journal.Path, "pending")
		if err != nil {
			zapLogger.Fatal("failed to open flush journal", zap.Error(err))
		}
		manager.Register("journal", func(ctx context.Context) error {
			return flushJournal.Close()
		})
	}

	domainStore := store.New(gateway, flushJournal, logger.WithComponent(zapLogger, "store"))
	if err := domainStore.Load(appCtx); err != nil {
		zapLogger.Fatal("failed to load domain store", zap.Error(err))
	}

	mon := monitor.New(gateway, flushJournal, cfg.Flush.MonitorInterval, logger.WithComponent(zapLogger, "monitor"))
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	flusher := services.NewFlusher(domainStore, mon, logger.WithComponent(zapLogger, "flusher"), cfg.Flush.RetryInterval)
	flusher.Start()
	manager.Register("flusher", func(ctx context.Context) error {
		flusher.Stop(ctx)
		return nil
	})

	gameUseCase := gamesUC.New(domainStore, zapLogger)
	taskUseCase := tasksUC.New(domainStore, zapLogger)
	memberUseCase := membersUC.New(domainStore, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Game:   apiHandler.NewGameHandler(gameUseCase, ctxAdapter, zapLogger),
		Task:   apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Member: apiHandler.NewMemberHandler(memberUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.Auth.Enabled, cfg.Auth.JWTSecret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("backend", cfg.Storage.Backend))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

// openGateway selects the persistence backend. All four honor the same
// contract; nothing downstream knows which one is active.
func openGateway(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (repository.Gateway, error) {
	switch cfg.Storage.Backend {
	case config.BackendBolt:
		return boltRepo.Open(cfg.Storage.BoltPath, cfg.Storage.BoltBucket)

	case config.BackendRest:
		return restRepo.New(restRepo.Config{
			BaseURL: cfg.Remote.BaseURL,
			Token:   cfg.Remote.Token,
			Timeout: cfg.Remote.Timeout,
		}), nil

	case config.BackendRedis:
		client, err := redisInfra.NewClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return redisRepo.New(client, cfg.Redis.Prefix), nil

	case config.BackendPostgres:
		if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
			return nil, err
		}
		pool, err := pgInfra.NewPool(ctx, cfg.Database, zapLogger)
		if err != nil {
			return nil, err
		}
		return pgRepo.New(pool), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
