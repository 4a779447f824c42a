package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/godilite/founder-assessment/internal/config"
	handler "github.com/godilite/founder-assessment/internal/grpc"
	httpapi "github.com/godilite/founder-assessment/internal/http"
	"github.com/godilite/founder-assessment/internal/repository"
	"github.com/godilite/founder-assessment/internal/service"
	"github.com/godilite/founder-assessment/pkg/cache"
	dbbuilder "github.com/godilite/founder-assessment/pkg/database"
	grpcsrv "github.com/godilite/founder-assessment/pkg/grpc/server"
)

const (
	shutdownTimeout = 10 * time.Second
	cacheKeyPrefix  = "founder-assessment:"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      handler.Cacher
	grpcServer *grpcsrv.Server
	httpServer *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (a *App, err error) {
	dbPool, err := dbbuilder.New(ctx,
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
		dbbuilder.WithPragma("_busy_timeout", "5000"),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		if err != nil {
			dbPool.Close()
		}
	}()
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	catalogRepo := repository.NewCatalogRepository(dbPool)
	if err := catalogRepo.Migrate(ctx); err != nil {
		return nil, err
	}
	if cfg.SeedCatalog {
		questions, norms := service.DefaultSeed()
		if err := catalogRepo.Seed(ctx, questions, norms); err != nil {
			return nil, err
		}
		logger.Info("Catalog seeded", zap.Int("questions", len(questions)))
	}

	assessmentService, err := service.NewAssessmentService(ctx, catalogRepo, logger)
	if err != nil {
		return nil, fmt.Errorf("assessment service init failed: %w", err)
	}

	var cacheClient handler.Cacher = cache.Nop{}
	if cfg.CachingEnabled() {
		redisCache, err := cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
			cache.WithPassword(cfg.RedisPassword),
			cache.WithDB(cfg.RedisDB),
			cache.WithKeyPrefix(cacheKeyPrefix),
		)
		if err != nil {
			return nil, fmt.Errorf("cache init failed: %w", err)
		}
		cacheClient = redisCache
		logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
	} else {
		logger.Info("REDIS_ADDR not set, profile caching disabled")
	}
	defer func() {
		if err != nil {
			cacheClient.Close()
		}
	}()

	grpcHandlers := handler.NewAssessmentHandlers(assessmentService, cacheClient, logger, cfg.CacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterServiceWithHealth(handler.ServiceName, func(s *grpc.Server) {
		handler.RegisterAssessmentServer(s, grpcHandlers)
	})

	router := httpapi.NewRouter(logger, httpapi.NewAssessmentHandler(logger, assessmentService))
	httpServer, err := httpapi.NewServer(cfg.HTTPPort, router, logger)
	if err != nil {
		grpcServer.Stop()
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		grpcServer: grpcServer,
		httpServer: httpServer,
	}, nil
}

// GRPCAddr returns the gRPC listening address.
func (a *App) GRPCAddr() net.Addr { return a.grpcServer.Addr() }

// HTTPAddr returns the HTTP listening address.
func (a *App) HTTPAddr() net.Addr { return a.httpServer.Addr() }

// Run starts both servers and blocks until ctx is done, then shuts down.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("application starting")

	a.grpcServer.Start()
	a.httpServer.Start()

	<-ctx.Done()

	a.logger.Info("application shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := a.grpcServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	if len(errs) == 0 {
		a.logger.Info("graceful shutdown completed successfully")
	}

	_ = a.logger.Sync()
	return errors.Join(errs...)
}
