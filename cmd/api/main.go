package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/persistence"
	governanceUseCase "github.com/amirhossein-jamali/vesting-ledger/internal/domain/usecase/governance"
	ledgerUseCase "github.com/amirhossein-jamali/vesting-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/repository/memory"
	clock "github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/config"
)

const rateLimiterCleanupInterval = time.Minute

// storage bundles the repositories of the selected backend
type storage struct {
	ledger     persistence.LedgerRepository
	governance persistence.GovernanceRepository
	// db is nil when the ledger runs in memory
	db    *database.Manager
	close func()
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.IsProduction(), logger.ParseLevel(cfg.Logger.Level))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	clk := clock.NewRealClock()

	var appMetrics coreport.Metrics = metrics.NoopMetrics{}
	var promMetrics *metrics.PrometheusMetrics
	if cfg.Metrics.Enabled {
		promMetrics = metrics.NewPrometheusMetrics(cfg.Metrics.Namespace)
		appMetrics = promMetrics
	}

	ctx := context.Background()

	store, err := openStorage(ctx, cfg, appLogger, clk, promMetrics)
	if err != nil {
		appLogger.Error("Failed to initialize storage", map[string]any{
			"storage": cfg.Ledger.Storage,
			"error":   err.Error(),
		})
		os.Exit(1)
	}
	defer store.close()

	// Governance first: the ledger asks it for roles and the listing timestamp
	governance := governanceUseCase.NewService(store.governance, clk, appLogger)
	if _, err := governance.Initialize(ctx, bootstrapState(cfg)); err != nil {
		appLogger.Error("Failed to initialize token state", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	ledger := ledgerUseCase.NewService(
		store.ledger,
		governance,
		governance,
		ledgerUseCase.NewAccountLocker(appLogger, cfg.Ledger.LockTimeout()),
		clk,
		appMetrics,
		appLogger,
	)

	if err := mintGenesis(ctx, ledger, governance, cfg, appLogger); err != nil {
		appLogger.Error("Failed to mint genesis supply", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize Gin router
	router := gin.New()

	opts := routes.MiddlewareOptions{AllowedOrigins: cfg.Server.AllowedOrigins}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, appLogger)
		limiter.StartCleanup(rateLimiterCleanupInterval)
		defer limiter.Stop()
		opts.RateLimiter = limiter
	}
	if promMetrics != nil {
		opts.Metrics = promMetrics
	}
	routes.SetupMiddlewares(router, appLogger, opts)

	handlers := routes.Handlers{
		Account:    handler.NewAccountHandler(ledger, appLogger),
		Transfer:   handler.NewTransferHandler(ledger, appLogger),
		Lock:       handler.NewLockHandler(ledger, governance, appLogger),
		Governance: handler.NewGovernanceHandler(governance, ledger, appLogger),
		Health:     handler.NewHealthHandler(nil, appLogger),
	}
	if store.db != nil {
		handlers.Health = handler.NewHealthHandler(store.db, appLogger)
	}
	if promMetrics != nil {
		handlers.Metrics = promMetrics.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
	}
	routes.SetupRoutes(router, handlers)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"storage": cfg.Ledger.Storage,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// openStorage connects the configured backend and returns its repositories
func openStorage(
	ctx context.Context,
	cfg *config.Config,
	appLogger coreport.Logger,
	clk coreport.Clock,
	promMetrics *metrics.PrometheusMetrics,
) (*storage, error) {
	if !cfg.UsesDatabase() {
		appLogger.Warn("Ledger state is kept in memory and lost on restart", nil)
		return &storage{
			ledger:     memory.NewLedgerRepository(),
			governance: memory.NewGovernanceRepository(),
			close:      func() {},
		}, nil
	}

	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, clk)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	closeDB := func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}

	if err := dbManager.Migrate(ctx); err != nil {
		closeDB()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if promMetrics != nil {
		sqlDB, err := dbManager.DB().DB()
		if err == nil {
			err = promMetrics.RegisterDB(sqlDB, cfg.Database.Database)
		}
		if err != nil {
			appLogger.Warn("Database pool metrics unavailable", map[string]any{
				"error": err.Error(),
			})
		}
	}

	runner := dbManager.NewTxRunner()
	return &storage{
		ledger:     repository.NewLedgerRepository(runner, clk, appLogger),
		governance: repository.NewGovernanceRepository(runner, appLogger),
		db:         dbManager,
		close:      closeDB,
	}, nil
}

// bootstrapState builds the token state stored on first start
func bootstrapState(cfg *config.Config) *entity.TokenState {
	controllers := make([]entity.Address, 0, len(cfg.Ledger.Controllers))
	for _, c := range cfg.Ledger.Controllers {
		controllers = append(controllers, entity.Address(c))
	}
	return &entity.TokenState{
		Name:        cfg.Ledger.TokenName,
		Symbol:      cfg.Ledger.Symbol,
		Decimals:    cfg.Ledger.Decimals,
		Owner:       entity.Address(cfg.Ledger.Owner),
		Controllers: controllers,
	}
}

// mintGenesis credits the configured supply to the owner when the ledger is empty
func mintGenesis(
	ctx context.Context,
	ledger *ledgerUseCase.Service,
	governance *governanceUseCase.Service,
	cfg *config.Config,
	appLogger coreport.Logger,
) error {
	if cfg.Ledger.InitialSupply == "" {
		return nil
	}
	supply, err := entity.ParseAmount(cfg.Ledger.InitialSupply)
	if err != nil {
		return fmt.Errorf("ledger.initialSupply: %w", err)
	}

	owner, err := governance.Owner(ctx)
	if err != nil {
		return err
	}

	minted, err := ledger.Genesis(ctx, owner, supply)
	if err != nil {
		return err
	}
	if minted {
		appLogger.Info("Genesis supply minted", map[string]any{
			"owner":  owner.String(),
			"supply": supply.Dec(),
		})
	}
	return nil
}

