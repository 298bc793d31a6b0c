// Package cli wires netguard's components for the command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bnema/netguard/internal/application/usecase"
	"github.com/bnema/netguard/internal/cli/styles"
	"github.com/bnema/netguard/internal/domain/build"
	"github.com/bnema/netguard/internal/domain/classifier"
	"github.com/bnema/netguard/internal/domain/repository"
	"github.com/bnema/netguard/internal/infrastructure/config"
	"github.com/bnema/netguard/internal/infrastructure/events"
	"github.com/bnema/netguard/internal/infrastructure/monitoring"
	"github.com/bnema/netguard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/netguard/internal/infrastructure/proxy"
	"github.com/bnema/netguard/internal/logging"
)

// Options tunes how the App is built.
type Options struct {
	// LogToStderr mirrors logs to stderr; otherwise only the optional log file gets them.
	LogToStderr bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db          *sqlite.LazyDB
	Permissions repository.PermissionRepository
	BlockStats  repository.BlockStatsRepository

	Classifier *classifier.Classifier
	Events     *events.Bus
	Metrics    *monitoring.Metrics
	Registry   *prometheus.Registry
	Engine     *proxy.Engine

	// Use cases
	Prompts       *usecase.PromptQueue
	Broker        *usecase.PermissionBroker
	Interceptor   *usecase.RequestInterceptor
	Lifetime      *usecase.BlockCounter
	Sessions      *usecase.SessionRegistry
	AdblockUC     *usecase.AdblockUseCase
	PermissionsUC *usecase.ManagePermissionsUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
// The database is opened on first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAge,
			Compress:      cfg.Logging.Compress,
			WriteToStderr: opts.LogToStderr,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging unavailable")
	}

	urlClassifier, err := newClassifier(cfg)
	if err != nil {
		logCleanup()
		return nil, err
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	permRepo := sqlite.NewLazyPermissionRepository(db)
	statsRepo := sqlite.NewLazyBlockStatsRepository(db)

	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(registry)
	bus := events.NewBus(ctx)
	engine := proxy.NewEngine()

	prompts := usecase.NewPromptQueue(nil)
	broker := usecase.NewPermissionBroker(permRepo, prompts, metrics)
	interceptor := usecase.NewRequestInterceptor(urlClassifier, bus, metrics)
	lifetime := usecase.NewBlockCounter(statsRepo, cfg.FlushInterval())
	sessions := usecase.NewSessionRegistry(usecase.SessionRegistryDeps{
		Engine:      engine,
		Settings:    mgr,
		Interceptor: interceptor,
		Broker:      broker,
		Lifetime:    lifetime,
		Events:      bus,
	})

	logger.Debug().
		Str("db_path", cfg.Database.Path).
		Int("blocklist", urlClassifier.Blocklist().Len()).
		Msg("app initialized")

	return &App{
		Config:        mgr,
		Theme:         styles.NewTheme(),
		db:            db,
		Permissions:   permRepo,
		BlockStats:    statsRepo,
		Classifier:    urlClassifier,
		Events:        bus,
		Metrics:       metrics,
		Registry:      registry,
		Engine:        engine,
		Prompts:       prompts,
		Broker:        broker,
		Interceptor:   interceptor,
		Lifetime:      lifetime,
		Sessions:      sessions,
		AdblockUC:     usecase.NewAdblockUseCase(sessions, statsRepo, lifetime, mgr),
		PermissionsUC: usecase.NewManagePermissionsUseCase(permRepo),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

func newClassifier(cfg *config.Config) (*classifier.Classifier, error) {
	reputation, err := classifier.NewStaticReputationChecker(cfg.SafeBrowsing.ExtraPatterns...)
	if err != nil {
		return nil, fmt.Errorf("build reputation checker: %w", err)
	}
	domains := slices.Concat(classifier.DefaultBlocklist, cfg.ContentFiltering.ExtraDomains)
	blocklist := classifier.NewBlocklist(domains, cfg.ContentFiltering.KeywordFallback)
	return classifier.New(reputation, blocklist), nil
}

// ApplyConfig pushes a reloaded config into the live components.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Classifier.Blocklist().SetKeywordFallback(cfg.ContentFiltering.KeywordFallback)
	a.Sessions.ApplySettings(config.SettingsFromConfig(cfg))
}

// Close releases all resources. Pending block counts are flushed first.
func (a *App) Close() error {
	var errs []error
	if a.Prompts != nil {
		a.Prompts.Close()
	}
	if a.Sessions != nil {
		a.Sessions.TeardownIncognito(a.ctx)
	}
	if a.Lifetime != nil {
		if err := a.Lifetime.Flush(a.ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if a.Events != nil {
		a.Events.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
