// Package cli wires configuration, logging and storage for the CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/splitgrid/internal/application/port"
	"github.com/bnema/splitgrid/internal/application/usecase"
	"github.com/bnema/splitgrid/internal/cli/styles"
	"github.com/bnema/splitgrid/internal/config"
	"github.com/bnema/splitgrid/internal/domain/build"
	"github.com/bnema/splitgrid/internal/domain/repository"
	"github.com/bnema/splitgrid/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/splitgrid/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// DB opens on first use, so commands that never touch layouts stay fast.
	DB      port.DatabaseProvider
	Layouts repository.LayoutRepository

	LayoutsUC *usecase.ManageLayoutsUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	// The run command owns the terminal, so logs only go to the file.
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			Path:       cfg.Logging.LogFile(),
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   true,
		},
	)
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", logErr)
		logger = logging.NewFromConfigValues("warn", cfg.Logging.Format)
	}
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	dbFile := cfg.Persistence.DatabasePath
	if dbFile == "" {
		var err error
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			logCleanup()
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		cfg.Persistence.DatabasePath = dbFile
	}

	db := sqlite.NewLazyDB(dbFile)
	layouts := sqlite.NewLazyLayoutRepository(db)
	logger.Debug().Str("db_path", dbFile).Msg("database configured")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		DB:            db,
		Layouts:       layouts,
		LayoutsUC:     usecase.NewManageLayoutsUseCase(layouts),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.DB != nil {
		err = a.DB.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. On failure it
// returns the defaults with the error, and a nil manager when none could be
// created.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
