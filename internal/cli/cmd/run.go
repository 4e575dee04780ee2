package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/bnema/splitgrid/internal/application/port"
	"github.com/bnema/splitgrid/internal/application/usecase"
	"github.com/bnema/splitgrid/internal/cli"
	"github.com/bnema/splitgrid/internal/config"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/infrastructure/snapshot"
	"github.com/bnema/splitgrid/internal/infrastructure/tracing"
	"github.com/bnema/splitgrid/internal/logging"
	"github.com/bnema/splitgrid/internal/ui/layout"
	"github.com/bnema/splitgrid/internal/ui/mainloop"
	"github.com/bnema/splitgrid/internal/ui/termhost"
)

const shutdownTimeout = 5 * time.Second

var (
	runWorkspace string
	runNoRestore bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a workspace in the terminal",
	Long: `Open a split-pane workspace in the terminal.

The saved layout of the workspace is restored, and every change is saved
again shortly after it happens. Press ctrl+p to enter pane mode, where
single keys split, close, zoom and move between panes. Drag the border
between two panes to resize them; double-click it to share the space
equally again. ctrl+q quits.

Examples:
  splitgrid run                  # Open the configured workspace
  splitgrid run -w notes         # Open the "notes" workspace
  splitgrid run --fresh          # Start from a single pane`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runWorkspace, "workspace", "w", "", "workspace to open (default from config)")
	runCmd.Flags().BoolVar(&runNoRestore, "fresh", false, "ignore the saved layout and start with one pane")
}

func runRun(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("run needs an interactive terminal")
	}

	workspace := cfg.Persistence.Workspace
	if runWorkspace != "" {
		workspace = runWorkspace
	}
	wsID := entity.WorkspaceID(workspace)

	// The screen owns stderr from here on.
	ctx := app.Ctx()
	if !cfg.Logging.EnableFileLog {
		ctx = logging.WithContext(ctx, zerolog.Nop())
	}
	ctx = logging.WithWorkspaceID(logging.WithComponent(ctx, "run"), string(wsID))
	log := logging.FromContext(ctx)

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
		shutdownTracing = func(context.Context) error { return nil }
	}

	registry := termhost.NewRegistry()
	var (
		serializer port.LayoutSerializer
		snapshots  *snapshot.Service
		ws         *entity.Workspace
	)
	if cfg.Persistence.Enabled {
		snapshots = snapshot.NewService(app.Layouts, cfg.Persistence.DebounceMs)
		serializer = snapshots
	}
	if cfg.Persistence.Enabled && !runNoRestore {
		ws, err = app.LayoutsUC.Restore(ctx, usecase.RestoreInput{WorkspaceID: wsID, Registry: registry})
	} else {
		ws, err = freshWorkspace(ctx, wsID, registry)
	}
	if err != nil {
		_ = shutdownTracing(context.WithoutCancel(ctx))
		return fmt.Errorf("open workspace: %w", err)
	}

	engine := layout.NewEngine(ctx, layoutOptions(cfg.Layout))
	panes := usecase.NewManagePanesUseCase(registry, serializer, 0)

	screen, err := tcell.NewScreen()
	if err != nil {
		_ = shutdownTracing(context.WithoutCancel(ctx))
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		_ = shutdownTracing(context.WithoutCancel(ctx))
		return fmt.Errorf("init screen: %w", err)
	}

	host, err := termhost.NewHost(ctx, termhost.Config{
		Screen:     screen,
		Engine:     engine,
		Panes:      panes,
		Registry:   registry,
		Serializer: serializer,
		Workspace:  ws,
		CellWidth:  cfg.Terminal.CellWidth,
		CellHeight: cfg.Terminal.CellHeight,
		Mouse:      cfg.Terminal.Mouse,
	})
	if err != nil {
		screen.Fini()
		_ = shutdownTracing(context.WithoutCancel(ctx))
		return err
	}

	updates := mainloop.NewCoalescer(host.Post)
	defer updates.Close()
	watchConfig(ctx, app, updates, engine)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if snapshots != nil {
		snapshots.Start(runCtx)
	}

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer cancel()
		return host.Run(gctx)
	})
	g.Go(func() error {
		return waitForSignal(gctx, cancel)
	})
	runErr := g.Wait()
	screen.Fini()

	shutdownCtx, done := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer done()
	if snapshots != nil {
		if err := snapshots.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to save layout on exit")
			fmt.Fprintf(os.Stderr, "warning: layout not saved: %v\n", err)
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("failed to flush traces")
	}

	log.Info().Int("panes", ws.PaneCount()).Msg("workspace closed")
	return runErr
}

// freshWorkspace starts a workspace with a single new pane.
func freshWorkspace(ctx context.Context, id entity.WorkspaceID, registry *termhost.Registry) (*entity.Workspace, error) {
	pane, err := registry.NewPane(ctx)
	if err != nil {
		return nil, err
	}
	pane.Focus()
	return entity.NewWorkspace(id, pane.ID()), nil
}

func layoutOptions(c config.LayoutConfig) layout.Options {
	return layout.Options{
		MinWidth:    c.MinWidth,
		MinHeight:   c.MinHeight,
		HandleSize:  c.HandleSize,
		DividerSize: c.DividerSize,
	}
}

// watchConfig applies layout geometry from config file edits while the
// workspace is open. Editors often write a file several times in a row; only
// the last version reaches the engine.
func watchConfig(ctx context.Context, app *cli.App, updates *mainloop.Coalescer, engine *layout.Engine) {
	log := logging.FromContext(ctx)
	if app.ConfigManager == nil {
		return
	}

	app.ConfigManager.OnConfigChange(func(c *config.Config) {
		opts := layoutOptions(c.Layout)
		if err := updates.Post("layout-options", func() { engine.SetOptions(opts) }); err != nil {
			log.Debug().Err(err).Msg("dropped config update")
			return
		}
		log.Info().Msg("config reloaded")
	})
	if err := app.ConfigManager.Watch(ctx); err != nil {
		log.Debug().Err(err).Msg("config watch unavailable")
	}
}

// waitForSignal cancels the run on SIGINT or SIGTERM.
func waitForSignal(ctx context.Context, cancel context.CancelFunc) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		logging.FromContext(ctx).Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
	case <-ctx.Done():
	}
	return nil
}
