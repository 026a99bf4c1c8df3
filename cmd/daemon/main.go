package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucidonlinenet/drastic-view/internal/catalog"
	"github.com/lucidonlinenet/drastic-view/internal/config"
	"github.com/lucidonlinenet/drastic-view/internal/display"
	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"github.com/lucidonlinenet/drastic-view/internal/engine"
	"github.com/lucidonlinenet/drastic-view/internal/fetcher"
	"github.com/lucidonlinenet/drastic-view/internal/monitor"
	"github.com/lucidonlinenet/drastic-view/internal/render"
	"github.com/lucidonlinenet/drastic-view/internal/slide"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const defaultConfigPath = "config.toml"

func main() {
	app := fx.New(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		// Provide dependencies
		fx.Provide(
			newLogger,
			loadConfig,
			monitor.NewScreenResolution,
			monitor.NewForegroundHint,
			newCatalog,
			newFetcher,
			newPresenter,
			newCanvas,
			newRenderer,
			slide.NewNormalizer,
			engine.NewEngine,
		),

		// Lifecycle hooks
		fx.Invoke(registerHooks),
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application; configuration and render backend failures
	// surface here and abort with a non-zero status
	if err := app.Start(ctx); err != nil {
		os.Exit(1)
	}

	// Wait for interrupt signal or an internal shutdown request
	var code int
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	// Stop the application gracefully
	if err := app.Stop(context.Background()); err != nil {
		os.Exit(1)
	}
	os.Exit(code)
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// loadConfig reads the configuration file named by DRASTIC_CONFIG,
// defaulting to config.toml in the working directory.
func loadConfig(logger *zap.Logger) (*config.Config, error) {
	path := os.Getenv("DRASTIC_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	return config.Load(path, logger)
}

func newCatalog(logger *zap.Logger, cfg *config.Config) domain.Catalog {
	return catalog.NewClient(logger, cfg.ServerURL, cfg.AuthToken)
}

func newFetcher(logger *zap.Logger, cfg *config.Config) domain.Fetcher {
	return fetcher.NewHTTPFetcher(logger, cfg.AuthToken)
}

func newPresenter(logger *zap.Logger, cfg *config.Config, res *domain.ScreenResolution) (domain.Presenter, error) {
	return display.NewPresenter(logger, cfg.FramebufferDevice, cfg.OutputDir, res)
}

func newCanvas(logger *zap.Logger, res *domain.ScreenResolution, presenter domain.Presenter) (domain.Canvas, error) {
	return render.NewImageCanvas(logger, res, presenter)
}

func newRenderer(logger *zap.Logger, canvas domain.Canvas, cfg *config.Config) domain.Renderer {
	return render.NewRenderer(logger, canvas, cfg.TimeFormat)
}

// registerHooks starts the display loop on startup and cancels it on
// shutdown. A render backend failure inside the loop requests process
// shutdown with a non-zero exit code.
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, eng *engine.Engine, shutdowner fx.Shutdowner) {
	loopCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Drastic View daemon started")
			go func() {
				if err := eng.Run(loopCtx); err != nil {
					logger.Error("Display loop failed", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			cancel()
			return nil
		},
	})
}
