package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/teranos/fluxar-ls/am"
	"github.com/teranos/fluxar-ls/errors"
	"github.com/teranos/fluxar-ls/langserver"
	"github.com/teranos/fluxar-ls/logger"
	"github.com/teranos/fluxar-ls/manifest"
	"golang.org/x/sync/errgroup"
)

// ServeCmd starts the language server
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Fluxar language server",
	Long: `Start the language server on the configured transports.

Transports:
  stdio     - one client on stdin/stdout (what editors spawn)
  websocket - any number of clients at ws://<addr>/lsp
  both      - stdio and websocket together

Logs go to stderr; stdout belongs to the LSP stream.

Examples:
  fluxar-ls serve
  fluxar-ls serve --transport websocket --addr 127.0.0.1:7491
  FLUXAR_SERVER_TRANSPORT=both fluxar-ls serve -v`,
	RunE: runServe,
}

var (
	serveTransport string
	serveAddr      string
)

func init() {
	ServeCmd.Flags().StringVar(&serveTransport, "transport", "", "Transport: stdio, websocket or both (default from config)")
	ServeCmd.Flags().StringVar(&serveAddr, "addr", "", "WebSocket listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	loaded, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	// Flags override config; the cached config stays untouched
	cfg := *loaded
	if serveTransport != "" {
		cfg.Server.Transport = serveTransport
	}
	if serveAddr != "" {
		cfg.Server.Address = serveAddr
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	log := logger.Logger.Named("lsp")

	opts := langserver.Options{
		LanguageID:   cfg.GetLanguageID(),
		MaxDocuments: cfg.GetMaxDocuments(),
		Manifest:     manifest.Default(),
		Logger:       log,
		Debug:        logger.ShouldLogTrace(verbosity),
		LogText:      logger.ShouldLogAll(verbosity),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watcher := watchConfig(verbosity); watcher != nil {
		defer watcher.Stop()
	}

	log.Infow("Starting language server",
		logger.FieldTransport, cfg.Server.Transport,
		logger.FieldLanguage, opts.LanguageID,
		"config", am.ConfigPath(),
	)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Server.ServesWebSocket() {
		g.Go(func() error {
			return langserver.ServeWebSocket(gctx, cfg.Server.Address, opts, cfg.GetAllowedOrigins())
		})
	}

	if cfg.Server.ServesStdio() {
		g.Go(func() error {
			return serveStdio(gctx, stop, opts)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Infow("Language server stopped")
	return nil
}

// serveStdio runs the stdio transport; when the client closes the stream it
// stops the other transports too. glsp's stdio loop can't be cancelled, so on
// a signal it is left reading until the process exits.
func serveStdio(ctx context.Context, stop context.CancelFunc, opts langserver.Options) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- langserver.ServeStdio(opts)
	}()

	select {
	case err := <-errChan:
		stop()
		return errors.Wrap(err, "stdio transport")
	case <-ctx.Done():
		return nil
	}
}

// watchConfig reloads the log level when the active config file changes.
// Returns nil when no config file is in use.
func watchConfig(verbosity int) *am.ConfigWatcher {
	path := am.ConfigPath()
	if path == "" {
		return nil
	}

	watcher, err := am.NewConfigWatcher(path)
	if err != nil {
		logger.Warnw("Config hot-reload disabled", logger.FieldFile, path, logger.FieldError, err)
		return nil
	}

	watcher.OnReload(reloadLogLevel(verbosity))
	watcher.Start()
	return watcher
}

// reloadLogLevel applies log.level from a reloaded config. An explicit -v
// wins over the file.
func reloadLogLevel(verbosity int) am.ReloadCallback {
	return func(cfg *am.Config) error {
		if verbosity > logger.VerbosityUser {
			return nil
		}
		level, err := logger.ParseLevel(cfg.Log.Level)
		if err != nil {
			return errors.Wrapf(err, "log.level %q", cfg.Log.Level)
		}
		logger.SetLevel(level)
		logger.Infow("Log level reloaded", "level", level.String())
		return nil
	}
}
