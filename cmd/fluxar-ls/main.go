package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/fluxar-ls/am"
	"github.com/teranos/fluxar-ls/cmd/fluxar-ls/commands"
	"github.com/teranos/fluxar-ls/errors"
	"github.com/teranos/fluxar-ls/logger"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "fluxar-ls",
	Short: "Fluxar language server",
	Long: `fluxar-ls - Language server for Fluxar (.fsc) files.

Serves completion suggestions to editors over the Language Server Protocol,
on stdio (default) or a WebSocket endpoint.

Available commands:
  serve    - Start the language server
  complete - Print the suggestions for a line of Fluxar code
  am       - Show or validate configuration ("I am")
  version  - Show version information

Examples:
  fluxar-ls serve                          # LSP over stdio
  fluxar-ls serve --transport websocket    # LSP over ws://127.0.0.1:7491/lsp
  fluxar-ls complete --line "x = table."   # Try the providers without an editor
  fluxar-ls am show --format json          # Show current configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			am.SetConfigFile(configFile)
		}

		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}

		// 'am' subcommands must work on a broken config
		if cmd.Parent() == nil || cmd.Parent().Name() != "am" {
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid configuration")
			}
		}

		level, err := logger.ParseLevel(cfg.Log.Level)
		if err != nil {
			level = logger.VerbosityToLevel(logger.VerbosityInfo)
		}
		if verbosity, _ := cmd.Flags().GetCount("verbose"); verbosity > logger.VerbosityUser {
			level = logger.VerbosityToLevel(verbosity)
		}

		if err := logger.Initialize(cfg.Log.JSON, level); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (overrides ./am.toml and ~/.fluxar/am.toml)")

	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.CompleteCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
