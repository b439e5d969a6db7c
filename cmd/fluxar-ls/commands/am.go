package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/teranos/fluxar-ls/am"
	"github.com/teranos/fluxar-ls/errors"
	"gopkg.in/yaml.v3"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Show or validate fluxar-ls configuration",
	Long: `am - Show or validate fluxar-ls configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (FLUXAR_* prefix, LSP_LOG_LEVEL)
3. --config file
4. Project config (./am.toml, searched up from the working directory)
5. User config (~/.fluxar/am.toml)
6. System config (/etc/fluxar/am.toml)
7. Default values

Examples:
  fluxar-ls am show                    # Show current configuration
  fluxar-ls am show --format json      # Show configuration in JSON format
  fluxar-ls am validate                # Validate current configuration`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the merged fluxar-ls configuration from all sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := am.GetViper()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		return writeConfig(cmd.OutOrStdout(), v.AllSettings(), configFormat)
	},
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate that the current fluxar-ls configuration is usable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "configuration validation failed")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
		return nil
	},
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amValidateCmd)
}

// writeConfig prints settings, a nested map as returned by viper, in format
func writeConfig(out io.Writer, settings map[string]any, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(settings)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# fluxar-ls configuration\n%s", data)

	case "toml":
		data, err := toml.Marshal(settings)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# fluxar-ls configuration\n%s", data)

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	return nil
}
