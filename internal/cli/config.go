package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vsext-labs/vsext/internal/branding"
	"github.com/vsext-labs/vsext/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write %s configuration stored at ~/%s/config.yaml.

Keys:
  %-18s release feed used to resolve the engine version
  %-18s engine written when the feed cannot be reached
  %-18s how long a resolved engine is reused (e.g. 24h, 0s disables)
  %-18s editor binary used to list installed extensions
  %-18s log level on stderr (debug, info, warn, error)

Environment variables override the file, e.g. %s for engine.url.`,
		branding.DisplayName(), branding.HomeDir(),
		config.KeyEngineURL, config.KeyEngineFallback, config.KeyEngineCacheTTL,
		config.KeyEditorCLI, config.KeyLogLevel,
		branding.EnvVar("engine_url")),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every known key with its effective value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
		}
		return nil
	},
}
