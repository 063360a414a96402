package cli

import (
	"github.com/spf13/cobra"
	"github.com/vsext-labs/vsext/internal/branding"
	"github.com/vsext-labs/vsext/internal/config"
	"github.com/vsext-labs/vsext/internal/log"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks a few questions and writes a ready-to-run editor
extension project: a JavaScript command extension or an extension pack.

Every question can be answered up front with a flag; only the missing
answers are asked interactively.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		level := config.LogLevel()
		if verbose {
			level = "debug"
		}
		log.Configure(log.Config{Level: level, Console: true})
	},
	RunE: runGenerate,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
