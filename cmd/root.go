package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/syncheck/internal/config"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "syncheck [root]",
	Short: "syncheck - fail-fast syntax gate for source trees",
	Long: `syncheck scans a directory tree for source files, parses each one and
fails with a non-zero exit code when any file has a syntax error. Found
issues are reported to a remote endpoint when one is configured, so broken
files surface before a runtime tries to import them.`,
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// Format: syncheck [root] => behaves like the check subcommand
		checkCmd.Run(checkCmd, args)
	},
}

func Execute() error {
	cobra.OnInitialize(initLogger)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultConfigPath, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the whole check")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
}

func initLogger() {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	logger = l
}
