package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/syncheck/check"
	"github.com/gnoswap-labs/syncheck/formatter"
	"github.com/gnoswap-labs/syncheck/internal/config"
	"github.com/gnoswap-labs/syncheck/report"
)

var checkCmd = &cobra.Command{
	Use:   "check [root]",
	Short: "Scan a source tree and fail on syntax errors",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		root := scanRoot(args)
		s := check.NewScanner(root, cfg)

		issues, err := check.Run(ctx, logger, s, check.ProcessFile)
		if err != nil {
			logger.Fatal("Failed to scan source tree", zap.String("root", root), zap.Error(err))
		}

		if len(issues) == 0 {
			fmt.Println(formatter.Success())
			return
		}

		fmt.Fprint(os.Stderr, formatter.Format(issues))

		reporter := report.New(
			report.Config{EndpointURL: cfg.EndpointURL, BoardID: cfg.BoardID},
			report.WithLogger(logger),
		)
		reporter.Send(ctx, issues)

		os.Exit(1)
	},
}

// scanRoot resolves the scan root: an explicit positional argument wins,
// otherwise the directory containing the executable is scanned, matching
// the startup-phase deployment where the checker sits next to the sources
// it guards.
func scanRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
