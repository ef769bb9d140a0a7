// Package check orchestrates a single syntax-check pass: walk the tree,
// validate every candidate file, collect the issues.
package check

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/syncheck/internal/checker"
	"github.com/gnoswap-labs/syncheck/internal/config"
	"github.com/gnoswap-labs/syncheck/internal/types"
	"github.com/gnoswap-labs/syncheck/scanner"
)

// CheckFunc validates one file. A nil result means the file is clean.
type CheckFunc func(path string) *types.Issue

// NewScanner builds the directory walker for a run from the effective
// configuration.
func NewScanner(root string, cfg *config.Config) *scanner.Scanner {
	s := scanner.New(root, cfg.Extensions...)
	s.Exclude(cfg.Excludes...)
	return s
}

// Run enumerates the candidate files and validates them one by one,
// sequentially, in walk order. It returns every issue found; a single pass
// is authoritative. The context is checked between files so a run-level
// timeout can cut the scan short.
func Run(ctx context.Context, logger *zap.Logger, s *scanner.Scanner, process CheckFunc) ([]types.Issue, error) {
	files, err := s.Scan()
	if err != nil {
		return nil, fmt.Errorf("scanning source tree: %w", err)
	}

	var issues []types.Issue
	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if issue := process(path); issue != nil {
			issues = append(issues, *issue)
			if logger != nil {
				logger.Debug("Syntax issue found",
					zap.String("file", path),
					zap.Int("line", issue.Line),
					zap.String("message", issue.Message))
			}
		}
	}

	return issues, nil
}

// ProcessFile is the default CheckFunc, backed by the syntax validator.
func ProcessFile(path string) *types.Issue {
	return checker.CheckFile(path)
}
