// Package formatter renders syntax issues as human-readable diagnostics
// for the error stream.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnoswap-labs/syncheck/internal/types"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	successStyle = color.New(color.FgGreen, color.Bold)
)

// Format renders one diagnostic block per issue.
func Format(issues []types.Issue) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(formatIssue(issue))
	}
	return builder.String()
}

// Success returns the single line printed after a clean run.
func Success() string {
	return successStyle.Sprint("✓ Syntax check passed")
}

func formatIssue(issue types.Issue) string {
	var builder strings.Builder

	builder.WriteString(errorStyle.Sprint("error: ") + messageStyle.Sprint("syntax error") + "\n")
	builder.WriteString(lineStyle.Sprint(" --> ") + fileStyle.Sprint(issue.Filename))
	if issue.Line > 0 {
		builder.WriteString(fileStyle.Sprintf(":%d", issue.Line))
		if issue.Column > 0 {
			builder.WriteString(fileStyle.Sprintf(":%d", issue.Column))
		}
	}
	builder.WriteString("\n")

	if issue.Line > 0 && issue.Text != "" {
		lineNumberStr := fmt.Sprintf("%d", issue.Line)
		padding := strings.Repeat(" ", len(lineNumberStr))
		expandedLine := expandTabs(issue.Text)

		builder.WriteString(lineStyle.Sprintf(" %s |\n", padding))
		builder.WriteString(lineStyle.Sprintf(" %s | ", lineNumberStr))
		builder.WriteString(expandedLine + "\n")

		builder.WriteString(lineStyle.Sprintf(" %s | ", padding))
		if issue.Column > 0 {
			builder.WriteString(strings.Repeat(" ", calculateVisualColumn(issue.Text, issue.Column)))
		}
		builder.WriteString(messageStyle.Sprintf("^ %s\n\n", issue.Message))
	} else {
		builder.WriteString(messageStyle.Sprintf("    %s\n\n", issue.Message))
	}

	return builder.String()
}

// expandTabs replaces tab characters with spaces, considering a tab width of 8.
func expandTabs(line string) string {
	var expanded strings.Builder
	column := 0
	for _, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (column % tabWidth)
			for i := 0; i < spaceCount; i++ {
				expanded.WriteByte(' ')
				column++
			}
		} else {
			expanded.WriteRune(ch)
			column++
		}
	}
	return expanded.String()
}

// calculateVisualColumn maps a byte-oriented column onto the visual column
// after tab expansion.
func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 >= column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
