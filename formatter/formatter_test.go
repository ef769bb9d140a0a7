package formatter

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/gnoswap-labs/syncheck/internal/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatPositionedIssue(t *testing.T) {
	issues := []types.Issue{
		{
			Filename: "b.go",
			Line:     3,
			Column:   9,
			Message:  "expected ')', found '{'",
			Text:     "func f( {",
		},
	}

	out := Format(issues)

	assert.Contains(t, out, "error: syntax error")
	assert.Contains(t, out, " --> b.go:3:9")
	assert.Contains(t, out, "3 | func f( {")
	assert.Contains(t, out, "^ expected ')', found '{'")
}

func TestFormatIssueWithoutPosition(t *testing.T) {
	issues := []types.Issue{
		{Filename: "c.go", Message: "read c.go: permission denied"},
	}

	out := Format(issues)

	assert.Contains(t, out, " --> c.go\n")
	assert.Contains(t, out, "read c.go: permission denied")
	assert.NotContains(t, out, "| ", "no snippet gutter without a known line")
}

func TestFormatMultipleIssues(t *testing.T) {
	issues := []types.Issue{
		{Filename: "a.go", Line: 1, Message: "expected 'package'", Text: "pakage a"},
		{Filename: "b.go", Line: 2, Message: "expected declaration", Text: "}"},
	}

	out := Format(issues)

	assert.Equal(t, 2, strings.Count(out, "error: syntax error"))
	assert.Contains(t, out, "a.go:1")
	assert.Contains(t, out, "b.go:2")
}

func TestFormatExpandsTabs(t *testing.T) {
	issues := []types.Issue{
		{Filename: "a.go", Line: 4, Column: 2, Message: "unexpected ';'", Text: "\t;"},
	}

	out := Format(issues)

	assert.NotContains(t, out, "\t;", "tabs in snippets are expanded to spaces")
	assert.Contains(t, out, strings.Repeat(" ", 8)+";")
}

func TestSuccess(t *testing.T) {
	assert.Equal(t, "✓ Syntax check passed", Success())
}
