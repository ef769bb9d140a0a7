// Package checker validates the syntax of single source files.
//
// Validation is parse-only: no type checking, no import resolution and no
// execution of any kind. The checker never fails with an error of its own;
// every call yields either "clean" (nil) or a populated Issue, so a broken
// or unreadable file can never abort a whole run.
package checker

import (
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnoswap-labs/syncheck/internal/types"
)

// CheckFile reads and parses the file at path. It returns nil when the file
// parses cleanly. A read failure produces an Issue carrying only the file
// name and the message.
func CheckFile(path string) *types.Issue {
	src, err := os.ReadFile(path)
	if err != nil {
		return &types.Issue{
			Filename: filepath.Base(path),
			Message:  err.Error(),
		}
	}
	return CheckSource(path, src)
}

// CheckSource parses src as a single source file. When the parser reports a
// positioned syntax error, the Issue carries the line, column, message and
// the offending source line. Any other failure degrades to file name and
// message only.
func CheckSource(path string, src []byte) (issue *types.Issue) {
	name := filepath.Base(path)

	defer func() {
		if r := recover(); r != nil {
			issue = &types.Issue{
				Filename: name,
				Message:  fmt.Sprintf("parser panic: %v", r),
			}
		}
	}()

	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err == nil {
		return nil
	}

	if list, ok := err.(scanner.ErrorList); ok && len(list) > 0 {
		// One issue per file; later errors in the same file are usually
		// cascades of the first one.
		first := list[0]
		return &types.Issue{
			Filename: name,
			Line:     first.Pos.Line,
			Column:   first.Pos.Column,
			Message:  first.Msg,
			Text:     sourceLine(src, first.Pos.Line),
		}
	}

	return &types.Issue{
		Filename: name,
		Message:  err.Error(),
	}
}

func sourceLine(src []byte, line int) string {
	lines := strings.Split(string(src), "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
