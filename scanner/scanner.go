package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Scanner walks a directory tree and collects candidate source files.
type Scanner struct {
	rootDir    string
	extensions []string
	excludes   []string
}

func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Exclude registers path markers. Any directory or file whose path contains
// one of the markers is skipped entirely, subtree included.
func (s *Scanner) Exclude(markers ...string) {
	s.excludes = append(s.excludes, markers...)
}

// Scan returns the paths of all matching files under the root directory.
// Unreadable subtrees are skipped rather than failing the walk; only an
// unusable root is reported as an error. Each matching file is visited
// exactly once, in walk order.
func (s *Scanner) Scan() ([]string, error) {
	var files []string

	err := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.rootDir {
				return err
			}
			return nil
		}

		// Markers are matched against the path below the root, so a root
		// that itself lives under e.g. "vendor" still gets scanned.
		rel, relErr := filepath.Rel(s.rootDir, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if path != s.rootDir && s.isExcluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.isExcluded(rel) {
			return nil
		}

		if s.isTargetFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (s *Scanner) isExcluded(path string) bool {
	for _, marker := range s.excludes {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
