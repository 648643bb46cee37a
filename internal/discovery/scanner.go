package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner scans for built test executables in a directory tree.
type Scanner struct {
	skipDirs map[string]bool
	patterns []string
}

// NewScanner creates a new Scanner with the given directories to skip and
// file name patterns that mark a candidate test binary.
func NewScanner(skipDirs, patterns []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, patterns: patterns}
}

// Scan finds all candidate test executables under the given root directory.
func (s *Scanner) Scan(root string) ([]string, error) {
	var executables []string

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if s.isCandidate(path, d) {
			executables = append(executables, path)
		}

		return nil
	})

	return executables, err
}

// isCandidate reports whether a directory entry looks like a built test
// binary: a regular file with an executable mode bit and a matching name.
func (s *Scanner) isCandidate(path string, d os.DirEntry) bool {
	info, err := d.Info()
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() || info.Mode().Perm()&0111 == 0 {
		return false
	}

	name := d.Name()
	for _, pattern := range s.patterns {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}
