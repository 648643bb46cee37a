package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters executables by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters executables by name pattern using wildcard matching.
// Supports patterns like "*math_test" or "*parser*".
func (f *Filter) FilterByName(executables []string, pattern string) []string {
	if pattern == "" {
		return executables
	}

	var filtered []string

	for _, executable := range executables {
		// Get just the filename from the full path
		name := filepath.Base(executable)

		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, executable)
			continue
		}

		// If the pattern contains wildcards but filepath.Match didn't match,
		// try a more flexible substring match for patterns like "*parser*"
		if strings.Contains(pattern, "*") {
			if matchesAllParts(name, pattern) {
				filtered = append(filtered, executable)
			}
			continue
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(name, pattern) {
			filtered = append(filtered, executable)
		}
	}

	return filtered
}

// matchesAllParts checks that every non-empty segment of a wildcard pattern
// appears in the name, with at least one non-empty segment present.
func matchesAllParts(name, pattern string) bool {
	parts := strings.Split(pattern, "*")
	hasNonEmptyPart := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmptyPart = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmptyPart
}
