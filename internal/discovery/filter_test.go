package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name        string
		executables []string
		pattern     string
		expected    int // Expected number of matches
	}{
		{
			name:        "empty pattern returns all",
			executables: []string{"math_test", "parser_test", "io_test"},
			pattern:     "",
			expected:    3,
		},
		{
			name:        "wildcard pattern matches suffix",
			executables: []string{"math_test", "parser_test", "io_test"},
			pattern:     "*math_test",
			expected:    1,
		},
		{
			name:        "wildcard pattern matches substring",
			executables: []string{"math_test", "parser_test", "io_test", "parser_util_test"},
			pattern:     "*parser*",
			expected:    2,
		},
		{
			name:        "simple contains match",
			executables: []string{"math_test", "parser_test", "io_test"},
			pattern:     "parser",
			expected:    1,
		},
		{
			name:        "no matches",
			executables: []string{"math_test", "parser_test"},
			pattern:     "*nonexistent*",
			expected:    0,
		},
		{
			name:        "full path with wildcard",
			executables: []string{"/build/tests/math_test", "/build/tests/parser_test"},
			pattern:     "*math_test",
			expected:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.executables, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}
