package boost

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// testCasePattern matches one entry of the --list_content=HRF output: leading
// indentation, a name without whitespace or '*', then the '*' marker.
var testCasePattern = regexp.MustCompile(`^(\s*)([^*\s]+)\*`)

// testNode is one entry of the suite/case branch being reconstructed from
// indentation while parsing the hierarchical listing.
type testNode struct {
	name   string
	indent int
}

// ListFallback returns the single placeholder identifier for an executable:
// its base name without extension. Boost.Test offers no enumeration API in
// this mode, so the whole binary is treated as one opaque test.
func ListFallback(executable string) []string {
	base := filepath.Base(executable)
	return []string{strings.TrimSuffix(base, filepath.Ext(base))}
}

// ListContent asks the executable for its human-readable content tree and
// returns the slash-joined identifiers of every leaf branch.
func ListContent(ctx context.Context, executable string) ([]string, error) {
	cmd := exec.CommandContext(ctx, executable, "--list_content=HRF")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("list content of %s: %w", executable, err)
	}
	return parseContentListing(string(output)), nil
}

// parseContentListing reconstructs the indentation-encoded tree. A branch is
// complete when a line's indent is less than or equal to the previous one;
// equal indent closes the previous sibling before opening the new one.
func parseContentListing(output string) []string {
	var (
		tests      []string
		branch     []testNode
		prevIndent int
	)

	joinBranch := func() string {
		names := make([]string, len(branch))
		for i, node := range branch {
			names[i] = node.name
		}
		return strings.Join(names, "/")
	}

	for _, line := range strings.Split(output, "\n") {
		m := testCasePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		indent := len(m[1])
		name := m[2]

		if indent <= prevIndent {
			if full := joinBranch(); full != "" {
				tests = append(tests, full)
			}
			for len(branch) > 0 && branch[len(branch)-1].indent >= indent {
				branch = branch[:len(branch)-1]
			}
		}

		branch = append(branch, testNode{name: name, indent: indent})
		prevIndent = indent
	}

	if len(branch) > 0 {
		tests = append(tests, joinBranch())
	}
	return tests
}
