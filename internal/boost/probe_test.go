package boost

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// fullHelpText is what a recent Boost.Test binary prints for --help.
const fullHelpText = `Usage: prog [Boost.Test argument]...
  --list_content=<HRF|DOT>
  --log_format=<HRF|CLF|XML|JUNIT>
  --log_sink=<stderr|stdout|file name>
  --output_format=<HRF|CLF|XML>
  --report_sink=<stderr|stdout|file name>
`

// oldHelpText lacks JUNIT and structured listing, like pre-1.62 Boost.
const oldHelpText = `Usage: prog [Boost.Test argument]...
  --log_format=<HRF|XML>
  --output_format=<HRF|XML>
`

// writeScript writes an executable shell script acting as a fake test binary.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write script %s: %v", name, err)
	}
	return path
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	tests := []struct {
		name             string
		script           string
		structuredOutput bool
		junitLogFormat   bool
		listContent      bool
	}{
		{
			name:             "full feature set",
			script:           "cat <<'EOF'\n" + fullHelpText + "EOF\n",
			structuredOutput: true,
			junitLogFormat:   true,
			listContent:      true,
		},
		{
			name:             "old boost without junit",
			script:           "cat <<'EOF'\n" + oldHelpText + "EOF\n",
			structuredOutput: true,
		},
		{
			name:   "help exits non-zero means minimal capabilities",
			script: "echo '--output_format --log_format=<JUNIT>' \nexit 1\n",
		},
		{
			name:   "not a test binary",
			script: "echo 'usage: grep [pattern]'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exe := writeScript(t, dir, "probe_"+sanitize(tt.name), tt.script)
			caps := Probe(ctx, exe)
			if caps.StructuredOutput != tt.structuredOutput {
				t.Errorf("StructuredOutput: expected %v, got %v", tt.structuredOutput, caps.StructuredOutput)
			}
			if caps.JUnitLogFormat != tt.junitLogFormat {
				t.Errorf("JUnitLogFormat: expected %v, got %v", tt.junitLogFormat, caps.JUnitLogFormat)
			}
			if caps.ListContent != tt.listContent {
				t.Errorf("ListContent: expected %v, got %v", tt.listContent, caps.ListContent)
			}
		})
	}

	t.Run("spawn failure means minimal capabilities", func(t *testing.T) {
		caps := Probe(ctx, filepath.Join(dir, "does-not-exist"))
		if caps.StructuredOutput || caps.JUnitLogFormat || caps.ListContent {
			t.Errorf("expected minimal capabilities, got %+v", caps)
		}
	})
}

func TestIsTestExecutable(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	boostLike := writeScript(t, dir, "boost_like", "cat <<'EOF'\n"+fullHelpText+"EOF\n")
	if !IsTestExecutable(ctx, boostLike) {
		t.Error("expected a binary advertising boost options to be recognized")
	}

	plain := writeScript(t, dir, "plain", "echo 'usage: something else'\n")
	if IsTestExecutable(ctx, plain) {
		t.Error("expected a non-boost binary to be rejected")
	}

	if IsTestExecutable(ctx, filepath.Join(dir, "missing")) {
		t.Error("expected an unspawnable path to be rejected")
	}
}

func sanitize(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == ' ' || r == '-' {
			r = '_'
		}
		out = append(out, r)
	}
	return string(out)
}
