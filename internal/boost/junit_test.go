package boost

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseJUnit(t *testing.T) {
	tests := []struct {
		name     string
		document string
		expected []TestReport
	}{
		{
			name: "passed and skipped cases",
			document: `<testsuites>` +
				`<testsuite name="S">` +
				`<testcase name="t1"></testcase>` +
				`<testcase name="t2" status="notrun"></testcase>` +
				`</testsuite>` +
				`</testsuites>`,
			expected: []TestReport{
				{Name: "S.t1"},
				{Name: "S.t2", Skipped: true},
			},
		},
		{
			name: "failures collected in order",
			document: `<testsuites>` +
				`<testsuite name="S">` +
				`<testcase name="t1" status="run">` +
				`<failure>first assertion</failure>` +
				`<failure>second assertion</failure>` +
				`</testcase>` +
				`</testsuite>` +
				`</testsuites>`,
			expected: []TestReport{
				{Name: "S.t1", Failures: []string{"first assertion", "second assertion"}},
			},
		},
		{
			name: "multiple suites preserve document order",
			document: `<testsuites>` +
				`<testsuite name="A"><testcase name="x"></testcase></testsuite>` +
				`<testsuite name="B"><testcase name="y"></testcase></testsuite>` +
				`</testsuites>`,
			expected: []TestReport{
				{Name: "A.x"},
				{Name: "B.y"},
			},
		},
		{
			name:     "no suites",
			document: `<testsuites></testsuites>`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports, err := parseJUnit([]byte(tt.document))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(reports, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, reports)
			}
		})
	}
}

func TestParseJUnit_MalformedXMLPropagates(t *testing.T) {
	if _, err := parseJUnit([]byte(`<testsuites><testsuite name="S">`)); err == nil {
		t.Error("expected a parse error, got nil")
	}
}

func TestParseJUnitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.xml")
	document := `<testsuites><testsuite name="S"><testcase name="t1"></testcase></testsuite></testsuites>`
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		t.Fatalf("failed to write junit log: %v", err)
	}

	reports, err := ParseJUnitFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 1 || reports[0].Name != "S.t1" {
		t.Errorf("unexpected reports: %v", reports)
	}

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := ParseJUnitFile(filepath.Join(dir, "missing.xml")); err == nil {
			t.Error("expected an error for a missing log file")
		}
	})
}
