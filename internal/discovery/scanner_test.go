package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()

	writeFile := func(relPath string, mode os.FileMode) string {
		path := filepath.Join(root, relPath)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"), mode); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		return path
	}

	mathTest := writeFile("build/math_test", 0755)
	parserTests := writeFile("build/sub/parser_tests", 0755)
	writeFile("build/math_test.cpp", 0644)         // source, not executable
	writeFile("build/helper", 0755)                // executable, name doesn't match
	writeFile("build/notes_test", 0644)            // matching name, not executable
	writeFile("CMakeFiles/inner_test", 0755)       // skipped dir
	writeFile(".cache/cached_test", 0755)          // hidden dir
	writeFile("third_party/vendored_test", 0755)   // skipped dir

	scanner := NewScanner(
		[]string{"CMakeFiles", "third_party"},
		[]string{"*_test", "*_tests"},
	)

	found, err := scanner.Scan(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]bool{mathTest: true, parserTests: true}
	if len(found) != len(expected) {
		t.Fatalf("expected %d executables, got %d: %v", len(expected), len(found), found)
	}
	for _, path := range found {
		if !expected[path] {
			t.Errorf("unexpected executable found: %s", path)
		}
	}
}

func TestScanner_Scan_InvalidRoot(t *testing.T) {
	scanner := NewScanner(nil, []string{"*_test"})

	t.Run("missing directory", func(t *testing.T) {
		if _, err := scanner.Scan("/no/such/path"); err == nil {
			t.Error("expected an error for a missing root")
		}
	})

	t.Run("root is a file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "afile")
		if err := os.WriteFile(file, nil, 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if _, err := scanner.Scan(file); err == nil {
			t.Error("expected an error when the root is a file")
		}
	})
}
