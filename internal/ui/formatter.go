package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"btp/internal/config"
	"btp/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// ExecutableListing pairs an executable with the test identifiers it contains.
type ExecutableListing struct {
	Executable string
	Tests      []string
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	outputPath := f.config.GetOutputPath()

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	rows := []struct {
		label string
		print func(format string, a ...interface{})
		value string
	}{
		{"Test Executables", color.White, fmt.Sprintf("%d", meta.TotalExecutables)},
		{"Total Test Cases", color.White, fmt.Sprintf("%d", meta.TotalTests)},
		{"Passed", color.Green, fmt.Sprintf("%d", meta.PassedTests)},
		{"Failed", color.Red, fmt.Sprintf("%d", meta.FailedTests)},
		{"Skipped", color.Yellow, fmt.Sprintf("%d", meta.SkippedTests)},
		{"Duration", color.White, fmt.Sprintf("%.2fs", meta.DurationSeconds)},
		{"Timestamp", color.White, meta.Timestamp},
	}

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Printf("│ %-31s │ ", row.label)
		row.print("%-27s │\n", row.value)
		if i < len(rows)-1 {
			fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTests == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d test case(s) failed", meta.FailedTests)
		fmt.Println()
		f.printFailures(output.Details)
	}

	return nil
}

// printFailures prints failures grouped by executable.
func (f *Formatter) printFailures(details []domain.FailureDetail) {
	byExecutable := make(map[string][]domain.FailureDetail)
	var order []string
	for _, detail := range details {
		if _, seen := byExecutable[detail.Executable]; !seen {
			order = append(order, detail.Executable)
		}
		byExecutable[detail.Executable] = append(byExecutable[detail.Executable], detail)
	}

	for i, executable := range order {
		isLast := i == len(order)-1
		prefix := "├── "
		childPrefix := "│   "
		if isLast {
			prefix = "└── "
			childPrefix = "    "
		}
		color.Cyan("%s%s", prefix, f.relPath(executable))

		failures := byExecutable[executable]
		for j, detail := range failures {
			connector := "├── "
			if j == len(failures)-1 {
				connector = "└── "
			}
			location := detail.SourceFile
			if detail.Line > 0 {
				location = fmt.Sprintf("%s:%d", detail.SourceFile, detail.Line)
			}
			color.Red("%s%s%s  (%s)", childPrefix, connector, detail.TestID, location)
			if first := firstLine(detail.Message); first != "" {
				fmt.Printf("%s    %s\n", childPrefix, color.WhiteString(first))
			}
		}
	}
}

// PrintTestList prints the discovered executables and their test identifiers.
func (f *Formatter) PrintTestList(listings []ExecutableListing) error {
	total := 0
	for _, listing := range listings {
		total += len(listing.Tests)
	}
	color.Green("Found %d test case(s) in %d executable(s):\n", total, len(listings))

	for i, listing := range listings {
		isLastFile := i == len(listings)-1
		if isLastFile {
			color.Cyan("└── %s", f.relPath(listing.Executable))
		} else {
			color.Cyan("├── %s", f.relPath(listing.Executable))
		}

		for j, test := range listing.Tests {
			isLastCase := j == len(listing.Tests)-1

			var prefix string
			if isLastFile {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			fmt.Printf("%s%s\n", prefix, test)
		}
	}
	return nil
}

// PrintCapabilities prints the probed capability set for one executable.
func (f *Formatter) PrintCapabilities(executable string, isTestSuite bool, caps domain.Capabilities) {
	color.Cyan("%s", f.relPath(executable))
	printBool := func(label string, value bool) {
		if value {
			fmt.Printf("  %-28s %s\n", label, color.GreenString("yes"))
		} else {
			fmt.Printf("  %-28s %s\n", label, color.RedString("no"))
		}
	}
	printBool("boost test executable", isTestSuite)
	printBool("structured output (XML)", caps.StructuredOutput)
	printBool("junit log format", caps.JUnitLogFormat)
	printBool("content listing", caps.ListContent)
}

func (f *Formatter) relPath(path string) string {
	if rel, err := filepath.Rel(f.config.ProjectPath, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
