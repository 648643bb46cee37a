package boost

import (
	"encoding/xml"
	"fmt"
	"os"
)

// statusNotRun is the testcase status Boost.Test writes for skipped cases.
const statusNotRun = "notrun"

// TestReport is one testcase entry from a JUnit-format log, keyed by the
// fully-qualified "suite.case" name.
type TestReport struct {
	Name     string
	Failures []string
	Skipped  bool
}

type junitDocument struct {
	Suites []junitSuite `xml:"testsuite"`
}

type junitSuite struct {
	Name  string      `xml:"name,attr"`
	Cases []junitCase `xml:"testcase"`
}

type junitCase struct {
	Name     string         `xml:"name,attr"`
	Status   string         `xml:"status,attr"`
	Failures []junitFailure `xml:"failure"`
}

type junitFailure struct {
	Message string `xml:",chardata"`
}

// ParseJUnitFile reads and parses a JUnit XML log file.
func ParseJUnitFile(path string) ([]TestReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read junit log: %w", err)
	}
	return parseJUnit(data)
}

// parseJUnit extracts one report per testcase, in document order.
func parseJUnit(data []byte) ([]TestReport, error) {
	var doc junitDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse junit log: %w", err)
	}

	var reports []TestReport
	for _, suite := range doc.Suites {
		for _, tc := range suite.Cases {
			var failures []string
			for _, f := range tc.Failures {
				failures = append(failures, f.Message)
			}
			reports = append(reports, TestReport{
				Name:     suite.Name + "." + tc.Name,
				Failures: failures,
				Skipped:  tc.Status == statusNotRun,
			})
		}
	}
	return reports, nil
}
