package domain

import "time"

// Status classifies the outcome of running a single test case.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusSkipped
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	}
	return "unknown"
}

// RunOutcome is the result of running one test case: passed, failed with one
// or more failure records, or skipped. A failed outcome always carries at
// least one record; construct outcomes through the helpers below to keep that
// invariant.
type RunOutcome struct {
	Status   Status
	Failures []FailureRecord
}

// PassedOutcome returns a passing outcome.
func PassedOutcome() RunOutcome {
	return RunOutcome{Status: StatusPassed}
}

// SkippedOutcome returns a skipped outcome. Skips are a distinct result, not
// a failure variant.
func SkippedOutcome() RunOutcome {
	return RunOutcome{Status: StatusSkipped}
}

// FailedOutcome returns a failed outcome carrying the given records. An empty
// record list means nothing went wrong, so it collapses to a pass.
func FailedOutcome(records []FailureRecord) RunOutcome {
	if len(records) == 0 {
		return PassedOutcome()
	}
	return RunOutcome{Status: StatusFailed, Failures: records}
}

// TestResult represents the result of executing one test case in an executable
type TestResult struct {
	Executable string        // Path to the executable that was run
	TestID     string        // Identifier of the test case inside it
	Outcome    RunOutcome    // Normalized pass/fail/skip outcome
	Duration   time.Duration // Time taken to execute
	Err        error         // Engine-level error (spawn/parse), not a test failure
}

// RunMeta contains metadata about a test run
type RunMeta struct {
	TotalExecutables int     `json:"total_executables"`
	TotalTests       int     `json:"total_tests"`
	PassedTests      int     `json:"passed_tests"`
	FailedTests      int     `json:"failed_tests"`
	SkippedTests     int     `json:"skipped_tests"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Timestamp        string  `json:"timestamp"`
}

// RunOutput is the complete output structure for a test run
type RunOutput struct {
	Meta    RunMeta         `json:"meta"`
	Details []FailureDetail `json:"details"`
}
