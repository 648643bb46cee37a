package boost

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"btp/internal/domain"
)

// reportErrorPrefixes mark report files written when Boost.Test hit an error
// fatal enough that it did not emit XML at all.
var reportErrorPrefixes = []string{
	"Boost.Test framework internal error: ",
	"Test setup error: ",
}

// defaultAcceptedExitCodes are the exit codes after which the XML log is still
// trustworthy: 0 for success, 200/201 for runs that failed or threw but still
// reported.
var defaultAcceptedExitCodes = []int{0, 200, 201}

// Runner executes a single test case inside a Boost.Test executable and
// converts whatever the binary produced into a normalized outcome.
type Runner struct {
	acceptedExitCodes []int
}

// NewRunner creates a Runner. With no accepted codes given, the Boost.Test
// defaults (0, 200, 201) apply.
func NewRunner(acceptedExitCodes []int) *Runner {
	if len(acceptedExitCodes) == 0 {
		acceptedExitCodes = defaultAcceptedExitCodes
	}
	return &Runner{acceptedExitCodes: acceptedExitCodes}
}

// RunNative executes the test with XML log and report files in a private temp
// directory and parses the log into failure records. Unexpected exit codes
// produce a single synthetic record carrying everything we captured; the
// framework's own setup/internal errors arrive via the report file and are
// likewise synthesized.
func (r *Runner) RunNative(ctx context.Context, executable, testID string, extraArgs []string) (domain.RunOutcome, error) {
	tempDir, err := os.MkdirTemp("", "btp-run-*")
	if err != nil {
		return domain.RunOutcome{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	logPath := filepath.Join(tempDir, "log.xml")
	reportPath := filepath.Join(tempDir, "report.xml")

	args := []string{
		"--output_format=XML",
		"--log_sink=" + logPath,
		"--report_sink=" + reportPath,
	}
	args = append(args, extraArgs...)

	cmd := exec.CommandContext(ctx, executable, args...)
	stdout, runErr := cmd.CombinedOutput()
	exitCode, err := exitStatus(runErr)
	if err != nil {
		return domain.RunOutcome{}, fmt.Errorf("run %s: %w", executable, err)
	}

	log := readFileIfExists(logPath)
	report := readFileIfExists(reportPath)

	if !r.accepted(exitCode) {
		msg := fmt.Sprintf(
			"Internal Error: calling %s for test %s failed (returncode=%d):\noutput:%s\nlog:%s\nreport:%s",
			executable, testID, exitCode, stdout, log, report)
		record := domain.NewFailureRecord(domain.NoSourceFile, 0, msg)
		return domain.FailedOutcome([]domain.FailureRecord{record}), nil
	}

	for _, prefix := range reportErrorPrefixes {
		if strings.HasPrefix(report, prefix) {
			// Boost.Test doesn't do XML output on fatal-enough errors.
			record := domain.NewFailureRecord(domain.UnknownLocation, 0, report)
			return domain.FailedOutcome([]domain.FailureRecord{record}), nil
		}
	}

	records, err := ParseLog(log)
	if err != nil {
		return domain.RunOutcome{}, fmt.Errorf("test %s: %w", testID, err)
	}
	return domain.FailedOutcome(records), nil
}

// RunJUnit executes the test with JUNIT logging to a private temp file and
// resolves the requested test id against the parsed report.
func (r *Runner) RunJUnit(ctx context.Context, executable, testID string, extraArgs []string) (domain.RunOutcome, error) {
	// The path must be fresh and non-existent; the child creates the file.
	logPath := filepath.Join(os.TempDir(), "btp-"+uuid.NewString()+"-log.xml")
	defer os.Remove(logPath)

	args := []string{
		"--log_format=JUNIT",
		"--log_sink=" + logPath,
	}
	args = append(args, extraArgs...)

	cmd := exec.CommandContext(ctx, executable, args...)
	_, runErr := cmd.CombinedOutput()
	if _, err := exitStatus(runErr); err != nil {
		return domain.RunOutcome{}, fmt.Errorf("run %s: %w", executable, err)
	}

	reports, err := ParseJUnitFile(logPath)
	if err != nil {
		return domain.RunOutcome{}, fmt.Errorf("test %s: %w", testID, err)
	}

	for _, report := range reports {
		if report.Name != testID {
			continue
		}
		if len(report.Failures) > 0 {
			// JUnit text carries no source location.
			records := make([]domain.FailureRecord, 0, len(report.Failures))
			for _, msg := range report.Failures {
				records = append(records, domain.NewFailureRecord(domain.UnknownLocation, 0, msg))
			}
			return domain.FailedOutcome(records), nil
		}
		if report.Skipped {
			return domain.SkippedOutcome(), nil
		}
		return domain.PassedOutcome(), nil
	}

	// The requested id never showed up. Surface everything the report holds
	// rather than passing silently on a test-id mismatch.
	var records []domain.FailureRecord
	for _, report := range reports {
		if len(report.Failures) == 0 {
			msg := fmt.Sprintf("unexpected test case in report: %s", report.Name)
			records = append(records, domain.NewFailureRecord(domain.UnknownLocation, 0, msg))
			continue
		}
		for _, msg := range report.Failures {
			records = append(records, domain.NewFailureRecord(domain.UnknownLocation, 0, report.Name+": "+msg))
		}
	}
	return domain.FailedOutcome(records), nil
}

func (r *Runner) accepted(exitCode int) bool {
	for _, code := range r.acceptedExitCodes {
		if exitCode == code {
			return true
		}
	}
	return false
}

// exitStatus extracts the child's exit code. A non-zero exit is data, not an
// error; only spawn-level failures come back as errors.
func exitStatus(runErr error) (int, error) {
	if runErr == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, runErr
}

// readFileIfExists returns the file's contents, or "" when the binary never
// wrote the artifact. A missing file is logical "no content", not an error.
func readFileIfExists(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
