package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"btp/internal/boost"
	"btp/internal/config"
	"btp/internal/discovery"
	"btp/internal/domain"
	"btp/internal/execution"
	"btp/internal/storage"
	"btp/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  *execution.Sequential
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor *execution.Sequential,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	executables, err := discoverExecutables(ctx, rc.config, rc.scanner, rc.filter, args)
	if err != nil {
		return err
	}
	if len(executables) == 0 {
		color.Yellow("No test executables found")
		return nil
	}

	plan, err := rc.executor.Plan(ctx, executables)
	if err != nil {
		return err
	}

	// Restrict to the failures recorded by the previous run
	if rc.config.Flags.OnlyFailed {
		previous, err := rc.storage.Load()
		if err != nil {
			return fmt.Errorf("no previous run to rerun failures from: %w", err)
		}
		failedIDs := make(map[string]bool)
		for _, detail := range previous.Details {
			failedIDs[detail.Executable+"::"+detail.TestID] = true
		}
		plan.Filter(func(executable, testID string) bool {
			return failedIDs[executable+"::"+testID]
		})
		if plan.Count() == 0 {
			color.Green("✓ No failed tests to rerun")
			return nil
		}
	}

	progressBar := ui.NewProgressBar(plan.Count())
	rc.executor.SetProgress(progressBar)

	results, duration, err := rc.executor.Run(ctx, plan, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	details := buildFailureDetails(results)

	if err := rc.storage.Save(results, details, duration); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	if err := rc.formatter.PrintMetaStats(); err != nil {
		return err
	}

	if rc.config.Flags.OpenFaills && len(details) > 0 {
		output, err := rc.storage.Load()
		if err != nil {
			return err
		}
		return rc.viewer.View(output)
	}
	return nil
}

// buildFailureDetails flattens run results into the persisted failure shape.
func buildFailureDetails(results []domain.TestResult) []domain.FailureDetail {
	var details []domain.FailureDetail
	for _, result := range results {
		if result.Err != nil {
			details = append(details, domain.FailureDetail{
				Executable: result.Executable,
				TestID:     result.TestID,
				SourceFile: domain.NoSourceFile,
				Message:    result.Err.Error(),
			})
			continue
		}
		for _, record := range result.Outcome.Failures {
			details = append(details, domain.FailureDetail{
				Executable: result.Executable,
				TestID:     result.TestID,
				SourceFile: record.SourceFile,
				Line:       record.LineNumber,
				Message:    record.Message(),
			})
		}
	}
	return details
}

// discoverExecutables resolves the executables a command operates on: the
// positional arguments when given, otherwise a filtered scan of the test path.
// Unless probing is disabled, candidates that don't respond like a Boost.Test
// binary are dropped.
func discoverExecutables(
	ctx context.Context,
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	args []string,
) ([]string, error) {
	executables := args
	if len(executables) == 0 {
		found, err := scanner.Scan(cfg.GetTestPath())
		if err != nil {
			return nil, err
		}
		executables = filter.FilterByName(found, cfg.Flags.NameFilter)
	}

	if cfg.Flags.SkipProbe {
		return executables, nil
	}

	var confirmed []string
	for _, executable := range executables {
		if boost.IsTestExecutable(ctx, executable) {
			confirmed = append(confirmed, executable)
		}
	}
	return confirmed, nil
}
