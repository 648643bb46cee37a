package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"btp/internal/domain"
)

// Save writes test results and failure details to the configured JSON output file.
func (s *JSONStorage) Save(results []domain.TestResult, details []domain.FailureDetail, duration time.Duration) error {
	executables := make(map[string]bool)
	var passed, failed, skipped int
	for _, r := range results {
		executables[r.Executable] = true
		switch {
		case r.Err != nil || r.Outcome.Status == domain.StatusFailed:
			failed++
		case r.Outcome.Status == domain.StatusSkipped:
			skipped++
		default:
			passed++
		}
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalExecutables: len(executables),
			TotalTests:       len(results),
			PassedTests:      passed,
			FailedTests:      failed,
			SkippedTests:     skipped,
			Duration:         duration.String(),
			DurationSeconds:  duration.Seconds(),
			Timestamp:        time.Now().Format(time.RFC3339),
		},
		Details: details,
	}

	return s.SaveOutput(&output)
}

// Load reads the last test results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
