package execution

import (
	"context"
	"time"

	"btp/internal/domain"
)

// Progress receives execution progress updates.
type Progress interface {
	Update(completed, passed, failed, skipped int)
	Finish()
}

// Executor plans and runs test cases and returns per-case results.
type Executor interface {
	Plan(ctx context.Context, executables []string) (*Plan, error)
	Run(ctx context.Context, plan *Plan, failFast bool) ([]domain.TestResult, time.Duration, error)
}
