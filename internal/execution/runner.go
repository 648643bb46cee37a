package execution

import (
	"context"
	"time"

	"btp/internal/boost"
	"btp/internal/config"
	"btp/internal/domain"
)

// planItem is one scheduled test case, bound to the facade that probed its
// executable so capabilities are not re-probed per case.
type planItem struct {
	facade *boost.Facade
	testID string
}

// Plan is the ordered set of test cases a run will execute.
type Plan struct {
	items []planItem
}

// Count returns the number of test cases in the plan.
func (p *Plan) Count() int {
	return len(p.items)
}

// Filter keeps only the cases the given predicate accepts.
func (p *Plan) Filter(keep func(executable, testID string) bool) {
	filtered := p.items[:0]
	for _, item := range p.items {
		if keep(item.facade.Executable(), item.testID) {
			filtered = append(filtered, item)
		}
	}
	p.items = filtered
}

// Sequential executes planned test cases one at a time, in order. Test
// executables are black boxes that may share fixtures on disk, so no
// concurrency is attempted.
type Sequential struct {
	config   *config.Config
	progress Progress
}

// NewSequential creates a Sequential executor.
func NewSequential(cfg *config.Config) *Sequential {
	return &Sequential{config: cfg}
}

// SetProgress sets the progress reporter for the executor.
func (e *Sequential) SetProgress(progress Progress) {
	e.progress = progress
}

// Plan probes every executable and lists the test cases it contains.
func (e *Sequential) Plan(ctx context.Context, executables []string) (*Plan, error) {
	opts := boost.Options{
		UseListContent:    e.config.UseListContent,
		AcceptedExitCodes: e.config.AcceptedExitCodes,
	}

	plan := &Plan{}
	for _, executable := range executables {
		facade := boost.NewFacade(ctx, executable, opts)
		testIDs, err := facade.ListTests(ctx)
		if err != nil {
			return nil, err
		}
		for _, testID := range testIDs {
			plan.items = append(plan.items, planItem{facade: facade, testID: testID})
		}
	}
	return plan, nil
}

// Run executes the plan. With failFast set, execution stops after the first
// failing test case.
func (e *Sequential) Run(ctx context.Context, plan *Plan, failFast bool) ([]domain.TestResult, time.Duration, error) {
	var (
		results []domain.TestResult
		passed  int
		failed  int
		skipped int
	)
	startTime := time.Now()

	for _, item := range plan.items {
		caseStart := time.Now()
		outcome, err := item.facade.RunTest(ctx, item.testID, e.config.ExtraArgs)
		result := domain.TestResult{
			Executable: item.facade.Executable(),
			TestID:     item.testID,
			Outcome:    outcome,
			Duration:   time.Since(caseStart),
			Err:        err,
		}
		results = append(results, result)

		switch {
		case err != nil || outcome.Status == domain.StatusFailed:
			failed++
		case outcome.Status == domain.StatusSkipped:
			skipped++
		default:
			passed++
		}
		if e.progress != nil {
			e.progress.Update(len(results), passed, failed, skipped)
		}

		if failFast && (err != nil || outcome.Status == domain.StatusFailed) {
			break
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	return results, time.Since(startTime), nil
}
