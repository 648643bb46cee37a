package boost

import (
	"context"

	"btp/internal/domain"
)

// Strategy selection is a runtime decision driven by probed capabilities, one
// tagged constant per independent implementation.
type listStrategy int

const (
	listFallback listStrategy = iota
	listContentHRF
)

type runStrategy int

const (
	runNative runStrategy = iota
	runJUnit
)

// Options tune how a facade picks its strategies.
type Options struct {
	// UseListContent enables hierarchical listing when the binary supports
	// it. Off by default: the fallback path works for every Boost version,
	// while --list_content output formats have shifted between releases.
	UseListContent bool

	// AcceptedExitCodes overrides the exit codes treated as "ran and
	// reported" (default 0, 200, 201).
	AcceptedExitCodes []int
}

// Facade binds one executable to the listing and reporting strategies its
// probed capabilities support. Capabilities are probed once per facade and
// never cached across processes.
type Facade struct {
	executable string
	caps       domain.Capabilities
	list       listStrategy
	run        runStrategy
	runner     *Runner
}

// NewFacade probes the executable and selects strategies. A failed probe
// falls back to the minimal feature set, never to an error.
func NewFacade(ctx context.Context, executable string, opts Options) *Facade {
	caps := Probe(ctx, executable)

	f := &Facade{
		executable: executable,
		caps:       caps,
		list:       listFallback,
		run:        runNative,
		runner:     NewRunner(opts.AcceptedExitCodes),
	}
	if opts.UseListContent && caps.ListContent {
		f.list = listContentHRF
	}
	if caps.JUnitLogFormat {
		f.run = runJUnit
	}
	return f
}

// Executable returns the path this facade was built for.
func (f *Facade) Executable() string {
	return f.executable
}

// Capabilities returns the probed capability set.
func (f *Facade) Capabilities() domain.Capabilities {
	return f.caps
}

// ListTests returns the ordered test identifiers contained in the executable.
// Never empty: the fallback strategy always yields exactly one identifier.
func (f *Facade) ListTests(ctx context.Context) ([]string, error) {
	if f.list == listContentHRF {
		return ListContent(ctx, f.executable)
	}
	return ListFallback(f.executable), nil
}

// RunTest executes one test case and returns its normalized outcome. Extra
// arguments are appended verbatim after the engine's own flags.
func (f *Facade) RunTest(ctx context.Context, testID string, extraArgs []string) (domain.RunOutcome, error) {
	if f.run == runJUnit {
		return f.runner.RunJUnit(ctx, f.executable, testID, extraArgs)
	}
	return f.runner.RunNative(ctx, f.executable, testID, extraArgs)
}
