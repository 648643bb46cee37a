package boost

import (
	"context"
	"reflect"
	"testing"

	"btp/internal/domain"
)

// fakeBoostBinary emulates a modern Boost.Test executable: it answers --help,
// --list_content=HRF and both run modes.
const fakeBoostBinary = `
for arg in "$@"; do
  case "$arg" in
    --help)
      cat <<'EOF'
` + fullHelpText + `EOF
      exit 0
      ;;
    --list_content=HRF)
      printf 'math*\n  add*\n  sub*\n'
      exit 0
      ;;
  esac
done
` + sinkArgs + `
if [ -n "$report" ]; then
  printf '<TestLog></TestLog>' > "$log"
else
  cat > "$log" <<'EOF'
<testsuites><testsuite name="math"><testcase name="add" status="run"></testcase></testsuite></testsuites>
EOF
fi
exit 0
`

func TestFacade_StrategySelection(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	modern := writeScript(t, dir, "modern_suite", fakeBoostBinary)
	legacy := writeScript(t, dir, "legacy_suite", "cat <<'EOF'\n"+oldHelpText+"EOF\n")

	t.Run("fallback listing is the default even with list content support", func(t *testing.T) {
		facade := NewFacade(ctx, modern, Options{})
		tests, err := facade.ListTests(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(tests, []string{"modern_suite"}) {
			t.Errorf("expected fallback identifier, got %v", tests)
		}
	})

	t.Run("hierarchical listing when enabled and supported", func(t *testing.T) {
		facade := NewFacade(ctx, modern, Options{UseListContent: true})
		tests, err := facade.ListTests(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(tests, []string{"math/add", "math/sub"}) {
			t.Errorf("expected hierarchical identifiers, got %v", tests)
		}
	})

	t.Run("hierarchical listing stays off when unsupported", func(t *testing.T) {
		facade := NewFacade(ctx, legacy, Options{UseListContent: true})
		tests, err := facade.ListTests(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(tests, []string{"legacy_suite"}) {
			t.Errorf("expected fallback identifier, got %v", tests)
		}
	})

	t.Run("junit path chosen when advertised", func(t *testing.T) {
		facade := NewFacade(ctx, modern, Options{})
		if !facade.Capabilities().JUnitLogFormat {
			t.Fatal("expected the junit capability to be probed")
		}
		outcome, err := facade.RunTest(ctx, "math.add", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Status != domain.StatusPassed {
			t.Errorf("expected passed, got %v", outcome.Status)
		}
	})

	t.Run("unknown capabilities fall back to the native path", func(t *testing.T) {
		crash := writeScript(t, dir, "crash_suite", "exit 1\n")
		facade := NewFacade(ctx, crash, Options{})
		outcome, err := facade.RunTest(ctx, "crash_suite", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Status != domain.StatusFailed || len(outcome.Failures) != 1 {
			t.Fatalf("expected one synthetic failure, got %+v", outcome)
		}
		if outcome.Failures[0].SourceFile != domain.NoSourceFile {
			t.Errorf("expected catastrophic sentinel, got %q", outcome.Failures[0].SourceFile)
		}
	})
}
