package boost

import (
	"context"
	"os/exec"
	"regexp"
	"strings"

	"btp/internal/domain"
)

// junitLogFormatPattern matches the help line advertising JUNIT as a valid
// --log_format value, e.g. "--log_format=<HRF|CLF|XML|JUNIT>".
var junitLogFormatPattern = regexp.MustCompile(`(?m)^.*--log_format=<.*JUNIT.*>.*$`)

// Probe runs the executable with --help and inspects the captured text to
// decide which reporting features it supports. A spawn failure or non-zero
// exit means we cannot tell, so minimal capabilities are assumed.
func Probe(ctx context.Context, executable string) domain.Capabilities {
	output, err := helpOutput(ctx, executable)
	if err != nil {
		return domain.Capabilities{}
	}
	return domain.Capabilities{
		StructuredOutput: strings.Contains(output, "--output_format"),
		JUnitLogFormat:   junitLogFormatPattern.MatchString(output),
		ListContent:      strings.Contains(output, "--list_content"),
	}
}

// IsTestExecutable reports whether the executable looks like a Boost.Test
// binary, based on the option names its help text mentions.
func IsTestExecutable(ctx context.Context, executable string) bool {
	output, err := helpOutput(ctx, executable)
	if err != nil {
		return false
	}
	return strings.Contains(output, "--output_format") && strings.Contains(output, "log_format")
}

// helpOutput captures combined stdout+stderr of the --help invocation.
func helpOutput(ctx context.Context, executable string) (string, error) {
	cmd := exec.CommandContext(ctx, executable, "--help")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", err
	}
	return string(output), nil
}
