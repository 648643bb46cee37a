package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default test path
	DefaultTestPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultConfigFile is the optional per-project config file name
	DefaultConfigFile = "btp.yaml"
)

// DefaultPathsToIgnore are the default directories to skip when scanning for
// test executables (build system internals and vendored sources).
var DefaultPathsToIgnore = []string{
	"CMakeFiles",
	"third_party",
	"external",
	"_deps",
	"node_modules",
	"vendor",
}

// DefaultNamePatterns match the usual naming conventions for built test
// binaries.
var DefaultNamePatterns = []string{
	"*_test",
	"*-test",
	"*_tests",
	"test_*",
}

// DefaultAcceptedExitCodes are the Boost.Test exit codes after which the XML
// log is still parseable.
var DefaultAcceptedExitCodes = []int{0, 200, 201}
