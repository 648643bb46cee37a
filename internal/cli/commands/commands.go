package commands

import (
	"btp/internal/cli"
	"btp/internal/config"
	"btp/internal/discovery"
	"btp/internal/execution"
	"btp/internal/storage"
	"btp/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Probe  *ProbeCommand
	Faills *FaillsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore, cfg.NamePatterns)
	filter := discovery.NewFilter()
	executor := execution.NewSequential(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:    NewRunCommand(cfg, scanner, filter, executor, jsonStorage, formatter, errorViewer),
		List:   NewListCommand(cfg, scanner, filter, formatter),
		Probe:  NewProbeCommand(cfg, formatter),
		Faills: NewFaillsCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run [executable]...",
		Short: "Run Boost.Test executables",
		Long:  "Discover Boost.Test executables, run every test case they contain and collect normalized failure reports",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if len(flags.ExtraArgs) > 0 {
				cfg.ExtraArgs = append(cfg.ExtraArgs, flags.ExtraArgs...)
			}
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where executable detection should start")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter executables by name pattern (supports wildcards, e.g., '*math_test' or '*parser*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first test failure")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only tests that failed in the last run (from storage/test-results.json)")
	runCmd.Flags().BoolVar(&flags.OpenFaills, "open-faills", false, "Open the faills viewer when the run finishes with failures")
	runCmd.Flags().BoolVar(&flags.SkipProbe, "no-probe", false, "Skip the --help probe that filters out non-Boost executables")
	runCmd.Flags().StringArrayVar(&flags.ExtraArgs, "args", nil, "Extra arguments appended verbatim to every test invocation")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [executable]...",
		Short: "List discovered tests",
		Long:  "Scan for Boost.Test executables and list the test identifiers they contain without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where executable detection should start")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter executables by name pattern (supports wildcards)")
	listCmd.Flags().BoolVar(&flags.SkipProbe, "no-probe", false, "Skip the --help probe that filters out non-Boost executables")
	rootCmd.AddCommand(listCmd)

	// Probe command
	probeCmd := &cobra.Command{
		Use:   "probe <executable>...",
		Short: "Show probed capabilities of test executables",
		Long:  "Invoke each executable with --help and report which listing and logging features it advertises",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.Probe.Execute,
	}
	rootCmd.AddCommand(probeCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last test run in an interactive viewer",
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)
}
