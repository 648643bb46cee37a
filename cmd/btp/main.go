package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"btp/internal/cli"
	"btp/internal/cli/commands"
	"btp/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "btp",
		Short:   "Boost.Test processor",
		Long:    `A test processor for compiled Boost.Test executables. Discovers test binaries, probes their reporting capabilities, runs their test cases and normalizes the results into uniform failure reports with source locations.`,
		Version: version,
	}

	// Create initial config with defaults, merging the optional project file
	// and environment overrides
	cfg, err := config.Load(config.Flags{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
