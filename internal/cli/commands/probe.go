package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"btp/internal/boost"
	"btp/internal/config"
	"btp/internal/ui"
)

// ProbeCommand handles the probe command
type ProbeCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewProbeCommand creates a new ProbeCommand
func NewProbeCommand(cfg *config.Config, formatter *ui.Formatter) *ProbeCommand {
	return &ProbeCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (pc *ProbeCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	for i, executable := range args {
		if i > 0 {
			fmt.Println()
		}
		caps := boost.Probe(ctx, executable)
		isSuite := boost.IsTestExecutable(ctx, executable)
		pc.formatter.PrintCapabilities(executable, isSuite, caps)
	}
	return nil
}
