package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"btp/internal/boost"
	"btp/internal/config"
	"btp/internal/discovery"
	"btp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	executables, err := discoverExecutables(ctx, lc.config, lc.scanner, lc.filter, args)
	if err != nil {
		return err
	}
	if len(executables) == 0 {
		color.Yellow("No test executables found")
		return nil
	}

	opts := boost.Options{
		UseListContent:    lc.config.UseListContent,
		AcceptedExitCodes: lc.config.AcceptedExitCodes,
	}

	listings := make([]ui.ExecutableListing, 0, len(executables))
	for _, executable := range executables {
		facade := boost.NewFacade(ctx, executable, opts)
		tests, err := facade.ListTests(ctx)
		if err != nil {
			return err
		}
		listings = append(listings, ui.ExecutableListing{Executable: executable, Tests: tests})
	}

	return lc.formatter.PrintTestList(listings)
}
