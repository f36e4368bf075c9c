package cli

import (
	"fmt"

	"github.com/alexanderramin/studyweek/internal/cli/formatter"
	"github.com/alexanderramin/studyweek/internal/planner"
	"github.com/spf13/cobra"
)

func newPrereqsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prereqs",
		Short: "Print the built-in prerequisite table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPrerequisites(planner.PrerequisiteTable()))
			return nil
		},
	}
}
