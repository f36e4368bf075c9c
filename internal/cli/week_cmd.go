package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyweek/internal/cli/formatter"
	"github.com/alexanderramin/studyweek/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "week [plan-id]",
		Short: "Show the 7-day calendar of a saved plan (default: latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stored, err := resolvePlan(ctx, app, planArg(args))
			if err != nil {
				return err
			}

			if interactive {
				if !app.interactive() {
					return errors.New("--interactive needs a terminal")
				}
				start := dayIndexFor(stored.Plan.Week, app.now().Format(contract.DateLayout))
				_, err := tea.NewProgram(newWeekModel(stored, app.Progress, start), tea.WithAltScreen()).Run()
				return err
			}

			progress, err := app.Progress.Progress(ctx, stored.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(stored.Plan, progress.CompletedIDs))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the week and toggle blocks")
	return cmd
}
