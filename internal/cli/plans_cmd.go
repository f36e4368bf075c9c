package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studyweek/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlansCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage saved plans",
	}

	cmd.AddCommand(
		newPlansListCmd(app),
		newPlansShowCmd(app),
		newPlansLatestCmd(app),
		newPlansDeleteCmd(app),
	)

	return cmd
}

func newPlansListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(plans))
			return nil
		},
	}
}

func newPlansShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <plan-id>",
		Short: "Show a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := resolvePlan(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			return printGenerated(cmd.OutOrStdout(), stored, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	return cmd
}

func newPlansLatestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show the most recently saved plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := app.Plans.Latest(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(stored))
			return nil
		},
	}
}

func newPlansDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a saved plan with its progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stored, err := resolvePlan(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(ctx, stored.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", stored.ID)
			return nil
		},
	}
}
