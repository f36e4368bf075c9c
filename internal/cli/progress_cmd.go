package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/studyweek/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDoneCmd(app *App) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "done <plan-id> [block-id]",
		Short: "Mark a block, or a whole day with --day, as completed",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stored, err := resolvePlan(ctx, app, args[0])
			if err != nil {
				return err
			}

			if day != "" {
				if len(args) == 2 {
					return errors.New("pass either a block id or --day, not both")
				}
				n, err := app.Progress.MarkDay(ctx, stored.ID, day)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %d block(s) done on %s\n", n, day)
				return nil
			}

			if len(args) < 2 {
				return errors.New("block id is required (or use --day)")
			}
			if err := app.Progress.ToggleBlock(ctx, stored.ID, args[1], true); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.CheckMark(true), args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day name (Monday) or date (2026-03-02)")
	return cmd
}

func newUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <plan-id> <block-id>",
		Short: "Clear a block's completion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stored, err := resolvePlan(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Progress.ToggleBlock(ctx, stored.ID, args[1], false); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.CheckMark(false), args[1])
			return nil
		},
	}
}

func newConfidenceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "confidence <plan-id> <subject> <1-5>",
		Short: "Record a new confidence level for a subject",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid confidence %q: must be a number from 1 to 5", args[2])
			}
			ctx := context.Background()
			stored, err := resolvePlan(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Progress.SetConfidence(ctx, stored.ID, args[1], value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s confidence set to %d/5\n", args[1], value)
			return nil
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "progress [plan-id]",
		Short: "Show completion for a saved plan (default: latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stored, err := resolvePlan(ctx, app, planArg(args))
			if err != nil {
				return err
			}
			progress, err := app.Progress.Progress(ctx, stored.ID)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), progress)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(progress))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print progress as JSON")
	return cmd
}
