package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/studyweek/internal/cli/formatter"
	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var file string
	var save, asJSON bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a weekly plan from a JSON or YAML request file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := placementSeed(cmd.Flags(), app)
			if err != nil {
				return err
			}
			stored, err := app.Plans.GenerateFromFile(context.Background(), file, service.GenerateOptions{Save: save, Seed: seed})
			if err != nil {
				return err
			}
			return printGenerated(cmd.OutOrStdout(), stored, asJSON)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Request file (.json, .yaml or .yml)")
	cmd.Flags().BoolVar(&save, "save", false, "Store the plan for progress tracking")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	addSeedFlag(cmd.Flags())
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func printGenerated(w io.Writer, stored *contract.StoredPlan, asJSON bool) error {
	if asJSON {
		return writeJSON(w, stored)
	}
	fmt.Fprintln(w, formatter.FormatPlan(stored))
	fmt.Fprintln(w)
	fmt.Fprint(w, formatter.FormatWeek(stored.Plan, nil))
	if stored.ID != "" {
		fmt.Fprintf(w, "\nSaved plan %s\n", formatter.Bold(stored.ID))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
