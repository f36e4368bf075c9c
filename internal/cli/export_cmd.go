package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/studyweek/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export [plan-id]",
		Short: "Export a saved plan as text or JSON (default: latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stored, err := resolvePlan(ctx, app, planArg(args))
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			switch format {
			case "text":
				progress, err := app.Progress.Progress(ctx, stored.ID)
				if err != nil {
					return err
				}
				buf.WriteString(formatter.FormatExportText(stored, progress))
			case "json":
				if err := writeJSON(&buf, stored); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q: use text or json", format)
			}

			if out == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported plan %s to %s\n", stored.ID, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}
