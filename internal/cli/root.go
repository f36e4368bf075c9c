package cli

import (
	"time"

	"github.com/alexanderramin/studyweek/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Progress service.ProgressService

	// Seed fixes placement order for every generation when set.
	Seed *int64
	// Now defaults to time.Now. Without a seed, plans are seeded from it.
	Now func() time.Time
	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studyweek" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studyweek",
		Short:         "Weekly study planner: allocate hours by priority and lay out a 7-day calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newWizardCmd(app),
		newPlansCmd(app),
		newWeekCmd(app),
		newDoneCmd(app),
		newUndoCmd(app),
		newConfidenceCmd(app),
		newProgressCmd(app),
		newExportCmd(app),
		newPrereqsCmd(),
	)

	return root
}
