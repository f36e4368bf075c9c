package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studyweek/internal/cli/formatter"
	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/alexanderramin/studyweek/internal/importer"
	"github.com/alexanderramin/studyweek/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// studyweekHuhTheme returns a custom huh theme using the Gruvbox palette.
func studyweekHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardAnswers holds raw form values. Numbers stay strings until the
// forms are done so huh can bind them directly.
type wizardAnswers struct {
	StudentName   string
	WeekdayHours  string
	WeekendHours  string
	PreferredTime string
	TargetDate    string
	Subjects      []subjectAnswers
}

type subjectAnswers struct {
	Name       string
	Credits    string
	Confidence string
	Strong     string
	Weak       string
}

// toRequestFile converts the answers into the request-file shape so the
// wizard and `generate --file` share validation.
func (a wizardAnswers) toRequestFile() (*importer.RequestFile, error) {
	weekdays, err := parseHours(a.WeekdayHours)
	if err != nil {
		return nil, fmt.Errorf("weekday hours: %w", err)
	}
	weekends, err := parseHours(a.WeekendHours)
	if err != nil {
		return nil, fmt.Errorf("weekend hours: %w", err)
	}

	f := &importer.RequestFile{
		Student: importer.StudentImport{Name: strings.TrimSpace(a.StudentName)},
		Availability: importer.AvailabilityImport{
			Weekdays:      weekdays,
			Weekends:      weekends,
			PreferredTime: a.PreferredTime,
		},
		TargetDate: strings.TrimSpace(a.TargetDate),
	}
	for _, s := range a.Subjects {
		sub := importer.SubjectImport{
			Name:   strings.TrimSpace(s.Name),
			Strong: splitTopics(s.Strong),
			Weak:   splitTopics(s.Weak),
		}
		if s.Credits != "" {
			credits, err := strconv.Atoi(strings.TrimSpace(s.Credits))
			if err != nil {
				return nil, fmt.Errorf("credits for %q: %w", sub.Name, err)
			}
			sub.Credits = &credits
		}
		confidence, err := strconv.Atoi(s.Confidence)
		if err != nil {
			return nil, fmt.Errorf("confidence for %q: %w", sub.Name, err)
		}
		sub.Confidence = &confidence
		f.Subjects = append(f.Subjects, sub)
	}
	return f, nil
}

func parseHours(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// splitTopics splits a comma-separated topic list, dropping blanks.
func splitTopics(s string) []string {
	var topics []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

func newWizardCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Build a request interactively and generate a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("wizard needs an interactive terminal; use 'studyweek generate --file' instead")
			}
			answers, err := runWizardForms(app.now())
			if err != nil {
				return err
			}
			seed, err := placementSeed(cmd.Flags(), app)
			if err != nil {
				return err
			}
			stored, err := generateFromAnswers(context.Background(), app, answers, service.GenerateOptions{Save: save, Seed: seed})
			if err != nil {
				return err
			}
			return printGenerated(cmd.OutOrStdout(), stored, false)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the plan for progress tracking")
	addSeedFlag(cmd.Flags())
	return cmd
}

// generateFromAnswers validates the answers like a request file and
// generates the plan.
func generateFromAnswers(ctx context.Context, app *App, answers wizardAnswers, opts service.GenerateOptions) (*contract.StoredPlan, error) {
	f, err := answers.toRequestFile()
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateRequestFile(f); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return app.Plans.Generate(ctx, importer.ToRequest(f), opts)
}

func runWizardForms(now time.Time) (wizardAnswers, error) {
	answers := wizardAnswers{
		WeekdayHours:  "3",
		WeekendHours:  "6",
		PreferredTime: string(domain.WindowNight),
		TargetDate:    now.AddDate(0, 0, 56).Format(contract.DateLayout),
	}
	if err := wizardAvailabilityForm(&answers).Run(); err != nil {
		return answers, err
	}

	for {
		s := subjectAnswers{Credits: strconv.Itoa(importer.DefaultCredits), Confidence: "3"}
		if err := wizardSubjectForm(len(answers.Subjects)+1, &s).Run(); err != nil {
			return answers, err
		}
		answers.Subjects = append(answers.Subjects, s)

		more := false
		if err := wizardConfirm("Add another subject?", &more).Run(); err != nil {
			return answers, err
		}
		if !more {
			return answers, nil
		}
	}
}

func wizardAvailabilityForm(a *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Your name").Placeholder("optional").Value(&a.StudentName),
			huh.NewInput().Title("Weekday hours per day").Value(&a.WeekdayHours).Validate(validateHours),
			huh.NewInput().Title("Weekend hours per day").Value(&a.WeekendHours).Validate(validateHours),
			huh.NewSelect[string]().
				Title("Preferred study time").
				Options(
					huh.NewOption("Morning (08:00-12:00)", string(domain.WindowMorning)),
					huh.NewOption("Afternoon (13:00-17:00)", string(domain.WindowAfternoon)),
					huh.NewOption("Night (18:00-22:00)", string(domain.WindowNight)),
				).
				Value(&a.PreferredTime),
			huh.NewInput().Title("Target date (YYYY-MM-DD)").Value(&a.TargetDate).Validate(validateDate),
		),
	).WithTheme(studyweekHuhTheme()).WithShowHelp(false)
}

func wizardSubjectForm(n int, s *subjectAnswers) *huh.Form {
	confidence := make([]huh.Option[string], 0, 5)
	for v := 1; v <= 5; v++ {
		confidence = append(confidence, huh.NewOption(strconv.Itoa(v), strconv.Itoa(v)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(fmt.Sprintf("Subject %d name", n)).Value(&s.Name).Validate(validateRequired("subject name")),
			huh.NewInput().Title("Credits").Value(&s.Credits).Validate(validatePositiveInt),
			huh.NewSelect[string]().Title("Confidence (1 = lost, 5 = solid)").Options(confidence...).Value(&s.Confidence),
			huh.NewInput().Title("Strong topics").Description("comma separated").Value(&s.Strong),
			huh.NewInput().Title("Weak topics").Description("comma separated").Value(&s.Weak),
		),
	).WithTheme(studyweekHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(studyweekHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateHours accepts empty or a number of hours between 0 and 24.
func validateHours(s string) error {
	v, err := parseHours(s)
	if err != nil || v < 0 || v > 24 {
		return fmt.Errorf("enter hours between 0 and 24")
	}
	return nil
}

// validateDate requires a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse(contract.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
