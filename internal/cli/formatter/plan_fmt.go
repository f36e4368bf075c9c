package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/planner"
	"github.com/alexanderramin/studyweek/internal/repository"
)

const breakdownBarWidth = 10

// FormatPlan renders a generated plan: the hours header, the subject
// breakdown, the focus list, checkpoints and the summary.
func FormatPlan(stored *contract.StoredPlan) string {
	plan := stored.Plan
	var b strings.Builder

	b.WriteString(planHeadline(stored) + "\n")
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		Dim("Weekly:"), FormatHours(plan.TotalWeeklyHours),
		Dim("Buffer:"), FormatHours(float64(plan.BufferHours)),
		Dim("Available:"), FormatHours(plan.AvailableHours))
	b.WriteString("\n")

	b.WriteString(Header("Subject breakdown") + "\n")
	b.WriteString(FormatBreakdown(plan.SubjectBreakdown))

	if len(plan.Next7DaysFocus) > 0 {
		b.WriteString("\n" + Header("Next 7 days focus") + "\n")
		b.WriteString(Bullets(plan.Next7DaysFocus))
	}

	if len(plan.ProgressCheckpoints) > 0 {
		b.WriteString("\n" + Header("Checkpoints") + "\n")
		b.WriteString(FormatCheckpoints(plan.ProgressCheckpoints))
	}

	b.WriteString("\n" + Header("Summary") + "\n")
	b.WriteString(FormatSummary(plan.Summary))

	return RenderBox("Study plan", b.String())
}

func planHeadline(stored *contract.StoredPlan) string {
	meta := stored.Plan.Metadata
	name := meta.Student.Name
	if name == "" {
		name = "Study plan"
	}
	line := Bold(name) + "  " + Dim("due "+meta.TargetDate) + "  " + StyleBlue.Render(string(meta.PreferredTime))
	if stored.ID != "" {
		line += "  " + Dim("id "+stored.ID)
	}
	return line
}

// FormatBreakdown renders the per-subject allocation table with each
// subject's justification underneath.
func FormatBreakdown(subjects []contract.SubjectBreakdown) string {
	rows := make([][]string, 0, len(subjects))
	for _, s := range subjects {
		rows = append(rows, []string{
			BlockColorStyle(s.Color).Render(s.Name),
			strconv.Itoa(s.Credits),
			strconv.Itoa(s.AllocatedHours),
			RenderProgress(s.Percentage, breakdownBarWidth),
			LoadIndicator(s.CognitiveLoad),
			fmt.Sprintf("%d/5", s.CurrentConfidence),
			fmt.Sprintf("%.1f", s.Priority),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"SUBJECT", "CREDITS", "HOURS", "SHARE", "LOAD", "CONF", "PRIORITY"}, rows))
	for _, s := range subjects {
		if s.Justification == "" && len(s.MissingPrereqs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s %s\n", Bold(s.Name), Dim(s.Justification))
		if len(s.MissingPrereqs) > 0 {
			b.WriteString(StyleYellow.Render("  Missing prerequisites: "+strings.Join(s.MissingPrereqs, ", ")) + "\n")
		}
	}
	return b.String()
}

// FormatCheckpoints renders each checkpoint's assessments and suggestions.
func FormatCheckpoints(checkpoints []contract.Checkpoint) string {
	var b strings.Builder
	for _, cp := range checkpoints {
		fmt.Fprintf(&b, "%s  %s\n", Bold(fmt.Sprintf("Week %d", cp.Week)), Dim(HumanDate(cp.Date)))
		for _, a := range cp.Assessments {
			fmt.Fprintf(&b, "  %s %d → %d", a.Subject, a.CurrentConfidence, a.ExpectedConfidence)
			if a.WeakTopicsToCover > 0 {
				b.WriteString(Dim(fmt.Sprintf("  (%d weak: %s)", a.WeakTopicsToCover, strings.Join(a.TopicsToReview, ", "))))
			}
			b.WriteString("\n")
		}
		for _, s := range cp.AdaptationSuggestions {
			b.WriteString("  " + StyleYellow.Render("▸ "+s) + "\n")
		}
	}
	return b.String()
}

// FormatSummary renders the plan summary lines.
func FormatSummary(s contract.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s)\n", Dim("Target:"), s.CompletionDate, s.EstimatedTimeline)
	fmt.Fprintf(&b, "%s %.1f → %.1f  %s\n", Dim("Confidence:"),
		s.AverageConfidenceBefore, s.AverageConfidenceAfter, StyleGreen.Render(s.ExpectedConfidenceImprovement))
	fmt.Fprintf(&b, "%s %s\n", Dim("Workload:"), s.LastMinuteWorkloadReduction)
	if s.Rationale != "" {
		b.WriteString(Dim(s.Rationale) + "\n")
	}
	return b.String()
}

// FormatPlanList renders stored plans newest first.
func FormatPlanList(plans []repository.PlanSummary) string {
	if len(plans) == 0 {
		return Dim("No saved plans. Run 'studyweek generate --save' to create one.") + "\n"
	}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			StyleDim.Render(p.ID),
			Bold(p.StudentName),
			p.TargetDate,
			string(p.PreferredTime),
			p.CreatedAt.Local().Format("Jan 2 15:04"),
		})
	}
	return RenderTable([]string{"ID", "STUDENT", "TARGET", "WINDOW", "CREATED"}, rows)
}

// FormatPrerequisites renders the static prerequisite table.
func FormatPrerequisites(entries []planner.PrerequisiteEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{Bold(e.Subject), strings.Join(e.Prerequisites, ", ")})
	}
	return RenderTable([]string{"SUBJECT", "PREREQUISITES"}, rows)
}
