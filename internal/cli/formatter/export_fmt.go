package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
)

const exportRuleWidth = 50

// FormatExportText renders a plan as unstyled text for saving or printing.
// progress may be nil for plans that were never saved.
func FormatExportText(stored *contract.StoredPlan, progress *contract.ProgressResponse) string {
	plan := stored.Plan
	var b strings.Builder

	fmt.Fprintf(&b, "STUDY PLAN - %s\n", domain.CoalesceStr(plan.Metadata.Student.Name, "anonymous"))
	fmt.Fprintf(&b, "Generated: %s\n", plan.Metadata.GeneratedAt.Format(contract.DateLayout))
	if stored.ID != "" {
		fmt.Fprintf(&b, "Plan ID: %s\n", stored.ID)
	}
	b.WriteString(strings.Repeat("=", exportRuleWidth+1) + "\n\n")

	s := plan.Summary
	exportSection(&b, "SUMMARY")
	fmt.Fprintf(&b, "Target Completion: %s\n", domain.CoalesceStr(s.CompletionDate, "Not set"))
	fmt.Fprintf(&b, "Expected Confidence Improvement: %s\n", domain.CoalesceStr(s.ExpectedConfidenceImprovement, "N/A"))
	fmt.Fprintf(&b, "Workload Reduction: %s\n", domain.CoalesceStr(s.LastMinuteWorkloadReduction, "N/A"))
	if s.Rationale != "" {
		fmt.Fprintf(&b, "Rationale: %s\n", s.Rationale)
	}
	b.WriteString("\n")

	exportSection(&b, "SUBJECT BREAKDOWN")
	for i, sub := range plan.SubjectBreakdown {
		fmt.Fprintf(&b, "%d. %s\n", i+1, sub.Name)
		fmt.Fprintf(&b, "   Credits: %d\n", sub.Credits)
		fmt.Fprintf(&b, "   Allocated Hours: %d hrs/week\n", sub.AllocatedHours)
		fmt.Fprintf(&b, "   Percentage: %d%%\n", sub.Percentage)
		fmt.Fprintf(&b, "   Cognitive Load: %s\n", sub.CognitiveLoad)
		if sub.Justification != "" {
			fmt.Fprintf(&b, "   Justification: %s\n", sub.Justification)
		}
		b.WriteString("\n")
	}

	var done map[string]bool
	if progress != nil {
		done = progress.CompletedIDs
	}
	exportSection(&b, "7-DAY STUDY SCHEDULE")
	for _, day := range plan.Week {
		fmt.Fprintf(&b, "\n%s - %s\n", day.Day, day.Date)
		if len(day.Blocks) == 0 {
			b.WriteString("  No blocks scheduled\n")
			continue
		}
		for _, blk := range day.Blocks {
			mark := ""
			if done[blk.ID] {
				mark = " [✓]"
			}
			fmt.Fprintf(&b, "  %s - %s%s\n", blk.Time, blk.Subject, mark)
			if blk.Topic != "" {
				fmt.Fprintf(&b, "    Topic: %s\n", blk.Topic)
			}
			fmt.Fprintf(&b, "    Type: %s\n", blk.Type)
			if blk.Rationale != "" {
				fmt.Fprintf(&b, "    Note: %s\n", blk.Rationale)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	exportSection(&b, "PROGRESS TRACKER")
	completed, rate, hours := 0, 0, 0
	if progress != nil {
		completed, rate, hours = progress.CompletedBlocks, progress.CompletionRate, progress.CompletedHours
	}
	fmt.Fprintf(&b, "Completed Blocks: %d/%d (%d%%)\n", completed, plan.TotalBlocks(), rate)
	fmt.Fprintf(&b, "Completed Hours: %d\n\n", hours)

	if len(plan.Next7DaysFocus) > 0 {
		exportSection(&b, "NEXT 7 DAYS FOCUS")
		for i, item := range plan.Next7DaysFocus {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func exportSection(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", exportRuleWidth) + "\n")
}
