package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
)

// FormatWeek renders the 7-day calendar. done marks completed block ids and
// may be nil.
func FormatWeek(plan *contract.GeneratePlanResponse, done map[string]bool) string {
	var b strings.Builder
	for i, day := range plan.Week {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatDay(day, done, -1))
	}
	return b.String()
}

// FormatDay renders one day as a table of blocks. selected highlights a
// block index; pass -1 for none.
func FormatDay(day domain.DayBlock, done map[string]bool, selected int) string {
	var b strings.Builder
	b.WriteString(dayTitle(day) + "\n")

	if len(day.Blocks) == 0 {
		b.WriteString(Dim("  No blocks scheduled") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(day.Blocks))
	for i, blk := range day.Blocks {
		cursor := " "
		if i == selected {
			cursor = StyleHeader.Render("›")
		}
		rows = append(rows, []string{
			cursor + " " + CheckMark(done[blk.ID]),
			blk.Time,
			BlockColorStyle(blk.Color).Render(blk.Subject),
			BlockTypeBadge(blk.Type),
			blockTopic(blk),
		})
	}
	b.WriteString(RenderTable([]string{"", "TIME", "SUBJECT", "TYPE", "TOPIC"}, rows))
	return b.String()
}

// FormatBlockDetail renders the rationale and micro-tasks of one block.
func FormatBlockDetail(blk domain.StudyBlock) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(blk.Subject), Dim(blk.ID))
	if blk.CognitiveLoad != "" {
		fmt.Fprintf(&b, "%s  confidence %d/5\n", LoadIndicator(blk.CognitiveLoad), blk.Confidence)
	}
	if blk.Rationale != "" {
		b.WriteString(blk.Rationale + "\n")
	}
	for _, task := range blk.MicroTasks {
		fmt.Fprintf(&b, "  %s %s\n", Dim("-"), task)
	}
	return b.String()
}

func dayTitle(day domain.DayBlock) string {
	title := StyleHeader.Render(strings.ToUpper(day.Day)) + "  " + Dim(HumanDate(day.Date))
	if n := day.BufferCount(); n > 0 {
		title += "  " + Dim(fmt.Sprintf("(%d buffer)", n))
	}
	return title
}

func blockTopic(blk domain.StudyBlock) string {
	topic := blk.Topic
	if blk.HighFocus {
		topic += " " + StyleRed.Render("★")
	}
	return topic
}
