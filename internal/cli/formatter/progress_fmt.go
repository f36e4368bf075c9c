package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyweek/internal/contract"
)

const progressBarWidth = 20

// FormatProgress renders overall and per-subject completion.
func FormatProgress(p *contract.ProgressResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", Bold("Overall"), RenderProgress(p.CompletionRate, progressBarWidth))
	fmt.Fprintf(&b, "%s %d/%d   %s %d/%d\n\n",
		Dim("Blocks:"), p.CompletedBlocks, p.TotalBlocks,
		Dim("Hours:"), p.CompletedHours, p.TotalHours)

	rows := make([][]string, 0, len(p.Subjects))
	for _, s := range p.Subjects {
		pct := 0
		if s.TotalBlocks > 0 {
			pct = s.CompletedBlocks * 100 / s.TotalBlocks
		}
		rows = append(rows, []string{
			Bold(s.Subject),
			fmt.Sprintf("%d/%d", s.CompletedBlocks, s.TotalBlocks),
			RenderProgress(pct, breakdownBarWidth),
			confidenceChange(s.InitialConfidence, s.CurrentConfidence),
		})
	}
	b.WriteString(RenderTable([]string{"SUBJECT", "BLOCKS", "DONE", "CONFIDENCE"}, rows))

	return RenderBox("Progress", b.String())
}

func confidenceChange(initial, current int) string {
	text := fmt.Sprintf("%d/5", current)
	switch {
	case current > initial:
		return StyleGreen.Render(text + fmt.Sprintf(" ▲%d", current-initial))
	case current < initial:
		return StyleRed.Render(text + fmt.Sprintf(" ▼%d", initial-current))
	default:
		return StyleFg.Render(text)
	}
}
