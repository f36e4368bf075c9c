package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate renders a plan date ("2026-03-02") as "Mon, Mar 2". Unparseable
// input is returned unchanged.
func HumanDate(date string) string {
	t, err := time.Parse(contract.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatHours renders an hour count without a trailing ".0".
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if h == 1 {
		return s + " hr"
	}
	return s + " hrs"
}

// CheckMark renders the completion marker for a block.
func CheckMark(done bool) string {
	if done {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// Bullets renders items as a dimmed-number list.
func Bullets(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%d.", i+1)), item)
	}
	return b.String()
}
