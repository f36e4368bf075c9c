package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColorEnabled switches the default renderer between true color and
// plain ASCII output.
func SetColorEnabled(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// BlockColorStyle maps a calendar color onto the palette.
func BlockColorStyle(c domain.BlockColor) lipgloss.Style {
	switch c {
	case domain.ColorRed:
		return StyleRed
	case domain.ColorGreen:
		return StyleGreen
	case domain.ColorYellow:
		return StyleYellow
	default:
		return StyleDim
	}
}

// LoadIndicator returns a colored load label such as "● HIGH".
func LoadIndicator(load domain.CognitiveLoad) string {
	if load == "" {
		return StyleDim.Render("● --")
	}
	return BlockColorStyle(load.Color()).Render("● " + strings.ToUpper(string(load)))
}

// BlockTypeBadge renders the block type, with buffers dimmed.
func BlockTypeBadge(t domain.BlockType) string {
	switch t {
	case domain.BlockLearning:
		return StyleBlue.Render(string(t))
	case domain.BlockPractice:
		return StylePurple.Render(string(t))
	case domain.BlockRevision:
		return StyleGreen.Render(string(t))
	default:
		return StyleDim.Render(string(t))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
