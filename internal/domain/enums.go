package domain

import "fmt"

type CognitiveLoad string

const (
	LoadHigh   CognitiveLoad = "high"
	LoadMedium CognitiveLoad = "medium"
	LoadLow    CognitiveLoad = "low"
)

// Color returns the calendar color for a load level. Unknown levels render Yellow.
func (l CognitiveLoad) Color() BlockColor {
	switch l {
	case LoadHigh:
		return ColorRed
	case LoadLow:
		return ColorGreen
	default:
		return ColorYellow
	}
}

type BlockType string

const (
	BlockLearning BlockType = "Learning"
	BlockPractice BlockType = "Practice"
	BlockRevision BlockType = "Revision"
	BlockBuffer   BlockType = "Buffer"
)

type BlockColor string

const (
	ColorRed    BlockColor = "Red"
	ColorYellow BlockColor = "Yellow"
	ColorGreen  BlockColor = "Green"
)

type TimeWindow string

const (
	WindowMorning   TimeWindow = "Morning"
	WindowAfternoon TimeWindow = "Afternoon"
	WindowNight     TimeWindow = "Night"
)

// ValidTimeWindows is the canonical set of accepted preferred-time strings.
var ValidTimeWindows = map[string]bool{
	"Morning": true, "Afternoon": true, "Night": true,
}

// ParseTimeWindow converts a preferred-time string into a TimeWindow.
func ParseTimeWindow(s string) (TimeWindow, error) {
	if !ValidTimeWindows[s] {
		return "", fmt.Errorf("preferred time %q must be one of Morning, Afternoon, Night", s)
	}
	return TimeWindow(s), nil
}

// WeekDays lists the calendar day names in placement order.
var WeekDays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// IsWeekendIndex reports whether a placement day index (0=Monday) is Saturday or Sunday.
func IsWeekendIndex(dayIndex int) bool {
	return dayIndex == 5 || dayIndex == 6
}
