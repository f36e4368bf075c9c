package domain

import (
	"fmt"
	"strings"
)

// StudyBlock is one scheduled hour in the calendar.
type StudyBlock struct {
	ID            string        `json:"id"`
	Time          string        `json:"time"`
	Subject       string        `json:"subject"`
	Topic         string        `json:"topic"`
	Type          BlockType     `json:"type"`
	Color         BlockColor    `json:"color"`
	CognitiveLoad CognitiveLoad `json:"cognitiveLoad,omitempty"`
	Confidence    int           `json:"confidence,omitempty"`
	Rationale     string        `json:"rationale"`
	MicroTasks    []string      `json:"microTasks"`
	HighFocus     bool          `json:"isHighFocus"`
}

// StartTime returns the "HH:MM" prefix of the block's time range.
func (b StudyBlock) StartTime() string {
	start, _, _ := strings.Cut(b.Time, "-")
	return start
}

// IsBuffer reports whether the block is reserved slack rather than a subject session.
func (b StudyBlock) IsBuffer() bool {
	return b.Type == BlockBuffer
}

// BlockID builds the stable block identifier from subject, day index and time range.
// Completion tracking keys on this value, so the format must not change.
func BlockID(subject string, dayIndex int, timeRange string) string {
	return fmt.Sprintf("%s-%d-%s", subject, dayIndex, strings.ReplaceAll(timeRange, ":", ""))
}

// DayBlock is one calendar day of the generated week.
type DayBlock struct {
	Day    string       `json:"day"`
	Date   string       `json:"date"`
	Blocks []StudyBlock `json:"blocks"`
}

// BufferCount returns how many buffer blocks the day holds.
func (d DayBlock) BufferCount() int {
	n := 0
	for _, b := range d.Blocks {
		if b.IsBuffer() {
			n++
		}
	}
	return n
}
