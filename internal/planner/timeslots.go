package planner

import "github.com/alexanderramin/studyweek/internal/domain"

var windowSlots = map[domain.TimeWindow][]string{
	domain.WindowMorning:   {"08:00-09:00", "09:00-10:00", "10:00-11:00", "11:00-12:00"},
	domain.WindowAfternoon: {"13:00-14:00", "14:00-15:00", "15:00-16:00", "16:00-17:00"},
	domain.WindowNight:     {"18:00-19:00", "19:00-20:00", "20:00-21:00", "21:00-22:00", "22:00-23:00"},
}

// bufferWindow is where buffer blocks go for each preferred window.
var bufferWindow = map[domain.TimeWindow]domain.TimeWindow{
	domain.WindowMorning:   domain.WindowNight,
	domain.WindowAfternoon: domain.WindowMorning,
	domain.WindowNight:     domain.WindowAfternoon,
}

// Slots returns the ordered one-hour slots of a window. Unknown windows fall
// back to Morning.
func Slots(w domain.TimeWindow) []string {
	slots, ok := windowSlots[w]
	if !ok {
		slots = windowSlots[domain.WindowMorning]
	}
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// loadOffset shifts lower-load subjects later within the window.
func loadOffset(load domain.CognitiveLoad) int {
	switch load {
	case domain.LoadMedium:
		return 1
	case domain.LoadLow:
		return 2
	default:
		return 0
	}
}

// GenerateTimeBlocks picks hours consecutive slots starting at cursor, shifted
// by the load offset and wrapping around the window.
func GenerateTimeBlocks(slots []string, cursor, hours int, load domain.CognitiveLoad) []string {
	if len(slots) == 0 || hours <= 0 {
		return nil
	}
	offset := loadOffset(load)
	out := make([]string, 0, hours)
	for i := 0; i < hours; i++ {
		out = append(out, slots[(cursor+i+offset)%len(slots)])
	}
	return out
}

// BufferSlot returns the buffer time range for a preferred window at cursor.
func BufferSlot(preferred domain.TimeWindow, cursor int) string {
	slots := Slots(bufferWindow[preferred])
	return slots[cursor%len(slots)]
}
