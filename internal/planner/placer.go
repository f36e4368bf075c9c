package planner

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
)

const (
	// MaxSessionHours caps one subject's hours on a single day.
	MaxSessionHours = 3
	// BufferSubject is the subject name carried by buffer blocks.
	BufferSubject = "Buffer"
	// GeneralTopic is used when no topic rule applies.
	GeneralTopic = "General study and concept reinforcement"
)

// PlaceWeek expands weekly hour budgets into seven days of time blocks, day 0
// dated start. Days are always named Monday through Sunday in order.
func PlaceWeek(subjects []AnalyzedSubject, availability domain.Availability, bufferHours int, start time.Time, order CandidateOrder) []domain.DayBlock {
	if order == nil {
		order = StableOrder{}
	}
	week := make([]domain.DayBlock, 0, len(domain.WeekDays))
	for dayIndex, dayName := range domain.WeekDays {
		day := domain.DayBlock{
			Day:    dayName,
			Date:   start.AddDate(0, 0, dayIndex).Format(contract.DateLayout),
			Blocks: placeDay(subjects, availability, bufferHours, dayIndex, order),
		}
		week = append(week, day)
	}
	return week
}

func placeDay(subjects []AnalyzedSubject, availability domain.Availability, bufferHours, dayIndex int, order CandidateOrder) []domain.StudyBlock {
	isWeekend := domain.IsWeekendIndex(dayIndex)
	available := availability.HoursForDay(dayIndex)
	slots := Slots(availability.PreferredWindow)

	blocks := []domain.StudyBlock{}
	cursor := 0
	used := 0.0

	for _, s := range DayCandidates(subjects, order) {
		if used >= available {
			break
		}
		perDay := math.Ceil(float64(s.AllocatedHours) / 7)
		hoursToday := math.Min(math.Min(perDay, available-used), MaxSessionHours)
		if hoursToday <= 0 {
			continue
		}

		blockType := DetermineBlockType(s, dayIndex, isWeekend)
		topics := SelectTopicsForDay(s, dayIndex, blockType)
		for i, timeRange := range GenerateTimeBlocks(slots, cursor, int(math.Ceil(hoursToday)), s.CognitiveLoad) {
			topic := topics[0]
			if i < len(topics) {
				topic = topics[i]
			}
			blocks = append(blocks, newStudyBlock(s, topic, blockType, timeRange, dayIndex))
			cursor++
		}
		used += hoursToday
	}

	if available-used > 0 && bufferHours > 0 {
		blocks = append(blocks, newBufferBlock(BufferSlot(availability.PreferredWindow, cursor), dayIndex))
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartTime() < blocks[j].StartTime()
	})
	return blocks
}

// DetermineBlockType picks Learning, Practice or Revision for a subject on a day.
func DetermineBlockType(s AnalyzedSubject, dayIndex int, isWeekend bool) domain.BlockType {
	if dayIndex < 2 && s.HasWeakTopics() && s.Confidence <= 3 {
		return domain.BlockLearning
	}
	if dayIndex >= 2 && dayIndex < 5 {
		return domain.BlockPractice
	}
	if isWeekend {
		return domain.BlockRevision
	}
	switch s.CognitiveLoad {
	case domain.LoadHigh:
		return domain.BlockLearning
	case domain.LoadMedium:
		return domain.BlockPractice
	default:
		return domain.BlockRevision
	}
}

// SelectTopicsForDay returns at least one topic for the subject's blocks today.
func SelectTopicsForDay(s AnalyzedSubject, dayIndex int, blockType domain.BlockType) []string {
	var topics []string
	weak := s.WeakTopics

	switch {
	case blockType == domain.BlockLearning && len(weak) > 0:
		topics = append(topics, weak[dayIndex%len(weak)])
	case blockType == domain.BlockPractice && len(weak) > 0:
		topics = append(topics, "Practice: "+weak[(dayIndex+1)%len(weak)])
	case blockType == domain.BlockRevision:
		if len(weak) > 0 {
			topics = append(topics, "Review: "+weak[0])
		}
		if len(s.StrongTopics) > 0 {
			topics = append(topics, "Reinforce: "+s.StrongTopics[0])
		}
	}

	if len(topics) == 0 {
		return []string{GeneralTopic}
	}
	return topics
}

func newStudyBlock(s AnalyzedSubject, topic string, blockType domain.BlockType, timeRange string, dayIndex int) domain.StudyBlock {
	color := s.CognitiveLoad.Color()
	return domain.StudyBlock{
		ID:            domain.BlockID(s.Name, dayIndex, timeRange),
		Time:          timeRange,
		Subject:       s.Name,
		Topic:         topic,
		Type:          blockType,
		Color:         color,
		CognitiveLoad: s.CognitiveLoad,
		Confidence:    s.Confidence,
		Rationale:     BlockRationale(s, topic, blockType, color),
		MicroTasks:    MicroTasks(topic, blockType),
		HighFocus:     s.CognitiveLoad == domain.LoadHigh,
	}
}

func newBufferBlock(timeRange string, dayIndex int) domain.StudyBlock {
	return domain.StudyBlock{
		ID:        domain.BlockID(BufferSubject, dayIndex, timeRange),
		Time:      timeRange,
		Subject:   BufferSubject,
		Type:      domain.BlockBuffer,
		Color:     domain.ColorYellow,
		Rationale: "Planned buffer for spillover tasks and unexpected delays",
		MicroTasks: []string{
			"Review previous day's notes",
			"Catch up on missed topics",
			"Take a break",
		},
	}
}

// BlockRationale explains why a block was scheduled.
func BlockRationale(s AnalyzedSubject, topic string, blockType domain.BlockType, color domain.BlockColor) string {
	var reasons []string
	if color == domain.ColorRed {
		reasons = append(reasons, "Weak topic")
	}
	if s.Confidence <= 2 {
		reasons = append(reasons, "low confidence")
	}
	if s.Credits >= 4 {
		reasons = append(reasons, "high credit")
	}
	if blockType == domain.BlockLearning {
		reasons = append(reasons, "new concept introduction")
	}
	if len(reasons) == 0 {
		return string(blockType) + " session for " + topic
	}
	return strings.Join(reasons, ", ") + " - " + string(blockType) + " session"
}

// MicroTasks returns the checklist for a block type.
func MicroTasks(topic string, blockType domain.BlockType) []string {
	switch blockType {
	case domain.BlockLearning:
		return []string{
			"Read theory on " + topic,
			"Watch video tutorial on " + topic,
			"Take notes on key concepts",
			"Solve 2-3 basic problems",
		}
	case domain.BlockPractice:
		return []string{
			"Solve 5-7 problems on " + topic,
			"Review solution approaches",
			"Identify common patterns",
			"Attempt challenging problem",
		}
	case domain.BlockRevision:
		return []string{
			"Review notes on " + topic,
			"Quick recap of formulas/concepts",
			"Solve 2-3 revision problems",
			"Create summary sheet",
		}
	default:
		return []string{
			"Flexible study time",
			"Catch up on missed topics",
		}
	}
}
