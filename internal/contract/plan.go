package contract

import (
	"time"

	"github.com/alexanderramin/studyweek/internal/domain"
)

// DateLayout is the calendar date format used in requests and responses.
const DateLayout = "2006-01-02"

// PlanVersion tags every generated plan's metadata.
const PlanVersion = "2.0-studyweek"

type GeneratePlanRequest struct {
	Student      domain.Student
	Subjects     []domain.Subject
	Availability domain.Availability
	TargetDate   string
}

// SubjectNames returns the request's subject names in input order.
func (r GeneratePlanRequest) SubjectNames() []string {
	names := make([]string, len(r.Subjects))
	for i, s := range r.Subjects {
		names[i] = s.Name
	}
	return names
}

type GeneratePlanResponse struct {
	Metadata            PlanMetadata       `json:"metadata"`
	Week                []domain.DayBlock  `json:"week"`
	SubjectHours        map[string]int     `json:"subjectHours"`
	SubjectBreakdown    []SubjectBreakdown `json:"subjectBreakdown"`
	Next7DaysFocus      []string           `json:"next7DaysFocus"`
	ProgressCheckpoints []Checkpoint       `json:"progressCheckpoints"`
	Summary             Summary            `json:"summary"`
	TotalWeeklyHours    float64            `json:"totalWeeklyHours"`
	BufferHours         int                `json:"bufferHours"`
	AvailableHours      float64            `json:"availableHours"`
}

// TotalBlocks counts every block in the week, buffers included.
func (r *GeneratePlanResponse) TotalBlocks() int {
	n := 0
	for _, d := range r.Week {
		n += len(d.Blocks)
	}
	return n
}

// FindBlock looks a block up by its stable id.
func (r *GeneratePlanResponse) FindBlock(id string) (domain.StudyBlock, bool) {
	for _, d := range r.Week {
		for _, b := range d.Blocks {
			if b.ID == id {
				return b, true
			}
		}
	}
	return domain.StudyBlock{}, false
}

// FindSubject looks a subject breakdown up by name.
func (r *GeneratePlanResponse) FindSubject(name string) (SubjectBreakdown, bool) {
	for _, s := range r.SubjectBreakdown {
		if s.Name == name {
			return s, true
		}
	}
	return SubjectBreakdown{}, false
}

type PlanMetadata struct {
	GeneratedAt   time.Time         `json:"generatedAt"`
	Student       domain.Student    `json:"student"`
	TargetDate    string            `json:"targetDate"`
	PreferredTime domain.TimeWindow `json:"preferredTime"`
	Version       string            `json:"version"`
}

type SubjectBreakdown struct {
	Name              string               `json:"name"`
	Credits           int                  `json:"credits"`
	AllocatedHours    int                  `json:"allocatedHours"`
	Percentage        int                  `json:"percentage"`
	CognitiveLoad     domain.CognitiveLoad `json:"cognitiveLoad"`
	Color             domain.BlockColor    `json:"color"`
	Justification     string               `json:"justification"`
	StrongTopics      []string             `json:"strongTopics"`
	WeakTopics        []string             `json:"weakTopics"`
	CurrentConfidence int                  `json:"currentConfidence"`
	Priority          float64              `json:"priority"`
	MissingPrereqs    []string             `json:"missingPrerequisites,omitempty"`
}

type Checkpoint struct {
	Week                  int          `json:"week"`
	Date                  string       `json:"date"`
	Assessments           []Assessment `json:"assessments"`
	AdaptationSuggestions []string     `json:"adaptationSuggestions"`
}

type Assessment struct {
	Subject            string   `json:"subject"`
	CurrentConfidence  int      `json:"currentConfidence"`
	ExpectedConfidence int      `json:"expectedConfidence"`
	WeakTopicsToCover  int      `json:"weakTopicsToCover"`
	TopicsToReview     []string `json:"topicsToReview"`
}

type Summary struct {
	CompletionDate                string  `json:"completionDate"`
	WeeksUntilTarget              int     `json:"weeksUntilTarget"`
	DaysUntilTarget               int     `json:"daysUntilTarget"`
	EstimatedTimeline             string  `json:"estimatedTimeline"`
	AverageConfidenceBefore       float64 `json:"averageConfidenceBefore"`
	AverageConfidenceAfter        float64 `json:"averageConfidenceAfter"`
	ExpectedConfidenceImprovement string  `json:"expectedConfidenceImprovement"`
	WorkloadReductionPct          int     `json:"workloadReductionPct"`
	LastMinuteWorkloadReduction   string  `json:"lastMinuteWorkloadReduction"`
	Rationale                     string  `json:"rationale"`
}

// StoredPlan is a generated plan together with its persistence identity.
// ID is empty for plans that were not saved.
type StoredPlan struct {
	ID        string                `json:"id,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	Seed      *int64                `json:"seed,omitempty"`
	Plan      *GeneratePlanResponse `json:"plan"`
}
