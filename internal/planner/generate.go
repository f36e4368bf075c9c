package planner

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studyweek/internal/contract"
)

type generateConfig struct {
	now   func() time.Time
	order CandidateOrder
}

// Option customizes a single Generate call.
type Option func(*generateConfig)

// WithClock fixes the generation time. Day 0 of the week is now's date.
func WithClock(now func() time.Time) Option {
	return func(c *generateConfig) { c.now = now }
}

// WithOrder sets the tie-break order for non-High subjects.
func WithOrder(order CandidateOrder) Option {
	return func(c *generateConfig) { c.order = order }
}

// Generate runs the whole pipeline: analysis and allocation, week placement,
// then derived insights. Invalid requests return a *contract.ValidationError
// and no plan.
func Generate(req contract.GeneratePlanRequest, opts ...Option) (*contract.GeneratePlanResponse, error) {
	cfg := generateConfig{now: time.Now, order: StableOrder{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	target, err := time.Parse(contract.DateLayout, req.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("parsing target date: %w", err)
	}

	now := cfg.now()
	alloc, err := Allocate(req.Subjects, req.Availability)
	if err != nil {
		return nil, fmt.Errorf("allocating hours: %w", err)
	}

	week := PlaceWeek(alloc.Subjects, req.Availability, alloc.BufferHours, now, cfg.order)

	subjectHours := make(map[string]int, len(alloc.Subjects))
	breakdown := make([]contract.SubjectBreakdown, 0, len(alloc.Subjects))
	for _, s := range alloc.Subjects {
		subjectHours[s.Name] = s.AllocatedHours
		breakdown = append(breakdown, subjectBreakdown(s, alloc.AvailableHours))
	}

	return &contract.GeneratePlanResponse{
		Metadata: contract.PlanMetadata{
			GeneratedAt:   now.UTC(),
			Student:       req.Student,
			TargetDate:    req.TargetDate,
			PreferredTime: req.Availability.PreferredWindow,
			Version:       contract.PlanVersion,
		},
		Week:                week,
		SubjectHours:        subjectHours,
		SubjectBreakdown:    breakdown,
		Next7DaysFocus:      Next7DaysFocus(week, alloc.Subjects),
		ProgressCheckpoints: ProgressCheckpoints(alloc.Subjects, target, now),
		Summary:             BuildSummary(alloc, req.Availability.PreferredWindow, req.TargetDate, target, now),
		TotalWeeklyHours:    alloc.TotalWeeklyHours,
		BufferHours:         alloc.BufferHours,
		AvailableHours:      alloc.AvailableHours,
	}, nil
}

func subjectBreakdown(s AnalyzedSubject, available float64) contract.SubjectBreakdown {
	pct := 0
	if available > 0 {
		pct = int(RoundHalfUp(float64(s.AllocatedHours) / available * 100))
	}
	return contract.SubjectBreakdown{
		Name:              s.Name,
		Credits:           s.Credits,
		AllocatedHours:    s.AllocatedHours,
		Percentage:        pct,
		CognitiveLoad:     s.CognitiveLoad,
		Color:             s.CognitiveLoad.Color(),
		Justification:     s.Justification,
		StrongTopics:      s.StrongTopics,
		WeakTopics:        s.WeakTopics,
		CurrentConfidence: s.Confidence,
		Priority:          s.PriorityScore,
		MissingPrereqs:    s.MissingPrerequisites,
	}
}
