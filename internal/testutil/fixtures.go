package testutil

import (
	"time"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
)

// Now is the fixed clock used across tests: a Monday morning.
var Now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// Clock returns Now; pass it to planner.WithClock.
func Clock() time.Time { return Now }

// Subject options
type SubjectOption func(*domain.Subject)

func WithCredits(c int) SubjectOption {
	return func(s *domain.Subject) { s.Credits = c }
}

func WithConfidence(c int) SubjectOption {
	return func(s *domain.Subject) { s.Confidence = c }
}

func WithWeak(topics ...string) SubjectOption {
	return func(s *domain.Subject) { s.WeakTopics = topics }
}

func WithStrong(topics ...string) SubjectOption {
	return func(s *domain.Subject) { s.StrongTopics = topics }
}

// NewTestSubject returns a Medium-load subject: 3 credits, confidence 3,
// no topics.
func NewTestSubject(name string, opts ...SubjectOption) domain.Subject {
	s := domain.Subject{
		Name:       name,
		Credits:    3,
		Confidence: 3,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Request options
type RequestOption func(*contract.GeneratePlanRequest)

func WithSubjects(subjects ...domain.Subject) RequestOption {
	return func(r *contract.GeneratePlanRequest) { r.Subjects = subjects }
}

func WithAvailability(weekday, weekend float64, window domain.TimeWindow) RequestOption {
	return func(r *contract.GeneratePlanRequest) {
		r.Availability = domain.Availability{WeekdayHours: weekday, WeekendHours: weekend, PreferredWindow: window}
	}
}

func WithTargetDate(date string) RequestOption {
	return func(r *contract.GeneratePlanRequest) { r.TargetDate = date }
}

func WithStudentName(name string) RequestOption {
	return func(r *contract.GeneratePlanRequest) { r.Student.Name = name }
}

// NewTestRequest returns a valid request for one Data Structures subject,
// 3 weekday and 6 weekend hours at Night, due eight weeks after Now.
func NewTestRequest(opts ...RequestOption) contract.GeneratePlanRequest {
	r := contract.GeneratePlanRequest{
		Student: domain.Student{Name: "Test Student"},
		Subjects: []domain.Subject{
			NewTestSubject("Data Structures",
				WithCredits(4),
				WithStrong("Arrays"),
				WithWeak("Trees", "Graphs")),
		},
		Availability: domain.Availability{WeekdayHours: 3, WeekendHours: 6, PreferredWindow: domain.WindowNight},
		TargetDate:   Now.AddDate(0, 0, 56).Format(contract.DateLayout),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
