package importer

import (
	"strings"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
)

// DefaultCredits applies when neither the subject nor the file defaults set credits.
const DefaultCredits = 3

// ToRequest converts a validated RequestFile into an engine request.
// Call ValidateRequestFile first; ToRequest assumes the file is valid.
func ToRequest(f *RequestFile) contract.GeneratePlanRequest {
	var defCredits, defConfidence *int
	if f.Defaults != nil {
		defCredits = f.Defaults.Credits
		defConfidence = f.Defaults.Confidence
	}

	subjects := make([]domain.Subject, 0, len(f.Subjects))
	for _, s := range f.Subjects {
		// Subject field > file defaults > hardcoded
		subjects = append(subjects, domain.Subject{
			Name:         strings.TrimSpace(s.Name),
			Credits:      domain.IntFromPtrWithDefault(DefaultCredits, s.Credits, defCredits),
			StrongTopics: trimAll(s.Strong),
			WeakTopics:   trimAll(s.Weak),
			Confidence:   domain.IntFromPtrWithDefault(0, s.Confidence, defConfidence),
		})
	}

	return contract.GeneratePlanRequest{
		Student: domain.Student{
			Name:    f.Student.Name,
			College: f.Student.College,
			Branch:  f.Student.Branch,
			Year:    f.Student.Year,
			Email:   f.Student.Email,
		},
		Subjects: subjects,
		Availability: domain.Availability{
			WeekdayHours:    f.Availability.Weekdays,
			WeekendHours:    f.Availability.Weekends,
			PreferredWindow: domain.TimeWindow(f.Availability.PreferredTime),
		},
		TargetDate: f.TargetDate,
	}
}

func trimAll(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		out = append(out, strings.TrimSpace(t))
	}
	return out
}
