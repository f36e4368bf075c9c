package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyweek/internal/domain"
)

// FieldError names one missing or invalid request field.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// ValidationError aborts a generation before any computation runs.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "VALIDATION_ERROR: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate checks the engine preconditions and returns a *ValidationError
// listing every problem, or nil.
func (r GeneratePlanRequest) Validate() error {
	verr := &ValidationError{}

	if len(r.Subjects) == 0 {
		verr.add("subjects", "at least one subject is required")
	}
	seen := make(map[string]bool, len(r.Subjects))
	for i, s := range r.Subjects {
		prefix := fmt.Sprintf("subjects[%d]", i)
		if strings.TrimSpace(s.Name) == "" {
			verr.add(prefix+".name", "is required")
		} else if seen[s.Name] {
			verr.add(prefix+".name", "duplicate subject %q", s.Name)
		}
		seen[s.Name] = true
		if s.Credits <= 0 {
			verr.add(prefix+".credits", "must be positive")
		}
		if !domain.ValidConfidence(s.Confidence) {
			verr.add(prefix+".confidence", "must be between 1 and 5, got %d", s.Confidence)
		}
	}

	if r.Availability.WeekdayHours < 0 {
		verr.add("availability.weekdays", "must not be negative")
	}
	if r.Availability.WeekendHours < 0 {
		verr.add("availability.weekends", "must not be negative")
	}
	if !domain.ValidTimeWindows[string(r.Availability.PreferredWindow)] {
		verr.add("availability.preferredTime", "must be one of Morning, Afternoon, Night")
	}

	if r.TargetDate == "" {
		verr.add("targetDate", "is required")
	} else if _, err := time.Parse(DateLayout, r.TargetDate); err != nil {
		verr.add("targetDate", "invalid date format %q (expected YYYY-MM-DD)", r.TargetDate)
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
