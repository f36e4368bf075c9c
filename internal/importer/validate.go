package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
)

// ValidateRequestFile checks the file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateRequestFile(f *RequestFile) []error {
	var errs []error

	errs = append(errs, validateDefaults(f.Defaults)...)
	errs = append(errs, validateSubjects(f.Subjects, f.Defaults)...)
	errs = append(errs, validateAvailability(&f.Availability)...)

	if f.TargetDate == "" {
		errs = append(errs, fmt.Errorf("targetDate is required"))
	} else if _, err := time.Parse(contract.DateLayout, f.TargetDate); err != nil {
		errs = append(errs, fmt.Errorf("targetDate: invalid date format %q (expected YYYY-MM-DD)", f.TargetDate))
	}

	return errs
}

func validateDefaults(d *DefaultsImport) []error {
	if d == nil {
		return nil
	}
	var errs []error
	if d.Credits != nil && *d.Credits <= 0 {
		errs = append(errs, fmt.Errorf("defaults.credits must be positive"))
	}
	if d.Confidence != nil && !domain.ValidConfidence(*d.Confidence) {
		errs = append(errs, fmt.Errorf("defaults.confidence must be between 1 and 5"))
	}
	return errs
}

func validateSubjects(subjects []SubjectImport, defaults *DefaultsImport) []error {
	var errs []error

	if len(subjects) == 0 {
		return append(errs, fmt.Errorf("at least one subject is required"))
	}

	names := make(map[string]bool, len(subjects))
	for i, s := range subjects {
		prefix := fmt.Sprintf("subjects[%d]", i)

		name := strings.TrimSpace(s.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if names[name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate subject %q", prefix, name))
		}
		names[name] = true

		if s.Credits != nil && *s.Credits <= 0 {
			errs = append(errs, fmt.Errorf("%s.credits must be positive", prefix))
		}

		switch {
		case s.Confidence != nil:
			if !domain.ValidConfidence(*s.Confidence) {
				errs = append(errs, fmt.Errorf("%s.confidence must be between 1 and 5", prefix))
			}
		case defaults == nil || defaults.Confidence == nil:
			errs = append(errs, fmt.Errorf("%s.confidence is required", prefix))
		}

		for j, topic := range s.Weak {
			if strings.TrimSpace(topic) == "" {
				errs = append(errs, fmt.Errorf("%s.weak[%d] must not be empty", prefix, j))
			}
		}
		for j, topic := range s.Strong {
			if strings.TrimSpace(topic) == "" {
				errs = append(errs, fmt.Errorf("%s.strong[%d] must not be empty", prefix, j))
			}
		}
	}

	return errs
}

func validateAvailability(a *AvailabilityImport) []error {
	var errs []error

	if a.Weekdays < 0 {
		errs = append(errs, fmt.Errorf("availability.weekdays must not be negative"))
	}
	if a.Weekends < 0 {
		errs = append(errs, fmt.Errorf("availability.weekends must not be negative"))
	}
	if a.Weekdays > 24 || a.Weekends > 24 {
		errs = append(errs, fmt.Errorf("availability: at most 24 hours per day"))
	}
	if _, err := domain.ParseTimeWindow(a.PreferredTime); err != nil {
		errs = append(errs, fmt.Errorf("availability.preferredTime: %w", err))
	}

	return errs
}
