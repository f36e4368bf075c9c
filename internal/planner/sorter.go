package planner

import (
	"sort"

	"github.com/alexanderramin/studyweek/internal/domain"
)

// SortForAllocation orders analyzed subjects by the canonical rules:
// 1. Missing prerequisites: more first
// 2. Priority score: higher first
// Ties keep input order.
func SortForAllocation(subjects []AnalyzedSubject) {
	sort.SliceStable(subjects, func(i, j int) bool {
		a, b := subjects[i], subjects[j]
		if a.MissingPrerequisiteCount != b.MissingPrerequisiteCount {
			return a.MissingPrerequisiteCount > b.MissingPrerequisiteCount
		}
		return a.PriorityScore > b.PriorityScore
	})
}

// DayCandidates returns the placement order for one day: High-load subjects
// first in allocation order, then the rest in the order chosen by order.
func DayCandidates(subjects []AnalyzedSubject, order CandidateOrder) []AnalyzedSubject {
	var high, rest []AnalyzedSubject
	for _, s := range subjects {
		if s.CognitiveLoad == domain.LoadHigh {
			high = append(high, s)
		} else {
			rest = append(rest, s)
		}
	}
	if order != nil && len(rest) > 1 {
		order.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	}
	return append(high, rest...)
}
