package planner

import (
	"errors"
	"math"

	"github.com/alexanderramin/studyweek/internal/domain"
)

const (
	// BufferFraction of the weekly budget is held back as slack.
	BufferFraction = 0.12
	// MinAllocatedHours is the floor applied before normalization.
	MinAllocatedHours = 2
)

// ErrZeroPriority is returned when the subjects' priorities sum to zero and
// proportional allocation is undefined.
var ErrZeroPriority = errors.New("priority sum is zero")

// AnalyzedSubject is a subject with its analysis and weekly hour budget.
type AnalyzedSubject struct {
	domain.Subject
	CognitiveLoad            domain.CognitiveLoad
	PriorityScore            float64
	MissingPrerequisites     []string
	MissingPrerequisiteCount int
	AllocatedHours           int
	Justification            string
}

// Allocation is the AllocationEngine output.
type Allocation struct {
	Subjects         []AnalyzedSubject
	TotalWeeklyHours float64
	BufferHours      int
	AvailableHours   float64
}

// TotalAllocated sums the subjects' allocated hours.
func (a Allocation) TotalAllocated() int {
	total := 0
	for _, s := range a.Subjects {
		total += s.AllocatedHours
	}
	return total
}

// Allocate splits the weekly budget across subjects in proportion to priority.
// The returned subjects are sorted by missing prerequisites, then priority.
func Allocate(subjects []domain.Subject, availability domain.Availability) (Allocation, error) {
	// Negative budgets allocate nothing.
	total := max(0, availability.TotalWeeklyHours())
	buffer := int(RoundHalfUp(total * BufferFraction))
	alloc := Allocation{
		TotalWeeklyHours: total,
		BufferHours:      buffer,
		AvailableHours:   total - float64(buffer),
	}
	if len(subjects) == 0 {
		return alloc, nil
	}

	names := make([]string, len(subjects))
	for i, s := range subjects {
		names[i] = s.Name
	}

	analyzed := make([]AnalyzedSubject, len(subjects))
	for i, s := range subjects {
		analyzed[i] = finalizeAnalysis(provisionalAnalysis(s), names)
	}

	SortForAllocation(analyzed)

	var prioritySum float64
	for _, s := range analyzed {
		prioritySum += s.PriorityScore
	}
	if prioritySum <= 0 {
		return Allocation{}, ErrZeroPriority
	}

	sum := 0
	for i := range analyzed {
		share := alloc.AvailableHours * analyzed[i].PriorityScore / prioritySum
		analyzed[i].AllocatedHours = max(MinAllocatedHours, int(RoundHalfUp(share)))
		sum += analyzed[i].AllocatedHours
	}

	// One proportional correction; the second rounding may leave a small drift.
	if float64(sum) != alloc.AvailableHours {
		ratio := alloc.AvailableHours / float64(sum)
		for i := range analyzed {
			analyzed[i].AllocatedHours = int(RoundHalfUp(float64(analyzed[i].AllocatedHours) * ratio))
		}
	}

	for i := range analyzed {
		analyzed[i].Justification = Justification(analyzed[i])
	}
	alloc.Subjects = analyzed
	return alloc, nil
}

// provisionalAnalysis scores a subject in isolation, counting every mapped
// prerequisite as missing.
func provisionalAnalysis(s domain.Subject) AnalyzedSubject {
	reqs := Prerequisites(s.Name)
	a := analysisFor(s, reqs, len(reqs))
	return newAnalyzedSubject(s, a)
}

// finalizeAnalysis re-scores a provisional record once every subject name in
// the request is known. It returns a new record.
func finalizeAnalysis(p AnalyzedSubject, allNames []string) AnalyzedSubject {
	return newAnalyzedSubject(p.Subject, Analyze(p.Subject, allNames))
}

func newAnalyzedSubject(s domain.Subject, a Analysis) AnalyzedSubject {
	return AnalyzedSubject{
		Subject:                  s,
		CognitiveLoad:            a.CognitiveLoad,
		PriorityScore:            a.PriorityScore,
		MissingPrerequisites:     a.MissingPrerequisites,
		MissingPrerequisiteCount: a.MissingPrerequisiteCount,
	}
}

// RoundHalfUp rounds .5 toward positive infinity. All plan and progress
// arithmetic rounds this way.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
