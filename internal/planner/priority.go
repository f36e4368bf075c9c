package planner

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyweek/internal/domain"
)

// PriorityWeights are the coefficients of the priority score.
type PriorityWeights struct {
	WeakTopic    float64
	Credit       float64
	Confidence   float64
	Prerequisite float64
}

func DefaultWeights() PriorityWeights {
	return PriorityWeights{
		WeakTopic:    2.5,
		Credit:       1.2,
		Confidence:   2.0,
		Prerequisite: 3.0,
	}
}

// Analysis is the PriorityModel output for one subject.
type Analysis struct {
	CognitiveLoad            domain.CognitiveLoad
	PriorityScore            float64
	MissingPrerequisites     []string
	MissingPrerequisiteCount int
}

// Analyze classifies a subject and scores it against the full set of subject
// names in the request. It has no side effects.
func Analyze(subject domain.Subject, allNames []string) Analysis {
	missing := MissingPrerequisites(subject.Name, allNames)
	return analysisFor(subject, missing, len(missing))
}

func analysisFor(subject domain.Subject, missing []string, missingCount int) Analysis {
	return Analysis{
		CognitiveLoad:            ClassifyLoad(subject.Confidence, len(subject.WeakTopics), missingCount),
		PriorityScore:            PriorityScore(subject, missingCount, DefaultWeights()),
		MissingPrerequisites:     missing,
		MissingPrerequisiteCount: missingCount,
	}
}

// ClassifyLoad maps confidence, weak-topic count and prerequisite gaps to a load level.
func ClassifyLoad(confidence, weakTopics, missingPrereqs int) domain.CognitiveLoad {
	switch {
	case confidence <= 2 || weakTopics >= 3 || missingPrereqs > 0:
		return domain.LoadHigh
	case confidence >= 4 && weakTopics == 0 && missingPrereqs == 0:
		return domain.LoadLow
	default:
		return domain.LoadMedium
	}
}

// PriorityScore is weak·2.5 + credits·1.2 + (6−confidence)·2 + missing·3 under
// the default weights. Every term is non-negative for confidence in [1,5].
func PriorityScore(subject domain.Subject, missingPrereqs int, w PriorityWeights) float64 {
	return float64(len(subject.WeakTopics))*w.WeakTopic +
		float64(subject.Credits)*w.Credit +
		float64(6-subject.Confidence)*w.Confidence +
		float64(missingPrereqs)*w.Prerequisite
}

// Justification explains an allocation in one sentence.
func Justification(s AnalyzedSubject) string {
	var reasons []string
	weak := len(s.WeakTopics)

	if s.MissingPrerequisiteCount > 0 {
		reasons = append(reasons, fmt.Sprintf("prerequisite-heavy (%d missing)", s.MissingPrerequisiteCount))
	}
	if weak > 0 {
		plural := ""
		if weak > 1 {
			plural = "s"
		}
		reasons = append(reasons, fmt.Sprintf("%d weak topic%s", weak, plural))
	}
	if s.Confidence <= 2 {
		reasons = append(reasons, "low confidence level")
	}
	if s.Credits >= 4 {
		reasons = append(reasons, "higher credit weight")
	}
	if s.CognitiveLoad == domain.LoadHigh {
		reasons = append(reasons, "high cognitive load")
	}
	if len(s.StrongTopics) > 0 && weak == 0 {
		reasons = append(reasons, "strong topics - reduced load to avoid over-studying")
	}

	if len(reasons) == 0 {
		return "Balanced allocation based on standard workload"
	}
	return "More time allocated due to: " + strings.Join(reasons, ", ")
}
