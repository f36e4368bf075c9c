package planner

import (
	"testing"

	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyLoad(t *testing.T) {
	cases := []struct {
		name                       string
		confidence, weak, missing int
		want                       domain.CognitiveLoad
	}{
		{"low confidence", 2, 0, 0, domain.LoadHigh},
		{"many weak topics", 4, 3, 0, domain.LoadHigh},
		{"missing prerequisite", 5, 0, 1, domain.LoadHigh},
		{"confident and clean", 4, 0, 0, domain.LoadLow},
		{"fully confident", 5, 0, 0, domain.LoadLow},
		{"one weak topic blocks low", 5, 1, 0, domain.LoadMedium},
		{"middle confidence", 3, 0, 0, domain.LoadMedium},
		{"middle with two weak", 3, 2, 0, domain.LoadMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyLoad(tc.confidence, tc.weak, tc.missing))
		})
	}
}

func TestPriorityScore_Formula(t *testing.T) {
	s := domain.Subject{Name: "X", Credits: 4, WeakTopics: []string{"a", "b"}, Confidence: 3}
	// 2.5*2 + 1.2*4 + 2*(6-3) + 3*3
	assert.InDelta(t, 24.8, PriorityScore(s, 3, DefaultWeights()), 1e-9)
	assert.InDelta(t, 15.8, PriorityScore(s, 0, DefaultWeights()), 1e-9)
}

func TestAnalyze_UsesFullNameSet(t *testing.T) {
	ds := domain.Subject{Name: "Data Structures", Credits: 4, WeakTopics: []string{"Trees"}, Confidence: 4}

	alone := Analyze(ds, []string{"Data Structures"})
	assert.Equal(t, 3, alone.MissingPrerequisiteCount)
	assert.Equal(t, domain.LoadHigh, alone.CognitiveLoad)

	covered := Analyze(ds, []string{"Data Structures", "Programming", "Algorithms", "Discrete Mathematics"})
	assert.Equal(t, 0, covered.MissingPrerequisiteCount)
	assert.Equal(t, domain.LoadMedium, covered.CognitiveLoad)
	assert.Less(t, covered.PriorityScore, alone.PriorityScore)
}

func TestAnalyze_Idempotent(t *testing.T) {
	s := domain.Subject{Name: "Compiler Design", Credits: 3, WeakTopics: []string{"Parsing"}, Confidence: 2}
	names := []string{"Compiler Design", "Algorithms"}
	assert.Equal(t, Analyze(s, names), Analyze(s, names))
}

func TestAnalyze_WorstCaseSubjectIsHigh(t *testing.T) {
	s := domain.Subject{
		Name:       "Machine Learning",
		Credits:    4,
		WeakTopics: []string{"a", "b", "c", "d", "e"},
		Confidence: 1,
	}
	a := Analyze(s, []string{"Machine Learning"})
	assert.Equal(t, domain.LoadHigh, a.CognitiveLoad)
	assert.Equal(t, 4, a.MissingPrerequisiteCount)
}

func TestAnalyze_ConfidentSubjectIsLow(t *testing.T) {
	s := domain.Subject{Name: "Calculus", Credits: 3, StrongTopics: []string{"Limits"}, Confidence: 5}
	a := Analyze(s, []string{"Calculus"})
	assert.Equal(t, domain.LoadLow, a.CognitiveLoad)
	assert.Zero(t, a.MissingPrerequisiteCount)
}

func TestMissingPrerequisites_FuzzyMatch(t *testing.T) {
	names := []string{"Data Structures", "Intro to Programming", "Discrete Math"}
	missing := MissingPrerequisites("Data Structures", names)
	assert.Equal(t, []string{"Algorithms"}, missing)
}

func TestMissingPrerequisites_CaseInsensitive(t *testing.T) {
	missing := MissingPrerequisites("Operating Systems", []string{"computer ARCHITECTURE", "data structures"})
	assert.Empty(t, missing)
}

func TestMissingPrerequisites_UnknownSubject(t *testing.T) {
	assert.Nil(t, MissingPrerequisites("Underwater Basket Weaving", nil))
	assert.Nil(t, Prerequisites("data structures"), "table keys are exact")
}

func TestPrerequisites_ReturnsCopy(t *testing.T) {
	reqs := Prerequisites("Algorithms")
	reqs[0] = "mutated"
	assert.Equal(t, "Data Structures", Prerequisites("Algorithms")[0])
}

func TestPrerequisiteTable_Sorted(t *testing.T) {
	table := PrerequisiteTable()
	assert.Len(t, table, 9)
	for i := 1; i < len(table); i++ {
		assert.Less(t, table[i-1].Subject, table[i].Subject)
	}
}

func TestJustification(t *testing.T) {
	s := AnalyzedSubject{
		Subject:                  domain.Subject{Name: "DS", Credits: 4, WeakTopics: []string{"Trees", "Graphs"}, Confidence: 2},
		CognitiveLoad:            domain.LoadHigh,
		MissingPrerequisiteCount: 1,
	}
	assert.Equal(t,
		"More time allocated due to: prerequisite-heavy (1 missing), 2 weak topics, low confidence level, higher credit weight, high cognitive load",
		Justification(s))

	strong := AnalyzedSubject{
		Subject:       domain.Subject{Name: "Calc", Credits: 2, StrongTopics: []string{"Limits"}, Confidence: 5},
		CognitiveLoad: domain.LoadLow,
	}
	assert.Equal(t, "More time allocated due to: strong topics - reduced load to avoid over-studying", Justification(strong))

	plain := AnalyzedSubject{
		Subject:       domain.Subject{Name: "Plain", Credits: 2, Confidence: 3},
		CognitiveLoad: domain.LoadMedium,
	}
	assert.Equal(t, "Balanced allocation based on standard workload", Justification(plain))
}
