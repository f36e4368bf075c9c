package planner

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
)

// MaxFocusItems bounds the next-7-days focus list.
const MaxFocusItems = 7

// checkpointFractions are the timeline positions of the progress checkpoints.
var checkpointFractions = [3]float64{0.25, 0.5, 0.75}

// Next7DaysFocus lists the most pressing actions for the coming week:
// prerequisite gaps, then Red learning topics in calendar order, then a
// backlog reminder per subject with weak topics.
func Next7DaysFocus(week []domain.DayBlock, subjects []AnalyzedSubject) []string {
	var focus []string

	gaps := make([]AnalyzedSubject, 0, len(subjects))
	for _, s := range subjects {
		if s.MissingPrerequisiteCount > 0 {
			gaps = append(gaps, s)
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].MissingPrerequisiteCount > gaps[j].MissingPrerequisiteCount
	})
	// The line names the first mapped prerequisite, even when another subject covers it.
	for _, s := range gaps {
		reqs := Prerequisites(s.Name)
		if len(reqs) > 0 && s.HasWeakTopics() {
			focus = append(focus, fmt.Sprintf("Revise %s before starting %s to close prerequisite gap",
				reqs[0], s.FirstWeakTopic()))
		}
	}

	seen := make(map[string]bool)
	for _, day := range week {
		for _, b := range day.Blocks {
			if b.Color != domain.ColorRed || b.Type != domain.BlockLearning || b.Topic == "" {
				continue
			}
			key := b.Subject + "\x00" + b.Topic
			if seen[key] {
				continue
			}
			seen[key] = true
			focus = append(focus, fmt.Sprintf("Next 7 days focus: %s (%s)", b.Topic, b.Subject))
		}
	}

	for _, s := range subjects {
		if s.HasWeakTopics() {
			focus = append(focus, fmt.Sprintf("Complete %s before Week 3 to avoid backlog", s.FirstWeakTopic()))
		}
	}

	if len(focus) > MaxFocusItems {
		focus = focus[:MaxFocusItems]
	}
	return focus
}

// DaysUntil is the whole number of days from now to target, rounded up.
func DaysUntil(target, now time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}

// WeeksUntil is DaysUntil in weeks, rounded up.
func WeeksUntil(target, now time.Time) int {
	return int(math.Ceil(float64(DaysUntil(target, now)) / 7))
}

// ProgressCheckpoints projects confidence and topic coverage at 25%, 50% and
// 75% of the weeks remaining before target.
func ProgressCheckpoints(subjects []AnalyzedSubject, target, now time.Time) []contract.Checkpoint {
	weeks := WeeksUntil(target, now)
	checkpoints := make([]contract.Checkpoint, 0, len(checkpointFractions))

	for _, pct := range checkpointFractions {
		week := int(math.Ceil(float64(weeks) * pct))
		assessments := make([]contract.Assessment, 0, len(subjects))
		for _, s := range subjects {
			assessments = append(assessments, assess(s, pct))
		}
		checkpoints = append(checkpoints, contract.Checkpoint{
			Week:                  week,
			Date:                  now.AddDate(0, 0, week*7).Format(contract.DateLayout),
			Assessments:           assessments,
			AdaptationSuggestions: adaptationSuggestions(assessments, subjects),
		})
	}
	return checkpoints
}

func assess(s AnalyzedSubject, pct float64) contract.Assessment {
	expected := min(5, s.Confidence+int(math.Ceil(float64(5-s.Confidence)*pct)))
	toCover := int(math.Ceil(float64(len(s.WeakTopics)) * pct))
	review := make([]string, 0, toCover)
	for i := 0; i < toCover && i < len(s.WeakTopics); i++ {
		review = append(review, s.WeakTopics[i])
	}
	return contract.Assessment{
		Subject:            s.Name,
		CurrentConfidence:  s.Confidence,
		ExpectedConfidence: expected,
		WeakTopicsToCover:  toCover,
		TopicsToReview:     review,
	}
}

func adaptationSuggestions(assessments []contract.Assessment, subjects []AnalyzedSubject) []string {
	hours := make(map[string]int, len(subjects))
	for _, s := range subjects {
		hours[s.Name] = s.AllocatedHours
	}

	suggestions := []string{}
	for _, a := range assessments {
		if a.ExpectedConfidence <= a.CurrentConfidence+1 {
			continue
		}
		shift := int(RoundHalfUp(float64(hours[a.Subject]) * 0.1))
		suggestions = append(suggestions, fmt.Sprintf(
			"Confidence in %s improved from %d → %d; consider reallocating %d hours to weaker subjects",
			a.Subject, a.CurrentConfidence, a.ExpectedConfidence, shift))
	}
	return suggestions
}

// BuildSummary derives the outcome narrative. The figures are presentation
// heuristics; only their arithmetic is fixed.
func BuildSummary(alloc Allocation, preferred domain.TimeWindow, targetDate string, target, now time.Time) contract.Summary {
	days := DaysUntil(target, now)
	weeks := WeeksUntil(target, now)

	var totalWeak, confSum, totalHours int
	for _, s := range alloc.Subjects {
		totalWeak += len(s.WeakTopics)
		confSum += s.Confidence
		totalHours += s.AllocatedHours
	}

	var avgBefore float64
	if n := len(alloc.Subjects); n > 0 {
		avgBefore = float64(confSum) / float64(n)
	}
	avgAfter := math.Min(5, avgBefore+math.Ceil(float64(totalWeak)*0.3))

	covered := int(math.Ceil(float64(totalWeak) * 0.8))
	hoursSaved := float64(covered * 2)
	denominator := float64(totalHours*weeks) * 0.3
	reduction := 0
	if denominator > 0 {
		reduction = int(RoundHalfUp(hoursSaved / denominator * 100))
	}

	return contract.Summary{
		CompletionDate:          targetDate,
		WeeksUntilTarget:        weeks,
		DaysUntilTarget:         days,
		EstimatedTimeline:       fmt.Sprintf("%d weeks (%d days)", weeks, days),
		AverageConfidenceBefore: avgBefore,
		AverageConfidenceAfter:  avgAfter,
		ExpectedConfidenceImprovement: fmt.Sprintf("From %.1f/5 to %.1f/5 (+%.1f)",
			avgBefore, avgAfter, avgAfter-avgBefore),
		WorkloadReductionPct:        reduction,
		LastMinuteWorkloadReduction: fmt.Sprintf("%d%%", reduction),
		Rationale: fmt.Sprintf("Balanced allocation of %d weak topics across %d subjects, "+
			"%d hours buffer time, and high-focus blocks scheduled during %s. "+
			"Prerequisite-heavy subjects prioritized.",
			totalWeak, len(alloc.Subjects), alloc.BufferHours, preferred),
	}
}
