package planner

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownNames = []string{
	"Data Structures", "Operating Systems", "Algorithms", "Machine Learning",
	"Programming", "Discrete Mathematics", "Calculus", "Physics",
}

func randomSubjects(rng *rand.Rand, n int) []domain.Subject {
	perm := rng.Perm(len(knownNames))
	subjects := make([]domain.Subject, n)
	for i := range subjects {
		weak := make([]string, rng.Intn(5))
		for j := range weak {
			weak[j] = fmt.Sprintf("weak-%d-%d", i, j)
		}
		strong := make([]string, rng.Intn(3))
		for j := range strong {
			strong[j] = fmt.Sprintf("strong-%d-%d", i, j)
		}
		subjects[i] = domain.Subject{
			Name:         knownNames[perm[i]],
			Credits:      rng.Intn(6) + 1,
			StrongTopics: strong,
			WeakTopics:   weak,
			Confidence:   rng.Intn(5) + 1,
		}
	}
	return subjects
}

func randomWindow(rng *rand.Rand) domain.TimeWindow {
	windows := []domain.TimeWindow{domain.WindowMorning, domain.WindowAfternoon, domain.WindowNight}
	return windows[rng.Intn(len(windows))]
}

// TestAllocate_Invariants_NormalizationDrift property-tests that the
// allocated total stays within one hour per subject of the available budget.
func TestAllocate_Invariants_NormalizationDrift(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(6) + 1
		avail := domain.Availability{
			WeekdayHours:    float64(rng.Intn(9)),  // 0–8
			WeekendHours:    float64(rng.Intn(13)), // 0–12
			PreferredWindow: randomWindow(rng),
		}
		alloc, err := Allocate(randomSubjects(rng, n), avail)
		require.NoError(t, err)

		// Invariant 1: buffer is 12% of the total, rounded
		assert.Equal(t, int(math.Floor(avail.TotalWeeklyHours()*0.12+0.5)), alloc.BufferHours, "trial %d", trial)
		assert.Equal(t, alloc.TotalWeeklyHours-float64(alloc.BufferHours), alloc.AvailableHours, "trial %d", trial)

		// Invariant 2: drift is bounded by the subject count
		drift := math.Abs(float64(alloc.TotalAllocated()) - alloc.AvailableHours)
		assert.LessOrEqual(t, drift, float64(n),
			"trial %d: allocated %d vs available %.0f", trial, alloc.TotalAllocated(), alloc.AvailableHours)

		// Invariant 3: allocation order is missing count desc, then priority desc
		for i := 1; i < len(alloc.Subjects); i++ {
			prev, cur := alloc.Subjects[i-1], alloc.Subjects[i]
			if prev.MissingPrerequisiteCount == cur.MissingPrerequisiteCount {
				assert.GreaterOrEqual(t, prev.PriorityScore, cur.PriorityScore, "trial %d", trial)
			} else {
				assert.Greater(t, prev.MissingPrerequisiteCount, cur.MissingPrerequisiteCount, "trial %d", trial)
			}
		}
	}
}

// TestAllocate_Invariants_MinimumHoursWithAmpleBudget checks the two-hour
// floor survives normalization when there are at least eight available hours
// per subject.
func TestAllocate_Invariants_MinimumHoursWithAmpleBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(6) + 1
		avail := domain.Availability{
			WeekdayHours:    float64(rng.Intn(5) + 8), // 8–12
			WeekendHours:    float64(rng.Intn(5) + 8),
			PreferredWindow: randomWindow(rng),
		}
		require.GreaterOrEqual(t, avail.TotalWeeklyHours()*(1-BufferFraction), float64(8*n))

		alloc, err := Allocate(randomSubjects(rng, n), avail)
		require.NoError(t, err)

		for _, s := range alloc.Subjects {
			assert.GreaterOrEqual(t, s.AllocatedHours, MinAllocatedHours,
				"trial %d subject %s", trial, s.Name)
		}
	}
}

// TestPlaceWeek_Invariants property-tests the week shape across random input.
func TestPlaceWeek_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(6) + 1
		avail := domain.Availability{
			WeekdayHours:    float64(rng.Intn(9)),
			WeekendHours:    float64(rng.Intn(13)),
			PreferredWindow: randomWindow(rng),
		}
		alloc, err := Allocate(randomSubjects(rng, n), avail)
		require.NoError(t, err)

		week := PlaceWeek(alloc.Subjects, avail, alloc.BufferHours, start, NewSeededOrder(int64(trial)))

		// Invariant 1: seven days, Monday first, consecutive dates
		require.Len(t, week, 7)
		for i, day := range week {
			assert.Equal(t, domain.WeekDays[i], day.Day)
			assert.Equal(t, start.AddDate(0, 0, i).Format("2006-01-02"), day.Date)
		}

		for i, day := range week {
			// Invariant 2: blocks ascend by start time
			for j := 1; j < len(day.Blocks); j++ {
				assert.LessOrEqual(t, day.Blocks[j-1].StartTime(), day.Blocks[j].StartTime(),
					"trial %d day %s", trial, day.Day)
			}

			// Invariant 3: at most one buffer
			assert.LessOrEqual(t, day.BufferCount(), 1, "trial %d day %s", trial, day.Day)

			// Invariant 4: study blocks never exceed the day budget rounded up
			study := len(day.Blocks) - day.BufferCount()
			limit := int(math.Ceil(avail.HoursForDay(i))) + n
			assert.LessOrEqual(t, study, limit, "trial %d day %s", trial, day.Day)

			// Invariant 5: no subject gets more than a session cap per day
			perSubject := map[string]int{}
			for _, b := range day.Blocks {
				if !b.IsBuffer() {
					perSubject[b.Subject]++
				}
			}
			for name, count := range perSubject {
				assert.LessOrEqual(t, count, MaxSessionHours, "trial %d day %s subject %s", trial, day.Day, name)
			}
		}
	}
}
