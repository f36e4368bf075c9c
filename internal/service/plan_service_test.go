package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/alexanderramin/studyweek/internal/repository"
	"github.com/alexanderramin/studyweek/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanService_GenerateWithoutSave(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	stored, err := s.plans.Generate(ctx, testutil.NewTestRequest(), GenerateOptions{})
	require.NoError(t, err)

	assert.Empty(t, stored.ID)
	assert.Equal(t, testutil.Now, stored.CreatedAt)
	assert.Equal(t, 24.0, stored.Plan.AvailableHours)
	assert.Equal(t, 23, stored.Plan.TotalBlocks())

	list, err := s.plans.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPlanService_GenerateSaveAndGet(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	stored := saveExamplePlan(t, s)
	_, err := uuid.Parse(stored.ID)
	require.NoError(t, err)

	fetched, err := s.plans.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, fetched.ID)
	assert.Equal(t, stored.Plan.SubjectHours, fetched.Plan.SubjectHours)
	assert.Equal(t, stored.Plan.Week, fetched.Plan.Week)
	assert.Equal(t, stored.Plan.Summary, fetched.Plan.Summary)
	assert.True(t, stored.Plan.Metadata.GeneratedAt.Equal(fetched.Plan.Metadata.GeneratedAt))

	list, err := s.plans.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Test Student", list[0].StudentName)
	assert.Equal(t, domain.WindowNight, list[0].PreferredTime)

	ev := s.observer.last()
	assert.Equal(t, "generate-plan", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, stored.ID, ev.Fields["plan_id"])
	assert.Equal(t, 23, ev.Fields["blocks"])
}

func TestPlanService_AnonymousStudent(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.plans.Generate(ctx, testutil.NewTestRequest(testutil.WithStudentName("  ")), GenerateOptions{Save: true})
	require.NoError(t, err)

	list, err := s.plans.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "anonymous", list[0].StudentName)
}

func TestPlanService_SeedIsRecordedAndReproducible(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	req := testutil.NewTestRequest(testutil.WithSubjects(
		testutil.NewTestSubject("Calculus", testutil.WithConfidence(5)),
		testutil.NewTestSubject("Physics", testutil.WithWeak("Optics")),
		testutil.NewTestSubject("Chemistry", testutil.WithConfidence(4)),
	), testutil.WithAvailability(6, 6, domain.WindowMorning))

	seed := int64(7)
	a, err := s.plans.Generate(ctx, req, GenerateOptions{Save: true, Seed: &seed})
	require.NoError(t, err)
	b, err := s.plans.Generate(ctx, req, GenerateOptions{Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, a.Plan.Week, b.Plan.Week)

	fetched, err := s.plans.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Seed)
	assert.Equal(t, seed, *fetched.Seed)
}

func TestPlanService_ValidationErrorSavesNothing(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	req := testutil.NewTestRequest(testutil.WithTargetDate("soon"))
	_, err := s.plans.Generate(ctx, req, GenerateOptions{Save: true})

	var verr *contract.ValidationError
	require.True(t, errors.As(err, &verr))

	list, err := s.plans.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	ev := s.observer.last()
	assert.False(t, ev.Success)
	assert.Error(t, ev.Err)
}

func TestPlanService_LatestAndDelete(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.plans.Latest(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	stored := saveExamplePlan(t, s)
	latest, err := s.plans.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, latest.ID)

	require.NoError(t, s.plans.Delete(ctx, stored.ID))
	_, err = s.plans.Get(ctx, stored.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "delete-plan", s.observer.last().Name)
}

func TestPlanService_GenerateFromFile(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	dir := t.TempDir()

	good := filepath.Join(dir, "req.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
subjects:
  - name: Algorithms
    credits: 4
    weak: [Greedy]
    confidence: 2
availability: {weekdays: 2, weekends: 4, preferredTime: Afternoon}
targetDate: "2026-05-01"
`), 0o644))

	stored, err := s.plans.GenerateFromFile(ctx, good, GenerateOptions{Save: true})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Algorithms": 16}, stored.Plan.SubjectHours)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"subjects": [], "availability": {"preferredTime": "Noon"}}`), 0o644))

	_, err = s.plans.GenerateFromFile(ctx, bad, GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request validation failed (3 errors)")
	assert.Contains(t, err.Error(), "at least one subject is required")
}
