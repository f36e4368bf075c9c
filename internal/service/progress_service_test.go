package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/studyweek/internal/repository"
	"github.com/alexanderramin/studyweek/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_ToggleBlock(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	stored := saveExamplePlan(t, s)

	const monday = "Data Structures-0-1800-1900"
	require.NoError(t, s.progress.ToggleBlock(ctx, stored.ID, monday, true))

	p, err := s.progress.Progress(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.CompletedBlocks)
	assert.True(t, p.CompletedIDs[monday])

	require.NoError(t, s.progress.ToggleBlock(ctx, stored.ID, monday, false))
	p, err = s.progress.Progress(ctx, stored.ID)
	require.NoError(t, err)
	assert.Zero(t, p.CompletedBlocks)
	assert.Empty(t, p.CompletedIDs)

	ev := s.observer.last()
	assert.Equal(t, "toggle-block", ev.Name)
	assert.Equal(t, false, ev.Fields["done"])
}

func TestProgressService_ToggleUnknownBlockOrPlan(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	stored := saveExamplePlan(t, s)

	err := s.progress.ToggleBlock(ctx, stored.ID, "Data Structures-9-00000100", true)
	assert.ErrorIs(t, err, ErrBlockNotFound)

	err = s.progress.ToggleBlock(ctx, "no-such-plan", "x", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProgressService_ProgressArithmetic(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	stored := saveExamplePlan(t, s)

	n, err := s.progress.MarkDay(ctx, stored.ID, "Monday")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	p, err := s.progress.Progress(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, p.PlanID)
	assert.Equal(t, 3, p.CompletedBlocks)
	assert.Equal(t, 23, p.TotalBlocks)
	assert.Equal(t, 13, p.CompletionRate) // 3/23
	assert.Equal(t, 24, p.TotalHours)
	assert.Equal(t, 3, p.CompletedHours) // 3/23 of 24

	require.Len(t, p.Subjects, 1)
	ds := p.Subjects[0]
	assert.Equal(t, "Data Structures", ds.Subject)
	assert.Equal(t, 3, ds.CompletedBlocks)
	assert.Equal(t, 21, ds.TotalBlocks, "buffers are not attributed to a subject")
}

func TestProgressService_MarkDayIsIdempotent(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	stored := saveExamplePlan(t, s)

	n, err := s.progress.MarkDay(ctx, stored.ID, "saturday")
	require.NoError(t, err)
	assert.Equal(t, 4, n, "three study blocks and the buffer")

	n, err = s.progress.MarkDay(ctx, stored.ID, stored.Plan.Week[5].Date)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = s.progress.MarkDay(ctx, stored.ID, "Funday")
	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestProgressService_MarkDayRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	planRepo := repository.NewSQLitePlanRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	plans := NewPlanService(planRepo, testutil.Clock)

	boom := errors.New("disk full")
	progress := NewProgressService(planRepo, completions, repository.NewSQLiteConfidenceRepo(database),
		&testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}, testutil.Clock)

	ctx := context.Background()
	stored, err := plans.Generate(ctx, testutil.NewTestRequest(), GenerateOptions{Save: true})
	require.NoError(t, err)

	_, err = progress.MarkDay(ctx, stored.ID, "Monday")
	require.ErrorIs(t, err, boom)

	assert.Zero(t, testutil.CompletionCount(t, database, stored.ID), "first insert must be rolled back")
}

func TestProgressService_SetConfidence(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	stored := saveExamplePlan(t, s)

	assert.ErrorIs(t, s.progress.SetConfidence(ctx, stored.ID, "Data Structures", 6), ErrInvalidConfidence)
	assert.ErrorIs(t, s.progress.SetConfidence(ctx, stored.ID, "Biology", 4), ErrSubjectNotFound)

	require.NoError(t, s.progress.SetConfidence(ctx, stored.ID, "Data Structures", 4))
	require.NoError(t, s.progress.SetConfidence(ctx, stored.ID, "Data Structures", 5))

	p, err := s.progress.Progress(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Subjects[0].InitialConfidence)
	assert.Equal(t, 5, p.Subjects[0].CurrentConfidence)
}

func TestProgressService_ProgressUnknownPlan(t *testing.T) {
	s := setupServices(t)
	_, err := s.progress.Progress(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
