package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/alexanderramin/studyweek/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionRepo_MarkUnmark(t *testing.T) {
	db := testutil.NewTestDB(t)
	plans := NewSQLitePlanRepo(db)
	repo := NewSQLiteCompletionRepo(db)
	ctx := context.Background()

	p := newPlanRecord(testutil.Now)
	require.NoError(t, plans.Create(ctx, p))

	first := testutil.Now.Add(10 * time.Hour)
	require.NoError(t, repo.Mark(ctx, &domain.BlockCompletion{PlanID: p.ID, BlockID: "Physics-0-1800-1900", CompletedAt: first}))
	require.NoError(t, repo.Mark(ctx, &domain.BlockCompletion{PlanID: p.ID, BlockID: "Physics-1-1800-1900", CompletedAt: first.Add(24 * time.Hour)}))

	// Marking again keeps the first timestamp.
	require.NoError(t, repo.Mark(ctx, &domain.BlockCompletion{PlanID: p.ID, BlockID: "Physics-0-1800-1900", CompletedAt: first.Add(time.Hour)}))

	list, err := repo.ListByPlan(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Physics-0-1800-1900", list[0].BlockID)
	assert.True(t, first.Equal(list[0].CompletedAt))

	require.NoError(t, repo.Unmark(ctx, p.ID, "Physics-0-1800-1900"))
	require.NoError(t, repo.Unmark(ctx, p.ID, "never-marked"))

	list, err = repo.ListByPlan(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Physics-1-1800-1900", list[0].BlockID)
}

func TestCompletionRepo_RequiresPlan(t *testing.T) {
	repo := NewSQLiteCompletionRepo(testutil.NewTestDB(t))
	err := repo.Mark(context.Background(), &domain.BlockCompletion{PlanID: "missing", BlockID: "b", CompletedAt: testutil.Now})
	assert.Error(t, err, "foreign key must reject unknown plans")
}

func TestConfidenceRepo_Upsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	plans := NewSQLitePlanRepo(db)
	repo := NewSQLiteConfidenceRepo(db)
	ctx := context.Background()

	p := newPlanRecord(testutil.Now)
	require.NoError(t, plans.Create(ctx, p))

	require.NoError(t, repo.Upsert(ctx, &domain.ConfidenceUpdate{PlanID: p.ID, Subject: "Physics", Confidence: 3, UpdatedAt: testutil.Now}))
	require.NoError(t, repo.Upsert(ctx, &domain.ConfidenceUpdate{PlanID: p.ID, Subject: "Algorithms", Confidence: 2, UpdatedAt: testutil.Now}))
	require.NoError(t, repo.Upsert(ctx, &domain.ConfidenceUpdate{PlanID: p.ID, Subject: "Physics", Confidence: 5, UpdatedAt: testutil.Now.Add(time.Hour)}))

	list, err := repo.ListByPlan(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Algorithms", list[0].Subject)
	assert.Equal(t, "Physics", list[1].Subject)
	assert.Equal(t, 5, list[1].Confidence)
	assert.True(t, testutil.Now.Add(time.Hour).Equal(list[1].UpdatedAt))
}

func TestConfidenceRepo_RejectsOutOfRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	plans := NewSQLitePlanRepo(db)
	repo := NewSQLiteConfidenceRepo(db)
	ctx := context.Background()

	p := newPlanRecord(testutil.Now)
	require.NoError(t, plans.Create(ctx, p))
	assert.Error(t, repo.Upsert(ctx, &domain.ConfidenceUpdate{PlanID: p.ID, Subject: "Physics", Confidence: 0, UpdatedAt: testutil.Now}))
}
