package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/repository"
	"github.com/alexanderramin/studyweek/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type services struct {
	db       *sql.DB
	plans    PlanService
	progress ProgressService
	observer *recordingObserver
}

func setupServices(t *testing.T) services {
	t.Helper()
	store := testutil.NewTestStore(t)
	obs := &recordingObserver{}
	planRepo := repository.NewSQLitePlanRepo(store.DB)
	return services{
		db:    store.DB,
		plans: NewPlanService(planRepo, testutil.Clock, obs),
		progress: NewProgressService(
			planRepo,
			repository.NewSQLiteCompletionRepo(store.DB),
			repository.NewSQLiteConfidenceRepo(store.DB),
			store.UoW,
			testutil.Clock,
			obs,
		),
		observer: obs,
	}
}

// saveExamplePlan stores the one-subject Night plan: 23 blocks, 24 subject hours.
func saveExamplePlan(t *testing.T, s services) *contract.StoredPlan {
	t.Helper()
	stored, err := s.plans.Generate(context.Background(), testutil.NewTestRequest(), GenerateOptions{Save: true})
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)
	return stored
}
