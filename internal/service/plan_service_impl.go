package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/alexanderramin/studyweek/internal/importer"
	"github.com/alexanderramin/studyweek/internal/planner"
	"github.com/alexanderramin/studyweek/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	plans    repository.PlanRepo
	now      clock
	observer UseCaseObserver
}

// NewPlanService wires plan generation and storage. A nil now uses time.Now.
func NewPlanService(plans repository.PlanRepo, now func() time.Time, observers ...UseCaseObserver) PlanService {
	return &planService{
		plans:    plans,
		now:      clockOrNow(now),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Generate(ctx context.Context, req contract.GeneratePlanRequest, opts GenerateOptions) (stored *contract.StoredPlan, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"subjects": len(req.Subjects),
		"save":     opts.Save,
	}
	defer observe(ctx, s.observer, "generate-plan", startedAt, &err, fields)

	var order planner.CandidateOrder = planner.StableOrder{}
	if opts.Seed != nil {
		order = planner.NewSeededOrder(*opts.Seed)
		fields["seed"] = *opts.Seed
	}

	now := s.now()
	plan, err := planner.Generate(req, planner.WithClock(func() time.Time { return now }), planner.WithOrder(order))
	if err != nil {
		return nil, err
	}
	fields["blocks"] = plan.TotalBlocks()

	stored = &contract.StoredPlan{CreatedAt: now.UTC(), Seed: opts.Seed, Plan: plan}
	if !opts.Save {
		return stored, nil
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}
	rec := &domain.PlanRecord{
		ID:            uuid.New().String(),
		StudentName:   domain.CoalesceStr(strings.TrimSpace(req.Student.Name), "anonymous"),
		TargetDate:    req.TargetDate,
		PreferredTime: req.Availability.PreferredWindow,
		Payload:       payload,
		Seed:          opts.Seed,
		CreatedAt:     stored.CreatedAt,
	}
	if err = s.plans.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving plan: %w", err)
	}
	stored.ID = rec.ID
	fields["plan_id"] = rec.ID
	return stored, nil
}

func (s *planService) GenerateFromFile(ctx context.Context, path string, opts GenerateOptions) (*contract.StoredPlan, error) {
	file, err := importer.LoadRequestFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading request file: %w", err)
	}
	if errs := importer.ValidateRequestFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	return s.Generate(ctx, importer.ToRequest(file), opts)
}

func (s *planService) Get(ctx context.Context, id string) (*contract.StoredPlan, error) {
	return loadPlan(ctx, s.plans, id)
}

func (s *planService) List(ctx context.Context) ([]repository.PlanSummary, error) {
	return s.plans.List(ctx)
}

func (s *planService) Latest(ctx context.Context) (*contract.StoredPlan, error) {
	rec, err := s.plans.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return decodePlan(rec)
}

func (s *planService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-plan", time.Now().UTC(), &err, map[string]any{"plan_id": id})
	return s.plans.Delete(ctx, id)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("request validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
