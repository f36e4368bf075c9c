package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/alexanderramin/studyweek/internal/repository"
)

type clock func() time.Time

func clockOrNow(c clock) clock {
	if c == nil {
		return time.Now
	}
	return c
}

// observe reports one use case run. Call it deferred with a pointer to the
// named error result.
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, err *error, fields map[string]any) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}

func decodePlan(rec *domain.PlanRecord) (*contract.StoredPlan, error) {
	var plan contract.GeneratePlanResponse
	if err := json.Unmarshal(rec.Payload, &plan); err != nil {
		return nil, fmt.Errorf("decoding plan %s: %w", rec.ID, err)
	}
	return &contract.StoredPlan{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Seed:      rec.Seed,
		Plan:      &plan,
	}, nil
}

func loadPlan(ctx context.Context, plans repository.PlanRepo, id string) (*contract.StoredPlan, error) {
	rec, err := plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return decodePlan(rec)
}
