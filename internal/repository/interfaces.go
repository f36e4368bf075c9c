package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/studyweek/internal/domain"
)

// PlanSummary is a plan row without its payload, for listings.
type PlanSummary struct {
	ID            string
	StudentName   string
	TargetDate    string
	PreferredTime domain.TimeWindow
	CreatedAt     time.Time
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.PlanRecord) error
	GetByID(ctx context.Context, id string) (*domain.PlanRecord, error)
	List(ctx context.Context) ([]PlanSummary, error)
	Latest(ctx context.Context) (*domain.PlanRecord, error)
	Delete(ctx context.Context, id string) error
}

type CompletionRepo interface {
	Mark(ctx context.Context, c *domain.BlockCompletion) error
	Unmark(ctx context.Context, planID, blockID string) error
	ListByPlan(ctx context.Context, planID string) ([]domain.BlockCompletion, error)
}

type ConfidenceRepo interface {
	Upsert(ctx context.Context, u *domain.ConfidenceUpdate) error
	ListByPlan(ctx context.Context, planID string) ([]domain.ConfidenceUpdate, error)
}
