package service

import (
	"context"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/repository"
)

// GenerateOptions controls how a plan is produced and whether it is kept.
type GenerateOptions struct {
	Save bool
	// Seed shuffles non-High subjects within each day. Nil keeps allocation order.
	Seed *int64
}

type PlanService interface {
	Generate(ctx context.Context, req contract.GeneratePlanRequest, opts GenerateOptions) (*contract.StoredPlan, error)
	GenerateFromFile(ctx context.Context, path string, opts GenerateOptions) (*contract.StoredPlan, error)
	Get(ctx context.Context, id string) (*contract.StoredPlan, error)
	List(ctx context.Context) ([]repository.PlanSummary, error)
	Latest(ctx context.Context) (*contract.StoredPlan, error)
	Delete(ctx context.Context, id string) error
}

type ProgressService interface {
	ToggleBlock(ctx context.Context, planID, blockID string, done bool) error
	// MarkDay completes every block of the named day and returns how many
	// were newly marked.
	MarkDay(ctx context.Context, planID, day string) (int, error)
	SetConfidence(ctx context.Context, planID, subject string, value int) error
	Progress(ctx context.Context, planID string) (*contract.ProgressResponse, error)
}
