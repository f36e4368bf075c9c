package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/db"
	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/alexanderramin/studyweek/internal/planner"
	"github.com/alexanderramin/studyweek/internal/repository"
)

type progressService struct {
	plans       repository.PlanRepo
	completions repository.CompletionRepo
	confidence  repository.ConfidenceRepo
	uow         db.UnitOfWork
	now         clock
	observer    UseCaseObserver
}

func NewProgressService(
	plans repository.PlanRepo,
	completions repository.CompletionRepo,
	confidence repository.ConfidenceRepo,
	uow db.UnitOfWork,
	now func() time.Time,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
		plans:       plans,
		completions: completions,
		confidence:  confidence,
		uow:         uow,
		now:         clockOrNow(now),
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) ToggleBlock(ctx context.Context, planID, blockID string, done bool) (err error) {
	defer observe(ctx, s.observer, "toggle-block", time.Now().UTC(), &err, map[string]any{
		"plan_id":  planID,
		"block_id": blockID,
		"done":     done,
	})

	stored, err := loadPlan(ctx, s.plans, planID)
	if err != nil {
		return err
	}
	if _, ok := stored.Plan.FindBlock(blockID); !ok {
		return fmt.Errorf("block %q: %w", blockID, ErrBlockNotFound)
	}

	if !done {
		return s.completions.Unmark(ctx, planID, blockID)
	}
	return s.completions.Mark(ctx, &domain.BlockCompletion{
		PlanID:      planID,
		BlockID:     blockID,
		CompletedAt: s.now().UTC(),
	})
}

func (s *progressService) MarkDay(ctx context.Context, planID, day string) (marked int, err error) {
	defer observe(ctx, s.observer, "mark-day", time.Now().UTC(), &err, map[string]any{
		"plan_id": planID,
		"day":     day,
	})

	stored, err := loadPlan(ctx, s.plans, planID)
	if err != nil {
		return 0, err
	}

	var blocks []domain.StudyBlock
	found := false
	for _, d := range stored.Plan.Week {
		if strings.EqualFold(d.Day, day) || d.Date == day {
			blocks = d.Blocks
			found = true
			break
		}
	}
	if !found {
		return 0, fmt.Errorf("day %q: %w", day, ErrDayNotFound)
	}

	now := s.now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCompletions := repository.NewSQLiteCompletionRepo(tx)

		existing, err := txCompletions.ListByPlan(ctx, planID)
		if err != nil {
			return err
		}
		done := make(map[string]bool, len(existing))
		for _, c := range existing {
			done[c.BlockID] = true
		}

		for _, b := range blocks {
			if done[b.ID] {
				continue
			}
			if err := txCompletions.Mark(ctx, &domain.BlockCompletion{PlanID: planID, BlockID: b.ID, CompletedAt: now}); err != nil {
				return err
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return marked, nil
}

func (s *progressService) SetConfidence(ctx context.Context, planID, subject string, value int) (err error) {
	defer observe(ctx, s.observer, "set-confidence", time.Now().UTC(), &err, map[string]any{
		"plan_id": planID,
		"subject": subject,
		"value":   value,
	})

	if !domain.ValidConfidence(value) {
		return fmt.Errorf("%w, got %d", ErrInvalidConfidence, value)
	}
	stored, err := loadPlan(ctx, s.plans, planID)
	if err != nil {
		return err
	}
	if _, ok := stored.Plan.FindSubject(subject); !ok {
		return fmt.Errorf("subject %q: %w", subject, ErrSubjectNotFound)
	}

	return s.confidence.Upsert(ctx, &domain.ConfidenceUpdate{
		PlanID:     planID,
		Subject:    subject,
		Confidence: value,
		UpdatedAt:  s.now().UTC(),
	})
}

func (s *progressService) Progress(ctx context.Context, planID string) (*contract.ProgressResponse, error) {
	stored, err := loadPlan(ctx, s.plans, planID)
	if err != nil {
		return nil, err
	}
	completions, err := s.completions.ListByPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	updates, err := s.confidence.ListByPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	return summarizeProgress(planID, stored.Plan, completions, updates), nil
}

// summarizeProgress counts completions against the plan's blocks. Completions
// whose block id no longer exists in the plan are ignored.
func summarizeProgress(planID string, plan *contract.GeneratePlanResponse, completions []domain.BlockCompletion, updates []domain.ConfidenceUpdate) *contract.ProgressResponse {
	marked := make(map[string]bool, len(completions))
	for _, c := range completions {
		marked[c.BlockID] = true
	}
	current := make(map[string]int, len(updates))
	for _, u := range updates {
		current[u.Subject] = u.Confidence
	}

	resp := &contract.ProgressResponse{
		PlanID:       planID,
		CompletedIDs: make(map[string]bool),
	}
	perSubject := make(map[string]*contract.SubjectProgress, len(plan.SubjectBreakdown))
	resp.Subjects = make([]contract.SubjectProgress, len(plan.SubjectBreakdown))
	for i, sb := range plan.SubjectBreakdown {
		conf := sb.CurrentConfidence
		if c, ok := current[sb.Name]; ok {
			conf = c
		}
		resp.Subjects[i] = contract.SubjectProgress{
			Subject:           sb.Name,
			InitialConfidence: sb.CurrentConfidence,
			CurrentConfidence: conf,
		}
		perSubject[sb.Name] = &resp.Subjects[i]
	}

	for _, day := range plan.Week {
		for _, b := range day.Blocks {
			resp.TotalBlocks++
			sp := perSubject[b.Subject]
			if sp != nil {
				sp.TotalBlocks++
			}
			if !marked[b.ID] {
				continue
			}
			resp.CompletedBlocks++
			resp.CompletedIDs[b.ID] = true
			if sp != nil {
				sp.CompletedBlocks++
			}
		}
	}

	for _, h := range plan.SubjectHours {
		resp.TotalHours += h
	}
	if resp.TotalBlocks > 0 {
		ratio := float64(resp.CompletedBlocks) / float64(resp.TotalBlocks)
		resp.CompletionRate = int(planner.RoundHalfUp(ratio * 100))
		resp.CompletedHours = int(planner.RoundHalfUp(ratio * float64(resp.TotalHours)))
	}
	return resp
}
