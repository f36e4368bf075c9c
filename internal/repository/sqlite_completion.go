package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studyweek/internal/db"
	"github.com/alexanderramin/studyweek/internal/domain"
)

// SQLiteCompletionRepo implements CompletionRepo using a SQLite database.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

func NewSQLiteCompletionRepo(conn db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: conn}
}

// Mark records a completion. Marking an already completed block keeps the
// original timestamp.
func (r *SQLiteCompletionRepo) Mark(ctx context.Context, c *domain.BlockCompletion) error {
	query := `INSERT INTO block_completions (plan_id, block_id, completed_at) VALUES (?, ?, ?)
		ON CONFLICT(plan_id, block_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, c.PlanID, c.BlockID, formatTime(c.CompletedAt)); err != nil {
		return fmt.Errorf("marking block %q: %w", c.BlockID, err)
	}
	return nil
}

// Unmark is a no-op for blocks that were never completed.
func (r *SQLiteCompletionRepo) Unmark(ctx context.Context, planID, blockID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM block_completions WHERE plan_id = ? AND block_id = ?`, planID, blockID)
	if err != nil {
		return fmt.Errorf("unmarking block %q: %w", blockID, err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) ListByPlan(ctx context.Context, planID string) ([]domain.BlockCompletion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT plan_id, block_id, completed_at
		FROM block_completions WHERE plan_id = ? ORDER BY completed_at, block_id`, planID)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var out []domain.BlockCompletion
	for rows.Next() {
		var c domain.BlockCompletion
		var completedAt string
		if err := rows.Scan(&c.PlanID, &c.BlockID, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		if c.CompletedAt, err = parseTime(completedAt); err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}
	return out, nil
}
