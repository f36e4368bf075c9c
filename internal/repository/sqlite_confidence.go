package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studyweek/internal/db"
	"github.com/alexanderramin/studyweek/internal/domain"
)

// SQLiteConfidenceRepo implements ConfidenceRepo using a SQLite database.
type SQLiteConfidenceRepo struct {
	db db.DBTX
}

func NewSQLiteConfidenceRepo(conn db.DBTX) *SQLiteConfidenceRepo {
	return &SQLiteConfidenceRepo{db: conn}
}

// Upsert keeps one row per plan and subject; the latest value wins.
func (r *SQLiteConfidenceRepo) Upsert(ctx context.Context, u *domain.ConfidenceUpdate) error {
	query := `INSERT INTO confidence_updates (plan_id, subject, confidence, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(plan_id, subject) DO UPDATE SET confidence = excluded.confidence, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, u.PlanID, u.Subject, u.Confidence, formatTime(u.UpdatedAt)); err != nil {
		return fmt.Errorf("upserting confidence for %q: %w", u.Subject, err)
	}
	return nil
}

func (r *SQLiteConfidenceRepo) ListByPlan(ctx context.Context, planID string) ([]domain.ConfidenceUpdate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT plan_id, subject, confidence, updated_at
		FROM confidence_updates WHERE plan_id = ? ORDER BY subject`, planID)
	if err != nil {
		return nil, fmt.Errorf("listing confidence updates: %w", err)
	}
	defer rows.Close()

	var out []domain.ConfidenceUpdate
	for rows.Next() {
		var u domain.ConfidenceUpdate
		var updatedAt string
		if err := rows.Scan(&u.PlanID, &u.Subject, &u.Confidence, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning confidence update: %w", err)
		}
		if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating confidence updates: %w", err)
	}
	return out, nil
}
