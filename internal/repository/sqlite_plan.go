package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyweek/internal/db"
	"github.com/alexanderramin/studyweek/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

const planColumns = `id, student_name, target_date, preferred_time, payload, seed, created_at`

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.PlanRecord) error {
	query := `INSERT INTO plans (` + planColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.StudentName,
		p.TargetDate,
		string(p.PreferredTime),
		string(p.Payload),
		nullableInt64ToValue(p.Seed),
		formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.PlanRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE id = ?`, id)
	p, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %q: %w", id, ErrNotFound)
	}
	return p, err
}

// Latest returns the most recently created plan.
func (r *SQLitePlanRepo) Latest(ctx context.Context) (*domain.PlanRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans ORDER BY created_at DESC, rowid DESC LIMIT 1`)
	p, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("latest plan: %w", ErrNotFound)
	}
	return p, err
}

// List returns plan summaries, newest first.
func (r *SQLitePlanRepo) List(ctx context.Context) ([]PlanSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, student_name, target_date, preferred_time, created_at
		FROM plans ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []PlanSummary
	for rows.Next() {
		var s PlanSummary
		var window, createdAt string
		if err := rows.Scan(&s.ID, &s.StudentName, &s.TargetDate, &window, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning plan summary: %w", err)
		}
		s.PreferredTime = domain.TimeWindow(window)
		if s.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		plans = append(plans, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

// Delete removes a plan; completions and confidence updates cascade.
func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("plan %q: %w", id, ErrNotFound)
	}
	return nil
}

func scanPlan(row *sql.Row) (*domain.PlanRecord, error) {
	var p domain.PlanRecord
	var window, payload, createdAt string
	var seed sql.NullInt64
	if err := row.Scan(&p.ID, &p.StudentName, &p.TargetDate, &window, &payload, &seed, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	p.PreferredTime = domain.TimeWindow(window)
	p.Payload = []byte(payload)
	p.Seed = nullInt64Ptr(seed)

	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}
