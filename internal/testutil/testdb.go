package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/studyweek/internal/db"
)

// NewTestDB opens a migrated in-memory database that lives for the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// Store is a test database plus the UnitOfWork progress writes go through.
type Store struct {
	DB  *sql.DB
	UoW db.UnitOfWork
}

func NewTestStore(t *testing.T) Store {
	t.Helper()
	database := NewTestDB(t)
	return Store{DB: database, UoW: db.NewSQLiteUnitOfWork(database)}
}

// CompletionCount returns how many blocks of planID are stored as done.
func CompletionCount(t *testing.T, database *sql.DB, planID string) int {
	t.Helper()
	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM block_completions WHERE plan_id = ?`, planID).Scan(&n); err != nil {
		t.Fatalf("count completions: %v", err)
	}
	return n
}
