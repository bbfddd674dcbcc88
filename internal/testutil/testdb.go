package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/founderpulse/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens an in-memory founderpulse database with the check-in,
// assessment, burnout and action tables migrated. It is closed on cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

// NewTestUoW wraps a test database for services that regenerate action
// batches or score burnout inside a transaction.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
