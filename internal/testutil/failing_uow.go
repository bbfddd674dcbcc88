package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/founderpulse/internal/db"
)

// FailOnNthExecDB wraps a DBTX and fails the Nth ExecContext call whose query
// contains Match (every call when Match is empty). Calls are counted from 1;
// FailOn <= 0 fails every matching call. Reads pass through. Wrap a *sql.DB to
// exercise non-transactional writes.
type FailOnNthExecDB struct {
	db.DBTX
	FailOn int32
	Match  string
	Err    error

	count atomic.Int32
}

func (f *FailOnNthExecDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.Match == "" || strings.Contains(query, f.Match) {
		if n := f.count.Add(1); f.FailOn <= 0 || n == f.FailOn {
			return nil, f.Err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// FailOnNthExecUoW is a test UoW that injects an error on the Nth ExecContext
// call within a transaction, for rollback tests of multi-write operations.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &FailOnNthExecDB{DBTX: tx, FailOn: u.FailOn, Err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}
