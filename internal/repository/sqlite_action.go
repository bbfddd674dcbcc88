package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/founderpulse/internal/db"
	"github.com/alexanderramin/founderpulse/internal/domain"
)

// SQLiteActionRepo implements ActionRepo using a SQLite database.
type SQLiteActionRepo struct {
	db db.DBTX
}

// NewSQLiteActionRepo creates a new SQLiteActionRepo.
func NewSQLiteActionRepo(conn db.DBTX) *SQLiteActionRepo {
	return &SQLiteActionRepo{db: conn}
}

const actionColumns = `id, user_id, assigned_date, text, category, target_dimension,
	completed, completed_at, created_at`

func (r *SQLiteActionRepo) ClaimBatch(ctx context.Context, userID, date string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO action_batches (user_id, assigned_date, created_at) VALUES (?, ?, ?)`,
		userID, date, formatTime(now))
	if err != nil {
		return false, fmt.Errorf("claiming action batch: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking claimed batch: %w", err)
	}
	return n == 1, nil
}

func (r *SQLiteActionRepo) BatchExists(ctx context.Context, userID, date string) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM action_batches WHERE user_id = ? AND assigned_date = ?)`,
		userID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking action batch: %w", err)
	}
	return intToBool(exists), nil
}

func (r *SQLiteActionRepo) DeleteBatch(ctx context.Context, userID, date string) error {
	// Items first; the batch row is the claim.
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM action_items WHERE user_id = ? AND assigned_date = ?`, userID, date); err != nil {
		return fmt.Errorf("deleting action items: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM action_batches WHERE user_id = ? AND assigned_date = ?`, userID, date); err != nil {
		return fmt.Errorf("deleting action batch: %w", err)
	}
	return nil
}

func (r *SQLiteActionRepo) Create(ctx context.Context, a *domain.ActionItem) error {
	query := `INSERT INTO action_items (` + actionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var completedAt any
	if a.CompletedAt != nil {
		completedAt = formatTime(*a.CompletedAt)
	}
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.AssignedDate,
		a.Text,
		string(a.Category),
		nullableDimension(a.TargetDimension),
		boolToInt(a.Completed),
		completedAt,
		formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting action item: %w", err)
	}
	return nil
}

func (r *SQLiteActionRepo) GetByID(ctx context.Context, id string) (*domain.ActionItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+actionColumns+` FROM action_items WHERE id = ?`, id)
	a, err := scanAction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("action %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteActionRepo) ListByDate(ctx context.Context, userID, date string) ([]*domain.ActionItem, error) {
	query := `SELECT ` + actionColumns + ` FROM action_items
		WHERE user_id = ? AND assigned_date = ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("listing actions by date: %w", err)
	}
	defer rows.Close()
	return scanActions(rows)
}

func (r *SQLiteActionRepo) ListSince(ctx context.Context, userID, fromDate string) ([]*domain.ActionItem, error) {
	query := `SELECT ` + actionColumns + ` FROM action_items
		WHERE user_id = ? AND assigned_date >= ? ORDER BY assigned_date, created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, userID, fromDate)
	if err != nil {
		return nil, fmt.Errorf("listing actions since %s: %w", fromDate, err)
	}
	defer rows.Close()
	return scanActions(rows)
}

func (r *SQLiteActionRepo) MarkCompleted(ctx context.Context, id, userID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE action_items SET completed = 1, completed_at = COALESCE(completed_at, ?)
		WHERE id = ? AND user_id = ?`,
		formatTime(at), id, userID)
	if err != nil {
		return fmt.Errorf("completing action: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking completed action: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("action %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanAction(scan func(dest ...any) error) (*domain.ActionItem, error) {
	var (
		a                      domain.ActionItem
		category               string
		dimension, completedAt sql.NullString
		completed              int
		createdAt              string
	)
	err := scan(&a.ID, &a.UserID, &a.AssignedDate, &a.Text, &category, &dimension,
		&completed, &completedAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning action item: %w", err)
	}
	a.Category = domain.ActionCategory(category)
	a.TargetDimension = parseNullableDimension(dimension)
	a.Completed = intToBool(completed)
	a.CompletedAt = parseNullableTime(completedAt)
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}

func scanActions(rows *sql.Rows) ([]*domain.ActionItem, error) {
	var out []*domain.ActionItem
	for rows.Next() {
		a, err := scanAction(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating actions: %w", err)
	}
	return out, nil
}
