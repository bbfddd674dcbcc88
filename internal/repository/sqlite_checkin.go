package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/founderpulse/internal/db"
	"github.com/alexanderramin/founderpulse/internal/domain"
)

// SQLiteCheckInRepo implements CheckInRepo using a SQLite database.
type SQLiteCheckInRepo struct {
	db db.DBTX
}

// NewSQLiteCheckInRepo creates a new SQLiteCheckInRepo.
func NewSQLiteCheckInRepo(conn db.DBTX) *SQLiteCheckInRepo {
	return &SQLiteCheckInRepo{db: conn}
}

const checkInColumns = `user_id, entry_date, mood, energy, stress, notes, created_at, updated_at`

func (r *SQLiteCheckInRepo) Upsert(ctx context.Context, c *domain.CheckIn) error {
	query := `INSERT INTO check_ins (` + checkInColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, entry_date) DO UPDATE SET
			mood = excluded.mood,
			energy = excluded.energy,
			stress = excluded.stress,
			notes = excluded.notes,
			updated_at = excluded.updated_at
		RETURNING created_at`
	var createdAt string
	err := r.db.QueryRowContext(ctx, query,
		c.UserID,
		c.EntryDate,
		c.Mood,
		c.Energy,
		c.Stress,
		c.Notes,
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("upserting check-in: %w", err)
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	return nil
}

func (r *SQLiteCheckInRepo) GetByDate(ctx context.Context, userID, date string) (*domain.CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM check_ins WHERE user_id = ? AND entry_date = ?`
	row := r.db.QueryRowContext(ctx, query, userID, date)

	c, err := scanCheckIn(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("check-in %s: %w", date, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCheckInRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM check_ins
		WHERE user_id = ? ORDER BY entry_date DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent check-ins: %w", err)
	}
	defer rows.Close()
	return scanCheckIns(rows)
}

func (r *SQLiteCheckInRepo) ListRange(ctx context.Context, userID, from, to string) ([]*domain.CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM check_ins
		WHERE user_id = ? AND entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date`
	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing check-ins in range: %w", err)
	}
	defer rows.Close()
	return scanCheckIns(rows)
}

func scanCheckIn(scan func(dest ...any) error) (*domain.CheckIn, error) {
	var (
		c                    domain.CheckIn
		createdAt, updatedAt string
	)
	if err := scan(&c.UserID, &c.EntryDate, &c.Mood, &c.Energy, &c.Stress, &c.Notes, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning check-in: %w", err)
	}
	var err error
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}

func scanCheckIns(rows *sql.Rows) ([]*domain.CheckIn, error) {
	var out []*domain.CheckIn
	for rows.Next() {
		c, err := scanCheckIn(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-ins: %w", err)
	}
	return out, nil
}
