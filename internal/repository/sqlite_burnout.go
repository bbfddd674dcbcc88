package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/founderpulse/internal/db"
	"github.com/alexanderramin/founderpulse/internal/domain"
)

// SQLiteBurnoutRepo implements BurnoutRepo using a SQLite database.
type SQLiteBurnoutRepo struct {
	db db.DBTX
}

// NewSQLiteBurnoutRepo creates a new SQLiteBurnoutRepo.
func NewSQLiteBurnoutRepo(conn db.DBTX) *SQLiteBurnoutRepo {
	return &SQLiteBurnoutRepo{db: conn}
}

const burnoutColumns = `id, user_id, score_date, score, risk_level, factors, insight, created_at`

func (r *SQLiteBurnoutRepo) Create(ctx context.Context, s *domain.BurnoutScore) error {
	factors := s.Factors
	if factors == nil {
		factors = []string{}
	}
	encoded, err := json.Marshal(factors)
	if err != nil {
		return fmt.Errorf("encoding factors: %w", err)
	}
	query := `INSERT INTO burnout_scores (` + burnoutColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.ScoreDate,
		s.Score,
		string(s.RiskLevel),
		string(encoded),
		s.Insight,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting burnout score: %w", err)
	}
	return nil
}

// GetLatestForDate returns the most recent calculation recorded for date.
func (r *SQLiteBurnoutRepo) GetLatestForDate(ctx context.Context, userID, date string) (*domain.BurnoutScore, error) {
	query := `SELECT ` + burnoutColumns + ` FROM burnout_scores
		WHERE user_id = ? AND score_date = ?
		ORDER BY created_at DESC, rowid DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID, date)

	s, err := scanBurnout(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("burnout score %s: %w", date, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteBurnoutRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.BurnoutScore, error) {
	query := `SELECT ` + burnoutColumns + ` FROM burnout_scores
		WHERE user_id = ? ORDER BY score_date DESC, created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing burnout scores: %w", err)
	}
	defer rows.Close()

	var out []*domain.BurnoutScore
	for rows.Next() {
		s, err := scanBurnout(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating burnout scores: %w", err)
	}
	return out, nil
}

func scanBurnout(scan func(dest ...any) error) (*domain.BurnoutScore, error) {
	var (
		s                   domain.BurnoutScore
		risk, factors, when string
	)
	if err := scan(&s.ID, &s.UserID, &s.ScoreDate, &s.Score, &risk, &factors, &s.Insight, &when); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning burnout score: %w", err)
	}
	s.RiskLevel = domain.RiskLevel(risk)
	if err := json.Unmarshal([]byte(factors), &s.Factors); err != nil {
		return nil, fmt.Errorf("decoding factors: %w", err)
	}
	var err error
	if s.CreatedAt, err = parseTime(when); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}
