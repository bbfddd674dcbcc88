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

// SQLiteAssessmentRepo implements AssessmentRepo using a SQLite database.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssessmentRepo creates a new SQLiteAssessmentRepo.
func NewSQLiteAssessmentRepo(conn db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: conn}
}

func (r *SQLiteAssessmentRepo) Create(ctx context.Context, a *domain.Assessment) error {
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	s := a.Scores
	query := `INSERT INTO assessments (id, user_id, answers, imposter_syndrome, founder_doubt,
		identity_fusion, fear_of_rejection, risk_tolerance, isolation_level, motivation_type,
		archetype, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		string(answers),
		s.ImposterSyndrome,
		s.FounderDoubt,
		s.IdentityFusion,
		s.FearOfRejection,
		s.RiskTolerance,
		s.IsolationLevel,
		string(s.MotivationType),
		string(a.Archetype),
		formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) GetLatest(ctx context.Context, userID string) (*domain.Assessment, error) {
	query := `SELECT id, user_id, answers, imposter_syndrome, founder_doubt, identity_fusion,
		fear_of_rejection, risk_tolerance, isolation_level, motivation_type, archetype, created_at
		FROM assessments WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID)

	var (
		a          domain.Assessment
		answers    string
		motivation string
		archetype  string
		createdAt  string
	)
	err := row.Scan(
		&a.ID, &a.UserID, &answers,
		&a.Scores.ImposterSyndrome, &a.Scores.FounderDoubt, &a.Scores.IdentityFusion,
		&a.Scores.FearOfRejection, &a.Scores.RiskTolerance, &a.Scores.IsolationLevel,
		&motivation, &archetype, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("assessment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}

	if err := json.Unmarshal([]byte(answers), &a.Answers); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	a.Scores.MotivationType = domain.MotivationType(motivation)
	a.Archetype = domain.Archetype(archetype)
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}

// ListUsers returns every user with at least one assessment, sorted.
func (r *SQLiteAssessmentRepo) ListUsers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM assessments ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("listing assessed users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scanning user id: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}
