package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

type AssessmentRepo interface {
	Create(ctx context.Context, a *domain.Assessment) error
	GetLatest(ctx context.Context, userID string) (*domain.Assessment, error)
	ListUsers(ctx context.Context) ([]string, error)
}

type CheckInRepo interface {
	// Upsert inserts or overwrites the entry for (UserID, EntryDate). The
	// original CreatedAt survives an overwrite and is written back into c.
	Upsert(ctx context.Context, c *domain.CheckIn) error
	GetByDate(ctx context.Context, userID, date string) (*domain.CheckIn, error)
	// ListRecent returns up to limit entries, most recent first.
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.CheckIn, error)
	// ListRange returns entries with from <= entry_date <= to, oldest first.
	ListRange(ctx context.Context, userID, from, to string) ([]*domain.CheckIn, error)
}

type BurnoutRepo interface {
	Create(ctx context.Context, s *domain.BurnoutScore) error
	GetLatestForDate(ctx context.Context, userID, date string) (*domain.BurnoutScore, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.BurnoutScore, error)
}

type ActionRepo interface {
	// ClaimBatch records that (userID, date) has a batch. It reports false
	// when the batch was already claimed.
	ClaimBatch(ctx context.Context, userID, date string, now time.Time) (bool, error)
	BatchExists(ctx context.Context, userID, date string) (bool, error)
	// DeleteBatch removes the claim and every item assigned under it.
	DeleteBatch(ctx context.Context, userID, date string) error
	Create(ctx context.Context, a *domain.ActionItem) error
	GetByID(ctx context.Context, id string) (*domain.ActionItem, error)
	ListByDate(ctx context.Context, userID, date string) ([]*domain.ActionItem, error)
	ListSince(ctx context.Context, userID, fromDate string) ([]*domain.ActionItem, error)
	// MarkCompleted completes an action owned by userID. The first completion
	// time is kept on repeat calls.
	MarkCompleted(ctx context.Context, id, userID string, at time.Time) error
}
