package service

import (
	"context"
	"time"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
)

type AssessmentService interface {
	Submit(ctx context.Context, userID string, answers []domain.AnswerLevel) (*app.AssessmentResult, error)
	Latest(ctx context.Context, userID string) (*app.AssessmentResult, error)
	ListUsers(ctx context.Context) ([]string, error)
}

type CheckInService interface {
	Submit(ctx context.Context, req app.CheckInRequest) (*domain.CheckIn, error)
	History(ctx context.Context, userID string, limit int) ([]*domain.CheckIn, error)
	Trends(ctx context.Context, userID string, now *time.Time) (*domain.TrendSummary, error)
}

type BurnoutService interface {
	Calculate(ctx context.Context, req app.BurnoutRequest) (*app.BurnoutReport, error)
	History(ctx context.Context, userID string, limit int) ([]*domain.BurnoutScore, error)
}

type ActionService interface {
	GenerateDaily(ctx context.Context, req app.GenerateActionsRequest) (*app.GenerateActionsResult, error)
	Today(ctx context.Context, userID string, now *time.Time) ([]*domain.ActionItem, error)
	ForDate(ctx context.Context, userID, date string) ([]*domain.ActionItem, error)
	Complete(ctx context.Context, actionID, userID string) (*domain.ActionItem, error)
}

type ProgressService interface {
	Stats(ctx context.Context, req app.StatsRequest) (*domain.CompletionStats, error)
}
