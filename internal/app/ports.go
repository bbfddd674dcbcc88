package app

import (
	"context"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

type SubmitAssessmentUseCase interface {
	Submit(ctx context.Context, userID string, answers []domain.AnswerLevel) (*AssessmentResult, error)
}

type SubmitCheckInUseCase interface {
	Submit(ctx context.Context, req CheckInRequest) (*domain.CheckIn, error)
}

type CalculateBurnoutUseCase interface {
	Calculate(ctx context.Context, req BurnoutRequest) (*BurnoutReport, error)
}

type GenerateActionsUseCase interface {
	GenerateDaily(ctx context.Context, req GenerateActionsRequest) (*GenerateActionsResult, error)
}

type CompleteActionUseCase interface {
	Complete(ctx context.Context, actionID, userID string) (*domain.ActionItem, error)
}

type CompletionStatsUseCase interface {
	Stats(ctx context.Context, req StatsRequest) (*domain.CompletionStats, error)
}

// InsightProvider produces a short narrative for a burnout result. It must
// always return usable text, falling back to a deterministic summary when its
// backend is unavailable or ctx expires.
type InsightProvider interface {
	BurnoutInsight(ctx context.Context, in BurnoutInsightInput) string
}
