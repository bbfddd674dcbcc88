package service

import (
	"context"
	"errors"
	"slices"

	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/repository"
	"github.com/alexanderramin/founderpulse/internal/scoring"
)

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// latestAssessment returns the newest assessment for userID, or nil when the
// user has never been assessed.
func latestAssessment(ctx context.Context, repo repository.AssessmentRepo, userID string) (*domain.Assessment, error) {
	a, err := repo.GetLatest(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// latestBurnout returns the newest burnout score recorded for date, or nil.
func latestBurnout(ctx context.Context, repo repository.BurnoutRepo, userID, date string) (*domain.BurnoutScore, error) {
	b, err := repo.GetLatestForDate(ctx, userID, date)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

// trendWindow loads the last windowDays of entries ending on today and returns
// them most recent first, alongside their trend summary.
func trendWindow(ctx context.Context, repo repository.CheckInRepo, userID, today string, windowDays int) ([]domain.CheckIn, domain.TrendSummary, error) {
	from, err := domain.AddDays(today, -(windowDays - 1))
	if err != nil {
		return nil, domain.TrendSummary{}, err
	}
	entries, err := repo.ListRange(ctx, userID, from, today)
	if err != nil {
		return nil, domain.TrendSummary{}, err
	}
	history := make([]domain.CheckIn, 0, len(entries))
	for _, e := range slices.Backward(entries) {
		history = append(history, *e)
	}
	return history, scoring.ComputeTrends(history), nil
}
