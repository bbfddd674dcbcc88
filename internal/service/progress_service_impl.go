package service

import (
	"context"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/progress"
	"github.com/alexanderramin/founderpulse/internal/repository"
)

// maxStatsWindowDays caps the requested window.
const maxStatsWindowDays = 365

type progressService struct {
	actions  repository.ActionRepo
	settings Settings
	observer UseCaseObserver
}

func NewProgressService(actions repository.ActionRepo, settings Settings, observers ...UseCaseObserver) ProgressService {
	return &progressService{
		actions:  actions,
		settings: settings.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) Stats(ctx context.Context, req app.StatsRequest) (stats *domain.CompletionStats, err error) {
	fields := map[string]any{"user_id": req.UserID}
	defer track(ctx, s.observer, "completion-stats", fields, &err)()

	if err = requireUser(req.UserID); err != nil {
		return nil, err
	}
	window := req.WindowDays
	if window <= 0 {
		window = s.settings.StatsWindowDays
	}
	if window > maxStatsWindowDays {
		return nil, domain.NewValidationError("window_days", "%d exceeds the %d day maximum", window, maxStatsWindowDays)
	}
	fields["window_days"] = window

	now := s.settings.now(req.Now)
	lookback := max(window, progress.MaxStreakDays)
	from := domain.FormatDate(now.AddDate(0, 0, -lookback))

	var items []*domain.ActionItem
	if items, err = s.actions.ListSince(ctx, req.UserID, from); err != nil {
		return nil, err
	}
	actions := make([]domain.ActionItem, len(items))
	for i, it := range items {
		actions[i] = *it
	}

	computed := progress.ComputeStats(actions, now, window)
	fields["streak"] = computed.Streak
	return &computed, nil
}
