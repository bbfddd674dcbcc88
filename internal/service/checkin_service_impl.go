package service

import (
	"context"
	"time"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/repository"
)

type checkInService struct {
	checkIns repository.CheckInRepo
	settings Settings
	observer UseCaseObserver
}

func NewCheckInService(checkIns repository.CheckInRepo, settings Settings, observers ...UseCaseObserver) CheckInService {
	return &checkInService{
		checkIns: checkIns,
		settings: settings.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *checkInService) Submit(ctx context.Context, req app.CheckInRequest) (entry *domain.CheckIn, err error) {
	fields := map[string]any{"user_id": req.UserID}
	defer track(ctx, s.observer, "submit-checkin", fields, &err)()

	if err = s.validate(req); err != nil {
		return nil, err
	}
	date := req.Date
	if date == "" {
		date = s.settings.today(req.Now)
	}
	fields["date"] = date

	now := s.settings.now(req.Now).UTC()
	entry = &domain.CheckIn{
		UserID:    req.UserID,
		EntryDate: date,
		Mood:      req.Mood,
		Energy:    req.Energy,
		Stress:    req.Stress,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.checkIns.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *checkInService) validate(req app.CheckInRequest) error {
	if err := requireUser(req.UserID); err != nil {
		return err
	}
	if req.Date != "" {
		if _, err := domain.ParseDate(req.Date); err != nil {
			return err
		}
	}
	if err := validateMetric("mood", req.Mood); err != nil {
		return err
	}
	if err := validateMetric("energy", req.Energy); err != nil {
		return err
	}
	if err := validateMetric("stress", req.Stress); err != nil {
		return err
	}
	return validateNotes(req.Notes, s.settings.NotesMaxLen)
}

func (s *checkInService) History(ctx context.Context, userID string, limit int) ([]*domain.CheckIn, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.settings.TrendWindowDays
	}
	return s.checkIns.ListRecent(ctx, userID, limit)
}

func (s *checkInService) Trends(ctx context.Context, userID string, now *time.Time) (*domain.TrendSummary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	_, summary, err := trendWindow(ctx, s.checkIns, userID, s.settings.today(now), s.settings.TrendWindowDays)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
