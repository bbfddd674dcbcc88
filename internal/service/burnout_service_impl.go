package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/db"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/repository"
	"github.com/alexanderramin/founderpulse/internal/scoring"
	"github.com/google/uuid"
)

type burnoutService struct {
	burnouts repository.BurnoutRepo
	uow      db.UnitOfWork
	insights app.InsightProvider
	settings Settings
	observer UseCaseObserver
}

// NewBurnoutService wires burnout calculation. insights may be nil.
func NewBurnoutService(
	burnouts repository.BurnoutRepo,
	uow db.UnitOfWork,
	insights app.InsightProvider,
	settings Settings,
	observers ...UseCaseObserver,
) BurnoutService {
	return &burnoutService{
		burnouts: burnouts,
		uow:      uow,
		insights: insights,
		settings: settings.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

// burnoutInputs is everything a calculation reads, loaded in one transaction.
type burnoutInputs struct {
	entry      *domain.CheckIn
	assessment *domain.Assessment
	trends     domain.TrendSummary
}

func (s *burnoutService) Calculate(ctx context.Context, req app.BurnoutRequest) (report *app.BurnoutReport, err error) {
	fields := map[string]any{"user_id": req.UserID}
	defer track(ctx, s.observer, "calculate-burnout", fields, &err)()

	if err = requireUser(req.UserID); err != nil {
		return nil, err
	}
	today := s.settings.today(req.Now)
	fields["date"] = today

	var in burnoutInputs
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		checkIns := repository.NewSQLiteCheckInRepo(tx)

		entry, err := checkIns.GetByDate(ctx, req.UserID, today)
		if err != nil {
			return fmt.Errorf("no check-in to score: %w", err)
		}
		in.entry = entry

		if in.assessment, err = latestAssessment(ctx, repository.NewSQLiteAssessmentRepo(tx), req.UserID); err != nil {
			return err
		}
		_, in.trends, err = trendWindow(ctx, checkIns, req.UserID, today, s.settings.TrendWindowDays)
		return err
	})
	if err != nil {
		return nil, err
	}

	var scores *domain.PsychScores
	var archetype *domain.Archetype
	if in.assessment != nil {
		scores = &in.assessment.Scores
		archetype = &in.assessment.Archetype
	}
	result := scoring.ComputeBurnout(*in.entry, scores, &in.trends)
	fields["score"] = result.Score
	fields["risk_level"] = string(result.RiskLevel)

	score := &domain.BurnoutScore{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		ScoreDate:     today,
		BurnoutResult: result,
		Insight:       s.insight(ctx, app.BurnoutInsightInput{UserID: req.UserID, Result: result, Trends: in.trends, Archetype: archetype}),
		CreatedAt:     s.settings.Clock().UTC(),
	}
	if err = s.burnouts.Create(ctx, score); err != nil {
		return nil, err
	}
	return &app.BurnoutReport{Score: score, Trends: in.trends, HasAssessment: in.assessment != nil}, nil
}

// insight asks the provider for narrative text within the configured timeout.
func (s *burnoutService) insight(ctx context.Context, in app.BurnoutInsightInput) string {
	if s.insights == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, s.settings.InsightTimeout)
	defer cancel()
	return s.insights.BurnoutInsight(ctx, in)
}

func (s *burnoutService) History(ctx context.Context, userID string, limit int) ([]*domain.BurnoutScore, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.settings.TrendWindowDays
	}
	return s.burnouts.ListRecent(ctx, userID, limit)
}
