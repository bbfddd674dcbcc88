package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/db"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/recommend"
	"github.com/alexanderramin/founderpulse/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type actionService struct {
	actions     repository.ActionRepo
	assessments repository.AssessmentRepo
	burnouts    repository.BurnoutRepo
	templates   recommend.TemplateSource
	uow         db.UnitOfWork
	logger      *zap.Logger
	settings    Settings
	observer    UseCaseObserver
}

// ActionRepos groups the stores action generation reads and writes.
type ActionRepos struct {
	Actions     repository.ActionRepo
	Assessments repository.AssessmentRepo
	Burnouts    repository.BurnoutRepo
}

func NewActionService(
	repos ActionRepos,
	templates recommend.TemplateSource,
	uow db.UnitOfWork,
	logger *zap.Logger,
	settings Settings,
	observers ...UseCaseObserver,
) ActionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &actionService{
		actions:     repos.Actions,
		assessments: repos.Assessments,
		burnouts:    repos.Burnouts,
		templates:   templates,
		uow:         uow,
		logger:      logger.Named("actions"),
		settings:    settings.withDefaults(),
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *actionService) GenerateDaily(ctx context.Context, req app.GenerateActionsRequest) (result *app.GenerateActionsResult, err error) {
	fields := map[string]any{"user_id": req.UserID, "force": req.Force}
	defer track(ctx, s.observer, "generate-actions", fields, &err)()

	if err = requireUser(req.UserID); err != nil {
		return nil, err
	}
	now := s.settings.now(req.Now)
	today := domain.FormatDate(now)
	fields["date"] = today

	// Inputs are read before the batch is claimed so a failed read leaves no
	// empty claim behind.
	var assessment *domain.Assessment
	if assessment, err = latestAssessment(ctx, s.assessments, req.UserID); err != nil {
		return nil, err
	}
	var burnout *domain.BurnoutScore
	if burnout, err = latestBurnout(ctx, s.burnouts, req.UserID, today); err != nil {
		return nil, err
	}

	in := recommend.Input{UserID: req.UserID, Date: today, Archetype: domain.ArchetypeGrowthSeeker}
	if assessment != nil {
		in.Archetype = assessment.Archetype
		in.Assessment = &assessment.Scores
	}
	if burnout != nil {
		in.Burnout = &burnout.BurnoutResult
	}
	result = &app.GenerateActionsResult{
		Date:      today,
		Archetype: in.Archetype,
		Quota:     recommend.DesiredCount(in.Burnout),
	}

	if req.Force {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteActionRepo(tx).DeleteBatch(ctx, req.UserID, today)
		})
		if err != nil {
			return nil, err
		}
	}

	var claimed bool
	if claimed, err = s.actions.ClaimBatch(ctx, req.UserID, today, now); err != nil {
		return nil, err
	}
	if !claimed {
		if result.Actions, err = s.actions.ListByDate(ctx, req.UserID, today); err != nil {
			return nil, err
		}
		fields["generated"] = false
		return result, nil
	}

	result.Generated = true
	for _, tmpl := range recommend.SelectDailyActions(in, s.templates) {
		item := &domain.ActionItem{
			ID:              uuid.New().String(),
			UserID:          req.UserID,
			AssignedDate:    today,
			Text:            tmpl.Text,
			Category:        tmpl.Category,
			TargetDimension: tmpl.Dimension,
			CreatedAt:       s.settings.Clock().UTC(),
		}
		if createErr := s.actions.Create(ctx, item); createErr != nil {
			result.Failed++
			s.logger.Warn("skipping action item",
				zap.String("user_id", req.UserID),
				zap.String("date", today),
				zap.String("text", tmpl.Text),
				zap.Error(createErr),
			)
			continue
		}
		result.Actions = append(result.Actions, item)
	}
	if len(result.Actions) == 0 && result.Failed > 0 {
		// Release the claim so the next run can generate the day.
		if releaseErr := s.actions.DeleteBatch(ctx, req.UserID, today); releaseErr != nil {
			s.logger.Error("releasing empty action batch",
				zap.String("user_id", req.UserID),
				zap.String("date", today),
				zap.Error(releaseErr),
			)
		}
		fields["failed"] = result.Failed
		return nil, fmt.Errorf("generating actions for %s: all %d items failed to save", today, result.Failed)
	}
	fields["generated"] = true
	fields["count"] = len(result.Actions)
	fields["failed"] = result.Failed
	return result, nil
}

func (s *actionService) Today(ctx context.Context, userID string, now *time.Time) ([]*domain.ActionItem, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.actions.ListByDate(ctx, userID, s.settings.today(now))
}

func (s *actionService) ForDate(ctx context.Context, userID, date string) ([]*domain.ActionItem, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	return s.actions.ListByDate(ctx, userID, date)
}

func (s *actionService) Complete(ctx context.Context, actionID, userID string) (item *domain.ActionItem, err error) {
	fields := map[string]any{"user_id": userID, "action_id": actionID}
	defer track(ctx, s.observer, "complete-action", fields, &err)()

	if err = requireUser(userID); err != nil {
		return nil, err
	}
	if actionID == "" {
		return nil, domain.NewValidationError("action_id", "is required")
	}
	if err = s.actions.MarkCompleted(ctx, actionID, userID, s.settings.Clock().UTC()); err != nil {
		return nil, err
	}
	return s.actions.GetByID(ctx, actionID)
}
