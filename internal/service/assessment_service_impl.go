package service

import (
	"context"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/repository"
	"github.com/alexanderramin/founderpulse/internal/scoring"
	"github.com/google/uuid"
)

type assessmentService struct {
	assessments repository.AssessmentRepo
	lookup      scoring.ArchetypeLookup
	settings    Settings
	observer    UseCaseObserver
}

func NewAssessmentService(
	assessments repository.AssessmentRepo,
	lookup scoring.ArchetypeLookup,
	settings Settings,
	observers ...UseCaseObserver,
) AssessmentService {
	return &assessmentService{
		assessments: assessments,
		lookup:      lookup,
		settings:    settings.withDefaults(),
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *assessmentService) Submit(ctx context.Context, userID string, answers []domain.AnswerLevel) (result *app.AssessmentResult, err error) {
	fields := map[string]any{"user_id": userID}
	defer track(ctx, s.observer, "submit-assessment", fields, &err)()

	if err = requireUser(userID); err != nil {
		return nil, err
	}
	var scores domain.PsychScores
	if scores, err = scoring.ScoreAnswers(answers); err != nil {
		return nil, err
	}
	archetype := scoring.ClassifyArchetype(scores, s.lookup)
	fields["archetype"] = string(archetype.Archetype)

	a := &domain.Assessment{
		ID:        uuid.New().String(),
		UserID:    userID,
		Answers:   append([]domain.AnswerLevel(nil), answers...),
		Scores:    scores,
		Archetype: archetype.Archetype,
		CreatedAt: s.settings.Clock().UTC(),
	}
	if err = s.assessments.Create(ctx, a); err != nil {
		return nil, err
	}
	return &app.AssessmentResult{Assessment: a, Archetype: archetype}, nil
}

func (s *assessmentService) Latest(ctx context.Context, userID string) (*app.AssessmentResult, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	a, err := s.assessments.GetLatest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &app.AssessmentResult{
		Assessment: a,
		Archetype:  scoring.DescribeArchetype(a.Archetype, s.lookup),
	}, nil
}

func (s *assessmentService) ListUsers(ctx context.Context) ([]string, error) {
	return s.assessments.ListUsers(ctx)
}
