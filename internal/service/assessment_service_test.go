package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/founderpulse/internal/catalog"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answersAt(level domain.AnswerLevel) []domain.AnswerLevel {
	answers := make([]domain.AnswerLevel, domain.AnswerCount)
	for i := range answers {
		answers[i] = level
	}
	return answers
}

func TestAssessmentSubmit_ClassifiesAndPersists(t *testing.T) {
	f := newFixture(t)
	obs := &recordingObserver{}
	svc := NewAssessmentService(f.assessments, catalog.Default(), f.settings, obs)
	ctx := context.Background()

	result, err := svc.Submit(ctx, "founder-1", answersAt(domain.AnswerLevel4))
	require.NoError(t, err)
	assert.Equal(t, domain.ArchetypeBurningOut, result.Archetype.Archetype)
	assert.True(t, result.Archetype.IsUrgent)
	assert.NotEmpty(t, result.Archetype.Description)
	assert.Equal(t, 100, result.Assessment.Scores.ImposterSyndrome)
	assert.Equal(t, testNow, result.Assessment.CreatedAt)

	stored, err := f.assessments.GetLatest(ctx, "founder-1")
	require.NoError(t, err)
	assert.Equal(t, result.Assessment.ID, stored.ID)
	assert.Equal(t, domain.ArchetypeBurningOut, stored.Archetype)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "submit-assessment", obs.last().Name)
	assert.True(t, obs.last().Success)
	assert.Equal(t, "burning_out", obs.last().Fields["archetype"])
}

func TestAssessmentSubmit_RejectsBadAnswers(t *testing.T) {
	f := newFixture(t)
	svc := NewAssessmentService(f.assessments, catalog.Default(), f.settings)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "founder-1", answersAt(domain.AnswerLevel2)[:20])
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.Submit(ctx, "", answersAt(domain.AnswerLevel2))
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "user_id", vErr.Field)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users, "nothing should be stored for rejected submissions")
}

func TestAssessmentLatest(t *testing.T) {
	f := newFixture(t)
	svc := NewAssessmentService(f.assessments, catalog.Default(), f.settings)
	ctx := context.Background()

	_, err := svc.Latest(ctx, "nobody")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Submit(ctx, "founder-1", answersAt(domain.AnswerLevel1))
	require.NoError(t, err)

	latest, err := svc.Latest(ctx, "founder-1")
	require.NoError(t, err)
	// All-zero scores fall through to community driven (isolation < 40).
	assert.Equal(t, domain.ArchetypeCommunityDriven, latest.Archetype.Archetype)
	assert.NotEmpty(t, latest.Archetype.Name)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"founder-1"}, users)
}
