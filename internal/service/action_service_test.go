package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/catalog"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/recommend"
	"github.com/alexanderramin/founderpulse/internal/repository"
	"github.com/alexanderramin/founderpulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func texts(items []*domain.ActionItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

func TestGenerateDaily_DefaultsWithoutHistory(t *testing.T) {
	f := newFixture(t)
	svc := f.actionService()

	result, err := svc.GenerateDaily(context.Background(), app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, result.Generated)
	assert.Equal(t, testToday, result.Date)
	assert.Equal(t, domain.ArchetypeGrowthSeeker, result.Archetype)
	assert.Equal(t, recommend.DefaultQuota, result.Quota)
	assert.Len(t, result.Actions, recommend.DefaultQuota)
	assert.Zero(t, result.Failed)

	categories := map[domain.ActionCategory]bool{}
	for _, a := range result.Actions {
		assert.Equal(t, "u1", a.UserID)
		assert.Equal(t, testToday, a.AssignedDate)
		assert.False(t, a.Completed)
		categories[a.Category] = true
	}
	assert.Len(t, categories, recommend.DefaultQuota, "each action should come from a different category")
}

func TestGenerateDaily_SecondCallReturnsExistingBatch(t *testing.T) {
	f := newFixture(t)
	svc := f.actionService()
	ctx := context.Background()

	first, err := svc.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)

	second, err := svc.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.False(t, second.Generated)
	require.Len(t, second.Actions, len(first.Actions))
	for i := range first.Actions {
		assert.Equal(t, first.Actions[i].ID, second.Actions[i].ID)
	}
}

func TestGenerateDaily_ForceReplacesBatch(t *testing.T) {
	f := newFixture(t)
	svc := f.actionService()
	ctx := context.Background()

	first, err := svc.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)
	require.NoError(t, f.actions.MarkCompleted(ctx, first.Actions[0].ID, "u1", testNow))

	again, err := svc.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1", Force: true})
	require.NoError(t, err)
	assert.True(t, again.Generated)
	// Same user, date and inputs select the same texts.
	assert.Equal(t, texts(first.Actions), texts(again.Actions))
	assert.NotEqual(t, first.Actions[0].ID, again.Actions[0].ID)

	stored, err := f.actions.ListByDate(ctx, "u1", testToday)
	require.NoError(t, err)
	assert.Len(t, stored, len(again.Actions))
	for _, a := range stored {
		assert.False(t, a.Completed)
	}
}

func TestGenerateDaily_FailedForceDeleteKeepsOldBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.actionService().GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)

	// Fail the batch-row delete after the items were already deleted.
	f.uow = &testutil.FailOnNthExecUoW{DB: f.db, FailOn: 2, Err: errors.New("disk I/O error")}
	_, err = f.actionService().GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1", Force: true})
	require.Error(t, err)

	stored, err := f.actions.ListByDate(ctx, "u1", testToday)
	require.NoError(t, err)
	assert.Equal(t, texts(first.Actions), texts(stored))
}

func TestGenerateDaily_QuotaFollowsRisk(t *testing.T) {
	cases := []struct {
		score int
		risk  domain.RiskLevel
		want  int
	}{
		{30, domain.RiskLow, recommend.DefaultQuota},
		{55, domain.RiskCaution, recommend.CautionQuota},
		{75, domain.RiskHigh, recommend.HighQuota},
		{90, domain.RiskCritical, recommend.HighQuota},
	}
	for _, tc := range cases {
		t.Run(string(tc.risk), func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			require.NoError(t, f.burnouts.Create(ctx, testutil.NewTestBurnoutScore("u1", testToday, tc.score, tc.risk)))

			result, err := f.actionService().GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.Quota)
			assert.Len(t, result.Actions, tc.want)
		})
	}
}

func TestGenerateDaily_UsesLatestArchetype(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.assessments.Create(ctx, testutil.NewTestAssessment("u1",
		testutil.WithArchetype(domain.ArchetypeIsolatedDreamer))))

	result, err := f.actionService().GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, domain.ArchetypeIsolatedDreamer, result.Archetype)

	in := recommend.Input{
		UserID:     "u1",
		Date:       testToday,
		Archetype:  domain.ArchetypeIsolatedDreamer,
		Assessment: &testutil.NewTestAssessment("u1").Scores,
	}
	want := recommend.SelectDailyActions(in, catalog.Default())
	require.Len(t, result.Actions, len(want))
	for i, tmpl := range want {
		assert.Equal(t, tmpl.Text, result.Actions[i].Text)
	}
}

func TestGenerateDaily_SkipsFailedInserts(t *testing.T) {
	f := newFixture(t)
	failing := &testutil.FailOnNthExecDB{
		DBTX:   f.db,
		FailOn: 2,
		Match:  "INSERT INTO action_items",
		Err:    errors.New("injected insert failure"),
	}
	core, logs := observer.New(zapcore.WarnLevel)
	svc := NewActionService(
		ActionRepos{Actions: repository.NewSQLiteActionRepo(failing), Assessments: f.assessments, Burnouts: f.burnouts},
		catalog.Default(), f.uow, zap.New(core), f.settings,
	)
	ctx := context.Background()

	result, err := svc.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Actions, recommend.DefaultQuota-1)

	stored, err := f.actions.ListByDate(ctx, "u1", testToday)
	require.NoError(t, err)
	assert.Len(t, stored, recommend.DefaultQuota-1)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "skipping action item", entry.Message)
	assert.Equal(t, "u1", entry.ContextMap()["user_id"])
}

func TestGenerateDaily_AllInsertsFailingReleasesClaim(t *testing.T) {
	f := newFixture(t)
	failing := &testutil.FailOnNthExecDB{
		DBTX:  f.db,
		Match: "INSERT INTO action_items",
		Err:   errors.New("injected insert failure"),
	}
	broken := NewActionService(
		ActionRepos{Actions: repository.NewSQLiteActionRepo(failing), Assessments: f.assessments, Burnouts: f.burnouts},
		catalog.Default(), f.uow, nil, f.settings,
	)
	ctx := context.Background()

	_, err := broken.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save")

	claimed, err := f.actions.BatchExists(ctx, "u1", testToday)
	require.NoError(t, err)
	assert.False(t, claimed)

	result, err := f.actionService().GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, result.Generated)
	assert.Len(t, result.Actions, recommend.DefaultQuota)
}

func TestGenerateDaily_ReadFailureLeavesNoClaim(t *testing.T) {
	f := newFixture(t)
	svc := NewActionService(
		ActionRepos{Actions: f.actions, Assessments: failingAssessments{}, Burnouts: f.burnouts},
		catalog.Default(), f.uow, nil, f.settings,
	)
	ctx := context.Background()

	_, err := svc.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.Error(t, err)

	claimed, err := f.actions.BatchExists(ctx, "u1", testToday)
	require.NoError(t, err)
	assert.False(t, claimed)
}

type failingAssessments struct{ repository.AssessmentRepo }

func (failingAssessments) GetLatest(context.Context, string) (*domain.Assessment, error) {
	return nil, errors.New("disk on fire")
}

func TestActionsToday(t *testing.T) {
	f := newFixture(t)
	svc := f.actionService()
	ctx := context.Background()

	none, err := svc.Today(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)

	today, err := svc.Today(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Len(t, today, recommend.DefaultQuota)

	tomorrow := testNow.AddDate(0, 0, 1)
	next, err := svc.Today(ctx, "u1", &tomorrow)
	require.NoError(t, err)
	assert.Empty(t, next)

	byDate, err := svc.ForDate(ctx, "u1", testToday)
	require.NoError(t, err)
	assert.Len(t, byDate, recommend.DefaultQuota)

	_, err = svc.ForDate(ctx, "u1", "15/10/2026")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCompleteAction(t *testing.T) {
	f := newFixture(t)
	clock := testNow
	f.settings.Clock = func() time.Time { return clock }
	svc := f.actionService()
	ctx := context.Background()

	batch, err := svc.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)
	id := batch.Actions[0].ID

	clock = testNow.Add(time.Hour)
	done, err := svc.Complete(ctx, id, "u1")
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)
	assert.True(t, done.CompletedAt.Equal(testNow.Add(time.Hour)))

	clock = testNow.Add(3 * time.Hour)
	again, err := svc.Complete(ctx, id, "u1")
	require.NoError(t, err)
	assert.True(t, again.CompletedAt.Equal(testNow.Add(time.Hour)), "first completion time is kept")
}

func TestCompleteAction_Errors(t *testing.T) {
	f := newFixture(t)
	svc := f.actionService()
	ctx := context.Background()

	batch, err := svc.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: "u1"})
	require.NoError(t, err)

	_, err = svc.Complete(ctx, batch.Actions[0].ID, "someone-else")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Complete(ctx, "missing", "u1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Complete(ctx, "", "u1")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "action_id", vErr.Field)

	stored, err := f.actions.GetByID(ctx, batch.Actions[0].ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed)
}
