package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/founderpulse/internal/catalog"
	"github.com/alexanderramin/founderpulse/internal/db"
	"github.com/alexanderramin/founderpulse/internal/repository"
	"github.com/alexanderramin/founderpulse/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

const testToday = "2026-10-15"

type fixture struct {
	db          *sql.DB
	uow         db.UnitOfWork
	assessments *repository.SQLiteAssessmentRepo
	checkIns    *repository.SQLiteCheckInRepo
	burnouts    *repository.SQLiteBurnoutRepo
	actions     *repository.SQLiteActionRepo
	settings    Settings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	settings := DefaultSettings()
	settings.Clock = func() time.Time { return testNow }
	return &fixture{
		db:          database,
		uow:         testutil.NewTestUoW(database),
		assessments: repository.NewSQLiteAssessmentRepo(database),
		checkIns:    repository.NewSQLiteCheckInRepo(database),
		burnouts:    repository.NewSQLiteBurnoutRepo(database),
		actions:     repository.NewSQLiteActionRepo(database),
		settings:    settings,
	}
}

func (f *fixture) actionService(observers ...UseCaseObserver) ActionService {
	return NewActionService(
		ActionRepos{Actions: f.actions, Assessments: f.assessments, Burnouts: f.burnouts},
		catalog.Default(), f.uow, nil, f.settings, observers...,
	)
}

// seedCheckIn stores an entry daysAgo days before testToday.
func (f *fixture) seedCheckIn(t *testing.T, userID string, daysAgo, mood, energy, stress int) {
	t.Helper()
	date := testutil.ShiftDate(testToday, -daysAgo)
	entry := testutil.NewTestCheckIn(userID, date,
		testutil.WithMood(mood), testutil.WithEnergy(energy), testutil.WithStress(stress))
	require.NoError(t, f.checkIns.Upsert(context.Background(), entry))
}

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	return r.events[len(r.events)-1]
}
