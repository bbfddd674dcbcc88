package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedDay claims daysAgo's batch and stores one action per entry of done.
func (f *fixture) seedDay(t *testing.T, userID string, daysAgo int, done ...bool) {
	t.Helper()
	ctx := context.Background()
	date := testutil.ShiftDate(testToday, -daysAgo)
	_, err := f.actions.ClaimBatch(ctx, userID, date, testNow)
	require.NoError(t, err)
	for i, d := range done {
		var opts []testutil.ActionOption
		if d {
			opts = append(opts, testutil.WithCompletedAt(testNow))
		}
		a := testutil.NewTestAction(userID, date, date+" #"+string(rune('a'+i)), opts...)
		require.NoError(t, f.actions.Create(ctx, a))
	}
}

func TestStats_WindowAndStreak(t *testing.T) {
	f := newFixture(t)
	svc := NewProgressService(f.actions, f.settings)

	f.seedDay(t, "u1", 0, false, false)
	f.seedDay(t, "u1", 1, true, false)
	f.seedDay(t, "u1", 2, true)
	f.seedDay(t, "u1", 3, false)
	// Outside a 7-day window.
	f.seedDay(t, "u1", 9, true, true)

	stats, err := svc.Stats(context.Background(), app.StatsRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 7, stats.WindowDays)
	assert.Equal(t, 6, stats.TotalActions)
	assert.Equal(t, 2, stats.CompletedActions)
	assert.Equal(t, 33, stats.CompletionRate)
	// Today has open actions only, which ends the streak at once.
	assert.Equal(t, 0, stats.Streak)
}

func TestStats_EmptyTodayKeepsStreak(t *testing.T) {
	f := newFixture(t)
	svc := NewProgressService(f.actions, f.settings)

	f.seedDay(t, "u1", 1, true)
	f.seedDay(t, "u1", 2, true, false)
	f.seedDay(t, "u1", 3, true)
	f.seedDay(t, "u1", 5, true)

	stats, err := svc.Stats(context.Background(), app.StatsRequest{UserID: "u1", WindowDays: 30})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Streak)
	assert.Equal(t, 5, stats.TotalActions)
	assert.Equal(t, 80, stats.CompletionRate)
}

func TestStats_StreakLooksPastTheWindow(t *testing.T) {
	f := newFixture(t)
	svc := NewProgressService(f.actions, f.settings)
	for d := 0; d < 10; d++ {
		f.seedDay(t, "u1", d, true)
	}

	stats, err := svc.Stats(context.Background(), app.StatsRequest{UserID: "u1", WindowDays: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalActions)
	assert.Equal(t, 10, stats.Streak)
}

func TestStats_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewProgressService(f.actions, f.settings)
	ctx := context.Background()

	_, err := svc.Stats(ctx, app.StatsRequest{UserID: "u1", WindowDays: 400})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "window_days", vErr.Field)

	_, err = svc.Stats(ctx, app.StatsRequest{})
	require.ErrorAs(t, err, &vErr)

	stats, err := svc.Stats(ctx, app.StatsRequest{UserID: "new-user"})
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionStats{WindowDays: 7}, *stats)
}
