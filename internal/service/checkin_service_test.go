package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInSubmit_DefaultsToToday(t *testing.T) {
	f := newFixture(t)
	svc := NewCheckInService(f.checkIns, f.settings)
	ctx := context.Background()

	entry, err := svc.Submit(ctx, app.CheckInRequest{UserID: "u1", Mood: 70, Energy: 60, Stress: 30})
	require.NoError(t, err)
	assert.Equal(t, testToday, entry.EntryDate)

	stored, err := f.checkIns.GetByDate(ctx, "u1", testToday)
	require.NoError(t, err)
	assert.Equal(t, 70, stored.Mood)
}

func TestCheckInSubmit_TodayFollowsLocation(t *testing.T) {
	f := newFixture(t)
	loc := time.FixedZone("UTC-10", -10*60*60)
	f.settings.Location = loc
	svc := NewCheckInService(f.checkIns, f.settings)

	// 09:30 UTC is still the previous evening ten hours west.
	entry, err := svc.Submit(context.Background(), app.CheckInRequest{UserID: "u1", Mood: 50, Energy: 50, Stress: 50})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-14", entry.EntryDate)
}

func TestCheckInSubmit_ResubmitOverwrites(t *testing.T) {
	f := newFixture(t)
	svc := NewCheckInService(f.checkIns, f.settings)
	ctx := context.Background()

	first, err := svc.Submit(ctx, app.CheckInRequest{UserID: "u1", Date: "2026-10-10", Mood: 20, Energy: 20, Stress: 90})
	require.NoError(t, err)

	later := testNow.Add(2 * time.Hour)
	second, err := svc.Submit(ctx, app.CheckInRequest{UserID: "u1", Date: "2026-10-10", Mood: 80, Energy: 75, Stress: 10, Notes: "better", Now: &later})
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, second.CreatedAt, "created_at survives an overwrite")

	history, err := svc.History(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 80, history[0].Mood)
	assert.Equal(t, "better", history[0].Notes)
}

func TestCheckInSubmit_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewCheckInService(f.checkIns, f.settings)

	cases := []struct {
		name  string
		req   app.CheckInRequest
		field string
	}{
		{"missing user", app.CheckInRequest{Mood: 50, Energy: 50, Stress: 50}, "user_id"},
		{"mood high", app.CheckInRequest{UserID: "u1", Mood: 101, Energy: 50, Stress: 50}, "mood"},
		{"energy negative", app.CheckInRequest{UserID: "u1", Mood: 50, Energy: -1, Stress: 50}, "energy"},
		{"stress high", app.CheckInRequest{UserID: "u1", Mood: 50, Energy: 50, Stress: 150}, "stress"},
		{"bad date", app.CheckInRequest{UserID: "u1", Date: "15/10/2026", Mood: 50, Energy: 50, Stress: 50}, "date"},
		{"long notes", app.CheckInRequest{UserID: "u1", Mood: 50, Energy: 50, Stress: 50, Notes: strings.Repeat("x", 501)}, "notes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.req)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestCheckInSubmit_BoundaryValuesAccepted(t *testing.T) {
	f := newFixture(t)
	svc := NewCheckInService(f.checkIns, f.settings)

	// Notes are measured in characters, not bytes.
	notes := strings.Repeat("é", 500)
	_, err := svc.Submit(context.Background(), app.CheckInRequest{UserID: "u1", Mood: 0, Energy: 100, Stress: 0, Notes: notes})
	require.NoError(t, err)
}

func TestCheckInTrends(t *testing.T) {
	f := newFixture(t)
	svc := NewCheckInService(f.checkIns, f.settings)
	ctx := context.Background()

	f.seedCheckIn(t, "u1", 0, 80, 50, 20)
	f.seedCheckIn(t, "u1", 1, 80, 50, 20)
	f.seedCheckIn(t, "u1", 2, 40, 50, 60)
	f.seedCheckIn(t, "u1", 3, 40, 50, 60)
	// Outside the 14-day window.
	f.seedCheckIn(t, "u1", 20, 0, 0, 100)

	trends, err := svc.Trends(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, trends.EntryCount)
	assert.Equal(t, domain.TrendImproving, trends.MoodTrend)
	assert.Equal(t, domain.TrendStable, trends.EnergyTrend)
	assert.Equal(t, domain.TrendImproving, trends.StressTrend)
	assert.Equal(t, 60, trends.AvgMood)
	assert.Equal(t, 40, trends.AvgStress)
}

func TestCheckInTrends_Empty(t *testing.T) {
	f := newFixture(t)
	svc := NewCheckInService(f.checkIns, f.settings)

	trends, err := svc.Trends(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, trends.EntryCount)
	assert.False(t, trends.AnyDeclining())
}
