package service

import (
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

// Settings carries the engine tunables shared by the services.
type Settings struct {
	// Location decides which calendar day "today" is.
	Location        *time.Location
	TrendWindowDays int
	StatsWindowDays int
	NotesMaxLen     int
	InsightTimeout  time.Duration
	// Clock is overridable in tests.
	Clock func() time.Time
}

// DefaultSettings returns UTC days, a 14-day trend window, a 7-day stats
// window and 500-character notes.
func DefaultSettings() Settings {
	return Settings{
		Location:        time.UTC,
		TrendWindowDays: 14,
		StatsWindowDays: 7,
		NotesMaxLen:     500,
		InsightTimeout:  3 * time.Second,
		Clock:           time.Now,
	}
}

func (s Settings) withDefaults() Settings {
	def := DefaultSettings()
	if s.Location == nil {
		s.Location = def.Location
	}
	if s.TrendWindowDays <= 0 {
		s.TrendWindowDays = def.TrendWindowDays
	}
	if s.StatsWindowDays <= 0 {
		s.StatsWindowDays = def.StatsWindowDays
	}
	if s.NotesMaxLen <= 0 {
		s.NotesMaxLen = def.NotesMaxLen
	}
	if s.InsightTimeout <= 0 {
		s.InsightTimeout = def.InsightTimeout
	}
	if s.Clock == nil {
		s.Clock = def.Clock
	}
	return s
}

// now resolves an optional request time into the configured location.
func (s Settings) now(t *time.Time) time.Time {
	if t != nil {
		return t.In(s.Location)
	}
	return s.Clock().In(s.Location)
}

func (s Settings) today(t *time.Time) string {
	return domain.FormatDate(s.now(t))
}

func requireUser(userID string) error {
	if userID == "" {
		return domain.NewValidationError("user_id", "is required")
	}
	return nil
}

func validateMetric(field string, v int) error {
	if v < 0 || v > 100 {
		return domain.NewValidationError(field, "%d is outside 0-100", v)
	}
	return nil
}

func validateNotes(notes string, maxLen int) error {
	if n := utf8.RuneCountInString(notes); n > maxLen {
		return domain.NewValidationError("notes", "%d characters exceeds the %d limit", n, maxLen)
	}
	return nil
}
