package repository

import (
	"database/sql"
	"time"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// parseNullableTime parses a sql.NullString into a *time.Time.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableDimension converts a *domain.Dimension to a value suitable for SQLite storage.
func nullableDimension(d *domain.Dimension) any {
	if d == nil {
		return nil
	}
	return string(*d)
}

func parseNullableDimension(s sql.NullString) *domain.Dimension {
	if !s.Valid || s.String == "" {
		return nil
	}
	d := domain.Dimension(s.String)
	return &d
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
