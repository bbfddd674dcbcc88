package domain

import "time"

// FormatDate renders the calendar date of t in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewValidationError("date", "%q is not a YYYY-MM-DD date", s)
	}
	return t, nil
}

// AddDays shifts an ISO calendar date by n days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}
