package domain

import "time"

// ActionTemplate is a static candidate recommendation.
type ActionTemplate struct {
	Text      string
	Category  ActionCategory
	Dimension *Dimension
}

// ActionItem is one recommended action assigned to a user for a date.
type ActionItem struct {
	ID              string
	UserID          string
	AssignedDate    string
	Text            string
	Category        ActionCategory
	TargetDimension *Dimension
	Completed       bool
	CompletedAt     *time.Time
	CreatedAt       time.Time
}

// MarkCompleted flags the action done. A second call keeps the first
// completion time.
func (a *ActionItem) MarkCompleted(now time.Time) {
	if a.Completed && a.CompletedAt != nil {
		return
	}
	a.Completed = true
	a.CompletedAt = &now
}

// CompletionStats aggregates action completion over a rolling window.
type CompletionStats struct {
	TotalActions     int
	CompletedActions int
	CompletionRate   int
	Streak           int
	WindowDays       int
}
