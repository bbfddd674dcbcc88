package domain

import "time"

// BurnoutResult is the output of a single burnout calculation.
type BurnoutResult struct {
	Score     int
	RiskLevel RiskLevel
	Factors   []string
}

// BurnoutScore is a persisted burnout calculation event.
type BurnoutScore struct {
	ID        string
	UserID    string
	ScoreDate string
	BurnoutResult
	Insight   string
	CreatedAt time.Time
}
