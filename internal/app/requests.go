package app

import (
	"time"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

type AssessmentResult struct {
	Assessment *domain.Assessment
	Archetype  domain.ArchetypeResult
}

// CheckInRequest records one day's entry. An empty Date means today.
type CheckInRequest struct {
	UserID string
	Date   string
	Mood   int
	Energy int
	Stress int
	Notes  string
	Now    *time.Time
}

type BurnoutRequest struct {
	UserID string
	Now    *time.Time
}

type BurnoutReport struct {
	Score         *domain.BurnoutScore
	Trends        domain.TrendSummary
	HasAssessment bool
}

type BurnoutInsightInput struct {
	UserID    string
	Result    domain.BurnoutResult
	Trends    domain.TrendSummary
	Archetype *domain.Archetype
}

// GenerateActionsRequest asks for the day's batch. Force discards an existing
// batch for the day and selects again.
type GenerateActionsRequest struct {
	UserID string
	Now    *time.Time
	Force  bool
}

type GenerateActionsResult struct {
	Date      string
	Archetype domain.Archetype
	Quota     int
	Actions   []*domain.ActionItem
	// Generated is false when an existing batch was returned unchanged.
	Generated bool
	// Failed counts items whose insert failed and were skipped.
	Failed int
}

// StatsRequest asks for completion stats. WindowDays <= 0 uses the configured
// default.
type StatsRequest struct {
	UserID     string
	WindowDays int
	Now        *time.Time
}
