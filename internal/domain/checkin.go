package domain

import "time"

// DateLayout is the ISO calendar date format used for entry and assignment dates.
const DateLayout = "2006-01-02"

// CheckIn is one user's daily mood/energy/stress entry. There is at most one
// per user per calendar date; resubmitting overwrites.
type CheckIn struct {
	UserID    string
	EntryDate string
	Mood      int
	Energy    int
	Stress    int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrendSummary is the derived direction of each metric over a history window.
type TrendSummary struct {
	AvgMood     int
	AvgEnergy   int
	AvgStress   int
	MoodTrend   TrendDirection
	EnergyTrend TrendDirection
	StressTrend TrendDirection
	EntryCount  int
}

// AnyDeclining reports whether any metric is worsening.
func (t TrendSummary) AnyDeclining() bool {
	return t.MoodTrend == TrendDeclining ||
		t.EnergyTrend == TrendDeclining ||
		t.StressTrend == TrendDeclining
}
