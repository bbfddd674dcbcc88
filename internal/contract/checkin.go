package contract

import (
	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
)

// CheckInBody is the PUT body for a day's entry. All three metrics are
// required.
type CheckInBody struct {
	Mood   *int   `json:"mood"`
	Energy *int   `json:"energy"`
	Stress *int   `json:"stress"`
	Notes  string `json:"notes"`
}

// Request builds the use-case request, reporting the first missing metric.
func (b CheckInBody) Request(userID, date string) (app.CheckInRequest, error) {
	for _, m := range []struct {
		name string
		v    *int
	}{{"mood", b.Mood}, {"energy", b.Energy}, {"stress", b.Stress}} {
		if m.v == nil {
			return app.CheckInRequest{}, domain.NewValidationError(m.name, "is required")
		}
	}
	return app.CheckInRequest{
		UserID: userID,
		Date:   date,
		Mood:   *b.Mood,
		Energy: *b.Energy,
		Stress: *b.Stress,
		Notes:  b.Notes,
	}, nil
}

type CheckInView struct {
	UserID    string  `json:"user_id"`
	Date      string  `json:"date"`
	Mood      int     `json:"mood"`
	Energy    int     `json:"energy"`
	Stress    int     `json:"stress"`
	Notes     string  `json:"notes"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

func NewCheckInView(c *domain.CheckIn) CheckInView {
	return CheckInView{
		UserID:    c.UserID,
		Date:      c.EntryDate,
		Mood:      c.Mood,
		Energy:    c.Energy,
		Stress:    c.Stress,
		Notes:     c.Notes,
		CreatedAt: timestamp(c.CreatedAt),
		UpdatedAt: timestamp(c.UpdatedAt),
	}
}

func NewCheckInList(entries []*domain.CheckIn) []CheckInView {
	out := make([]CheckInView, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewCheckInView(e))
	}
	return out
}

type TrendsView struct {
	AvgMood     int    `json:"avg_mood"`
	AvgEnergy   int    `json:"avg_energy"`
	AvgStress   int    `json:"avg_stress"`
	MoodTrend   string `json:"mood_trend"`
	EnergyTrend string `json:"energy_trend"`
	StressTrend string `json:"stress_trend"`
	EntryCount  int    `json:"entry_count"`
}

func NewTrendsView(t domain.TrendSummary) TrendsView {
	return TrendsView{
		AvgMood:     t.AvgMood,
		AvgEnergy:   t.AvgEnergy,
		AvgStress:   t.AvgStress,
		MoodTrend:   string(t.MoodTrend),
		EnergyTrend: string(t.EnergyTrend),
		StressTrend: string(t.StressTrend),
		EntryCount:  t.EntryCount,
	}
}
