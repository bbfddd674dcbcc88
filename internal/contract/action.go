package contract

import (
	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
)

// GenerateActionsBody is the optional POST body for daily generation.
type GenerateActionsBody struct {
	Force bool `json:"force"`
}

type ActionView struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Text            string  `json:"text"`
	Category        string  `json:"category"`
	TargetDimension *string `json:"target_dimension,omitempty"`
	Completed       bool    `json:"completed"`
	CompletedAt     *string `json:"completed_at,omitempty"`
}

func NewActionView(a *domain.ActionItem) ActionView {
	v := ActionView{
		ID:        a.ID,
		Date:      a.AssignedDate,
		Text:      a.Text,
		Category:  string(a.Category),
		Completed: a.Completed,
	}
	if a.TargetDimension != nil {
		d := string(*a.TargetDimension)
		v.TargetDimension = &d
	}
	if a.CompletedAt != nil {
		v.CompletedAt = timestamp(*a.CompletedAt)
	}
	return v
}

func NewActionList(items []*domain.ActionItem) []ActionView {
	out := make([]ActionView, 0, len(items))
	for _, a := range items {
		out = append(out, NewActionView(a))
	}
	return out
}

type GenerateActionsResponse struct {
	Date      string       `json:"date"`
	Archetype string       `json:"archetype"`
	Quota     int          `json:"quota"`
	Generated bool         `json:"generated"`
	Failed    int          `json:"failed"`
	Actions   []ActionView `json:"actions"`
}

func NewGenerateActionsResponse(r *app.GenerateActionsResult) GenerateActionsResponse {
	return GenerateActionsResponse{
		Date:      r.Date,
		Archetype: string(r.Archetype),
		Quota:     r.Quota,
		Generated: r.Generated,
		Failed:    r.Failed,
		Actions:   NewActionList(r.Actions),
	}
}

type StatsView struct {
	TotalActions     int `json:"total_actions"`
	CompletedActions int `json:"completed_actions"`
	CompletionRate   int `json:"completion_rate"`
	Streak           int `json:"streak"`
	WindowDays       int `json:"window_days"`
}

func NewStatsView(s *domain.CompletionStats) StatsView {
	return StatsView{
		TotalActions:     s.TotalActions,
		CompletedActions: s.CompletedActions,
		CompletionRate:   s.CompletionRate,
		Streak:           s.Streak,
		WindowDays:       s.WindowDays,
	}
}
