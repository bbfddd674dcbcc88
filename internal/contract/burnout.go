package contract

import (
	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
)

type BurnoutView struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Score     int      `json:"score"`
	RiskLevel string   `json:"risk_level"`
	Factors   []string `json:"factors"`
	Insight   string   `json:"insight,omitempty"`
	CreatedAt *string  `json:"created_at"`
}

type BurnoutReportResponse struct {
	BurnoutView
	Trends        TrendsView `json:"trends"`
	HasAssessment bool       `json:"has_assessment"`
}

func NewBurnoutView(s *domain.BurnoutScore) BurnoutView {
	factors := s.Factors
	if factors == nil {
		factors = []string{}
	}
	return BurnoutView{
		ID:        s.ID,
		Date:      s.ScoreDate,
		Score:     s.Score,
		RiskLevel: string(s.RiskLevel),
		Factors:   factors,
		Insight:   s.Insight,
		CreatedAt: timestamp(s.CreatedAt),
	}
}

func NewBurnoutReportResponse(r *app.BurnoutReport) BurnoutReportResponse {
	return BurnoutReportResponse{
		BurnoutView:   NewBurnoutView(r.Score),
		Trends:        NewTrendsView(r.Trends),
		HasAssessment: r.HasAssessment,
	}
}
