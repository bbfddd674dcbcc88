package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
)

const burnoutBarWidth = 30

// FormatBurnoutReport renders a fresh burnout calculation.
func FormatBurnoutReport(r *app.BurnoutReport) string {
	s := r.Score
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", RenderScoreBar(s.Score, s.RiskLevel, burnoutBarWidth), RiskIndicator(s.RiskLevel))

	if len(s.Factors) > 0 {
		b.WriteString("\n" + StyleHeader.Render("Contributing factors"))
		for _, f := range s.Factors {
			b.WriteString("\n  • " + f)
		}
		b.WriteString("\n")
	}
	if r.Trends.AnyDeclining() {
		b.WriteString("\n" + StyleYellow.Render("Recent check-ins are trending down, which added to today's score.") + "\n")
	}
	if !r.HasAssessment {
		b.WriteString("\n" + Dim("Take the assessment (`founderpulse assess`) for a fuller picture.") + "\n")
	}
	if s.Insight != "" {
		b.WriteString("\n" + StylePurple.Render(s.Insight) + "\n")
	}

	content := strings.TrimRight(b.String(), "\n")
	if s.RiskLevel == domain.RiskCritical {
		return RenderAlertBox("Burnout "+s.ScoreDate, content) + "\n"
	}
	return RenderBox("Burnout "+s.ScoreDate, content) + "\n"
}

// FormatBurnoutHistory lists past calculations newest first.
func FormatBurnoutHistory(scores []*domain.BurnoutScore, today string) string {
	if len(scores) == 0 {
		return Dim("No burnout scores yet. Run `founderpulse burnout` after a check-in.") + "\n"
	}
	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, []string{
			DayLabel(s.ScoreDate, today),
			RenderScoreBar(s.Score, s.RiskLevel, 10),
			RiskIndicator(s.RiskLevel),
			Dim(fmt.Sprintf("%d factors", len(s.Factors))),
		})
	}
	return RenderTable([]string{"DATE", "SCORE", "RISK", ""}, rows)
}
