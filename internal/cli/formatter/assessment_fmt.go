package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const dimensionBarWidth = 20

var dimensionOrder = []domain.Dimension{
	domain.DimImposterSyndrome,
	domain.DimFounderDoubt,
	domain.DimIdentityFusion,
	domain.DimFearOfRejection,
	domain.DimRiskTolerance,
	domain.DimIsolationLevel,
}

// FormatAssessment renders the archetype card followed by the score table.
func FormatAssessment(res *app.AssessmentResult) string {
	var b strings.Builder
	b.WriteString(FormatArchetype(res.Archetype))
	b.WriteString("\n\n")
	b.WriteString(FormatScores(res.Assessment.Scores))
	return b.String()
}

// FormatArchetype renders the archetype result as a box. Urgent archetypes get
// a red border and a support notice.
func FormatArchetype(a domain.ArchetypeResult) string {
	var b strings.Builder
	b.WriteString(Bold(a.Name))
	if a.Description != "" {
		b.WriteString("\n" + a.Description)
	}
	if len(a.Traits) > 0 {
		b.WriteString("\n\n" + StyleHeader.Render("Traits"))
		for _, t := range a.Traits {
			b.WriteString("\n  • " + t)
		}
	}
	writeLabeled(&b, "Strength", a.Strength, StyleGreen)
	writeLabeled(&b, "Challenge", a.Challenge, StyleYellow)
	writeLabeled(&b, "Try this", a.Recommendation, StyleBlue)
	if a.Encouragement != nil {
		b.WriteString("\n\n" + StylePurple.Render(*a.Encouragement))
	}

	if a.IsUrgent {
		b.WriteString("\n\n" + StyleRed.Render("Your answers point to serious strain. Please consider talking to someone you trust or a professional this week."))
		return RenderAlertBox("Your founder archetype", b.String())
	}
	return RenderBox("Your founder archetype", b.String())
}

func writeLabeled(b *strings.Builder, label, text string, style lipgloss.Style) {
	if text == "" {
		return
	}
	fmt.Fprintf(b, "\n\n%s %s", style.Render(label+":"), text)
}

// FormatScores renders the six numeric dimensions plus motivation type.
func FormatScores(s domain.PsychScores) string {
	rows := make([][]string, 0, len(dimensionOrder)+1)
	for _, d := range dimensionOrder {
		rows = append(rows, []string{DimensionLabel(d), RenderDimensionBar(s.Value(d), dimensionBarWidth)})
	}
	rows = append(rows, []string{"Motivation", StyleBlue.Render(string(s.MotivationType))})
	return RenderTable([]string{"DIMENSION", "SCORE"}, rows)
}
