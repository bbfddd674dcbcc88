package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func bar(pct float64, width int) (string, string) {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)
	filled := min(int(pct*float64(width)+0.5), width)
	return strings.Repeat(filledBlock, filled), strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a bar like [████░░░░]  45% where more is better:
// green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	full, empty := bar(pct, width)
	return fmt.Sprintf("[%s%s] %3.0f%%", style.Render(full), StyleDim.Render(empty), min(max(pct, 0), 1)*100)
}

// RenderScoreBar renders a 0-100 score where more is worse, colored by the
// burnout risk band the score falls in.
func RenderScoreBar(score int, risk domain.RiskLevel, width int) string {
	return renderScore(score, RiskColor(risk), width)
}

// RenderDimensionBar renders a 0-100 psychological dimension score. Scores
// above 70 are flagged red.
func RenderDimensionBar(score int, width int) string {
	style := StyleBlue
	if score > 70 {
		style = StyleRed
	}
	return renderScore(score, style, width)
}

func renderScore(score int, style lipgloss.Style, width int) string {
	full, empty := bar(float64(score)/100, width)
	return fmt.Sprintf("%s%s %3d", style.Render(full), StyleDim.Render(empty), score)
}
