package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = ColorOrange
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RiskColor returns the style for a burnout risk level.
func RiskColor(risk domain.RiskLevel) lipgloss.Style {
	switch risk {
	case domain.RiskCritical:
		return StyleRed
	case domain.RiskHigh:
		return StyleOrange
	case domain.RiskCaution:
		return StyleYellow
	case domain.RiskLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// RiskIndicator renders e.g. "● HIGH".
func RiskIndicator(risk domain.RiskLevel) string {
	if risk == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return RiskColor(risk).Render("● " + strings.ToUpper(string(risk)))
}

// TrendIndicator renders a direction with an arrow.
func TrendIndicator(dir domain.TrendDirection) string {
	switch dir {
	case domain.TrendImproving:
		return StyleGreen.Render("▲ improving")
	case domain.TrendDeclining:
		return StyleRed.Render("▼ declining")
	default:
		return StyleDim.Render("■ stable")
	}
}

var categoryStyles = map[domain.ActionCategory]lipgloss.Style{
	domain.CategoryMindset:    StylePurple,
	domain.CategoryConnection: StyleBlue,
	domain.CategoryRecovery:   StyleGreen,
	domain.CategoryReflection: StyleYellow,
	domain.CategoryMomentum:   StyleOrange,
}

// CategoryBadge renders a capitalized, colored action category.
func CategoryBadge(c domain.ActionCategory) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(string(c)[:1]) + string(c)[1:]
	style, ok := categoryStyles[c]
	if !ok {
		style = StyleDim
	}
	return style.Render(label)
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
