package formatter

import (
	"strings"

	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	return renderBox(title, content, ColorDim)
}

// RenderAlertBox is RenderBox with a red border.
func RenderAlertBox(title string, content string) string {
	return renderBox(title, content, ColorRed)
}

func renderBox(title, content string, border lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)
	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return style.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// DayLabel names an ISO date relative to today: "Today", "Yesterday", or
// "Mon Oct 12".
func DayLabel(date, today string) string {
	if date == today {
		return "Today"
	}
	if y, err := domain.AddDays(today, -1); err == nil && date == y {
		return "Yesterday"
	}
	t, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Mon Jan 2")
}

// DimensionLabel turns "fear_of_rejection" into "Fear of rejection".
func DimensionLabel(d domain.Dimension) string {
	s := strings.ReplaceAll(string(d), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
