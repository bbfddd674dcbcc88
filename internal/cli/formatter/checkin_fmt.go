package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

// FormatCheckIn confirms a recorded entry.
func FormatCheckIn(c *domain.CheckIn) string {
	return fmt.Sprintf("%s Check-in saved for %s  mood %d · energy %d · stress %d\n",
		StyleGreen.Render("✔"), c.EntryDate, c.Mood, c.Energy, c.Stress)
}

// FormatCheckInHistory renders entries newest first.
func FormatCheckInHistory(entries []*domain.CheckIn, today string) string {
	if len(entries) == 0 {
		return Dim("No check-ins yet. Record one with `founderpulse checkin`.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		notes := e.Notes
		if len([]rune(notes)) > 40 {
			notes = string([]rune(notes)[:39]) + "…"
		}
		rows = append(rows, []string{
			DayLabel(e.EntryDate, today),
			fmt.Sprint(e.Mood),
			fmt.Sprint(e.Energy),
			fmt.Sprint(e.Stress),
			Dim(notes),
		})
	}
	return RenderTable([]string{"DATE", "MOOD", "ENERGY", "STRESS", "NOTES"}, rows)
}

// FormatTrends renders averages and the direction of each metric.
func FormatTrends(t *domain.TrendSummary) string {
	if t.EntryCount == 0 {
		return Dim("Not enough check-ins to show trends yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Trends (%d check-ins)", t.EntryCount)))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"METRIC", "AVERAGE", "DIRECTION"}, [][]string{
		{"Mood", fmt.Sprint(t.AvgMood), TrendIndicator(t.MoodTrend)},
		{"Energy", fmt.Sprint(t.AvgEnergy), TrendIndicator(t.EnergyTrend)},
		{"Stress", fmt.Sprint(t.AvgStress), TrendIndicator(t.StressTrend)},
	}))
	if t.EntryCount < 2 {
		b.WriteString(Dim("Directions need at least two check-ins.") + "\n")
	}
	return b.String()
}
