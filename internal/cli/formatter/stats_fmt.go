package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

const statsBarWidth = 20

// FormatStats renders completion rate and streak.
func FormatStats(s *domain.CompletionStats) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Last %d days", s.WindowDays)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Completed  %d of %d actions\n", s.CompletedActions, s.TotalActions)
	fmt.Fprintf(&b, "Rate       %s\n", RenderProgress(float64(s.CompletionRate)/100, statsBarWidth))

	streak := Dim("no active streak")
	if s.Streak > 0 {
		unit := "days"
		if s.Streak == 1 {
			unit = "day"
		}
		streak = StyleOrange.Render(fmt.Sprintf("🔥 %d %s", s.Streak, unit))
	}
	fmt.Fprintf(&b, "Streak     %s\n", streak)
	return b.String()
}
