// Package progress computes completion statistics and streaks over a user's
// assigned actions.
package progress

import (
	"time"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

// MaxStreakDays bounds how far back the streak walk looks.
const MaxStreakDays = 365

type dayTally struct {
	assigned  int
	completed int
}

// ComputeStats aggregates actions assigned within [today-windowDays, today]
// and the completion streak ending today. actions may span any range; entries
// outside the window only feed the streak.
func ComputeStats(actions []domain.ActionItem, today time.Time, windowDays int) domain.CompletionStats {
	if windowDays < 0 {
		windowDays = 0
	}
	todayStr := domain.FormatDate(today)
	windowStart := domain.FormatDate(today.AddDate(0, 0, -windowDays))

	stats := domain.CompletionStats{WindowDays: windowDays}
	byDay := make(map[string]*dayTally)
	for _, a := range actions {
		tally := byDay[a.AssignedDate]
		if tally == nil {
			tally = &dayTally{}
			byDay[a.AssignedDate] = tally
		}
		tally.assigned++
		if a.Completed {
			tally.completed++
		}

		// ISO dates order lexically.
		if a.AssignedDate < windowStart || a.AssignedDate > todayStr {
			continue
		}
		stats.TotalActions++
		if a.Completed {
			stats.CompletedActions++
		}
	}

	stats.CompletionRate = CompletionRate(stats.CompletedActions, stats.TotalActions)
	stats.Streak = streak(byDay, today)
	return stats
}

// CompletionRate is round(100*completed/total), or 0 when total is 0.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*completed + total) / (2 * total)
}

// streak counts consecutive days with at least one completed action, walking
// back from today. Today may be empty without breaking the streak; any other
// empty day, or a day whose actions are all open, ends it.
func streak(byDay map[string]*dayTally, today time.Time) int {
	count := 0
	for i := 0; i < MaxStreakDays; i++ {
		tally := byDay[domain.FormatDate(today.AddDate(0, 0, -i))]
		if tally == nil || tally.assigned == 0 {
			if i == 0 {
				continue
			}
			break
		}
		if tally.completed == 0 {
			break
		}
		count++
	}
	return count
}
