package scoring

import (
	"math"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

// trendStableBand is the minimum half-over-half change that counts as movement.
const trendStableBand = 5.0

type metricMeans struct {
	mood, energy, stress float64
}

// ComputeTrends summarizes a check-in history ordered most recent first.
// The newer floor(n/2) entries are compared against the rest.
func ComputeTrends(history []domain.CheckIn) domain.TrendSummary {
	summary := domain.TrendSummary{
		MoodTrend:   domain.TrendStable,
		EnergyTrend: domain.TrendStable,
		StressTrend: domain.TrendStable,
		EntryCount:  len(history),
	}
	if len(history) == 0 {
		return summary
	}

	overall := means(history)
	summary.AvgMood = roundHalfUp(overall.mood)
	summary.AvgEnergy = roundHalfUp(overall.energy)
	summary.AvgStress = roundHalfUp(overall.stress)

	if len(history) < 2 {
		return summary
	}

	half := len(history) / 2
	recent := means(history[:half])
	older := means(history[half:])

	summary.MoodTrend = direction(recent.mood, older.mood, true)
	summary.EnergyTrend = direction(recent.energy, older.energy, true)
	summary.StressTrend = direction(recent.stress, older.stress, false)
	return summary
}

func means(entries []domain.CheckIn) metricMeans {
	var m metricMeans
	for _, e := range entries {
		m.mood += float64(e.Mood)
		m.energy += float64(e.Energy)
		m.stress += float64(e.Stress)
	}
	n := float64(len(entries))
	m.mood /= n
	m.energy /= n
	m.stress /= n
	return m
}

// direction classifies the change from older to recent. higherIsBetter is
// false for stress.
func direction(recent, older float64, higherIsBetter bool) domain.TrendDirection {
	if math.Abs(recent-older) < trendStableBand {
		return domain.TrendStable
	}
	improved := recent > older
	if !higherIsBetter {
		improved = recent < older
	}
	if improved {
		return domain.TrendImproving
	}
	return domain.TrendDeclining
}
