package insight

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/founderpulse/internal/app"
)

const systemPrompt = `You are a calm, practical coach for startup founders.
Given a burnout score and its context, write two or three sentences that name what
stands out and suggest one small step for today. Do not diagnose. Do not mention
that you are an AI.
Reply with JSON only: {"insight": "<text>"}`

func userPrompt(in app.BurnoutInsightInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Burnout score: %d/100 (%s risk)\n", in.Result.Score, in.Result.RiskLevel)
	if len(in.Result.Factors) > 0 {
		fmt.Fprintf(&b, "Contributing factors: %s\n", strings.Join(in.Result.Factors, "; "))
	}
	fmt.Fprintf(&b, "Trends over %d check-ins: mood %s, energy %s, stress %s\n",
		in.Trends.EntryCount, in.Trends.MoodTrend, in.Trends.EnergyTrend, in.Trends.StressTrend)
	if in.Archetype != nil {
		fmt.Fprintf(&b, "Founder archetype: %s\n", *in.Archetype)
	}
	return b.String()
}
