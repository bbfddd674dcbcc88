package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text string
	err  error
	got  llm.GenerateRequest
}

func (f *fakeGenerator) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text}, nil
}

func sampleInput() app.BurnoutInsightInput {
	arch := domain.ArchetypeIsolatedDreamer
	return app.BurnoutInsightInput{
		UserID: "u1",
		Result: domain.BurnoutResult{
			Score:     72,
			RiskLevel: domain.RiskHigh,
			Factors:   []string{"High stress levels", "High isolation levels"},
		},
		Trends: domain.TrendSummary{
			EntryCount:  6,
			MoodTrend:   domain.TrendDeclining,
			EnergyTrend: domain.TrendStable,
			StressTrend: domain.TrendDeclining,
		},
		Archetype: &arch,
	}
}

func TestProvider_UsesModelReply(t *testing.T) {
	gen := &fakeGenerator{text: "```json\n{\"insight\": \"  Take a proper lunch break today.  \"}\n```"}
	p := NewProvider(gen, nil)

	got := p.BurnoutInsight(context.Background(), sampleInput())
	assert.Equal(t, "Take a proper lunch break today.", got)

	assert.Equal(t, llm.TaskBurnoutInsight, gen.got.Task)
	assert.True(t, gen.got.JSON)
	assert.Contains(t, gen.got.UserPrompt, "Burnout score: 72/100 (high risk)")
	assert.Contains(t, gen.got.UserPrompt, "High stress levels; High isolation levels")
	assert.Contains(t, gen.got.UserPrompt, "isolated_dreamer")
}

func TestProvider_FallsBack(t *testing.T) {
	in := sampleInput()
	want := Fallback(in)

	cases := map[string]llm.Generator{
		"no generator": nil,
		"timeout":      &fakeGenerator{err: llm.ErrTimeout},
		"unavailable":  &fakeGenerator{err: errors.New("connection refused")},
		"not json":     &fakeGenerator{text: "You should rest."},
		"empty":        &fakeGenerator{text: `{"insight": "   "}`},
		"too long":     &fakeGenerator{text: `{"insight": "` + strings.Repeat("a", 601) + `"}`},
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			p := NewProvider(gen, nil)
			assert.Equal(t, want, p.BurnoutInsight(context.Background(), in))
		})
	}
}

func TestFallback(t *testing.T) {
	got := Fallback(sampleInput())
	assert.Equal(t,
		"Your burnout score is 72, which is high. Cut one commitment today and talk to someone you trust."+
			" The biggest contributor today: high stress levels."+
			" Recent check-ins show mood and stress heading the wrong way.",
		got)

	calm := Fallback(app.BurnoutInsightInput{Result: domain.BurnoutResult{Score: 20, RiskLevel: domain.RiskLow}})
	assert.Equal(t, "Your burnout score is 20, which is in the low range. Keep protecting what is working.", calm)
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "mood", joinList([]string{"mood"}))
	assert.Equal(t, "mood, energy and stress", joinList([]string{"mood", "energy", "stress"}))
}

func TestPrompt_OmitsMissingArchetype(t *testing.T) {
	in := sampleInput()
	in.Archetype = nil
	require.NotContains(t, userPrompt(in), "archetype")
}
