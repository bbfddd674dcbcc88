// Package insight writes the short narrative attached to a burnout score.
// Text comes from the language model when one is configured and answers in
// time; otherwise a deterministic summary is used.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/llm"
	"go.uber.org/zap"
)

// maxInsightRunes bounds model output stored with a score.
const maxInsightRunes = 600

// Provider implements app.InsightProvider.
type Provider struct {
	gen    llm.Generator
	logger *zap.Logger
}

// NewProvider returns a Provider. A nil gen always uses the fallback text.
func NewProvider(gen llm.Generator, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{gen: gen, logger: logger.Named("insight")}
}

var _ app.InsightProvider = (*Provider)(nil)

type reply struct {
	Insight string `json:"insight"`
}

func validReply(r reply) error {
	text := strings.TrimSpace(r.Insight)
	if text == "" {
		return errors.New("insight is empty")
	}
	if utf8.RuneCountInString(text) > maxInsightRunes {
		return fmt.Errorf("insight exceeds %d characters", maxInsightRunes)
	}
	return nil
}

func (p *Provider) BurnoutInsight(ctx context.Context, in app.BurnoutInsightInput) string {
	if p.gen == nil {
		return Fallback(in)
	}
	resp, err := p.gen.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskBurnoutInsight,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt(in),
		JSON:         true,
	})
	if err != nil {
		p.logger.Debug("using fallback insight", zap.String("user_id", in.UserID), zap.Error(err))
		return Fallback(in)
	}
	r, err := llm.ExtractJSON(resp.Text, validReply)
	if err != nil {
		p.logger.Debug("discarding model insight", zap.String("user_id", in.UserID), zap.Error(err))
		return Fallback(in)
	}
	return strings.TrimSpace(r.Insight)
}

// Fallback summarizes a result without a model.
func Fallback(in app.BurnoutInsightInput) string {
	var b strings.Builder
	b.WriteString(riskSentence(in.Result))
	if len(in.Result.Factors) > 0 {
		fmt.Fprintf(&b, " The biggest contributor today: %s.", strings.ToLower(in.Result.Factors[0]))
	}
	if s := trendSentence(in.Trends); s != "" {
		b.WriteString(" ")
		b.WriteString(s)
	}
	return b.String()
}

func riskSentence(r domain.BurnoutResult) string {
	switch r.RiskLevel {
	case domain.RiskLow:
		return fmt.Sprintf("Your burnout score is %d, which is in the low range. Keep protecting what is working.", r.Score)
	case domain.RiskCaution:
		return fmt.Sprintf("Your burnout score is %d. You are in the caution range, so guard your recovery time this week.", r.Score)
	case domain.RiskHigh:
		return fmt.Sprintf("Your burnout score is %d, which is high. Cut one commitment today and talk to someone you trust.", r.Score)
	default:
		return fmt.Sprintf("Your burnout score is %d, which is critical. Please step back today and reach out for support.", r.Score)
	}
}

func trendSentence(t domain.TrendSummary) string {
	var worse []string
	if t.MoodTrend == domain.TrendDeclining {
		worse = append(worse, "mood")
	}
	if t.EnergyTrend == domain.TrendDeclining {
		worse = append(worse, "energy")
	}
	if t.StressTrend == domain.TrendDeclining {
		worse = append(worse, "stress")
	}
	if len(worse) == 0 {
		return ""
	}
	return fmt.Sprintf("Recent check-ins show %s heading the wrong way.", joinList(worse))
}

func joinList(items []string) string {
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
