// Package recommend picks the daily action batch for a founder. Selection is
// pure and deterministic for a given (user, date) pair.
package recommend

import (
	"slices"

	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/scoring"
)

// Quotas by risk level.
const (
	DefaultQuota = 3
	CautionQuota = 4
	HighQuota    = 5
)

// atRiskThreshold is the strict lower bound for an assessment dimension to pull
// in its templates.
const atRiskThreshold = 70

// TemplateSource supplies the static action templates.
type TemplateSource interface {
	ArchetypeTemplates(a domain.Archetype) []domain.ActionTemplate
	DimensionTemplates(d domain.Dimension) []domain.ActionTemplate
	GeneralTemplates() []domain.ActionTemplate
}

// Input describes one daily selection.
type Input struct {
	UserID     string
	Date       string // YYYY-MM-DD
	Archetype  domain.Archetype
	Burnout    *domain.BurnoutResult
	Assessment *domain.PsychScores
}

// SelectDailyActions returns the templates chosen for in.UserID on in.Date.
func SelectDailyActions(in Input, src TemplateSource) []domain.ActionTemplate {
	pool := CandidatePool(in, src)
	shuffle(pool, newLCG(SeedFor(in.UserID, in.Date)))
	return pickDiverse(pool, DesiredCount(in.Burnout))
}

// CandidatePool assembles archetype templates, then templates for each at-risk
// dimension, then the general set. Duplicates are kept.
func CandidatePool(in Input, src TemplateSource) []domain.ActionTemplate {
	pool := src.ArchetypeTemplates(in.Archetype)
	for _, d := range AtRiskDimensions(in.Assessment, in.Burnout) {
		pool = append(pool, src.DimensionTemplates(d)...)
	}
	return append(pool, src.GeneralTemplates()...)
}

// AtRiskDimensions unions the assessment dimensions above 70 with those named
// by the burnout factors, in domain.NegativeDimensions order.
func AtRiskDimensions(assessment *domain.PsychScores, burnout *domain.BurnoutResult) []domain.Dimension {
	flagged := map[domain.Dimension]bool{}
	if assessment != nil {
		for _, d := range assessment.ElevatedDimensions(atRiskThreshold) {
			flagged[d] = true
		}
	}
	if burnout != nil {
		for _, d := range scoring.DimensionsFromFactors(burnout.Factors) {
			flagged[d] = true
		}
	}
	var dims []domain.Dimension
	for _, d := range domain.NegativeDimensions {
		if flagged[d] {
			dims = append(dims, d)
		}
	}
	return dims
}

// DesiredCount maps a burnout result onto the day's quota.
func DesiredCount(burnout *domain.BurnoutResult) int {
	if burnout == nil {
		return DefaultQuota
	}
	switch burnout.RiskLevel {
	case domain.RiskCaution:
		return CautionQuota
	case domain.RiskHigh, domain.RiskCritical:
		return HighQuota
	default:
		return DefaultQuota
	}
}

// pickDiverse takes one template per category first, then fills the quota from
// whatever is left in pool order. A template text is never picked twice.
func pickDiverse(pool []domain.ActionTemplate, quota int) []domain.ActionTemplate {
	var picked []domain.ActionTemplate
	texts := make(map[string]bool)
	categories := make(map[domain.ActionCategory]bool)

	// First pass: one per category
	for _, t := range pool {
		if len(picked) >= quota {
			break
		}
		if categories[t.Category] || texts[t.Text] {
			continue
		}
		picked = append(picked, t)
		texts[t.Text] = true
		categories[t.Category] = true
	}

	// Second pass: fill regardless of category
	for _, t := range pool {
		if len(picked) >= quota {
			break
		}
		if texts[t.Text] {
			continue
		}
		picked = append(picked, t)
		texts[t.Text] = true
	}

	return slices.Clip(picked)
}
