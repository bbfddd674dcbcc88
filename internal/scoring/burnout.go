package scoring

import "github.com/alexanderramin/founderpulse/internal/domain"

const (
	// Weights are expressed in tenths so the base score is exact integer arithmetic.
	moodWeightTenths   = 3
	energyWeightTenths = 3
	stressWeightTenths = 4

	assessmentDimensionThreshold = 70
	assessmentModifierPerDim     = 10
	decliningTrendModifier       = 5

	lowMetricThreshold  = 40
	highStressThreshold = 70
)

// Contributing factor wording.
const (
	FactorLowMood    = "Low mood levels"
	FactorLowEnergy  = "Low energy levels"
	FactorHighStress = "High stress levels"
)

// DimensionFactors holds the fixed factor text for each negative dimension.
var DimensionFactors = map[domain.Dimension]string{
	domain.DimImposterSyndrome: "High imposter syndrome",
	domain.DimFounderDoubt:     "Significant founder doubt",
	domain.DimIdentityFusion:   "Strong identity fusion with your startup",
	domain.DimFearOfRejection:  "High fear of rejection",
	domain.DimIsolationLevel:   "High isolation levels",
}

// ComputeBurnout scores one check-in, optionally adjusted by assessment
// scores and a trend summary.
func ComputeBurnout(entry domain.CheckIn, assessment *domain.PsychScores, trends *domain.TrendSummary) domain.BurnoutResult {
	tenths := (100-entry.Mood)*moodWeightTenths +
		(100-entry.Energy)*energyWeightTenths +
		entry.Stress*stressWeightTenths

	var elevated []domain.Dimension
	if assessment != nil {
		elevated = assessment.ElevatedDimensions(assessmentDimensionThreshold)
		tenths += len(elevated) * assessmentModifierPerDim * 10
	}
	if trends != nil && trends.AnyDeclining() {
		tenths += decliningTrendModifier * 10
	}

	tenths = clampInt(tenths, 0, 1000)
	score := (tenths + 5) / 10

	return domain.BurnoutResult{
		Score:     score,
		RiskLevel: RiskLevelFor(score),
		Factors:   contributingFactors(entry, elevated),
	}
}

// RiskLevelFor maps a 0-100 score onto its risk level.
func RiskLevelFor(score int) domain.RiskLevel {
	switch {
	case score <= 40:
		return domain.RiskLow
	case score <= 60:
		return domain.RiskCaution
	case score <= 80:
		return domain.RiskHigh
	default:
		return domain.RiskCritical
	}
}

func contributingFactors(entry domain.CheckIn, elevated []domain.Dimension) []string {
	factors := []string{}
	if entry.Mood < lowMetricThreshold {
		factors = append(factors, FactorLowMood)
	}
	if entry.Energy < lowMetricThreshold {
		factors = append(factors, FactorLowEnergy)
	}
	if entry.Stress > highStressThreshold {
		factors = append(factors, FactorHighStress)
	}
	for _, d := range elevated {
		factors = append(factors, DimensionFactors[d])
	}
	return factors
}

// DimensionsFromFactors recovers the negative dimensions named by a factor
// list, in domain.NegativeDimensions order.
func DimensionsFromFactors(factors []string) []domain.Dimension {
	present := make(map[string]bool, len(factors))
	for _, f := range factors {
		present[f] = true
	}
	var dims []domain.Dimension
	for _, d := range domain.NegativeDimensions {
		if present[DimensionFactors[d]] {
			dims = append(dims, d)
		}
	}
	return dims
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
