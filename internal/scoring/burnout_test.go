package scoring

import (
	"testing"

	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBurnout_Baseline(t *testing.T) {
	result := ComputeBurnout(entry(50, 50, 50), nil, nil)
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, domain.RiskCaution, result.RiskLevel)
	assert.NotNil(t, result.Factors)
	assert.Empty(t, result.Factors)
}

func TestComputeBurnout_WorstCheckIn(t *testing.T) {
	result := ComputeBurnout(entry(0, 0, 100), nil, nil)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.RiskCritical, result.RiskLevel)
	assert.Equal(t, []string{FactorLowMood, FactorLowEnergy, FactorHighStress}, result.Factors)
}

func TestComputeBurnout_BestCheckIn(t *testing.T) {
	result := ComputeBurnout(entry(100, 100, 0), nil, nil)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, domain.RiskLow, result.RiskLevel)
}

func TestComputeBurnout_RoundsHalfUp(t *testing.T) {
	// 0.3*45 + 0.3*50 + 0.4*50 = 48.5
	assert.Equal(t, 49, ComputeBurnout(entry(55, 50, 50), nil, nil).Score)
	// 0.3*49 + 0.3*50 + 0.4*50 = 49.7
	assert.Equal(t, 50, ComputeBurnout(entry(51, 50, 50), nil, nil).Score)
}

func TestComputeBurnout_AssessmentModifier(t *testing.T) {
	scores := domain.PsychScores{ImposterSyndrome: 80, FounderDoubt: 70, RiskTolerance: 100}
	result := ComputeBurnout(entry(50, 50, 50), &scores, nil)
	assert.Equal(t, 60, result.Score)
	assert.Equal(t, domain.RiskCaution, result.RiskLevel)
	assert.Equal(t, []string{"High imposter syndrome"}, result.Factors)
}

func TestComputeBurnout_DecliningTrendModifier(t *testing.T) {
	trends := domain.TrendSummary{
		MoodTrend:   domain.TrendDeclining,
		EnergyTrend: domain.TrendStable,
		StressTrend: domain.TrendStable,
	}
	result := ComputeBurnout(entry(50, 50, 50), nil, &trends)
	assert.Equal(t, 55, result.Score)
	assert.Empty(t, result.Factors)

	trends.MoodTrend = domain.TrendImproving
	assert.Equal(t, 50, ComputeBurnout(entry(50, 50, 50), nil, &trends).Score)
}

func TestComputeBurnout_Clamped(t *testing.T) {
	scores := domain.PsychScores{
		ImposterSyndrome: 100,
		FounderDoubt:     100,
		IdentityFusion:   100,
		FearOfRejection:  100,
		IsolationLevel:   100,
	}
	trends := domain.TrendSummary{StressTrend: domain.TrendDeclining}
	result := ComputeBurnout(entry(0, 0, 100), &scores, &trends)
	assert.Equal(t, 100, result.Score)
	require.Len(t, result.Factors, 8)
	assert.Equal(t, "High isolation levels", result.Factors[7])
}

func TestComputeBurnout_FactorThresholdsAreStrict(t *testing.T) {
	result := ComputeBurnout(entry(40, 40, 70), nil, nil)
	assert.Empty(t, result.Factors)

	result = ComputeBurnout(entry(39, 40, 71), nil, nil)
	assert.Equal(t, []string{FactorLowMood, FactorHighStress}, result.Factors)
}

func TestRiskLevelFor_Boundaries(t *testing.T) {
	cases := map[int]domain.RiskLevel{
		0:   domain.RiskLow,
		40:  domain.RiskLow,
		41:  domain.RiskCaution,
		60:  domain.RiskCaution,
		61:  domain.RiskHigh,
		80:  domain.RiskHigh,
		81:  domain.RiskCritical,
		100: domain.RiskCritical,
	}
	for score, want := range cases {
		assert.Equal(t, want, RiskLevelFor(score), "score=%d", score)
	}
}

func TestDimensionsFromFactors(t *testing.T) {
	factors := []string{
		FactorLowMood,
		"High isolation levels",
		"High imposter syndrome",
		"unrelated text",
	}
	assert.Equal(t,
		[]domain.Dimension{domain.DimImposterSyndrome, domain.DimIsolationLevel},
		DimensionsFromFactors(factors))
	assert.Empty(t, DimensionsFromFactors(nil))
}
