package recommend

import (
	"testing"

	"github.com/alexanderramin/founderpulse/internal/catalog"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/scoring"
	"github.com/alexanderramin/founderpulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	archetype []domain.ActionTemplate
	dimension map[domain.Dimension][]domain.ActionTemplate
	general   []domain.ActionTemplate
}

func (f fakeSource) ArchetypeTemplates(domain.Archetype) []domain.ActionTemplate {
	return append([]domain.ActionTemplate(nil), f.archetype...)
}

func (f fakeSource) DimensionTemplates(d domain.Dimension) []domain.ActionTemplate {
	return append([]domain.ActionTemplate(nil), f.dimension[d]...)
}

func (f fakeSource) GeneralTemplates() []domain.ActionTemplate {
	return append([]domain.ActionTemplate(nil), f.general...)
}

func tmpl(text string, c domain.ActionCategory) domain.ActionTemplate {
	return domain.ActionTemplate{Text: text, Category: c}
}

func texts(list []domain.ActionTemplate) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.Text
	}
	return out
}

func TestDesiredCount(t *testing.T) {
	assert.Equal(t, 3, DesiredCount(nil))
	assert.Equal(t, 3, DesiredCount(&domain.BurnoutResult{RiskLevel: domain.RiskLow}))
	assert.Equal(t, 4, DesiredCount(&domain.BurnoutResult{RiskLevel: domain.RiskCaution}))
	assert.Equal(t, 5, DesiredCount(&domain.BurnoutResult{RiskLevel: domain.RiskHigh}))
	assert.Equal(t, 5, DesiredCount(&domain.BurnoutResult{RiskLevel: domain.RiskCritical}))
}

func TestAtRiskDimensions_UnionInFixedOrder(t *testing.T) {
	assessment := &domain.PsychScores{IsolationLevel: 90, FounderDoubt: 70, RiskTolerance: 99}
	burnout := &domain.BurnoutResult{Factors: []string{
		scoring.FactorLowMood,
		scoring.DimensionFactors[domain.DimImposterSyndrome],
		scoring.DimensionFactors[domain.DimIsolationLevel],
	}}
	assert.Equal(t,
		[]domain.Dimension{domain.DimImposterSyndrome, domain.DimIsolationLevel},
		AtRiskDimensions(assessment, burnout))
	assert.Empty(t, AtRiskDimensions(nil, nil))
}

func TestCandidatePool_Order(t *testing.T) {
	src := fakeSource{
		archetype: []domain.ActionTemplate{tmpl("a1", domain.CategoryMindset)},
		dimension: map[domain.Dimension][]domain.ActionTemplate{
			domain.DimFounderDoubt:   {tmpl("d-doubt", domain.CategoryReflection)},
			domain.DimIdentityFusion: {tmpl("d-identity", domain.CategoryRecovery)},
		},
		general: []domain.ActionTemplate{tmpl("g1", domain.CategoryMomentum), tmpl("a1", domain.CategoryMindset)},
	}
	in := Input{Assessment: &domain.PsychScores{FounderDoubt: 71, IdentityFusion: 71}}
	assert.Equal(t, []string{"a1", "d-doubt", "d-identity", "g1", "a1"}, texts(CandidatePool(in, src)))
}

func TestSelectDailyActions_Deterministic(t *testing.T) {
	in := Input{
		UserID:    "user-1",
		Date:      "2024-03-01",
		Archetype: domain.ArchetypeIsolatedDreamer,
		Burnout:   &domain.BurnoutResult{RiskLevel: domain.RiskHigh},
	}
	first := SelectDailyActions(in, catalog.Default())
	second := SelectDailyActions(in, catalog.Default())
	require.Len(t, first, 5)
	assert.Equal(t, first, second)
}

func TestSelectDailyActions_DifferentDatesDiverge(t *testing.T) {
	base := Input{UserID: "user-1", Date: "2024-03-01", Archetype: domain.ArchetypeGrowthSeeker}
	baseline := texts(SelectDailyActions(base, catalog.Default()))

	differing := 0
	for day := 2; day <= 15; day++ {
		in := base
		in.Date = testutil.ShiftDate("2024-03-01", day-1)
		if !assert.ObjectsAreEqual(baseline, texts(SelectDailyActions(in, catalog.Default()))) {
			differing++
		}
	}
	assert.Greater(t, differing, 10)
}

func TestSelectDailyActions_DifferentUsersDiverge(t *testing.T) {
	in := Input{UserID: "alice", Date: "2024-03-01", Archetype: domain.ArchetypeGrowthSeeker}
	alice := texts(SelectDailyActions(in, catalog.Default()))
	differing := 0
	for _, user := range []string{"bob", "carol", "dana", "erin", "frank"} {
		in.UserID = user
		if !assert.ObjectsAreEqual(alice, texts(SelectDailyActions(in, catalog.Default()))) {
			differing++
		}
	}
	assert.Greater(t, differing, 2)
}

func TestSelectDailyActions_CategoriesDistinctWhenPossible(t *testing.T) {
	for _, a := range domain.AllArchetypes {
		in := Input{
			UserID:    "user-1",
			Date:      "2024-03-01",
			Archetype: a,
			Burnout:   &domain.BurnoutResult{RiskLevel: domain.RiskCritical},
		}
		picked := SelectDailyActions(in, catalog.Default())
		require.Len(t, picked, 5, "archetype %s", a)
		seen := map[domain.ActionCategory]bool{}
		for _, p := range picked {
			assert.False(t, seen[p.Category], "archetype %s repeats %s", a, p.Category)
			seen[p.Category] = true
		}
	}
}

func TestPickDiverse_FillsAfterCategoriesExhausted(t *testing.T) {
	pool := []domain.ActionTemplate{
		tmpl("m1", domain.CategoryMindset),
		tmpl("m2", domain.CategoryMindset),
		tmpl("r1", domain.CategoryRecovery),
		tmpl("m3", domain.CategoryMindset),
	}
	assert.Equal(t, []string{"m1", "r1", "m2", "m3"}, texts(pickDiverse(pool, 4)))
	assert.Equal(t, []string{"m1", "r1", "m2"}, texts(pickDiverse(pool, 3)))
	assert.Equal(t, []string{"m1", "r1"}, texts(pickDiverse(pool, 2)))
}

func TestPickDiverse_PoolSmallerThanQuota(t *testing.T) {
	pool := []domain.ActionTemplate{
		tmpl("x", domain.CategoryMindset),
		tmpl("x", domain.CategoryMindset),
	}
	assert.Equal(t, []string{"x"}, texts(pickDiverse(pool, 5)))
	assert.Empty(t, pickDiverse(nil, 3))
}
