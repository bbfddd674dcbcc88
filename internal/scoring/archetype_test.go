package scoring

import (
	"testing"

	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup map[domain.Archetype]domain.ArchetypeInfo

func (s stubLookup) ArchetypeInfo(a domain.Archetype) (domain.ArchetypeInfo, bool) {
	info, ok := s[a]
	return info, ok
}

func scoresOf(imposter, doubt, identity, rejection, risk, isolation int) domain.PsychScores {
	return domain.PsychScores{
		ImposterSyndrome: imposter,
		FounderDoubt:     doubt,
		IdentityFusion:   identity,
		FearOfRejection:  rejection,
		RiskTolerance:    risk,
		IsolationLevel:   isolation,
		MotivationType:   domain.MotivationMixed,
	}
}

func TestClassify_EachRule(t *testing.T) {
	cases := []struct {
		name   string
		scores domain.PsychScores
		want   domain.Archetype
	}{
		{"burning out", scoresOf(80, 80, 80, 10, 10, 10), domain.ArchetypeBurningOut},
		{"perfectionist", scoresOf(65, 65, 30, 30, 40, 50), domain.ArchetypePerfectionistBuilder},
		{"visionary", scoresOf(30, 30, 50, 50, 80, 50), domain.ArchetypeOpportunisticVisionary},
		{"isolated dreamer", scoresOf(50, 55, 30, 30, 50, 80), domain.ArchetypeIsolatedDreamer},
		{"hustler", scoresOf(30, 30, 50, 50, 65, 50), domain.ArchetypeSelfAssuredHustler},
		{"community", scoresOf(45, 70, 50, 50, 50, 30), domain.ArchetypeCommunityDriven},
		{"balanced", scoresOf(50, 50, 50, 50, 50, 50), domain.ArchetypeBalancedFounder},
		{"growth seeker", scoresOf(55, 55, 80, 80, 55, 55), domain.ArchetypeGrowthSeeker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.scores))
		})
	}
}

func TestClassify_BurningOutNeedsStrictlyAbove70(t *testing.T) {
	scores := domain.PsychScores{
		ImposterSyndrome: 70,
		FounderDoubt:     70,
		IdentityFusion:   70,
		FearOfRejection:  70,
		RiskTolerance:    50,
		IsolationLevel:   70,
		MotivationType:   domain.MotivationMixed,
	}
	assert.NotEqual(t, domain.ArchetypeBurningOut, Classify(scores))
}

func TestClassify_RiskToleranceDoesNotCountTowardBurnout(t *testing.T) {
	assert.NotEqual(t, domain.ArchetypeBurningOut, Classify(scoresOf(80, 80, 10, 10, 95, 10)))
}

func TestClassify_PriorityOrder(t *testing.T) {
	// Perfectionist and isolated dreamer both match.
	s := scoresOf(65, 65, 60, 30, 40, 80)
	assert.Equal(t, domain.ArchetypePerfectionistBuilder, Classify(s))

	// Hustler and community driven both match.
	s = scoresOf(30, 30, 50, 50, 65, 30)
	assert.Equal(t, domain.ArchetypeSelfAssuredHustler, Classify(s))

	// Visionary and hustler both match.
	s = scoresOf(20, 20, 50, 50, 90, 50)
	assert.Equal(t, domain.ArchetypeOpportunisticVisionary, Classify(s))
}

func TestClassify_BalancedBoundsInclusive(t *testing.T) {
	assert.Equal(t, domain.ArchetypeBalancedFounder, Classify(scoresOf(40, 60, 40, 60, 40, 60)))
	assert.Equal(t, domain.ArchetypeGrowthSeeker, Classify(scoresOf(61, 60, 40, 60, 40, 60)))
}

func TestClassify_Total(t *testing.T) {
	valid := make(map[domain.Archetype]bool)
	for _, a := range domain.AllArchetypes {
		valid[a] = true
	}
	values := []int{0, 39, 40, 50, 60, 61, 70, 71, 100}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				s := scoresOf(a, b, c, a, b, c)
				assert.True(t, valid[Classify(s)])
			}
		}
	}
}

func TestArchetypeRules_EndWithCatchAll(t *testing.T) {
	last := ArchetypeRules[len(ArchetypeRules)-1]
	assert.Equal(t, domain.ArchetypeGrowthSeeker, last.Archetype)
	assert.True(t, last.Matches(domain.PsychScores{}))
	assert.Len(t, ArchetypeRules, len(domain.AllArchetypes))
	for i, rule := range ArchetypeRules {
		assert.Equal(t, domain.AllArchetypes[i], rule.Archetype)
	}
}

func TestClassifyArchetype_UrgentAndMetadata(t *testing.T) {
	lookup := stubLookup{
		domain.ArchetypeBurningOut: {
			Name:           "Burning Out",
			Description:    "desc",
			Traits:         []string{"a", "b"},
			Strength:       "s",
			Challenge:      "c",
			Recommendation: "r",
		},
	}
	result := ClassifyArchetype(scoresOf(80, 80, 80, 10, 10, 10), lookup)
	assert.Equal(t, domain.ArchetypeBurningOut, result.Archetype)
	assert.Equal(t, "Burning Out", result.Name)
	assert.True(t, result.IsUrgent)
	assert.Nil(t, result.Encouragement)
	assert.Equal(t, []string{"a", "b"}, result.Traits)
}

func TestClassifyArchetype_OnlyGrowthSeekerEncourages(t *testing.T) {
	for _, a := range domain.AllArchetypes {
		result := DescribeArchetype(a, stubLookup{})
		if a == domain.ArchetypeGrowthSeeker {
			require.NotNil(t, result.Encouragement)
			assert.NotEmpty(t, *result.Encouragement)
			continue
		}
		assert.Nil(t, result.Encouragement, "archetype=%s", a)
		assert.Equal(t, a == domain.ArchetypeBurningOut, result.IsUrgent, "archetype=%s", a)
	}
}

func TestClassifyArchetype_UsesCatalogEncouragement(t *testing.T) {
	lookup := stubLookup{domain.ArchetypeGrowthSeeker: {Name: "Growth Seeker", Encouragement: "keep going"}}
	result := ClassifyArchetype(scoresOf(55, 55, 80, 80, 55, 55), lookup)
	require.NotNil(t, result.Encouragement)
	assert.Equal(t, "keep going", *result.Encouragement)
}
