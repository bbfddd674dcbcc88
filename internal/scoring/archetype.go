package scoring

import "github.com/alexanderramin/founderpulse/internal/domain"

// ArchetypeRule pairs an archetype with the predicate that selects it.
type ArchetypeRule struct {
	Archetype domain.Archetype
	Matches   func(domain.PsychScores) bool
}

// ArchetypeRules is evaluated top to bottom; the first match wins. The last
// rule always matches, so classification is total.
var ArchetypeRules = []ArchetypeRule{
	{domain.ArchetypeBurningOut, isBurningOut},
	{domain.ArchetypePerfectionistBuilder, func(s domain.PsychScores) bool {
		return s.ImposterSyndrome > 60 && s.FounderDoubt > 60 && s.RiskTolerance < 50
	}},
	{domain.ArchetypeOpportunisticVisionary, func(s domain.PsychScores) bool {
		return s.RiskTolerance > 70 && s.FounderDoubt < 40 && s.ImposterSyndrome < 40
	}},
	{domain.ArchetypeIsolatedDreamer, func(s domain.PsychScores) bool {
		return s.IsolationLevel > 70 && (s.IdentityFusion > 50 || s.FounderDoubt > 50)
	}},
	{domain.ArchetypeSelfAssuredHustler, func(s domain.PsychScores) bool {
		return s.ImposterSyndrome < 40 && s.FounderDoubt < 40 && s.RiskTolerance > 60
	}},
	{domain.ArchetypeCommunityDriven, func(s domain.PsychScores) bool {
		return s.IsolationLevel < 40 && (s.ImposterSyndrome < 50 || s.FounderDoubt < 50)
	}},
	{domain.ArchetypeBalancedFounder, isBalanced},
	{domain.ArchetypeGrowthSeeker, func(domain.PsychScores) bool { return true }},
}

// burnoutDimensionThreshold is the strict lower bound for a dimension to count
// toward Burning Out.
const burnoutDimensionThreshold = 70

func isBurningOut(s domain.PsychScores) bool {
	return len(s.ElevatedDimensions(burnoutDimensionThreshold)) >= 3
}

func isBalanced(s domain.PsychScores) bool {
	for _, v := range s.Numeric() {
		if v < 40 || v > 60 {
			return false
		}
	}
	return true
}

// Classify returns the first archetype whose rule matches.
func Classify(scores domain.PsychScores) domain.Archetype {
	for _, rule := range ArchetypeRules {
		if rule.Matches(scores) {
			return rule.Archetype
		}
	}
	return domain.ArchetypeGrowthSeeker
}

// ArchetypeLookup resolves static archetype metadata.
type ArchetypeLookup interface {
	ArchetypeInfo(a domain.Archetype) (domain.ArchetypeInfo, bool)
}

const defaultEncouragement = "Every founder starts somewhere. Your profile is still taking shape, and that leaves room to grow in any direction."

// ClassifyArchetype classifies scores and attaches descriptive metadata.
func ClassifyArchetype(scores domain.PsychScores, lookup ArchetypeLookup) domain.ArchetypeResult {
	return DescribeArchetype(Classify(scores), lookup)
}

// DescribeArchetype builds the full result for an already-known archetype.
func DescribeArchetype(a domain.Archetype, lookup ArchetypeLookup) domain.ArchetypeResult {
	result := domain.ArchetypeResult{
		Archetype: a,
		Name:      string(a),
		IsUrgent:  a == domain.ArchetypeBurningOut,
	}

	var info domain.ArchetypeInfo
	if lookup != nil {
		if found, ok := lookup.ArchetypeInfo(a); ok {
			info = found
		}
	}
	if info.Name != "" {
		result.Name = info.Name
	}
	result.Description = info.Description
	result.Traits = append([]string(nil), info.Traits...)
	result.Strength = info.Strength
	result.Challenge = info.Challenge
	result.Recommendation = info.Recommendation

	if a == domain.ArchetypeGrowthSeeker {
		enc := info.Encouragement
		if enc == "" {
			enc = defaultEncouragement
		}
		result.Encouragement = &enc
	}
	return result
}
