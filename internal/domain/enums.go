package domain

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskCaution  RiskLevel = "caution"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendDeclining TrendDirection = "declining"
)

type MotivationType string

const (
	MotivationIntrinsic MotivationType = "intrinsic"
	MotivationExtrinsic MotivationType = "extrinsic"
	MotivationMixed     MotivationType = "mixed"
)

// ValidMotivationTypes is the canonical set of accepted motivation strings.
var ValidMotivationTypes = map[string]bool{
	"intrinsic": true, "extrinsic": true, "mixed": true,
}

type ActionCategory string

const (
	CategoryMindset    ActionCategory = "mindset"
	CategoryConnection ActionCategory = "connection"
	CategoryRecovery   ActionCategory = "recovery"
	CategoryReflection ActionCategory = "reflection"
	CategoryMomentum   ActionCategory = "momentum"
)

// ValidActionCategories is the canonical set of accepted action category strings.
var ValidActionCategories = map[string]bool{
	"mindset": true, "connection": true, "recovery": true,
	"reflection": true, "momentum": true,
}

// Dimension names one numeric psychological axis.
type Dimension string

const (
	DimImposterSyndrome Dimension = "imposter_syndrome"
	DimFounderDoubt     Dimension = "founder_doubt"
	DimIdentityFusion   Dimension = "identity_fusion"
	DimFearOfRejection  Dimension = "fear_of_rejection"
	DimRiskTolerance    Dimension = "risk_tolerance"
	DimIsolationLevel   Dimension = "isolation_level"
)

// NegativeDimensions are the dimensions where a high score signals strain, in
// the fixed order used for burnout factors and action pool assembly.
// Risk tolerance is deliberately absent.
var NegativeDimensions = []Dimension{
	DimImposterSyndrome,
	DimFounderDoubt,
	DimIdentityFusion,
	DimFearOfRejection,
	DimIsolationLevel,
}

// ValidDimensions is the canonical set of accepted dimension strings.
var ValidDimensions = map[string]bool{
	"imposter_syndrome": true, "founder_doubt": true, "identity_fusion": true,
	"fear_of_rejection": true, "risk_tolerance": true, "isolation_level": true,
}

type Archetype string

const (
	ArchetypeBurningOut             Archetype = "burning_out"
	ArchetypePerfectionistBuilder   Archetype = "perfectionist_builder"
	ArchetypeOpportunisticVisionary Archetype = "opportunistic_visionary"
	ArchetypeIsolatedDreamer        Archetype = "isolated_dreamer"
	ArchetypeSelfAssuredHustler     Archetype = "self_assured_hustler"
	ArchetypeCommunityDriven        Archetype = "community_driven"
	ArchetypeBalancedFounder        Archetype = "balanced_founder"
	ArchetypeGrowthSeeker           Archetype = "growth_seeker"
)

// AllArchetypes lists every archetype in classification priority order.
var AllArchetypes = []Archetype{
	ArchetypeBurningOut,
	ArchetypePerfectionistBuilder,
	ArchetypeOpportunisticVisionary,
	ArchetypeIsolatedDreamer,
	ArchetypeSelfAssuredHustler,
	ArchetypeCommunityDriven,
	ArchetypeBalancedFounder,
	ArchetypeGrowthSeeker,
}

// ValidArchetype reports whether s names a known archetype.
func ValidArchetype(s string) bool {
	for _, a := range AllArchetypes {
		if string(a) == s {
			return true
		}
	}
	return false
}
