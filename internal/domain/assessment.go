package domain

import "time"

// AnswerCount is the fixed length of a questionnaire answer set.
const AnswerCount = 25

// AnswerLevel is one ordinal questionnaire choice, 1 through 4.
type AnswerLevel int

const (
	AnswerLevel1 AnswerLevel = 1
	AnswerLevel2 AnswerLevel = 2
	AnswerLevel3 AnswerLevel = 3
	AnswerLevel4 AnswerLevel = 4
)

// Valid reports whether the level is one of the four accepted choices.
func (l AnswerLevel) Valid() bool {
	return l >= AnswerLevel1 && l <= AnswerLevel4
}

// Weight maps a level onto the 0-100 scale. Invalid levels weigh 0.
func (l AnswerLevel) Weight() int {
	switch l {
	case AnswerLevel2:
		return 33
	case AnswerLevel3:
		return 67
	case AnswerLevel4:
		return 100
	default:
		return 0
	}
}

// PsychScores holds the seven dimensions derived from one answer set.
type PsychScores struct {
	ImposterSyndrome int
	FounderDoubt     int
	IdentityFusion   int
	FearOfRejection  int
	RiskTolerance    int
	IsolationLevel   int
	MotivationType   MotivationType
}

// Value returns the numeric score for a dimension.
func (s PsychScores) Value(d Dimension) int {
	switch d {
	case DimImposterSyndrome:
		return s.ImposterSyndrome
	case DimFounderDoubt:
		return s.FounderDoubt
	case DimIdentityFusion:
		return s.IdentityFusion
	case DimFearOfRejection:
		return s.FearOfRejection
	case DimRiskTolerance:
		return s.RiskTolerance
	case DimIsolationLevel:
		return s.IsolationLevel
	default:
		return 0
	}
}

// Numeric returns the six numeric dimensions in a fixed order.
func (s PsychScores) Numeric() []int {
	return []int{
		s.ImposterSyndrome,
		s.FounderDoubt,
		s.IdentityFusion,
		s.FearOfRejection,
		s.RiskTolerance,
		s.IsolationLevel,
	}
}

// ElevatedDimensions returns the negative dimensions scoring strictly above
// threshold, in NegativeDimensions order.
func (s PsychScores) ElevatedDimensions(threshold int) []Dimension {
	var out []Dimension
	for _, d := range NegativeDimensions {
		if s.Value(d) > threshold {
			out = append(out, d)
		}
	}
	return out
}

// Assessment is a persisted questionnaire submission.
type Assessment struct {
	ID        string
	UserID    string
	Answers   []AnswerLevel
	Scores    PsychScores
	Archetype Archetype
	CreatedAt time.Time
}
