package scoring

import (
	"math"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

// answerRange is a contiguous, inclusive slice of questionnaire indices.
type answerRange struct {
	From, To int
}

var (
	imposterRange  = answerRange{0, 4}
	doubtRange     = answerRange{5, 8}
	identityRange  = answerRange{9, 12}
	rejectionRange = answerRange{13, 17}
	riskRange      = answerRange{18, 20}
	isolationRange = answerRange{24, 24}
)

const (
	passionIdx     = 21
	financialIdx   = 22
	recognitionIdx = 23
)

// ScoreAnswers maps exactly 25 answers onto the seven psychological dimensions.
// Any wrong length or out-of-range level is a *domain.ValidationError naming
// the 1-indexed position.
func ScoreAnswers(answers []domain.AnswerLevel) (domain.PsychScores, error) {
	if err := ValidateAnswers(answers); err != nil {
		return domain.PsychScores{}, err
	}

	return domain.PsychScores{
		ImposterSyndrome: rangeMean(answers, imposterRange),
		FounderDoubt:     rangeMean(answers, doubtRange),
		IdentityFusion:   rangeMean(answers, identityRange),
		FearOfRejection:  rangeMean(answers, rejectionRange),
		RiskTolerance:    rangeMean(answers, riskRange),
		IsolationLevel:   rangeMean(answers, isolationRange),
		MotivationType:   motivationType(answers),
	}, nil
}

// ValidateAnswers checks length and every level without scoring.
func ValidateAnswers(answers []domain.AnswerLevel) error {
	if len(answers) != domain.AnswerCount {
		return domain.NewValidationError("answers", "expected %d answers, got %d", domain.AnswerCount, len(answers))
	}
	for i, a := range answers {
		if !a.Valid() {
			return domain.NewValidationError("answers", "answer %d: level %d is outside 1-4", i+1, int(a))
		}
	}
	return nil
}

func rangeMean(answers []domain.AnswerLevel, r answerRange) int {
	sum := 0
	for i := r.From; i <= r.To; i++ {
		sum += answers[i].Weight()
	}
	return roundHalfUp(float64(sum) / float64(r.To-r.From+1))
}

func motivationType(answers []domain.AnswerLevel) domain.MotivationType {
	passion := float64(answers[passionIdx].Weight())
	external := float64(answers[financialIdx].Weight()+answers[recognitionIdx].Weight()) / 2

	switch {
	case passion > external:
		return domain.MotivationIntrinsic
	case external > passion:
		return domain.MotivationExtrinsic
	default:
		return domain.MotivationMixed
	}
}

// roundHalfUp rounds halves toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
