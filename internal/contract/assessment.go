package contract

import (
	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
)

type SubmitAssessmentRequest struct {
	Answers []int `json:"answers"`
}

// AnswerLevels converts the raw answers. Range checks happen in the service.
func (r SubmitAssessmentRequest) AnswerLevels() []domain.AnswerLevel {
	out := make([]domain.AnswerLevel, len(r.Answers))
	for i, a := range r.Answers {
		out[i] = domain.AnswerLevel(a)
	}
	return out
}

type ScoresView struct {
	ImposterSyndrome int    `json:"imposter_syndrome"`
	FounderDoubt     int    `json:"founder_doubt"`
	IdentityFusion   int    `json:"identity_fusion"`
	FearOfRejection  int    `json:"fear_of_rejection"`
	RiskTolerance    int    `json:"risk_tolerance"`
	IsolationLevel   int    `json:"isolation_level"`
	MotivationType   string `json:"motivation_type"`
}

type ArchetypeView struct {
	Archetype      string   `json:"archetype"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Traits         []string `json:"traits"`
	Strength       string   `json:"strength"`
	Challenge      string   `json:"challenge"`
	Recommendation string   `json:"recommendation"`
	IsUrgent       bool     `json:"is_urgent"`
	Encouragement  *string  `json:"encouragement,omitempty"`
}

type AssessmentResponse struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Scores    ScoresView    `json:"scores"`
	Archetype ArchetypeView `json:"archetype"`
	CreatedAt *string       `json:"created_at"`
}

func NewAssessmentResponse(res *app.AssessmentResult) AssessmentResponse {
	a := res.Assessment
	return AssessmentResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Scores:    newScoresView(a.Scores),
		Archetype: newArchetypeView(res.Archetype),
		CreatedAt: timestamp(a.CreatedAt),
	}
}

func newScoresView(s domain.PsychScores) ScoresView {
	return ScoresView{
		ImposterSyndrome: s.ImposterSyndrome,
		FounderDoubt:     s.FounderDoubt,
		IdentityFusion:   s.IdentityFusion,
		FearOfRejection:  s.FearOfRejection,
		RiskTolerance:    s.RiskTolerance,
		IsolationLevel:   s.IsolationLevel,
		MotivationType:   string(s.MotivationType),
	}
}

func newArchetypeView(r domain.ArchetypeResult) ArchetypeView {
	traits := r.Traits
	if traits == nil {
		traits = []string{}
	}
	return ArchetypeView{
		Archetype:      string(r.Archetype),
		Name:           r.Name,
		Description:    r.Description,
		Traits:         traits,
		Strength:       r.Strength,
		Challenge:      r.Challenge,
		Recommendation: r.Recommendation,
		IsUrgent:       r.IsUrgent,
		Encouragement:  r.Encouragement,
	}
}
