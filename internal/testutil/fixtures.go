package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/google/uuid"
)

// CheckIn options
type CheckInOption func(*domain.CheckIn)

func WithMood(v int) CheckInOption {
	return func(c *domain.CheckIn) { c.Mood = v }
}

func WithEnergy(v int) CheckInOption {
	return func(c *domain.CheckIn) { c.Energy = v }
}

func WithStress(v int) CheckInOption {
	return func(c *domain.CheckIn) { c.Stress = v }
}

func WithNotes(s string) CheckInOption {
	return func(c *domain.CheckIn) { c.Notes = s }
}

// NewTestCheckIn builds a neutral 50/50/50 entry.
func NewTestCheckIn(userID, date string, opts ...CheckInOption) *domain.CheckIn {
	now := time.Now().UTC()
	c := &domain.CheckIn{
		UserID:    userID,
		EntryDate: date,
		Mood:      50,
		Energy:    50,
		Stress:    50,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Assessment options
type AssessmentOption func(*domain.Assessment)

func WithScores(s domain.PsychScores) AssessmentOption {
	return func(a *domain.Assessment) { a.Scores = s }
}

func WithArchetype(arch domain.Archetype) AssessmentOption {
	return func(a *domain.Assessment) { a.Archetype = arch }
}

func WithAssessedAt(t time.Time) AssessmentOption {
	return func(a *domain.Assessment) { a.CreatedAt = t }
}

// NewTestAssessment builds an all-level-2 Growth Seeker assessment.
func NewTestAssessment(userID string, opts ...AssessmentOption) *domain.Assessment {
	answers := make([]domain.AnswerLevel, domain.AnswerCount)
	for i := range answers {
		answers[i] = domain.AnswerLevel2
	}
	a := &domain.Assessment{
		ID:      uuid.New().String(),
		UserID:  userID,
		Answers: answers,
		Scores: domain.PsychScores{
			ImposterSyndrome: 33,
			FounderDoubt:     33,
			IdentityFusion:   33,
			FearOfRejection:  33,
			RiskTolerance:    33,
			IsolationLevel:   33,
			MotivationType:   domain.MotivationMixed,
		},
		Archetype: domain.ArchetypeGrowthSeeker,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestBurnoutScore builds a persisted burnout event for userID on date.
func NewTestBurnoutScore(userID, date string, score int, risk domain.RiskLevel, factors ...string) *domain.BurnoutScore {
	if factors == nil {
		factors = []string{}
	}
	return &domain.BurnoutScore{
		ID:        uuid.New().String(),
		UserID:    userID,
		ScoreDate: date,
		BurnoutResult: domain.BurnoutResult{
			Score:     score,
			RiskLevel: risk,
			Factors:   factors,
		},
		CreatedAt: time.Now().UTC(),
	}
}

// Action options
type ActionOption func(*domain.ActionItem)

func WithCategory(c domain.ActionCategory) ActionOption {
	return func(a *domain.ActionItem) { a.Category = c }
}

func WithTargetDimension(d domain.Dimension) ActionOption {
	return func(a *domain.ActionItem) { a.TargetDimension = &d }
}

func WithCompletedAt(t time.Time) ActionOption {
	return func(a *domain.ActionItem) {
		a.Completed = true
		a.CompletedAt = &t
	}
}

// NewTestAction builds an open action. The caller claims the batch for
// (userID, date) before inserting it.
func NewTestAction(userID, date, text string, opts ...ActionOption) *domain.ActionItem {
	a := &domain.ActionItem{
		ID:           uuid.New().String(),
		UserID:       userID,
		AssignedDate: date,
		Text:         text,
		Category:     domain.CategoryMindset,
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ShiftDate moves a fixture date by n days and panics on a malformed date.
func ShiftDate(date string, n int) string {
	out, err := domain.AddDays(date, n)
	if err != nil {
		panic(fmt.Sprintf("testutil: invalid fixture date %q", date))
	}
	return out
}
