package domain

// ArchetypeInfo is the static descriptive metadata for one archetype.
type ArchetypeInfo struct {
	Name           string
	Description    string
	Traits         []string
	Strength       string
	Challenge      string
	Recommendation string
	Encouragement  string
}

// ArchetypeResult is the outcome of classifying a set of scores.
type ArchetypeResult struct {
	Archetype      Archetype
	Name           string
	Description    string
	Traits         []string
	Strength       string
	Challenge      string
	Recommendation string
	IsUrgent       bool
	// Encouragement is set only for the fallback archetype.
	Encouragement *string
}
