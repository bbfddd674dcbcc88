package catalog

import (
	"fmt"

	"github.com/alexanderramin/founderpulse/internal/domain"
)

// questionDimensions are the dimension keys a question may carry.
var questionDimensions = map[string]bool{
	string(domain.DimImposterSyndrome): true,
	string(domain.DimFounderDoubt):     true,
	string(domain.DimIdentityFusion):   true,
	string(domain.DimFearOfRejection):  true,
	string(domain.DimRiskTolerance):    true,
	string(domain.DimIsolationLevel):   true,
	"motivation":                       true,
}

// Validate checks a Schema for structural errors.
// Returns a slice of errors (empty if valid).
func Validate(s *Schema) []error {
	var errs []error

	seen := map[string]bool{}
	for i, a := range s.Archetypes {
		if !domain.ValidArchetype(a.ID) {
			errs = append(errs, fmt.Errorf("archetype[%d]: unknown id %q", i, a.ID))
			continue
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("archetype[%d]: duplicate id %q", i, a.ID))
		}
		seen[a.ID] = true
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("archetype %s: name is required", a.ID))
		}
		if a.Description == "" {
			errs = append(errs, fmt.Errorf("archetype %s: description is required", a.ID))
		}
		if a.Encouragement != "" && a.ID != string(domain.ArchetypeGrowthSeeker) {
			errs = append(errs, fmt.Errorf("archetype %s: only %s carries encouragement", a.ID, domain.ArchetypeGrowthSeeker))
		}
	}
	for _, a := range domain.AllArchetypes {
		if !seen[string(a)] {
			errs = append(errs, fmt.Errorf("archetype %s: metadata missing", a))
		}
		if len(s.ByArchetype[string(a)]) == 0 {
			errs = append(errs, fmt.Errorf("archetype %s: no action templates", a))
		}
	}
	for key := range s.ByArchetype {
		if !domain.ValidArchetype(key) {
			errs = append(errs, fmt.Errorf("by_archetype: unknown archetype %q", key))
		}
	}

	for _, d := range domain.NegativeDimensions {
		if len(s.ByDimension[string(d)]) == 0 {
			errs = append(errs, fmt.Errorf("dimension %s: no action templates", d))
		}
	}
	for key := range s.ByDimension {
		if !domain.ValidDimensions[key] {
			errs = append(errs, fmt.Errorf("by_dimension: unknown dimension %q", key))
		}
	}
	if len(s.General) == 0 {
		errs = append(errs, fmt.Errorf("at least one general template is required"))
	}

	check := func(where string, list []TemplateConfig) {
		for i, t := range list {
			if t.Text == "" {
				errs = append(errs, fmt.Errorf("%s[%d]: text is required", where, i))
			}
			if !domain.ValidActionCategories[t.Category] {
				errs = append(errs, fmt.Errorf("%s[%d]: unknown category %q", where, i, t.Category))
			}
			if t.Dimension != "" && !domain.ValidDimensions[t.Dimension] {
				errs = append(errs, fmt.Errorf("%s[%d]: unknown dimension %q", where, i, t.Dimension))
			}
		}
	}
	for key, list := range s.ByArchetype {
		check("by_archetype."+key, list)
	}
	for key, list := range s.ByDimension {
		check("by_dimension."+key, list)
	}
	check("general", s.General)

	if len(s.Questions) != domain.AnswerCount {
		errs = append(errs, fmt.Errorf("expected %d questions, got %d", domain.AnswerCount, len(s.Questions)))
	}
	for i, q := range s.Questions {
		if q.Prompt == "" {
			errs = append(errs, fmt.Errorf("question[%d]: prompt is required", i))
		}
		if !questionDimensions[q.Dimension] {
			errs = append(errs, fmt.Errorf("question[%d]: unknown dimension %q", i, q.Dimension))
		}
		opts := q.Options
		if len(opts) == 0 {
			opts = s.Scale
		}
		if len(opts) != 4 {
			errs = append(errs, fmt.Errorf("question[%d]: expected 4 options, got %d", i, len(opts)))
		}
	}

	return errs
}
