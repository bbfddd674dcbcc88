// Package catalog holds the static knowledge bases: archetype metadata, the
// action template catalog and the assessment questionnaire. Catalogs are
// immutable once loaded and safe for concurrent readers.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	"github.com/alexanderramin/founderpulse/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	archetypesFile = "data/archetypes.yaml"
	actionsFile    = "data/actions.yaml"
	questionsFile  = "data/questions.yaml"
)

// Question is one questionnaire prompt with its four answer labels, lowest
// level first.
type Question struct {
	Number    int
	Dimension string
	Prompt    string
	Options   []string
}

// Catalog is a validated, read-only view of the static data.
type Catalog struct {
	archetypes  map[domain.Archetype]domain.ArchetypeInfo
	byArchetype map[domain.Archetype][]domain.ActionTemplate
	byDimension map[domain.Dimension][]domain.ActionTemplate
	general     []domain.ActionTemplate
	questions   []Question
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the catalog built from the embedded data files. It panics if
// the embedded data is invalid, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(embedded)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data invalid: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Load reads data/archetypes.yaml, data/actions.yaml and data/questions.yaml
// from fsys, validates them and builds a Catalog.
func Load(fsys fs.FS) (*Catalog, error) {
	schema, err := ReadSchema(fsys)
	if err != nil {
		return nil, err
	}
	if errs := Validate(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return build(schema), nil
}

// ReadSchema parses the raw YAML files without validating them.
func ReadSchema(fsys fs.FS) (*Schema, error) {
	var (
		arch  archetypeFile
		acts  actionFile
		quest questionFile
	)
	if err := decodeFile(fsys, archetypesFile, &arch); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, actionsFile, &acts); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, questionsFile, &quest); err != nil {
		return nil, err
	}
	return &Schema{
		Archetypes:  arch.Archetypes,
		ByArchetype: acts.ByArchetype,
		ByDimension: acts.ByDimension,
		General:     acts.General,
		Scale:       quest.Scale,
		Questions:   quest.Questions,
	}, nil
}

func decodeFile(fsys fs.FS, name string, into any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, into); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func build(s *Schema) *Catalog {
	c := &Catalog{
		archetypes:  make(map[domain.Archetype]domain.ArchetypeInfo, len(s.Archetypes)),
		byArchetype: make(map[domain.Archetype][]domain.ActionTemplate, len(s.ByArchetype)),
		byDimension: make(map[domain.Dimension][]domain.ActionTemplate, len(s.ByDimension)),
		general:     toTemplates(s.General, ""),
	}
	for _, a := range s.Archetypes {
		c.archetypes[domain.Archetype(a.ID)] = domain.ArchetypeInfo{
			Name:           a.Name,
			Description:    a.Description,
			Traits:         a.Traits,
			Strength:       a.Strength,
			Challenge:      a.Challenge,
			Recommendation: a.Recommendation,
			Encouragement:  a.Encouragement,
		}
	}
	for key, list := range s.ByArchetype {
		c.byArchetype[domain.Archetype(key)] = toTemplates(list, "")
	}
	for key, list := range s.ByDimension {
		c.byDimension[domain.Dimension(key)] = toTemplates(list, domain.Dimension(key))
	}
	for i, q := range s.Questions {
		opts := q.Options
		if len(opts) == 0 {
			opts = s.Scale
		}
		c.questions = append(c.questions, Question{
			Number:    i + 1,
			Dimension: q.Dimension,
			Prompt:    q.Prompt,
			Options:   slices.Clone(opts),
		})
	}
	return c
}

// toTemplates converts raw entries; fallback tags entries that name no
// dimension of their own.
func toTemplates(list []TemplateConfig, fallback domain.Dimension) []domain.ActionTemplate {
	out := make([]domain.ActionTemplate, 0, len(list))
	for _, t := range list {
		tmpl := domain.ActionTemplate{Text: t.Text, Category: domain.ActionCategory(t.Category)}
		dim := domain.Dimension(t.Dimension)
		if dim == "" {
			dim = fallback
		}
		if dim != "" {
			tmpl.Dimension = &dim
		}
		out = append(out, tmpl)
	}
	return out
}

// ArchetypeInfo implements scoring.ArchetypeLookup.
func (c *Catalog) ArchetypeInfo(a domain.Archetype) (domain.ArchetypeInfo, bool) {
	info, ok := c.archetypes[a]
	if !ok {
		return domain.ArchetypeInfo{}, false
	}
	info.Traits = slices.Clone(info.Traits)
	return info, true
}

// ArchetypeTemplates returns the templates tagged for an archetype.
func (c *Catalog) ArchetypeTemplates(a domain.Archetype) []domain.ActionTemplate {
	return slices.Clone(c.byArchetype[a])
}

// DimensionTemplates returns the templates targeting an at-risk dimension.
func (c *Catalog) DimensionTemplates(d domain.Dimension) []domain.ActionTemplate {
	return slices.Clone(c.byDimension[d])
}

// GeneralTemplates returns the general wellness filler set.
func (c *Catalog) GeneralTemplates() []domain.ActionTemplate {
	return slices.Clone(c.general)
}

// Questions returns the questionnaire in answer order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}
