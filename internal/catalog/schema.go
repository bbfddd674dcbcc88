package catalog

// archetypeFile mirrors data/archetypes.yaml.
type archetypeFile struct {
	Archetypes []ArchetypeConfig `yaml:"archetypes"`
}

type ArchetypeConfig struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	Traits         []string `yaml:"traits"`
	Strength       string   `yaml:"strength"`
	Challenge      string   `yaml:"challenge"`
	Recommendation string   `yaml:"recommendation"`
	Encouragement  string   `yaml:"encouragement,omitempty"`
}

// actionFile mirrors data/actions.yaml.
type actionFile struct {
	ByArchetype map[string][]TemplateConfig `yaml:"by_archetype"`
	ByDimension map[string][]TemplateConfig `yaml:"by_dimension"`
	General     []TemplateConfig            `yaml:"general"`
}

type TemplateConfig struct {
	Text      string `yaml:"text"`
	Category  string `yaml:"category"`
	Dimension string `yaml:"dimension,omitempty"`
}

// questionFile mirrors data/questions.yaml.
type questionFile struct {
	Scale     []string         `yaml:"scale"`
	Questions []QuestionConfig `yaml:"questions"`
}

type QuestionConfig struct {
	Dimension string   `yaml:"dimension"`
	Prompt    string   `yaml:"prompt"`
	Options   []string `yaml:"options,omitempty"` // overrides scale
}

// Schema is the raw, unvalidated catalog as read from YAML.
type Schema struct {
	Archetypes  []ArchetypeConfig
	ByArchetype map[string][]TemplateConfig
	ByDimension map[string][]TemplateConfig
	General     []TemplateConfig
	Scale       []string
	Questions   []QuestionConfig
}
