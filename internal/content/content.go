// Package content holds the fixed stage content table that drives interview prep generation.
package content

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/interview-prep/internal/types"
)

//go:embed content.yaml
var contentYAML []byte

const (
	// RolePlaceholder is replaced by the job title in the first HR question.
	RolePlaceholder = "{role}"
	// FallbackRole is used when the job title is empty or whitespace-only.
	FallbackRole = "this role"

	contentVersion = 1
)

// Entry is the content associated with one stage.
type Entry struct {
	Questions []string
	Framework []string
	Tips      []string
	Keywords  []string
}

// Table maps each stage to its content. It is immutable once parsed.
type Table struct {
	entries     map[types.Stage]Entry
	stageFAQs   map[types.Stage][]types.FAQ
	resultsFAQs []types.FAQ
	homeFAQs    []types.FAQ
}

type yamlDocument struct {
	Version       int              `yaml:"version"`
	StarFramework []string         `yaml:"star_framework"`
	Stages        []yamlStageEntry `yaml:"stages"`
	ResultsFAQs   []types.FAQ      `yaml:"results_faqs"`
	HomeFAQs      []types.FAQ      `yaml:"home_faqs"`
}

type yamlStageEntry struct {
	Stage     string      `yaml:"stage"`
	Questions []string    `yaml:"questions"`
	Tips      []string    `yaml:"tips"`
	Keywords  []string    `yaml:"keywords"`
	FAQs      []types.FAQ `yaml:"faqs"`
}

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Parse(contentYAML)
})

// Default returns the table built from the embedded content document.
// The document is parsed once per process.
func Default() (*Table, error) {
	return loadDefault()
}

// Parse builds a Table from a YAML content document and checks that every stage
// has a complete, non-empty entry.
func Parse(data []byte) (*Table, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigurationError{Message: "failed to parse content document", Cause: err}
	}
	if doc.Version != contentVersion {
		return nil, &ConfigurationError{Message: fmt.Sprintf("unsupported content version %d", doc.Version)}
	}
	if err := checkLines("star_framework", doc.StarFramework); err != nil {
		return nil, err
	}

	t := &Table{
		entries:     make(map[types.Stage]Entry, len(doc.Stages)),
		stageFAQs:   make(map[types.Stage][]types.FAQ, len(doc.Stages)),
		resultsFAQs: doc.ResultsFAQs,
		homeFAQs:    doc.HomeFAQs,
	}

	for _, se := range doc.Stages {
		stage := types.Stage(se.Stage)
		if !stage.Valid() {
			return nil, &ConfigurationError{Stage: stage, Message: "unknown stage in content document"}
		}
		if _, dup := t.entries[stage]; dup {
			return nil, &ConfigurationError{Stage: stage, Message: "stage defined more than once"}
		}
		for name, lines := range map[string][]string{
			"questions": se.Questions,
			"tips":      se.Tips,
			"keywords":  se.Keywords,
		} {
			if err := checkLines(name, lines); err != nil {
				err.Stage = stage
				return nil, err
			}
		}
		t.entries[stage] = Entry{
			Questions: se.Questions,
			Framework: doc.StarFramework,
			Tips:      se.Tips,
			Keywords:  se.Keywords,
		}
		t.stageFAQs[stage] = se.FAQs
	}

	for _, stage := range types.Stages() {
		if _, ok := t.entries[stage]; !ok {
			return nil, &ConfigurationError{Stage: stage, Message: "stage has no content entry"}
		}
	}

	return t, nil
}

func checkLines(name string, lines []string) *ConfigurationError {
	if len(lines) == 0 {
		return &ConfigurationError{Message: fmt.Sprintf("%s list is empty", name)}
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return &ConfigurationError{Message: fmt.Sprintf("%s[%d] is blank", name, i)}
		}
	}
	return nil
}

// Lookup returns a copy of the content for stage.
func (t *Table) Lookup(stage types.Stage) (Entry, error) {
	e, ok := t.entries[stage]
	if !ok {
		return Entry{}, &ConfigurationError{Stage: stage, Message: "no content for stage"}
	}
	return Entry{
		Questions: slices.Clone(e.Questions),
		Framework: slices.Clone(e.Framework),
		Tips:      slices.Clone(e.Tips),
		Keywords:  slices.Clone(e.Keywords),
	}, nil
}

// Generate builds the bundle for stage. The job title only affects the first HR question.
func (t *Table) Generate(stage types.Stage, jobTitle string) (*types.Bundle, error) {
	e, err := t.Lookup(stage)
	if err != nil {
		return nil, err
	}

	if stage == types.StageHR {
		e.Questions[0] = strings.ReplaceAll(e.Questions[0], RolePlaceholder, RoleName(jobTitle))
	}

	return &types.Bundle{
		Stage:         stage,
		Questions:     e.Questions,
		StarFramework: e.Framework,
		Tips:          e.Tips,
		CoverKeywords: e.Keywords,
	}, nil
}

// RoleName returns the trimmed job title or FallbackRole.
func RoleName(jobTitle string) string {
	if role := strings.TrimSpace(jobTitle); role != "" {
		return role
	}
	return FallbackRole
}

// FAQs returns the stage-specific FAQ entries followed by the shared results entries.
func (t *Table) FAQs(stage types.Stage) ([]types.FAQ, error) {
	if _, ok := t.entries[stage]; !ok {
		return nil, &ConfigurationError{Stage: stage, Message: "no content for stage"}
	}
	out := make([]types.FAQ, 0, len(t.stageFAQs[stage])+len(t.resultsFAQs))
	out = append(out, t.stageFAQs[stage]...)
	out = append(out, t.resultsFAQs...)
	return out, nil
}

// HomeFAQs returns the FAQ entries shown on the input view.
func (t *Table) HomeFAQs() []types.FAQ {
	return slices.Clone(t.homeFAQs)
}

// Lookup is shorthand for Default().Lookup.
func Lookup(stage types.Stage) (Entry, error) {
	t, err := Default()
	if err != nil {
		return Entry{}, err
	}
	return t.Lookup(stage)
}

// Generate is shorthand for Default().Generate.
func Generate(stage types.Stage, jobTitle string) (*types.Bundle, error) {
	t, err := Default()
	if err != nil {
		return nil, err
	}
	return t.Generate(stage, jobTitle)
}
