package infographic

import (
	"fmt"
	"strings"

	"github.com/tyler-sommer/stick"
)

// promptTag names the built-in instructional prompt template.
const promptTag = "designer"

// designerPrompt is the fixed instructional prompt sent ahead of the user
// text. The enum alternatives are injected from the Go constants so the
// prompt and the schema cannot drift apart.
const designerPrompt = `You are a professional infographic designer creating business-quality visual diagrams.

Analyze the input content and create a structured visual story. Return valid JSON with this schema:

{
  "title": "string",
  "layout": "{{ layouts }}",
  "visual_flow": "{{ flows }}",
  "sections": [
    {
      "role": "{{ roles }}",
      "text": "string",
      "color": "{{ colors }}",
      "emphasis": "{{ emphases }}",
      "visual_weight": "{{ weights }}"
    }
  ]
}

CRITICAL DESIGN PRINCIPLES:
1. CREATE VISUAL HIERARCHY: One primary element, 2-4 secondary elements maximum for clean layouts
2. LOGICAL FLOW: Elements should connect meaningfully (cause->effect, step->step, concept->example)
3. CONTENT ANALYSIS:
   - Process/workflow -> "process_flow" layout with sequential steps
   - Multiple concepts -> "concept_map" with central theme (MAX 5 sections total)
   - Rankings/levels -> "hierarchy" with clear top-down structure
   - Comparisons -> "comparison" with balanced sides

LAYOUT CONSTRAINTS:
- concept_map: Use ONLY for 3-5 sections maximum to prevent overlap
- process_flow: Ideal for sequential steps
- hierarchy: Best for 6+ sections with clear levels

4. ROLE ASSIGNMENT:
   - "main_concept": The core idea (1 per infographic)
   - "process_step": Sequential elements in order
   - "supporting_point": Details that support the main concept
   - "conclusion": Final outcome or result
   - "connector": Transition phrases or arrows

5. VISUAL WEIGHT:
   - "heavy": Most important element (largest, central)
   - "medium": Secondary importance (medium size)
   - "light": Supporting details (smaller, peripheral)

6. EMPHASIS LEVELS:
   - "primary": Main focus of the infographic
   - "secondary": Key supporting elements
   - "tertiary": Additional context/details

Return ONLY valid JSON. Analyze content deeply to create meaningful visual structure.`

// StickPromptProvider renders prompt templates through a Stick (Twig) engine.
type StickPromptProvider struct {
	env       *stick.Env
	templates map[string]string
	vars      map[string]interface{}
}

// ProviderOption keeps the provider constructor flexible.
type ProviderOption func(*StickPromptProvider) error

// WithTemplates lets you inject an in-memory template map.
func WithTemplates(m map[string]string) ProviderOption {
	return func(p *StickPromptProvider) error {
		for k, v := range m {
			p.templates[k] = v
		}
		return nil
	}
}

// WithVar adds a variable that will be available in all templates.
func WithVar(key string, value interface{}) ProviderOption {
	return func(p *StickPromptProvider) error {
		p.vars[key] = value
		return nil
	}
}

// NewStickPromptProvider builds a provider from any combination of options.
func NewStickPromptProvider(opts ...ProviderOption) (*StickPromptProvider, error) {
	p := &StickPromptProvider{
		env:       stick.New(nil),
		templates: make(map[string]string),
		vars:      make(map[string]interface{}),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddTemplate updates or inserts one template.
func (p *StickPromptProvider) AddTemplate(tag, tpl string) { p.templates[tag] = tpl }

// GetPrompt renders the template for the given tag.
func (p *StickPromptProvider) GetPrompt(tag string, version int) (string, error) {
	tpl, ok := p.templates[tag]
	if !ok {
		return "", fmt.Errorf("template %q not found", tag)
	}

	templateCtx := make(map[string]stick.Value)
	templateCtx["version"] = version
	templateCtx["tag"] = tag
	for k, v := range p.vars {
		templateCtx[k] = v
	}

	var out strings.Builder
	if err := p.env.Execute(tpl, &out, templateCtx); err != nil {
		return "", fmt.Errorf("execute %q: %w", tag, err)
	}
	return out.String(), nil
}

// SimplePromptProvider serves literal prompt strings without templating.
type SimplePromptProvider map[string]string

func (s SimplePromptProvider) GetPrompt(tag string, version int) (string, error) {
	if tpl, ok := s[tag]; ok {
		return tpl, nil
	}
	return "", fmt.Errorf("prompt %q not found", tag)
}

// defaultPrompts wires the designer template with the schema enums rendered
// as alternative lists.
func defaultPrompts() PromptProvider {
	p, err := NewStickPromptProvider(
		WithTemplates(map[string]string{promptTag: designerPrompt}),
		WithVar("layouts", alternatives(string(LayoutProcessFlow), string(LayoutConceptMap), string(LayoutHierarchy), string(LayoutComparison))),
		WithVar("flows", alternatives(string(FlowTopToBottom), string(FlowLeftToRight), string(FlowCenterRadial), string(FlowLayered))),
		WithVar("roles", alternatives(string(RoleMainConcept), string(RoleSupportingPoint), string(RoleProcessStep), string(RoleConclusion), string(RoleConnector))),
		WithVar("colors", paletteAlternatives()),
		WithVar("emphases", alternatives(string(EmphasisPrimary), string(EmphasisSecondary), string(EmphasisTertiary))),
		WithVar("weights", alternatives(string(WeightHeavy), string(WeightMedium), string(WeightLight))),
	)
	if err != nil {
		// The built-in options cannot fail; keep a literal provider as a
		// safety net anyway.
		return SimplePromptProvider{promptTag: designerPrompt}
	}
	return p
}

func alternatives(values ...string) string {
	return strings.Join(values, " | ")
}

func paletteAlternatives() string {
	names := make([]string, len(Palette))
	for i, c := range Palette {
		names[i] = string(c)
	}
	return alternatives(names...)
}
