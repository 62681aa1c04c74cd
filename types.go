package infographic

import (
	"context"
	"errors"
)

// ErrMissingFields is returned when a model reply parses as JSON but lacks the
// required top-level fields.
var ErrMissingFields = errors.New("reply is missing required fields")

// Model represents a model identifier.
type Model string

// Layout is the overall arrangement strategy of an infographic.
type Layout string

const (
	LayoutProcessFlow Layout = "process_flow"
	LayoutConceptMap  Layout = "concept_map"
	LayoutHierarchy   Layout = "hierarchy"
	LayoutComparison  Layout = "comparison"
)

// VisualFlow is the reading direction of the rendered infographic.
type VisualFlow string

const (
	FlowTopToBottom  VisualFlow = "top_to_bottom"
	FlowLeftToRight  VisualFlow = "left_to_right"
	FlowCenterRadial VisualFlow = "center_radial"
	FlowLayered      VisualFlow = "layered"
)

// Role describes what a section contributes to the visual story.
type Role string

const (
	RoleMainConcept     Role = "main_concept"
	RoleSupportingPoint Role = "supporting_point"
	RoleProcessStep     Role = "process_step"
	RoleConclusion      Role = "conclusion"
	RoleConnector       Role = "connector"
)

// Color is one entry of the fixed rendering palette.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorTeal   Color = "teal"
)

// Palette is the ordered color palette sections cycle through.
var Palette = []Color{ColorBlue, ColorGreen, ColorOrange, ColorRed, ColorPurple, ColorTeal}

// Emphasis ranks a section's importance within the layout.
type Emphasis string

const (
	EmphasisPrimary   Emphasis = "primary"
	EmphasisSecondary Emphasis = "secondary"
	EmphasisTertiary  Emphasis = "tertiary"
)

// Weight controls the rendered size of a section.
type Weight string

const (
	WeightHeavy  Weight = "heavy"
	WeightMedium Weight = "medium"
	WeightLight  Weight = "light"
)

// Section is one visual element of an infographic.
type Section struct {
	Role         Role     `json:"role"`
	Text         string   `json:"text"`
	Color        Color    `json:"color"`
	Emphasis     Emphasis `json:"emphasis"`
	VisualWeight Weight   `json:"visual_weight"`
}

// Result is the infographic description handed to the renderer. Note is only
// set on degraded paths and names the origin of the result.
type Result struct {
	Title      string     `json:"title"`
	Layout     Layout     `json:"layout"`
	VisualFlow VisualFlow `json:"visual_flow"`
	Sections   []Section  `json:"sections"`
	Note       string     `json:"note,omitempty"`
}

// Invoker abstraction allows mocking the remote text-generation service.
type Invoker interface {
	Generate(ctx context.Context, model Model, prompt string) (string, error)
}

// PromptProvider should return the prompt template text for the given tag.
type PromptProvider interface {
	GetPrompt(tag string, version int) (string, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithInvoker replaces the genai-backed invoker, e.g. with a scripted one.
func WithInvoker(inv Invoker) Option {
	return func(g *Generator) { g.invoker = inv }
}

// WithPromptProvider overrides the built-in designer prompt.
func WithPromptProvider(p PromptProvider) Option {
	return func(g *Generator) { g.prompts = p }
}

// WithModels sets the primary model and the secondary model tried when the
// primary attempt fails.
func WithModels(primary, secondary Model) Option {
	return func(g *Generator) {
		g.primary = primary
		g.secondary = secondary
	}
}

// WithTranscript enables the append-only diagnostic transcript at path.
func WithTranscript(path string) Option {
	return func(g *Generator) { g.transcript = NewTranscript(path) }
}
