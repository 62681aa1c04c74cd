package infographic

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentSchemaReply = `{
  "title": "Coffee Brewing",
  "layout": "process_flow",
  "visual_flow": "top_to_bottom",
  "sections": [
    {"role": "main_concept", "text": "Brew great coffee", "color": "blue", "emphasis": "primary", "visual_weight": "heavy"},
    {"role": "process_step", "text": "Grind the beans", "color": "green", "emphasis": "secondary", "visual_weight": "medium"}
  ]
}`

// panicInvoker triggers the last-resort guard.
type panicInvoker struct{}

func (p *panicInvoker) Generate(ctx context.Context, model Model, prompt string) (string, error) {
	panic("signature changed upstream")
}

func newTestGenerator(inv Invoker, opts ...Option) *Generator {
	opts = append([]Option{WithInvoker(inv)}, opts...)
	return NewWithLogger(nil, nil, opts...)
}

func TestGenerateEmptyInputSkipsRemoteCall(t *testing.T) {
	inv := &scriptedInvoker{replies: map[Model]string{defaultPrimaryModel: currentSchemaReply}}
	g := newTestGenerator(inv)

	for _, input := range []string{"", "   ", "\n\t "} {
		got := g.Generate(context.Background(), input)
		assert.Equal(t, "ERROR", got.Title)
		assert.Empty(t, got.Note)
		require.Len(t, got.Sections, 1)
		assert.Equal(t, "No input provided.", got.Sections[0].Text)
	}
	assert.Empty(t, inv.calls, "remote capability must not be invoked for empty input")
}

func TestGenerateHappyPath(t *testing.T) {
	inv := &scriptedInvoker{replies: map[Model]string{defaultPrimaryModel: currentSchemaReply}}
	g := newTestGenerator(inv)

	got := g.Generate(context.Background(), "How do I brew coffee?")

	assert.Equal(t, "Coffee Brewing", got.Title)
	assert.Equal(t, LayoutProcessFlow, got.Layout)
	assert.Empty(t, got.Note)
	require.Len(t, got.Sections, 2)
	assert.Equal(t, []Model{defaultPrimaryModel}, inv.calls)
}

func TestGenerateFencedReplyIsCleaned(t *testing.T) {
	fenced := "```json\n" + currentSchemaReply + "\n```"
	g := NewForTesting(fenced)

	got := g.Generate(context.Background(), "How do I brew coffee?")
	assert.Equal(t, "Coffee Brewing", got.Title)
	assert.Empty(t, got.Note)
}

func TestGenerateLegacyReplyIsNormalized(t *testing.T) {
	legacy := `{"title": "Old", "sections": [
		{"type": "box", "text": "A"},
		{"type": "arrow", "text": "->"},
		{"type": "process", "text": "B"}
	]}`
	g := NewForTesting(legacy)

	got := g.Generate(context.Background(), "anything")

	assert.Equal(t, "Old", got.Title)
	assert.Equal(t, LayoutProcessFlow, got.Layout)
	assert.Equal(t, FlowLeftToRight, got.VisualFlow)
	require.Len(t, got.Sections, 3)
	assert.Equal(t, RoleMainConcept, got.Sections[0].Role)
	assert.Equal(t, RoleConnector, got.Sections[1].Role)
	assert.Equal(t, RoleProcessStep, got.Sections[2].Role)
}

func TestGenerateSecondaryModelRecoversPrimaryFailure(t *testing.T) {
	inv := &scriptedInvoker{
		replies: map[Model]string{defaultSecondaryModel: currentSchemaReply},
		errs:    map[Model]error{defaultPrimaryModel: errors.New("quota exceeded")},
	}
	g := newTestGenerator(inv)

	got := g.Generate(context.Background(), "How do I brew coffee?")

	assert.Equal(t, "Coffee Brewing", got.Title)
	assert.Empty(t, got.Note)
	assert.Equal(t, []Model{defaultPrimaryModel, defaultSecondaryModel}, inv.calls)
}

func TestGenerateBothModelsFailingFallsBackLocally(t *testing.T) {
	userText := "Compare X and Y. X is fast. Y is cheap."
	inv := &scriptedInvoker{errs: map[Model]error{
		defaultPrimaryModel:   errors.New("unreachable"),
		defaultSecondaryModel: errors.New("unreachable"),
	}}
	g := newTestGenerator(inv)

	got := g.Generate(context.Background(), userText)

	assert.Equal(t, FallbackFromText(userText), got)
	assert.Equal(t, []Model{defaultPrimaryModel, defaultSecondaryModel}, inv.calls)
}

func TestGenerateUnparseableReplyFallsBackAndLogsRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.log")
	g := NewForTesting("the model rambled instead of emitting data",
		WithTranscript(path))

	got := g.Generate(context.Background(), "Compare X and Y. X is fast.")

	assert.Equal(t, fallbackNote, got.Note)
	assert.Equal(t, LayoutComparison, got.Layout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), noteParseFallback)
	assert.Contains(t, string(data), noteFallbackUsed)
}

func TestGenerateReplyMissingRequiredFieldsFallsBack(t *testing.T) {
	g := NewForTesting(`{"title": "has no sections"}`)

	got := g.Generate(context.Background(), "Grind the beans. Heat the water.")
	assert.Equal(t, fallbackNote, got.Note)
}

func TestGenerateReplyWithEmptySectionsFallsBack(t *testing.T) {
	g := NewForTesting(`{"title": "T", "sections": []}`)

	got := g.Generate(context.Background(), "Grind the beans. Heat the water.")
	assert.Equal(t, fallbackNote, got.Note)
	require.NotEmpty(t, got.Sections)
}

func TestGenerateWithoutInvokerGoesStraightToFallback(t *testing.T) {
	g := New(nil)

	got := g.Generate(context.Background(), "Compare apples and oranges.")
	assert.Equal(t, fallbackNote, got.Note)
	assert.Equal(t, LayoutComparison, got.Layout)
}

func TestGeneratePanicYieldsSystemErrorResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.log")
	g := newTestGenerator(&panicInvoker{}, WithTranscript(path))

	got := g.Generate(context.Background(), "anything at all")

	assert.Equal(t, "SYSTEM ERROR", got.Title)
	assert.Equal(t, "SYSTEM_ERROR", got.Note)
	require.Len(t, got.Sections, 2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), noteFatalError)
}

func TestGenerateAlwaysReturnsValidResult(t *testing.T) {
	inputs := []string{
		"Compare X and Y.",
		"A single statement without punctuation",
		strings.Repeat("long. ", 50),
		"priority tiers everywhere",
	}
	g := New(nil)

	for _, input := range inputs {
		got := g.Generate(context.Background(), input)
		assert.NotEmpty(t, got.Title, "input %q", input)
		assert.Contains(t, []Layout{LayoutProcessFlow, LayoutConceptMap, LayoutHierarchy, LayoutComparison}, got.Layout)
		assert.Contains(t, []VisualFlow{FlowTopToBottom, FlowLeftToRight, FlowCenterRadial, FlowLayered}, got.VisualFlow)
		assert.NotEmpty(t, got.Sections, "input %q", input)
	}
}

func TestGenerateTranscriptRecordsModelUsed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.log")
	g := NewForTesting(currentSchemaReply, WithTranscript(path))

	g.Generate(context.Background(), "How do I brew coffee?")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Used "+string(defaultPrimaryModel))
	assert.Contains(t, string(data), "How do I brew coffee?")
}

func TestGenerateWithCustomModels(t *testing.T) {
	inv := &scriptedInvoker{
		replies: map[Model]string{"tiny-model": currentSchemaReply},
		errs:    map[Model]error{"big-model": errors.New("down")},
	}
	g := newTestGenerator(inv, WithModels("big-model", "tiny-model"))

	got := g.Generate(context.Background(), "anything")

	assert.Equal(t, "Coffee Brewing", got.Title)
	assert.Equal(t, []Model{"big-model", "tiny-model"}, inv.calls)
}

func TestParseDocumentRepairsSloppyJSON(t *testing.T) {
	// Trailing comma and single quotes are repairable, so the reply should
	// survive instead of falling back.
	sloppy := `{'title': 'T', 'sections': [{'type': 'box', 'text': 'A'},]}`
	doc, err := parseDocument(sloppy)
	require.NoError(t, err)
	assert.Equal(t, "T", doc["title"])
}

func TestParseDocumentRejectsNonObjects(t *testing.T) {
	_, err := parseDocument("a plain sentence, no structure")
	assert.Error(t, err)
}

func TestParseDocumentRequiresTitleAndSections(t *testing.T) {
	_, err := parseDocument(`{"sections": []}`)
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = parseDocument(`{"title": "T"}`)
	require.ErrorIs(t, err, ErrMissingFields)
}
