package infographic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"google.golang.org/genai"
)

// Default model identifiers, tried in priority order.
const (
	defaultPrimaryModel   Model = "gemini-2.5-flash"
	defaultSecondaryModel Model = "gemini-2.5-pro"
)

// Generator is the entry point external callers invoke. It sequences the
// remote call, the cleaning/parsing/normalization chain, and the heuristic
// fallback.
type Generator struct {
	invoker    Invoker
	prompts    PromptProvider
	transcript *Transcript
	primary    Model
	secondary  Model
	log        *slog.Logger
}

// New returns a Generator that logs with slog.Default(). A nil client leaves
// the remote capability unconfigured: every request then resolves through the
// local fallback generator.
func New(client *genai.Client, opts ...Option) *Generator {
	return NewWithLogger(client, slog.Default(), opts...)
}

// NewWithLogger lets the caller supply their own logger.
func NewWithLogger(client *genai.Client, log *slog.Logger, opts ...Option) *Generator {
	if log == nil {
		log = slog.Default()
	}
	g := &Generator{
		prompts:   defaultPrompts(),
		primary:   defaultPrimaryModel,
		secondary: defaultSecondaryModel,
		log:       log,
	}
	if client != nil {
		g.invoker = &genaiInvoker{client: client, log: log}
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.transcript != nil {
		g.transcript.log = g.log
	}
	return g
}

// Generate produces an infographic description for userText. It never
// returns an error: every failure path resolves to a concrete Result, with
// failure context carried only by the Note field and the transcript.
func (g *Generator) Generate(ctx context.Context, userText string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("unexpected failure during generation", "panic", r)
			g.transcript.Record(userText, fmt.Sprintf("Fatal Error: %v", r), noteFatalError)
			result = systemErrorResult()
		}
	}()

	userText = strings.TrimSpace(userText)
	if userText == "" {
		g.log.Debug("empty input, returning input error result")
		return inputErrorResult()
	}

	if g.invoker != nil {
		if res, err := g.generateRemote(ctx, userText); err == nil {
			return res
		}
		// Failure already recorded; degrade to the local generator.
	}

	g.log.Info("using fallback generator")
	fallback := FallbackFromText(userText)
	if raw, err := json.Marshal(fallback); err == nil {
		g.transcript.Record(userText, string(raw), noteFallbackUsed)
	}
	return fallback
}

// generateRemote runs the primary/secondary model chain and pipes the reply
// through Clean, parse and Normalize. Any error return means the caller
// should fall back locally; the diagnostic record is already written.
func (g *Generator) generateRemote(ctx context.Context, userText string) (Result, error) {
	prompt, err := g.prompts.GetPrompt(promptTag, 1)
	if err != nil {
		g.log.Error("prompt template unavailable", "tag", promptTag, "error", err)
		g.transcript.Record(userText, "Prompt Error: "+err.Error(), noteAPIFallback)
		return Result{}, err
	}

	raw, model, err := g.callModels(ctx, prompt+"\n\n"+userText)
	if err != nil {
		g.log.Error("remote generation failed", "error", err)
		g.transcript.Record(userText, "API Error: "+err.Error(), noteAPIFallback)
		return Result{}, err
	}
	g.transcript.Record(userText, raw, "Used "+string(model))

	doc, err := parseDocument(raw)
	if err != nil {
		g.log.Error("parsing model reply failed", "error", err)
		g.transcript.Record(userText, "JSON Error: "+err.Error(), noteParseFallback)
		return Result{}, err
	}

	res := Normalize(doc)
	if len(res.Sections) == 0 {
		err := fmt.Errorf("%w: sections", ErrMissingFields)
		g.transcript.Record(userText, "JSON Error: "+err.Error(), noteParseFallback)
		return Result{}, err
	}
	return res, nil
}

// callModels attempts the primary model and retries once with the secondary
// model on any failure. No further retries.
func (g *Generator) callModels(ctx context.Context, prompt string) (string, Model, error) {
	raw, err := g.invoker.Generate(ctx, g.primary, prompt)
	if err == nil {
		return raw, g.primary, nil
	}
	g.log.Warn("primary model failed, retrying with secondary", "model", g.primary, "error", err)

	raw, err = g.invoker.Generate(ctx, g.secondary, prompt)
	if err != nil {
		return "", g.secondary, err
	}
	return raw, g.secondary, nil
}

// parseDocument decodes a cleaned model reply into a loose document map.
// Malformed JSON gets one repair attempt before the reply is declared
// unusable, and the required top-level fields must be present.
func parseDocument(raw string) (map[string]any, error) {
	cleaned := Clean(raw)

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(cleaned)
		if repairErr != nil {
			return nil, fmt.Errorf("unmarshal model reply: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
			return nil, fmt.Errorf("unmarshal repaired model reply: %w", err)
		}
	}

	if _, ok := doc["title"]; !ok {
		return nil, fmt.Errorf("%w: title", ErrMissingFields)
	}
	if _, ok := doc["sections"]; !ok {
		return nil, fmt.Errorf("%w: sections", ErrMissingFields)
	}
	return doc, nil
}

// inputErrorResult is returned for empty or whitespace-only input. No remote
// call is attempted and no fallback note is attached.
func inputErrorResult() Result {
	return Result{
		Title:      "ERROR",
		Layout:     LayoutProcessFlow,
		VisualFlow: FlowTopToBottom,
		Sections: []Section{{
			Role:         RoleMainConcept,
			Text:         "No input provided.",
			Color:        ColorRed,
			Emphasis:     EmphasisPrimary,
			VisualWeight: WeightHeavy,
		}},
	}
}

// systemErrorResult is the last-resort result for failures the pipeline did
// not anticipate.
func systemErrorResult() Result {
	return Result{
		Title:      "SYSTEM ERROR",
		Layout:     LayoutProcessFlow,
		VisualFlow: FlowTopToBottom,
		Sections: []Section{
			{
				Role:         RoleMainConcept,
				Text:         "An unexpected error occurred.",
				Color:        ColorRed,
				Emphasis:     EmphasisPrimary,
				VisualWeight: WeightHeavy,
			},
			{
				Role:         RoleSupportingPoint,
				Text:         "Please try again or contact support.",
				Color:        ColorOrange,
				Emphasis:     EmphasisSecondary,
				VisualWeight: WeightMedium,
			},
		},
		Note: "SYSTEM_ERROR",
	}
}
