package infographic

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// GenerateText generates text using the Gemini API via Google GenAI,
// requesting a JSON-formatted response.
func GenerateText(ctx context.Context, client *genai.Client, log *slog.Logger, opts ...GenerateOption) (string, error) {
	var cfg generateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if client == nil {
		return "", fmt.Errorf("client not initialized")
	}
	if cfg.Prompt == "" {
		return "", fmt.Errorf("no prompt provided")
	}

	modelName := cfg.ModelName
	if modelName == "" {
		modelName = string(defaultPrimaryModel)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(cfg.Prompt)}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	log.Debug("generating content", "model", modelName, "prompt_length", len(cfg.Prompt))

	resp, err := client.Models.GenerateContent(ctx, modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no parts in candidate content")
	}
	part := candidate.Content.Parts[0]
	if part.Text == "" {
		return "", fmt.Errorf("no text in first part of response")
	}

	log.Debug("generated content successfully", "model", modelName, "response_length", len(part.Text))
	return part.Text, nil
}

// genaiInvoker implements the Invoker interface using Google GenAI.
type genaiInvoker struct {
	client *genai.Client
	log    *slog.Logger
}

func (gv *genaiInvoker) Generate(ctx context.Context, model Model, prompt string) (string, error) {
	if gv.client == nil {
		return "", fmt.Errorf("client not initialized")
	}
	return GenerateText(ctx, gv.client, gv.log,
		WithModelName(string(model)),
		WithPrompt(prompt),
	)
}
