package infographic

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTextRequiresClient(t *testing.T) {
	_, err := GenerateText(context.Background(), nil, slog.Default(),
		WithModelName("gemini-2.5-flash"),
		WithPrompt("hello"),
	)
	assert.ErrorContains(t, err, "client not initialized")
}

func TestGenaiInvokerRequiresClient(t *testing.T) {
	inv := &genaiInvoker{log: slog.Default()}
	_, err := inv.Generate(context.Background(), defaultPrimaryModel, "hello")
	assert.ErrorContains(t, err, "client not initialized")
}

func TestGenerateOptions(t *testing.T) {
	var cfg generateConfig
	WithModelName("m")(&cfg)
	WithPrompt("p")(&cfg)

	assert.Equal(t, "m", cfg.ModelName)
	assert.Equal(t, "p", cfg.Prompt)
}
