package infographic

// GenerateOption represents options for a single remote generation call.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	ModelName string
	Prompt    string
}

// WithModelName sets the model name.
func WithModelName(name string) GenerateOption {
	return func(cfg *generateConfig) {
		cfg.ModelName = name
	}
}

// WithPrompt sets the prompt text.
func WithPrompt(prompt string) GenerateOption {
	return func(cfg *generateConfig) {
		cfg.Prompt = prompt
	}
}
