package infographic

import (
	"context"
	"log/slog"
)

// scriptedInvoker returns canned replies per model, recording call order.
type scriptedInvoker struct {
	replies map[Model]string
	errs    map[Model]error
	calls   []Model
}

func (s *scriptedInvoker) Generate(ctx context.Context, model Model, prompt string) (string, error) {
	s.calls = append(s.calls, model)
	if err, ok := s.errs[model]; ok {
		return "", err
	}
	return s.replies[model], nil
}

// NewForTesting creates a Generator wired to a fixed reply so tests don't
// need a real client.
func NewForTesting(reply string, opts ...Option) *Generator {
	inv := &scriptedInvoker{replies: map[Model]string{
		defaultPrimaryModel:   reply,
		defaultSecondaryModel: reply,
	}}
	opts = append([]Option{WithInvoker(inv)}, opts...)
	return NewWithLogger(nil, slog.Default(), opts...)
}
