package agent

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// Generator is the text-generation service behind both the planner
// and the solver. Implementations may block on network I/O; callers
// bound them with the context.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LLMGenerator adapts a langchaingo model to the Generator contract.
type LLMGenerator struct {
	Model llms.Model
}

func NewLLMGenerator(model llms.Model) *LLMGenerator {
	return &LLMGenerator{Model: model}
}

func (g *LLMGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.Model, prompt)
}
