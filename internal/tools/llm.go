package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// LLMTool lets a plan step ask the model itself for world knowledge
// or light reasoning over earlier evidence, without touching the web.
type LLMTool struct {
	Model llms.Model
}

func NewLLMTool(model llms.Model) *LLMTool {
	return &LLMTool{Model: model}
}

func (l *LLMTool) Name() string {
	return "LLM"
}

func (l *LLMTool) Description() string {
	return "A language model. Useful for general knowledge, reasoning, and math over text already gathered by earlier steps. Input is a plain instruction or question."
}

func (l *LLMTool) Execute(ctx context.Context, input string) (string, error) {
	prompt := strings.TrimSpace(input)
	if prompt == "" {
		return "", fmt.Errorf("empty prompt")
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, l.Model, prompt)
	if err != nil {
		return "", fmt.Errorf("llm call failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}
