package agent

import (
	"context"
	"fmt"
	"strconv"

	"github.com/234quix/rewoo/internal/tools"
)

// fakeGenerator replays canned responses: first call gets the first
// entry, second call the second, and so on.
type fakeGenerator struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	i := g.calls
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return "", fmt.Errorf("unexpected generation call %d", i)
}

type fakeTool struct {
	name string
	fn   func(ctx context.Context, input string) (string, error)
}

func (t *fakeTool) Name() string        { return t.name }
func (t *fakeTool) Description() string { return "fake " + t.name }
func (t *fakeTool) Execute(ctx context.Context, input string) (string, error) {
	return t.fn(ctx, input)
}

// calcRegistry registers a Calc fake that evaluates "a*b" and "a+b"
// over integers, enough for the worker scenarios.
func calcRegistry() *tools.Registry {
	registry := tools.NewRegistry()
	registry.Register(&fakeTool{name: "Calc", fn: func(_ context.Context, input string) (string, error) {
		for _, op := range []byte{'+', '*'} {
			for i := 0; i < len(input); i++ {
				if input[i] != op {
					continue
				}
				a, errA := strconv.Atoi(input[:i])
				b, errB := strconv.Atoi(input[i+1:])
				if errA != nil || errB != nil {
					return "", fmt.Errorf("bad expression %q", input)
				}
				if op == '+' {
					return strconv.Itoa(a + b), nil
				}
				return strconv.Itoa(a * b), nil
			}
		}
		return "", fmt.Errorf("bad expression %q", input)
	}})
	return registry
}
