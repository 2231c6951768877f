package agent

import (
	"context"
	"strings"

	"github.com/234quix/rewoo/internal/evidence"
	"github.com/234quix/rewoo/internal/observability"
	"github.com/234quix/rewoo/internal/plan"
)

// Solver synthesizes the final answer from the full plan and the
// completed evidence store with a single generation call.
type Solver struct {
	Generator Generator
	Prompts   *PromptManager
	Logger    *observability.Logger
}

func NewSolver(gen Generator, prompts *PromptManager, logger *observability.Logger) *Solver {
	return &Solver{
		Generator: gen,
		Prompts:   prompts,
		Logger:    logger,
	}
}

// EvidenceDocument renders the plan with all evidence substituted in,
// one canonical block per step. Both the argument and the step's own
// variable token are resolved against the final store, so the
// generation service never sees a raw #E placeholder for a step that
// produced evidence.
func EvidenceDocument(p *plan.Plan, store *evidence.Store) string {
	var b strings.Builder
	for i := 1; i <= p.Len(); i++ {
		step := p.At(i)
		resolved := plan.Step{
			Reasoning: step.Reasoning,
			Name:      store.Substitute(step.Name),
			Tool:      step.Tool,
			Args:      store.Substitute(step.Args),
		}
		b.WriteString(resolved.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Solve produces the final answer. The generated text is the answer,
// taken verbatim. An empty plan yields an empty evidence document,
// which is legal: the model answers from the task alone.
func (s *Solver) Solve(ctx context.Context, runID, task string, p *plan.Plan, store *evidence.Store) (string, error) {
	prompt := s.Prompts.SolverPrompt(EvidenceDocument(p, store), task)

	answer, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		return "", &GenerationError{Stage: "solve", Err: err}
	}
	if s.Logger != nil {
		s.Logger.LogLLM(runID, prompt, answer)
	}
	return answer, nil
}
