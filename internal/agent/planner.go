package agent

import (
	"context"
	"log"

	"github.com/234quix/rewoo/internal/observability"
	"github.com/234quix/rewoo/internal/plan"
	"github.com/234quix/rewoo/internal/tools"
)

// Planner turns a task into a plan with a single generation call.
// The plan is never revised afterwards; whatever the model produced
// in that one pass is the plan for the whole run.
type Planner struct {
	Generator Generator
	Registry  *tools.Registry
	Prompts   *PromptManager
	Logger    *observability.Logger
}

func NewPlanner(gen Generator, registry *tools.Registry, prompts *PromptManager, logger *observability.Logger) *Planner {
	return &Planner{
		Generator: gen,
		Registry:  registry,
		Prompts:   prompts,
		Logger:    logger,
	}
}

// Plan generates and parses the plan for a task. A plan with zero
// steps is degenerate but legal: the run proceeds straight to the
// solver over an empty evidence document.
func (p *Planner) Plan(ctx context.Context, runID, task string) (*plan.Plan, error) {
	prompt := p.Prompts.PlannerPrompt(p.Registry.Describe(), task)

	raw, err := p.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, &GenerationError{Stage: "plan", Err: err}
	}
	if p.Logger != nil {
		p.Logger.LogLLM(runID, prompt, raw)
	}

	parsed := plan.Parse(raw)
	if parsed.Len() == 0 {
		log.Printf("Warning: plan text for run %s contained no parseable steps", runID)
	}
	if p.Logger != nil {
		p.Logger.LogPlan(runID, parsed)
	}
	return parsed, nil
}
