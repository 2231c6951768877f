package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/234quix/rewoo/internal/evidence"
	"github.com/234quix/rewoo/internal/governance"
	"github.com/234quix/rewoo/internal/observability"
	"github.com/234quix/rewoo/internal/plan"
	"github.com/234quix/rewoo/internal/tools"
)

// Worker runs exactly one plan step per call: it picks the next
// unexecuted step, substitutes known evidence into its argument,
// dispatches the named tool, and binds the result. It is the only
// component that mutates the evidence store.
type Worker struct {
	Registry *tools.Registry
	Policy   governance.PolicyEngine
	Logger   *observability.Logger
}

func NewWorker(registry *tools.Registry, policy governance.PolicyEngine, logger *observability.Logger) *Worker {
	return &Worker{
		Registry: registry,
		Policy:   policy,
		Logger:   logger,
	}
}

// ExecuteNext performs the next executor cycle. The next step index
// is 1 for an uninitialized store, and len(store)+1 afterwards. When
// the plan has no step at that index the cycle only initializes the
// store, so the router's next evaluation can route to the solver.
func (w *Worker) ExecuteNext(ctx context.Context, runID string, p *plan.Plan, store *evidence.Store) error {
	next := 1
	if store.Initialized() {
		if store.Len() == p.Len() {
			// Nothing left; the router should have solved already.
			return nil
		}
		next = store.Len() + 1
	}
	if next > p.Len() {
		store.Init()
		return nil
	}

	step := p.At(next)

	args := store.Substitute(step.Args)
	if missing := store.Unresolved(args); len(missing) > 0 {
		// Unbound references are passed through to the tool verbatim
		// rather than failing the run; log them for diagnosis.
		log.Printf("Warning: step %s references unbound variables %v", step.Name, missing)
	}

	tool := w.Registry.Get(step.Tool)
	if tool == nil {
		return &ToolNotFoundError{
			Tool:       step.Tool,
			Step:       step.Name,
			Suggestion: w.Registry.Suggest(step.Tool),
		}
	}

	if w.Policy != nil {
		verdict, err := w.Policy.Evaluate(ctx, governance.Request{Tool: step.Tool, Arguments: args, RunID: runID})
		if err != nil {
			return &ToolError{Tool: step.Tool, Step: step.Name, Err: err}
		}
		if w.Logger != nil {
			w.Logger.LogPolicyCheck(runID, step.Tool, string(verdict.Effect), verdict.Reason)
		}
		if verdict.Effect == governance.EffectDeny {
			return &ToolError{Tool: step.Tool, Step: step.Name, Err: fmt.Errorf("denied by policy: %s", verdict.Reason)}
		}
	}

	if w.Logger != nil {
		w.Logger.LogToolCall(runID, step.Tool, args)
	}

	result, err := tool.Execute(ctx, args)
	if err != nil {
		return &ToolError{Tool: step.Tool, Step: step.Name, Err: err}
	}

	if w.Logger != nil {
		w.Logger.LogToolResult(runID, step.Tool, result)
	}

	return store.Bind(step.Name, result)
}
