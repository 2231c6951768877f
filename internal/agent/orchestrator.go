package agent

import (
	"context"

	"github.com/google/uuid"

	"github.com/234quix/rewoo/internal/evidence"
	"github.com/234quix/rewoo/internal/observability"
	"github.com/234quix/rewoo/internal/plan"
)

// State is one node of the run state machine.
type State string

const (
	StateStart     State = "start"
	StatePlanning  State = "planning"
	StateRouting   State = "routing"
	StateExecuting State = "executing"
	StateSolving   State = "solving"
	StateDone      State = "done"
)

// Outcome is what a run hands back to the host: the answer plus the
// full trace for observability. On a failed run FinalAnswer is empty
// and Plan/Evidence carry whatever was produced before the failure.
type Outcome struct {
	RunID       string             `json:"run_id"`
	Task        string             `json:"task"`
	FinalAnswer string             `json:"final_answer"`
	Plan        *plan.Plan         `json:"plan"`
	Evidence    []evidence.Binding `json:"evidence"`
}

// Observer receives a notification after every state transition with
// the current partial trace. Purely observational; returning does not
// influence the run.
type Observer interface {
	OnTransition(state State, outcome Outcome)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(state State, outcome Outcome)

func (f ObserverFunc) OnTransition(state State, outcome Outcome) {
	f(state, outcome)
}

// Orchestrator drives one task through plan-once, execute-per-step,
// then solve. There is deliberately no edge back to planning: the
// plan from the single planning pass is final.
type Orchestrator struct {
	Planner  *Planner
	Worker   *Worker
	Solver   *Solver
	Logger   *observability.Logger
	Observer Observer
}

func NewOrchestrator(planner *Planner, worker *Worker, solver *Solver, logger *observability.Logger) *Orchestrator {
	return &Orchestrator{
		Planner: planner,
		Worker:  worker,
		Solver:  solver,
		Logger:  logger,
	}
}

// Run executes one full task. Each run owns its own evidence store,
// so independent runs may proceed concurrently.
func (o *Orchestrator) Run(ctx context.Context, task string) (*Outcome, error) {
	runID := uuid.NewString()
	store := evidence.NewStore()
	outcome := &Outcome{RunID: runID, Task: task, Plan: &plan.Plan{}}

	o.notify(StatePlanning, outcome, store)
	p, err := o.Planner.Plan(ctx, runID, task)
	if err != nil {
		return outcome, err
	}
	outcome.Plan = p

	for {
		o.notify(StateRouting, outcome, store)
		if NextPhase(p.Len(), store) == PhaseSolve {
			break
		}

		o.notify(StateExecuting, outcome, store)
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		if err := o.Worker.ExecuteNext(ctx, runID, p, store); err != nil {
			outcome.Evidence = store.Snapshot()
			return outcome, err
		}
		outcome.Evidence = store.Snapshot()
		if o.Logger != nil {
			o.Logger.LogStep(runID, store.Len(), p.Len())
		}
	}

	o.notify(StateSolving, outcome, store)
	answer, err := o.Solver.Solve(ctx, runID, task, p, store)
	if err != nil {
		return outcome, err
	}
	outcome.FinalAnswer = answer
	outcome.Evidence = store.Snapshot()
	if o.Logger != nil {
		o.Logger.LogSolve(runID, answer)
	}

	o.notify(StateDone, outcome, store)
	return outcome, nil
}

func (o *Orchestrator) notify(state State, outcome *Outcome, store *evidence.Store) {
	if o.Observer == nil {
		return
	}
	snapshot := *outcome
	snapshot.Evidence = store.Snapshot()
	o.Observer.OnTransition(state, snapshot)
}
