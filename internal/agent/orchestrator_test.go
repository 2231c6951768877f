package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/234quix/rewoo/internal/tools"
)

func newTestOrchestrator(gen Generator, registry *tools.Registry) *Orchestrator {
	prompts := NewPromptManager("")
	return NewOrchestrator(
		NewPlanner(gen, registry, prompts, nil),
		NewWorker(registry, nil, nil),
		NewSolver(gen, prompts, nil),
		nil,
	)
}

const calcPlanText = `Plan: add the numbers
#E1 = Calc[3+4]
Plan: double the sum
#E2 = Calc[#E1*2]`

func TestOrchestrator_FullRun(t *testing.T) {
	gen := &fakeGenerator{responses: []string{calcPlanText, "14"}}
	orch := newTestOrchestrator(gen, calcRegistry())

	outcome, err := orch.Run(context.Background(), "sum of 3 and 4, then double it")
	if err != nil {
		t.Fatal(err)
	}

	if outcome.FinalAnswer != "14" {
		t.Errorf("expected final answer 14, got %q", outcome.FinalAnswer)
	}
	if outcome.Plan.Len() != 2 {
		t.Errorf("expected 2 parsed steps, got %d", outcome.Plan.Len())
	}
	if len(outcome.Evidence) != 2 {
		t.Fatalf("expected 2 evidence bindings, got %d", len(outcome.Evidence))
	}
	if outcome.Evidence[0].Name != "#E1" || outcome.Evidence[0].Value != "7" {
		t.Errorf("unexpected first binding: %+v", outcome.Evidence[0])
	}
	if outcome.Evidence[1].Name != "#E2" || outcome.Evidence[1].Value != "14" {
		t.Errorf("unexpected second binding: %+v", outcome.Evidence[1])
	}
	if gen.calls != 2 {
		t.Errorf("exactly one planning and one solving call expected, got %d", gen.calls)
	}
	if outcome.RunID == "" {
		t.Error("run must carry an ID")
	}
}

func TestOrchestrator_ExactlyNExecutorCycles(t *testing.T) {
	registry := tools.NewRegistry()
	cycles := 0
	registry.Register(&fakeTool{name: "Google", fn: func(context.Context, string) (string, error) {
		cycles++
		return "r", nil
	}})

	planText := strings.Join([]string{
		"Plan: a\n#E1 = Google[q1]",
		"Plan: b\n#E2 = Google[q2]",
		"Plan: c\n#E3 = Google[q3]",
	}, "\n")
	gen := &fakeGenerator{responses: []string{planText, "done"}}
	orch := newTestOrchestrator(gen, registry)

	if _, err := orch.Run(context.Background(), "task"); err != nil {
		t.Fatal(err)
	}
	if cycles != 3 {
		t.Errorf("expected exactly 3 tool invocations, got %d", cycles)
	}
}

func TestOrchestrator_DegeneratePlanStillSolves(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"I cannot make a plan, sorry.", "best effort answer"}}
	orch := newTestOrchestrator(gen, calcRegistry())

	outcome, err := orch.Run(context.Background(), "task")
	if err != nil {
		t.Fatal(err)
	}
	if outcome.FinalAnswer != "best effort answer" {
		t.Errorf("zero-step plan must still produce an answer, got %q", outcome.FinalAnswer)
	}
	if outcome.Plan.Len() != 0 || len(outcome.Evidence) != 0 {
		t.Errorf("degenerate run must carry an empty trace: %+v", outcome)
	}
}

func TestOrchestrator_ToolNotFoundSurfacesPartialTrace(t *testing.T) {
	planText := "Plan: add\n#E1 = Calc[3+4]\nPlan: search\n#E2 = Gogle[#E1]"
	gen := &fakeGenerator{responses: []string{planText, "should never be used"}}
	orch := newTestOrchestrator(gen, calcRegistry())

	outcome, err := orch.Run(context.Background(), "task")
	var notFound *ToolNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ToolNotFoundError, got %v", err)
	}
	if outcome.FinalAnswer != "" {
		t.Error("aborted run must not carry a final answer")
	}
	if len(outcome.Evidence) != 1 || outcome.Evidence[0].Value != "7" {
		t.Errorf("partial trace must keep prior bindings: %+v", outcome.Evidence)
	}
	if gen.calls != 1 {
		t.Errorf("the solver must never run after an abort, got %d generation calls", gen.calls)
	}
}

func TestOrchestrator_PlanningFailure(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("provider down")}}
	orch := newTestOrchestrator(gen, calcRegistry())

	outcome, err := orch.Run(context.Background(), "task")
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Stage != "plan" {
		t.Errorf("expected plan stage, got %q", genErr.Stage)
	}
	if outcome == nil || outcome.Plan.Len() != 0 {
		t.Error("failed planning must still return an empty trace")
	}
}

func TestOrchestrator_ObserverSeesTransitions(t *testing.T) {
	gen := &fakeGenerator{responses: []string{calcPlanText, "14"}}
	orch := newTestOrchestrator(gen, calcRegistry())

	var states []State
	orch.Observer = ObserverFunc(func(state State, outcome Outcome) {
		states = append(states, state)
	})

	if _, err := orch.Run(context.Background(), "task"); err != nil {
		t.Fatal(err)
	}

	if len(states) == 0 || states[0] != StatePlanning {
		t.Fatalf("first notification must be planning, got %v", states)
	}
	if states[len(states)-1] != StateDone {
		t.Errorf("last notification must be done, got %v", states)
	}

	executing := 0
	for _, s := range states {
		if s == StateExecuting {
			executing++
		}
	}
	if executing != 2 {
		t.Errorf("expected 2 executing notifications for a 2-step plan, got %d", executing)
	}

	// No transition ever goes back to planning after the first.
	for i, s := range states[1:] {
		if s == StatePlanning {
			t.Errorf("replanning observed at transition %d", i+1)
		}
	}
}

func TestOrchestrator_ContextCancellation(t *testing.T) {
	gen := &fakeGenerator{responses: []string{calcPlanText, "14"}}
	orch := newTestOrchestrator(gen, calcRegistry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := orch.Run(ctx, "task")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
