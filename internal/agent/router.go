package agent

import "github.com/234quix/rewoo/internal/evidence"

// Phase is the completion router's verdict for the next cycle.
type Phase int

const (
	// PhaseExecute means at least one executor cycle is still owed.
	PhaseExecute Phase = iota
	// PhaseSolve means every step has evidence and the run moves on
	// to synthesis.
	PhaseSolve
)

func (p Phase) String() string {
	if p == PhaseSolve {
		return "solve"
	}
	return "execute"
}

// NextPhase is the transition guard between executing and solving. It
// is a pure function of the plan size and the store, re-evaluated
// after every executor cycle.
//
// An uninitialized store always routes to Execute, even for an empty
// plan: the worker's first cycle is what initializes the store, and
// for a plan with no steps that cycle is a no-op that unblocks the
// len==len comparison below.
func NextPhase(planLen int, store *evidence.Store) Phase {
	if !store.Initialized() {
		return PhaseExecute
	}
	if store.Len() == planLen {
		return PhaseSolve
	}
	return PhaseExecute
}
