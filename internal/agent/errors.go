package agent

import "fmt"

// ToolNotFoundError means a parsed step named a tool with no registry
// entry. This is a configuration problem, not a transient failure:
// the run aborts immediately with no retry.
type ToolNotFoundError struct {
	Tool       string
	Step       string
	Suggestion string
}

func (e *ToolNotFoundError) Error() string {
	msg := fmt.Sprintf("tool %q (step %s) is not registered", e.Tool, e.Step)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// ToolError wraps a failed tool invocation, including a dispatch
// denied by policy. The core does not retry: hosts wanting retry wrap
// their registry entries.
type ToolError struct {
	Tool string
	Step string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %q (step %s) failed: %v", e.Tool, e.Step, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// GenerationError wraps a failed call to the generation service, in
// either the planning or the solving stage.
type GenerationError struct {
	Stage string // "plan" or "solve"
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed during %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
