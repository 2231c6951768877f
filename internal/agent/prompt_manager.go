package agent

import (
	"os"
	"path/filepath"
	"strings"
)

// PromptManager loads the planner and solver prompt templates from a
// directory, falling back to the built-in defaults when a file is
// missing. Templates use {{tools}}, {{task}} and {{evidence}}
// placeholders.
type PromptManager struct {
	Directory string
}

func NewPromptManager(dir string) *PromptManager {
	return &PromptManager{Directory: dir}
}

const defaultPlannerPrompt = `For the following task, make plans that can solve the problem step by step. For each plan, indicate which external tool together with tool input to retrieve evidence. You can store the evidence into a variable #E that can be called by later tools. (Plan, #E1, Plan, #E2, Plan, ...)

Tools can be one of the following:
{{tools}}

For example,
Task: What is the hometown of the current Wimbledon men's singles champion?
Plan: Find out who the current Wimbledon men's singles champion is.
#E1 = Google[current Wimbledon men's singles champion]
Plan: Find the hometown of the champion identified in the previous step.
#E2 = Google[hometown of #E1]
Plan: Extract the hometown from the search results.
#E3 = LLM[What is the hometown, according to #E2?]

Begin! Describe your plans with rich details. Each Plan should be followed by only one #E.

Task: {{task}}`

const defaultSolverPrompt = `Solve the following task or problem. To solve the problem, we have made step-by-step Plan and retrieved corresponding Evidence to each Plan. Use them with caution since long evidence might contain irrelevant information.

{{evidence}}

Now solve the question or task according to provided Evidence above. Respond with the answer directly with no extra words.

Task: {{task}}
Response:`

// PlannerPrompt composes the plan-generation prompt for a task, given
// the registry's tool description block.
func (pm *PromptManager) PlannerPrompt(tools, task string) string {
	tpl := pm.load("planner.md", defaultPlannerPrompt)
	return strings.NewReplacer("{{tools}}", tools, "{{task}}", task).Replace(tpl)
}

// SolverPrompt composes the final-answer prompt from the evidence
// document and the original task.
func (pm *PromptManager) SolverPrompt(evidence, task string) string {
	tpl := pm.load("solver.md", defaultSolverPrompt)
	return strings.NewReplacer("{{evidence}}", evidence, "{{task}}", task).Replace(tpl)
}

func (pm *PromptManager) load(name, fallback string) string {
	if pm.Directory == "" {
		return fallback
	}
	data, err := os.ReadFile(filepath.Join(pm.Directory, name))
	if err != nil || len(strings.TrimSpace(string(data))) == 0 {
		return fallback
	}
	return string(data)
}
