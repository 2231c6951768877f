package agent

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPromptManager_Defaults(t *testing.T) {
	pm := NewPromptManager("")

	prompt := pm.PlannerPrompt("- Google[input]: search", "who won?")
	if !strings.Contains(prompt, "- Google[input]: search") {
		t.Error("planner prompt missing tool list")
	}
	if !strings.Contains(prompt, "Task: who won?") {
		t.Error("planner prompt missing task")
	}
	if strings.Contains(prompt, "{{tools}}") || strings.Contains(prompt, "{{task}}") {
		t.Error("placeholders left in planner prompt")
	}

	solver := pm.SolverPrompt("Plan: x\n#E1 = Google[y]", "who won?")
	if !strings.Contains(solver, "#E1 = Google[y]") {
		t.Error("solver prompt missing evidence document")
	}
	if !strings.Contains(solver, "Task: who won?") {
		t.Error("solver prompt missing task")
	}
}

func TestPromptManager_LoadsFromDirectory(t *testing.T) {
	tempDir := t.TempDir()
	custom := "Custom planner for {{task}} with {{tools}}"
	if err := os.WriteFile(filepath.Join(tempDir, "planner.md"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	pm := NewPromptManager(tempDir)
	prompt := pm.PlannerPrompt("TOOLS", "TASK")
	if prompt != "Custom planner for TASK with TOOLS" {
		t.Errorf("custom template not used: %q", prompt)
	}

	// Missing solver.md falls back to the default.
	solver := pm.SolverPrompt("EV", "TASK")
	if !strings.Contains(solver, "EV") || !strings.Contains(solver, "Task: TASK") {
		t.Errorf("fallback solver prompt broken: %q", solver)
	}
}
