package tools

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type ShellTool struct{}

func NewShellTool() *ShellTool {
	return &ShellTool{}
}

func (s *ShellTool) Name() string {
	return "Shell"
}

func (s *ShellTool) Description() string {
	return "Execute a system shell command and return its combined output. Use with caution. Input is the bare command line."
}

func (s *ShellTool) Execute(ctx context.Context, input string) (string, error) {
	command := strings.TrimSpace(input)
	if command == "" {
		return "", fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	output, err := cmd.CombinedOutput()

	result := strings.TrimSpace(string(output))
	if result == "" {
		result = "(no output)"
	}

	if err != nil {
		return "", fmt.Errorf("command failed: %v\nOutput: %s", err, result)
	}

	return result, nil
}
