package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type FileTool struct {
	Root string
}

func NewFileTool(root string) *FileTool {
	absRoot, _ := filepath.Abs(root)
	return &FileTool{Root: absRoot}
}

func (f *FileTool) Name() string {
	return "File"
}

func (f *FileTool) Description() string {
	return "Access files in the local workspace. Input is 'read <path>', 'list <path>' or 'write <path> <content>'."
}

func (f *FileTool) Execute(ctx context.Context, input string) (string, error) {
	op, rest, _ := strings.Cut(strings.TrimSpace(input), " ")

	switch op {
	case "read":
		target, err := f.resolve(rest)
		if err != nil {
			return "", err
		}
		data, err := os.ReadFile(target)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	case "list":
		if strings.TrimSpace(rest) == "" {
			rest = "."
		}
		target, err := f.resolve(rest)
		if err != nil {
			return "", err
		}
		entries, err := os.ReadDir(target)
		if err != nil {
			return "", fmt.Errorf("failed to list directory: %w", err)
		}
		if len(entries) == 0 {
			return "Directory is empty", nil
		}
		var output strings.Builder
		for _, entry := range entries {
			typeStr := "file"
			if entry.IsDir() {
				typeStr = "dir"
			}
			fmt.Fprintf(&output, "[%s] %s\n", typeStr, entry.Name())
		}
		return output.String(), nil
	case "write":
		name, content, ok := strings.Cut(rest, " ")
		if !ok {
			return "", fmt.Errorf("write needs a path and content")
		}
		target, err := f.resolve(name)
		if err != nil {
			return "", err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
		if err := os.WriteFile(target, []byte(content), 0644); err != nil {
			return "", fmt.Errorf("failed to write file: %w", err)
		}
		return fmt.Sprintf("Successfully wrote to %s", name), nil
	default:
		return "", fmt.Errorf("unknown file operation %q: use 'read', 'list' or 'write'", op)
	}
}

func (f *FileTool) resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("missing path")
	}
	targetPath := filepath.Join(f.Root, name)

	// Keep every access inside the workspace root.
	rel, err := filepath.Rel(f.Root, targetPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("unsafe path attempt: %s", name)
	}
	return targetPath, nil
}
