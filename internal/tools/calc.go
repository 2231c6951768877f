package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dop251/goja"
)

// CalcTool evaluates arithmetic expressions in a throwaway JavaScript
// VM. Plans route exact arithmetic here instead of asking the model
// to do it.
type CalcTool struct {
	Timeout time.Duration
}

func NewCalcTool() *CalcTool {
	return &CalcTool{Timeout: 5 * time.Second}
}

func (c *CalcTool) Name() string {
	return "Calc"
}

func (c *CalcTool) Description() string {
	return "Evaluate an arithmetic expression exactly, e.g. 3+4 or (12.5*8)/3. Input is the bare expression."
}

func (c *CalcTool) Execute(ctx context.Context, input string) (string, error) {
	expr := strings.TrimSpace(input)
	if expr == "" {
		return "", fmt.Errorf("empty expression")
	}

	vm := goja.New()

	// A fresh VM has no host bindings, so the expression can only
	// compute, not reach out. Interrupt guards against runaway loops.
	timer := time.AfterFunc(c.Timeout, func() {
		vm.Interrupt("calc timeout")
	})
	defer timer.Stop()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt("calc canceled")
		case <-done:
		}
	}()
	defer close(done)

	value, err := vm.RunString(expr)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate %q: %v", expr, err)
	}

	return formatCalcResult(value), nil
}

func formatCalcResult(v goja.Value) string {
	exported := v.Export()
	switch n := exported.(type) {
	case int64:
		return fmt.Sprintf("%d", n)
	case float64:
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%g", n)
	default:
		return v.String()
	}
}
