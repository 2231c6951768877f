package tools

import (
	"context"
	"strings"
	"testing"
)

type staticTool struct {
	name, desc string
}

func (s *staticTool) Name() string        { return s.name }
func (s *staticTool) Description() string { return s.desc }
func (s *staticTool) Execute(ctx context.Context, input string) (string, error) {
	return input, nil
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&staticTool{name: "LLM", desc: "a model"})
	r.Register(&staticTool{name: "Calc", desc: "arithmetic"})
	r.Register(&staticTool{name: "Google", desc: "search"})

	names := r.Names()
	want := []string{"Calc", "Google", "LLM"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestRegistry_Describe(t *testing.T) {
	r := NewRegistry()
	r.Register(&staticTool{name: "Google", desc: "search the web"})

	desc := r.Describe()
	if !strings.Contains(desc, "- Google[input]: search the web") {
		t.Errorf("unexpected description block: %q", desc)
	}
}

func TestRegistry_Suggest(t *testing.T) {
	r := NewRegistry()
	r.Register(&staticTool{name: "Google", desc: "search"})
	r.Register(&staticTool{name: "Calc", desc: "arithmetic"})

	if got := r.Suggest("Gogle"); got != "Google" {
		t.Errorf("expected Google, got %q", got)
	}
	if got := r.Suggest("calc"); got != "Calc" {
		t.Errorf("case difference is a near miss, got %q", got)
	}
	if got := r.Suggest("WolframAlpha"); got != "" {
		t.Errorf("nothing is close to WolframAlpha, got %q", got)
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry()
	if r.Get("Google") != nil {
		t.Error("missing tool must resolve to nil")
	}
}
