package tools

import (
	"context"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Tool is one external capability a plan step can name. Execute
// receives the step's argument with all known evidence variables
// already substituted in, and must either return a usable result
// string or an error; it never reports failure by returning an empty
// success.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, input string) (string, error)
}

// Registry maps tool names to capabilities. The host populates it at
// startup; it is read-only during a run.
type Registry struct {
	Tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{
		Tools: make(map[string]Tool),
	}
}

func (r *Registry) Register(t Tool) {
	r.Tools[t.Name()] = t
}

func (r *Registry) Get(name string) Tool {
	return r.Tools[name]
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Tools))
	for name := range r.Tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe renders one "- Name[input]: description" line per tool,
// used to tell the planner what it may call.
func (r *Registry) Describe() string {
	var lines []string
	for _, name := range r.Names() {
		lines = append(lines, "- "+name+"[input]: "+r.Tools[name].Description())
	}
	return strings.Join(lines, "\n")
}

// Suggest returns the registered name closest to the given unknown
// name, or "" when nothing is plausibly close. Makes misnamed tools
// in generated plans easier to diagnose.
func (r *Registry) Suggest(name string) string {
	best := ""
	bestDist := 3 // more than two edits away is not a near miss
	for _, candidate := range r.Names() {
		d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
