package plan

import (
	"fmt"
	"strings"
)

// Step is one planned action: free-text reasoning, a unique output
// variable of the form #E<n>, a tool name, and an argument template
// that may reference earlier variables.
type Step struct {
	Reasoning string `json:"reasoning"`
	Name      string `json:"name"`
	Tool      string `json:"tool"`
	Args      string `json:"args"`
}

// String renders the step in its canonical block form. Parsing the
// rendered text yields the same step back.
func (s Step) String() string {
	return fmt.Sprintf("Plan: %s\n%s = %s[%s]", s.Reasoning, s.Name, s.Tool, s.Args)
}

// Plan is the ordered sequence of steps produced once per run. It is
// never revised after parsing; step order is execution order.
type Plan struct {
	Steps []Step `json:"steps"`
}

func (p *Plan) Len() int {
	return len(p.Steps)
}

// At returns the step at the given 1-based index.
func (p *Plan) At(i int) Step {
	return p.Steps[i-1]
}

func (p *Plan) String() string {
	blocks := make([]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		blocks = append(blocks, s.String())
	}
	return strings.Join(blocks, "\n")
}
