package plan

import "regexp"

// stepPattern matches one plan block:
//
//	Plan: <reasoning>
//	#E<n> = <tool>[<args>]
//
// The reasoning runs to the end of its line, the variable may sit on
// the same line or the next, and the argument is any text up to the
// closing bracket. Text between blocks is ignored.
var stepPattern = regexp.MustCompile(`Plan:\s*(.+)\s*(#E\d+)\s*=\s*(\w+)\s*\[([^\]]*)\]`)

// Parse scans plan text and returns the steps in source order.
//
// The parser is deliberately permissive: blocks that do not match the
// grammar are skipped silently rather than failing the whole plan,
// because model output routinely carries stray prose around the
// blocks. Zero matches yields an empty (degenerate) plan, not an
// error; the router resolves that case by solving over no evidence.
func Parse(text string) *Plan {
	matches := stepPattern.FindAllStringSubmatch(text, -1)
	p := &Plan{}
	for _, m := range matches {
		p.Steps = append(p.Steps, Step{
			Reasoning: trimReasoning(m[1]),
			Name:      m[2],
			Tool:      m[3],
			Args:      m[4],
		})
	}
	return p
}

func trimReasoning(s string) string {
	// The greedy reasoning group can drag trailing whitespace with it.
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}
