// Package evidence holds the per-run result store: an append-only
// mapping from plan variable names (#E1, #E2, ...) to the string each
// step produced. A single worker owns the store for the duration of a
// run, so no locking is needed.
package evidence

import (
	"fmt"
	"regexp"
)

var varPattern = regexp.MustCompile(`#E\d+`)

// Store grows by exactly one binding per executed step and never
// rebinds a name. A fresh store is "uninitialized", which is distinct
// from initialized-but-empty: the router sends an uninitialized store
// through one executor cycle even when the plan has no steps.
type Store struct {
	values      map[string]string
	order       []string
	initialized bool
}

func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

// Init marks the store as having been through an executor cycle
// without adding a binding. Used when the plan has no step to run.
func (s *Store) Init() {
	s.initialized = true
}

// Initialized reports whether any executor cycle has touched the store.
func (s *Store) Initialized() bool {
	return s.initialized
}

func (s *Store) Len() int {
	return len(s.order)
}

// Bind records the result of a step. The first write wins; binding an
// already-bound name is a programming error surfaced to the caller.
func (s *Store) Bind(name, value string) error {
	if _, ok := s.values[name]; ok {
		return fmt.Errorf("evidence: %s is already bound", name)
	}
	s.initialized = true
	s.values[name] = value
	s.order = append(s.order, name)
	return nil
}

// Get returns the bound value for name, if any.
func (s *Store) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Substitute replaces every literal occurrence of a bound variable
// token in text with its value, in one left-to-right pass over the
// original text. Substituted values are never re-scanned, so a value
// containing another variable token stays as-is, and unbound
// references pass through untouched. Matching whole tokens also keeps
// #E1 from eating the prefix of #E10.
func (s *Store) Substitute(text string) string {
	return varPattern.ReplaceAllStringFunc(text, func(tok string) string {
		if v, ok := s.values[tok]; ok {
			return v
		}
		return tok
	})
}

// Unresolved returns the variable tokens referenced by text that have
// no binding yet. Diagnostic only; substitution never fails on them.
func (s *Store) Unresolved(text string) []string {
	var missing []string
	for _, tok := range varPattern.FindAllString(text, -1) {
		if _, ok := s.values[tok]; !ok {
			missing = append(missing, tok)
		}
	}
	return missing
}

// Snapshot returns the bindings in insertion order. The caller gets a
// copy; the store stays append-only.
func (s *Store) Snapshot() []Binding {
	out := make([]Binding, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Binding{Name: name, Value: s.values[name]})
	}
	return out
}

// Binding is one variable-to-result entry in the store.
type Binding struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
