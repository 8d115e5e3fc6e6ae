package lang

import (
	"iter"
	"maps"
	"slices"
)

// Env is the flat, run-scoped mapping from variable name to value.
//
// An Env is created once per run and passed explicitly to the evaluator.
// It is not safe for concurrent use. The zero value is an empty environment.
type Env struct {
	values map[string]int64
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{values: make(map[string]int64)}
}

// Get returns the value bound to name.
func (e *Env) Get(name string) (int64, bool) {
	v, ok := e.values[name]

	return v, ok
}

// Set binds name to value, replacing any prior binding.
func (e *Env) Set(name string, value int64) {
	if e.values == nil {
		e.values = make(map[string]int64)
	}

	e.values[name] = value
}

// Len returns the number of bound names.
func (e *Env) Len() int { return len(e.values) }

// Names returns the bound names in sorted order.
func (e *Env) Names() []string { return sortedKeys(e.values) }

// Snapshot returns a copy of the current bindings.
func (e *Env) Snapshot() map[string]int64 {
	if e.values == nil {
		return map[string]int64{}
	}

	return maps.Clone(e.values)
}

// All returns an iterator over the bindings in sorted name order.
func (e *Env) All() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for _, name := range e.Names() {
			if !yield(name, e.values[name]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the environment.
func (e *Env) Clone() *Env {
	return &Env{values: e.Snapshot()}
}

func sortedKeys[T any](m map[string]T) []string {
	return slices.Sorted(maps.Keys(m))
}
