// Package model defines the boundary between the gradient core and the
// model-evaluation engine.
//
// The core never inspects variable bindings: it touches a context only
// through LogDensity/SetLogDensity and derives fresh contexts with Fork.
// Everything else about model evaluation lives behind the Evaluator
// interface.
package model

import (
	"github.com/score-ml/score/internal/chain"
	"github.com/score-ml/score/internal/scalar"
)

// Context is the mutable evaluation store owned by one in-flight gradient
// computation. Concurrent sharing across simultaneous computations is
// unsupported.
//
// The density mutation surface is float64 only: tracked values cannot be
// stored, so no differentiable state ever leaks into a shared context.
type Context interface {
	// LogDensity returns the last computed log density.
	LogDensity() float64

	// SetLogDensity stores the primal log density.
	SetLogDensity(v float64)

	// Fork derives a fresh context for one evaluation sweep. The fork
	// shares the variable layout but starts with a zero density; mutating
	// it never affects the receiver.
	Fork() Context
}

// Evaluator deterministically recomputes all variable values and the log
// density for the given parameters. The contract is identical for every
// backend: params may be tracked leaves or plain constants, arithmetic
// goes through ops, and only the primal density may be written into ctx.
type Evaluator interface {
	Evaluate(ctx Context, ops chain.Ops, params []*scalar.Node) (*scalar.Node, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(ctx Context, ops chain.Ops, params []*scalar.Node) (*scalar.Node, error)

// Evaluate calls f.
func (f EvaluatorFunc) Evaluate(ctx Context, ops chain.Ops, params []*scalar.Node) (*scalar.Node, error) {
	return f(ctx, ops, params)
}

// Store is a map-backed Context implementation.
type Store struct {
	vals       map[string]float64
	logDensity float64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{vals: make(map[string]float64)}
}

// Get returns the binding for name, or 0 if absent.
func (s *Store) Get(name string) float64 {
	return s.vals[name]
}

// Set records a variable binding.
func (s *Store) Set(name string, v float64) {
	s.vals[name] = v
}

// LogDensity returns the last computed log density.
func (s *Store) LogDensity() float64 {
	return s.logDensity
}

// SetLogDensity stores the primal log density.
func (s *Store) SetLogDensity(v float64) {
	s.logDensity = v
}

// Fork copies the variable bindings into a fresh store with zero density.
func (s *Store) Fork() Context {
	vals := make(map[string]float64, len(s.vals))
	for k, v := range s.vals {
		vals[k] = v
	}
	return &Store{vals: vals}
}
