// Package gradient routes gradient requests to the configured
// differentiation backend and validates the results.
package gradient

import (
	"fmt"

	"github.com/score-ml/score/internal/backend"
	"github.com/score-ml/score/internal/forward"
	"github.com/score-ml/score/internal/model"
	"github.com/score-ml/score/internal/reverse"
)

// Result pairs the log density with its gradient. The gradient has the
// same length and ordering as the parameter vector, and the value is the
// primal produced during the same evaluation that produced the gradient.
type Result struct {
	Value    float64
	Gradient []float64
}

// Handle carries the backend information for a consumer of gradients.
//
// An unbound handle resolves the process-wide registry at every call. A
// bound handle keeps the selection it was constructed with, so concurrent
// samplers configured at different times never interfere through the
// global registry.
type Handle struct {
	sel   backend.Selection
	bound bool
}

// NewHandle creates an unbound handle.
func NewHandle() *Handle {
	return &Handle{}
}

// Bind creates a handle fixed to the given selection.
//
// Typical use binds the registry snapshot at sampler construction:
//
//	h := gradient.Bind(backend.Resolve())
func Bind(sel backend.Selection) *Handle {
	return &Handle{sel: sel, bound: true}
}

// Selection resolves the handle's effective backend selection.
// A nil handle behaves like an unbound one.
func (h *Handle) Selection() backend.Selection {
	if h != nil && h.bound {
		return h.sel
	}
	return backend.Resolve()
}

// ValueAndGradient computes the log density and its gradient at theta,
// routed through the evaluator matching the handle's backend selection.
//
// Routing is synchronous and deterministic; there are no retries. Faults
// from model evaluation propagate unchanged.
func ValueAndGradient(theta []float64, ctx model.Context, ev model.Evaluator, h *Handle) (Result, error) {
	sel := h.Selection()

	var (
		value float64
		grad  []float64
		err   error
	)
	switch sel.Kind {
	case backend.ForwardMode:
		value, grad, err = forward.New(sel.ChunkSize).ValueAndGradient(theta, ctx, ev)
	case backend.ReverseTracked:
		value, grad, err = reverse.Tracked{}.ValueAndGradient(theta, ctx, ev)
	case backend.ReversePullback:
		value, grad, err = reverse.Pullback{}.ValueAndGradient(theta, ctx, ev)
	default:
		return Result{}, fmt.Errorf("%w: unknown backend kind %v", backend.ErrConfiguration, sel.Kind)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Value: value, Gradient: grad}, nil
}
