// Copyright 2026 Score ML Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ad provides the public API for log-density gradient computation.
//
// The package dispatches a gradient request to one of three
// interchangeable differentiation strategies: a chunked forward-mode
// evaluator and two reverse-mode engines over one tracing tape.
//
// Example:
//
//	import (
//	    "github.com/score-ml/score/ad"
//	    "github.com/score-ml/score/model"
//	)
//
//	func main() {
//	    // Bind the current configuration to this sampler.
//	    h := ad.Bind(ad.Resolve())
//
//	    res, err := ad.ValueAndGradient(theta, ctx, evaluator, h)
//	    if err != nil || !ad.Validate(res.Gradient) {
//	        // reject the proposal
//	    }
//	}
package ad

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/score-ml/score/internal/backend"
	"github.com/score-ml/score/internal/forward"
	"github.com/score-ml/score/internal/gradient"
	"github.com/score-ml/score/internal/model"
)

// Type aliases for public API

// Kind identifies a differentiation strategy.
type Kind = backend.Kind

// Backend kinds.
const (
	ForwardMode     = backend.ForwardMode
	ReverseTracked  = backend.ReverseTracked
	ReversePullback = backend.ReversePullback
)

// DefaultChunkSize is the forward-mode sweep width used when none was
// ever configured.
const DefaultChunkSize = backend.DefaultChunkSize

// ErrConfiguration is returned for invalid backend names or chunk sizes.
var ErrConfiguration = backend.ErrConfiguration

// Selection is the active strategy with its bound parameters.
type Selection = backend.Selection

// Result pairs the log density with its gradient.
type Result = gradient.Result

// Handle carries backend information for a consumer of gradients.
type Handle = gradient.Handle

// SetBackend selects the active strategy: "forward", "tracked" or
// "pullback".
func SetBackend(name string) error {
	return backend.SetBackend(name)
}

// SetChunkSize configures the forward-mode sweep width.
func SetChunkSize(n int) error {
	return backend.SetChunkSize(n)
}

// Resolve snapshots the process-wide backend selection.
func Resolve() Selection {
	return backend.Resolve()
}

// NewHandle creates a handle that resolves the process-wide selection at
// every call.
func NewHandle() *Handle {
	return gradient.NewHandle()
}

// Bind creates a handle fixed to the given selection, isolating its owner
// from later global reconfiguration.
func Bind(sel Selection) *Handle {
	return gradient.Bind(sel)
}

// ValueAndGradient computes the log density and its gradient at theta,
// routed through the backend selected by h.
func ValueAndGradient(theta []float64, ctx model.Context, ev model.Evaluator, h *Handle) (Result, error) {
	return gradient.ValueAndGradient(theta, ctx, ev, h)
}

// Validate reports whether every gradient entry is finite.
func Validate(grad []float64) bool {
	return gradient.Validate(grad)
}

// Jacobian computes a dense Jacobian with chunked directional sweeps; the
// forward-mode numeric primitive.
func Jacobian(f func(x []float64) []float64, m int, x []float64, width int) *mat.Dense {
	return forward.Jacobian(f, m, x, width)
}

// SetLogger installs a logger for configuration changes and gradient
// diagnostics. The default is a nop logger.
func SetLogger(l *zap.Logger) {
	backend.SetLogger(l)
	gradient.SetLogger(l)
}
