// Package reverse implements the two reverse-mode gradient backends over
// the chain tracing engine.
//
// Both engines share one closure shape: fork the context, evaluate the
// model on the fork, never write back into the original context. Unlike
// forward mode, a reverse pass never needs the original context while it
// runs; the asymmetry is deliberate.
//
// Model faults propagate unchanged; neither engine attempts recovery.
package reverse

import (
	"github.com/score-ml/score/internal/chain"
	"github.com/score-ml/score/internal/model"
	"github.com/score-ml/score/internal/scalar"
)

// Tracked is the tracked-wrapper engine: it lifts theta into tracked
// leaves, runs the model once with a recording tape, and strips tracking
// from both the value and the gradient before returning. The shared
// context never retains wrapped state — its mutation surface only accepts
// plain float64, and the non-differentiated code paths that consume it
// afterwards see primal values only.
type Tracked struct{}

// ValueAndGradient evaluates the model at theta and returns the plain log
// density with its gradient.
func (Tracked) ValueAndGradient(theta []float64, ctx model.Context, ev model.Evaluator) (float64, []float64, error) {
	fresh := ctx.Fork()

	g := chain.New()
	g.Tape().StartRecording()
	leaves := scalar.Lift(theta)

	out, err := ev.Evaluate(fresh, g, leaves)
	if err != nil {
		return 0, nil, err
	}
	g.Tape().StopRecording()

	grads := g.Tape().Backward(out, 1)
	grad := make([]float64, len(theta))
	for i, leaf := range leaves {
		grad[i] = grads[leaf]
	}
	return out.Value(), grad, nil
}

// Pullback is the trace-and-pullback engine: it traces one evaluation and
// obtains the gradient by seeding the pullback with a unit cotangent, the
// scalar output's only sensible seed.
type Pullback struct{}

// ValueAndGradient evaluates the model at theta and returns the log
// density with its gradient.
func (Pullback) ValueAndGradient(theta []float64, ctx model.Context, ev model.Evaluator) (float64, []float64, error) {
	fresh := ctx.Fork()

	value, pb, err := chain.Trace(func(ops chain.Ops, params []*scalar.Node) (*scalar.Node, error) {
		return ev.Evaluate(fresh, ops, params)
	}, theta)
	if err != nil {
		return 0, nil, err
	}
	return value, pb(1), nil
}
