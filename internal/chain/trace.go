package chain

import "github.com/score-ml/score/internal/scalar"

// TracedFunc is a scalar-valued function expressed against the tracing
// engine: it receives an Ops for arithmetic and the parameter vector as
// tracked leaves.
type TracedFunc func(ops Ops, params []*scalar.Node) (*scalar.Node, error)

// Pullback maps an output cotangent to the gradient with respect to the
// traced parameters. Seeding a scalar output with 1 yields the gradient.
type Pullback func(seed float64) []float64

// Trace runs f once at x with a recording tape and returns the primal
// value together with a pullback over the recorded trace.
//
// The pullback may be invoked any number of times with different seeds;
// each invocation walks the same tape.
//
// Example:
//
//	value, pb, err := chain.Trace(f, x)
//	grad := pb(1) // gradient of the scalar output
func Trace(f TracedFunc, x []float64) (float64, Pullback, error) {
	g := New()
	g.Tape().StartRecording()

	leaves := scalar.Lift(x)
	out, err := f(g, leaves)
	if err != nil {
		return 0, nil, err
	}
	g.Tape().StopRecording()

	pb := func(seed float64) []float64 {
		grads := g.Tape().Backward(out, seed)
		grad := make([]float64, len(leaves))
		for i, leaf := range leaves {
			grad[i] = grads[leaf]
		}
		return grad
	}
	return out.Value(), pb, nil
}
