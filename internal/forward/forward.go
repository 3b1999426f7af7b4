// Package forward implements the forward-mode gradient backend and the
// directional-sweep Jacobian primitive it is built on.
//
// The primitive approximates derivatives with gonum's central-difference
// formulas. A sweep width bounds how many input directions a single pass
// touches; a full Jacobian is assembled by concatenating column blocks in
// parameter order, so a remainder block is simply a narrower final pass.
package forward

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/score-ml/score/internal/backend"
	"github.com/score-ml/score/internal/chain"
	"github.com/score-ml/score/internal/model"
	"github.com/score-ml/score/internal/scalar"
)

// Jacobian computes the m×n Jacobian of f at x using directional sweeps of
// at most width columns per pass. A width exceeding len(x) is silently
// capped; a non-positive width falls back to backend.DefaultChunkSize.
//
// This is the numeric primitive shared by the forward-mode evaluator and
// the transform-gradient rules.
func Jacobian(f func(x []float64) []float64, m int, x []float64, width int) *mat.Dense {
	n := len(x)
	if width <= 0 {
		width = backend.DefaultChunkSize
	}
	width = min(width, n)

	dst := mat.NewDense(m, max(n, 1), nil)
	if n == 0 {
		return dst
	}

	settings := &fd.JacobianSettings{Formula: fd.Central}
	point := make([]float64, n)

	for lo := 0; lo < n; lo += width {
		hi := min(lo+width, n)

		// Restrict f to the coordinates of this block; all other
		// coordinates stay pinned at x.
		restricted := func(y, xb []float64) {
			copy(point, x)
			copy(point[lo:hi], xb)
			copy(y, f(point))
		}

		block := mat.NewDense(m, hi-lo, nil)
		xb := make([]float64, hi-lo)
		copy(xb, x[lo:hi])
		fd.Jacobian(block, restricted, xb, settings)

		for i := 0; i < m; i++ {
			for j := lo; j < hi; j++ {
				dst.Set(i, j, block.At(i, j-lo))
			}
		}
	}
	return dst
}

// Evaluator computes value and gradient of a model's log density with
// chunked directional sweeps.
type Evaluator struct {
	chunk int
}

// New creates a forward-mode evaluator with the given sweep width.
func New(chunkSize int) *Evaluator {
	if chunkSize <= 0 {
		chunkSize = backend.DefaultChunkSize
	}
	return &Evaluator{chunk: chunkSize}
}

// ValueAndGradient evaluates the model at theta and returns the log
// density together with its gradient.
//
// Every sweep evaluation forks ctx, evaluates the model on the fork with
// plain values, and writes the resulting primal back into the original
// ctx. After the sweeps one unperturbed pass runs at theta, so the value
// returned is the density the final pass left in ctx — never a separate
// recomputation. The pre-call density of ctx is restored on every exit
// path, fault or success.
func (e *Evaluator) ValueAndGradient(theta []float64, ctx model.Context, ev model.Evaluator) (float64, []float64, error) {
	saved := ctx.LogDensity()
	defer ctx.SetLogDensity(saved)

	var evalErr error
	f := func(x []float64) float64 {
		fresh := ctx.Fork()
		out, err := ev.Evaluate(fresh, chain.New(), scalar.Lift(x))
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}
			return math.NaN()
		}
		v := out.Value()
		ctx.SetLogDensity(v)
		return v
	}

	jac := Jacobian(func(x []float64) []float64 {
		return []float64{f(x)}
	}, 1, theta, e.chunk)
	if evalErr != nil {
		return 0, nil, evalErr
	}

	// Final unperturbed pass leaves f(theta) in ctx.
	f(theta)
	if evalErr != nil {
		return 0, nil, evalErr
	}
	value := ctx.LogDensity()

	grad := make([]float64, len(theta))
	if len(theta) > 0 {
		mat.Row(grad, 0, jac)
	}
	return value, grad, nil
}
