// Package chain implements the tracing engine behind the reverse-mode
// gradient backends.
//
// A Graph exposes arithmetic over tracked scalar nodes and records every
// operation on a GradientTape while recording is enabled.
//
// Architecture:
//   - Graph: forward arithmetic, one method per elementary operation
//   - GradientTape: records ops.Operation values during the forward pass
//   - ops.Operation: each op implements its own backward pass
//   - Reverse-mode AD: the tape is walked once, backwards, per gradient
//
// Usage:
//
//	g := chain.New()
//	g.Tape().StartRecording()
//	x := scalar.New(2.0)
//	y := g.Mul(x, x) // y = x²
//	grads := g.Tape().Backward(y, 1)
//	fmt.Println(grads[x]) // dy/dx = 2x = 4.0
package chain

import (
	"math"

	"github.com/score-ml/score/internal/chain/ops"
	"github.com/score-ml/score/internal/scalar"
)

// Ops is the arithmetic surface a model evaluator programs against.
// Every backend hands the evaluator an Ops; whether operations are traced
// is the backend's concern, not the model's.
type Ops interface {
	// Const wraps a plain value into an untracked node.
	Const(v float64) *scalar.Node

	Add(a, b *scalar.Node) *scalar.Node
	Sub(a, b *scalar.Node) *scalar.Node
	Mul(a, b *scalar.Node) *scalar.Node
	Div(a, b *scalar.Node) *scalar.Node
	Neg(a *scalar.Node) *scalar.Node
	Exp(a *scalar.Node) *scalar.Node
	Log(a *scalar.Node) *scalar.Node
	Sqrt(a *scalar.Node) *scalar.Node
	Tanh(a *scalar.Node) *scalar.Node

	// Pow raises a to a constant power; no gradient flows to the exponent.
	Pow(a *scalar.Node, p float64) *scalar.Node

	// Sum adds all terms in one operation.
	Sum(xs []*scalar.Node) *scalar.Node

	// Custom applies a hand-written differentiation rule. forward computes
	// the plain outputs from the plain inputs; vjp maps (input point,
	// output cotangents) to input cotangents. See ops.CustomOp.
	Custom(inputs []*scalar.Node, forward func(x []float64) []float64, vjp func(x, cotangent []float64) []float64) []*scalar.Node
}

// Graph is the default Ops implementation. It computes values eagerly and
// records operations on its tape when the tape is recording; with
// recording off it is a plain calculator, which is how the forward-mode
// backend evaluates models.
type Graph struct {
	tape *GradientTape
}

// New creates a graph with a fresh, non-recording tape.
func New() *Graph {
	return &Graph{tape: NewGradientTape()}
}

// Tape returns the gradient tape for manual control.
// Useful for:
//   - Starting/stopping recording
//   - Clearing the tape between computations
//   - Inspecting recorded operations
func (g *Graph) Tape() *GradientTape {
	return g.tape
}

// Const wraps a plain value into an untracked node.
func (g *Graph) Const(v float64) *scalar.Node {
	return scalar.New(v)
}

// Add computes a + b and records the operation.
func (g *Graph) Add(a, b *scalar.Node) *scalar.Node {
	out := scalar.New(a.Value() + b.Value())
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewAddOp(a, b, out))
	}
	return out
}

// Sub computes a - b and records the operation.
func (g *Graph) Sub(a, b *scalar.Node) *scalar.Node {
	out := scalar.New(a.Value() - b.Value())
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewSubOp(a, b, out))
	}
	return out
}

// Mul computes a * b and records the operation.
func (g *Graph) Mul(a, b *scalar.Node) *scalar.Node {
	out := scalar.New(a.Value() * b.Value())
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewMulOp(a, b, out))
	}
	return out
}

// Div computes a / b and records the operation.
func (g *Graph) Div(a, b *scalar.Node) *scalar.Node {
	out := scalar.New(a.Value() / b.Value())
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewDivOp(a, b, out))
	}
	return out
}

// Neg computes -a and records the operation.
func (g *Graph) Neg(a *scalar.Node) *scalar.Node {
	out := scalar.New(-a.Value())
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewNegOp(a, out))
	}
	return out
}

// Exp computes exp(a) and records the operation.
func (g *Graph) Exp(a *scalar.Node) *scalar.Node {
	out := scalar.New(math.Exp(a.Value()))
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewExpOp(a, out))
	}
	return out
}

// Log computes log(a) and records the operation.
func (g *Graph) Log(a *scalar.Node) *scalar.Node {
	out := scalar.New(math.Log(a.Value()))
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewLogOp(a, out))
	}
	return out
}

// Sqrt computes sqrt(a) and records the operation.
func (g *Graph) Sqrt(a *scalar.Node) *scalar.Node {
	out := scalar.New(math.Sqrt(a.Value()))
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewSqrtOp(a, out))
	}
	return out
}

// Tanh computes tanh(a) and records the operation.
func (g *Graph) Tanh(a *scalar.Node) *scalar.Node {
	out := scalar.New(math.Tanh(a.Value()))
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewTanhOp(a, out))
	}
	return out
}

// Pow computes a^p for constant p and records the operation.
func (g *Graph) Pow(a *scalar.Node, p float64) *scalar.Node {
	out := scalar.New(math.Pow(a.Value(), p))
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewPowOp(a, out, p))
	}
	return out
}

// Sum computes Σ xs and records a single n-ary operation.
func (g *Graph) Sum(xs []*scalar.Node) *scalar.Node {
	total := 0.0
	for _, x := range xs {
		total += x.Value()
	}
	out := scalar.New(total)
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewSumOp(xs, out))
	}
	return out
}

// Custom applies a hand-written differentiation rule.
//
// The forward function runs on the plain input values only; the tape never
// sees the rule's internals. When recording, a single CustomOp bridges the
// input and output nodes so the backward pass can invoke the rule's
// vector-Jacobian product.
func (g *Graph) Custom(inputs []*scalar.Node, forward func(x []float64) []float64, vjp func(x, cotangent []float64) []float64) []*scalar.Node {
	y := forward(scalar.Values(inputs))
	outs := scalar.Lift(y)
	if g.tape.IsRecording() {
		g.tape.Record(ops.NewCustomOp(inputs, outs, vjp))
	}
	return outs
}
