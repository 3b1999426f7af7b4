package ops

import (
	"math"

	"github.com/score-ml/score/internal/scalar"
)

// PowOp represents raising a node to a constant power: output = x^p.
//
// Backward:
//
//	∂L/∂x = ∂L/∂output * p * x^(p-1)
//
// The exponent is a plain constant, not a tracked node; no gradient is
// produced for it.
type PowOp struct {
	input  *scalar.Node
	output *scalar.Node
	power  float64
}

// NewPowOp creates a new power operation.
func NewPowOp(input, output *scalar.Node, power float64) *PowOp {
	return &PowOp{input: input, output: output, power: power}
}

// Backward computes the gradient with respect to the base.
func (op *PowOp) Backward(outputGrad float64) []float64 {
	x := op.input.Value()
	return []float64{outputGrad * op.power * math.Pow(x, op.power-1)}
}

// Inputs returns the input nodes.
func (op *PowOp) Inputs() []*scalar.Node {
	return []*scalar.Node{op.input}
}

// Output returns the output node.
func (op *PowOp) Output() *scalar.Node {
	return op.output
}
