package ops

import "github.com/score-ml/score/internal/scalar"

// TanhOp represents a hyperbolic tangent operation.
//
// Forward:
//
//	output = tanh(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 - tanh²(input)) = ∂L/∂output * (1 - output²)
type TanhOp struct {
	input  *scalar.Node
	output *scalar.Node
}

// NewTanhOp creates a new tanh operation.
func NewTanhOp(input, output *scalar.Node) *TanhOp {
	return &TanhOp{input: input, output: output}
}

// Backward computes the gradient with respect to input,
// reusing the forward value.
func (op *TanhOp) Backward(outputGrad float64) []float64 {
	t := op.output.Value()
	return []float64{outputGrad * (1 - t*t)}
}

// Inputs returns the input nodes.
func (op *TanhOp) Inputs() []*scalar.Node {
	return []*scalar.Node{op.input}
}

// Output returns the output node.
func (op *TanhOp) Output() *scalar.Node {
	return op.output
}
