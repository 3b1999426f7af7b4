package ops

import "github.com/score-ml/score/internal/scalar"

// SumOp represents an n-ary summation: output = Σ inputs.
//
// Backward pass: the gradient flows unchanged to every term,
// grad_i = outputGrad for all i.
//
// Log densities are sums of per-variable terms, so this keeps the tape one
// operation per accumulation instead of a chain of AddOps.
type SumOp struct {
	inputs []*scalar.Node
	output *scalar.Node
}

// NewSumOp creates a new SumOp.
func NewSumOp(inputs []*scalar.Node, output *scalar.Node) *SumOp {
	return &SumOp{inputs: inputs, output: output}
}

// Backward computes input gradients for summation.
func (op *SumOp) Backward(outputGrad float64) []float64 {
	grads := make([]float64, len(op.inputs))
	for i := range grads {
		grads[i] = outputGrad
	}
	return grads
}

// Inputs returns the input nodes.
func (op *SumOp) Inputs() []*scalar.Node {
	return op.inputs
}

// Output returns the output node.
func (op *SumOp) Output() *scalar.Node {
	return op.output
}
