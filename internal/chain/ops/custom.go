package ops

import "github.com/score-ml/score/internal/scalar"

// CustomOp represents a hand-written differentiation rule for a function
// the tracer cannot differentiate through natively (for example a
// constrained-space transform built from a sequential construction or a
// Cholesky factorization).
//
// Forward: the outputs were computed from plain (untracked) input values
// before the op was recorded; the tape sees only the boundary nodes.
//
// Backward: the incoming output cotangents are handed to the vjp closure
// together with the untracked input point, and the closure returns the
// input cotangents. Typically the closure contracts the cotangent against
// the transpose of a dense Jacobian obtained from the forward-mode
// directional-sweep primitive.
type CustomOp struct {
	inputs  []*scalar.Node
	outputs []*scalar.Node
	vjp     func(x, cotangent []float64) []float64
}

// NewCustomOp creates a new custom-rule operation.
func NewCustomOp(inputs, outputs []*scalar.Node, vjp func(x, cotangent []float64) []float64) *CustomOp {
	return &CustomOp{inputs: inputs, outputs: outputs, vjp: vjp}
}

// Backward satisfies Operation but is never used directly: the tape routes
// multi-output operations through BackwardMulti.
func (op *CustomOp) Backward(outputGrad float64) []float64 {
	grads := make([]float64, len(op.outputs))
	if len(grads) > 0 {
		grads[0] = outputGrad
	}
	return op.BackwardMulti(grads)
}

// BackwardMulti contracts the output cotangents with the rule's
// vector-Jacobian product.
func (op *CustomOp) BackwardMulti(outputGrads []float64) []float64 {
	return op.vjp(scalar.Values(op.inputs), outputGrads)
}

// Inputs returns the input nodes.
func (op *CustomOp) Inputs() []*scalar.Node {
	return op.inputs
}

// Output returns the first output node.
func (op *CustomOp) Output() *scalar.Node {
	return op.outputs[0]
}

// Outputs returns all output nodes.
func (op *CustomOp) Outputs() []*scalar.Node {
	return op.outputs
}
