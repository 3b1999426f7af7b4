package chain

import (
	"github.com/score-ml/score/internal/chain/ops"
	"github.com/score-ml/score/internal/scalar"
)

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass using reverse-mode automatic
// differentiation.
//
// Usage:
//
//	tape := NewGradientTape()
//	tape.StartRecording()
//	// ... perform operations ...
//	grads := tape.Backward(output, 1)
type GradientTape struct {
	operations []ops.Operation // Recorded operations (in execution order)
	recording  bool            // Whether tape is currently recording
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]ops.Operation, 0, 64), // Pre-allocate for common case
		recording:  false,
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// Backward computes gradients for all nodes reachable from output by
// walking the tape in reverse.
//
// Algorithm:
//  1. Seed the output node with the given cotangent (1 for a gradient)
//  2. Walk operations in reverse order
//  3. For each operation, compute input gradients using the chain rule
//  4. Accumulate gradients when the same node feeds multiple operations
//
// Returns a map from node to its accumulated gradient. Leaves never used
// by the computation are absent from the map; callers treat absence as a
// zero gradient.
func (t *GradientTape) Backward(output *scalar.Node, seed float64) map[*scalar.Node]float64 {
	grads := map[*scalar.Node]float64{output: seed}

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		inputGrads := t.computeInputGrads(op, grads)
		if inputGrads == nil {
			continue
		}
		accumulateGrads(op, inputGrads, grads)
	}

	return grads
}

// computeInputGrads computes gradients for an operation's inputs.
// Returns nil if no gradient flows to this operation.
func (t *GradientTape) computeInputGrads(op ops.Operation, grads map[*scalar.Node]float64) []float64 {
	if multiOp, isMulti := op.(ops.MultiOutputOperation); isMulti {
		return computeMultiOutputGrads(multiOp, grads)
	}
	outputGrad, hasGrad := grads[op.Output()]
	if !hasGrad {
		return nil
	}
	return op.Backward(outputGrad)
}

// computeMultiOutputGrads handles the backward pass for multi-output
// operations: gradients for ALL outputs are collected first, with zeros
// filled in for outputs nothing depended on.
func computeMultiOutputGrads(multiOp ops.MultiOutputOperation, grads map[*scalar.Node]float64) []float64 {
	outputs := multiOp.Outputs()
	outputGrads := make([]float64, len(outputs))
	hasAnyGrad := false
	for j, out := range outputs {
		if grad, exists := grads[out]; exists {
			outputGrads[j] = grad
			hasAnyGrad = true
		}
	}
	if !hasAnyGrad {
		return nil
	}
	return multiOp.BackwardMulti(outputGrads)
}

// accumulateGrads accumulates gradients for each input node.
func accumulateGrads(op ops.Operation, inputGrads []float64, grads map[*scalar.Node]float64) {
	inputs := op.Inputs()
	for j, input := range inputs {
		if j >= len(inputGrads) {
			break
		}
		grads[input] += inputGrads[j]
	}
}
