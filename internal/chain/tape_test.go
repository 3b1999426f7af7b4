package chain_test

import (
	"testing"

	"github.com/score-ml/score/internal/chain"
	"github.com/score-ml/score/internal/scalar"
)

// TestTape_Recording tests tape recording on/off.
func TestTape_Recording(t *testing.T) {
	g := chain.New()
	tape := g.Tape()

	// Initially not recording
	if tape.IsRecording() {
		t.Error("Tape should not be recording initially")
	}

	tape.StartRecording()
	if !tape.IsRecording() {
		t.Error("Tape should be recording after StartRecording()")
	}

	tape.StopRecording()
	if tape.IsRecording() {
		t.Error("Tape should not be recording after StopRecording()")
	}
}

// TestTape_RecordsOnlyWhileRecording tests that operations performed with
// recording off leave no trace.
func TestTape_RecordsOnlyWhileRecording(t *testing.T) {
	g := chain.New()
	x := scalar.New(2)

	g.Mul(x, x)
	if got := g.Tape().NumOps(); got != 0 {
		t.Errorf("NumOps() = %d before recording, want 0", got)
	}

	g.Tape().StartRecording()
	g.Mul(x, x)
	g.Add(x, x)
	if got := g.Tape().NumOps(); got != 2 {
		t.Errorf("NumOps() = %d while recording, want 2", got)
	}
}

// TestTape_Clear tests tape clearing.
func TestTape_Clear(t *testing.T) {
	g := chain.New()
	g.Tape().StartRecording()

	x := scalar.New(3)
	g.Mul(x, x)

	g.Tape().Clear()
	if got := g.Tape().NumOps(); got != 0 {
		t.Errorf("NumOps() = %d after Clear(), want 0", got)
	}

	// Recording state is preserved across Clear.
	if !g.Tape().IsRecording() {
		t.Error("Clear() should preserve recording state")
	}
}

// TestBackward_LeafSeed tests that the seed reaches an output that is
// itself a leaf.
func TestBackward_LeafSeed(t *testing.T) {
	g := chain.New()
	g.Tape().StartRecording()

	x := scalar.New(5)
	grads := g.Tape().Backward(x, 2)
	if grads[x] != 2 {
		t.Errorf("Backward() leaf grad = %f, want 2", grads[x])
	}
}

// TestBackward_Accumulation tests gradient accumulation when a node feeds
// multiple operations: y = x*x + x, dy/dx = 2x + 1.
func TestBackward_Accumulation(t *testing.T) {
	g := chain.New()
	g.Tape().StartRecording()

	x := scalar.New(3)
	y := g.Add(g.Mul(x, x), x)

	grads := g.Tape().Backward(y, 1)
	if want := 2*3.0 + 1; grads[x] != want {
		t.Errorf("dy/dx = %f, want %f", grads[x], want)
	}
}

// TestBackward_UnusedLeafAbsent tests that a leaf the output does not
// depend on is absent from the gradient map (treated as zero).
func TestBackward_UnusedLeafAbsent(t *testing.T) {
	g := chain.New()
	g.Tape().StartRecording()

	x := scalar.New(3)
	unused := scalar.New(7)
	y := g.Mul(x, x)

	grads := g.Tape().Backward(y, 1)
	if _, ok := grads[unused]; ok {
		t.Error("unused leaf should be absent from gradient map")
	}
}
