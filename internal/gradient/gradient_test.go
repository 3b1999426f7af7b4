package gradient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/score-ml/score/internal/backend"
	"github.com/score-ml/score/internal/chain"
	"github.com/score-ml/score/internal/gradient"
	"github.com/score-ml/score/internal/model"
	"github.com/score-ml/score/internal/scalar"
)

// smooth is log p(θ) = Σ (log(1 + θᵢ²) - ½θᵢ²), differentiable everywhere.
var smooth = model.EvaluatorFunc(func(ctx model.Context, ops chain.Ops, params []*scalar.Node) (*scalar.Node, error) {
	terms := make([]*scalar.Node, 0, 2*len(params))
	for _, p := range params {
		sq := ops.Mul(p, p)
		terms = append(terms,
			ops.Log(ops.Add(ops.Const(1), sq)),
			ops.Mul(ops.Const(-0.5), sq))
	}
	lp := ops.Sum(terms)
	ctx.SetLogDensity(lp.Value())
	return lp, nil
})

func useBackend(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, backend.SetBackend(name))
	t.Cleanup(func() { _ = backend.SetBackend("forward") })
}

// TestValueAndGradient_GradientLength tests the length invariant on every
// backend.
func TestValueAndGradient_GradientLength(t *testing.T) {
	theta := []float64{0.1, -0.2, 0.3, 0.4, -0.5}
	for _, name := range []string{"forward", "tracked", "pullback"} {
		t.Run(name, func(t *testing.T) {
			useBackend(t, name)
			res, err := gradient.ValueAndGradient(theta, model.NewStore(), smooth, gradient.NewHandle())
			require.NoError(t, err)
			assert.Len(t, res.Gradient, len(theta))
		})
	}
}

// TestValueAndGradient_CrossBackendConsistency tests that switching the
// backend between calls with identical θ and model yields agreeing
// gradients and values.
func TestValueAndGradient_CrossBackendConsistency(t *testing.T) {
	theta := []float64{0.7, -1.3, 2.1, 0.05}

	results := make(map[string]gradient.Result)
	for _, name := range []string{"forward", "tracked", "pullback"} {
		useBackend(t, name)
		res, err := gradient.ValueAndGradient(theta, model.NewStore(), smooth, gradient.NewHandle())
		require.NoError(t, err, name)
		results[name] = res
	}

	ref := results["tracked"]
	for name, res := range results {
		assert.InDelta(t, ref.Value, res.Value, 1e-9, "%s value", name)
		for i := range theta {
			assert.InDelta(t, ref.Gradient[i], res.Gradient[i], 1e-6, "%s grad[%d]", name, i)
		}
	}
}

// TestHandle_BoundSnapshotIsolation tests that a bound handle ignores
// later global reconfiguration while an unbound handle follows it.
func TestHandle_BoundSnapshotIsolation(t *testing.T) {
	useBackend(t, "forward")

	bound := gradient.Bind(backend.Resolve())
	unbound := gradient.NewHandle()

	require.NoError(t, backend.SetBackend("pullback"))

	assert.Equal(t, backend.ForwardMode, bound.Selection().Kind,
		"bound handle must keep its construction-time snapshot")
	assert.Equal(t, backend.ReversePullback, unbound.Selection().Kind,
		"unbound handle must follow the registry")
}

// TestHandle_NilResolvesGlobal tests that a nil handle behaves like an
// unbound one.
func TestHandle_NilResolvesGlobal(t *testing.T) {
	useBackend(t, "tracked")

	var h *gradient.Handle
	assert.Equal(t, backend.ReverseTracked, h.Selection().Kind)

	res, err := gradient.ValueAndGradient([]float64{1}, model.NewStore(), smooth, h)
	require.NoError(t, err)
	assert.Len(t, res.Gradient, 1)
}

// TestValueAndGradient_ForwardUsesBoundChunk tests routing a bound
// forward selection with its own chunk size through the dispatcher.
func TestValueAndGradient_ForwardUsesBoundChunk(t *testing.T) {
	h := gradient.Bind(backend.Selection{Kind: backend.ForwardMode, ChunkSize: 3})

	theta := []float64{0.2, -0.4, 0.6, -0.8, 1.0, -1.2, 1.4}
	res, err := gradient.ValueAndGradient(theta, model.NewStore(), smooth, h)
	require.NoError(t, err)

	// d/dx (log(1+x²) - ½x²) = 2x/(1+x²) - x
	for i, x := range theta {
		want := 2*x/(1+x*x) - x
		assert.InDelta(t, want, res.Gradient[i], 1e-6, "grad[%d]", i)
	}
}
