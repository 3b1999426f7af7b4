package gradient_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/score-ml/score/internal/gradient"
)

// TestValidate tests finiteness checking over representative vectors.
func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		grad []float64
		want bool
	}{
		{"zero vector", []float64{0, 0, 0}, true},
		{"finite", []float64{-1.5, 2.25, 1e300}, true},
		{"empty", nil, true},
		{"NaN entry", []float64{1, math.NaN(), 3}, false},
		{"+Inf entry", []float64{math.Inf(1)}, false},
		{"-Inf entry", []float64{0, math.Inf(-1)}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, gradient.Validate(c.grad))
		})
	}
}

// TestValidate_NoMutation tests that validation never rewrites entries.
func TestValidate_NoMutation(t *testing.T) {
	grad := []float64{1, math.NaN(), 3}
	gradient.Validate(grad)

	assert.Equal(t, 1.0, grad[0])
	assert.True(t, math.IsNaN(grad[1]))
	assert.Equal(t, 3.0, grad[2])
}
