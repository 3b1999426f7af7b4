package transform

import "math"

// SimplexLink maps a point on the K-simplex to K-1 unconstrained reals
// via the stick-breaking parameterization.
//
// For k = 0..K-2, with r the stick remaining before step k:
//
//	z_k = x_k / r
//	y_k = logit(z_k) + log(K-1-k)
//
// The offset centers the transform so the uniform simplex point maps to
// the origin.
func SimplexLink(x []float64) []float64 {
	k := len(x)
	y := make([]float64, k-1)
	r := 1.0
	for i := 0; i < k-1; i++ {
		z := x[i] / r
		y[i] = math.Log(z/(1-z)) + math.Log(float64(k-1-i))
		r -= x[i]
	}
	return y
}

// SimplexInvlink maps K-1 unconstrained reals to a point on the
// K-simplex, inverting SimplexLink. The last coordinate absorbs whatever
// stick remains, so the output always sums to one.
func SimplexInvlink(y []float64) []float64 {
	k := len(y) + 1
	x := make([]float64, k)
	r := 1.0
	for i := 0; i < k-1; i++ {
		z := 1 / (1 + math.Exp(-(y[i] - math.Log(float64(k-1-i)))))
		x[i] = r * z
		r -= x[i]
	}
	x[k-1] = r
	return x
}
