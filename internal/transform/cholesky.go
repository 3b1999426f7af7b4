package transform

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CholLink maps a positive-definite n×n matrix (flattened row-major) to
// its n(n+1)/2 unconstrained Cholesky coordinates: the strict lower
// triangle of L as-is and the diagonal of L in log space.
//
// The input is symmetrized before factorization so perturbations of
// either triangle carry derivative information. If the matrix is not
// positive definite the coordinates are NaN; the gradient validator
// rejects anything built from them downstream.
func CholLink(x []float64) []float64 {
	n := intSqrt(len(x))
	sym := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sym[i*n+j] = 0.5 * (x[i*n+j] + x[j*n+i])
		}
	}

	y := make([]float64, n*(n+1)/2)
	var ch mat.Cholesky
	if !ch.Factorize(mat.NewSymDense(n, sym)) {
		for i := range y {
			y[i] = math.NaN()
		}
		return y
	}

	var l mat.TriDense
	ch.LTo(&l)
	idx := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if i == j {
				y[idx] = math.Log(l.At(i, i))
			} else {
				y[idx] = l.At(i, j)
			}
			idx++
		}
	}
	return y
}

// CholInvlink maps n(n+1)/2 unconstrained Cholesky coordinates back to a
// positive-definite n×n matrix, flattened row-major: rebuild L with an
// exponentiated diagonal, return L·Lᵀ.
func CholInvlink(y []float64) []float64 {
	// n(n+1)/2 = len(y)
	n := (intSqrt(8*len(y)+1) - 1) / 2

	l := mat.NewTriDense(n, mat.Lower, nil)
	idx := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if i == j {
				l.SetTri(i, i, math.Exp(y[idx]))
			} else {
				l.SetTri(i, j, y[idx])
			}
			idx++
		}
	}

	var x mat.Dense
	x.Mul(l, l.T())

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		mat.Row(out[i*n:(i+1)*n], i, &x)
	}
	return out
}

// intSqrt returns the integer square root of a perfect square.
func intSqrt(m int) int {
	n := int(math.Round(math.Sqrt(float64(m))))
	return n
}
