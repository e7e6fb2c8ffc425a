// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testeispack

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// randomHessenberg returns a random n×n upper Hessenberg matrix with
// standard normal entries and the given stride.
func randomHessenberg(n, stride int, rnd *rand.Rand) blas64.General {
	h := nanGeneral(n, n, stride)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j < i-1 {
				h.Data[i*h.Stride+j] = 0
			} else {
				h.Data[i*h.Stride+j] = rnd.NormFloat64()
			}
		}
	}
	return h
}

// nanGeneral returns an r×c general matrix filled with NaN values, so
// that uses of elements outside the matrix are visible in tests.
func nanGeneral(r, c, stride int) blas64.General {
	if r < 0 || c < 0 {
		panic("bad matrix size")
	}
	if r == 0 || c == 0 {
		return blas64.General{Stride: max(1, stride)}
	}
	if stride < c {
		panic("bad stride")
	}
	data := make([]float64, (r-1)*stride+c)
	for i := range data {
		data[i] = math.NaN()
	}
	return blas64.General{Rows: r, Cols: c, Stride: stride, Data: data}
}

// zeros returns an r×c general matrix of zero values.
func zeros(r, c, stride int) blas64.General {
	a := nanGeneral(r, c, stride)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.Data[i*a.Stride+j] = 0
		}
	}
	return a
}

// eye returns the n×n identity matrix with the given stride.
func eye(n, stride int) blas64.General {
	a := nanGeneral(n, n, stride)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				a.Data[i*a.Stride+j] = 1
			} else {
				a.Data[i*a.Stride+j] = 0
			}
		}
	}
	return a
}

// cloneGeneral returns a deep copy of a.
func cloneGeneral(a blas64.General) blas64.General {
	c := a
	c.Data = make([]float64, len(a.Data))
	copy(c.Data, a.Data)
	return c
}

// residualOrthogonal returns the maximum absolute entry of Qᵀ*Q - I.
func residualOrthogonal(q blas64.General) float64 {
	n := q.Rows
	p := eye(n, n)
	blas64.Gemm(blas.Trans, blas.NoTrans, 1, q, q, -1, p)
	var res float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res = math.Max(res, math.Abs(p.Data[i*p.Stride+j]))
		}
	}
	return res
}

// residualSimilarity returns the maximum absolute entry of Zᵀ*A*Z - T.
func residualSimilarity(a, z, tm blas64.General) float64 {
	n := a.Rows
	tmp := zeros(n, n, n)
	blas64.Gemm(blas.Trans, blas.NoTrans, 1, z, a, 0, tmp)
	got := cloneGeneral(tm)
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, tmp, z, -1, got)
	var res float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res = math.Max(res, math.Abs(got.Data[i*got.Stride+j]))
		}
	}
	return res
}

// frobNorm returns the Frobenius norm of a.
func frobNorm(a blas64.General) float64 {
	var ssq float64
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			v := a.Data[i*a.Stride+j]
			ssq += v * v
		}
	}
	return math.Sqrt(ssq)
}

// eigenVector returns the complex right eigenvector for the eigenvalue
// at index j, reconstructed from the packed real storage in z:
// a real column when wi[j] == 0, the pair (z[:,j], z[:,j+1]) when
// wi[j] > 0, and the conjugate of the preceding pair when wi[j] < 0.
func eigenVector(z blas64.General, wi []float64, j int) []complex128 {
	n := z.Rows
	v := make([]complex128, n)
	for i := 0; i < n; i++ {
		switch {
		case wi[j] == 0:
			v[i] = complex(z.Data[i*z.Stride+j], 0)
		case wi[j] > 0:
			v[i] = complex(z.Data[i*z.Stride+j], z.Data[i*z.Stride+j+1])
		default:
			v[i] = complex(z.Data[i*z.Stride+j-1], -z.Data[i*z.Stride+j])
		}
	}
	return v
}

// eigenResidual returns ‖A*v - λ*v‖₂ for the eigenpair at index j of
// the decomposition (wr, wi, z) of the real matrix A.
func eigenResidual(a blas64.General, wr, wi []float64, z blas64.General, j int) float64 {
	n := a.Rows
	v := eigenVector(z, wi, j)
	lambda := complex(wr[j], wi[j])
	var ssq float64
	for i := 0; i < n; i++ {
		var av complex128
		for k := 0; k < n; k++ {
			av += complex(a.Data[i*a.Stride+k], 0) * v[k]
		}
		d := av - lambda*v[i]
		ssq += real(d)*real(d) + imag(d)*imag(d)
	}
	return math.Sqrt(ssq)
}

// vectorNorm returns the 2-norm of the complex eigenvector at index j.
func vectorNorm(z blas64.General, wi []float64, j int) float64 {
	var ssq float64
	for _, vi := range eigenVector(z, wi, j) {
		m := cmplx.Abs(vi)
		ssq += m * m
	}
	return math.Sqrt(ssq)
}
