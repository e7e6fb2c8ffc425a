// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eigen_test

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/langou/tlapack/eigen"
)

const dlamchP = 0x1p-52

func TestDecomposeSingle(t *testing.T) {
	a := mat.NewDense(1, 1, []float64{-2.5})
	d, err := eigen.Decompose(a, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := d.Values(nil)
	if v[0] != complex(-2.5, 0) {
		t.Errorf("unexpected eigenvalue for 1×1 matrix: got %v, want -2.5", v[0])
	}
	if m := cmplx.Abs(d.Vectors().At(0, 0)); math.Abs(m-1) > 1e-15 {
		t.Errorf("eigenvector of 1×1 matrix does not have unit norm: %v", m)
	}
}

func TestDecomposeComplexPair(t *testing.T) {
	// Block with diagonal 1, 3 and off-diagonal product -4: the
	// eigenvalues are 2 ± i√3.
	a := mat.NewDense(2, 2, []float64{
		1, -2,
		2, 3,
	})
	d, err := eigen.Decompose(a, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := d.Values(nil)
	want := complex(2, math.Sqrt(3))
	if cmplx.Abs(v[0]-want) > 1e-14 {
		t.Errorf("unexpected first eigenvalue: got %v, want %v", v[0], want)
	}
	if v[1] != cmplx.Conj(v[0]) {
		t.Errorf("eigenvalues are not a conjugate pair: %v, %v", v[0], v[1])
	}
}

func TestDecomposeBackwardStability(t *testing.T) {
	const n = 100
	for _, seed := range []uint64{123, 623, 134, 5} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rnd := rand.New(rand.NewPCG(seed, seed))
			a := mat.NewDense(n, n, nil)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					a.Set(i, j, rnd.Float64())
				}
			}

			d, err := eigen.Decompose(a, true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			values := d.Values(nil)
			vectors := d.Vectors()

			normA := mat.Norm(a, 2)
			tol := 100 * n * dlamchP * normA
			for j := 0; j < n; j++ {
				if res := pairResidual(a, values[j], vectors, j); res > tol {
					t.Errorf("large residual for eigenpair %d: got %v, want <=%v", j, res, tol)
				}
			}

			// Every eigenvector is normalized to unit 2-norm.
			for j := 0; j < n; j++ {
				var ssq float64
				for i := 0; i < n; i++ {
					m := cmplx.Abs(vectors.At(i, j))
					ssq += m * m
				}
				if !scalar.EqualWithinAbs(math.Sqrt(ssq), 1, 1e-13) {
					t.Errorf("eigenvector %d does not have unit norm: %v", j, math.Sqrt(ssq))
				}
			}
		})
	}
}

// pairResidual returns ‖A*v - λ*v‖₂ for column j of the eigenvector
// matrix.
func pairResidual(a *mat.Dense, lambda complex128, v *mat.CDense, j int) float64 {
	n, _ := a.Dims()
	var ssq float64
	for i := 0; i < n; i++ {
		var av complex128
		for k := 0; k < n; k++ {
			av += complex(a.At(i, k), 0) * v.At(k, j)
		}
		d := av - lambda*v.At(i, j)
		ssq += real(d)*real(d) + imag(d)*imag(d)
	}
	return math.Sqrt(ssq)
}

func TestDecomposeAgainstMatEigen(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 7))
	for _, n := range []int{1, 2, 5, 16, 31} {
		a := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				a.Set(i, j, rnd.NormFloat64())
			}
		}

		d, err := eigen.Decompose(a, false)
		if err != nil {
			t.Fatalf("n=%v: unexpected error: %v", n, err)
		}
		got := d.Values(nil)

		var ref mat.Eigen
		if ok := ref.Factorize(a, mat.EigenNone); !ok {
			t.Fatalf("n=%v: mat.Eigen failed to factorize", n)
		}
		want := ref.Values(nil)

		// Match the two spectra greedily; both algorithms order
		// eigenvalues differently.
		tol := 1e-8 * (1 + mat.Norm(a, 2))
		used := make([]bool, n)
		for _, g := range got {
			best := -1
			bestDist := math.Inf(1)
			for i, w := range want {
				if used[i] {
					continue
				}
				if dist := cmplx.Abs(g - w); dist < bestDist {
					best = i
					bestDist = dist
				}
			}
			if bestDist > tol {
				t.Errorf("n=%v: eigenvalue %v has no counterpart in mat.Eigen spectrum (nearest at distance %v)", n, g, bestDist)
				continue
			}
			used[best] = true
		}
	}
}

func TestDecomposeNonConvergence(t *testing.T) {
	// NaN entries defeat the deflation test, so the QR iteration
	// exhausts its budget and the failure is surfaced as a typed
	// error with the index of the first non-converged eigenvalue.
	const n = 3
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.NaN()
	}
	d, err := eigen.Decompose(mat.NewDense(n, n, data), false)
	nc, ok := err.(eigen.NonConvergenceError)
	if !ok {
		t.Fatalf("unexpected error type: got %v (%T), want NonConvergenceError", err, err)
	}
	if int(nc) != n-1 {
		t.Errorf("unexpected failure index: got %v, want %v", int(nc), n-1)
	}
	if d == nil {
		t.Fatal("nil decomposition returned alongside NonConvergenceError")
	}
}

func TestDecomposeValuesOnly(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 3))
	const n = 8
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rnd.NormFloat64())
		}
	}
	d, err := eigen.Decompose(a, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The Schur form is retained in values-only mode and is quasi
	// triangular.
	s := d.Schur()
	for i := 0; i < n; i++ {
		for j := 0; j < i-1; j++ {
			if s.At(i, j) != 0 {
				t.Errorf("Schur form not quasi-triangular at (%v,%v): %v", i, j, s.At(i, j))
			}
		}
	}

	mustPanic(t, "Vectors on values-only decomposition", func() { d.Vectors() })
}

func TestDecomposePanics(t *testing.T) {
	mustPanic(t, "non-square input", func() {
		eigen.Decompose(mat.NewDense(2, 3, nil), false)
	})
	d, err := eigen.Decompose(mat.NewDense(2, 2, []float64{1, 2, 3, 4}), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustPanic(t, "Schur on decomposition with vectors", func() { d.Schur() })
	mustPanic(t, "Values with bad dst length", func() { d.Values(make([]complex128, 3)) })
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
