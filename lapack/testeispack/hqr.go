// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testeispack

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas/blas64"
)

type Hqrer interface {
	Hqr(n, ilo, ihi int, h []float64, ldh int, wr, wi []float64, wantz bool, z []float64, ldz int) (norm float64, unconverged int)
}

func HqrTest(t *testing.T, impl Hqrer) {
	rnd := rand.New(rand.NewPCG(1, 1))

	t.Run("Single", func(t *testing.T) {
		h := []float64{2.5}
		wr := make([]float64, 1)
		wi := make([]float64, 1)
		if _, unconverged := impl.Hqr(1, 0, 0, h, 1, wr, wi, false, nil, 1); unconverged != 0 {
			t.Fatalf("unexpected failure for 1×1 matrix: %v", unconverged)
		}
		if wr[0] != 2.5 || wi[0] != 0 {
			t.Errorf("unexpected eigenvalue for 1×1 matrix: got %v+%vi", wr[0], wi[0])
		}
	})

	t.Run("ComplexPair", func(t *testing.T) {
		// Trailing block with x=3, y=1 and w=-4: the discriminant
		// ((x-y)/2)²+w = -3 is negative, so the eigenvalues are the
		// conjugate pair 2 ± i√3.
		h := []float64{
			1, -2,
			2, 3,
		}
		wr := make([]float64, 2)
		wi := make([]float64, 2)
		if _, unconverged := impl.Hqr(2, 0, 1, h, 2, wr, wi, false, nil, 1); unconverged != 0 {
			t.Fatalf("unexpected failure for 2×2 matrix: %v", unconverged)
		}
		const tol = 1e-14
		if math.Abs(wr[0]-2) > tol || math.Abs(wr[1]-2) > tol {
			t.Errorf("unexpected real parts: got %v, %v, want 2, 2", wr[0], wr[1])
		}
		if wi[0] <= 0 || wi[0] != -wi[1] {
			t.Errorf("imaginary parts are not a conjugate pair: got %v, %v", wi[0], wi[1])
		}
		if math.Abs(wi[0]-math.Sqrt(3)) > tol {
			t.Errorf("unexpected imaginary part: got %v, want %v", wi[0], math.Sqrt(3))
		}
	})

	t.Run("RealPair", func(t *testing.T) {
		h := []float64{
			2, 1,
			1, 2,
		}
		wr := make([]float64, 2)
		wi := make([]float64, 2)
		if _, unconverged := impl.Hqr(2, 0, 1, h, 2, wr, wi, false, nil, 1); unconverged != 0 {
			t.Fatalf("unexpected failure for 2×2 matrix: %v", unconverged)
		}
		const tol = 1e-14
		lo, hi := math.Min(wr[0], wr[1]), math.Max(wr[0], wr[1])
		if math.Abs(lo-1) > tol || math.Abs(hi-3) > tol {
			t.Errorf("unexpected eigenvalues: got %v, %v, want 1, 3", lo, hi)
		}
		if wi[0] != 0 || wi[1] != 0 {
			t.Errorf("unexpected nonzero imaginary parts: got %v, %v", wi[0], wi[1])
		}
	})

	t.Run("Triangular", func(t *testing.T) {
		// An already triangular matrix deflates one root per outer
		// iteration without any QR steps.
		const n = 4
		h := randomHessenberg(n, n, rnd)
		for i := 1; i < n; i++ {
			h.Data[i*h.Stride+i-1] = 0
		}
		wr := make([]float64, n)
		wi := make([]float64, n)
		if _, unconverged := impl.Hqr(n, 0, n-1, h.Data, h.Stride, wr, wi, false, nil, 1); unconverged != 0 {
			t.Fatalf("unexpected failure for triangular matrix: %v", unconverged)
		}
		for i := 0; i < n; i++ {
			if wr[i] != h.Data[i*h.Stride+i] || wi[i] != 0 {
				t.Errorf("unexpected eigenvalue %d: got %v+%vi, want %v", i, wr[i], wi[i], h.Data[i*h.Stride+i])
			}
		}
	})

	t.Run("BudgetExhaustion", func(t *testing.T) {
		// NaN entries never satisfy the relative deflation test, so
		// the iteration must terminate when the budget runs out and
		// report the index of the first eigenvalue that failed to
		// converge instead of looping.
		const n = 3
		h := nanGeneral(n, n, n)
		wr := make([]float64, n)
		wi := make([]float64, n)
		_, unconverged := impl.Hqr(n, 0, n-1, h.Data, h.Stride, wr, wi, false, nil, 1)
		if unconverged != n {
			t.Errorf("unexpected failure index: got %v, want %v", unconverged, n)
		}
	})

	for _, n := range []int{1, 2, 3, 5, 10, 50} {
		for _, ldh := range []int{n, n + 4} {
			name := fmt.Sprintf("Random,n=%v,ldh=%v", n, ldh)
			t.Run(name, func(t *testing.T) {
				h := randomHessenberg(n, ldh, rnd)
				hOrig := cloneGeneral(h)
				z := eye(n, n)
				wr := make([]float64, n)
				wi := make([]float64, n)

				_, unconverged := impl.Hqr(n, 0, n-1, h.Data, h.Stride, wr, wi, true, z.Data, z.Stride)
				if unconverged != 0 {
					t.Fatalf("n=%v,ldh=%v: QR iteration did not converge: index %v", n, ldh, unconverged)
				}

				tol := 1e-13 * math.Max(1, frobNorm(hOrig)) * float64(n)
				checkSchurForm(t, h, wr, wi, tol)
				if res := residualOrthogonal(z); res > tol {
					t.Errorf("n=%v,ldh=%v: Z not orthogonal: residual %v", n, ldh, res)
				}
				if res := residualSimilarity(hOrig, z, h); res > tol {
					t.Errorf("n=%v,ldh=%v: A != Z*T*Zᵀ: residual %v", n, ldh, res)
				}
			})
		}
	}

	t.Run("Window", func(t *testing.T) {
		// Rows 0 and n-1 are isolated: the matrix is triangular
		// outside the window [1, n-2] and the isolated diagonal
		// entries are eigenvalues on their own.
		const n = 6
		ilo, ihi := 1, n-2
		h := randomHessenberg(n, n, rnd)
		h.Data[ilo*h.Stride+ilo-1] = 0
		h.Data[(ihi+1)*h.Stride+ihi] = 0
		for i := ilo; i <= ihi; i++ {
			h.Data[i*h.Stride] = 0
		}
		hOrig := cloneGeneral(h)
		z := eye(n, n)
		wr := make([]float64, n)
		wi := make([]float64, n)

		_, unconverged := impl.Hqr(n, ilo, ihi, h.Data, h.Stride, wr, wi, true, z.Data, z.Stride)
		if unconverged != 0 {
			t.Fatalf("QR iteration did not converge: index %v", unconverged)
		}
		if wr[0] != hOrig.Data[0] || wi[0] != 0 {
			t.Errorf("unexpected isolated eigenvalue at row 0: got %v+%vi", wr[0], wi[0])
		}
		last := (n - 1) * hOrig.Stride
		if wr[n-1] != hOrig.Data[last+n-1] || wi[n-1] != 0 {
			t.Errorf("unexpected isolated eigenvalue at row %d: got %v+%vi", n-1, wr[n-1], wi[n-1])
		}
		tol := 1e-13 * math.Max(1, frobNorm(hOrig)) * float64(n)
		if res := residualSimilarity(hOrig, z, h); res > tol {
			t.Errorf("A != Z*T*Zᵀ with window: residual %v", res)
		}
	})
}

// checkSchurForm verifies that h is upper quasi-triangular and that its
// diagonal blocks are consistent with the eigenvalues in wr and wi.
func checkSchurForm(t *testing.T, h blas64.General, wr, wi []float64, tol float64) {
	t.Helper()
	n := h.Rows
	for i := 0; i < n; i++ {
		for j := 0; j < i-1; j++ {
			if h.Data[i*h.Stride+j] != 0 {
				t.Errorf("H not quasi-triangular at (%v,%v): %v", i, j, h.Data[i*h.Stride+j])
			}
		}
	}
	for k := 0; k < n; k++ {
		switch {
		case wi[k] == 0:
			if d := math.Abs(wr[k] - h.Data[k*h.Stride+k]); d > tol {
				t.Errorf("real eigenvalue %d does not match diagonal: diff %v", k, d)
			}
			if k > 0 && h.Data[k*h.Stride+k-1] != 0 {
				// A real eigenvalue must not sit inside a 2×2 block.
				t.Errorf("nonzero subdiagonal left of real eigenvalue %d", k)
			}
		case wi[k] > 0:
			if k == n-1 || wr[k] != wr[k+1] || wi[k] != -wi[k+1] {
				t.Errorf("eigenvalue %d is not the first of a conjugate pair", k)
				continue
			}
			// The block eigenvalues are p ± sqrt(-q) with p the mean
			// of the diagonal and q the discriminant.
			x := h.Data[(k+1)*h.Stride+k+1]
			y := h.Data[k*h.Stride+k]
			w := h.Data[(k+1)*h.Stride+k] * h.Data[k*h.Stride+k+1]
			p := (x + y) / 2
			disc := (x-y)/2*(x-y)/2 + w
			var im float64
			if disc < 0 {
				im = math.Sqrt(-disc)
			}
			if d := math.Abs(wr[k] - p); d > tol {
				t.Errorf("real part of pair %d does not match block: diff %v", k, d)
			}
			if d := math.Abs(wi[k] - im); d > tol {
				t.Errorf("imaginary part of pair %d does not match block: diff %v", k, d)
			}
			k++
		default:
			t.Errorf("eigenvalue %d has negative imaginary part without preceding conjugate", k)
		}
	}
}
