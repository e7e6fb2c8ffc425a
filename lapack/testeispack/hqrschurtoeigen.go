// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testeispack

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
)

type HqrSchurToEigener interface {
	Hqrer
	HqrSchurToEigen(n, ilo, ihi int, h []float64, ldh int, wr, wi []float64, z []float64, ldz int, norm float64) (singular int)
}

func HqrSchurToEigenTest(t *testing.T, impl HqrSchurToEigener) {
	rnd := rand.New(rand.NewPCG(1, 1))

	for _, n := range []int{1, 2, 3, 5, 10, 30} {
		for _, ldh := range []int{n, n + 2} {
			name := fmt.Sprintf("Random,n=%v,ldh=%v", n, ldh)
			t.Run(name, func(t *testing.T) {
				h := randomHessenberg(n, ldh, rnd)
				hOrig := cloneGeneral(h)
				z := eye(n, n)
				wr := make([]float64, n)
				wi := make([]float64, n)

				norm, unconverged := impl.Hqr(n, 0, n-1, h.Data, h.Stride, wr, wi, true, z.Data, z.Stride)
				if unconverged != 0 {
					t.Fatalf("QR iteration did not converge: index %v", unconverged)
				}
				if singular := impl.HqrSchurToEigen(n, 0, n-1, h.Data, h.Stride, wr, wi, z.Data, z.Stride, norm); singular != 0 {
					t.Logf("singular block reported at eigenvector %v", singular)
				}

				// Each eigenpair must satisfy A*v = λ*v up to
				// roundoff at the scale of A.
				tol := 1e-12 * math.Max(1, frobNorm(hOrig)) * float64(n)
				for j := 0; j < n; j++ {
					if res := eigenResidual(hOrig, wr, wi, z, j); res > tol {
						t.Errorf("large residual for eigenpair %v: %v", j, res)
					}
				}

				// Eigenvectors are normalized to unit 2-norm.
				for j := 0; j < n; j++ {
					if wi[j] < 0 {
						// Conjugate of the preceding vector.
						continue
					}
					if d := math.Abs(vectorNorm(z, wi, j) - 1); d > 1e-13 {
						t.Errorf("eigenvector %v does not have unit norm: off by %v", j, d)
					}
				}
			})
		}
	}

	t.Run("ZeroMatrix", func(t *testing.T) {
		// A zero matrix has zero norm; the vectors are left as the
		// accumulated transformations.
		const n = 3
		h := zeros(n, n, n)
		z := eye(n, n)
		wr := make([]float64, n)
		wi := make([]float64, n)
		norm, unconverged := impl.Hqr(n, 0, n-1, h.Data, h.Stride, wr, wi, true, z.Data, z.Stride)
		if unconverged != 0 {
			t.Fatalf("QR iteration did not converge: index %v", unconverged)
		}
		if norm != 0 {
			t.Fatalf("unexpected nonzero norm for zero matrix: %v", norm)
		}
		if singular := impl.HqrSchurToEigen(n, 0, n-1, h.Data, h.Stride, wr, wi, z.Data, z.Stride, norm); singular != 0 {
			t.Errorf("unexpected singular index for zero matrix: %v", singular)
		}
	})
}
