// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testeispack

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

type HqrQRSteper interface {
	HqrQRStep(n, ilo, ihi, l, en int, x, y, w float64, h []float64, ldh int, wantz bool, z []float64, ldz int)
}

func HqrQRStepTest(t *testing.T, impl HqrQRSteper) {
	rnd := rand.New(rand.NewPCG(1, 1))

	for _, n := range []int{3, 4, 7, 12} {
		for _, ldh := range []int{n, n + 3} {
			h := randomHessenberg(n, ldh, rnd)
			hOrig := cloneGeneral(h)
			z := eye(n, n)
			en := n - 1
			na := en - 1

			// Francis shifts from the trailing 2×2 block.
			x := h.Data[en*h.Stride+en]
			y := h.Data[na*h.Stride+na]
			w := h.Data[en*h.Stride+na] * h.Data[na*h.Stride+en]

			impl.HqrQRStep(n, 0, n-1, 0, en, x, y, w, h.Data, h.Stride, true, z.Data, z.Stride)

			const tol = 1e-13
			if res := residualOrthogonal(z); res > tol {
				t.Errorf("n=%v,ldh=%v: Z not orthogonal after sweep: residual %v", n, ldh, res)
			}

			// The sweep realizes an orthogonal similarity: Zᵀ*H₀*Z
			// must match the updated H on the Hessenberg part. Below
			// the first subdiagonal the similarity gives zeros while
			// the sweep may leave stale storage, which the deflation
			// scan treats as noise, so compare only where defined.
			want := zeros(n, n, n)
			tmp := zeros(n, n, n)
			blas64.Gemm(blas.Trans, blas.NoTrans, 1, z, hOrig, 0, tmp)
			blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, tmp, z, 0, want)
			scale := frobNorm(hOrig)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					wij := want.Data[i*want.Stride+j]
					if j < i-1 {
						if math.Abs(wij) > tol*scale {
							t.Errorf("n=%v,ldh=%v: similarity transform not Hessenberg at (%v,%v): %v", n, ldh, i, j, wij)
						}
						continue
					}
					if d := math.Abs(wij - h.Data[i*h.Stride+j]); d > tol*scale {
						t.Errorf("n=%v,ldh=%v: H and Zᵀ*H₀*Z differ at (%v,%v) by %v", n, ldh, i, j, d)
					}
				}
			}

			// Without the accumulator the matrix update is identical.
			h2 := cloneGeneral(hOrig)
			impl.HqrQRStep(n, 0, n-1, 0, en, x, y, w, h2.Data, h2.Stride, false, nil, 1)
			if !equalGeneral(h, h2) {
				t.Errorf("n=%v,ldh=%v: H update differs between wantz=true and wantz=false", n, ldh)
			}
		}
	}
}
