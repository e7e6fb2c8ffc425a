// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testeispack

import (
	"math/rand/v2"
	"testing"
)

type HqrSubdiagonalSearcher interface {
	HqrSubdiagonalSearch(n, ilo int, h []float64, ldh int, en int, norm float64) int
}

func HqrSubdiagonalSearchTest(t *testing.T, impl HqrSubdiagonalSearcher) {
	rnd := rand.New(rand.NewPCG(1, 1))

	for _, n := range []int{2, 5, 11} {
		for _, ldh := range []int{n, n + 2} {
			// With all subdiagonal entries of order one the search
			// must run to the top of the window.
			h := randomHessenberg(n, ldh, rnd)
			for i := 1; i < n; i++ {
				h.Data[i*h.Stride+i-1] = 1 + rnd.Float64()
			}
			norm := frobNorm(h)
			if l := impl.HqrSubdiagonalSearch(n, 0, h.Data, h.Stride, n-1, norm); l != 0 {
				t.Errorf("n=%v: unexpected deflation row without negligible subdiagonals: got %v, want 0", n, l)
			}

			// An exactly zero subdiagonal entry splits the window at
			// that row.
			for _, k := range []int{1, n - 1} {
				h := randomHessenberg(n, ldh, rnd)
				for i := 1; i < n; i++ {
					h.Data[i*h.Stride+i-1] = 1 + rnd.Float64()
				}
				h.Data[k*h.Stride+k-1] = 0
				if l := impl.HqrSubdiagonalSearch(n, 0, h.Data, h.Stride, n-1, norm); l != k {
					t.Errorf("n=%v: unexpected deflation row for zero subdiagonal at %v: got %v", n, k, l)
				}
				// A tiny entry relative to its diagonal neighbors is
				// just as negligible.
				h.Data[k*h.Stride+k-1] = 1e-300
				if l := impl.HqrSubdiagonalSearch(n, 0, h.Data, h.Stride, n-1, norm); l != k {
					t.Errorf("n=%v: unexpected deflation row for negligible subdiagonal at %v: got %v", n, k, l)
				}

				// The search is read-only and repeated calls agree.
				hOrig := cloneGeneral(h)
				l1 := impl.HqrSubdiagonalSearch(n, 0, h.Data, h.Stride, n-1, norm)
				l2 := impl.HqrSubdiagonalSearch(n, 0, h.Data, h.Stride, n-1, norm)
				if l1 != l2 {
					t.Errorf("n=%v: search is not idempotent: got %v then %v", n, l1, l2)
				}
				if !equalGeneral(h, hOrig) {
					t.Errorf("n=%v: matrix modified by search", n)
				}
			}
		}
	}
}
