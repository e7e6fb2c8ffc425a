// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testeispack

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas/blas64"

	"github.com/langou/tlapack/lapack/eispack"
)

type HqrFormShifter interface {
	HqrFormShift(n, ilo int, h []float64, ldh int, its, itn, en, l int, sh eispack.Shift) (eispack.Shift, eispack.ShiftStatus)
}

func HqrFormShiftTest(t *testing.T, impl HqrFormShifter) {
	rnd := rand.New(rand.NewPCG(1, 1))

	for _, n := range []int{4, 7} {
		for _, ldh := range []int{n, n + 3} {
			h := randomHessenberg(n, ldh, rnd)
			en := n - 1

			// A window of size one must deflate immediately with the
			// diagonal entry as the eigenvalue, even with the budget
			// exhausted.
			for _, itn := range []int{100, 0} {
				got, status := impl.HqrFormShift(n, 0, h.Data, h.Stride, 0, itn, en, en, eispack.Shift{})
				if status != eispack.ShiftOneRoot {
					t.Errorf("n=%v,itn=%v: unexpected status for 1×1 window: got %v, want ShiftOneRoot", n, itn, status)
				}
				if got.X != h.Data[en*h.Stride+en] {
					t.Errorf("n=%v,itn=%v: unexpected X for 1×1 window: got %v, want %v", n, itn, got.X, h.Data[en*h.Stride+en])
				}
			}

			// A window of size two must deflate as a 2×2 block with
			// the block values in X, Y and W.
			got, status := impl.HqrFormShift(n, 0, h.Data, h.Stride, 0, 100, en, en-1, eispack.Shift{})
			if status != eispack.ShiftTwoRoots {
				t.Errorf("n=%v: unexpected status for 2×2 window: got %v, want ShiftTwoRoots", n, status)
			}
			wantW := h.Data[en*h.Stride+en-1] * h.Data[(en-1)*h.Stride+en]
			if got.X != h.Data[en*h.Stride+en] || got.Y != h.Data[(en-1)*h.Stride+en-1] || got.W != wantW {
				t.Errorf("n=%v: unexpected 2×2 block values: got X=%v,Y=%v,W=%v", n, got.X, got.Y, got.W)
			}

			// A larger window with an exhausted budget must fail.
			_, status = impl.HqrFormShift(n, 0, h.Data, h.Stride, 0, 0, en, 0, eispack.Shift{})
			if status != eispack.ShiftExhausted {
				t.Errorf("n=%v: unexpected status for exhausted budget: got %v, want ShiftExhausted", n, status)
			}

			// The ordinary Francis shift comes from the trailing 2×2
			// block and must not modify the matrix.
			hOrig := cloneGeneral(h)
			got, status = impl.HqrFormShift(n, 0, h.Data, h.Stride, 3, 100, en, 0, eispack.Shift{})
			if status != eispack.ShiftNone {
				t.Errorf("n=%v: unexpected status for Francis shift: got %v, want ShiftNone", n, status)
			}
			if got.X != h.Data[en*h.Stride+en] || got.Y != h.Data[(en-1)*h.Stride+en-1] || got.W != wantW {
				t.Errorf("n=%v: unexpected Francis shift values: got X=%v,Y=%v,W=%v", n, got.X, got.Y, got.W)
			}
			if !equalGeneral(h, hOrig) {
				t.Errorf("n=%v: matrix modified by ordinary shift computation", n)
			}

			// After 10 (and 20) stagnant iterations the exceptional
			// shift kicks in: the diagonal of the window is shifted
			// by the old X and the shift values are reseeded from
			// the trailing subdiagonal magnitudes.
			for _, its := range []int{10, 20} {
				h := cloneGeneral(hOrig)
				x := h.Data[en*h.Stride+en]
				got, status := impl.HqrFormShift(n, 0, h.Data, h.Stride, its, 100, en, 0, eispack.Shift{T: 0.5})
				if status != eispack.ShiftNone {
					t.Errorf("n=%v,its=%v: unexpected status for exceptional shift: got %v, want ShiftNone", n, its, status)
				}
				if got.T != 0.5+x {
					t.Errorf("n=%v,its=%v: unexpected accumulated shift: got %v, want %v", n, its, got.T, 0.5+x)
				}
				for i := 0; i <= en; i++ {
					want := hOrig.Data[i*hOrig.Stride+i] - x
					if h.Data[i*h.Stride+i] != want {
						t.Errorf("n=%v,its=%v: diagonal entry %d not shifted: got %v, want %v", n, its, i, h.Data[i*h.Stride+i], want)
					}
				}
				s := math.Abs(h.Data[en*h.Stride+en-1]) + math.Abs(h.Data[(en-1)*h.Stride+en-2])
				if got.S != s || got.X != 0.75*s || got.Y != got.X || got.W != -0.4375*s*s {
					t.Errorf("n=%v,its=%v: unexpected exceptional shift values: got %+v", n, its, got)
				}
			}
		}
	}
}

func equalGeneral(a, b blas64.General) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			if a.Data[i*a.Stride+j] != b.Data[i*b.Stride+j] {
				return false
			}
		}
	}
	return true
}
