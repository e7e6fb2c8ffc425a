// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eispack

import "math"

// ShiftStatus reports the outcome of a deflation check performed by
// HqrFormShift.
type ShiftStatus int

const (
	// ShiftNone indicates that no deflation occurred. The shift state
	// has been updated and the caller must perform another QR step.
	ShiftNone ShiftStatus = iota
	// ShiftOneRoot indicates that the trailing 1×1 block has deflated.
	// Shift.X holds the real eigenvalue at row en, up to the
	// accumulated diagonal shift Shift.T.
	ShiftOneRoot
	// ShiftTwoRoots indicates that the trailing 2×2 block at rows
	// en-1, en has deflated. Shift.X, Shift.Y and Shift.W characterize
	// the block; the sign of the discriminant ((X-Y)/2)²+W decides
	// between two real eigenvalues and a complex conjugate pair.
	ShiftTwoRoots
	// ShiftExhausted indicates that the iteration budget has run out
	// before the eigenvalue at row en converged. No further progress
	// is possible.
	ShiftExhausted
)

// Shift holds the scalar state of the implicit double-shift QR iteration.
// It is threaded by value through the outer iteration of Hqr so that no
// hidden aliasing exists between calls.
type Shift struct {
	// S is the scale used by the exceptional shift.
	S float64
	// T is the shift of origin accumulated on the diagonal. It must be
	// added back to diagonal entries when eigenvalues are recorded.
	T float64
	// X and Y estimate the two eigenvalues of the trailing 2×2 block
	// that define the implicit double shift.
	X, Y float64
	// W is the product of the off-diagonal entries of the trailing
	// 2×2 block.
	W float64
}

// HqrFormShift checks the trailing block of the active window [l,en] of
// the upper Hessenberg matrix H for deflation and, if the window has not
// deflated, computes the shifts for the next implicit double-shift QR
// step.
//
// its is the number of QR steps performed since the last deflation and
// itn is the remaining global iteration budget. After 10 and again after
// 20 stagnant iterations an exceptional shift is used: the diagonal of
// rows ilo..en is shifted by X, the accumulated shift is recorded in T,
// and the shift values are reseeded from the magnitudes of the two
// trailing subdiagonal entries to break cyclic stagnation.
//
// The window-size checks precede the budget check, so a window that
// deflates on the same call on which the budget reaches zero still
// reports the deflation.
//
// HqrFormShift is an internal routine. It is exported for testing
// purposes.
func (impl Implementation) HqrFormShift(n, ilo int, h []float64, ldh int, its, itn, en, l int, sh Shift) (Shift, ShiftStatus) {
	switch {
	case n < 0:
		panic(nLT0)
	case ilo < 0 || max(0, n-1) < ilo:
		panic(badIlo)
	case en < ilo || n <= en:
		panic(badEn)
	case l < ilo || en < l:
		panic(badL)
	case ldh < max(1, n):
		panic(badLdH)
	case len(h) < (n-1)*ldh+n:
		panic(shortH)
	case its < 0:
		panic(badIts)
	case itn < 0:
		panic(badItn)
	}

	sh.X = h[en*ldh+en]
	if l == en {
		return sh, ShiftOneRoot
	}
	sh.Y = h[(en-1)*ldh+en-1]
	sh.W = h[en*ldh+en-1] * h[(en-1)*ldh+en]
	if l == en-1 {
		return sh, ShiftTwoRoots
	}
	if itn == 0 {
		return sh, ShiftExhausted
	}
	if its == 10 || its == 20 {
		// Exceptional shift.
		sh.T += sh.X
		for i := ilo; i <= en; i++ {
			h[i*ldh+i] -= sh.X
		}
		sh.S = math.Abs(h[en*ldh+en-1]) + math.Abs(h[(en-1)*ldh+en-2])
		sh.X = 0.75 * sh.S
		sh.Y = sh.X
		sh.W = -0.4375 * sh.S * sh.S
	}
	return sh, ShiftNone
}
