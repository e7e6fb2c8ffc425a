// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eispack

import "math"

// HqrSubdiagonalSearch returns the largest index l in [ilo,en] for which
// the subdiagonal element H[l,l-1] is negligible compared with its
// diagonal neighbors, or ilo if no subdiagonal within the window is
// negligible. A deflated block therefore starts at row l.
//
// The element is negligible when adding its magnitude to the scale
//
//	s = |H[l-1,l-1]| + |H[l,l]|
//
// does not change s in floating point. A zero scale falls back to norm,
// a norm of the full matrix computed by Hqr, so that the test stays
// relative for rows whose diagonal neighborhood vanishes.
//
// HqrSubdiagonalSearch does not modify H and repeated calls on an
// unmodified window return the same index.
//
// HqrSubdiagonalSearch is an internal routine. It is exported for testing
// purposes.
func (impl Implementation) HqrSubdiagonalSearch(n, ilo int, h []float64, ldh int, en int, norm float64) (l int) {
	switch {
	case n < 0:
		panic(nLT0)
	case ilo < 0 || max(0, n-1) < ilo:
		panic(badIlo)
	case en < ilo || n <= en:
		panic(badEn)
	case ldh < max(1, n):
		panic(badLdH)
	case len(h) < (n-1)*ldh+n:
		panic(shortH)
	case norm < 0:
		panic(badNorm)
	}

	for l = en; l > ilo; l-- {
		s := math.Abs(h[(l-1)*ldh+l-1]) + math.Abs(h[l*ldh+l])
		if s == 0 {
			s = norm
		}
		tst1 := s
		tst2 := tst1 + math.Abs(h[l*ldh+l-1])
		if tst2 == tst1 {
			break
		}
	}
	return l
}
