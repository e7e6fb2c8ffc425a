// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eispack

import "math"

// HqrQRStep performs one implicit double-shift QR step on rows and
// columns l..en of the upper Hessenberg matrix H, using the shift values
// x, y and w computed by HqrFormShift.
//
// The step first searches the window for two consecutive small
// subdiagonal elements so that the bulge can be introduced as far down as
// the shifts allow, then chases the bulge to the bottom of the window
// with a chain of 3×3 (and finally 2×2) Householder reflections. Row
// updates extend to column n-1 and column updates to row min(en,k+3) so
// that the full Schur form, not only the window, stays consistent.
//
// If wantz is true, the same reflections are applied to columns of the
// accumulator Z on rows ilo..ihi.
//
// Reflector directions are computed from entries scaled by their 1-norm,
// so the step does not overflow for entries of widely different
// magnitude. The step may leave transient nonzero entries below the first
// subdiagonal; the next deflation check treats these as iteration noise.
//
// HqrQRStep requires l <= en-2 and always succeeds.
//
// HqrQRStep is an internal routine. It is exported for testing purposes.
func (impl Implementation) HqrQRStep(n, ilo, ihi, l, en int, x, y, w float64, h []float64, ldh int, wantz bool, z []float64, ldz int) {
	switch {
	case n < 0:
		panic(nLT0)
	case ilo < 0 || max(0, n-1) < ilo:
		panic(badIlo)
	case ihi < min(ilo, n-1) || n <= ihi:
		panic(badIhi)
	case en < ilo || ihi < en:
		panic(badEn)
	case l < ilo || en-2 < l:
		panic(badL)
	case ldh < max(1, n):
		panic(badLdH)
	case len(h) < (n-1)*ldh+n:
		panic(shortH)
	case ldz < 1, wantz && ldz < n:
		panic(badLdZ)
	case wantz && len(z) < (n-1)*ldz+n:
		panic(shortZ)
	}

	na := en - 1
	enm2 := en - 2

	// Look for two consecutive small subdiagonal elements so that the
	// bulge can start below them. The reflector direction (p,q,r)
	// computed at the chosen row seeds the first reflection of the
	// sweep.
	var (
		m       int
		p, q, r float64
	)
	for m = enm2; ; m-- {
		zz := h[m*ldh+m]
		r = x - zz
		s := y - zz
		p = (r*s-w)/h[(m+1)*ldh+m] + h[m*ldh+m+1]
		q = h[(m+1)*ldh+m+1] - zz - r - s
		r = h[(m+2)*ldh+m+1]
		s = math.Abs(p) + math.Abs(q) + math.Abs(r)
		p /= s
		q /= s
		r /= s
		if m == l {
			break
		}
		tst1 := math.Abs(p) * (math.Abs(h[(m-1)*ldh+m-1]) + math.Abs(zz) + math.Abs(h[(m+1)*ldh+m+1]))
		tst2 := tst1 + math.Abs(h[m*ldh+m-1])*(math.Abs(q)+math.Abs(r))
		if tst2 == tst1 {
			break
		}
	}

	// Clear entries left over from the bulge of the previous sweep.
	for i := m + 2; i <= en; i++ {
		h[i*ldh+i-2] = 0
		if i > m+2 {
			h[i*ldh+i-3] = 0
		}
	}

	// Double QR sweep on rows l..en and columns m..en.
	for k := m; k <= na; k++ {
		notlast := k != na
		if k != m {
			p = h[k*ldh+k-1]
			q = h[(k+1)*ldh+k-1]
			r = 0
			if notlast {
				r = h[(k+2)*ldh+k-1]
			}
			x = math.Abs(p) + math.Abs(q) + math.Abs(r)
			if x == 0 {
				// Bulge already annihilated at this row.
				continue
			}
			p /= x
			q /= x
			r /= x
		}
		s := math.Copysign(math.Sqrt(p*p+q*q+r*r), p)
		switch {
		case k != m:
			h[k*ldh+k-1] = -s * x
		case l != m:
			h[k*ldh+k-1] = -h[k*ldh+k-1]
		}
		p += s
		x = p / s
		y = q / s
		zz := r / s
		q /= p
		r /= p

		if notlast {
			// Row modification.
			for j := k; j < n; j++ {
				p = h[k*ldh+j] + q*h[(k+1)*ldh+j] + r*h[(k+2)*ldh+j]
				h[k*ldh+j] -= p * x
				h[(k+1)*ldh+j] -= p * y
				h[(k+2)*ldh+j] -= p * zz
			}
			jmax := min(en, k+3)
			// Column modification.
			for i := 0; i <= jmax; i++ {
				p = x*h[i*ldh+k] + y*h[i*ldh+k+1] + zz*h[i*ldh+k+2]
				h[i*ldh+k] -= p
				h[i*ldh+k+1] -= p * q
				h[i*ldh+k+2] -= p * r
			}
			if wantz {
				// Accumulate transformations.
				for i := ilo; i <= ihi; i++ {
					p = x*z[i*ldz+k] + y*z[i*ldz+k+1] + zz*z[i*ldz+k+2]
					z[i*ldz+k] -= p
					z[i*ldz+k+1] -= p * q
					z[i*ldz+k+2] -= p * r
				}
			}
		} else {
			// Row modification.
			for j := k; j < n; j++ {
				p = h[k*ldh+j] + q*h[(k+1)*ldh+j]
				h[k*ldh+j] -= p * x
				h[(k+1)*ldh+j] -= p * y
			}
			jmax := min(en, k+3)
			// Column modification.
			for i := 0; i <= jmax; i++ {
				p = x*h[i*ldh+k] + y*h[i*ldh+k+1]
				h[i*ldh+k] -= p
				h[i*ldh+k+1] -= p * q
			}
			if wantz {
				// Accumulate transformations.
				for i := ilo; i <= ihi; i++ {
					p = x*z[i*ldz+k] + y*z[i*ldz+k+1]
					z[i*ldz+k] -= p
					z[i*ldz+k+1] -= p * q
				}
			}
		}
	}
}
