// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eispack

import "math"

// Hqr computes the eigenvalues of the n×n upper Hessenberg matrix H by
// the implicit double-shift QR method, reducing H in place to real Schur
// form: upper quasi-triangular with 1×1 blocks holding real eigenvalues
// and 2×2 blocks holding complex conjugate pairs.
//
// ilo and ihi determine the active window. H must already be upper
// quasi-triangular in rows and columns outside [ilo,ihi] (as produced by
// a balancing routine); if the full matrix is active, ilo = 0 and
// ihi = n-1. Eigenvalues on the diagonal outside the window are recorded
// directly.
//
// On return wr and wi contain the real and imaginary parts of the
// eigenvalues, indexed by their final row in the Schur form. A complex
// conjugate pair occupying rows k and k+1 has wr[k] == wr[k+1] and
// wi[k] == -wi[k+1] > 0. wr and wi must have length n.
//
// If wantz is true, the rotations applied to H are accumulated into the
// n×n matrix Z, which the caller initializes to the identity or to the
// orthogonal factor of the Hessenberg reduction. At termination
//
//	A = Z * T * Zᵀ
//
// where A is the matrix Z represented on entry and T is the final
// content of H. If wantz is false, z is not referenced.
//
// The iteration is limited to a budget of 30·n QR steps across the whole
// run. norm is the 1-norm-like magnitude of H accumulated over its upper
// Hessenberg part; it is needed by HqrSchurToEigen.
//
// unconverged is 0 if all eigenvalues converged. Otherwise the
// eigenvalue at (0-based) row unconverged-1 failed to converge within the
// budget; the values in wr and wi at rows unconverged..n-1 are correct,
// the rest are not, and H is only partially reduced.
func (impl Implementation) Hqr(n, ilo, ihi int, h []float64, ldh int, wr, wi []float64, wantz bool, z []float64, ldz int) (norm float64, unconverged int) {
	switch {
	case n < 0:
		panic(nLT0)
	case ilo < 0 || max(0, n-1) < ilo:
		panic(badIlo)
	case ihi < min(ilo, n-1) || n <= ihi:
		panic(badIhi)
	case ldh < max(1, n):
		panic(badLdH)
	case ldz < 1, wantz && ldz < n:
		panic(badLdZ)
	}

	if n == 0 {
		return 0, 0
	}

	switch {
	case len(h) < (n-1)*ldh+n:
		panic(shortH)
	case len(wr) != n:
		panic(badLenWr)
	case len(wi) != n:
		panic(badLenWi)
	case wantz && len(z) < (n-1)*ldz+n:
		panic(shortZ)
	}

	// Accumulate the norm of the upper Hessenberg part and record the
	// eigenvalues already isolated outside [ilo,ihi].
	k := 0
	for i := 0; i < n; i++ {
		for j := k; j < n; j++ {
			norm += math.Abs(h[i*ldh+j])
		}
		k = i
		if i < ilo || i > ihi {
			wr[i] = h[i*ldh+i]
			wi[i] = 0
		}
	}

	var sh Shift
	itn := 30 * n
	en := ihi
	for en >= ilo {
		its := 0
		for {
			l := impl.HqrSubdiagonalSearch(n, ilo, h, ldh, en, norm)
			var status ShiftStatus
			sh, status = impl.HqrFormShift(n, ilo, h, ldh, its, itn, en, l, sh)
			if status == ShiftNone {
				impl.HqrQRStep(n, ilo, ihi, l, en, sh.X, sh.Y, sh.W, h, ldh, wantz, z, ldz)
				its++
				itn--
				continue
			}
			switch status {
			case ShiftOneRoot:
				h[en*ldh+en] = sh.X + sh.T
				wr[en] = h[en*ldh+en]
				wi[en] = 0
				// The subdiagonal entry is negligible and entries
				// further left are stale bulge storage for exact
				// zeros; flush the row so the final form is
				// genuinely quasi-triangular.
				for j := ilo; j < en; j++ {
					h[en*ldh+j] = 0
				}
				en--
			case ShiftTwoRoots:
				impl.hqrTwoRoots(n, ilo, ihi, en, &sh, h, ldh, wr, wi, wantz, z, ldz)
				en -= 2
			case ShiftExhausted:
				return norm, en + 1
			}
			break
		}
	}
	return norm, 0
}

// hqrTwoRoots resolves the deflated trailing 2×2 block at rows en-1, en
// into either two real eigenvalues, triangularizing the block with a
// Givens rotation, or a complex conjugate pair left in place as a 2×2
// Schur block.
func (impl Implementation) hqrTwoRoots(n, ilo, ihi, en int, sh *Shift, h []float64, ldh int, wr, wi []float64, wantz bool, z []float64, ldz int) {
	na := en - 1
	p := (sh.Y - sh.X) / 2
	q := p*p + sh.W
	zz := math.Sqrt(math.Abs(q))
	h[en*ldh+en] = sh.X + sh.T
	x := h[en*ldh+en]
	h[na*ldh+na] = sh.Y + sh.T
	// Flush the negligible subdiagonal below the block and the stale
	// bulge storage to the left of both block rows.
	for j := ilo; j < na; j++ {
		h[na*ldh+j] = 0
		h[en*ldh+j] = 0
	}

	if q < 0 {
		// Complex conjugate pair.
		wr[na] = x + p
		wr[en] = x + p
		wi[na] = zz
		wi[en] = -zz
		return
	}

	// Real pair.
	zz = p + math.Copysign(zz, p)
	wr[na] = x + zz
	wr[en] = wr[na]
	if zz != 0 {
		wr[en] = x - sh.W/zz
	}
	wi[na] = 0
	wi[en] = 0

	// Triangularize the block with a Givens rotation zeroing H[en,na].
	// The scale-robust form divides by the 1-norm of the pair before
	// taking the hypotenuse.
	x = h[en*ldh+na]
	s := math.Abs(x) + math.Abs(zz)
	p = x / s
	q = zz / s
	r := math.Hypot(p, q)
	p /= r
	q /= r
	// Row modification.
	for j := na; j < n; j++ {
		zz = h[na*ldh+j]
		h[na*ldh+j] = q*zz + p*h[en*ldh+j]
		h[en*ldh+j] = q*h[en*ldh+j] - p*zz
	}
	// Column modification.
	for i := 0; i <= en; i++ {
		zz = h[i*ldh+na]
		h[i*ldh+na] = q*zz + p*h[i*ldh+en]
		h[i*ldh+en] = q*h[i*ldh+en] - p*zz
	}
	// Accumulate transformations.
	if wantz {
		for i := ilo; i <= ihi; i++ {
			zz = z[i*ldz+na]
			z[i*ldz+na] = q*zz + p*z[i*ldz+en]
			z[i*ldz+en] = q*z[i*ldz+en] - p*zz
		}
	}
	// The rotation annihilates the subdiagonal entry up to roundoff.
	h[en*ldh+na] = 0
}
