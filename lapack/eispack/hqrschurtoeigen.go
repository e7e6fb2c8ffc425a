// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eispack

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
)

// HqrSchurToEigen computes the eigenvectors of the real matrix that was
// reduced to the upper quasi-triangular form H by Hqr, by back
// substitution through H followed by multiplication with the accumulated
// transformation matrix Z.
//
// On entry, H, wr, wi and norm must be the outputs of a successful call
// to Hqr with wantz true, and Z must hold the accumulated transformations
// of that call. ilo and ihi are the window bounds passed to Hqr.
//
// On return, Z holds the eigenvectors in its columns, each normalized to
// unit 2-norm:
//   - if wi[j] == 0, column j is the real eigenvector for wr[j];
//   - if wi[j] > 0, columns j and j+1 are the real and imaginary parts of
//     the complex eigenvector for wr[j] + i·wi[j], and the eigenvector for
//     the conjugate eigenvalue wr[j+1] + i·wi[j+1] is their conjugate:
//
//     v_j = Z[:,j] + i·Z[:,j+1],  v_{j+1} = conj(v_j).
//
// The upper triangle of H is overwritten by intermediate vectors of the
// quasi-triangular form and must not be interpreted as the Schur form
// afterwards.
//
// A degenerate diagonal block with an exactly singular back-substitution
// pivot is perturbed by a norm-relative epsilon so that a vector is still
// produced; singular is 0 if no block was degenerate and otherwise the
// 1-based index of the first eigenvector whose block required the
// perturbation. Processing continues past degenerate blocks.
func (impl Implementation) HqrSchurToEigen(n, ilo, ihi int, h []float64, ldh int, wr, wi []float64, z []float64, ldz int, norm float64) (singular int) {
	switch {
	case n < 0:
		panic(nLT0)
	case ilo < 0 || max(0, n-1) < ilo:
		panic(badIlo)
	case ihi < min(ilo, n-1) || n <= ihi:
		panic(badIhi)
	case ldh < max(1, n):
		panic(badLdH)
	case ldz < max(1, n):
		panic(badLdZ)
	case norm < 0:
		panic(badNorm)
	}

	if n == 0 {
		return 0
	}

	switch {
	case len(h) < (n-1)*ldh+n:
		panic(shortH)
	case len(wr) != n:
		panic(badLenWr)
	case len(wi) != n:
		panic(badLenWi)
	case len(z) < (n-1)*ldz+n:
		panic(shortZ)
	}

	if norm == 0 {
		return 0
	}

	// Back substitution through the quasi-triangular form. The vector
	// for the eigenvalue at row en is accumulated in column en of H
	// (columns en-1 and en for a complex pair). s, zz and r carry the
	// coupling from the second row of a 2×2 block to its first row.
	var s, zz, r float64
	for en := n - 1; en >= 0; en-- {
		p := wr[en]
		q := wi[en]
		na := en - 1
		switch {
		case q > 0:
			// First row of a complex pair; handled together with
			// the second row.

		case q == 0:
			// Real eigenvalue: real vector in column en.
			m := en
			h[en*ldh+en] = 1
			for i := en - 1; i >= 0; i-- {
				w := h[i*ldh+i] - p
				r = 0
				for j := m; j <= en; j++ {
					r += h[i*ldh+j] * h[j*ldh+en]
				}
				if wi[i] < 0 {
					zz = w
					s = r
					continue
				}
				m = i
				if wi[i] == 0 {
					t := w
					if t == 0 {
						// Defective eigenvalue: perturb the zero
						// pivot at the scale of the matrix.
						if singular == 0 {
							singular = en + 1
						}
						t = dlamchP * norm
					}
					h[i*ldh+en] = -r / t
				} else {
					// First row of a 2×2 block: solve the real
					// 2×2 system for rows i and i+1.
					x := h[i*ldh+i+1]
					y := h[(i+1)*ldh+i]
					q := (wr[i]-p)*(wr[i]-p) + wi[i]*wi[i]
					t := (x*s - zz*r) / q
					h[i*ldh+en] = t
					if math.Abs(x) > math.Abs(zz) {
						h[(i+1)*ldh+en] = (-r - w*t) / x
					} else {
						h[(i+1)*ldh+en] = (-s - y*t) / zz
					}
				}
				// Overflow control.
				t := math.Abs(h[i*ldh+en])
				if t != 0 {
					tst1 := t
					tst2 := tst1 + 1/tst1
					if tst2 <= tst1 {
						for j := i; j <= en; j++ {
							h[j*ldh+en] /= t
						}
					}
				}
			}

		default:
			// Second row of a complex pair: complex vector with
			// real part in column na and imaginary part in
			// column en.
			m := na
			// Choose the last components so that the eigenvector
			// matrix stays triangular.
			if math.Abs(h[en*ldh+na]) > math.Abs(h[na*ldh+en]) {
				h[na*ldh+na] = q / h[en*ldh+na]
				h[na*ldh+en] = -(h[en*ldh+en] - p) / h[en*ldh+na]
			} else {
				c := complex(0, -h[na*ldh+en]) / complex(h[na*ldh+na]-p, q)
				h[na*ldh+na] = real(c)
				h[na*ldh+en] = imag(c)
			}
			h[en*ldh+na] = 0
			h[en*ldh+en] = 1
			for i := na - 1; i >= 0; i-- {
				w := h[i*ldh+i] - p
				var ra, sa float64
				for j := m; j <= en; j++ {
					ra += h[i*ldh+j] * h[j*ldh+na]
					sa += h[i*ldh+j] * h[j*ldh+en]
				}
				if wi[i] < 0 {
					zz = w
					r = ra
					s = sa
					continue
				}
				m = i
				if wi[i] == 0 {
					c := complex(-ra, -sa) / complex(w, q)
					h[i*ldh+na] = real(c)
					h[i*ldh+en] = imag(c)
				} else {
					// First row of a 2×2 block: solve the complex
					// 2×2 system for rows i and i+1.
					x := h[i*ldh+i+1]
					y := h[(i+1)*ldh+i]
					vr := (wr[i]-p)*(wr[i]-p) + wi[i]*wi[i] - q*q
					vi := (wr[i] - p) * 2 * q
					if vr == 0 && vi == 0 {
						if singular == 0 {
							singular = en + 1
						}
						vr = dlamchP * norm *
							(math.Abs(w) + math.Abs(q) + math.Abs(x) + math.Abs(y) + math.Abs(zz))
					}
					c := complex(x*r-zz*ra+q*sa, x*s-zz*sa-q*ra) / complex(vr, vi)
					h[i*ldh+na] = real(c)
					h[i*ldh+en] = imag(c)
					if math.Abs(x) > math.Abs(zz)+math.Abs(q) {
						h[(i+1)*ldh+na] = (-ra - w*h[i*ldh+na] + q*h[i*ldh+en]) / x
						h[(i+1)*ldh+en] = (-sa - w*h[i*ldh+en] - q*h[i*ldh+na]) / x
					} else {
						c := complex(-r-y*h[i*ldh+na], -s-y*h[i*ldh+en]) / complex(zz, q)
						h[(i+1)*ldh+na] = real(c)
						h[(i+1)*ldh+en] = imag(c)
					}
				}
				// Overflow control.
				t := math.Max(math.Abs(h[i*ldh+na]), math.Abs(h[i*ldh+en]))
				if t != 0 {
					tst1 := t
					tst2 := tst1 + 1/tst1
					if tst2 <= tst1 {
						for j := i; j <= en; j++ {
							h[j*ldh+na] /= t
							h[j*ldh+en] /= t
						}
					}
				}
			}
		}
	}

	bi := blas64.Implementation()

	// Vectors of isolated roots are unit vectors already; copy their
	// rows of the triangular factor directly.
	for i := 0; i < n; i++ {
		if ilo <= i && i <= ihi {
			continue
		}
		for j := i; j < n; j++ {
			z[i*ldz+j] = h[i*ldh+j]
		}
	}

	// Multiply by the transformation matrix to give the vectors of the
	// original full matrix. Column j of the result only involves
	// columns ilo..min(j,ihi) of Z, so the product can be formed in
	// place walking j from the right.
	for j := n - 1; j >= ilo; j-- {
		m := min(j, ihi)
		for i := ilo; i <= ihi; i++ {
			z[i*ldz+j] = bi.Ddot(m-ilo+1, z[i*ldz+ilo:], 1, h[ilo*ldh+j:], ldh)
		}
	}

	// Normalize each eigenvector to unit 2-norm. Columns of a complex
	// pair are scaled jointly so that the complex vector has unit norm.
	for j := 0; j < n; j++ {
		switch {
		case wi[j] == 0:
			t := bi.Dnrm2(n, z[j:], ldz)
			if t != 0 {
				bi.Dscal(n, 1/t, z[j:], ldz)
			}
		case wi[j] > 0:
			t := math.Hypot(bi.Dnrm2(n, z[j:], ldz), bi.Dnrm2(n, z[j+1:], ldz))
			if t != 0 {
				bi.Dscal(n, 1/t, z[j:], ldz)
				bi.Dscal(n, 1/t, z[j+1:], ldz)
			}
		}
	}
	return singular
}
