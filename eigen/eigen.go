// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eigen computes eigenvalues and eigenvectors of real, dense,
// unsymmetric matrices.
//
// The matrix is reduced to upper Hessenberg form by orthogonal
// similarity transformations and the eigenvalues are found by the
// implicit double-shift QR iteration of package
// github.com/langou/tlapack/lapack/eispack. Eigenvectors, when requested,
// are obtained by back substitution through the real Schur form and
// transformed to the original basis.
package eigen

import (
	"gonum.org/v1/gonum/blas"
	lapackimpl "gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"

	"github.com/langou/tlapack/lapack/eispack"
)

// Decomposition holds the eigendecomposition of a real square matrix.
//
// The eigenvalues are returned in an order determined by the QR
// iteration, with each complex conjugate pair adjacent and the member
// with positive imaginary part first.
//
// A failed decomposition is still partially valid: on
// NonConvergenceError, eigenvalues at indices greater than the reported
// index converged; on SingularBlockError all values and all vectors but
// the reported one are usable.
//
// Example usage:
//
//	d, err := eigen.Decompose(a, true)
//	if err != nil {
//	    // Handle partial results.
//	}
//	values := d.Values(nil)
//	vectors := d.Vectors()
//
// Reference: B.T. Smith et al., Matrix Eigensystem Routines — EISPACK
// Guide, Lecture Notes in Computer Science 6, Springer, 1976 (routine
// HQR2).
type Decomposition struct {
	n       int
	vectors bool
	wr, wi  []float64
	schur   *mat.Dense
	z       *mat.Dense
}

// Decompose computes the eigenvalues of the square matrix a and, if
// vectors is true, its right eigenvectors. a is not modified.
//
// If a is not square, Decompose panics.
//
// The returned error is nil on full success, a NonConvergenceError if
// the QR iteration exhausted its budget, or a SingularBlockError if an
// eigenvector had to be computed from a degenerate block. In both error
// cases the returned Decomposition is non-nil and partially valid; see
// the error types for what remains usable.
func Decompose(a mat.Matrix, vectors bool) (*Decomposition, error) {
	n, c := a.Dims()
	if n != c {
		panic("eigen: matrix is not square")
	}

	d := &Decomposition{
		n:       n,
		vectors: vectors,
		wr:      make([]float64, n),
		wi:      make([]float64, n),
	}
	if n == 0 {
		return d, nil
	}

	h := mat.DenseCopyOf(a)
	rh := h.RawMatrix()
	impl := lapackimpl.Implementation{}

	// Reduce to upper Hessenberg form.
	tau := make([]float64, n-1)
	work := make([]float64, 1)
	impl.Dgehrd(n, 0, n-1, rh.Data, rh.Stride, tau, work, -1)
	lwork := int(work[0])
	work = make([]float64, max(lwork, n))
	impl.Dgehrd(n, 0, n-1, rh.Data, rh.Stride, tau, work, len(work))

	var (
		z     *mat.Dense
		zdata []float64
		ldz   = 1
	)
	if vectors {
		// Assemble the orthogonal factor of the reduction from the
		// reflectors stored below the subdiagonal of h.
		z = mat.NewDense(n, n, nil)
		rz := z.RawMatrix()
		impl.Dlacpy(blas.Lower, n, n, rh.Data, rh.Stride, rz.Data, rz.Stride)
		impl.Dorghr(n, 0, n-1, rz.Data, rz.Stride, tau, work, -1)
		if lw := int(work[0]); lw > len(work) {
			work = make([]float64, lw)
		}
		impl.Dorghr(n, 0, n-1, rz.Data, rz.Stride, tau, work, len(work))
		zdata = rz.Data
		ldz = rz.Stride
	}

	// Clear the reflectors so that h is genuinely upper Hessenberg.
	for i := 2; i < n; i++ {
		for j := 0; j < i-1; j++ {
			rh.Data[i*rh.Stride+j] = 0
		}
	}

	var eimpl eispack.Implementation
	norm, unconverged := eimpl.Hqr(n, 0, n-1, rh.Data, rh.Stride, d.wr, d.wi, vectors, zdata, ldz)
	d.z = z
	if !vectors {
		d.schur = h
	}
	if unconverged != 0 {
		return d, NonConvergenceError(unconverged - 1)
	}
	if vectors {
		if singular := eimpl.HqrSchurToEigen(n, 0, n-1, rh.Data, rh.Stride, d.wr, d.wi, zdata, ldz, norm); singular != 0 {
			return d, SingularBlockError(singular - 1)
		}
	}
	return d, nil
}

// Values returns the eigenvalues. If dst is nil a new slice is
// allocated, otherwise dst must have length n and the eigenvalues are
// stored into it. Complex conjugate pairs are adjacent, the eigenvalue
// with positive imaginary part first.
func (d *Decomposition) Values(dst []complex128) []complex128 {
	if dst == nil {
		dst = make([]complex128, d.n)
	}
	if len(dst) != d.n {
		panic("eigen: bad length of dst")
	}
	for i := range dst {
		dst[i] = complex(d.wr[i], d.wi[i])
	}
	return dst
}

// Vectors returns the right eigenvectors as the columns of an n×n
// complex matrix, in the order of the eigenvalues returned by Values.
// Each vector has unit 2-norm. Vectors panics if the decomposition was
// computed without vectors.
func (d *Decomposition) Vectors() *mat.CDense {
	if !d.vectors {
		panic("eigen: decomposition does not hold vectors")
	}
	n := d.n
	v := mat.NewCDense(n, n, nil)
	for j := 0; j < n; j++ {
		switch {
		case d.wi[j] == 0:
			for i := 0; i < n; i++ {
				v.Set(i, j, complex(d.z.At(i, j), 0))
			}
		case d.wi[j] > 0:
			for i := 0; i < n; i++ {
				v.Set(i, j, complex(d.z.At(i, j), d.z.At(i, j+1)))
			}
		default:
			for i := 0; i < n; i++ {
				v.Set(i, j, complex(d.z.At(i, j-1), -d.z.At(i, j)))
			}
		}
	}
	return v
}

// Schur returns the real Schur form of the input matrix. It is only
// retained when the decomposition was computed without vectors, because
// back substitution reuses the storage of the Schur form; Schur panics
// otherwise.
func (d *Decomposition) Schur() *mat.Dense {
	if d.vectors {
		panic("eigen: Schur form was consumed by eigenvector back substitution")
	}
	return mat.DenseCopyOf(d.schur)
}
