// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eispack provides an implicit double-shift QR eigenvalue solver
// for real upper Hessenberg matrices, derived from the EISPACK routine
// HQR2.
//
// The routines compute the real Schur factorization
//
//	A = Z * T * Zᵀ
//
// of a Hessenberg matrix A, where T is upper quasi-triangular with 1×1
// blocks holding real eigenvalues and 2×2 blocks holding complex
// conjugate pairs, and optionally back-substitute through T to obtain the
// eigenvectors of the matrix from which A was reduced.
//
// All matrices are stored in row-major order with a leading dimension
// (stride) that may be larger than the number of columns.
package eispack // import "github.com/langou/tlapack/lapack/eispack"
