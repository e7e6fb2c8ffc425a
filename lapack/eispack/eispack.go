// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eispack

// Implementation is the portable Go implementation of the HQR eigenvalue
// routines. It implements the method set of the package as stateless
// functions; the empty struct exists so that alternative implementations
// can be substituted in tests.
type Implementation struct{}

const (
	// dlamchE is the machine epsilon. For IEEE this is 2^{-53}.
	dlamchE = 0x1p-53

	// dlamchP is eps * base where base is the machine base. It is
	// the smallest positive x such that fl(1+x) > 1.
	dlamchP = 0x1p-52
)
