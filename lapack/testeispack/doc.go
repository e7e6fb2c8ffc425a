// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testeispack implements a set of testing routines for the HQR
// eigenvalue routines in package eispack.
package testeispack // import "github.com/langou/tlapack/lapack/testeispack"
