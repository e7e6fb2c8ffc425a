// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eispack

// Panic strings for invalid arguments. These indicate a caller
// programming error, never a numerical condition; numerical failures are
// reported through return values.
const (
	nLT0     = "eispack: n < 0"
	badIlo   = "eispack: ilo out of range"
	badIhi   = "eispack: ihi out of range"
	badEn    = "eispack: en out of range"
	badL     = "eispack: l out of range"
	badIts   = "eispack: negative iteration count"
	badItn   = "eispack: negative iteration budget"
	badNorm  = "eispack: negative matrix norm"
	badLdH   = "eispack: bad leading dimension of H"
	badLdZ   = "eispack: bad leading dimension of Z"
	shortH   = "eispack: insufficient length of h"
	shortZ   = "eispack: insufficient length of z"
	badLenWr = "eispack: bad length of wr"
	badLenWi = "eispack: bad length of wi"
)
