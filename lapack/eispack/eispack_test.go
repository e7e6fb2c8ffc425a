// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eispack_test

import (
	"testing"

	"github.com/langou/tlapack/lapack/eispack"
	"github.com/langou/tlapack/lapack/testeispack"
)

var impl = eispack.Implementation{}

func TestHqrFormShift(t *testing.T)         { testeispack.HqrFormShiftTest(t, impl) }
func TestHqrSubdiagonalSearch(t *testing.T) { testeispack.HqrSubdiagonalSearchTest(t, impl) }
func TestHqrQRStep(t *testing.T)            { testeispack.HqrQRStepTest(t, impl) }
func TestHqr(t *testing.T)                  { testeispack.HqrTest(t, impl) }
func TestHqrSchurToEigen(t *testing.T)      { testeispack.HqrSchurToEigenTest(t, impl) }
