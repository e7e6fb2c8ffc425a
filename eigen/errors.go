// Copyright ©2026 The Tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eigen

import "fmt"

// NonConvergenceError indicates that the QR iteration exhausted its
// budget before the eigenvalue at the reported 0-based index converged.
// Eigenvalues at larger indices converged and remain valid on the
// returned decomposition.
type NonConvergenceError int

func (e NonConvergenceError) Error() string {
	return fmt.Sprintf("eigen: QR iteration did not converge for eigenvalue %d", int(e))
}

// SingularBlockError indicates that back substitution met a degenerate
// diagonal block while computing the eigenvector at the reported 0-based
// index. The vector was produced from a perturbed block and may be
// inaccurate; all other eigenvectors are unaffected.
type SingularBlockError int

func (e SingularBlockError) Error() string {
	return fmt.Sprintf("eigen: singular block while computing eigenvector %d", int(e))
}
