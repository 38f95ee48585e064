// SPDX-License-Identifier: MIT
package grid

import (
	"errors"
	"fmt"
)

// ErrExtentMismatch is returned by a binary lattice operation whose operands
// have unequal extents.
var ErrExtentMismatch = errors.New("grid: extent mismatch")

func gridErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
