// SPDX-License-Identifier: MIT
// Package structure: sentinel error set.
// These are the only failure kinds the structure package raises; callers
// compose messages with errors.Is against them instead of string-matching.

package structure

import (
	"errors"
	"fmt"
)

var (
	// ErrExtentOutOfBounds is returned when an Extent constructor is given a
	// negative axis size, a zero channel count, or axes whose product
	// overflows a signed 32-bit integer.
	ErrExtentOutOfBounds = errors.New("structure: extent out of bounds")

	// ErrIndexOutOfBounds is returned when a dimensional index is negative or
	// not smaller than the corresponding axis extent.
	ErrIndexOutOfBounds = errors.New("structure: index out of bounds")

	// ErrInvalidArgument is returned when a documented precondition of a view
	// transform is violated, e.g. a stride of zero passed to Stride, or a
	// Range box that does not fit inside the structure's extent.
	ErrInvalidArgument = errors.New("structure: invalid argument")
)

// structErrorf wraps err with an operation tag, preserving it for errors.Is.
func structErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
