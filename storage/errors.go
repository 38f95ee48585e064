// SPDX-License-Identifier: MIT
package storage

import "errors"

// ErrInvalidLength is returned when a storage factory is asked to allocate a
// negative length.
var ErrInvalidLength = errors.New("storage: length must be >= 0")
