// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/errors.go (sentinel-error shape)

package pipeline

import "errors"

// Sentinel errors for the compress/extract pipelines. Callers compare with
// errors.Is.
var (
	// ErrLengthMismatch is returned when the decoder's output byte count
	// does not equal the footer's recorded original size.
	ErrLengthMismatch = errors.New("pipeline: decoded length does not match footer")
	// ErrCrcMismatch is returned when the decoder's running CRC32 does not
	// equal the footer's recorded CRC32.
	ErrCrcMismatch = errors.New("pipeline: decoded CRC32 does not match footer")
)
