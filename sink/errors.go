// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/errors.go (sentinel-error shape)

package sink

import "errors"

// Sentinel errors for the stream sink. Callers compare with errors.Is.
var (
	// ErrCodecUnavailable is returned by New when the requested codec cannot
	// be used and no fallback was requested, and by New or Source for an
	// unknown method.
	ErrCodecUnavailable = errors.New("sink: codec unavailable")
	// ErrCodecError wraps a failure reported by the underlying compressor or
	// decompressor.
	ErrCodecError = errors.New("sink: codec error")
)
