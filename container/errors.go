// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/errors.go (sentinel-error shape)

package container

import "errors"

// Sentinel errors for the container footer. Callers compare with errors.Is.
var (
	// ErrFooterMissing is returned when neither HPZ1 nor HPZ2 magic is found
	// in the trailing bytes of the archive.
	ErrFooterMissing = errors.New("container: footer magic not found")
	// ErrBadPayloadOffset is returned when the computed payload offset is
	// not strictly positive.
	ErrBadPayloadOffset = errors.New("container: computed payload offset is not positive")
)
