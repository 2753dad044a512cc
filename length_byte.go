// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo (single-purpose byte-packing helper shape)

package hpzt

// lengthByte packs a run's overflow length (run length minus the run
// type's base) into the single length byte every run token carries.
// Callers guarantee v is already within [0, 255].
func lengthByte(v int) byte {
	// #nosec G115 -- callers only pass lengths already bounded to one byte.
	return byte(v & 0xff)
}
