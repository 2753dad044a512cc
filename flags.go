// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo (options.go defaults shape)

package hpzt

// Flags is the six-bit transform-feature mask carried in the HPZT header
// and consulted by both the encoder (which features to consider) and the
// decoder (whether any escape processing is needed at all).
type Flags uint8

// Feature bits (§4.C, §6).
const (
	FlagDict   Flags = 0x01
	FlagSpace  Flags = 0x02
	FlagNL     Flags = 0x04
	FlagDigits Flags = 0x08
	FlagDash   Flags = 0x10
	FlagEqual  Flags = 0x20

	flagsMask Flags = 0x3F
)

// DefaultFlags enables every transform.
func DefaultFlags() Flags {
	return FlagDict | FlagSpace | FlagNL | FlagDigits | FlagDash | FlagEqual
}

// Has reports whether a single feature bit is set.
func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// HasTransforms reports whether any transform bit is set; when false the
// body carries no escape tokens and is pure passthrough (§4.D).
func (f Flags) HasTransforms() bool { return f&flagsMask != 0 }
