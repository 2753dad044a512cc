// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo (format-constants shape)

package hpzt

// HPZT wire format constants: escape byte, control-code range, and the
// per-run base length and token ceiling for each run type.

// escapeByte introduces every token in the transform stream.
const escapeByte = 0x00

// Control codes following escapeByte. Values in [1, maxDictSize] outside
// this set are dictionary IDs.
const (
	tokenLiteralZero = 0x00
	tokenSpaceRun    = 0x80
	tokenNLRun       = 0x81
	tokenDigitRun    = 0x82
	tokenDashRun     = 0x83
	tokenEqualRun    = 0x84
)

// maxDictSize is the largest dictionary ID representable in one byte
// disjoint from the control codes above (§4.A).
const maxDictSize = 127

// Per-run-type base length, minimum run length to trigger encoding, and
// the largest run length a single token can carry before it must be
// chunked into consecutive maximum-length tokens.
const (
	spaceBase, spaceMin, spaceMaxToken = 4, 4, 259
	nlBase, nlMin, nlMaxToken          = 2, 2, 257
	digitBase, digitMin, digitMaxToken = 3, 3, 258
	dashBase, dashMin, dashMaxToken    = 4, 4, 259
	equalBase, equalMin, equalMaxToken = 5, 5, 260
)

// headerMagic is the four ASCII bytes that open every HPZT transform stream.
const headerMagic = "HPZT"

// Header versions and their wire sizes.
const (
	headerVersion1 = 1
	headerVersion2 = 2

	headerSizeV1 = 8
	headerSizeV2 = 12
)
