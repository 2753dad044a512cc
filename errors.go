// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo (sentinel-error shape)

package hpzt

import "errors"

// Sentinel errors for the HPZT transform. Callers compare with errors.Is.
var (
	// ErrDictMismatch is returned when a v2 header's dictionary fingerprint
	// does not match the fingerprint of the local dictionary.
	ErrDictMismatch = errors.New("hpzt: dictionary fingerprint mismatch")
	// ErrInvalidToken is returned when a byte following 0x00 is not a valid
	// escape code (0x00, 0x80..0x84, or a dictionary ID in [1, dictionary size]).
	ErrInvalidToken = errors.New("hpzt: invalid escape token")
	// ErrTruncatedEscape is returned when the input ends while the decoder is
	// mid-escape (anything other than state NONE with no partial header).
	ErrTruncatedEscape = errors.New("hpzt: truncated escape sequence at end of stream")
	// ErrDictTooLarge is returned when a dictionary has more than 127 entries.
	ErrDictTooLarge = errors.New("hpzt: dictionary exceeds 127 entries")
	// ErrDictEmptyPhrase is returned when a dictionary phrase is empty, begins
	// with 0x00, or begins with a reserved control byte in [0x80, 0x84].
	ErrDictEmptyPhrase = errors.New("hpzt: dictionary phrase is empty or begins with a reserved byte")
)
