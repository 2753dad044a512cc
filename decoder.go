// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/decompress.go (state-machine shape), original_source/src/transform.h (HPZT semantics)

package hpzt

import (
	"fmt"
	"io"
)

// escState is the decoder's resumable position in the escape token state
// machine (§3 Escape state).
type escState int

const (
	escNone escState = iota
	escSeen00
	escSpaceLen
	escNLLen
	escDigitLen
	escDigitCopy
	escDashLen
	escEqualLen
)

// Decoder is a pure streaming inverse of Encoder. It accepts any
// fragmentation of its input across repeated Feed calls and never buffers
// more than a bounded, O(1) amount of state plus the ≤12-byte header
// scratch and the ≤equalMaxToken-byte run-expansion buffer (§5).
type Decoder struct {
	dict *Dictionary
	out  io.Writer

	crc     uint32
	written uint64

	// Header scan.
	hdr          [headerSizeV2]byte
	hdrPos       int
	headerDone   bool
	passthrough  bool
	transforms   bool
	version      uint8
	flags        Flags
	fingerprint  uint32
	headerNeeded int

	// Escape body state.
	esc       escState
	digitLeft int
}

// NewDecoder creates a Decoder writing reconstructed bytes to out using
// the default dictionary. The running CRC32 and byte count start at zero;
// read them with CRC32 and Written after feeding is complete.
func NewDecoder(out io.Writer) *Decoder {
	return NewDecoderWithDictionary(out, defaultDictionary)
}

// NewDecoderWithDictionary is NewDecoder with an explicit dictionary,
// primarily for tests that exercise fingerprint mismatches.
func NewDecoderWithDictionary(out io.Writer, dict *Dictionary) *Decoder {
	return &Decoder{dict: dict, out: out}
}

// CRC32 returns the running CRC32 of every byte written to out so far.
func (d *Decoder) CRC32() uint32 { return d.crc }

// Written returns the number of bytes written to out so far.
func (d *Decoder) Written() uint64 { return d.written }

// Feed consumes one fragment of the transform stream. It may be called any
// number of times with fragments of any size, including zero-length ones.
func (d *Decoder) Feed(in []byte) error {
	i := 0
	for i < len(in) {
		if !d.headerDone {
			consumed, err := d.feedHeader(in[i:])
			i += consumed
			if err != nil {
				return err
			}

			if !d.headerDone {
				return nil // need more bytes before the header can resolve
			}

			continue
		}

		if d.passthrough || !d.transforms {
			if err := writeTracked(d.out, &d.crc, &d.written, in[i:]); err != nil {
				return err
			}

			return nil
		}

		n, err := d.feedBody(in[i:])
		i += n
		if err != nil {
			return err
		}
	}

	return nil
}

// feedHeader accumulates header bytes and, once the magic and (if present)
// the full v1/v2 header are available, resolves headerDone/transforms/flags.
// It returns the number of bytes it consumed from in.
func (d *Decoder) feedHeader(in []byte) (int, error) {
	consumed := 0

	for d.hdrPos < 4 && consumed < len(in) {
		d.hdr[d.hdrPos] = in[consumed]
		d.hdrPos++
		consumed++
	}

	if d.hdrPos < 4 {
		return consumed, nil
	}

	if string(d.hdr[:4]) != headerMagic {
		// No HPZT header: what we buffered is itself payload.
		if err := writeTracked(d.out, &d.crc, &d.written, d.hdr[:d.hdrPos]); err != nil {
			return consumed, err
		}

		d.headerDone = true
		d.passthrough = true

		return consumed, nil
	}

	if d.headerNeeded == 0 {
		d.headerNeeded = headerSizeV1
	}

	for d.hdrPos < d.headerNeeded && consumed < len(in) {
		d.hdr[d.hdrPos] = in[consumed]
		d.hdrPos++
		consumed++

		if d.hdrPos == headerSizeV1 {
			d.version = d.hdr[4]
			if d.version >= headerVersion2 {
				d.headerNeeded = headerSizeV2
			}
		}
	}

	if d.hdrPos < d.headerNeeded {
		return consumed, nil
	}

	d.flags = Flags(d.hdr[5])
	d.transforms = d.flags.HasTransforms()

	if d.version >= headerVersion2 {
		d.fingerprint = readLE32(d.hdr[8:12])
		if d.fingerprint != d.dict.Fingerprint() {
			return consumed, ErrDictMismatch
		}
	}

	d.headerDone = true

	return consumed, nil
}

// feedBody runs the escape state machine over in until it is exhausted,
// returning the number of bytes consumed (always len(in) on success).
func (d *Decoder) feedBody(in []byte) (int, error) {
	i := 0
	for i < len(in) {
		if d.esc == escDigitCopy {
			available := len(in) - i
			take := d.digitLeft
			if take > available {
				take = available
			}

			if err := writeTracked(d.out, &d.crc, &d.written, in[i:i+take]); err != nil {
				return i, err
			}

			i += take
			d.digitLeft -= take

			if d.digitLeft == 0 {
				d.esc = escNone
			}

			continue
		}

		b := in[i]
		i++

		switch d.esc {
		case escNone:
			if b != escapeByte {
				if err := writeTracked(d.out, &d.crc, &d.written, []byte{b}); err != nil {
					return i, err
				}
			} else {
				d.esc = escSeen00
			}

		case escSeen00:
			if err := d.decodeToken(b); err != nil {
				return i, err
			}

		case escSpaceLen:
			if err := writeRun(d.out, &d.crc, &d.written, ' ', int(b)+spaceBase); err != nil {
				return i, err
			}

			d.esc = escNone

		case escNLLen:
			if err := writeRun(d.out, &d.crc, &d.written, '\n', int(b)+nlBase); err != nil {
				return i, err
			}

			d.esc = escNone

		case escDashLen:
			if err := writeRun(d.out, &d.crc, &d.written, '-', int(b)+dashBase); err != nil {
				return i, err
			}

			d.esc = escNone

		case escEqualLen:
			if err := writeRun(d.out, &d.crc, &d.written, '=', int(b)+equalBase); err != nil {
				return i, err
			}

			d.esc = escNone

		case escDigitLen:
			d.digitLeft = int(b) + digitBase
			d.esc = escDigitCopy
		}
	}

	return i, nil
}

// decodeToken handles the byte immediately following 0x00.
func (d *Decoder) decodeToken(b byte) error {
	switch {
	case b == tokenLiteralZero:
		d.esc = escNone
		return writeTracked(d.out, &d.crc, &d.written, []byte{0x00})

	case b == tokenSpaceRun:
		d.esc = escSpaceLen
		return nil

	case b == tokenNLRun:
		d.esc = escNLLen
		return nil

	case b == tokenDigitRun:
		d.esc = escDigitLen
		return nil

	case b == tokenDashRun:
		d.esc = escDashLen
		return nil

	case b == tokenEqualRun:
		d.esc = escEqualLen
		return nil

	case int(b) >= 1 && int(b) <= d.dict.Len():
		d.esc = escNone
		phrase, _ := d.dict.Lookup(int(b))
		return writeTracked(d.out, &d.crc, &d.written, []byte(phrase))

	default:
		return fmt.Errorf("%w: 0x%02x", ErrInvalidToken, b)
	}
}

// Close must be called once the caller knows no more bytes will arrive. It
// reports ErrTruncatedEscape if the decoder is not in a terminal state:
// mid-escape, or holding a partial header that matches the HPZT magic so
// far. Fewer than four buffered bytes that cannot begin the magic are
// written out as headerless payload instead.
func (d *Decoder) Close() error {
	if !d.headerDone && d.hdrPos > 0 {
		if string(d.hdr[:min(d.hdrPos, 4)]) == headerMagic[:min(d.hdrPos, 4)] {
			return ErrTruncatedEscape
		}

		d.headerDone = true
		d.passthrough = true

		return writeTracked(d.out, &d.crc, &d.written, d.hdr[:d.hdrPos])
	}

	if d.headerDone && !d.passthrough && d.transforms && d.esc != escNone {
		return ErrTruncatedEscape
	}

	return nil
}

func readLE32(p []byte) uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
}
