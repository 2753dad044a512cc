// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo (package doc shape)

/*
Package hpzt implements the HPZT reversible text pre-transform: a
byte-exact, streaming escape codec that sits above a general entropy coder
(see package sink) inside a self-extracting archive.

HPZT rewrites runs of spaces, newlines, dashes, equals signs, decimal
digits, and a fixed phrase dictionary into short escape tokens prefixed by
a 0x00 byte, and leaves every other byte untouched. The transform is
invertible byte-for-byte and its decoder is a pure streaming state machine:
it accepts any fragmentation of its input and never buffers more than a
bounded, O(1) amount of state between calls.

# Encode

The encoder owns no output buffer of its own; it feeds transformed bytes
to an injected sink.Sink (see package sink) and keeps only a small carry
tail between blocks so that dictionary matches are never missed across a
block boundary:

	enc := hpzt.NewEncoder(sink, hpzt.DefaultFlags())
	if err := enc.WriteHeader(); err != nil { ... }
	if err := enc.Process(block, false); err != nil { ... }
	...
	if err := enc.Process(nil, true); err != nil { ... } // final
	if err := enc.Flush(); err != nil { ... }

# Decode

The decoder is fed arbitrary chunks and writes reconstructed bytes to out,
keeping a running CRC32 and byte count that the caller reads afterwards:

	dec := hpzt.NewDecoder(out)
	if err := dec.Feed(chunk); err != nil { ... }
	...
	if err := dec.Close(); err != nil { ... } // checks for a truncated escape
	crc, written := dec.CRC32(), dec.Written()
*/
package hpzt
