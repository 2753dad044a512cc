// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/compress_1x_fast.go (greedy single-pass parse shape),
// original_source/src/comp.cpp (Encoder carry/reserve and run-chunking semantics)

package hpzt

import "io"

// runKind identifies which repeated-byte or digit class a run candidate at
// the encoder's current position belongs to.
type runKind int

const (
	runNone runKind = iota
	runSpace
	runNL
	runDigit
	runDash
	runEqual
)

// Encoder is the forward half of the HPZT transform. It owns no output
// buffer of its own: transformed bytes go straight to w. Between Process
// calls it retains only a bounded carry tail (at most dict.MaxLen()-1
// bytes) so that a dictionary phrase split across two blocks is still
// found once the second block arrives (§4.C).
type Encoder struct {
	w       io.Writer
	dict    *Dictionary
	flags   Flags
	version uint8

	pending   []byte
	finalized bool
}

// NewEncoder creates an Encoder writing the transform stream to w using the
// default dictionary and a v2 header (fingerprint-checked on decode).
func NewEncoder(w io.Writer, flags Flags) *Encoder {
	return NewEncoderWithDictionary(w, flags, defaultDictionary)
}

// NewEncoderWithDictionary is NewEncoder with an explicit dictionary.
func NewEncoderWithDictionary(w io.Writer, flags Flags, dict *Dictionary) *Encoder {
	return &Encoder{w: w, dict: dict, flags: flags, version: headerVersion2}
}

// WriteHeader emits the HPZT header. It must be called exactly once before
// the first call to Process.
func (e *Encoder) WriteHeader() error {
	var hdr [headerSizeV2]byte
	copy(hdr[0:4], headerMagic)
	hdr[4] = e.version
	hdr[5] = byte(e.flags)

	n := headerSizeV1
	if e.version >= headerVersion2 {
		writeLE32(hdr[8:12], e.dict.Fingerprint())
		n = headerSizeV2
	}

	_, err := e.w.Write(hdr[:n])

	return err
}

// Process appends block to the encoder's pending carry and emits every
// token it can commit to output. Pass final=true on the last call (block
// may be nil) to force the remaining carry out as well; after a final call
// Process must not be called again.
func (e *Encoder) Process(block []byte, final bool) error {
	if e.finalized {
		return nil
	}

	e.pending = append(e.pending, block...)

	limit := len(e.pending)
	if !final {
		reserve := e.dict.MaxLen() - 1
		if reserve < 0 {
			reserve = 0
		}

		limit = len(e.pending) - reserve
		if limit < 0 {
			limit = 0
		}
	}

	if !e.flags.HasTransforms() {
		if err := e.writeRaw(e.pending[:limit]); err != nil {
			return err
		}

		e.pending = append([]byte(nil), e.pending[limit:]...)
		if final {
			e.finalized = true
		}

		return nil
	}

	pos := 0
	for pos < limit {
		n, err := e.emitAt(pos)
		if err != nil {
			return err
		}

		pos += n
	}

	e.pending = append([]byte(nil), e.pending[pos:]...)
	if final {
		e.finalized = true
	}

	return nil
}

// Flush forces out any remaining carry bytes. It is equivalent to calling
// Process(nil, true) and is safe to call even if Process(nil, true) already
// ran.
func (e *Encoder) Flush() error {
	return e.Process(nil, true)
}

// emitAt decides, at a single commit position, between a dictionary
// phrase, the longest eligible run, or a bare literal byte. A dictionary
// match wins unconditionally whenever one exists, regardless of run
// length; only when no dictionary match exists does a run outrank a
// literal.
func (e *Encoder) emitAt(pos int) (int, error) {
	data := e.pending

	var dictID, dictLen int
	if e.flags.Has(FlagDict) {
		dictID, dictLen = e.dict.longestMatch(data, pos)
	}

	if dictLen > 0 {
		return dictLen, e.emitDict(dictID)
	}

	kind, runLen := e.bestRun(data, pos)
	if runLen > 0 {
		return runLen, e.emitRun(kind, data[pos:pos+runLen])
	}

	return 1, e.emitLiteral(data[pos])
}

// bestRun returns the longest run candidate starting at pos among the
// enabled feature flags, or (runNone, 0) if none qualifies.
func (e *Encoder) bestRun(data []byte, pos int) (runKind, int) {
	best, bestLen := runNone, 0

	consider := func(k runKind, min, length int) {
		if length >= min && length > bestLen {
			best, bestLen = k, length
		}
	}

	if e.flags.Has(FlagSpace) {
		consider(runSpace, spaceMin, sameByteRun(data, pos, ' '))
	}

	if e.flags.Has(FlagNL) {
		consider(runNL, nlMin, sameByteRun(data, pos, '\n'))
	}

	if e.flags.Has(FlagDigits) {
		consider(runDigit, digitMin, digitRun(data, pos))
	}

	if e.flags.Has(FlagDash) {
		consider(runDash, dashMin, sameByteRun(data, pos, '-'))
	}

	if e.flags.Has(FlagEqual) {
		consider(runEqual, equalMin, sameByteRun(data, pos, '='))
	}

	return best, bestLen
}

// sameByteRun counts consecutive bytes equal to b starting at pos.
func sameByteRun(data []byte, pos int, b byte) int {
	n := 0
	for pos+n < len(data) && data[pos+n] == b {
		n++
	}

	return n
}

// digitRun counts consecutive ASCII decimal digit bytes starting at pos.
func digitRun(data []byte, pos int) int {
	n := 0
	for pos+n < len(data) && data[pos+n] >= '0' && data[pos+n] <= '9' {
		n++
	}

	return n
}

// emitDict writes a dictionary token: escapeByte followed by the 1-based
// phrase ID.
func (e *Encoder) emitDict(id int) error {
	_, err := e.w.Write([]byte{escapeByte, lengthByte(id)})
	return err
}

// emitLiteral writes a single pass-through byte, escaping a literal 0x00
// as the two-byte tokenLiteralZero sequence so it can never be mistaken
// for the start of a token.
func (e *Encoder) emitLiteral(b byte) error {
	if b == escapeByte {
		_, err := e.w.Write([]byte{escapeByte, tokenLiteralZero})
		return err
	}

	_, err := e.w.Write([]byte{b})
	return err
}

// emitRun chunks run into consecutive maximum-length tokens of the given
// kind, followed by one token for the true remainder if it still meets the
// kind's minimum, and a raw literal tail otherwise.
func (e *Encoder) emitRun(kind runKind, run []byte) error {
	token, base, minLen, maxTok := runParams(kind)

	n := len(run)
	off := 0

	for n-off >= maxTok {
		if err := e.writeRunToken(token, maxTok-base, kind, run[off:off+maxTok]); err != nil {
			return err
		}

		off += maxTok
	}

	remaining := n - off
	if remaining == 0 {
		return nil
	}

	if remaining >= minLen {
		return e.writeRunToken(token, remaining-base, kind, run[off:n])
	}

	return e.writeRaw(run[off:n])
}

// writeRunToken writes one run token. Digit runs carry their original
// bytes verbatim (digit values are not implied by the token); every other
// run kind implies a fixed repeated byte and carries none.
func (e *Encoder) writeRunToken(token byte, lenField int, kind runKind, chunk []byte) error {
	if _, err := e.w.Write([]byte{escapeByte, token, lengthByte(lenField)}); err != nil {
		return err
	}

	if kind == runDigit {
		return e.writeRaw(chunk)
	}

	return nil
}

// writeRaw writes p to the underlying writer unescaped. Callers only pass
// byte classes (space/newline/dash/equal/digit) that never contain 0x00.
func (e *Encoder) writeRaw(p []byte) error {
	if len(p) == 0 {
		return nil
	}

	_, err := e.w.Write(p)

	return err
}

// runParams returns the escape token, base length, minimum run length, and
// maximum single-token run length for kind.
func runParams(kind runKind) (token byte, base, minLen, maxTok int) {
	switch kind {
	case runSpace:
		return tokenSpaceRun, spaceBase, spaceMin, spaceMaxToken
	case runNL:
		return tokenNLRun, nlBase, nlMin, nlMaxToken
	case runDigit:
		return tokenDigitRun, digitBase, digitMin, digitMaxToken
	case runDash:
		return tokenDashRun, dashBase, dashMin, dashMaxToken
	case runEqual:
		return tokenEqualRun, equalBase, equalMin, equalMaxToken
	default:
		return 0, 0, 0, 0
	}
}

func writeLE32(p []byte, v uint32) {
	p[0] = byte(v)
	p[1] = byte(v >> 8)
	p[2] = byte(v >> 16)
	p[3] = byte(v >> 24)
}
