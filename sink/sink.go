// SPDX-License-Identifier: MIT
// Source: original_source/src/comp.cpp (Sink STORE/ZLIB backends), github.com/woozymasta/lzo (small per-concern files)

// Package sink implements the HPZT container's stream sink: a uniform
// write interface with two backends, STORE (passthrough) and DEFLATE
// (zlib-format, window 15, level 9), plus their read-side inverses used by
// the extractor.
package sink

import (
	"compress/zlib"
	"fmt"
	"io"
)

// Method identifies which backend a sink or source uses. It is the wire
// value stored in an HPZ2 footer.
type Method uint8

const (
	MethodStore   Method = 0
	MethodDeflate Method = 1
)

// String renders the method the way diagnostics and hpzdump print it.
func (m Method) String() string {
	switch m {
	case MethodStore:
		return "store"
	case MethodDeflate:
		return "deflate"
	default:
		return fmt.Sprintf("method(%d)", uint8(m))
	}
}

// Sink is the write side of the container's compression backend. Write
// accepts any chunking; Finish must be called exactly once, after the last
// Write, to flush and terminate the underlying codec.
type Sink interface {
	io.Writer
	Finish() error
}

// New constructs a Sink for method writing to w. DEFLATE construction in
// the standard library cannot itself fail, but the fallback path exists so
// the compressor behaves correctly on a hypothetical build where it can
// (§4.E): if method is MethodDeflate and allowFallback is true, New never
// fails — it returns a STORE sink and reports that it fell back.
func New(method Method, w io.Writer, allowFallback bool) (s Sink, used Method, fellBack bool, err error) {
	switch method {
	case MethodStore:
		return &storeSink{w: w}, MethodStore, false, nil

	case MethodDeflate:
		zw, zerr := newDeflateSink(w)
		if zerr == nil {
			return zw, MethodDeflate, false, nil
		}

		if !allowFallback {
			return nil, 0, false, fmt.Errorf("%w: %v", ErrCodecUnavailable, zerr)
		}

		return &storeSink{w: w}, MethodStore, true, nil

	default:
		return nil, 0, false, fmt.Errorf("%w: unknown method %d", ErrCodecUnavailable, method)
	}
}

// storeSink passes bytes through unchanged.
type storeSink struct {
	w io.Writer
}

func (s *storeSink) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s *storeSink) Finish() error               { return nil }

// deflateSink compresses with zlib (window 15, level 9), matching the
// original's deflateInit2(..., 15, 9, Z_DEFAULT_STRATEGY).
type deflateSink struct {
	zw *zlib.Writer
}

func newDeflateSink(w io.Writer) (*deflateSink, error) {
	zw, err := zlib.NewWriterLevel(w, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecError, err)
	}

	return &deflateSink{zw: zw}, nil
}

func (s *deflateSink) Write(p []byte) (int, error) {
	n, err := s.zw.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrCodecError, err)
	}

	return n, nil
}

func (s *deflateSink) Finish() error {
	if err := s.zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrCodecError, err)
	}

	return nil
}

// Source is the read side: the inverse of Sink, used by the extractor to
// turn a compressed payload reader back into the original transform
// stream bytes.
func Source(method Method, r io.Reader) (io.ReadCloser, error) {
	switch method {
	case MethodStore:
		return io.NopCloser(r), nil

	case MethodDeflate:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCodecError, err)
		}

		return zr, nil

	default:
		return nil, fmt.Errorf("%w: unknown method %d", ErrCodecUnavailable, method)
	}
}
