// SPDX-License-Identifier: MIT
// Source: original_source/src/comp.cpp (footer writer), original_source/src/archive_main.cpp (locate procedure)

// Package container implements the HPZT archive's trailing footer: the
// HPZ1 (legacy) and HPZ2 (current) layouts, and the procedure an
// extractor uses to find its own payload inside itself.
package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hpztools/hpzt/sink"
)

// Variant distinguishes the two footer layouts a decoder must accept.
type Variant uint8

const (
	VariantHPZ2 Variant = iota
	VariantHPZ1
)

const (
	magicHPZ1 = "HPZ1"
	magicHPZ2 = "HPZ2"

	SizeHPZ1 = 24
	SizeHPZ2 = 28
)

// Footer carries everything an extractor needs to locate and verify a
// payload. Method is only meaningful for VariantHPZ2; an HPZ1 footer
// always implies sink.MethodDeflate.
type Footer struct {
	Variant        Variant
	Method         sink.Method
	OriginalSize   uint64
	CompressedSize uint64
	CRC32          uint32
}

// Size returns the on-disk size of f's variant.
func (f Footer) Size() int64 {
	if f.Variant == VariantHPZ1 {
		return SizeHPZ1
	}

	return SizeHPZ2
}

// EncodeHPZ2 renders f as the 28-byte HPZ2 layout. Compressors always emit
// HPZ2 (§9); HPZ1 is accept-only.
func (f Footer) EncodeHPZ2() []byte {
	b := make([]byte, SizeHPZ2)
	copy(b[0:4], magicHPZ2)
	b[4] = byte(f.Method)
	// b[5:8] are reserved padding, left zero.
	binary.LittleEndian.PutUint64(b[8:16], f.OriginalSize)
	binary.LittleEndian.PutUint64(b[16:24], f.CompressedSize)
	binary.LittleEndian.PutUint32(b[24:28], f.CRC32)

	return b
}

// Locate reads the trailing bytes of an archive of the given total size
// through r, identifies which footer variant is present, and returns the
// parsed Footer along with the byte offset where the payload begins.
func Locate(r io.ReaderAt, size int64) (Footer, int64, error) {
	if size >= SizeHPZ2 {
		buf := make([]byte, SizeHPZ2)
		if _, err := r.ReadAt(buf, size-SizeHPZ2); err != nil {
			return Footer{}, 0, fmt.Errorf("container: reading HPZ2 tail: %w", err)
		}

		if string(buf[0:4]) == magicHPZ2 {
			f := Footer{
				Variant:        VariantHPZ2,
				Method:         sink.Method(buf[4]),
				OriginalSize:   binary.LittleEndian.Uint64(buf[8:16]),
				CompressedSize: binary.LittleEndian.Uint64(buf[16:24]),
				CRC32:          binary.LittleEndian.Uint32(buf[24:28]),
			}

			return locatePayload(f, size)
		}
	}

	if size >= SizeHPZ1 {
		buf := make([]byte, SizeHPZ1)
		if _, err := r.ReadAt(buf, size-SizeHPZ1); err != nil {
			return Footer{}, 0, fmt.Errorf("container: reading HPZ1 tail: %w", err)
		}

		if string(buf[0:4]) == magicHPZ1 {
			f := Footer{
				Variant:        VariantHPZ1,
				Method:         sink.MethodDeflate,
				OriginalSize:   binary.LittleEndian.Uint64(buf[4:12]),
				CompressedSize: binary.LittleEndian.Uint64(buf[12:20]),
				CRC32:          binary.LittleEndian.Uint32(buf[20:24]),
			}

			return locatePayload(f, size)
		}
	}

	return Footer{}, 0, ErrFooterMissing
}

func locatePayload(f Footer, size int64) (Footer, int64, error) {
	// #nosec G115 -- CompressedSize/Size() are bounded by the archive's own
	// file size, already an int64.
	payloadOff := size - f.Size() - int64(f.CompressedSize)
	if payloadOff <= 0 {
		return Footer{}, 0, ErrBadPayloadOffset
	}

	return f, payloadOff, nil
}
