// SPDX-License-Identifier: MIT
// Source: original_source/src/comp.cpp (compressor main), ianlewis-go-dictzip/cmd/dictzip/compress.go (scoped-resource shape)

// Package pipeline implements the two end-to-end data flows of the HPZT
// archive: Compress (input -> CRC + encoder -> sink -> footer) and Extract
// (self -> footer -> sink -> decoder -> output + CRC verify).
package pipeline

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/hpztools/hpzt"
	"github.com/hpztools/hpzt/container"
	"github.com/hpztools/hpzt/sink"
)

// compressBlockSize is how many input bytes Compress hands the encoder per
// Process call. It has no effect on the wire format, only on peak buffer
// size while streaming.
const compressBlockSize = 64 * 1024

// CompressOptions configures one archive build.
type CompressOptions struct {
	InputPath  string
	StubPath   string
	OutputPath string

	Flags         hpzt.Flags
	Method        sink.Method
	AllowFallback bool // permit DEFLATE -> STORE fallback instead of failing
}

// CompressResult reports what actually happened, since the requested
// method may have been downgraded by fallback.
type CompressResult struct {
	UsedMethod     sink.Method
	FellBack       bool
	OriginalSize   uint64
	CompressedSize uint64
	CRC32          uint32
}

// Compress builds opts.OutputPath as stub‖payload‖footer: a verbatim copy
// of the stub executable, the HPZT+sink-compressed input, and an HPZ2
// trailing footer.
func Compress(opts CompressOptions) (result CompressResult, err error) {
	in, err := os.Open(opts.InputPath)
	if err != nil {
		return CompressResult{}, fmt.Errorf("pipeline: opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(opts.OutputPath)
	if err != nil {
		return CompressResult{}, fmt.Errorf("pipeline: creating output: %w", err)
	}
	defer func() {
		clsErr := out.Close()
		if err == nil {
			err = clsErr
		}
	}()

	// Packaging of the self-extractor stub is out of scope (§1); when
	// StubPath is set its bytes are copied verbatim ahead of the payload,
	// otherwise the archive starts directly with the payload. container.Locate
	// rejects a payload at offset 0, so such an archive cannot be extracted.
	if err = copyStub(out, opts.StubPath); err != nil {
		return CompressResult{}, err
	}

	cw := &countingWriter{w: out}

	s, usedMethod, fellBack, err := sink.New(opts.Method, cw, opts.AllowFallback)
	if err != nil {
		return CompressResult{}, fmt.Errorf("pipeline: constructing sink: %w", err)
	}

	enc := hpzt.NewEncoder(s, opts.Flags)
	if opts.Flags.HasTransforms() {
		if err = enc.WriteHeader(); err != nil {
			return CompressResult{}, fmt.Errorf("pipeline: writing header: %w", err)
		}
	}

	crc := crc32.NewIEEE()

	var originalSize uint64

	buf := make([]byte, compressBlockSize)

	for {
		n, readErr := in.Read(buf)
		if n > 0 {
			chunk := buf[:n]

			if _, werr := crc.Write(chunk); werr != nil {
				return CompressResult{}, fmt.Errorf("pipeline: updating crc: %w", werr)
			}

			originalSize += uint64(n)

			if perr := enc.Process(chunk, false); perr != nil {
				return CompressResult{}, fmt.Errorf("pipeline: encoding: %w", perr)
			}
		}

		if readErr == io.EOF {
			break
		}

		if readErr != nil {
			return CompressResult{}, fmt.Errorf("pipeline: reading input: %w", readErr)
		}
	}

	if err = enc.Process(nil, true); err != nil {
		return CompressResult{}, fmt.Errorf("pipeline: finalizing encoder: %w", err)
	}

	if err = s.Finish(); err != nil {
		return CompressResult{}, fmt.Errorf("pipeline: finishing sink: %w", err)
	}

	footer := container.Footer{
		Method:         usedMethod,
		OriginalSize:   originalSize,
		CompressedSize: cw.n,
		CRC32:          crc.Sum32(),
	}

	if _, err = out.Write(footer.EncodeHPZ2()); err != nil {
		return CompressResult{}, fmt.Errorf("pipeline: writing footer: %w", err)
	}

	return CompressResult{
		UsedMethod:     usedMethod,
		FellBack:       fellBack,
		OriginalSize:   originalSize,
		CompressedSize: cw.n,
		CRC32:          crc.Sum32(),
	}, nil
}

// countingWriter tracks how many bytes have passed through it, used to
// learn the payload's compressed size without a second pass.
type countingWriter struct {
	w io.Writer
	n uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += uint64(n)

	return n, err
}

// copyStub writes stubPath's contents to out verbatim, or does nothing if
// stubPath is empty.
func copyStub(out io.Writer, stubPath string) error {
	if stubPath == "" {
		return nil
	}

	stub, err := os.Open(stubPath)
	if err != nil {
		return fmt.Errorf("pipeline: opening stub: %w", err)
	}
	defer stub.Close()

	if _, err := io.Copy(out, stub); err != nil {
		return fmt.Errorf("pipeline: copying stub: %w", err)
	}

	return nil
}
