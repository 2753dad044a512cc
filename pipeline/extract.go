// SPDX-License-Identifier: MIT
// Source: original_source/src/archive_main.cpp (extractor main)

package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/hpztools/hpzt"
	"github.com/hpztools/hpzt/container"
	"github.com/hpztools/hpzt/sink"
)

// extractBlockSize is how many compressed bytes Extract reads per Feed
// call into the decoder.
const extractBlockSize = 64 * 1024

// ExtractOptions configures one archive restore. ArchivePath defaults to
// the running executable's own path (os.Executable) when empty, matching
// a self-extracting stub.
type ExtractOptions struct {
	ArchivePath string
	OutputPath  string
}

// ExtractResult reports what was recovered.
type ExtractResult struct {
	BytesWritten uint64
	CRC32        uint32
}

// Extract locates the footer in opts.ArchivePath (or the running
// executable), reverses the payload's sink encoding, streams it through
// the HPZT decoder into opts.OutputPath, and verifies the result against
// the footer's recorded length and CRC32.
func Extract(opts ExtractOptions) (result ExtractResult, err error) {
	archivePath := opts.ArchivePath
	if archivePath == "" {
		archivePath, err = os.Executable()
		if err != nil {
			return ExtractResult{}, fmt.Errorf("pipeline: locating self: %w", err)
		}
	}

	archive, err := os.Open(archivePath)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("pipeline: opening archive: %w", err)
	}
	defer archive.Close()

	info, err := archive.Stat()
	if err != nil {
		return ExtractResult{}, fmt.Errorf("pipeline: statting archive: %w", err)
	}

	footer, payloadOff, err := container.Locate(archive, info.Size())
	if err != nil {
		return ExtractResult{}, fmt.Errorf("pipeline: locating footer: %w", err)
	}

	// #nosec G115 -- CompressedSize was itself validated against the
	// archive's own file size inside container.Locate.
	section := io.NewSectionReader(archive, payloadOff, int64(footer.CompressedSize))

	src, err := sink.Source(footer.Method, section)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("pipeline: constructing source: %w", err)
	}
	defer src.Close()

	out, err := os.Create(opts.OutputPath)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("pipeline: creating output: %w", err)
	}
	defer func() {
		clsErr := out.Close()
		if err == nil {
			err = clsErr
		}
	}()

	dec := hpzt.NewDecoder(out)

	buf := make([]byte, extractBlockSize)

	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if ferr := dec.Feed(buf[:n]); ferr != nil {
				return ExtractResult{}, fmt.Errorf("pipeline: decoding: %w", ferr)
			}
		}

		if readErr == io.EOF {
			break
		}

		if readErr != nil {
			return ExtractResult{}, fmt.Errorf("pipeline: reading payload: %w", readErr)
		}
	}

	if err = dec.Close(); err != nil {
		return ExtractResult{}, fmt.Errorf("pipeline: closing decoder: %w", err)
	}

	if dec.Written() != footer.OriginalSize {
		return ExtractResult{}, fmt.Errorf("%w: got %d want %d", ErrLengthMismatch, dec.Written(), footer.OriginalSize)
	}

	if dec.CRC32() != footer.CRC32 {
		return ExtractResult{}, fmt.Errorf("%w: got %#x want %#x", ErrCrcMismatch, dec.CRC32(), footer.CRC32)
	}

	return ExtractResult{BytesWritten: dec.Written(), CRC32: dec.CRC32()}, nil
}

