// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/copy.go (bounded-expansion helper shape)

package hpzt

import (
	"hash/crc32"
	"io"
)

// writeRun writes count copies of b to w, updating crc and written. count
// is always small (≤ equalMaxToken) so a single fixed-size stack buffer
// covers every run this codec can ever emit.
func writeRun(w io.Writer, crc *uint32, written *uint64, b byte, count int) error {
	if count <= 0 {
		return nil
	}

	var buf [equalMaxToken]byte
	for i := 0; i < count; i++ {
		buf[i] = b
	}

	return writeTracked(w, crc, written, buf[:count])
}

// writeTracked writes p to w and folds it into the running CRC32 and byte
// count in one place, so every decoder output path stays consistent.
func writeTracked(w io.Writer, crc *uint32, written *uint64, p []byte) error {
	if len(p) == 0 {
		return nil
	}

	if _, err := w.Write(p); err != nil {
		return err
	}

	*crc = crc32.Update(*crc, crc32.IEEETable, p)
	*written += uint64(len(p))

	return nil
}
