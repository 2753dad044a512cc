// SPDX-License-Identifier: MIT
// Source: original_source/src/hpzt_dump.cpp (fields reported), ianlewis-go-dictzip/cmd/dictzip/list.go (rodaine/table usage)

// Command hpzdump is a read-only HPZT archive inspector: it locates the
// footer and, if present, peeks the HPZT header without running the
// decoder, then prints both as a table.
package main

import (
	"fmt"
	"os"

	"github.com/rodaine/table"

	"github.com/hpztools/hpzt"
	"github.com/hpztools/hpzt/container"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <archive>\n", os.Args[0])
		os.Exit(2)
	}

	if err := dump(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "hpzdump: %v\n", err)
		os.Exit(1)
	}
}

func dump(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	footer, payloadOff, err := container.Locate(f, info.Size())
	if err != nil {
		return fmt.Errorf("locating footer: %w", err)
	}

	variant := "HPZ2"
	if footer.Variant == container.VariantHPZ1 {
		variant = "HPZ1"
	}

	tbl := table.New("field", "value")
	tbl.AddRow("archive", path)
	tbl.AddRow("size_total", info.Size())
	tbl.AddRow("footer", variant)
	tbl.AddRow("method", footer.Method.String())
	tbl.AddRow("orig_size", footer.OriginalSize)
	tbl.AddRow("comp_size", footer.CompressedSize)
	tbl.AddRow("payload_off", payloadOff)
	tbl.AddRow("crc32", fmt.Sprintf("%#08x", footer.CRC32))

	head := make([]byte, 12)
	n, _ := f.ReadAt(head, payloadOff)
	head = head[:n]

	if n >= 6 && string(head[0:4]) == "HPZT" {
		version := head[4]
		flags := hpzt.Flags(head[5])

		tbl.AddRow("hpzt_header", "yes")
		tbl.AddRow("hpzt_version", version)
		tbl.AddRow("hpzt_flags", fmt.Sprintf("%#02x", uint8(flags)))

		if version >= 2 && n >= 12 {
			fingerprint := uint32(head[8]) | uint32(head[9])<<8 | uint32(head[10])<<16 | uint32(head[11])<<24
			tbl.AddRow("dict_fingerprint_in", fmt.Sprintf("%#08x", fingerprint))
			tbl.AddRow("dict_fingerprint_match", fingerprint == hpzt.DefaultDictionaryFingerprint())
		}
	} else {
		tbl.AddRow("hpzt_header", "no")
	}

	tbl.Print()

	return nil
}
