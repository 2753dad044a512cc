// SPDX-License-Identifier: MIT
// Source: original_source/src/archive_main.cpp (extractor CLI surface), ianlewis-go-dictzip/cmd/dictzip/app.go (ExitErrHandler shape)

package main

import (
	"fmt"
	"os"

	"github.com/hpztools/hpzt/pipeline"
)

// defaultOutputName mirrors the original's enwik9.out default.
const defaultOutputName = "archive.out"

// outputEnvVar is the one environment variable the extractor recognizes
// (§6): it overrides the reconstructed file's name.
const outputEnvVar = "HPZX_OUTPUT"

func main() {
	os.Exit(run())
}

func run() int {
	output := os.Getenv(outputEnvVar)
	if output == "" {
		output = defaultOutputName
	}

	result, err := pipeline.Extract(pipeline.ExtractOptions{OutputPath: output})
	if err != nil {
		fmt.Fprintf(os.Stderr, "hpzx: %v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stdout, "hpzx: wrote %s (%d bytes, crc32 %#08x)\n", output, result.BytesWritten, result.CRC32)

	return 0
}
