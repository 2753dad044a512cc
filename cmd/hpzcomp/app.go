// SPDX-License-Identifier: MIT
// Source: ianlewis-go-dictzip/cmd/dictzip/app.go (urfave/cli app shape, ExitErrHandler)

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/hpztools/hpzt"
	"github.com/hpztools/hpzt/pipeline"
	"github.com/hpztools/hpzt/sink"
)

// Exit codes per §6: 0 success, 1 I/O or codec failure, 2 usage error.
const (
	ExitCodeSuccess int = iota
	ExitCodeFailure
	ExitCodeUsageError
)

// ErrUsage marks a command-line usage mistake, mapped to ExitCodeUsageError.
var ErrUsage = errors.New("hpzcomp: usage error")

func newApp() *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Build a self-extracting HPZT archive.",
		ArgsUsage: "<input> <output_archive>",
		Description: strings.Join([]string{
			"hpzcomp applies the HPZT text pre-transform and a stream sink",
			"(zlib DEFLATE or STORE) to build an archive payload, then appends",
			"an HPZ2 footer the extractor uses to locate it.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "method", Value: "zlib", Usage: "payload codec: zlib or store"},
			&cli.StringFlag{Name: "stub", Value: "", Usage: "self-extractor stub to prepend (optional)"},
			&cli.BoolFlag{Name: "no-transform", Usage: "disable the HPZT pre-transform entirely"},
			&cli.BoolFlag{Name: "no-dict", Usage: "disable dictionary phrase substitution"},
			&cli.BoolFlag{Name: "no-space-run", Usage: "disable space run-length encoding"},
			&cli.BoolFlag{Name: "no-nl-run", Usage: "disable newline run-length encoding"},
			&cli.BoolFlag{Name: "no-digit-run", Usage: "disable digit run-length encoding"},
			&cli.BoolFlag{Name: "no-dash-run", Usage: "disable dash run-length encoding"},
			&cli.BoolFlag{Name: "no-equals-run", Usage: "disable equals-sign run-length encoding"},
			&cli.BoolFlag{Name: "version", Aliases: []string{"v"}, Usage: "print version information and exit", DisableDefaultText: true},
		},
		HideHelpCommand: true,
		Action:          runCompress,
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}

			fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", c.App.Name, err)

			if errors.Is(err, ErrUsage) {
				cli.OsExiter(ExitCodeUsageError)
				return
			}

			cli.OsExiter(ExitCodeFailure)
		},
	}
}

func runCompress(c *cli.Context) error {
	if c.Bool("version") {
		info := version.GetVersionInfo()
		fmt.Fprintf(c.App.Writer, "%s %s\n%s", c.App.Name, info.GitVersion, info.String())
		return nil
	}

	if c.NArg() != 2 {
		return fmt.Errorf("%w: expected <input> <output_archive>, got %d args", ErrUsage, c.NArg())
	}

	method, err := parseMethod(c.String("method"))
	if err != nil {
		return err
	}

	flags := flagsFromContext(c)

	result, err := pipeline.Compress(pipeline.CompressOptions{
		InputPath:     c.Args().Get(0),
		StubPath:      c.String("stub"),
		OutputPath:    c.Args().Get(1),
		Flags:         flags,
		Method:        method,
		AllowFallback: true,
	})
	if err != nil {
		return err
	}

	if result.FellBack {
		fmt.Fprintf(c.App.ErrWriter, "%s: warning: deflate unavailable, fell back to store\n", c.App.Name)
	}

	return nil
}

func parseMethod(s string) (sink.Method, error) {
	switch strings.ToLower(s) {
	case "zlib", "deflate":
		return sink.MethodDeflate, nil
	case "store":
		return sink.MethodStore, nil
	default:
		return 0, fmt.Errorf("%w: unknown --method %q", ErrUsage, s)
	}
}

func flagsFromContext(c *cli.Context) hpzt.Flags {
	if c.Bool("no-transform") {
		return 0
	}

	flags := hpzt.DefaultFlags()

	if c.Bool("no-dict") {
		flags &^= hpzt.FlagDict
	}

	if c.Bool("no-space-run") {
		flags &^= hpzt.FlagSpace
	}

	if c.Bool("no-nl-run") {
		flags &^= hpzt.FlagNL
	}

	if c.Bool("no-digit-run") {
		flags &^= hpzt.FlagDigits
	}

	if c.Bool("no-dash-run") {
		flags &^= hpzt.FlagDash
	}

	if c.Bool("no-equals-run") {
		flags &^= hpzt.FlagEqual
	}

	return flags
}
