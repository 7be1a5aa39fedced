// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command neondemo prints operands and results of the 128-bit lane
// operations, one section per instruction family.
//
// Usage:
//
//	neondemo                         # every section
//	neondemo -sections arith,shift   # selected sections, in the given order
//	neondemo -hex -sections logic    # force hexadecimal lanes
//	neondemo -list                   # section names
//
// Setting NEON128_NO_SIMD=1 makes the header report the scalar level.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-highway/neon128/internal/buildinfo"
	"github.com/go-highway/neon128/report"
	"github.com/go-highway/neon128/vec"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the parsed command-line flags.
type options struct {
	sections string
	list     bool
	hex      bool
	verbose  bool
	version  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("neondemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.sections, "sections", "all", "Comma-separated sections to run, or 'all'")
	fs.BoolVar(&opts.list, "list", false, "List the available sections and exit")
	fs.BoolVar(&opts.hex, "hex", false, "Print every lane in hexadecimal")
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging")
	fs.BoolVar(&opts.version, "version", false, "Print the build version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// selectSections resolves the -sections flag. Names keep the order given;
// "all" selects every section in definition order.
func selectSections(list string) ([]section, error) {
	list = strings.TrimSpace(list)
	if list == "" || list == "all" {
		return sections, nil
	}
	var selected []section
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, ok := findSection(name)
		if !ok {
			return nil, fmt.Errorf("unknown section %q (run with -list)", name)
		}
		selected = append(selected, s)
	}
	if len(selected) == 0 {
		return nil, errors.New("no sections selected")
	}
	return selected, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	logger := newLogger(stderr, opts.verbose)
	if err != nil {
		logger.Error("invalid arguments", "err", err)
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "neondemo %s\n", buildinfo.Short())
		return exitOK
	}

	if opts.list {
		for _, s := range sections {
			fmt.Fprintf(stdout, "%-10s %s\n", s.name, s.doc)
		}
		return exitOK
	}

	selected, err := selectSections(opts.sections)
	if err != nil {
		logger.Error("invalid -sections", "err", err)
		return exitUsage
	}

	logger.Debug("dispatch", "level", vec.CurrentName(), "width", vec.CurrentWidth(), "no_simd", vec.NoSimdEnv())

	var wopts []report.Option
	if opts.hex {
		wopts = append(wopts, report.WithFormat(report.Hex))
	}
	w := report.NewWriter(stdout, wopts...)

	fmt.Fprintf(stdout, "neon128 %s: simd level %s, %d-byte registers\n\n",
		buildinfo.Short(), vec.CurrentName(), vec.CurrentWidth())
	for _, s := range selected {
		logger.Debug("running section", "section", s.name)
		s.run(w)
		if err := w.Err(); err != nil {
			logger.Error("writing report", "section", s.name, "err", err)
			return exitError
		}
	}
	return exitOK
}
