// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	formatConllu = "conllu"
	formatVert   = "vert"
)

type CheckOptions struct {
	Report   bool
	ConfPath string
	JSON     bool
	Progress bool
	Summary  bool
	Store    bool
	SicDir   string
	Workers  int
	Format   string
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("gaelcheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}
	return fs.Arg(0), fs.Args()[1:], nil
}

func parseCheckArgs(args []string, ui UI) (CheckOptions, string, []string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := CheckOptions{Format: formatConllu}
	fs.BoolVar(&opts.Report, "r", false, "Write a diagnostic report instead of the corrected data")
	fs.StringVar(&opts.ConfPath, "conf", os.Getenv("GAELCHECK_CONF"), "Path to a JSON configuration file")
	fs.BoolVar(&opts.JSON, "json", false, "Write the report as JSON (implies -r)")
	fs.BoolVar(&opts.Progress, "progress", false, "Show a progress bar on stderr")
	fs.BoolVar(&opts.Summary, "summary", false, "Write a summary of the check to stderr")
	fs.BoolVar(&opts.Store, "store", false, "Store the report into the configured report database")
	fs.StringVar(&opts.SicDir, "sic", "", "Directory with pre-approval sidecar files (overrides configuration)")
	fs.IntVar(&opts.Workers, "workers", 0, "Number of checking goroutines (0 = configured value)")
	fs.Var(
		&enumFlag{allowed: []string{formatConllu, formatVert}, value: &opts.Format},
		"format",
		"Input format (conllu, vert)",
	)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s check [options] <ga|gd|gv> [input ...]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Check morphological features of a treebank. Inputs can be paths\n")
		_, _ = fmt.Fprintf(fs.Output(), "  or glob patterns (incl. **). Without inputs, stdin is read.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", nil, errors.New("check command requires a language")
	}
	if opts.JSON {
		opts.Report = true
	}
	return opts, fs.Arg(0), fs.Args()[1:], nil
}

func parseFeaturesArgs(args []string, ui UI) (string, error) {
	fs := flag.NewFlagSet("features", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s features <ga|gd|gv>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List checked features and parts of speech having a rule for them.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", err
	}
	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", errors.New("features command requires exactly one language")
	}
	return fs.Arg(0), nil
}

func parseVersionArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s version\n", os.Args[0])
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
		}
		return err
	}
	return nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Morphological feature checker of Irish, Scottish Gaelic and Manx treebanks\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  check     Check CoNLL-U (or vertical) data.\n")
		_, _ = fmt.Fprintf(output, "  features  List checked features of a language.\n")
		_, _ = fmt.Fprintf(output, "  version   Show version information.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}
