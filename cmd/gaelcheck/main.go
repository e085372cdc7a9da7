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
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gaelcheck/root"
)

var (
	version   string
	buildDate string
	gitCommit string
)

// UI contains the output streams of the application
// so tests can capture them.
type UI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	cmd, args, err := parseMainArgs(os.Args[1:], ui)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runCommand(ctx, cmd, args, ui); err != nil {
		stop()
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "gaelcheck: %v\n", err)
}

func runCommand(ctx context.Context, cmd string, args []string, ui UI) error {
	switch cmd {
	case "help":
		if len(args) > 0 && args[0] != "help" {
			return runCommand(ctx, args[0], []string{"--help"}, ui)
		}
		fs := flag.NewFlagSet("gaelcheck", flag.ContinueOnError)
		fs.SetOutput(ui.Out)
		setupUsage(fs)
		fs.Usage()
		return nil

	case "check":
		opts, lang, inputs, err := parseCheckArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return checkCommand(ctx, opts, lang, inputs, ui)

	case "features":
		lang, err := parseFeaturesArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return featuresCommand(lang, ui)

	case "version":
		if err := parseVersionArgs(args, ui); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return versionCommand(root.VersionInfo{Version: version, BuildDate: buildDate, GitCommit: gitCommit}, ui)

	default:
		return fmt.Errorf("unknown command %s", cmd)
	}
}
