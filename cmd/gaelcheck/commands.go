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
	"fmt"
	"strings"

	"gaelcheck/check"
	"gaelcheck/cnf"
	"gaelcheck/corpus"
	"gaelcheck/db/mysql"
	"gaelcheck/langs"
	"gaelcheck/report"
	"gaelcheck/reportdb"
	"gaelcheck/root"
	"gaelcheck/rules"
	"gaelcheck/sidecar"
	"gaelcheck/vert"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/strutil"
	"github.com/czcorpus/cnc-gokit/util"
	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoReportDB = errors.New("report database is not configured")
)

func loadConf(path string) (*cnf.Conf, error) {
	if path == "" {
		return cnf.Default(), nil
	}
	conf, err := cnf.ReadConfig(path)
	if err != nil {
		return nil, err
	}
	cnf.ApplyDefaults(conf)
	return conf, nil
}

// resolveInputs expands glob patterns. Plain paths are kept
// as they are so that a missing file is reported when opened.
func resolveInputs(inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		return []string{corpus.StdinSource}, nil
	}
	ans := make([]string, 0, len(inputs))
	for _, inp := range inputs {
		if !strings.ContainsAny(inp, "*?[{") {
			ans = append(ans, inp)
			continue
		}
		matches, err := doublestar.FilepathGlob(inp)
		if err != nil {
			return nil, fmt.Errorf("invalid input pattern %s: %w", inp, err)
		}
		if len(matches) == 0 {
			log.Warn().Str("pattern", inp).Msg("no input matches the pattern")
		}
		ans = append(ans, matches...)
	}
	return ans, nil
}

func loadInput(ctx context.Context, path string, opts CheckOptions, sicDir string, lang *langs.Language, ui UI) (*corpus.Corpus, error) {
	if path == corpus.StdinSource {
		if opts.Format == formatVert {
			return nil, errors.New("vertical input cannot be read from stdin")
		}
		return corpus.Load(ui.In, corpus.StdinSource, lang, sidecar.Approvals{})
	}
	if opts.Format == formatVert {
		return vert.LoadFile(ctx, path, vert.Conf{}, lang, sicDir)
	}
	return corpus.LoadFile(path, sicDir, lang)
}

func checkCorpus(ctx context.Context, data *corpus.Corpus, checker *check.Checker, numWorkers int, opts CheckOptions, ui UI) error {
	if !opts.Progress || data.NumSentences() == 0 {
		return data.Check(ctx, checker, numWorkers, nil)
	}
	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	progress.Start()
	bar := progress.AddBar(data.NumSentences())
	bar.AppendCompleted()
	bar.PrependElapsed()
	err := data.Check(ctx, checker, numWorkers, func() { bar.Incr() })
	progress.Stop()
	return err
}

func storeReport(ctx context.Context, conf *cnf.Conf, rep *report.Report) error {
	if !conf.HasReportDB() {
		return ErrNoReportDB
	}
	db, err := mysql.OpenBulkDB(conf.ReportDB)
	if err != nil {
		return err
	}
	defer db.Close()
	store := reportdb.New(db, conf.ReportTablePrefix)
	if err := store.Init(ctx); err != nil {
		return err
	}
	_, err = store.Save(ctx, rep)
	return err
}

func checkCommand(ctx context.Context, opts CheckOptions, code string, inputs []string, ui UI) error {
	conf, err := loadConf(opts.ConfPath)
	if err != nil {
		return err
	}
	if opts.ConfPath != "" {
		logging.SetupLogging(conf.Logging)
	}
	if opts.Store && !conf.HasReportDB() {
		return ErrNoReportDB
	}
	checker, err := check.Prepare(code, conf.LexiconPath(code))
	if err != nil {
		return err
	}
	paths, err := resolveInputs(inputs)
	if err != nil {
		return err
	}
	sicDir := util.Ternary(opts.SicDir != "", opts.SicDir, conf.SicDir)
	numWorkers := util.Ternary(opts.Workers > 0, opts.Workers, conf.NumWorkers)

	rep := report.New(code)
	for _, path := range paths {
		data, err := loadInput(ctx, path, opts, sicDir, checker.Language(), ui)
		if err != nil {
			return err
		}
		if err := checkCorpus(ctx, data, checker, numWorkers, opts, ui); err != nil {
			return err
		}
		if err := data.AddToReport(rep); err != nil {
			return err
		}
		log.Debug().
			Str("source", path).
			Int("numSentences", data.NumSentences()).
			Int("numDiagnostics", len(data.FlatDiagnostics())).
			Msg("input checked")

		if opts.JSON {
			continue

		} else if opts.Report {
			err = data.WriteReport(ui.Out)

		} else {
			err = data.WriteConllu(ui.Out)
		}
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if opts.Store {
		if err := storeReport(ctx, conf, rep); err != nil {
			return err
		}
	}
	if opts.JSON {
		if err := rep.WriteJSON(ui.Out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if opts.Summary {
		if err := report.WriteSummary(ui.Err, report.NewPrinter(conf.Language), rep); err != nil {
			return err
		}
	}
	return nil
}

func featuresCommand(code string, ui UI) error {
	lang, err := langs.Get(code)
	if err != nil {
		return err
	}
	keys := lang.Table.Keys()
	for _, feat := range lang.Checkable {
		featKeys := make([]rules.Key, 0, len(keys))
		for _, k := range keys {
			if k.Feature == feat {
				featKeys = append(featKeys, k)
			}
		}
		_, err := fmt.Fprintf(
			ui.Out, "%s\t%s\n",
			feat, strutil.JoinAny(featKeys, func(k rules.Key) string { return k.POS }, ","),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func versionCommand(ver root.VersionInfo, ui UI) error {
	_, err := fmt.Fprintf(
		ui.Out, "gaelcheck %s\nbuild date: %s\nlast commit: %s\n",
		ver.Version, ver.BuildDate, ver.GitCommit)
	return err
}
