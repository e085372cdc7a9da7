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

// Package vert reads sentences from vertical files where each
// `<s>` structure wraps token lines with the ten CoNLL-U columns.
package vert

import (
	"context"
	"fmt"
	"strings"

	"gaelcheck/corpus"
	"gaelcheck/langs"
	"gaelcheck/sidecar"
	"gaelcheck/ud"

	"github.com/czcorpus/vert-tagextract/v3/proc"
	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v6"
)

const (
	dfltSentenceStruct = "s"
	dfltIDAttr         = "id"
	sentIDComment      = "# sent_id = "
)

type Conf struct {
	SentenceStruct string
	IDAttr         string
}

func (conf Conf) withDefaults() Conf {
	if conf.SentenceStruct == "" {
		conf.SentenceStruct = dfltSentenceStruct
	}
	if conf.IDAttr == "" {
		conf.IDAttr = dfltIDAttr
	}
	return conf
}

// sentenceCollector is a vertigo.LineProcessor turning
// sentence structures into linked sentences.
type sentenceCollector struct {
	ctx        context.Context
	conf       Conf
	builder    *ud.Builder
	corp       *corpus.Corpus
	numIgnored int
}

func (sc *sentenceCollector) stopped() error {
	select {
	case <-sc.ctx.Done():
		return fmt.Errorf("received stop signal: %w", sc.ctx.Err())
	default:
	}
	return nil
}

func (sc *sentenceCollector) finish() error {
	if !sc.builder.HasContent() {
		return nil
	}
	s, err := sc.builder.Finish()
	if err != nil {
		return err
	}
	sc.corp.AddSentence(s)
	return nil
}

func (sc *sentenceCollector) ProcStruct(st *vertigo.Structure, line int, err error) error {
	if err := sc.stopped(); err != nil {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to parse structure at line %d: %w", line, err)
	}
	if st.Name != sc.conf.SentenceStruct {
		sc.numIgnored++
		return nil
	}
	// an unclosed previous sentence ends here
	if err := sc.finish(); err != nil {
		return err
	}
	if id := st.Attrs[sc.conf.IDAttr]; id != "" {
		return sc.builder.AddComment(sentIDComment + id)
	}
	return nil
}

func (sc *sentenceCollector) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	if err := sc.stopped(); err != nil {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to parse structure at line %d: %w", line, err)
	}
	if st.Name != sc.conf.SentenceStruct {
		return nil
	}
	return sc.finish()
}

func (sc *sentenceCollector) ProcToken(tk *vertigo.Token, line int, err error) error {
	if err != nil {
		return fmt.Errorf("failed to parse token at line %d: %w", line, err)
	}
	columns := make([]string, 0, ud.NumFields)
	columns = append(columns, tk.Word)
	columns = append(columns, tk.Attrs...)
	return sc.builder.AddLine(line, strings.Join(columns, ud.FieldSeparator))
}

// LoadFile reads a vertical file into a corpus. Sidecar approvals
// refer to the vertical file line numbers.
func LoadFile(ctx context.Context, path string, conf Conf, lang *langs.Language, sicDir string) (*corpus.Corpus, error) {
	approvals, err := sidecar.LoadFor(sicDir, path)
	if err != nil {
		return nil, err
	}
	scanner, err := proc.NewMultiFileScanner(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vertical file %s: %w", path, err)
	}
	defer scanner.Close()
	collector := &sentenceCollector{
		ctx:     ctx,
		conf:    conf.withDefaults(),
		builder: ud.NewBuilder(lang.Autoset()),
		corp:    corpus.New(path, lang, approvals),
	}
	parserConf := &vertigo.ParserConf{
		StructAttrAccumulator: "nil",
		Encoding:              "utf-8",
	}
	if err := vertigo.ParseVerticalFromScanner(ctx, scanner, parserConf, collector); err != nil {
		return nil, fmt.Errorf("failed to read vertical file %s: %w", path, err)
	}
	if err := collector.finish(); err != nil {
		return nil, err
	}
	log.Debug().
		Str("source", path).
		Int("numSentences", collector.corp.NumSentences()).
		Int("numIgnoredStructs", collector.numIgnored).
		Msg("vertical file loaded")
	return collector.corp, nil
}
