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

// Package corpus wraps an ordered collection of sentences loaded
// from a single source together with the results of checking.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gaelcheck/check"
	"gaelcheck/langs"
	"gaelcheck/report"
	"gaelcheck/sidecar"
	"gaelcheck/ud"

	"github.com/rs/zerolog/log"
)

const (
	StdinSource = "-"
)

var (
	ErrNotChecked = errors.New("corpus has not been checked yet")
)

type Corpus struct {
	Source      string
	lang        *langs.Language
	approvals   sidecar.Approvals
	sentences   []*ud.Sentence
	diagnostics [][]check.Diagnostic
	checked     bool
}

// New creates an empty corpus. Sentences are expected to be
// added via AddSentence.
func New(source string, lang *langs.Language, approvals sidecar.Approvals) *Corpus {
	return &Corpus{
		Source:    source,
		lang:      lang,
		approvals: approvals,
		sentences: make([]*ud.Sentence, 0, 1000),
	}
}

// Load streams CoNLL-U sentences from a reader. Each of them is
// built and linked before the next one is read.
func Load(r io.Reader, source string, lang *langs.Language, approvals sidecar.Approvals) (*Corpus, error) {
	ans := New(source, lang, approvals)
	rdr := ud.NewReader(r, lang.Autoset())
	err := rdr.ReadAll(func(s *ud.Sentence) error {
		ans.AddSentence(s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus %s: %w", source, err)
	}
	log.Debug().
		Str("source", source).
		Int("numSentences", len(ans.sentences)).
		Int("numLines", rdr.LineNum()).
		Msg("corpus loaded")
	return ans, nil
}

// LoadFile loads a CoNLL-U file (or stdin for "-") along with its
// sidecar pre-approvals found in sicDir.
func LoadFile(path, sicDir string, lang *langs.Language) (*Corpus, error) {
	if path == StdinSource || path == "" {
		return Load(os.Stdin, StdinSource, lang, sidecar.Approvals{})
	}
	approvals, err := sidecar.LoadFor(sicDir, path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()
	return Load(f, path, lang, approvals)
}

func (c *Corpus) AddSentence(s *ud.Sentence) {
	c.sentences = append(c.sentences, s)
}

func (c *Corpus) Language() *langs.Language {
	return c.lang
}

func (c *Corpus) Approvals() sidecar.Approvals {
	return c.approvals
}

func (c *Corpus) Sentences() []*ud.Sentence {
	return c.sentences
}

func (c *Corpus) NumSentences() int {
	return len(c.sentences)
}

func (c *Corpus) NumTokens() int {
	var ans int
	for _, s := range c.sentences {
		ans += len(s.OrdinaryTokens())
	}
	return ans
}

func (c *Corpus) IsChecked() bool {
	return c.checked
}

// Diagnostics returns diagnostics grouped by sentences
// in document order.
func (c *Corpus) Diagnostics() [][]check.Diagnostic {
	return c.diagnostics
}

// FlatDiagnostics returns all diagnostics in document order
func (c *Corpus) FlatDiagnostics() []check.Diagnostic {
	ans := make([]check.Diagnostic, 0, len(c.diagnostics)*2)
	for _, v := range c.diagnostics {
		ans = append(ans, v...)
	}
	return ans
}

// WriteConllu writes all the sentences including comments,
// multiword and malformed lines.
func (c *Corpus) WriteConllu(w io.Writer) error {
	for _, s := range c.sentences {
		if err := s.WriteConllu(w); err != nil {
			return fmt.Errorf("failed to write sentence %s: %w", s.ID, err)
		}
	}
	return nil
}

// WriteReport writes the text report of a checked corpus
func (c *Corpus) WriteReport(w io.Writer) error {
	if !c.checked {
		return ErrNotChecked
	}
	if err := report.WriteText(w, c.diagnostics); err != nil {
		return err
	}
	for _, s := range c.sentences {
		if err := s.MarkReported(); err != nil {
			return fmt.Errorf("failed to report sentence %s: %w", s.ID, err)
		}
	}
	return nil
}

// AddToReport copies source info and diagnostics into a JSON report
func (c *Corpus) AddToReport(rep *report.Report) error {
	if !c.checked {
		return ErrNotChecked
	}
	rep.AddSource(c.Source, c.NumSentences(), c.NumTokens())
	for _, diags := range c.diagnostics {
		rep.Add(diags...)
	}
	return nil
}
