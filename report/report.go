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

package report

import (
	"bufio"
	"fmt"
	"io"

	"gaelcheck/check"

	"github.com/bytedance/sonic"
)

// WriteText writes one line per diagnostic. Diagnostics of
// different sentences are separated by a blank line and sentences
// without diagnostics produce no output at all.
func WriteText(w io.Writer, sentences [][]check.Diagnostic) error {
	bw := bufio.NewWriter(w)
	var written bool
	for _, diags := range sentences {
		if len(diags) == 0 {
			continue
		}
		if written {
			bw.WriteByte('\n')
		}
		for _, d := range diags {
			bw.WriteString(d.String())
			bw.WriteByte('\n')
		}
		written = true
	}
	return bw.Flush()
}

// Report is a machine readable version of a check result
type Report struct {
	RunID        string             `json:"runId,omitempty"`
	Language     string             `json:"language"`
	Sources      []string           `json:"sources"`
	NumSentences int                `json:"numSentences"`
	NumTokens    int                `json:"numTokens"`
	Counts       map[string]int     `json:"counts"`
	Diagnostics  []check.Diagnostic `json:"diagnostics"`
}

// New creates a report with all categories present in Counts,
// including the zero ones.
func New(lang string) *Report {
	ans := &Report{
		Language:    lang,
		Sources:     make([]string, 0, 4),
		Counts:      make(map[string]int),
		Diagnostics: make([]check.Diagnostic, 0, 100),
	}
	for _, c := range check.Categories {
		ans.Counts[c.String()] = 0
	}
	return ans
}

func (rep *Report) AddSource(src string, numSentences, numTokens int) {
	rep.Sources = append(rep.Sources, src)
	rep.NumSentences += numSentences
	rep.NumTokens += numTokens
}

func (rep *Report) Add(diags ...check.Diagnostic) {
	for _, d := range diags {
		rep.Counts[d.Category.String()]++
	}
	rep.Diagnostics = append(rep.Diagnostics, diags...)
}

func (rep *Report) Total() int {
	return len(rep.Diagnostics)
}

func (rep *Report) WriteJSON(w io.Writer) error {
	data, err := sonic.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
