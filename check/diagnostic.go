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

package check

import (
	"fmt"
)

type Category int

const (
	Violation Category = iota
	CoverageGap
	Lexicon
	Structural
	Parse
)

// Categories lists all the categories in the order they are
// presented in summaries.
var Categories = []Category{Violation, CoverageGap, Lexicon, Structural, Parse}

func (c Category) String() string {
	switch c {
	case Violation:
		return "violation"
	case CoverageGap:
		return "coverageGap"
	case Lexicon:
		return "lexicon"
	case Structural:
		return "structural"
	case Parse:
		return "parse"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(data []byte) error {
	for _, v := range Categories {
		if v.String() == string(data) {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("unknown diagnostic category '%s'", string(data))
}

// Diagnostic is a single reported problem bound to a source line
type Diagnostic struct {
	Category   Category `json:"category"`
	LineNum    int      `json:"line"`
	Token      string   `json:"token"`
	SentenceID string   `json:"sentenceId,omitempty"`
	Feature    string   `json:"feature,omitempty"`
	Facet      string   `json:"facet,omitempty"`
	Message    string   `json:"message"`
}

// String produces a report line "[Line N (i,form,lemma,UPOS)]: message"
func (d Diagnostic) String() string {
	return fmt.Sprintf("[Line %d %s]: %s", d.LineNum, d.Token, d.Message)
}

// Counts maps categories to numbers of diagnostics
type Counts map[Category]int

func (c Counts) Add(diags []Diagnostic) {
	for _, d := range diags {
		c[d.Category]++
	}
}

func (c Counts) Total() int {
	var ans int
	for _, v := range c {
		ans += v
	}
	return ans
}
