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

// Package check ties the rule tables, the lexicon and pre-approvals
// together and turns everything found in a sentence into diagnostics.
package check

import (
	"fmt"
	"strings"

	"gaelcheck/langs"
	"gaelcheck/lexicon"
	"gaelcheck/rules"
	"gaelcheck/sidecar"
	"gaelcheck/ud"
)

const (
	disjunctionSeparator = " OR "
)

// Checker is stateless once created and it can be used by
// any number of goroutines at the same time.
type Checker struct {
	lang    *langs.Language
	lexicon *lexicon.Lexicon
}

func NewChecker(lang *langs.Language, lex *lexicon.Lexicon) *Checker {
	return &Checker{lang: lang, lexicon: lex}
}

func (c *Checker) Language() *langs.Language {
	return c.lang
}

// CheckSentence evaluates all checkable features of all ordinary
// tokens of a linked sentence. Features approved for a line are
// skipped. Diagnostics are returned in document order, parse and
// structural issues of a token go first.
func (c *Checker) CheckSentence(s *ud.Sentence, approvals sidecar.Approvals) ([]Diagnostic, error) {
	if err := s.MarkChecked(); err != nil {
		return nil, fmt.Errorf("failed to check sentence %s: %w", s.ID, err)
	}
	issues := make(map[*ud.Token][]ud.Issue)
	for _, iss := range s.Issues() {
		issues[iss.Token] = append(issues[iss.Token], iss)
	}
	ans := make([]Diagnostic, 0, 8)
	for _, tok := range s.Tokens() {
		for _, iss := range issues[tok] {
			ans = append(ans, c.issueDiagnostic(s, iss))
		}
		if !tok.IsOrdinary() {
			continue
		}
		ans = append(ans, c.CheckToken(tok, approvals)...)
	}
	return ans, nil
}

func (c *Checker) issueDiagnostic(s *ud.Sentence, iss ud.Issue) Diagnostic {
	ans := Diagnostic{
		LineNum:    iss.LineNum,
		SentenceID: s.ID,
		Message:    iss.Message,
		Category:   Structural,
	}
	if iss.Kind == ud.IssueParse {
		ans.Category = Parse
	}
	if iss.Token != nil {
		ans.Token = iss.Token.Descriptor()
	}
	return ans
}

// CheckToken runs the lexicon lookup and evaluates all checkable
// features of a single ordinary token.
func (c *Checker) CheckToken(tok *ud.Token, approvals sidecar.Approvals) []Diagnostic {
	var ans []Diagnostic
	if obj := c.lexicon.Lookup(tok, c.lang.Phonology.Lower); !obj.IsEmpty() {
		ans = append(ans, c.newDiagnostic(tok, Lexicon, "", "", obj.Message()))
	}
	for _, feat := range c.lang.Checkable {
		if approvals.IsApproved(tok.LineNum(), feat) {
			continue
		}
		entry, registered := c.lang.Table.Lookup(tok.UPOS(), feat)
		for _, fail := range rules.Evaluate(tok, feat, entry, registered) {
			ans = append(ans, c.failureDiagnostic(tok, fail))
		}
	}
	return ans
}

func (c *Checker) failureDiagnostic(tok *ud.Token, fail rules.Failure) Diagnostic {
	switch fail.Kind {
	case rules.FailGap:
		feat := fail.Feature
		if fail.Facet != "" {
			feat = fmt.Sprintf("%s (%s)", fail.Feature, fail.Facet)
		}
		return c.newDiagnostic(
			tok, CoverageGap, fail.Feature, fail.Facet,
			fmt.Sprintf("no rule covers feature %s for POS %s", feat, tok.UPOS()),
		)
	case rules.FailUnexplainedValue:
		return c.newDiagnostic(
			tok, Violation, fail.Feature, "",
			fmt.Sprintf("value %s of feature %s is not explained by any rule", fail.Value, fail.Feature),
		)
	default:
		return c.newDiagnostic(
			tok, Violation, fail.Feature, fail.Facet,
			strings.Join(fail.Messages(), disjunctionSeparator),
		)
	}
}

func (c *Checker) newDiagnostic(tok *ud.Token, cat Category, feat, facet, msg string) Diagnostic {
	ans := Diagnostic{
		Category: cat,
		LineNum:  tok.LineNum(),
		Token:    tok.Descriptor(),
		Feature:  feat,
		Facet:    facet,
		Message:  msg,
	}
	if s := tok.Sentence(); s != nil {
		ans.SentenceID = s.ID
	}
	return ans
}

// Prepare creates a checker for a language code. An empty
// lexicon path disables lexicon checks.
func Prepare(code, lexiconPath string) (*Checker, error) {
	lang, err := langs.Get(code)
	if err != nil {
		return nil, err
	}
	var lex *lexicon.Lexicon
	if lexiconPath != "" {
		lex, err = lexicon.Load(lexiconPath)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare checker for %s: %w", code, err)
		}
	}
	return NewChecker(lang, lex), nil
}
