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

// Package goidelic contains everything shared by the Irish,
// Scottish Gaelic and Manx grammars.
package goidelic

import (
	"regexp"
	"strings"

	"gaelcheck/ud"
)

// Phonology is implemented by each language and provides
// mutation detection based on a surface form and a lemma.
type Phonology interface {
	IsLenited(tok *ud.Token) bool
	IsEclipsed(tok *ud.Token) bool
	HasPrefixH(tok *ud.Token) bool
	HasPrefixT(tok *ud.Token) bool

	// Demutate reconstructs an unmutated surface form
	Demutate(form string) string

	// Lower lowercases a surface form with respect to
	// mutation prefixes attached to a capital letter
	Lower(form string) string

	// Autoset sets always-applied mutation markers
	Autoset(tok *ud.Token)
}

// RewriteRule is a single demutation step
type RewriteRule struct {
	Match       *regexp.Regexp
	Replacement string
}

// Rewrite creates a demutation rule. The expression is
// anchored to the start of a form.
func Rewrite(expr, replacement string) RewriteRule {
	return RewriteRule{
		Match:       regexp.MustCompile("^(?:" + expr + ")"),
		Replacement: replacement,
	}
}

// Demutator is a priority-ordered list of rewrite rules.
// The first matching rule wins.
type Demutator []RewriteRule

func (d Demutator) Apply(form string) string {
	for _, r := range d {
		if r.Match.MatchString(form) {
			return r.Match.ReplaceAllString(form, r.Replacement)
		}
	}
	return form
}

// MatchForm tests a case-insensitive match against a lowercased form
func MatchForm(rx *regexp.Regexp, tok *ud.Token) bool {
	return rx.MatchString(strings.ToLower(tok.Form()))
}

// SetMarker adds or removes a value of a feature depending on cond.
func SetMarker(tok *ud.Token, feat, value string, cond bool) {
	if cond {
		tok.AddFeature(feat, value)

	} else {
		tok.KillFeature(feat, value)
	}
}
