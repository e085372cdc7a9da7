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

// Package gd implements the Scottish Gaelic grammar.
package gd

import (
	"regexp"
	"strings"

	"gaelcheck/goidelic"
	"gaelcheck/ud"
)

var (
	lenitedForm   = regexp.MustCompile(`^([bcdfgmpst])h`)
	pastDhForm    = regexp.MustCompile(`^dh'`)
	prefixHForm   = regexp.MustCompile(`^h-[aeiouàèìòù]`)
	prefixTForm   = regexp.MustCompile(`^t-([aeiouàèìòù]|s)`)
	reflexLemma   = regexp.MustCompile(`^(f[eéè]in|c[eéè]ile|a-chèile)$`)
	cheileLemma   = regexp.MustCompile(`^c[eéè]ile$`)
	lenitedLemmaH = regexp.MustCompile(`^.h`)

	demutator = goidelic.Demutator{
		goidelic.Rewrite(`[hntHNT]-(.)`, "$1"),
		goidelic.Rewrite(`[dD]h'([bcdfgmpstBCDFGMPST])[hH]`, "$1"),
		goidelic.Rewrite(`[dD]h'(.)`, "$1"),
		goidelic.Rewrite(`([bcdfgmpstBCDFGMPST])[hH]`, "$1"),
	}
)

// Phonology implements the Scottish Gaelic mutation primitives.
// Gaelic has no initial eclipsis in its orthography.
type Phonology struct{}

// IsLenited compares the surface form with the lemma
// ("bhàta" vs. "bàta", "dh'fhàg" vs. "fàg").
func (p Phonology) IsLenited(tok *ud.Token) bool {
	form := tok.LowerForm()
	lemma := strings.ToLower(tok.Lemma())
	if lemma == "" || form == "" || lenitedLemmaH.MatchString(lemma) {
		return false
	}
	if pastDhForm.MatchString(form) {
		return true
	}
	return lenitedForm.MatchString(form) && form[0] == lemma[0]
}

func (p Phonology) IsEclipsed(tok *ud.Token) bool {
	return false
}

func (p Phonology) HasPrefixH(tok *ud.Token) bool {
	return prefixHForm.MatchString(tok.LowerForm())
}

func (p Phonology) HasPrefixT(tok *ud.Token) bool {
	return prefixTForm.MatchString(tok.LowerForm())
}

func (p Phonology) Demutate(form string) string {
	return demutator.Apply(form)
}

// Lower is a plain lowercasing as prefixes are always hyphenated
func (p Phonology) Lower(form string) string {
	return strings.ToLower(form)
}

// Autoset records surface mutations under the internal XForm key
// which is never written out.
func (p Phonology) Autoset(tok *ud.Token) {
	if p.IsLenited(tok) {
		tok.AddFeature("XForm", "Len")
	}
	if p.IsEclipsed(tok) {
		tok.AddFeature("XForm", "Ecl")
	}
	if p.HasPrefixH(tok) {
		tok.AddFeature("XForm", "HPref")
	}
}
