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

// Package gv implements the Manx grammar. Manx orthography
// is not Gaelic-based so mutations are detected by comparing
// the surface form with the lemma.
package gv

import (
	"regexp"
	"strings"

	"gaelcheck/goidelic"
	"gaelcheck/ud"
)

var (
	lemmaBMNotW     = regexp.MustCompile(`^[bm][^w]`)
	lemmaShiftTwo   = regexp.MustCompile(`^([bm]w|f.|s[ln]|[çcst]h).`)
	lemmaBM         = regexp.MustCompile(`^[bm].`)
	lemmaCKNotH     = regexp.MustCompile(`^[ck][^h]`)
	lemmaF          = regexp.MustCompile(`^f.`)
	lemmaSTNotH     = regexp.MustCompile(`^[st][^h]`)
	lemmaJ          = regexp.MustCompile(`^j.`)
	lenAbbyr        = regexp.MustCompile(`^yi?ar`)
	lenFaik         = regexp.MustCompile(`^(hee|honnick)`)
	lenFow          = regexp.MustCompile(`^(hooar|yio)`)
	lenGow          = regexp.MustCompile(`^h[ie]`)
	eclCur          = regexp.MustCompile(`^(ver|dug)`)
	prefixTSh       = regexp.MustCompile(`^[cç]h`)
	prefixHForm     = regexp.MustCompile(`^h-?[aeiou]`)
	vowelLemma      = regexp.MustCompile(`^[aeiou]`)
	nonSEmphaticEnd = regexp.MustCompile(`[^y]s$`)

	// mutated initials are ambiguous in Manx (v- is a lenited
	// b- or m-), only the unambiguous cases are reverted
	demutator = goidelic.Demutator{
		goidelic.Rewrite(`h-?([aeiou])`, "$1"),
		goidelic.Rewrite(`gh`, "d"),
		goidelic.Rewrite(`wh`, "qu"),
		goidelic.Rewrite(`yi`, "gi"),
		goidelic.Rewrite(`'l`, "sl"),
		goidelic.Rewrite(`'(.)`, "f$1"),
		goidelic.Rewrite(`hr`, "str"),
	}
)

// runes returns the first n runes of s (all of s if shorter)
func runes(s string, n int) string {
	r := []rune(s)
	if len(r) < n {
		return s
	}
	return string(r[:n])
}

// runesFrom returns runes of s in [i, j)
func runesFrom(s string, i, j int) string {
	r := []rune(s)
	if i >= len(r) {
		return ""
	}
	if j > len(r) {
		j = len(r)
	}
	return string(r[i:j])
}

type Phonology struct{}

// IsLenited follows Practical Manx, p. 19.
func (p Phonology) IsLenited(tok *ud.Token) bool {
	form := tok.LowerForm()
	lem := strings.ToLower(tok.Lemma())
	if form == "" || lem == "" {
		return false
	}
	l1 := runes(lem, 1)
	second := runesFrom(lem, 1, 2)
	return (lemmaBMNotW.MatchString(lem) && runes(form, 1) == "v" && form != "vel") ||
		(lemmaShiftTwo.MatchString(lem) && runes(form, 2) == runesFrom(lem, 1, 3)) ||
		(lemmaBM.MatchString(lem) && runes(form, 2) == "w"+second) ||
		(lemmaCKNotH.MatchString(lem) && runes(form, 2) == "ch") ||
		(lemmaF.MatchString(lem) && runes(form, 2) == "'"+second) ||
		((l1 == "g" || l1 == "p") && runes(form, 2) == l1+"h") ||
		(runes(lem, 2) == "gi" && runes(form, 2) == "yi") ||
		(runes(lem, 2) == "qu" && runes(form, 2) == "wh") ||
		(lemmaSTNotH.MatchString(lem) && runes(form, 2) == "h"+second) ||
		(runes(lem, 3) == "shl" && runes(form, 1) == "l") ||
		(runes(lem, 2) == "sl" && runes(form, 2) == "'l") ||
		(runes(lem, 3) == "str" && runes(form, 2) == "hr") ||
		(l1 == "d" && runes(form, 2) == "gh") ||
		(l1 == "d" && runes(form, 3) == "w"+runesFrom(lem, 1, 3)) ||
		(lemmaJ.MatchString(lem) && runes(form, 2) == "y"+second) ||
		(lem == "abbyr" && lenAbbyr.MatchString(form)) ||
		(lem == "cur" && runes(form, 3) == "hug") ||
		(lem == "faik" && lenFaik.MatchString(form)) ||
		(lem == "fow" && lenFow.MatchString(form)) ||
		(lem == "gow" && lenGow.MatchString(form)) ||
		(lem == "jean" && runes(form, 3) == "yin") ||
		(lem == "tar" && runes(form, 3) == "hig") ||
		(lem == "olk" && runes(form, 3) == "ves") ||
		form == "houney"
}

func (p Phonology) IsEclipsed(tok *ud.Token) bool {
	form := tok.LowerForm()
	lem := strings.ToLower(tok.Lemma())
	if form == "" || lem == "" {
		return false
	}
	l1 := runes(lem, 1)
	f1 := runes(form, 1)
	return (l1 == "b" && f1 == "m" && runes(lem, 3) != "ben") ||
		(lem == "bee" && form == "vel") ||
		((l1 == "c" || l1 == "k") && f1 == "g") ||
		(runes(lem, 2) == "çh" && f1 == "j") ||
		(strings.Contains("dgj", l1) && f1 == "n" && lem != "jean") ||
		(l1 == "f" && (f1 == "n" || f1 == "v")) ||
		(l1 == "p" && f1 == "b") ||
		(l1 == "t" && f1 == "d") ||
		(lem == "abbyr" && f1 == "n") ||
		(lem == "cur" && eclCur.MatchString(form)) ||
		(lem == "fow" && form == "dooar") ||
		(lem == "gow" && runes(form, 2) == "je") ||
		(lem == "tar" && runes(form, 3) == "jig")
}

func (p Phonology) HasPrefixT(tok *ud.Token) bool {
	form := tok.LowerForm()
	lem := strings.ToLower(tok.Lemma())
	return (runes(lem, 1) == "s" && runes(form, 1) == "t") ||
		(runes(lem, 2) == "sh" && prefixTSh.MatchString(form)) ||
		(runes(lem, 2) == "sl" && runes(form, 2) == "cl")
}

func (p Phonology) HasPrefixH(tok *ud.Token) bool {
	return prefixHForm.MatchString(tok.LowerForm()) &&
		vowelLemma.MatchString(strings.ToLower(tok.Lemma()))
}

func (p Phonology) Demutate(form string) string {
	return demutator.Apply(form)
}

func (p Phonology) Lower(form string) string {
	return strings.ToLower(form)
}

// Autoset keeps Form in sync with the surface mutations
func (p Phonology) Autoset(tok *ud.Token) {
	goidelic.SetMarker(tok, "Form", "Len", p.IsLenited(tok))
	goidelic.SetMarker(tok, "Form", "Ecl", p.IsEclipsed(tok))
	goidelic.SetMarker(tok, "Form", "HPref", p.HasPrefixH(tok))
}
