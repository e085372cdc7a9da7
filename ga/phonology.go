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

// Package ga implements the Irish grammar.
package ga

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"gaelcheck/goidelic"
	"gaelcheck/ud"
)

var (
	lenitableLemma = regexp.MustCompile(`(?i)^([bcdfgmpt]|s[lnraeiouáéíóú])`)
	lenitedForm    = regexp.MustCompile(`(?i)^([bcdfgmpt]h[^f]|sh[lnraeiouáéíóú])`)
	lenitedLemma   = regexp.MustCompile(`(?i)^(.[^h]|bheith)`)
	eclipsableForm = regexp.MustCompile(`(?i)^[aeiouáéíóúbcdfgpt]`)

	// permits mBriathar, MBRIATHAR, but not Mbriathar
	eclipsedForm = regexp.MustCompile(
		`^(n-?[AEIOUÁÉÍÓÚ]|n-[aeiouáéíóú]|m[Bb]|MB|g[Cc]|GC|n[DdGg]|N[DG]|bh[Ff]|BHF|b[Pp]|BP|d[Tt]|DT)`)

	initialDental  = regexp.MustCompile(`^[dntlsDNTLS]`)
	initialVowel   = regexp.MustCompile(`^[aeiouáéíóúAEIOUÁÉÍÓÚ]`)
	lenitableS     = regexp.MustCompile(`(?i)^s[lnraeiouáéíóú]`)
	slenderFinal   = regexp.MustCompile(`([^a]e|[éií])[^aeiouáéíóú]+$`)
	broadFinal     = regexp.MustCompile(`([aáoóuú]|ae)[^aeiouáéíóú]+$`)
	prefixTForm    = regexp.MustCompile(`^t(-[aeiouáéíóú]|[AEIOUÁÉÍÓÚsS])`)
	prefixHForm    = regexp.MustCompile(`^h-?[aeiouáéíóúAEIOUÁÉÍÓÚ]`)
	capitalVowels  = "AEIOUÁÉÍÓÚ"
	sevenThruTen   = []string{"seacht", "7", "ocht", "8", "naoi", "9", "deich", "10"}
	twoThru19Words = []string{"dó", "trí", "ceathair", "cúig", "sé", "seacht", "ocht", "naoi", "deich"}
	numericLemma   = regexp.MustCompile(`^[1-9][0-9]*$`)

	demutator = goidelic.Demutator{
		goidelic.Rewrite(`[nthNTH]-(.)`, "$1"),
		goidelic.Rewrite(`[nth]([AEIOUÁÉÍÓÚ])`, "$1"),
		goidelic.Rewrite(`bh([Ff])`, "$1"),
		goidelic.Rewrite(`BH(F)`, "$1"),
		goidelic.Rewrite(`m([Bb])`, "$1"),
		goidelic.Rewrite(`g([Cc])`, "$1"),
		goidelic.Rewrite(`n([DdGg])`, "$1"),
		goidelic.Rewrite(`b([Pp])`, "$1"),
		goidelic.Rewrite(`d([Tt])`, "$1"),
		goidelic.Rewrite(`t([sS])`, "$1"),
		goidelic.Rewrite(`([bcdfgmpstBCDFGMPST])[hH]`, "$1"),
	}
)

// Phonology implements the Irish mutation primitives
type Phonology struct{}

// IsLenited works also on Foreign=Yes tokens because
// of Scottish Gaelic words.
func (p Phonology) IsLenited(tok *ud.Token) bool {
	return lenitedForm.MatchString(tok.Form()) && lenitedLemma.MatchString(tok.Lemma())
}

// IsEclipsed is allowed on Foreign=Yes ("ón bpier") and
// Abbr=Yes ("gCo.") tokens too.
func (p Phonology) IsEclipsed(tok *ud.Token) bool {
	return eclipsedForm.MatchString(tok.Form())
}

func (p Phonology) HasPrefixH(tok *ud.Token) bool {
	return prefixHForm.MatchString(tok.Form()) && admitsPrefixH(tok)
}

func (p Phonology) HasPrefixT(tok *ud.Token) bool {
	return prefixTForm.MatchString(tok.Form())
}

func (p Phonology) Demutate(form string) string {
	return demutator.Apply(form)
}

// Lower handles prefixes attached to a capital vowel
// (tAcht -> t-acht, nÁras -> n-áras).
func (p Phonology) Lower(form string) string {
	first, size := utf8.DecodeRuneInString(form)
	if size < len(form) && (first == 't' || first == 'n') {
		second, _ := utf8.DecodeRuneInString(form[size:])
		if strings.ContainsRune(capitalVowels, second) {
			return string(first) + "-" + strings.ToLower(form[size:])
		}
	}
	return strings.ToLower(form)
}

// Autoset marks mutations visible on the surface form. These are
// not constraints so a word mutated for no reason gets flagged.
func (p Phonology) Autoset(tok *ud.Token) {
	goidelic.SetMarker(tok, "Form", "Len", p.IsLenited(tok))
	goidelic.SetMarker(tok, "Form", "Ecl", p.IsEclipsed(tok))
	goidelic.SetMarker(tok, "Form", "HPref", p.HasPrefixH(tok))
	if p.HasPrefixT(tok) {
		tok.AddFeature("XForm", "TPref")
	}
}

// ------------------ primitives used by rules

func isLenitable(tok *ud.Token) bool {
	first, _ := utf8.DecodeRuneInString(tok.Form())
	return lenitableLemma.MatchString(tok.Lemma()) && unicode.ToLower(first) != 'r'
}

func isEclipsable(tok *ud.Token) bool {
	return eclipsedForm.MatchString(tok.Form()) || eclipsableForm.MatchString(tok.Form())
}

func hasInitialDental(tok *ud.Token) bool {
	return initialDental.MatchString(tok.Lemma())
}

// hasInitialVowel looks at the lemma and at the demutated
// surface form (déarfainn vs. abair)
func hasInitialVowel(tok *ud.Token) bool {
	return initialVowel.MatchString(tok.Lemma()) ||
		initialVowel.MatchString(demutator.Apply(tok.Form()))
}

func hasLenitableS(tok *ud.Token) bool {
	return lenitableS.MatchString(tok.Lemma())
}

// hasSlenderFinalConsonant requires a final consonant
func hasSlenderFinalConsonant(tok *ud.Token) bool {
	return slenderFinal.MatchString(tok.LowerForm())
}

// hasBroadFinalConsonant requires a final consonant
func hasBroadFinalConsonant(tok *ud.Token) bool {
	return broadFinal.MatchString(tok.LowerForm())
}

func admitsPrefixT(tok *ud.Token) bool {
	return hasInitialVowel(tok) || hasLenitableS(tok)
}

func admitsPrefixH(tok *ud.Token) bool {
	return initialVowel.MatchString(tok.Lemma())
}

func isSevenThruTen(tok *ud.Token) bool {
	return goidelic.LemmaIn(tok, sevenThruTen...)
}

// is2Thru19 does not check the presence of "déag"
func is2Thru19(tok *ud.Token) bool {
	if tok.UPOS() != "NUM" {
		return false
	}
	if numericLemma.MatchString(tok.Lemma()) {
		var val int
		for _, c := range tok.Lemma() {
			val = val*10 + int(c-'0')
			if val > 19 {
				return false
			}
		}
		return val >= 2
	}
	return goidelic.LemmaIn(tok, twoThru19Words...)
}

// demutatedLower is the lowercased unmutated surface form
func demutatedLower(tok *ud.Token) string {
	return strings.ToLower(demutator.Apply(tok.Form()))
}
