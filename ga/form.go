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

package ga

import (
	"fmt"
	"regexp"

	"gaelcheck/goidelic"
	"gaelcheck/rules"
	"gaelcheck/ud"
)

// The Form feature multiplexes lenition, eclipsis, prefix h,
// emphatic endings, vowel forms of the copula and the
// direct/indirect relative particles.

var (
	emphaticEnding = regexp.MustCompile(`([sn][ea]|se?an)$`)
	vowelFormCop   = regexp.MustCompile(`b[’'h]?$`)

	fixedEclipsedAfterI = []string{
		"bhfeighil", "dteannta", "dtrátha", "dtús", "gceann", "gcionn",
		"gcoinne", "gcóir", "gcoitinne", "mbun", "ndiaidh"}
)

func lenitionFacet(rule rules.Rule) rules.Facet {
	return rules.Facet{Name: "lenition", Domain: []string{"Len"}, Rule: rule}
}

func eclipsisFacet(rule rules.Rule) rules.Facet {
	return rules.Facet{Name: "eclipsis", Domain: []string{"Ecl"}, Rule: rule}
}

func prefixHFacet(rule rules.Rule) rules.Facet {
	return rules.Facet{Name: "prefix h", Domain: []string{"HPref"}, Rule: rule}
}

func emphasisFacet(rule rules.Rule) rules.Facet {
	return rules.Facet{Name: "emphasis", Domain: []string{"Emp"}, Rule: rule}
}

func vowelFormFacet(rule rules.Rule) rules.Facet {
	return rules.Facet{Name: "vowel form", Domain: []string{"VF"}, Rule: rule}
}

func relativeFacet(rule rules.Rule) rules.Facet {
	return rules.Facet{Name: "relative", Domain: []string{"Direct", "Indirect"}, Rule: rule}
}

// unpredicted accepts anything for a facet the grammar
// does not model for a POS
func unpredicted(phenomenon string) rules.Rule {
	return func(tok *ud.Token) []rules.Constraint {
		return one(rules.Unexplained(fmt.Sprintf("%s is not predicted for POS %s", phenomenon, tok.UPOS())))
	}
}

// firstOf returns the first non-empty prediction, then
// the fallback
func firstOf(fallback []rules.Constraint, preds ...[]rules.Constraint) []rules.Constraint {
	for _, p := range preds {
		if len(p) > 0 {
			return p
		}
	}
	return fallback
}

// ------------------ eclipsis

// nounEclipsis is called also for NUMs that precede the
// noun they modify
func (g *grammar) nounEclipsis(tok *ud.Token) []rules.Constraint {
	if !isEclipsable(tok) {
		return nil
	}
	noun := tok
	if tok.UPOS() == "NUM" {
		noun = tok.Head()
	}
	pr := tok.Predecessor()
	prForm := pr.LowerForm()
	if tok.LowerForm() == "dhá" { // bhur dhá mbád
		return nil
	}
	if ans := g.shared.PossessiveEclipsis(tok); len(ans) > 0 {
		return ans
	}
	if prForm == "dhá" && goidelic.IsPluralPossessive(pr.Predecessor()) {
		return one(rules.New("Ecl", "Should be eclipsed by possessive + dhá"))
	}
	if pr.Deprel() == "case" && prForm == "i" {
		return one(rules.New("Ecl", "Should be eclipsed by preceding “i”"))
	}
	// a genitive plural noun can be Number=Sing ("seolta na dtrí bhád")
	if prForm == "na" && noun.Has("Case", "Gen") && pr.Has("Number", "Plur") {
		return one(rules.New("Ecl", "Should be eclipsed by preceding “na” in genitive plural"))
	}
	if prForm == "ar" && pr.UPOS() == "ADP" {
		switch {
		case tok.Lemma() == "diaidh": // i ndiaidh ar ndiaidh
			return one(rules.New("Ecl", "Should be eclipsed in set phrase"))
		case tok.Lemma() == "dóigh": // ar dhóigh, ar ndóigh, ar dóigh
			return one(rules.Optional("Ecl", "Optionally eclipsed in set phrase"))
		case goidelic.LemmaIn(tok, "cúl", "tús"):
			return []rules.Constraint{
				rules.New("Ecl", "Can be eclipsed in set phrase"),
				rules.New("None", "Can be eclipsed in set phrase"),
			}
		}
	}
	if prForm == "dar" && tok.Lemma() == "dóigh" {
		return one(rules.New("Ecl", "Should be eclipsed in set phrase"))
	}
	if prForm == "fá" && pr.UPOS() == "ADP" && tok.Lemma() == "taobh" {
		return one(rules.New("Ecl|None", "Can be eclipsed in set phrase"))
	}
	if (prForm == "cá" || prForm == "go") && tok.Lemma() == "fios" {
		return one(rules.New("Ecl", "Should be eclipsed in set phrase"))
	}
	if pr.Deprel() == "nummod" && isSevenThruTen(pr) {
		return one(rules.New("Ecl", "Should be eclipsed by number 7-10"))
	}
	if pr.Has("PronType", "Art") && pr.Has("Number", "Sing") &&
		!hasInitialDental(tok) && !hasInitialVowel(tok) &&
		noun.IsInPP() && noun.Has("Case", "NomAcc") {
		// lenited alternative is checked by the lenition facet
		return one(rules.New("Ecl|None", "Should be eclipsed or lenited by the preceding definite article"))
	}
	return nil
}

func (g *grammar) verbEclipsis(tok *ud.Token) []rules.Constraint {
	if !isEclipsable(tok) {
		return nil
	}
	pr := tok.Predecessor()
	prForm := pr.LowerForm()
	if (pr.Has("PartType", "Vb") && goidelic.FormIn(pr, "an", "go", "nach")) ||
		(pr.Has("PartType", "Cmpl") && goidelic.FormIn(pr, "go", "nach")) ||
		isEclipsingRelativizer(pr) ||
		(isPastFaigh(tok) && prForm == "ní") ||
		(pr.UPOS() == "ADV" && prForm == "cá") ||
		(pr.UPOS() == "SCONJ" && goidelic.FormIn(pr, "dá", "go", "mara", "muna", "mura", "sula")) {
		return one(rules.New("Ecl", "Should be eclipsed by preceding verbal particle"))
	}
	return nil
}

const (
	msgNoEclipsis  = "Should not be eclipsed in this context"
	msgNoLenition  = "Should not be lenited in this context"
	msgNoPrefixH   = "Should not have prefix h in this context"
	msgNoEmphasis  = "Does not look like an emphatic form"
	msgNoVowelForm = "Only copula forms before a vowel or f have Form=VF"
)

func (g *grammar) eclipsisNOUN(tok *ud.Token) []rules.Constraint {
	return firstOf(absent(msgNoEclipsis), g.nounEclipsis(tok))
}

func (g *grammar) eclipsisVERB(tok *ud.Token) []rules.Constraint {
	return firstOf(absent(msgNoEclipsis), g.verbEclipsis(tok))
}

func (g *grammar) eclipsisNUM(tok *ud.Token) []rules.Constraint {
	if predForm(tok) == "faoin" && tok.Lemma() == "céad" {
		return one(rules.New("Ecl", "Should be eclipsed in set phrase"))
	}
	if tok.HeadIndex() == tok.Index()+1 {
		return firstOf(absent(msgNoEclipsis), g.nounEclipsis(tok))
	}
	return absent(msgNoEclipsis)
}

func eclipsisADP(tok *ud.Token) []rules.Constraint {
	prForm := predForm(tok)
	form := tok.LowerForm()
	if tok.Deprel() == "fixed" &&
		((prForm == "go" && form == "dtí") ||
			(prForm == "i" && goidelic.FormIn(tok, fixedEclipsedAfterI...))) {
		return one(rules.New("Ecl", "Should be eclipsed in set phrase"))
	}
	return absent(msgNoEclipsis)
}

// eclipsisAUX: go mba, dá mba, etc.
func eclipsisAUX(tok *ud.Token) []rules.Constraint {
	if isEclipsable(tok) && goidelic.PrecededByLemma(tok, "dá", "go") {
		return one(rules.New("Ecl", "Should be eclipsed by preceding particle"))
	}
	return absent(msgNoEclipsis)
}

// eclipsisDET: i ngach
func eclipsisDET(tok *ud.Token) []rules.Constraint {
	if predForm(tok) == "i" && tok.Lemma() == "gach" {
		return one(rules.New("Ecl", "Should be eclipsed by preceding “i”"))
	}
	return absent(msgNoEclipsis)
}

// ------------------ lenition

func adjectiveLenition(tok *ud.Token) []rules.Constraint {
	if !isLenitable(tok) {
		return absent("This adjective cannot be lenited")
	}
	pr := tok.Predecessor()
	if pr.UPOS() == "AUX" && (pr.Has("Tense", "Past") || pr.Has("Mood", "Cnd")) {
		return one(rules.New("Len", "Adjective is lenited after past or conditional copula"))
	}
	if tok.Deprel() == "amod" {
		h := tok.Head()
		if h.Has("Number", "Sing") {
			if h.Has("Case", "Gen") && h.Has("Gender", "Masc") {
				return one(rules.New("Len", "Adjective is lenited after genitive singular masculine noun"))
			}
			if h.Has("Case", "NomAcc") && h.Has("Gender", "Fem") {
				return one(rules.New("Len", "Adjective is lenited after nominative singular feminine noun"))
			}
			if h.Has("Case", "Voc") {
				return one(rules.New("Len", "Adjective is lenited after a vocative singular noun"))
			}

		} else if h.Has("Number", "Plur") && h.Has("Case", "NomAcc") &&
			hasSlenderFinalConsonant(h) && h.Lemma() != "caora" {
			return one(rules.New("Len", "Adjective is lenited after a nominative plural noun ending in a slender consonant"))
		}
	}
	return absent(msgNoLenition)
}

// nounLenition is permissive except for prepositions "ar"
// and "thar" which lenite unless the noun belongs to a closed list
func nounLenition(tok *ud.Token) []rules.Constraint {
	pr := tok.Predecessor()
	if isLenitable(tok) && pr.UPOS() == "ADP" && pr.Deprel() == "case" &&
		pr.HeadIndex() == tok.Index() && !anyDependentDefiniteArticle(tok) {
		switch pr.LowerForm() {
		case "ar":
			if unlenitedAfterAr.Contains(demutatedLower(tok)) {
				return one(rules.New("Len|None", "Can stay unlenited after “ar” in this phrase"))
			}
			return one(rules.New("Len", "Should be lenited after preposition “ar”"))
		case "thar":
			if unlenitedAfterThar.Contains(demutatedLower(tok)) {
				return one(rules.New("Len|None", "Can stay unlenited after “thar” in this phrase"))
			}
			return one(rules.New("Len", "Should be lenited after preposition “thar”"))
		}
	}
	return one(rules.Optional("Len", "Nouns are checked for lenition only after “ar” and “thar”"))
}

func verbLenition(tok *ud.Token) []rules.Constraint {
	if !isLenitable(tok) {
		return absent("This verb cannot be lenited")
	}
	if isLenitedPastVerbContext(tok) {
		return one(rules.New("Len", "This past tense verb must be lenited"))
	}
	if tok.Has("Aspect", "Imp") && tok.Has("Tense", "Past") && tok.Lemma() != "abair" {
		return one(rules.New("Len", "Imperfect verb must be lenited"))
	}
	if tok.Has("Mood", "Cnd") && tok.Lemma() != "abair" {
		return one(rules.New("Len", "Conditional verb must be lenited"))
	}
	// the leniting particles ní, má, ... are not modeled yet
	return one(rules.Optional("Len", "Verb may be lenited after a verbal particle"))
}

// lenitionADV: just in one set phrase
func lenitionADV(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "bheith" && tok.Deprel() == "fixed" && tok.Head().Lemma() == "thar" {
		return one(rules.New("Len", "Need Form=Len on “bheith” in this set phrase"))
	}
	return one(rules.Unexplained("Lenition of adverbs is not predicted"))
}

// ------------------ prefix h

func (g *grammar) withPrefixHGuard(rule rules.Rule) rules.Rule {
	return func(tok *ud.Token) []rules.Constraint {
		if !admitsPrefixH(tok) {
			return absent("Only vowel-initial words can have prefix h")
		}
		return rule(tok)
	}
}

func adjectivePrefixH(tok *ud.Token) []rules.Constraint {
	if goidelic.PrecededByForm(tok, "chomh", "go") {
		return one(rules.New("HPref", "Adjective should have a prefix h"))
	}
	return absent(msgNoPrefixH)
}

// nounPrefixH: a (her), a dhá, á (her), cá, go, le, na (gsf),
// na (common pl), Ó patronym, ordinals except chéad
func nounPrefixH(tok *ud.Token) []rules.Constraint {
	pr := tok.Predecessor()
	prForm := pr.LowerForm()
	switch {
	case prForm == "ó" && pr.Has("PartType", "Pat"):
		return one(rules.New("HPref", "Surnames should have prefix h after “Ó”"))
	case pr.Lemma() == "Dé":
		return one(rules.New("HPref", "Should have prefix h after “Dé”"))
	case prForm == "cá" || prForm == "go" || prForm == "le":
		return one(rules.New("HPref", "Should have prefix h"))
	case pr.Has("Poss", "Yes") && pr.Has("Gender", "Fem"):
		return one(rules.New("HPref", "Should have prefix h following feminine possessive"))
	case prForm == "dhá" && pr.Predecessor().Has("Poss", "Yes") && pr.Predecessor().Has("Gender", "Fem"):
		return one(rules.New("HPref", "Should have prefix h after feminine possessive + dhá"))
	case pr.Has("NumType", "Ord") && pr.Lemma() != "céad":
		return one(rules.New("HPref", "Should have prefix h following an ordinal"))
	case prForm == "na" && tok.Has("Gender", "Fem") && tok.Has("Case", "Gen") && tok.Has("Number", "Sing"):
		return one(rules.New("HPref", "Should have prefix h following “na” in genitive feminine singular"))
	case (prForm == "na" || prForm == "sna") && tok.Has("Case", "NomAcc") && tok.Has("Number", "Plur"):
		return one(rules.New("HPref", "Should have prefix h following “na”"))
	case prForm == "de" && tok.Lemma() == "Íde":
		return one(rules.New("HPref", "Should have prefix h in “de hÍde”"))
	}
	return absent(msgNoPrefixH)
}

func verbPrefixH(tok *ud.Token) []rules.Constraint {
	pr := tok.Predecessor()
	if pr.LowerForm() == "ná" && pr.Has("Mood", "Imp") {
		return one(rules.New("HPref", "Should have prefix h after “ná”"))
	}
	return absent(msgNoPrefixH)
}

func otherPrefixH(tok *ud.Token) []rules.Constraint {
	pr := tok.Predecessor()
	prForm := pr.LowerForm()
	if tok.UPOS() == "PRON" && goidelic.FormIn(pr, "cé", "le", "ní", "pé") {
		return one(rules.New("HPref", "Should have prefix h"))
	}
	if tok.UPOS() == "NUM" && prForm == "a" && pr.Has("PartType", "Num") {
		return one(rules.New("HPref", "Number should have a prefix h"))
	}
	if tok.Deprel() == "fixed" && prForm == "le" && tok.LowerForm() == "hais" {
		return one(rules.New("HPref", "Should have prefix h in set phrase"))
	}
	return absent(msgNoPrefixH)
}

// ------------------ Emp, VF, Direct/Indirect

// emphasis is only a possibility; the lexicon decides
func emphasis(tok *ud.Token) []rules.Constraint {
	if emphaticEnding.MatchString(tok.LowerForm()) {
		return one(rules.Optional("Emp", "Could possibly be an emphatic ending but not certain"))
	}
	return absent(msgNoEmphasis)
}

func vowelForm(tok *ud.Token) []rules.Constraint {
	if vowelFormCop.MatchString(tok.LowerForm()) {
		return one(rules.New("VF", "Copula before vowel or f must have Form=VF"))
	}
	return absent(msgNoVowelForm)
}

func relativePART(tok *ud.Token) []rules.Constraint {
	if tok.Has("PronType", "Rel") {
		return one(rules.New("Direct|Indirect", "Relative particles must have Form feature"))
	}
	return absent("Only relative particles are marked Direct or Indirect")
}

func relativeVERB(tok *ud.Token) []rules.Constraint {
	if tok.Has("PronType", "Rel") && ataForm.MatchString(tok.LowerForm()) {
		return one(rules.New("Direct", "Anything resembling atá should be have direct relative feature Form=Direct"))
	}
	return absent("Only relative forms of “bí” are marked Direct")
}

// registerForm adds faceted Form entries for all POS tags
func (g *grammar) registerForm(tbl *rules.Table) {
	tbl.RegisterPacked("Form", "ADJ",
		lenitionFacet(adjectiveLenition),
		eclipsisFacet(func(tok *ud.Token) []rules.Constraint { return absent("Adjectives are not eclipsed") }),
		prefixHFacet(g.withPrefixHGuard(adjectivePrefixH)),
	)
	tbl.RegisterPacked("Form", "ADP",
		lenitionFacet(unpredicted("Lenition")),
		eclipsisFacet(eclipsisADP),
		prefixHFacet(otherPrefixH),
	)
	tbl.RegisterPacked("Form", "ADV",
		lenitionFacet(lenitionADV),
		eclipsisFacet(unpredicted("Eclipsis")),
		prefixHFacet(unpredicted("Prefix h")),
	)
	tbl.RegisterPacked("Form", "AUX",
		vowelFormFacet(vowelForm),
		eclipsisFacet(eclipsisAUX),
		lenitionFacet(unpredicted("Lenition")),
	)
	tbl.RegisterPacked("Form", "DET",
		eclipsisFacet(eclipsisDET),
		lenitionFacet(unpredicted("Lenition")),
		prefixHFacet(unpredicted("Prefix h")),
	)
	tbl.RegisterPacked("Form", "NOUN",
		lenitionFacet(nounLenition),
		eclipsisFacet(g.eclipsisNOUN),
		prefixHFacet(g.withPrefixHGuard(nounPrefixH)),
		emphasisFacet(emphasis),
	)
	tbl.RegisterPacked("Form", "PROPN",
		lenitionFacet(nounLenition),
		eclipsisFacet(g.eclipsisNOUN),
		prefixHFacet(g.withPrefixHGuard(nounPrefixH)),
	)
	tbl.RegisterPacked("Form", "NUM",
		lenitionFacet(unpredicted("Lenition")),
		eclipsisFacet(g.eclipsisNUM),
		prefixHFacet(otherPrefixH),
	)
	tbl.RegisterPacked("Form", "PART",
		vowelFormFacet(vowelForm),
		relativeFacet(relativePART),
		lenitionFacet(unpredicted("Lenition")),
		eclipsisFacet(unpredicted("Eclipsis")),
	)
	tbl.RegisterPacked("Form", "PRON",
		vowelFormFacet(vowelForm),
		lenitionFacet(unpredicted("Lenition")),
		prefixHFacet(otherPrefixH),
	)
	tbl.RegisterPacked("Form", "SCONJ",
		vowelFormFacet(vowelForm),
		lenitionFacet(unpredicted("Lenition")),
	)
	tbl.RegisterPacked("Form", "VERB",
		emphasisFacet(emphasis),
		relativeFacet(relativeVERB),
		eclipsisFacet(g.eclipsisVERB),
		lenitionFacet(verbLenition),
		prefixHFacet(g.withPrefixHGuard(verbPrefixH)),
	)
	for _, pos := range []string{"CCONJ", "INTJ", "X"} {
		tbl.RegisterPacked("Form", pos,
			lenitionFacet(unpredicted("Lenition")),
			eclipsisFacet(unpredicted("Eclipsis")),
			prefixHFacet(unpredicted("Prefix h")),
		)
	}
}
