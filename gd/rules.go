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

package gd

import (
	"gaelcheck/goidelic"
	"gaelcheck/rules"
	"gaelcheck/ud"
)

var (
	one    = rules.One
	absent = func(msg string) []rules.Constraint { return one(rules.Absent(msg)) }

	emphaticPronouns = []string{
		"àsan", "esan", "iadsan", "ise", "mis'", "mise", "sibhse", "sinne",
		"thus'", "thusa", "tusa"}

	// fixed adjectival phrases: sam bith, mu dheireadh, thall
	nonAgreeingAdjectives = []string{
		"a-muigh", "a-staigh", "fa-leth", "mu", "muigh", "sam", "tall"}

	pronounGender = map[string]string{"e": "Masc", "è": "Masc", "i": "Fem", "ì": "Fem"}
	pronounNumber = map[string]string{
		"àsan": "Plur", "e": "Sing", "è": "Sing", "i": "Sing", "ì": "Sing",
		"iad": "Plur", "mi": "Sing", "mis'": "Sing", "sib'": "Plur", "sibh": "Plur",
		"sinn": "Plur", "thu": "Sing",
	}
	possessiveNumber = map[string]string{
		"an": "Plur", "ar": "Plur", "ur": "Plur", "do": "Sing", "mo": "Sing", "a": "Sing",
	}
)

var isAttributiveAdjective = goidelic.WithExceptions(func(tok *ud.Token) bool {
	return goidelic.LemmaIn(tok, nonAgreeingAdjectives...)
})

// ------------------ Case

// caseDET could be based on the head noun being Case=Gen as in Irish
func caseDET(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "an" {
		return one(rules.New("Gen|None", "Some articles are annotated Case=Gen"))
	}
	return absent("Only articles have the Case feature")
}

func caseNOUN(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Nom|Gen|Dat|Voc|None", "Nouns may have any of the cases"))
}

// ------------------ Degree

func degreeADJ(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Cmp|Sup|None", "Adjectives are sometimes Degree=Cmp,Sup"))
}

// ------------------ Form

func formPRON(tok *ud.Token) []rules.Constraint {
	if goidelic.FormIn(tok, emphaticPronouns...) {
		return one(rules.New("Emp", "Emphatic pronouns require Form=Emp"))
	}
	return absent("Only emphatic pronouns have the Form feature")
}

// ------------------ Gender

func genderDET(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "an" && !tok.Has("Poss", "Yes") {
		return one(rules.New("Fem|Masc|None", "Some articles have Gender feature"))
	}
	if tok.Lemma() == "a" && tok.Has("Poss", "Yes") && tok.Has("Person", "3") {
		return one(rules.New("Fem|Masc", "3rd person possessive requires Gender feature"))
	}
	return absent("Only articles and 3rd person possessives have Gender")
}

func genderNOUN(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Fem|Masc|None", "Nouns are masculine or feminine"))
}

func genderPRON(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "a" && tok.Has("Poss", "Yes") {
		return one(rules.New("Fem|Masc", "3rd person possessive requires Gender feature"))
	}
	if g, ok := pronounGender[tok.Lemma()]; ok {
		return one(rules.New(g, "Personal pronouns require correct Gender feature"))
	}
	return absent("Only 3rd person singular pronouns have Gender")
}

// ------------------ Mood

func moodAUX(tok *ud.Token) []rules.Constraint {
	switch tok.LowerForm() {
	case "an":
		return one(rules.New("Int", "Copula “an” requires feature Mood=Int"))
	case "nach":
		return one(rules.New("Int|None", "Copula “nach” sometimes has Mood=Int"))
	}
	return absent("Only interrogative copulas have Mood")
}

func moodVERB(tok *ud.Token) []rules.Constraint {
	if !tok.HasFeature("Tense") && !tok.Has("Foreign", "Yes") {
		return one(rules.New("Cnd|Imp", "Non-foreign verbs without Tense require Mood feature"))
	}
	return absent("Tensed verbs have no Mood feature")
}

// ------------------ Number

// numberADJ does not generalize to all the Goidelic languages
// because of Irish examples like "dhá fhear mhóra"
func numberADJ(tok *ud.Token) []rules.Constraint {
	if isAttributiveAdjective(tok) {
		if v := tok.UltimateHead().FirstValue("Number"); v != "" {
			return one(rules.New(v, "Adjective number should match noun it modifies"))
		}
	}
	return absent("Only attributive adjectives of a noun with Number have the Number feature")
}

func possessiveNumberOf(tok *ud.Token) []rules.Constraint {
	if n, ok := possessiveNumber[tok.Lemma()]; ok {
		return one(rules.New(n, "Possessives require correct Number feature"))
	}
	return nil
}

func numberDET(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "an" && !tok.Has("Poss", "Yes") {
		return one(rules.New("Sing|Plur|Dual", "Articles must have Number feature"))
	}
	if tok.Has("Poss", "Yes") {
		if ans := possessiveNumberOf(tok); ans != nil {
			return ans
		}
	}
	return absent("Only articles and possessives have Number")
}

func numberNOUN(tok *ud.Token) []rules.Constraint {
	if !tok.HasFeature("Foreign") && !tok.HasFeature("VerbForm") {
		return one(rules.New("Sing|Plur|None", "Most nouns except verbal nouns have a Number feature"))
	}
	return one(rules.Unexplained("Number of foreign words and verbal nouns is not predicted"))
}

func numberPRON(tok *ud.Token) []rules.Constraint {
	if tok.Has("Poss", "Yes") {
		if ans := possessiveNumberOf(tok); ans != nil {
			return ans
		}

	} else if n, ok := pronounNumber[tok.Lemma()]; ok {
		return one(rules.New(n, "Pronouns require correct Number feature"))
	}
	return absent("Only personal pronouns and possessives have Number")
}

// ------------------ Polarity

func polarityAUX(tok *ud.Token) []rules.Constraint {
	if goidelic.FormIn(tok, "an", "gun", "gur") {
		return one(rules.New("Aff", "This copula should have Polarity=Aff"))
	}
	if goidelic.FormIn(tok, "cha", "chan", "nach") {
		return one(rules.New("Neg", "This copula should have Polarity=Neg"))
	}
	return absent("Only interrogative and negative copulas have Polarity")
}

func polarityPART(tok *ud.Token) []rules.Constraint {
	if goidelic.FormIn(tok, "cha", "chan", "na", "nach") {
		return one(rules.New("Neg", "This particle should have Polarity=Neg"))
	}
	return absent("Only negative particles have Polarity")
}

// ------------------ Poss

// possDET: "an" is distinguished from the article only
// by its relation
func possDET(tok *ud.Token) []rules.Constraint {
	switch tok.Lemma() {
	case "ar", "do", "mo", "ur":
		return one(rules.New("Yes", "This possessive requires Poss=Yes"))
	case "a":
		// a h-uile
		if tok.HasDependent(func(d *ud.Token) bool {
			return d.Lemma() == "uile" && d.Deprel() == "fixed"
		}) {
			return absent("The “a” in “a h-uile” is not possessive")
		}
		return one(rules.New("Yes", "This possessive requires Poss=Yes"))
	case "an":
		if tok.Deprel() == "nmod:poss" || tok.Deprel() == "obj" {
			return one(rules.New("Yes", "This possessive requires Poss=Yes"))
		}
	}
	return absent("Only possessives have Poss")
}

// ------------------ PronType

// pronTypeAUX: usually, but not always, before superlative ADJ
func pronTypeAUX(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Rel|None", "Copulae sometimes have PronType=Rel"))
}

func pronTypePART(tok *ud.Token) []rules.Constraint {
	if tok.Has("PartType", "Vb") && !(tok.Lemma() == "na" && tok.Has("Polarity", "Neg")) {
		return one(rules.New("Int|Rel", "Verbal particles should have PronType"))
	}
	return absent("Only verbal particles have PronType")
}

// pronTypePRON: only Int, dè, cò etc.
func pronTypePRON(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Int|None", "Some pronouns have PronType=Int"))
}

// ------------------ Reflex

func reflexPRON(tok *ud.Token) []rules.Constraint {
	if reflexLemma.MatchString(tok.Lemma()) {
		return one(rules.New("Yes", "Both “fèin” and “chèile” require Reflex=Yes"))
	}
	if tok.Lemma() == "a" && tok.HasDependent(func(d *ud.Token) bool {
		return cheileLemma.MatchString(d.Lemma()) && d.Index() == tok.Index()+1
	}) {
		return one(rules.New("Yes", "The “a” in “a chèile” requires Reflex=Yes"))
	}
	return absent("Only “fèin” and “chèile” are reflexive")
}

// ------------------ Tense

// tenseAUX: no Mood=Cnd unlike Irish
func tenseAUX(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Past|Pres", "Copulas must be marked as present or past tense"))
}

func tensePART(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "do" {
		return one(rules.New("Past", "Verbal particle do requires Tense=Past"))
	}
	return absent("Only the verbal particle “do” has Tense")
}
