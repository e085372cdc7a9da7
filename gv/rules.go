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

package gv

import (
	"regexp"
	"strconv"

	"gaelcheck/goidelic"
	"gaelcheck/rules"
	"gaelcheck/ud"
)

var (
	one    = rules.One
	absent = func(msg string) []rules.Constraint { return one(rules.Absent(msg)) }

	genitiveArticle = regexp.MustCompile(`^n[y']?$`)
	pluralAdjEnding = regexp.MustCompile(`ey$`)

	emphaticPronouns = []string{
		"adhene", "adsyn", "eshyn", "ish", "meehene", "mish", "shinyn", "shiuish", "uss"}
	possessivePerson = map[string]int{"dty": 2, "e": 3, "my": 1, "ny": 3}
	pronounPerson    = map[string]int{
		"ad": 3, "ee": 3, "eh": 3, "mayd": 1, "mee": 1, "oo": 2, "ou": 2, "shin": 1, "shiu": 2}
)

// ------------------ Case

func caseDET(tok *ud.Token) []rules.Constraint {
	if tok.LowerForm() == "ny" {
		return one(rules.New("Gen|None", "Could be article before genitive feminine singular"))
	}
	return absent("Only the article “ny” has the Case feature")
}

// ------------------ Definite

func definiteDET(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "yn" {
		return one(rules.New("Def", "Definite articles require Definite=Def"))
	}
	return absent("Only definite articles have Definite")
}

// ------------------ Degree

// degreeADJ is a weak check permitting Cmp/Sup whenever the form
// differs from the lemma; an initial s' cannot be tested because
// of copula forms like "s'laik"
func degreeADJ(tok *ud.Token) []rules.Constraint {
	if tok.LowerForm() != tok.Lemma() {
		return one(rules.New("Cmp|Sup|None", "Could be a comparative or superlative adjective"))
	}
	return absent("Adjective equal to its lemma is not comparative or superlative")
}

// ------------------ Gender

func genderDET(tok *ud.Token) []rules.Constraint {
	if genitiveArticle.MatchString(tok.LowerForm()) {
		if tok.Has("PronType", "Art") {
			return one(rules.New("Fem|None", "Could be article before genitive feminine singular"))
		}
		if tok.Has("Poss", "Yes") {
			return one(rules.New("Fem|Masc", "Possessive form “ny” must have Gender feature"))
		}
	}
	if tok.Lemma() == "e" {
		return one(rules.New("Fem|Masc", "Ambiguous 3rd person singular possessive must have Gender feature"))
	}
	return absent("Only genitive articles and 3rd person possessives have Gender")
}

func genderPRON(tok *ud.Token) []rules.Constraint {
	switch tok.Lemma() {
	case "ee":
		return one(rules.New("Fem", "Feminine pronoun should have Gender=Fem"))
	case "eh":
		return one(rules.New("Masc", "Masculine pronoun should have Gender=Masc"))
	}
	return absent("Only 3rd person singular pronouns have Gender")
}

// ------------------ Mood

// moodVERB: distinguishing the moods is left to the lexicon
func moodVERB(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Cnd|Imp|Ind", "All verbs must have the Mood feature"))
}

// ------------------ Number

func numberADJ(tok *ud.Token) []rules.Constraint {
	if tok.LowerForm() != tok.Lemma() && pluralAdjEnding.MatchString(tok.LowerForm()) {
		return one(rules.New("Plur|None", "Looks like it could be plural"))
	}
	return absent("Does not look like a plural adjective")
}

func numberDET(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "yn" {
		if tok.LowerForm() == "ny" {
			return one(rules.New("Sing|Plur|None", "Could be plural article or genitive feminine singular"))
		}
		return one(rules.New("Sing", "Appears to be a singular article, requiring Number=Sing"))
	}
	if tok.Has("Poss", "Yes") {
		if goidelic.LemmaIn(tok, "my", "dty", "e", "ny") {
			return one(rules.New("Sing", "Appears to be a singular possessive, requiring Number=Sing"))
		}
		if tok.Lemma() == "nyn" {
			return one(rules.New("Plur", "Appears to be a plural possessive, requiring Number=Plur"))
		}
	}
	return absent("Only articles and possessives have Number")
}

func numberPRON(tok *ud.Token) []rules.Constraint {
	if goidelic.LemmaIn(tok, "ee", "eh", "mee", "oo", "ou") {
		return one(rules.New("Sing", "Singular pronoun should have Number=Sing"))
	}
	if goidelic.LemmaIn(tok, "ad", "mayd", "shin", "shiu") {
		return one(rules.New("Plur", "Plural pronoun should have Number=Plur"))
	}
	return absent("Only personal pronouns have Number")
}

// numberVERB could check endings (-ym Sing, -mayd or -jee Plur)
func numberVERB(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Sing|Plur|None", "Some verbs have a Number feature"))
}

// ------------------ PartType

func precedesHead(tok *ud.Token, upos string) bool {
	h := tok.Head()
	return h.UPOS() == upos && h.Index() == tok.Index()+1
}

func partTypeADP(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "y" && tok.Deprel() == "mark" && precedesHead(tok, "NOUN") {
		return one(rules.New("Inf", "This looks like an infinite particle requiring PartType=Inf"))
	}
	return absent("Only the infinitive particle “y” has PartType")
}

func partTypePART(tok *ud.Token) []rules.Constraint {
	head := tok.Head()
	switch tok.Lemma() {
	case "cha":
		if precedesHead(tok, "VERB") {
			return one(rules.New("Vb", "This looks like a verbal particle requiring PartType=Vb"))
		}
	case "dy":
		if precedesHead(tok, "VERB") {
			return one(rules.New("Cmpl", "This looks like a verbal particle requiring PartType=Cmpl"))
		}
		if precedesHead(tok, "ADJ") {
			return one(rules.New("Ad", "Should have PartType=Ad in adverbial phrase"))
		}
	case "nagh":
		if precedesHead(tok, "VERB") {
			return one(rules.New("Cmpl|Vb", "Should be PartType=Cmpl or PartType=Vb"))
		}
	case "ny":
		if head.UPOS() == "VERB" && head.Has("Mood", "Imp") {
			return one(rules.New("Vb", "Negative imperative particle should have PartType=Vb"))
		}
		if head.UPOS() == "ADJ" && head.Has("Degree", "Cmp") {
			return one(rules.New("Comp", "Comparative particle should have PartType=Comp"))
		}
	case "y":
		if tok.RawDeprel() == "case:voc" {
			return one(rules.New("Voc", "Vocative particle should have PartType=Voc"))
		}
	}
	return one(rules.Unexplained("Particle type not predicted for this particle"))
}

// ------------------ Person

func personDET(tok *ud.Token) []rules.Constraint {
	if p, ok := possessivePerson[tok.Lemma()]; ok {
		return one(rules.New(strconv.Itoa(p), "Possessives must have the correct Person feature"))
	}
	if tok.Lemma() == "nyn" {
		return one(rules.New("1|2|3", "Ambiguous plural possessive must have the Person feature"))
	}
	return absent("Only possessives have Person")
}

func personPRON(tok *ud.Token) []rules.Constraint {
	if p, ok := pronounPerson[tok.Lemma()]; ok {
		return one(rules.New(strconv.Itoa(p), "Personal pronouns must have the correct Person feature"))
	}
	return absent("Only personal pronouns have Person")
}

func personVERB(tok *ud.Token) []rules.Constraint {
	return one(rules.New("1|2|3|None", "Some verbs have the Person feature"))
}

// ------------------ Polarity

func polarityAUX(tok *ud.Token) []rules.Constraint {
	if goidelic.FormIn(tok, "cha", "nagh") {
		return one(rules.New("Neg", "Negative copula forms should have Polarity=Neg"))
	}
	return absent("Only negative copulas have Polarity")
}

func polarityPART(tok *ud.Token) []rules.Constraint {
	if goidelic.FormIn(tok, "cha", "chan", "nagh", "nar", "nara") {
		return one(rules.New("Neg", "Negative particles should have Polarity=Neg"))
	}
	return absent("Only negative particles have Polarity")
}

// ------------------ Poss

func possDET(tok *ud.Token) []rules.Constraint {
	if goidelic.LemmaIn(tok, "dty", "e", "my", "nyn") {
		return one(rules.New("Yes", "Possessives need Poss=Yes feature"))
	}
	if tok.RawDeprel() == "nmod:poss" {
		return one(rules.New("Yes", "Anything with nmod:poss should have Poss=Yes"))
	}
	if tok.Lemma() == "ny" && !tok.Has("PronType", "Art") {
		return one(rules.New(
			"Yes", "When “ny” is a determiner but not the definite article, it should have Poss=Yes"))
	}
	return absent("Only possessives have Poss")
}

// ------------------ PronType

func pronTypeDET(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "yn" {
		return one(rules.New("Art", "Definite articles require PronType=Art"))
	}
	return absent("Only definite articles have PronType")
}

func pronTypePRON(tok *ud.Token) []rules.Constraint {
	if goidelic.FormIn(tok, emphaticPronouns...) {
		return one(rules.New("Emp", "Emphatic pronouns require PronType=Emp"))
	}
	if goidelic.LemmaIn(tok, "shen", "shoh") {
		return one(rules.New("Dem", "Demonstrative pronouns require PronType=Dem"))
	}
	return absent("Only emphatic and demonstrative pronouns have PronType")
}

// ------------------ Reflex

func reflexPRON(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "hene" {
		return one(rules.New("Yes", "Reflexive pronoun “hene” requires Reflex=Yes"))
	}
	return absent("Only “hene” is reflexive")
}

// ------------------ Tense

// tenseVERB: tensed verbs are precisely those with Mood=Ind
func tenseVERB(tok *ud.Token) []rules.Constraint {
	if tok.Has("Mood", "Ind") {
		return one(rules.New("Past|Pres|Fut", "Verbs in indicative mood must have a Tense feature"))
	}
	return absent("Only indicative verbs have Tense")
}
