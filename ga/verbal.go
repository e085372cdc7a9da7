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
	"regexp"
	"strconv"

	"gaelcheck/goidelic"
	"gaelcheck/rules"
	"gaelcheck/ud"
)

var (
	habitualBi     = regexp.MustCompile(`^m?bh?í`)
	negativeCopula = regexp.MustCompile(`^(n|cha)`)
	negativePart   = regexp.MustCompile(`^(n[^-]|cha)`)
	startsWithB    = regexp.MustCompile(`^b`)
	negativeBi     = regexp.MustCompile(`^níl`)

	possessivePerson = map[string]int{"a": 3, "ár": 1, "bhur": 2, "do": 2, "mo": 1}
	pronounPerson    = map[string]int{
		"é": 3, "ea": 3, "eisean": 3, "í": 3, "iad": 3, "ise": 3, "mé": 1,
		"mise": 1, "muid": 1, "sé": 3, "seisean": 3, "sí": 3, "siad": 3,
		"sibh": 2, "sinn": 1, "sise": 3, "tú": 2, "tusa": 2,
	}
)

// ------------------ Aspect

func aspectVERB(tok *ud.Token) []rules.Constraint {
	if tok.Has("Mood", "Ind") && tok.Has("Tense", "Pres") && tok.Lemma() == "bí" &&
		habitualBi.MatchString(tok.LowerForm()) {
		return one(rules.New("Hab", "Present habitual needs feature Aspect=Hab"))
	}
	if tok.Has("Tense", "Past") && !tok.HasFeature("Mood") {
		return one(rules.New("Imp", "Past tense but no Mood needs Aspect=Imp"))
	}
	return absent("Only habitual “bí” and imperfect verbs have Aspect")
}

// ------------------ Mood

func moodAUX(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Cnd|Int", "Copula can sometimes have Mood=Int or Mood=Cnd"))
}

func moodPART(tok *ud.Token) []rules.Constraint {
	head := tok.Head()
	if tok.Lemma() == "ná" && head.Has("Mood", "Imp") {
		return one(rules.New("Imp", "Negative imperative particle requires feature Mood=Imp"))
	}
	if goidelic.LemmaIn(tok, "go", "nár") && head.Has("Mood", "Sub") {
		return one(rules.New("Sub", "Subjunctive particle requires feature Mood=Sub"))
	}
	return absent("Only imperative and subjunctive particles have Mood")
}

// moodVERB: distinguishing the moods is a lexical thing
func moodVERB(tok *ud.Token) []rules.Constraint {
	if !tok.Has("Aspect", "Imp") {
		return one(rules.New("Cnd|Imp|Ind|Int|Sub", "All non-imperfect verbs must have the Mood feature"))
	}
	return absent("Imperfect verbs have no Mood feature")
}

// ------------------ Person

func personADP(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("0|1|2|3", "Tokens tagged ADP sometimes have the Person feature"))
}

func personAUX(tok *ud.Token) []rules.Constraint {
	if goidelic.FormIn(tok, "sé", "sí") {
		return one(rules.New("3", "Combined copula requires Person feature"))
	}
	return absent("Only combined copulas have Person")
}

func personDET(tok *ud.Token) []rules.Constraint {
	if tok.Has("Poss", "Yes") {
		if p, ok := possessivePerson[tok.Lemma()]; ok {
			return one(rules.New(strconv.Itoa(p), "Possessives should have the correct Person feature"))
		}
		return one(rules.New("1|2|3", "Possessives have the Person feature"))
	}
	return absent("Only possessives have Person")
}

func personPRON(tok *ud.Token) []rules.Constraint {
	if p, ok := pronounPerson[tok.Lemma()]; ok {
		return one(rules.New(strconv.Itoa(p), "Pronouns should have the correct Person feature"))
	}
	return absent("Only personal pronouns have Person")
}

func personVERB(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("0|1|2|3", "Verbs sometimes have the Person feature"))
}

// ------------------ Polarity

func polarityAUX(tok *ud.Token) []rules.Constraint {
	if negativeCopula.MatchString(tok.LowerForm()) {
		return one(rules.New("Neg", "Negative copula should have Polarity=Neg"))
	}
	return absent("Only negative copulas have Polarity")
}

func polarityPART(tok *ud.Token) []rules.Constraint {
	if !tok.Has("PartType", "Comp") && !tok.Has("PartType", "Pat") &&
		negativePart.MatchString(tok.LowerForm()) {
		return one(rules.New("Neg", "Negative particle should have Polarity=Neg"))
	}
	return absent("Only negative particles have Polarity")
}

func polarityVERB(tok *ud.Token) []rules.Constraint {
	if negativeBi.MatchString(tok.LowerForm()) || tok.Predecessor().Has("Polarity", "Neg") {
		return one(rules.New("Neg", "Verb following negative particle must have Polarity=Neg feature"))
	}
	return absent("Only verbs following a negative particle have Polarity")
}

// ------------------ Tense

func tenseADV(tok *ud.Token) []rules.Constraint {
	if tok.LowerForm() == "cár" {
		return one(rules.New("Past", "Past tense interrogative “cár” should have Tense=Past before a regular verb"))
	}
	return absent("Adverbs have no Tense")
}

func tenseAUX(tok *ud.Token) []rules.Constraint {
	if !tok.Has("Mood", "Cnd") {
		return one(rules.New("Past|Pres", "Copulas that are not conditional must be marked as present or past tense"))
	}
	return absent("Conditional copulas have no Tense")
}

func isComparativeBa(tok *ud.Token) bool {
	return tok.Lemma() == "is" && startsWithB.MatchString(tok.LowerForm()) &&
		(tok.Has("PartType", "Comp") || tok.Has("PartType", "Sup"))
}

func tensePART(tok *ud.Token) []rules.Constraint {
	if endsInR.MatchString(tok.LowerForm()) && !tok.Has("Mood", "Sub") {
		return one(rules.New("Past", "Special past tense particles ending in -r should have Tense=Past feature"))
	}
	if isComparativeBa(tok) {
		return one(rules.New("Past", "Particle ”ba” in comparative or superlative constructions must have Tense=Past feature"))
	}
	return absent("Only past tense particles have Tense")
}

func tenseSCONJ(tok *ud.Token) []rules.Constraint {
	if goidelic.FormIn(tok, "murar", "sarar", "sular") {
		return one(rules.New("Past", "Special past tense conjunctions should have Tense=Past before a regular verb"))
	}
	if goidelic.FormIn(tok, "mura", "murab") && tok.Has("VerbForm", "Cop") {
		return one(rules.New("Pres", "Copular conjunctions “mura”, “murab” should have Tense=Pres"))
	}
	return absent("Only special past tense and copular conjunctions have Tense")
}

// ------------------ VerbForm

func verbFormADJ(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Part", "Adjectives can have VerbForm=Part feature"))
}

func verbFormAUX(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Cop", "Copulas must have VerbForm=Cop feature"))
}

func verbFormPART(tok *ud.Token) []rules.Constraint {
	if isComparativeBa(tok) {
		return one(rules.New("Cop", "Some comparative/superlative particles have VerbForm=Cop feature"))
	}
	return absent("Only comparative/superlative “ba” particles have VerbForm")
}

// verbFormPRON: rare, caidé, cérbh, cér
func verbFormPRON(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Cop", "Pronouns sometimes have VerbForm=Cop feature"))
}

func verbFormSCONJ(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Cop", "Conjunctions sometimes have VerbForm=Cop feature"))
}
