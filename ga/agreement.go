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

	"gaelcheck/goidelic"
	"gaelcheck/rules"
	"gaelcheck/ud"
)

var (
	one    = rules.One
	absent = func(msg string) []rules.Constraint { return one(rules.Absent(msg)) }

	definiteDetLemma = regexp.MustCompile(`^(an|gach.*|achan)$`)
	femArticle       = regexp.MustCompile(`^'?[Nn]`)
	mascArticle      = regexp.MustCompile(`^'?[Aa]`)

	pronounGender = map[string]string{
		"é": "Masc", "eisean": "Masc", "í": "Fem", "ise": "Fem",
		"sé": "Masc", "seisean": "Masc", "sí": "Fem", "sise": "Fem",
	}
	pronounNumber = map[string]string{
		"é": "Sing", "ea": "Sing", "eisean": "Sing", "í": "Sing", "iad": "Plur",
		"ise": "Sing", "mé": "Sing", "mise": "Sing", "muid": "Plur", "sé": "Sing",
		"seisean": "Sing", "sí": "Sing", "siad": "Plur", "sibh": "Plur",
		"sinn": "Plur", "sise": "Sing", "tú": "Sing", "tusa": "Sing",
	}
	possessiveNumber = map[string]string{
		"ár": "Plur", "bhur": "Plur", "do": "Sing", "mo": "Sing",
	}
	combinedCopulaGender = map[string]string{"sé": "Masc", "sí": "Fem"}
)

// ------------------ Case

// caseDET does not handle a genitive head noun being nummod
// of a cardinal ("dúshlán na seacht dtúr")
func caseDET(tok *ud.Token) []rules.Constraint {
	head := tok.UltimateHead()
	if head.IsNominal() && tok.Lemma() == "an" && head.Has("Case", "Gen") {
		return one(rules.New("Gen", "Article before genitive singular noun should have Case=Gen"))
	}
	return absent("Only articles before a genitive noun have the Case feature")
}

func caseNOUN(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("NomAcc|Gen|Dat|Voc", "Nouns may have any of the cases"))
}

// ------------------ Definite

func definiteDET(tok *ud.Token) []rules.Constraint {
	if definiteDetLemma.MatchString(tok.Lemma()) {
		return one(rules.New("Def", "This determiner should have Definite=Def"))
	}
	return absent("Only articles and “gach” are definite determiners")
}

func definiteNOUN(tok *ud.Token) []rules.Constraint {
	if precedingCen(tok) || anyDependentDefiniteArticle(tok) {
		return one(rules.New("Def", "Needs Definite=Def because of preceding article"))
	}
	if isPossessed(tok) {
		return one(rules.New("Def", "Needs Definite=Def because of preceding possessive adjective"))
	}
	if hasGachDependent(tok) {
		return one(rules.New("Def", "Needs Definite=Def because of “gach”"))
	}
	if tok.Has("Case", "Voc") || tok.Deprel() == "vocative" {
		return one(rules.New("Def", "All vocatives need Definite=Def"))
	}
	if hasPropagatingDefiniteDependent(tok) {
		return one(rules.New("Def", "Needs Definite=Def because of definite nominal dependent"))
	}
	if hasNumberSpecifier(tok) {
		return one(rules.New("Def", "Needs Definite=Def because of the number that follows"))
	}
	return absent("Noun is not definite in this context")
}

func definitePROPN(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Def", "All proper nouns need Definite=Def"))
}

// ------------------ Degree

// degreeADJ: an nmod adjective which is not comparative or superlative
// takes its features from the noun it belongs to
func degreeADJ(tok *ud.Token) []rules.Constraint {
	if tok.Deprel() == "amod" || tok.Has("VerbForm", "Part") {
		return one(rules.New("Cmp|Sup|None", "Attributive adjectives and participles are marked only for Cmp or Sup"))
	}
	return one(rules.New("Pos|Cmp|Sup", "Should default to Degree=Pos"))
}

// ------------------ Gender

func genderADP(tok *ud.Token) []rules.Constraint {
	if tok.Has("Number", "Sing") && tok.Has("Person", "3") {
		return one(rules.New("Fem|Masc", "3rd person singular ADP must be marked for Gender"))
	}
	return absent("Only 3rd person singular prepositional pronouns have Gender")
}

func genderAUX(tok *ud.Token) []rules.Constraint {
	if g, ok := combinedCopulaGender[tok.LowerForm()]; ok {
		return one(rules.New(g, "Combined copula requires correct Gender feature"))
	}
	return absent("Only combined copulas have Gender")
}

func genderDET(tok *ud.Token) []rules.Constraint {
	if tok.Has("Number", "Sing") {
		if tok.Has("Poss", "Yes") && tok.Has("Person", "3") {
			return one(rules.New("Fem|Masc", "3rd person singular possessive must be marked for Gender"))
		}
		if tok.Has("PronType", "Art") && tok.Has("Case", "Gen") {
			if femArticle.MatchString(tok.Form()) {
				return one(rules.New("Fem", "Article before genitive singular feminine noun must be marked for Gender"))
			}
			if mascArticle.MatchString(tok.Form()) {
				return one(rules.New("Masc", "Article before genitive singular masculine noun must be marked for Gender"))
			}
		}
	}
	return absent("Only 3rd person possessives and genitive singular articles have Gender")
}

// genderNOUN: missing genders are picked up by the lexicon check
func genderNOUN(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Fem|Masc", "Nouns are masculine or feminine"))
}

func genderPRON(tok *ud.Token) []rules.Constraint {
	if g, ok := pronounGender[tok.Lemma()]; ok {
		return one(rules.New(g, "Personal pronouns require correct Gender feature"))
	}
	return absent("Only 3rd person singular personal pronouns have Gender")
}

// ------------------ NounType

// nounTypeADJ includes nmod because of coordinations
// through genitive singular nouns
func nounTypeADJ(tok *ud.Token) []rules.Constraint {
	if tok.Has("Number", "Plur") && (tok.Deprel() == "amod" || tok.Deprel() == "nmod") {
		head := tok.UltimateHead()
		if head.Has("Case", "NomAcc") {
			if hasSlenderFinalConsonant(head) {
				return one(rules.New(
					"Slender",
					"Plural adjective modifying noun with slender ending; needs NounType=Slender feature"))
			}
			return one(rules.New(
				"NotSlender",
				"Plural adjective modifying noun ending in broad consonant or vowel needs NounType=NotSlender feature"))

		} else if head.Has("Case", "Gen") {
			if v := head.FirstValue("NounType"); v != "" {
				return one(rules.New(
					v, "Plural adjective must have NounType=Strong or Weak matching the noun it modifies"))
			}
		}
	}
	return absent("Only plural adjectives modifying a noun have NounType")
}

// nounTypeNOUN: nouns do not take Slender/NotSlender,
// only their dependent adjectives
func nounTypeNOUN(tok *ud.Token) []rules.Constraint {
	if tok.Has("Number", "Plur") && tok.Has("Case", "Gen") {
		return one(rules.New("Strong|Weak", "Genitive plural nouns need NounType=Strong or Weak"))
	}
	return absent("Only genitive plural nouns have NounType")
}

// ------------------ Number

func numberAUX(tok *ud.Token) []rules.Constraint {
	if goidelic.FormIn(tok, "sé", "sí") {
		return one(rules.New("Sing", "Combined copula requires Number feature"))
	}
	return absent("Only combined copulas have Number")
}

func numberADJ(tok *ud.Token) []rules.Constraint {
	if isAttributiveAdjective(tok) {
		head := tok.UltimateHead()
		if has2Thru19(head) {
			return one(rules.New("Plur", "Should be plural adjective after 2-19"))
		}
		if v := head.FirstValue("Number"); v != "" {
			return one(rules.New(v, "Adjective number should match noun it modifies"))
		}
	}
	if tok.Deprel() == "nmod" || tok.Deprel() == "amod" {
		return one(rules.New("Sing|Plur|None", "Adjective may take number of a noun"))
	}
	return absent("Predicative adjectives have no Number")
}

func numberADP(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Sing|Plur", "Some pronomials have Number feature"))
}

func numberDET(tok *ud.Token) []rules.Constraint {
	if n, ok := possessiveNumber[tok.Lemma()]; ok {
		return one(rules.New(n, "Possessives should have the correct Number feature"))
	}
	if tok.Lemma() == "an" {
		return one(rules.New("Sing|Plur", "Articles must have Number feature"))
	}
	if tok.Lemma() == "a" {
		return one(rules.New("Sing|Plur", "Possessive “a” must be annotated either singular or plural"))
	}
	return absent("Only articles and possessives have Number")
}

func numberNOUN(tok *ud.Token) []rules.Constraint {
	if !tok.HasFeature("Abbr") && !tok.HasFeature("Foreign") && !tok.HasFeature("VerbForm") {
		return one(rules.New("Sing|Plur", "All nouns except verbal nouns should have a Number feature"))
	}
	return one(rules.Optional("Sing|Plur", "Abbreviations, foreign words and verbal nouns may have Number"))
}

// numberPRON: "cén" is Sing, but "cé", "céard" have no Number
func numberPRON(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "cé" {
		if tok.LowerForm() == "cén" {
			return one(rules.New("Sing", "Pronoun “cén” must be Number=Sing"))
		}
		return absent("Interrogative “cé” has no Number")
	}
	if n, ok := pronounNumber[tok.Lemma()]; ok {
		return one(rules.New(n, "Pronouns should have the correct Number feature"))
	}
	return absent("Only personal pronouns have Number")
}

func numberVERB(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Sing|Plur", "Some verbs have Number feature"))
}
