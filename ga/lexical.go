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
	relativeADP  = regexp.MustCompile(`^(dá|(faoi|i|le|ó|trí)nar?)$`)
	emphaticADP  = regexp.MustCompile(`(s[ae]|ne|se?an)$`)
	ataForm      = regexp.MustCompile(`^at[aá]`)
	endsInS      = regexp.MustCompile(`s$`)
	demonstrDETs = []string{"eile", "s", "seo", "sin", "siúd", "úd"}
	indefDETs    = []string{"aon", "cibé", "uile"}
)

// ------------------ NumType

func numTypeNUM(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Card|Ord", "Numbers have optional NumType feature"))
}

// ------------------ PartType

func partTypePART(tok *ud.Token) []rules.Constraint {
	lemma := tok.Lemma()
	head := tok.Head()
	switch {
	case goidelic.LemmaIn(tok, "an", "ar", "cha", "chan", "gur", "ná", "níor"):
		return one(rules.New("Vb", "This particle should always be PartType=Vb"))
	case goidelic.LemmaIn(tok, "de", "mac", "mag", "nic", "o", "ó", "uí"):
		return one(rules.New("Pat", "This particle should always be PartType=Pat"))
	case lemma == "a":
		return one(rules.New("Cop|Deg|Inf|Num|Vb|Voc", "If the word “a” is a particle, it must be one of these particle types"))
	case lemma == "ba":
		return one(rules.New("Comp", "If “ba” is a particle, it must be PartType=Comp"))
	case lemma == "do" && head.UPOS() == "NOUN":
		return one(rules.New("Inf", "Here, “do” should be PartType=Inf"))
	case lemma == "do" && head.UPOS() == "VERB" && !tok.Has("Form", "Indirect"):
		return one(rules.New("Vb", "Here, “do” should be PartType=Vb"))
	case lemma == "go" && head.UPOS() == "ADJ":
		return one(rules.New("Ad", "Should have PartType=Ad in adverbial phrase"))
	case lemma == "go" && tok.Has("Mood", "Sub"):
		return one(rules.New("Vb", "Subjunctive particle should have PartType=Vb"))
	case lemma == "go" && head.UPOS() == "VERB":
		return one(rules.New("Cmpl", "Here, “go” should have PartType=Cmpl"))
	case lemma == "is":
		return one(rules.New("Comp|Sup", "The particle “is” should have PartType=Comp or Sup"))
	case goidelic.LemmaIn(tok, "nach", "nár") && head.UPOS() == "VERB":
		if tok.HasFeature("Form") {
			return one(rules.New("Vb", "Relative particle needs PartType=Vb"))
		}
		return one(rules.New("Cmpl", "Here, complementizer needs PartType=Cmpl"))
	case lemma == "ní":
		return one(rules.New("Comp|Pat|Vb", "The particle “ní” is one of these types"))
	case lemma == "níos":
		return one(rules.New("Comp", "The particle “níos” needs PartType=Comp"))
	}
	return one(rules.Unexplained("Particle type not predicted for this particle"))
}

// ------------------ Poss

func possADP(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Yes", "ADP could have Poss=Yes"))
}

func possDET(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Yes", "DET could have Poss=Yes"))
}

// ------------------ PrepForm

// prepFormADP covers usually "case" in PPs, but also "mark"
// ("go dtí go mbeidh...")
func prepFormADP(tok *ud.Token) []rules.Constraint {
	if (tok.Deprel() == "case" || tok.Deprel() == "mark") && tok.HeadIndex() > tok.Index()+1 &&
		tok.HasDependent(func(d *ud.Token) bool {
			return d.Index() == tok.Index()+1 && d.UPOS() == "NOUN" && d.Deprel() == "fixed"
		}) {
		return one(rules.New("Cmpd", "First part of compound preposition should have feature PrepForm=Cmpd"))
	}
	return absent("Only the first part of a compound preposition has PrepForm")
}

// prepFormNOUN handles second halves of compound prepositions
// which are tagged NOUN
func prepFormNOUN(tok *ud.Token) []rules.Constraint {
	cmpd := compoundWithPredecessor(tok)
	if !isCompoundPreposition(cmpd) {
		return absent("Only parts of compound prepositions have PrepForm")
	}
	if tok.Deprel() == "fixed" {
		h := tok.Head()
		if h.UPOS() == "ADP" && (h.Deprel() == "case" || h.Deprel() == "mark") &&
			h.HeadIndex() > tok.Index() && tok.HeadIndex() == tok.Index()-1 {
			return one(rules.New("Cmpd", "Second part of compound preposition should have feature PrepForm=Cmpd"))
		}

	} else if tok.HasDependent(func(d *ud.Token) bool {
		return d.IsNominal() && d.Deprel() == "nmod" && !d.IsInPP()
	}) {
		return one(rules.New("Cmpd", "This should be fixed and PrepForm=Cmpd"))
	}
	return absent("A noun used outside of a compound preposition has no PrepForm")
}

// ------------------ PronType

func pronTypeADP(tok *ud.Token) []rules.Constraint {
	form := tok.LowerForm()
	if (form == "á" || form == "dhá") && tok.Lemma() == "do" && tok.Deprel() == "case" &&
		tok.Head().Has("VerbForm", "Inf") {
		return one(rules.New("Prs", "Particle “á” before verbal noun needs PronType=Prs feature"))
	}
	if relativeADP.MatchString(form) && !tok.Has("Poss", "Yes") && tok.Deprel() != "case" {
		return one(rules.New(
			"Rel", "Appears to be combined preposition with “a” (all that) and need PronType=Rel feature"))
	}
	// no need to be comprehensive here, caught by lexicon
	if emphaticADP.MatchString(form) {
		return one(rules.Optional("Art|Emp", "This could be an emphatic form"))
	}
	if tok.Deprel() == "case" {
		return one(rules.Optional("Art", "This could be PronType=Art"))
	}
	return absent("This preposition should have no PronType")
}

func pronTypeADV(tok *ud.Token) []rules.Constraint {
	if goidelic.LemmaIn(tok, "cá", "conas") {
		return one(rules.New("Int", "These interrogatives require PronType=Int"))
	}
	return absent("Only interrogative adverbs have PronType")
}

func pronTypeAUX(tok *ud.Token) []rules.Constraint {
	if goidelic.FormIn(tok, "seo", "sin") {
		return one(rules.New("Dem", "Feature PronType=Dem is required here"))
	}
	return one(rules.Optional("Rel", "Some copulas are PronType=Rel"))
}

func pronTypeDET(tok *ud.Token) []rules.Constraint {
	if !tok.Has("Poss", "Yes") {
		if tok.Lemma() == "an" {
			return one(rules.New("Art", "Definite article requires PronType=Art"))
		}
		if goidelic.LemmaIn(tok, demonstrDETs...) {
			return one(rules.New("Dem", "Demonstratives require PronType=Dem"))
		}
		if goidelic.LemmaIn(tok, indefDETs...) {
			return one(rules.New("Ind", "Indef. determiner requires PronType=Ind"))
		}
		return one(rules.Optional("Art|Dem|Ind|Int|Rel|Tot", "Other determiners may have PronType"))
	}
	return absent("Possessives have no PronType")
}

// pronTypePART: lemmas a, ar, do, faoi, i, le, nach, nár, trí
func pronTypePART(tok *ud.Token) []rules.Constraint {
	if tok.Has("Form", "Direct") || tok.Has("Form", "Indirect") || tok.Has("PartType", "Cop") {
		return one(rules.New("Rel", "Relativizing particles must have feature PronType=Rel"))
	}
	return absent("Only relativizing particles have PronType")
}

// pronTypePRON: values Dem, Int, Emp, Rel, Ind
func pronTypePRON(tok *ud.Token) []rules.Constraint {
	return one(rules.Optional("Dem|Emp|Ind|Int|Rel", "Pronouns may have these pronoun types"))
}

func pronTypeVERB(tok *ud.Token) []rules.Constraint {
	form := tok.LowerForm()
	if ataForm.MatchString(form) {
		return one(rules.New("Rel", "Forms like “atá” require the feature PronType=Rel"))
	}
	if endsInS.MatchString(form) {
		return one(rules.Optional("Rel", "Verb forms ending in s are sometimes relative which would require PronType=Rel"))
	}
	return absent("Only relative verb forms have PronType")
}

// ------------------ Reflex

func reflexPRON(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "féin" {
		return one(rules.New("Yes", "The word “féin” needs feature Reflex=Yes"))
	}
	return absent("Only “féin” is reflexive")
}

// reflexPROPN: Sinn Féin
func reflexPROPN(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "Féin" {
		return one(rules.New("Yes", "The word “Féin” in “Sinn Féin” needs feature Reflex=Yes"))
	}
	return absent("Only “Féin” is reflexive")
}

// ------------------ XForm

func xFormDET(tok *ud.Token) []rules.Constraint {
	if tok.Lemma() == "aon" && (precedingDefiniteArticle(tok) || precedingCen(tok)) &&
		!isInDativePP(tok.Head()) {
		return one(rules.New("TPref", "Should be “t-aon” after definite article"))
	}
	return absent("Determiner should not have prefix t here")
}

func xFormNOUN(tok *ud.Token) []rules.Constraint {
	sing := tok.Has("Number", "Sing")
	if hasLenitableS(tok) {
		if sing && tok.Has("Gender", "Fem") && tok.Has("Case", "NomAcc") &&
			(anyPrecedingDefiniteArticle(tok) || precedingCen(tok)) {
			return one(rules.New("TPref", "Should have prefix t before feminine noun after an article"))
		}
		if sing && tok.Has("Gender", "Masc") && tok.Has("Case", "Gen") && precedingDefiniteArticle(tok) {
			return one(rules.New("TPref", "Should have prefix t before genitive masculine noun after an article"))
		}

	} else if hasInitialVowel(tok) {
		// oiread/iomad are genderless in the treebank
		if sing && tok.Has("Gender", "Masc") && tok.Has("Case", "NomAcc") && !isInDativePP(tok) &&
			(precedingDefiniteArticle(tok) || precedingCen(tok)) {
			return one(rules.New("TPref", "Should have prefix t before masculine noun after an article"))
		}
	}
	if !admitsPrefixT(tok) {
		return absent("Only vowel-initial and s-initial words can have prefix t")
	}
	return absent("Should not have prefix t in this context")
}
