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

package goidelic

import (
	"gaelcheck/rules"
	"gaelcheck/ud"
)

// Shared provides rules common to all the Goidelic languages.
// Agreement rules depend on a language-specific notion
// of an attributive adjective.
type Shared struct {
	Attributive Attributive
}

// PossessiveEclipsis predicts eclipsis of a noun preceded by a plural
// possessive. An empty result means the rule does not apply.
func (sh Shared) PossessiveEclipsis(tok *ud.Token) []rules.Constraint {
	if IsPluralPossessive(tok.Predecessor()) {
		return rules.One(rules.New("Ecl", "Should be eclipsed by preceding possessive"))
	}
	return nil
}

func (sh Shared) CaseADJ(tok *ud.Token) []rules.Constraint {
	if sh.Attributive(tok) {
		head := tok.UltimateHead()
		if v := head.FirstValue("Case"); v != "" {
			return rules.One(rules.New(v, "Adjective case should match noun it modifies"))
		}
	}
	return rules.One(rules.Absent("Only attributive adjectives of a noun with Case have the Case feature"))
}

func (sh Shared) GenderADJ(tok *ud.Token) []rules.Constraint {
	if sh.Attributive(tok) {
		head := tok.UltimateHead()
		if v := head.FirstValue("Gender"); v != "" {
			return rules.One(rules.New(v, "Adjective gender should match noun it modifies"))
		}
	}
	return rules.One(rules.Absent("Only attributive adjectives of a noun with Gender have the Gender feature"))
}

func (sh Shared) TenseVERB(tok *ud.Token) []rules.Constraint {
	if tok.Has("Foreign", "Yes") {
		return rules.One(rules.Unexplained("Foreign verbs are not checked for Tense"))
	}
	if tok.Has("Mood", "Cnd") || tok.Has("Mood", "Imp") {
		return rules.One(rules.Absent("Conditional and imperative verbs have no Tense feature"))
	}
	return rules.One(rules.New(
		"Fut|Past|Pres",
		"Verbs that are not conditional, imperfect, or foreign must be past, present, or future tense",
	))
}

func (sh Shared) VerbFormNOUN(tok *ud.Token) []rules.Constraint {
	return rules.One(rules.New("Inf|Vnoun|None", "Nouns can have VerbForm feature"))
}

// Table creates the shared default table. Language tables
// are layered over it.
func (sh Shared) Table() *rules.Table {
	return rules.NewTable("goidelic", nil).
		Register("Case", sh.CaseADJ, "ADJ").
		Register("Gender", sh.GenderADJ, "ADJ").
		Register("Tense", sh.TenseVERB, "VERB").
		Register("VerbForm", sh.VerbFormNOUN, "NOUN").
		Seal()
}
