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
	"strings"
	"testing"

	"gaelcheck/rules"
	"gaelcheck/ud"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(fields ...string) string {
	return strings.Join(fields, "\t")
}

func readSentence(t *testing.T, rows ...string) *ud.Sentence {
	rdr := ud.NewReader(strings.NewReader(strings.Join(rows, "\n")+"\n\n"), Phonology{}.Autoset)
	s, err := rdr.Next()
	require.NoError(t, err)
	return s
}

func checkSentence(s *ud.Sentence) []rules.Failure {
	tbl := Table()
	var ans []rules.Failure
	for _, tok := range s.OrdinaryTokens() {
		for _, feat := range Checkable {
			entry, ok := tbl.Lookup(tok.UPOS(), feat)
			ans = append(ans, rules.Evaluate(tok, feat, entry, ok)...)
		}
	}
	return ans
}

func possessedNoun(t *testing.T, form string) *ud.Sentence {
	return readSentence(t,
		row("1", "nyn", "nyn", "DET", "_", "Number=Plur|Person=1|Poss=Yes", "2", "nmod:poss", "_", "_"),
		row("2", form, "boayl", "NOUN", "_", "_", "0", "root", "_", "_"),
	)
}

func TestEclipsisAfterPluralPossessive(t *testing.T) {
	s := possessedNoun(t, "moayl")
	noun, _ := s.TokenByIndex(2)
	assert.True(t, noun.Has("Form", "Ecl"))
	assert.Empty(t, checkSentence(s))

	fails := checkSentence(possessedNoun(t, "boayl"))
	require.Len(t, fails, 1)
	assert.Equal(t, "Form", fails[0].Feature)
	assert.Equal(t, "mutation", fails[0].Facet)
}

func TestAutosetRemovesSpuriousMarker(t *testing.T) {
	s := readSentence(t,
		row("1", "boayl", "boayl", "NOUN", "_", "Form=Len", "0", "root", "_", "_"),
	)
	noun, _ := s.TokenByIndex(1)
	assert.False(t, noun.HasFeature("Form"))
}

func TestMutationDetection(t *testing.T) {
	p := Phonology{}
	tok := func(form, lemma string) *ud.Token {
		s := readSentence(t, row("1", form, lemma, "NOUN", "_", "_", "0", "root", "_", "_"))
		ans, _ := s.TokenByIndex(1)
		return ans
	}
	assert.True(t, p.IsLenited(tok("vac", "mac")))
	assert.True(t, p.IsLenited(tok("chass", "cass")))
	assert.True(t, p.IsLenited(tok("houney", "sauin")))
	assert.False(t, p.IsLenited(tok("vel", "bee")))
	assert.True(t, p.IsEclipsed(tok("vel", "bee")))
	assert.True(t, p.IsEclipsed(tok("dooar", "fow")))
	assert.False(t, p.IsEclipsed(tok("mac", "mac")))
	assert.True(t, p.HasPrefixT(tok("tooill", "sooill")))
	assert.True(t, p.HasPrefixH(tok("h-ayr", "ayr")))
	assert.False(t, p.HasPrefixH(tok("hayn", "hayn")))
}

func TestDemutate(t *testing.T) {
	p := Phonology{}
	assert.Equal(t, "ayr", p.Demutate("h-ayr"))
	assert.Equal(t, "deiney", p.Demutate("gheiney"))
	assert.Equal(t, "quaiyl", p.Demutate("whaiyl"))
	assert.Equal(t, "slieh", p.Demutate("'lieh"))
	assert.Equal(t, "feayst", p.Demutate("'eayst"))
	assert.Equal(t, "mac", p.Demutate("mac"))
}

func TestEmphaticFacet(t *testing.T) {
	s := readSentence(t,
		row("1", "lhiams", "lhiam", "VERB", "_", "Form=Emp|Mood=Ind|Tense=Pres", "0", "root", "_", "_"),
	)
	assert.Empty(t, checkSentence(s))
}

var violation = []rules.FailureKind{rules.FailViolation}

type featureCase struct {
	name  string
	rows  []string
	index int
	feat  string
	want  []rules.FailureKind
}

func runFeatureCases(t *testing.T, cases []featureCase) {
	tbl := Table()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tok, ok := readSentence(t, c.rows...).TokenByIndex(c.index)
			require.True(t, ok)
			entry, registered := tbl.Lookup(tok.UPOS(), c.feat)
			require.True(t, registered)
			var kinds []rules.FailureKind
			for _, f := range rules.Evaluate(tok, c.feat, entry, registered) {
				kinds = append(kinds, f.Kind)
			}
			assert.Equal(t, c.want, kinds)
		})
	}
}

func single(form, lemma, upos, feats string) []string {
	return []string{row("1", form, lemma, upos, "_", feats, "0", "root", "_", "_")}
}

func TestManxParticleRules(t *testing.T) {
	is := row("2", "vel", "bee", "VERB", "_", "Mood=Ind|Tense=Pres", "0", "root", "_", "_")
	runFeatureCases(t, []featureCase{
		{name: "cha before verb", rows: []string{
			row("1", "cha", "cha", "PART", "_", "PartType=Vb|Polarity=Neg", "2", "advmod", "_", "_"), is,
		}, index: 1, feat: "PartType"},
		{name: "cha without PartType", rows: []string{
			row("1", "cha", "cha", "PART", "_", "Polarity=Neg", "2", "advmod", "_", "_"), is,
		}, index: 1, feat: "PartType", want: violation},
		{name: "cha without Polarity", rows: []string{
			row("1", "cha", "cha", "PART", "_", "PartType=Vb", "2", "advmod", "_", "_"), is,
		}, index: 1, feat: "Polarity", want: violation},
		{name: "adverbial dy", rows: []string{
			row("1", "dy", "dy", "PART", "_", "PartType=Cmpl", "2", "mark", "_", "_"),
			row("2", "mie", "mie", "ADJ", "_", "_", "0", "root", "_", "_"),
		}, index: 1, feat: "PartType", want: violation},
		{name: "infinitive y", rows: []string{
			row("1", "y", "y", "ADP", "_", "_", "2", "mark", "_", "_"),
			row("2", "chionnaghey", "kionnaghey", "NOUN", "_", "_", "0", "root", "_", "_"),
		}, index: 1, feat: "PartType", want: violation},
	})
}

func TestManxNominalRules(t *testing.T) {
	possessive := func(form, feats string) []string {
		return []string{
			row("1", form, form, "DET", "_", feats, "2", "nmod:poss", "_", "_"),
			row("2", "thie", "thie", "NOUN", "_", "_", "0", "root", "_", "_"),
		}
	}
	runFeatureCases(t, []featureCase{
		{name: "plural possessive", rows: possessive("nyn", "Number=Plur|Person=1|Poss=Yes"), index: 1, feat: "Number"},
		{name: "plural possessive marked Sing", rows: possessive("nyn", "Number=Sing|Person=1|Poss=Yes"), index: 1, feat: "Number", want: violation},
		{name: "my without Poss", rows: possessive("my", "Number=Sing|Person=1"), index: 1, feat: "Poss", want: violation},
		{name: "article without Definite", rows: []string{
			row("1", "yn", "yn", "DET", "_", "Number=Sing|PronType=Art", "2", "det", "_", "_"),
			row("2", "thie", "thie", "NOUN", "_", "_", "0", "root", "_", "_"),
		}, index: 1, feat: "Definite", want: violation},
		{name: "emphatic pronoun", rows: single("mish", "mee", "PRON", "Number=Sing|Person=1"), index: 1, feat: "PronType", want: violation},
		{name: "demonstrative", rows: single("shoh", "shoh", "PRON", "PronType=Dem"), index: 1, feat: "PronType"},
		{name: "pronoun gender", rows: single("ee", "ee", "PRON", "Gender=Masc|Number=Sing|Person=3"), index: 1, feat: "Gender", want: violation},
		{name: "hene without Reflex", rows: single("hene", "hene", "PRON", "_"), index: 1, feat: "Reflex", want: violation},
		{name: "plural-looking adjective", rows: single("mooarey", "mooar", "ADJ", "Number=Plur"), index: 1, feat: "Number"},
		{name: "plural on base adjective", rows: single("mie", "mie", "ADJ", "Number=Plur"), index: 1, feat: "Number", want: violation},
	})
}

func TestManxVerbAndFormRules(t *testing.T) {
	runFeatureCases(t, []featureCase{
		{name: "indicative without Tense", rows: single("ren", "jean", "VERB", "Mood=Ind"), index: 1, feat: "Tense", want: violation},
		{name: "imperative with Tense", rows: single("jean", "jean", "VERB", "Mood=Imp|Tense=Pres"), index: 1, feat: "Tense", want: violation},
		{name: "verb without Mood", rows: single("jean", "jean", "VERB", "_"), index: 1, feat: "Mood", want: violation},
		{name: "lenited adjective", rows: single("veg", "beg", "ADJ", "_"), index: 1, feat: "Form"},
		{name: "eclipsed adjective", rows: single("meg", "beg", "ADJ", "_"), index: 1, feat: "Form",
			want: []rules.FailureKind{rules.FailUnexplainedValue}},
		{name: "lenited verb", rows: single("hooar", "fow", "VERB", "Mood=Ind|Tense=Past"), index: 1, feat: "Form"},
		{name: "verb with prefix h", rows: single("h-ee", "ee", "VERB", "Mood=Ind|Tense=Pres"), index: 1, feat: "Form", want: violation},
	})

	tok, ok := readSentence(t, single("meg", "beg", "ADJ", "_")...).TokenByIndex(1)
	require.True(t, ok)
	assert.True(t, tok.Has("Form", "Ecl"))
}
