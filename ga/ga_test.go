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
	"bytes"
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
	data := strings.Join(rows, "\n") + "\n\n"
	rdr := ud.NewReader(strings.NewReader(data), Phonology{}.Autoset)
	s, err := rdr.Next()
	require.NoError(t, err)
	require.Empty(t, s.Issues())
	return s
}

func checkSentence(tbl *rules.Table, s *ud.Sentence) []rules.Failure {
	var ans []rules.Failure
	for _, tok := range s.OrdinaryTokens() {
		for _, feat := range Checkable {
			entry, ok := tbl.Lookup(tok.UPOS(), feat)
			ans = append(ans, rules.Evaluate(tok, feat, entry, ok)...)
		}
	}
	return ans
}

func TestUnlenitedAdjectiveAfterFeminineNoun(t *testing.T) {
	s := readSentence(t,
		row("1", "bean", "bean", "NOUN", "Noun", "Case=NomAcc|Gender=Fem|Number=Sing", "0", "root", "_", "_"),
		row("2", "mór", "mór", "ADJ", "Adj", "Case=NomAcc|Gender=Fem|Number=Sing", "1", "amod", "_", "_"),
	)
	fails := checkSentence(Table(), s)
	require.Len(t, fails, 1)
	assert.Equal(t, rules.FailViolation, fails[0].Kind)
	assert.Equal(t, "Form", fails[0].Feature)
	assert.Equal(t, "lenition", fails[0].Facet)
	assert.Contains(t, fails[0].Messages()[0], "nominative singular feminine")
}

func TestLenitedAdjectiveAfterFeminineNoun(t *testing.T) {
	s := readSentence(t,
		row("1", "bean", "bean", "NOUN", "Noun", "Case=NomAcc|Gender=Fem|Number=Sing", "0", "root", "_", "_"),
		row("2", "mhór", "mór", "ADJ", "Adj", "Case=NomAcc|Gender=Fem|Number=Sing", "1", "amod", "_", "_"),
	)
	adj, ok := s.TokenByIndex(2)
	require.True(t, ok)
	assert.True(t, adj.Has("Form", "Len"))
	assert.Empty(t, checkSentence(Table(), s))
}

func TestEclipsisAfterPluralPossessive(t *testing.T) {
	s := readSentence(t,
		row("1", "ár", "ár", "DET", "Det", "Number=Plur|Person=1|Poss=Yes", "2", "nmod:poss", "_", "_"),
		row("2", "mbád", "bád", "NOUN", "Noun", "Case=NomAcc|Definite=Def|Gender=Masc|Number=Sing", "0", "root", "_", "_"),
	)
	assert.Empty(t, checkSentence(Table(), s))

	var buf bytes.Buffer
	require.NoError(t, s.WriteConllu(&buf))
	assert.Contains(t, buf.String(), "Form=Ecl")
}

func TestUnexpectedAutosetMutationIsFlagged(t *testing.T) {
	s := readSentence(t,
		row("1", "mbád", "bád", "NOUN", "Noun", "Case=NomAcc|Gender=Masc|Number=Sing", "0", "root", "_", "_"),
	)
	fails := checkSentence(Table(), s)
	require.Len(t, fails, 1)
	assert.Equal(t, "eclipsis", fails[0].Facet)
}

func TestPrefixTAfterArticle(t *testing.T) {
	s := readSentence(t,
		row("1", "an", "an", "DET", "Art", "Definite=Def|Number=Sing|PronType=Art", "2", "det", "_", "_"),
		row("2", "t-uisce", "uisce", "NOUN", "Noun", "Case=NomAcc|Definite=Def|Gender=Masc|Number=Sing", "0", "root", "_", "_"),
	)
	noun, _ := s.TokenByIndex(2)
	assert.True(t, noun.Has("XForm", "TPref"))
	assert.Empty(t, checkSentence(Table(), s))
}

func TestAutosetKeepsAnnotatedPrefixT(t *testing.T) {
	s := readSentence(t,
		row("1", "uisce", "uisce", "NOUN", "Noun", "Case=NomAcc|Gender=Masc|Number=Sing|XForm=TPref", "0", "root", "_", "_"),
	)
	noun, _ := s.TokenByIndex(1)
	assert.True(t, noun.Has("XForm", "TPref"))
	fails := checkSentence(Table(), s)
	require.Len(t, fails, 1)
	assert.Equal(t, "XForm", fails[0].Feature)
}

func TestDemutate(t *testing.T) {
	p := Phonology{}
	cases := map[string]string{
		"mbád":     "bád",
		"bhfuil":   "fuil",
		"t-athair": "athair",
		"tsráid":   "sráid",
		"hÉireann": "Éireann",
		"ndúil":    "dúil",
		"chuaigh":  "cuaigh",
		"bád":      "bád",
	}
	for in, out := range cases {
		assert.Equal(t, out, p.Demutate(in), in)
	}
}

func TestLower(t *testing.T) {
	p := Phonology{}
	assert.Equal(t, "t-acht", p.Lower("tAcht"))
	assert.Equal(t, "n-áras", p.Lower("nÁras"))
	assert.Equal(t, "bád", p.Lower("Bád"))
	assert.Equal(t, "t", p.Lower("T"))
}

func TestTableLayering(t *testing.T) {
	tbl := Table()
	_, ok := tbl.Lookup("ADJ", "Case")
	assert.True(t, ok)
	_, ok = tbl.Lookup("INTJ", "Case")
	assert.False(t, ok)
	e, ok := tbl.Lookup("NOUN", "Form")
	assert.True(t, ok)
	assert.True(t, e.IsPacked())
	assert.NotContains(t, Checkable, "Degree")
	assert.Panics(t, func() { tbl.Register("Case", caseNOUN, "X") })
}

func TestIs2Thru19(t *testing.T) {
	s := readSentence(t,
		row("1", "12", "12", "NUM", "Num", "NumType=Card", "2", "nummod", "_", "_"),
		row("2", "bád", "bád", "NOUN", "Noun", "Case=NomAcc|Gender=Masc|Number=Sing", "0", "root", "_", "_"),
		row("3", "20", "20", "NUM", "Num", "NumType=Card", "2", "nmod", "_", "_"),
	)
	n12, _ := s.TokenByIndex(1)
	n20, _ := s.TokenByIndex(3)
	assert.True(t, is2Thru19(n12))
	assert.False(t, is2Thru19(n20))
}

var violation = []rules.FailureKind{rules.FailViolation}

// featureCase evaluates a single feature of the token at index.
// An empty facet selects failures of all the facets.
type featureCase struct {
	name  string
	rows  []string
	index int
	feat  string
	facet string
	want  []rules.FailureKind
}

func runFeatureCases(t *testing.T, cases []featureCase) {
	tbl := Table()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := readSentence(t, c.rows...)
			tok, ok := s.TokenByIndex(c.index)
			require.True(t, ok)
			entry, registered := tbl.Lookup(tok.UPOS(), c.feat)
			require.True(t, registered)
			var kinds []rules.FailureKind
			for _, f := range rules.Evaluate(tok, c.feat, entry, registered) {
				if c.facet == "" || f.Facet == c.facet {
					kinds = append(kinds, f.Kind)
				}
			}
			assert.Equal(t, c.want, kinds)
		})
	}
}

func numberPhrase(num, adjFeats string) []string {
	return []string{
		row("1", num, num, "NUM", "Num", "NumType=Card", "2", "nummod", "_", "_"),
		row("2", "bhád", "bád", "NOUN", "Noun", "Case=NomAcc|Gender=Masc|Number=Sing", "0", "root", "_", "_"),
		row("3", "mhóra", "mór", "ADJ", "Adj", adjFeats, "2", "amod", "_", "_"),
	}
}

func governedNoun(depRow, nounFeats string) []string {
	return []string{
		depRow,
		row("2", "lá", "lá", "NOUN", "Noun", nounFeats, "0", "root", "_", "_"),
	}
}

func genitiveProperNoun(headFeats string) []string {
	return []string{
		row("1", "muintir", "muintir", "NOUN", "Noun", headFeats, "0", "root", "_", "_"),
		row("2", "Éireann", "Éire", "PROPN", "Noun", "Case=Gen|Definite=Def|Gender=Fem|Number=Sing", "1", "nmod", "_", "_"),
	}
}

func afterPreposition(prep, form string) []string {
	return []string{
		row("1", prep, prep, "ADP", "Simp", "_", "2", "case", "_", "_"),
		row("2", form, "cnoc", "NOUN", "Noun", "Case=Dat|Gender=Masc|Number=Sing", "0", "root", "_", "_"),
	}
}

func TestNounMutationRules(t *testing.T) {
	sevenBoats := func(form string) []string {
		return []string{
			row("1", "seacht", "seacht", "NUM", "Num", "NumType=Card", "2", "nummod", "_", "_"),
			row("2", form, "bád", "NOUN", "Noun", "Case=NomAcc|Gender=Masc|Number=Sing", "0", "root", "_", "_"),
		}
	}
	inTown := func(form string) []string {
		return []string{
			row("1", "i", "i", "ADP", "Simp", "_", "2", "case", "_", "_"),
			row("2", form, "baile", "NOUN", "Noun", "Case=Dat|Gender=Masc|Number=Sing", "0", "root", "_", "_"),
		}
	}
	runFeatureCases(t, []featureCase{
		{name: "eclipsed after seacht", rows: sevenBoats("mbád"), index: 2, feat: "Form", facet: "eclipsis"},
		{name: "unmutated after seacht", rows: sevenBoats("bád"), index: 2, feat: "Form", facet: "eclipsis", want: violation},
		{name: "eclipsed after i", rows: inTown("mbaile"), index: 2, feat: "Form", facet: "eclipsis"},
		{name: "unmutated after i", rows: inTown("baile"), index: 2, feat: "Form", facet: "eclipsis", want: violation},
		{name: "unlenited after ar", rows: afterPreposition("ar", "cnoc"), index: 2, feat: "Form", facet: "lenition", want: violation},
		{name: "lenited after ar", rows: afterPreposition("ar", "chnoc"), index: 2, feat: "Form", facet: "lenition"},
		{name: "set phrase after thar", rows: afterPreposition("thar", "cnoc"), index: 2, feat: "Form", facet: "lenition"},
	})
}

func TestAdjectiveNumberAfterNumerals(t *testing.T) {
	runFeatureCases(t, []featureCase{
		{name: "plural after trí", rows: numberPhrase("trí", "Case=NomAcc|Gender=Masc|Number=Plur"), index: 3, feat: "Number"},
		{name: "singular after 5", rows: numberPhrase("5", "Case=NomAcc|Gender=Masc|Number=Sing"), index: 3, feat: "Number", want: violation},
	})
}

func TestDefiniteNoun(t *testing.T) {
	possessive := row("1", "mo", "mo", "DET", "Det", "Number=Sing|Person=1|Poss=Yes", "2", "nmod:poss", "_", "_")
	gach := row("1", "gach", "gach", "DET", "Det", "_", "2", "det", "_", "_")
	runFeatureCases(t, []featureCase{
		{name: "possessed", rows: governedNoun(possessive, "Case=NomAcc|Definite=Def|Gender=Masc|Number=Sing"), index: 2, feat: "Definite"},
		{name: "possessed without Def", rows: governedNoun(possessive, "Case=NomAcc|Gender=Masc|Number=Sing"), index: 2, feat: "Definite", want: violation},
		{name: "gach", rows: governedNoun(gach, "Case=NomAcc|Definite=Def|Gender=Masc|Number=Sing"), index: 2, feat: "Definite"},
		{name: "gach without Def", rows: governedNoun(gach, "Case=NomAcc|Gender=Masc|Number=Sing"), index: 2, feat: "Definite", want: violation},
		{name: "definite genitive dependent", rows: genitiveProperNoun("Case=NomAcc|Definite=Def|Gender=Fem|Number=Sing"), index: 1, feat: "Definite"},
		{name: "definite genitive dependent without Def", rows: genitiveProperNoun("Case=NomAcc|Gender=Fem|Number=Sing"), index: 1, feat: "Definite", want: violation},
	})
}

func TestVerbAndParticleRules(t *testing.T) {
	verb := func(form, feats string) string {
		return row("1", form, "cuir", "VERB", "Verb", feats, "0", "root", "_", "_")
	}
	afterInterrogative := func(form string) []string {
		return []string{
			row("1", "an", "an", "PART", "Q", "PartType=Vb", "2", "mark:prt", "_", "_"),
			row("2", form, "cuir", "VERB", "PRES", "Mood=Ind|Tense=Pres", "0", "root", "_", "_"),
		}
	}
	relative := func(partFeats string) []string {
		return []string{
			row("1", "a", "a", "PART", "Vb", partFeats, "2", "mark:prt", "_", "_"),
			row("2", "bhí", "bí", "VERB", "PAST", "Mood=Ind|Tense=Past", "0", "root", "_", "_"),
		}
	}
	copula := func(form, feats string) []string {
		return []string{row("1", form, "is", "AUX", "Cop", feats, "0", "root", "_", "_")}
	}
	runFeatureCases(t, []featureCase{
		{name: "lenited past", rows: []string{verb("chuir", "Mood=Ind|Number=Sing|Person=1|Tense=Past")}, index: 1, feat: "Form", facet: "lenition"},
		{name: "unlenited past", rows: []string{verb("cuir", "Mood=Ind|Number=Sing|Person=1|Tense=Past")}, index: 1, feat: "Form", facet: "lenition", want: violation},
		{name: "unlenited conditional", rows: []string{verb("cuirfeadh", "Mood=Cnd")}, index: 1, feat: "Form", facet: "lenition", want: violation},
		{name: "eclipsed after an", rows: afterInterrogative("gcuireann"), index: 2, feat: "Form", facet: "eclipsis"},
		{name: "unmutated after an", rows: afterInterrogative("cuireann"), index: 2, feat: "Form", facet: "eclipsis", want: violation},
		{name: "relative particle", rows: relative("Form=Direct|PartType=Vb|PronType=Rel"), index: 1, feat: "PronType"},
		{name: "relative particle without PronType", rows: relative("Form=Direct|PartType=Vb"), index: 1, feat: "PronType", want: violation},
		{name: "níor type", rows: []string{
			row("1", "níor", "níor", "PART", "Vb", "PartType=Cmpl|Tense=Past", "2", "mark:prt", "_", "_"),
			row("2", "chuir", "cuir", "VERB", "PAST", "Mood=Ind|Tense=Past", "0", "root", "_", "_"),
		}, index: 1, feat: "PartType", want: violation},
		{name: "copula before vowel", rows: copula("b'", "Form=VF|Tense=Past|VerbForm=Cop"), index: 1, feat: "Form", facet: "vowel form"},
		{name: "copula before vowel without VF", rows: copula("b'", "Tense=Past|VerbForm=Cop"), index: 1, feat: "Form", facet: "vowel form", want: violation},
		{name: "VF on ba", rows: copula("ba", "Form=VF|Tense=Past|VerbForm=Cop"), index: 1, feat: "Form", facet: "vowel form", want: violation},
	})
}

func TestPrefixTOnDeterminer(t *testing.T) {
	phrase := func(form string) []string {
		return []string{
			row("1", "an", "an", "DET", "Art", "Definite=Def|Number=Sing|PronType=Art", "3", "det", "_", "_"),
			row("2", form, "aon", "DET", "Det", "PronType=Ind", "3", "det", "_", "_"),
			row("3", "fhear", "fear", "NOUN", "Noun", "Case=NomAcc|Definite=Def|Gender=Masc|Number=Sing", "0", "root", "_", "_"),
		}
	}
	runFeatureCases(t, []featureCase{
		{name: "t-aon", rows: phrase("t-aon"), index: 2, feat: "XForm"},
		{name: "aon after article", rows: phrase("aon"), index: 2, feat: "XForm", want: violation},
	})
}

func TestProperNounSharesNounRules(t *testing.T) {
	s := readSentence(t, genitiveProperNoun("Case=NomAcc|Definite=Def|Gender=Fem|Number=Sing")...)
	assert.Empty(t, checkSentence(Table(), s))

	tbl := Table()
	for _, feat := range []string{"Case", "Gender", "NounType", "Number", "XForm"} {
		_, ok := tbl.Lookup("PROPN", feat)
		assert.True(t, ok, feat)
	}
}

func TestCompoundPrepositions(t *testing.T) {
	assert.True(t, isCompoundPreposition("i ndiaidh"))
	assert.True(t, isCompoundPreposition("go dtí"))
	assert.False(t, isCompoundPreposition("ar an"))
	assert.True(t, unlenitedAfterAr.Contains("bord"))
	assert.False(t, unlenitedAfterThar.Contains("bord ar"))
}
