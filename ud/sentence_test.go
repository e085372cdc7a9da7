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

package ud

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(fields ...string) string {
	return strings.Join(fields, "\t")
}

var sampleSentence = strings.Join([]string{
	"# sent_id = s1",
	"# text = Bhí an fear agus an bhean sa teach",
	row("1", "Bhí", "bí", "VERB", "PAST", "Tense=Past", "0", "root", "_", "_"),
	row("2", "an", "an", "DET", "Art", "Definite=Def|Number=Sing|PronType=Art", "3", "det", "_", "_"),
	row("3", "fear", "fear", "NOUN", "Noun", "Case=NomAcc|Gender=Masc|Number=Sing", "1", "nsubj", "_", "_"),
	row("4", "agus", "agus", "CCONJ", "Coord", "_", "6", "cc", "_", "_"),
	row("5", "an", "an", "DET", "Art", "Definite=Def|Number=Sing|PronType=Art", "6", "det", "_", "_"),
	row("6", "bhean", "bean", "NOUN", "Noun", "Case=NomAcc|Form=Len|Gender=Fem|Number=Sing", "3", "conj", "_", "_"),
	row("7-8", "sa", "_", "_", "_", "_", "_", "_", "_", "_"),
	row("7", "san", "i", "ADP", "Simp", "_", "9", "case", "_", "_"),
	row("8", "an", "an", "DET", "Art", "Definite=Def|Number=Sing|PronType=Art", "9", "det", "_", "_"),
	row("9", "teach", "teach", "NOUN", "Noun", "Case=NomAcc|Gender=Masc|Number=Sing", "1", "obl", "_", "_"),
}, "\n") + "\n\n"

func readOne(t *testing.T, data string, autoset Autosetter) *Sentence {
	rdr := NewReader(strings.NewReader(data), autoset)
	s, err := rdr.Next()
	require.NoError(t, err)
	return s
}

func TestReadSentenceMetadata(t *testing.T) {
	s := readOne(t, sampleSentence, nil)
	assert.Equal(t, "s1", s.ID)
	assert.Len(t, s.Comments, 2)
	assert.Len(t, s.Tokens(), 10)
	assert.Len(t, s.OrdinaryTokens(), 9)
	assert.Equal(t, StateGraphLinked, s.State())
	assert.Empty(t, s.Issues())
}

func TestGraphInvariant(t *testing.T) {
	s := readOne(t, sampleSentence, nil)
	for _, tok := range s.OrdinaryTokens() {
		head := tok.Head()
		assert.Same(t, s, head.Sentence())
		assert.Contains(t, head.Dependents(), tok)
	}
	first := s.OrdinaryTokens()[0]
	assert.True(t, first.Predecessor().IsRoot())
	assert.True(t, first.Head().IsRoot())
}

func TestPredecessorSkipsMultiword(t *testing.T) {
	s := readOne(t, sampleSentence, nil)
	tok, ok := s.TokenByIndex(7)
	require.True(t, ok)
	assert.Equal(t, 6, tok.Predecessor().Index())
}

func TestMultiwordExcludedFromGraph(t *testing.T) {
	s := readOne(t, sampleSentence, nil)
	mw := s.Tokens()[6]
	assert.True(t, mw.IsMultiword())
	assert.False(t, mw.IsOrdinary())
	assert.Panics(t, func() { mw.Index() })
	assert.Panics(t, func() { mw.HeadIndex() })
	for _, tok := range s.OrdinaryTokens() {
		assert.NotContains(t, tok.Dependents(), mw)
	}
}

func TestUltimateHeadThroughConj(t *testing.T) {
	s := readOne(t, sampleSentence, nil)
	bhean, _ := s.TokenByIndex(6)
	assert.Equal(t, 3, bhean.Head().Index())
	assert.Equal(t, 1, bhean.UltimateHead().Index())
	assert.Equal(t, "nsubj", bhean.UltimateDeprel())
}

func TestUltimateHeadLongChain(t *testing.T) {
	data := strings.Join([]string{
		row("1", "a", "a", "NOUN", "_", "_", "0", "root", "_", "_"),
		row("2", "b", "b", "NOUN", "_", "_", "1", "obj", "_", "_"),
		row("3", "c", "c", "NOUN", "_", "_", "2", "conj", "_", "_"),
		row("4", "d", "d", "NOUN", "_", "_", "3", "conj", "_", "_"),
		row("5", "e", "e", "NOUN", "_", "_", "4", "conj", "_", "_"),
	}, "\n")
	s := readOne(t, data, nil)
	e, _ := s.TokenByIndex(5)
	b, _ := s.TokenByIndex(2)
	assert.Same(t, b.Head(), e.UltimateHead())
	assert.Equal(t, "obj", e.UltimateDeprel())
	// zero conj steps
	assert.Same(t, b.Head(), b.UltimateHead())
}

func TestConjCycleTerminates(t *testing.T) {
	data := strings.Join([]string{
		row("1", "a", "a", "NOUN", "_", "_", "2", "conj", "_", "_"),
		row("2", "b", "b", "NOUN", "_", "_", "1", "conj", "_", "_"),
	}, "\n")
	s := readOne(t, data, nil)
	a, _ := s.TokenByIndex(1)
	assert.NotPanics(t, func() { a.UltimateHead() })
	assert.Equal(t, DeprelConj, a.UltimateDeprel())
}

func TestUnresolvedHeadAttachedToRoot(t *testing.T) {
	data := strings.Join([]string{
		"# sent_id = broken",
		row("1", "a", "a", "NOUN", "_", "_", "0", "root", "_", "_"),
		row("2", "b", "b", "NOUN", "_", "_", "7", "nmod", "_", "_"),
	}, "\n")
	s := readOne(t, data, nil)
	b, _ := s.TokenByIndex(2)
	assert.True(t, b.Head().IsRoot())
	assert.Contains(t, s.Root().Dependents(), b)
	require.Len(t, s.Issues(), 1)
	assert.Equal(t, IssueStructural, s.Issues()[0].Kind)
	assert.Contains(t, s.Issues()[0].Message, "broken")
	assert.Equal(t, 3, s.Issues()[0].LineNum)
}

func TestMalformedLineKept(t *testing.T) {
	bad := "1\tbroken\tline"
	data := strings.Join([]string{
		bad,
		row("2", "b", "b", "NOUN", "_", "_", "0", "root", "_", "_"),
		row("3", "c", "c", "NOUN", "_", "Case", "2", "nmod", "_", "_"),
	}, "\n")
	s := readOne(t, data, nil)
	require.Len(t, s.Issues(), 2)
	assert.Equal(t, IssueParse, s.Issues()[0].Kind)
	assert.Equal(t, 1, s.Issues()[0].LineNum)
	assert.Equal(t, 3, s.Issues()[1].LineNum)
	assert.Len(t, s.OrdinaryTokens(), 1)

	var buff bytes.Buffer
	assert.NoError(t, s.WriteConllu(&buff))
	lines := strings.Split(buff.String(), "\n")
	assert.Equal(t, bad, lines[0])
}

func TestDuplicateIndexKeptOutOfGraph(t *testing.T) {
	dup := row("2", "c", "c", "NOUN", "_", "Case=Gen", "1", "nmod", "_", "_")
	data := strings.Join([]string{
		row("1", "a", "a", "NOUN", "_", "_", "0", "root", "_", "_"),
		row("2", "b", "b", "NOUN", "_", "_", "1", "nmod", "_", "_"),
		dup,
		row("3", "d", "d", "ADJ", "_", "_", "2", "amod", "_", "_"),
	}, "\n")
	s := readOne(t, data, nil)
	require.Len(t, s.Issues(), 1)
	assert.Equal(t, IssueStructural, s.Issues()[0].Kind)
	assert.Equal(t, 3, s.Issues()[0].LineNum)

	second := s.Tokens()[2]
	assert.True(t, second.IsDuplicate())
	assert.False(t, second.IsOrdinary())
	assert.Len(t, s.OrdinaryTokens(), 3)

	b, _ := s.TokenByIndex(2)
	d, _ := s.TokenByIndex(3)
	assert.Same(t, b, d.Head())
	assert.Same(t, b, d.Predecessor())
	a, _ := s.TokenByIndex(1)
	assert.NotContains(t, a.Dependents(), second)

	var buff bytes.Buffer
	require.NoError(t, s.WriteConllu(&buff))
	assert.Equal(t, dup, strings.Split(buff.String(), "\n")[2])
}

func TestCompoundNormalized(t *testing.T) {
	data := row("1", "a", "a", "NOUN", "_", "_", "0", "compound", "_", "_")
	s := readOne(t, data, nil)
	tok := s.OrdinaryTokens()[0]
	assert.Equal(t, DeprelNmod, tok.Deprel())
	assert.Equal(t, DeprelCompound, tok.RawDeprel())
}

func TestTrailingSentenceWithoutBlankLine(t *testing.T) {
	data := sampleSentence + row("1", "x", "x", "X", "_", "_", "0", "root", "_", "_")
	rdr := NewReader(strings.NewReader(data), nil)
	var cnt int
	err := rdr.ReadAll(func(s *Sentence) error {
		cnt++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, cnt)
	_, err = rdr.Next()
	assert.Equal(t, io.EOF, err)
}

func TestAutosetRunsOnceAndFreezes(t *testing.T) {
	var calls int
	autoset := func(tok *Token) {
		calls++
		tok.AddFeature("Form", "Ecl")
	}
	s := readOne(t, sampleSentence, autoset)
	assert.Equal(t, 9, calls)
	tok := s.OrdinaryTokens()[0]
	assert.True(t, tok.Has("Form", "Ecl"))
	assert.Panics(t, func() { tok.AddFeature("Form", "Len") })
	assert.Panics(t, func() { tok.KillFeature("Form", "Ecl") })
}

func TestEmitReserializesAndKeepsMultiword(t *testing.T) {
	autoset := func(tok *Token) {
		if tok.Form() == "bhean" {
			tok.AddFeature("XForm", "Hidden")
		}
	}
	s := readOne(t, sampleSentence, autoset)
	var buff bytes.Buffer
	require.NoError(t, s.WriteConllu(&buff))
	assert.Equal(t, sampleSentence, buff.String())
	assert.Equal(t, StateEmitted, s.State())
}

func TestStateMachine(t *testing.T) {
	s := readOne(t, sampleSentence, nil)
	assert.ErrorIs(t, s.MarkReported(), ErrInvalidState)
	assert.ErrorIs(t, s.Link(), ErrInvalidState)
	assert.NoError(t, s.MarkChecked())
	assert.NoError(t, s.MarkReported())
	assert.ErrorIs(t, s.WriteConllu(io.Discard), ErrInvalidState)
}

func TestDescriptor(t *testing.T) {
	s := readOne(t, sampleSentence, nil)
	assert.Equal(t, "(6,bhean,bean,NOUN)", s.Tokens()[5].Descriptor())
	assert.Equal(t, "(7-8,sa,_,_)", s.Tokens()[6].Descriptor())
}

func TestIsInPP(t *testing.T) {
	s := readOne(t, sampleSentence, nil)
	teach, _ := s.TokenByIndex(9)
	fear, _ := s.TokenByIndex(3)
	assert.True(t, teach.IsInPP())
	assert.False(t, fear.IsInPP())
}
