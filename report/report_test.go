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

package report

import (
	"bytes"
	"strings"
	"testing"

	"gaelcheck/check"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	d1 = check.Diagnostic{
		Category: check.Violation, LineNum: 3, Token: "(2,mór,mór,ADJ)",
		Feature: "Form", Message: "Adjective should be lenited"}
	d2 = check.Diagnostic{
		Category: check.Lexicon, LineNum: 4, Token: "(3,xyz,xyz,NOUN)",
		Message: "Surface token not in lexicon"}
	d3 = check.Diagnostic{
		Category: check.CoverageGap, LineNum: 10, Token: "(1,bean,bean,NOUN)",
		Message: "no rule covers feature Reflex for POS NOUN"}
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := WriteText(&buf, [][]check.Diagnostic{{d1, d2}, {}, nil, {d3}})
	require.NoError(t, err)
	assert.Equal(
		t,
		"[Line 3 (2,mór,mór,ADJ)]: Adjective should be lenited\n"+
			"[Line 4 (3,xyz,xyz,NOUN)]: Surface token not in lexicon\n"+
			"\n"+
			"[Line 10 (1,bean,bean,NOUN)]: no rule covers feature Reflex for POS NOUN\n",
		buf.String(),
	)
}

func TestWriteTextNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, [][]check.Diagnostic{{}, {}}))
	assert.Empty(t, buf.String())
}

func TestJSONCounts(t *testing.T) {
	rep := New("ga")
	rep.AddSource("a.conllu", 2, 7)
	rep.Add(d1, d2, d3)
	rep.Add(d1)
	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	var decoded struct {
		Language     string             `json:"language"`
		NumSentences int                `json:"numSentences"`
		Counts       map[string]int     `json:"counts"`
		Diagnostics  []check.Diagnostic `json:"diagnostics"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ga", decoded.Language)
	assert.Equal(t, 2, decoded.NumSentences)
	assert.Equal(t, 2, decoded.Counts["violation"])
	assert.Equal(t, 1, decoded.Counts["coverageGap"])
	assert.Equal(t, 0, decoded.Counts["parse"])
	require.Len(t, decoded.Diagnostics, 4)
	assert.Equal(t, check.Lexicon, decoded.Diagnostics[1].Category)
}

func TestSummary(t *testing.T) {
	rep := New("gd")
	rep.AddSource("b.conllu", 5, 40)
	rep.Add(d1, d3)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, NewPrinter("en"), rep))
	out := buf.String()
	assert.Contains(t, out, "Sentences checked: 5")
	assert.Contains(t, out, "Diagnostics total: 2")
	assert.Contains(t, out, "  coverage gaps: 1")

	buf.Reset()
	require.NoError(t, WriteSummary(&buf, NewPrinter("cs"), rep))
	out = buf.String()
	assert.True(t, strings.HasPrefix(out, "Kontrola dat (gd)"))
	assert.Contains(t, out, "Zkontrolováno vět: 5")
	assert.Contains(t, out, "  porušení pravidel: 1")
}
