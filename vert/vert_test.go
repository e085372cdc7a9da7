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

package vert

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gaelcheck/langs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(fields ...string) string {
	return strings.Join(fields, "\t")
}

func TestLoadFile(t *testing.T) {
	data := strings.Join([]string{
		`<doc id="d1">`,
		`<s id="v1">`,
		row("1", "bean", "bean", "NOUN", "Noun", "Case=NomAcc|Gender=Fem|Number=Sing", "0", "root", "_", "_"),
		row("2", "mhór", "mór", "ADJ", "Adj", "Case=NomAcc|Gender=Fem|Number=Sing", "1", "amod", "_", "_"),
		`</s>`,
		`<s id="v2">`,
		row("1", "bád", "bád", "NOUN", "Noun", "Case=NomAcc|Gender=Masc|Number=Sing", "0", "root", "_", "_"),
		`</s>`,
		`</doc>`,
	}, "\n") + "\n"
	path := filepath.Join(t.TempDir(), "sample.vert")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	lang, err := langs.Get("ga")
	require.NoError(t, err)
	corp, err := LoadFile(context.Background(), path, Conf{}, lang, t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 2, corp.NumSentences())
	assert.Equal(t, "v1", corp.Sentences()[0].ID)
	assert.Equal(t, "v2", corp.Sentences()[1].ID)
	assert.Equal(t, 3, corp.NumTokens())

	adj, ok := corp.Sentences()[0].TokenByIndex(2)
	require.True(t, ok)
	assert.Equal(t, "amod", adj.Deprel())
	// autoset
	assert.True(t, adj.Has("Form", "Len"))
}

func TestConfDefaults(t *testing.T) {
	conf := Conf{}.withDefaults()
	assert.Equal(t, "s", conf.SentenceStruct)
	assert.Equal(t, "id", conf.IDAttr)
	conf = Conf{SentenceStruct: "sent"}.withDefaults()
	assert.Equal(t, "sent", conf.SentenceStruct)
}
