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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gaelcheck/report"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	unmutatedAdj = "# sent_id = t1\n" +
		"1\tbean\tbean\tNOUN\tNoun\tCase=NomAcc|Gender=Fem|Number=Sing\t0\troot\t_\t_\n" +
		"2\tmór\tmór\tADJ\tAdj\tCase=NomAcc|Gender=Fem|Number=Sing\t1\tamod\t_\t_\n\n"
)

func newTestUI(input string) (UI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return UI{In: strings.NewReader(input), Out: &out, Err: &errOut}, &out, &errOut
}

func writeInput(t *testing.T, dir, name, data string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestParseCheckArgs(t *testing.T) {
	ui, _, _ := newTestUI("")
	opts, lang, inputs, err := parseCheckArgs(
		[]string{"-json", "-workers", "2", "-format", "vert", "gd", "a.vert", "b.vert"}, ui)
	require.NoError(t, err)
	assert.True(t, opts.JSON)
	assert.True(t, opts.Report)
	assert.Equal(t, 2, opts.Workers)
	assert.Equal(t, formatVert, opts.Format)
	assert.Equal(t, "gd", lang)
	assert.Equal(t, []string{"a.vert", "b.vert"}, inputs)
}

func TestParseCheckArgsInvalidFormat(t *testing.T) {
	ui, _, errOut := newTestUI("")
	_, _, _, err := parseCheckArgs([]string{"-format", "xml", "ga"}, ui)
	assert.Error(t, err)
	assert.Contains(t, errOut.String(), "allowed values are conllu, vert")
}

func TestParseCheckArgsMissingLanguage(t *testing.T) {
	ui, _, _ := newTestUI("")
	_, _, _, err := parseCheckArgs([]string{"-r"}, ui)
	assert.Error(t, err)
}

func TestCheckFromStdin(t *testing.T) {
	ui, out, _ := newTestUI(unmutatedAdj)
	err := runCommand(context.Background(), "check", []string{"ga"}, ui)
	require.NoError(t, err)
	assert.Equal(t, unmutatedAdj, out.String())
}

func TestCheckReportMode(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "test.conllu", unmutatedAdj)
	ui, out, _ := newTestUI("")
	err := runCommand(context.Background(), "check", []string{"-r", "-sic", dir, "ga", path}, ui)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "[Line 3 (2,mór,mór,ADJ)]: "))
}

func TestCheckWithSidecar(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "test.conllu", unmutatedAdj)
	writeInput(t, dir, "test.sic", "3\tForm\n")
	ui, out, _ := newTestUI("")
	err := runCommand(context.Background(), "check", []string{"-r", "-sic", dir, "ga", path}, ui)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestCheckJSONWithGlob(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "a.conllu", unmutatedAdj)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	writeInput(t, filepath.Join(dir, "sub"), "b.conllu", unmutatedAdj)

	ui, out, errOut := newTestUI("")
	err := runCommand(
		context.Background(),
		"check",
		[]string{"-json", "-summary", "-sic", dir, "ga", filepath.Join(dir, "**", "*.conllu")},
		ui,
	)
	require.NoError(t, err)
	var rep report.Report
	require.NoError(t, sonic.Unmarshal(out.Bytes(), &rep))
	assert.Len(t, rep.Sources, 2)
	assert.Equal(t, 2, rep.NumSentences)
	assert.Equal(t, 2, rep.Counts["violation"])
	assert.Contains(t, errOut.String(), "Sentences checked: 2")
}

func TestCheckMissingInput(t *testing.T) {
	ui, _, _ := newTestUI("")
	err := runCommand(context.Background(), "check", []string{"ga", "/nonexistent/file.conllu"}, ui)
	assert.Error(t, err)
}

func TestCheckUnknownLanguage(t *testing.T) {
	ui, _, _ := newTestUI(unmutatedAdj)
	err := runCommand(context.Background(), "check", []string{"cy"}, ui)
	assert.Error(t, err)
}

func TestCheckStoreWithoutDB(t *testing.T) {
	ui, _, _ := newTestUI(unmutatedAdj)
	err := runCommand(context.Background(), "check", []string{"-store", "ga"}, ui)
	assert.ErrorIs(t, err, ErrNoReportDB)
}

func TestFeaturesCommand(t *testing.T) {
	ui, out, _ := newTestUI("")
	require.NoError(t, runCommand(context.Background(), "features", []string{"ga"}, ui))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Len(t, strings.Split(line, "\t"), 2)
	}
}

func TestVersionAndHelp(t *testing.T) {
	ui, out, _ := newTestUI("")
	require.NoError(t, runCommand(context.Background(), "version", nil, ui))
	assert.True(t, strings.HasPrefix(out.String(), "gaelcheck "))

	ui, out, _ = newTestUI("")
	require.NoError(t, runCommand(context.Background(), "help", nil, ui))
	assert.Contains(t, out.String(), "features")

	ui, out, _ = newTestUI("")
	require.NoError(t, runCommand(context.Background(), "help", []string{"check"}, ui))
	assert.Contains(t, out.String(), "-workers")
}

func TestUnknownCommand(t *testing.T) {
	ui, _, _ := newTestUI("")
	assert.Error(t, runCommand(context.Background(), "foo", nil, ui))
}
