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

package sidecar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	a, err := Parse(strings.NewReader("12\tForm\n12\tCase\n\n40\tNumber\n"))
	require.NoError(t, err)
	assert.True(t, a.IsApproved(12, "Form"))
	assert.True(t, a.IsApproved(12, "Case"))
	assert.True(t, a.IsApproved(40, "Number"))
	assert.False(t, a.IsApproved(40, "Form"))
	assert.False(t, a.IsApproved(13, "Form"))
	assert.Equal(t, 3, a.Len())
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("12 Form\n"))
	assert.ErrorIs(t, err, ErrMalformedRow)
	_, err = Parse(strings.NewReader("x\tForm\n"))
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestNilApprovesNothing(t *testing.T) {
	var a Approvals
	assert.False(t, a.IsApproved(1, "Form"))
}

func TestPathFor(t *testing.T) {
	assert.Equal(t, "sic/ga_idt-ud-dev.sic", PathFor("", "/data/ud/ga_idt-ud-dev.conllu"))
	assert.Equal(t, "/tmp/x/a.sic", PathFor("/tmp/x", "a.conllu"))
}

func TestLoadFor(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.sic"), []byte("3\tGender\n"), 0o644))
	a, err := LoadFor(dir, "/somewhere/test.conllu")
	require.NoError(t, err)
	assert.True(t, a.IsApproved(3, "Gender"))

	a, err = LoadFor(dir, "other.conllu")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())

	a, err = LoadFor(dir, "-")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
}
