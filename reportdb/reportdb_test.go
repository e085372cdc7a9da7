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

package reportdb

import (
	"database/sql"
	"strings"
	"testing"

	"gaelcheck/check"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	s := New(nil, "gc")
	assert.Equal(t, "gc_run", s.runTable())
	assert.Equal(t, "gc_diagnostic", s.diagTable())
	schema := s.schema()
	assert.Len(t, schema, 2)
	assert.Contains(t, schema[1], "REFERENCES gc_run(id)")
}

func TestInsertSQL(t *testing.T) {
	s := New(nil, "gc")
	q := s.insertDiagsSQL(3)
	assert.True(t, strings.HasPrefix(q, "INSERT INTO gc_diagnostic "))
	assert.Equal(t, 3, strings.Count(q, "(?, ?, ?, ?, ?, ?, ?, ?, ?)"))
}

func TestDiagArgs(t *testing.T) {
	args := diagArgs("run1", 10, []check.Diagnostic{
		{Category: check.Structural, LineNum: 5, Token: "(1,a,a,X)", SentenceID: "s1", Message: "broken"},
		{Category: check.Violation, LineNum: 6, Token: "(2,b,b,X)", Feature: "Form", Message: "m"},
	})
	assert.Len(t, args, 18)
	assert.Equal(t, "run1", args[0])
	assert.Equal(t, 10, args[1])
	assert.Equal(t, "structural", args[2])
	assert.Equal(t, sql.NullString{String: "s1", Valid: true}, args[5])
	assert.Equal(t, sql.NullString{}, args[6])
	assert.Equal(t, 11, args[10])
	assert.Equal(t, sql.NullString{String: "Form", Valid: true}, args[15])
}
