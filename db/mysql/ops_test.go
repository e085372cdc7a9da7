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

package mysql

import (
	"testing"

	db "github.com/czcorpus/vert-tagextract/v3/db"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(db.Conf{Host: "localhost:3306", User: "gc", Password: "secret", Name: "reports"})
	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "localhost:3306", parsed.Addr)
	assert.Equal(t, "gc", parsed.User)
	assert.Equal(t, "reports", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}

func TestOpenWithoutConf(t *testing.T) {
	_, err := OpenDB(nil)
	assert.ErrorIs(t, err, ErrMissingConf)
	_, err = OpenDB(&db.Conf{})
	assert.ErrorIs(t, err, ErrMissingConf)
}

func TestOpenIsLazy(t *testing.T) {
	a, err := OpenDB(&db.Conf{Host: "127.0.0.1:1", User: "x", Name: "y"})
	require.NoError(t, err)
	assert.Equal(t, "y", a.DBName())
	assert.False(t, a.IsBulk())
	assert.NoError(t, a.Close())
}
