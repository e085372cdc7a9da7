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
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	db "github.com/czcorpus/vert-tagextract/v3/db"
	"github.com/go-sql-driver/mysql"
)

var (
	ErrMissingConf = errors.New("missing database configuration")
)

type Adapter struct {
	db     *sql.DB
	conf   db.Conf
	dbName string
	isBulk bool
}

func (a *Adapter) DB() *sql.DB {
	return a.db
}

func (a *Adapter) DBName() string {
	return a.dbName
}

func (a *Adapter) Conf() db.Conf {
	return a.conf
}

// IsBulk tells whether the session has been tuned
// for storing large amounts of rows.
func (a *Adapter) IsBulk() bool {
	return a.isBulk
}

func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

// DSN creates a MySQL data source name out of a configuration
func DSN(conf db.Conf) string {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Host
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	mconf.Params = map[string]string{"autocommit": "true"}
	return mconf.FormatDSN()
}

func OpenDB(conf *db.Conf) (*Adapter, error) {
	if conf == nil || conf.Host == "" {
		return nil, ErrMissingConf
	}
	sqlDB, err := sql.Open("mysql", DSN(*conf))
	if err != nil {
		return nil, fmt.Errorf("failed to open report database: %w", err)
	}
	return &Adapter{db: sqlDB, dbName: conf.Name, conf: *conf}, nil
}

// OpenBulkDB creates an Adapter with a single connection session
// suitable for inserting many diagnostics at once (unique checks
// and foreign key checks disabled). The session settings apply
// to one connection only so the pool is limited to it.
func OpenBulkDB(conf *db.Conf) (*Adapter, error) {
	a, err := OpenDB(conf)
	if err != nil {
		return nil, err
	}
	a.isBulk = true
	a.db.SetMaxOpenConns(1)
	for _, q := range []string{
		"SET SESSION unique_checks = 0",
		"SET SESSION foreign_key_checks = 0",
	} {
		if _, err = a.db.Exec(q); err != nil {
			a.db.Close()
			return nil, fmt.Errorf("failed to tune report database session: %w", err)
		}
	}
	return a, nil
}
