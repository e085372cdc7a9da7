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

// Package reportdb stores check reports in a MySQL database.
// Each stored report is a "run" identified by a UUID.
package reportdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gaelcheck/check"
	"gaelcheck/db/mysql"
	"gaelcheck/report"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	insertChunkSize = 500
)

var (
	ErrRunNotFound = errors.New("run not found")
)

// RunInfo is a stored overview of a run
type RunInfo struct {
	ID           string         `json:"id"`
	Created      time.Time      `json:"created"`
	Language     string         `json:"language"`
	Sources      string         `json:"sources"`
	NumSentences int            `json:"numSentences"`
	NumTokens    int            `json:"numTokens"`
	Counts       map[string]int `json:"counts"`
}

type Store struct {
	db          *mysql.Adapter
	tablePrefix string
}

func New(db *mysql.Adapter, tablePrefix string) *Store {
	return &Store{db: db, tablePrefix: tablePrefix}
}

func (s *Store) runTable() string {
	return fmt.Sprintf("%s_run", s.tablePrefix)
}

func (s *Store) diagTable() string {
	return fmt.Sprintf("%s_diagnostic", s.tablePrefix)
}

func (s *Store) schema() []string {
	return []string{
		fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s ("+
				"id VARCHAR(36) NOT NULL PRIMARY KEY, "+
				"created DATETIME NOT NULL, "+
				"language VARCHAR(5) NOT NULL, "+
				"sources TEXT NOT NULL, "+
				"num_sentences INT NOT NULL, "+
				"num_tokens INT NOT NULL"+
				") COLLATE utf8mb4_bin",
			s.runTable(),
		),
		fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s ("+
				"run_id VARCHAR(36) NOT NULL, "+
				"idx INT NOT NULL, "+
				"category VARCHAR(20) NOT NULL, "+
				"line_num INT NOT NULL, "+
				"token VARCHAR(255) NOT NULL, "+
				"sentence_id VARCHAR(255), "+
				"feature VARCHAR(50), "+
				"facet VARCHAR(50), "+
				"message TEXT NOT NULL, "+
				"PRIMARY KEY (run_id, idx), "+
				"FOREIGN KEY (run_id) REFERENCES %s(id) ON DELETE CASCADE"+
				") COLLATE utf8mb4_bin",
			s.diagTable(), s.runTable(),
		),
	}
}

// Init creates the tables in case they do not exist
func (s *Store) Init(ctx context.Context) error {
	for _, q := range s.schema() {
		if _, err := s.db.DB().ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to initialize report tables: %w", err)
		}
	}
	return nil
}

func (s *Store) insertDiagsSQL(numRows int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"INSERT INTO %s (run_id, idx, category, line_num, token, sentence_id, feature, facet, message) VALUES ",
		s.diagTable(),
	))
	for i := 0; i < numRows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?)")
	}
	return sb.String()
}

func diagArgs(runID string, offset int, diags []check.Diagnostic) []any {
	ans := make([]any, 0, len(diags)*9)
	for i, d := range diags {
		ans = append(
			ans, runID, offset+i, d.Category.String(), d.LineNum, d.Token,
			sql.NullString{String: d.SentenceID, Valid: d.SentenceID != ""},
			sql.NullString{String: d.Feature, Valid: d.Feature != ""},
			sql.NullString{String: d.Facet, Valid: d.Facet != ""},
			d.Message,
		)
	}
	return ans
}

// Save stores a report within a single transaction. A new run ID
// is generated and also written into the report.
func (s *Store) Save(ctx context.Context, rep *report.Report) (string, error) {
	runID := uuid.New().String()
	tx, err := s.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to store report: %w", err)
	}
	_, err = tx.ExecContext(
		ctx,
		fmt.Sprintf(
			"INSERT INTO %s (id, created, language, sources, num_sentences, num_tokens) "+
				"VALUES (?, ?, ?, ?, ?, ?)", s.runTable()),
		runID, time.Now(), rep.Language, strings.Join(rep.Sources, "\n"),
		rep.NumSentences, rep.NumTokens,
	)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("failed to store report: %w", err)
	}
	for offset := 0; offset < len(rep.Diagnostics); offset += insertChunkSize {
		chunk := rep.Diagnostics[offset:min(offset+insertChunkSize, len(rep.Diagnostics))]
		if _, err := tx.ExecContext(ctx, s.insertDiagsSQL(len(chunk)), diagArgs(runID, offset, chunk)...); err != nil {
			tx.Rollback()
			return "", fmt.Errorf("failed to store report diagnostics: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to store report: %w", err)
	}
	rep.RunID = runID
	log.Info().
		Str("runId", runID).
		Int("numDiagnostics", len(rep.Diagnostics)).
		Msg("report stored")
	return runID, nil
}

// GetRun loads an overview of a stored run including
// per-category counts.
func (s *Store) GetRun(ctx context.Context, runID string) (*RunInfo, error) {
	row := s.db.DB().QueryRowContext(
		ctx,
		fmt.Sprintf(
			"SELECT id, created, language, sources, num_sentences, num_tokens FROM %s WHERE id = ?",
			s.runTable()),
		runID,
	)
	ans := &RunInfo{Counts: make(map[string]int)}
	err := row.Scan(&ans.ID, &ans.Created, &ans.Language, &ans.Sources, &ans.NumSentences, &ans.NumTokens)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound

	} else if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	for _, c := range check.Categories {
		ans.Counts[c.String()] = 0
	}
	rows, err := s.db.DB().QueryContext(
		ctx,
		fmt.Sprintf("SELECT category, COUNT(*) FROM %s WHERE run_id = ? GROUP BY category", s.diagTable()),
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var cat string
		var cnt int
		if err := rows.Scan(&cat, &cnt); err != nil {
			return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
		}
		ans.Counts[cat] = cnt
	}
	return ans, rows.Err()
}
