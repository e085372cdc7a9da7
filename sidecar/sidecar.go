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

// Package sidecar handles pre-approval ("sic") files. Each row
// of such a file contains a line number of the checked CoNLL-U file
// and a feature name which is known to be correct on that line
// even if rules say otherwise.
package sidecar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	DefaultDir = "sic"
	Suffix     = ".sic"
)

var (
	ErrMalformedRow = errors.New("malformed sidecar row")
)

// Approvals maps a source line number to approved features
type Approvals map[int]map[string]bool

// IsApproved tells whether a feature on a line has been approved.
// A nil value approves nothing.
func (a Approvals) IsApproved(lineNum int, feat string) bool {
	if a == nil {
		return false
	}
	return a[lineNum][feat]
}

func (a Approvals) Add(lineNum int, feat string) {
	if _, ok := a[lineNum]; !ok {
		a[lineNum] = make(map[string]bool)
	}
	a[lineNum][feat] = true
}

func (a Approvals) Len() int {
	var ans int
	for _, v := range a {
		ans += len(v)
	}
	return ans
}

// Parse reads rows "line<TAB>feature"
func Parse(r io.Reader) (Approvals, error) {
	ans := make(Approvals)
	sc := bufio.NewScanner(r)
	var rowNum int
	for sc.Scan() {
		rowNum++
		row := strings.TrimRight(sc.Text(), "\r")
		if row == "" {
			continue
		}
		items := strings.Split(row, "\t")
		if len(items) != 2 {
			return nil, fmt.Errorf("%w: row %d", ErrMalformedRow, rowNum)
		}
		lineNum, err := strconv.Atoi(items[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %s", ErrMalformedRow, rowNum, err)
		}
		ans.Add(lineNum, items[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sidecar file: %w", err)
	}
	return ans, nil
}

// PathFor derives a sidecar path for an input file,
// e.g. ga_idt-ud-train.conllu => sic/ga_idt-ud-train.sic
func PathFor(dir, inputPath string) string {
	if dir == "" {
		dir = DefaultDir
	}
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+Suffix)
}

// LoadFor loads approvals for an input file. A missing
// sidecar file is not an error, stdin ("" or "-") has none.
func LoadFor(dir, inputPath string) (Approvals, error) {
	if inputPath == "" || inputPath == "-" {
		return Approvals{}, nil
	}
	path := PathFor(dir, inputPath)
	if !fs.PathExists(path) {
		log.Debug().Str("path", path).Msg("no sidecar file found")
		return Approvals{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sidecar file %s: %w", path, err)
	}
	defer f.Close()
	ans, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load sidecar file %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("numApprovals", ans.Len()).Msg("loaded sidecar file")
	return ans, nil
}
