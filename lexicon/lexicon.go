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

// Package lexicon provides a surface -> lemma -> POS -> features
// dictionary used to spot annotations unknown to a reference
// tag dictionary.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"gaelcheck/feats"
	"gaelcheck/ud"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	numColumns = 5
)

var (
	ErrLexiconNotFound = errors.New("lexicon file not found")

	exemptPOS = []string{"PROPN", "PUNCT", "SYM", "X"}
	digit     = regexp.MustCompile(`[0-9]`)
)

type ObjectionKind int

const (
	NoObjection ObjectionKind = iota
	UnknownSurface
	UnknownLemma
	UnknownPOS
	NoMatchingFeatures
)

func (k ObjectionKind) String() string {
	switch k {
	case NoObjection:
		return "ok"
	case UnknownSurface:
		return "Surface token not in lexicon"
	case UnknownLemma:
		return "Known surface form, but lemma not in lexicon"
	case UnknownPOS:
		return "Known surface form and lemma, but not with this POS"
	case NoMatchingFeatures:
		return "No feature set in lexicon for this surface/lemma/POS matches token feats"
	}
	return fmt.Sprintf("objection(%d)", int(k))
}

// Objection is a result of a lexicon lookup
type Objection struct {
	Kind ObjectionKind
}

func (obj Objection) IsEmpty() bool {
	return obj.Kind == NoObjection
}

func (obj Objection) Message() string {
	return obj.Kind.String()
}

// Lexicon is read-only once loaded so it can be shared
// by concurrent checkers.
type Lexicon struct {
	words      map[string]map[string]map[string][]feats.Features
	numEntries int
	numSkipped int
	source     string
}

func New() *Lexicon {
	return &Lexicon{words: make(map[string]map[string]map[string][]feats.Features)}
}

// Add inserts a single entry
func (lex *Lexicon) Add(surface, lemma, pos string, values feats.Features) {
	lemmas, ok := lex.words[surface]
	if !ok {
		lemmas = make(map[string]map[string][]feats.Features)
		lex.words[surface] = lemmas
	}
	poss, ok := lemmas[lemma]
	if !ok {
		poss = make(map[string][]feats.Features)
		lemmas[lemma] = poss
	}
	poss[pos] = append(poss[pos], values)
	lex.numEntries++
}

func (lex *Lexicon) IsEmpty() bool {
	return lex == nil || len(lex.words) == 0
}

func (lex *Lexicon) NumEntries() int {
	return lex.numEntries
}

// NumSkipped returns number of malformed rows ignored during loading
func (lex *Lexicon) NumSkipped() int {
	return lex.numSkipped
}

// ReadFrom loads TSV rows "surface lemma POS XPOS feats".
// Malformed rows are skipped and counted.
func (lex *Lexicon) ReadFrom(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	var lineNum int
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < numColumns {
			lex.skip(lineNum, "invalid number of columns")
			continue
		}
		values, err := feats.Parse(fields[4])
		if err != nil {
			lex.skip(lineNum, err.Error())
			continue
		}
		lex.Add(fields[0], fields[1], fields[2], values)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read lexicon %s: %w", lex.source, err)
	}
	return nil
}

func (lex *Lexicon) skip(lineNum int, reason string) {
	lex.numSkipped++
	log.Debug().
		Str("source", lex.source).
		Int("line", lineNum).
		Str("reason", reason).
		Msg("skipping malformed lexicon row")
}

// Load reads a lexicon file.
func Load(path string) (*Lexicon, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	if !isFile {
		return nil, fmt.Errorf("%w: %s", ErrLexiconNotFound, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	defer f.Close()
	lex := New()
	lex.source = path
	if err := lex.ReadFrom(f); err != nil {
		return nil, err
	}
	if lex.numSkipped > 0 {
		log.Warn().
			Str("source", path).
			Int("numSkipped", lex.numSkipped).
			Msg("some lexicon rows were malformed and have been skipped")
	}
	log.Info().Str("source", path).Int("numEntries", lex.numEntries).Msg("lexicon loaded")
	return lex, nil
}

// isLower mimics a "has cased letters, all of them lowercase" test
func isLower(s string) bool {
	var cased bool
	for _, c := range s {
		if unicode.IsUpper(c) || unicode.IsTitle(c) {
			return false
		}
		if unicode.IsLower(c) {
			cased = true
		}
	}
	return cased
}

func isExempt(tok *ud.Token, surface string) bool {
	return collections.SliceContains(exemptPOS, tok.UPOS()) ||
		(tok.UPOS() == "NUM" && digit.MatchString(surface)) ||
		tok.Has("Typo", "Yes") ||
		tok.Has("Foreign", "Yes")
}

// Lookup tests a token against the lexicon. The lower function
// is the language specific lowercasing used when the lemma is
// lowercase but the surface is not. An empty lexicon never objects.
func (lex *Lexicon) Lookup(tok *ud.Token, lower func(string) string) Objection {
	if lex.IsEmpty() {
		return Objection{}
	}
	surface := tok.Form()
	if isLower(tok.Lemma()) && !isLower(surface) && lower != nil {
		surface = lower(surface)
	}
	if isExempt(tok, surface) {
		return Objection{}
	}
	lemmas, ok := lex.words[surface]
	if !ok {
		return Objection{Kind: UnknownSurface}
	}
	poss, ok := lemmas[tok.Lemma()]
	if !ok {
		return Objection{Kind: UnknownLemma}
	}
	entries, ok := poss[tok.UPOS()]
	if !ok {
		return Objection{Kind: UnknownPOS}
	}
	for _, entry := range entries {
		if entry.IsSubsetOf(tok.Feats()) {
			return Objection{}
		}
	}
	return Objection{Kind: NoMatchingFeatures}
}
