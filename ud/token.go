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

package ud

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gaelcheck/feats"
)

const (
	NumFields      = 10
	FieldSeparator = "\t"

	DeprelConj     = "conj"
	DeprelCompound = "compound"
	DeprelNmod     = "nmod"

	rootForm = "ROOT"
)

// column positions
const (
	colIndex = iota
	colForm
	colLemma
	colUPOS
	colXPOS
	colFeats
	colHead
	colDeprel
	colDeps
	colMisc
)

var (
	ErrFieldCount       = errors.New("invalid number of fields")
	ErrInvalidIndex     = errors.New("invalid token index")
	ErrInvalidHead      = errors.New("invalid head index")
	ErrMultiwordAccess  = errors.New("index or head accessed on a multiword token")
	ErrFrozenToken      = errors.New("features of a token cannot be changed after its construction")
	ErrDetachedToken    = errors.New("token is not attached to a sentence")
	ErrGraphNotResolved = errors.New("graph links not resolved yet")

	multiwordIndex = regexp.MustCompile(`^[0-9]+-[0-9]+$`)
	emptyNodeIndex = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)
)

// Autosetter sets the language-specific always-applied
// features (mutation markers) of a freshly constructed token.
// It is called exactly once per ordinary token, before the token
// is visible to any other code.
type Autosetter func(tok *Token)

// Token is a single line of a sentence. Graph relations are stored
// as positions in the arena of the owning sentence.
type Token struct {
	lineNum   int
	raw       string
	fields    [NumFields]string
	feats     feats.Features
	index     int
	headIndex int
	multiword bool
	emptyNode bool
	duplicate bool
	parseErr  error
	frozen    bool

	sent    *Sentence
	pos     int
	headPos int
	predPos int
	deps    []int
}

func parseToken(lineNum int, line string) *Token {
	tok := &Token{lineNum: lineNum, raw: line, headPos: -1, predPos: -1}
	items := strings.Split(line, FieldSeparator)
	if len(items) != NumFields {
		tok.parseErr = fmt.Errorf("%w: expected %d, found %d", ErrFieldCount, NumFields, len(items))
		return tok
	}
	copy(tok.fields[:], items)
	if multiwordIndex.MatchString(tok.fields[colIndex]) {
		tok.multiword = true
		return tok
	}
	if emptyNodeIndex.MatchString(tok.fields[colIndex]) {
		tok.emptyNode = true
		return tok
	}
	var err error
	tok.index, err = strconv.Atoi(tok.fields[colIndex])
	if err != nil || tok.index < 1 {
		tok.parseErr = fmt.Errorf("%w: '%s'", ErrInvalidIndex, tok.fields[colIndex])
		return tok
	}
	tok.headIndex, err = strconv.Atoi(tok.fields[colHead])
	if err != nil || tok.headIndex < 0 {
		tok.parseErr = fmt.Errorf("%w: '%s'", ErrInvalidHead, tok.fields[colHead])
		return tok
	}
	tok.feats, err = feats.Parse(tok.fields[colFeats])
	if err != nil {
		tok.parseErr = err
		return tok
	}
	return tok
}

// NewToken creates a token out of a serialized line and applies
// the autoset phase. A malformed line still produces a token with
// ParseError() set; such a token is skipped by graph building
// and by checks and it is written back verbatim.
func NewToken(lineNum int, line string, autoset Autosetter) *Token {
	tok := parseToken(lineNum, line)
	if tok.IsOrdinary() && autoset != nil {
		autoset(tok)
	}
	tok.frozen = true
	return tok
}

// NewRoot creates the synthetic root pseudo-token.
func NewRoot() *Token {
	tok := &Token{feats: make(feats.Features), frozen: true}
	tok.fields = [NumFields]string{"0", rootForm, "_", "_", "_", "_", "_", "_", "_", "_"}
	return tok
}

func (t *Token) LineNum() int {
	return t.lineNum
}

// Raw returns the original source line
func (t *Token) Raw() string {
	return t.raw
}

func (t *Token) ParseError() error {
	return t.parseErr
}

// IsMultiword is true for the "N-M" range lines.
func (t *Token) IsMultiword() bool {
	return t.multiword
}

// IsEmptyNode is true for enhanced-dependency "N.M" lines.
func (t *Token) IsEmptyNode() bool {
	return t.emptyNode
}

// IsDuplicate is true for a line repeating an index already
// used in the sentence. Such a line is kept out of the graph.
func (t *Token) IsDuplicate() bool {
	return t.duplicate
}

func (t *Token) IsRoot() bool {
	return t.raw == "" && t.fields[colForm] == rootForm && t.fields[colIndex] == "0"
}

// IsOrdinary tells whether the token takes part in the
// dependency graph and in checks.
func (t *Token) IsOrdinary() bool {
	return !t.multiword && !t.emptyNode && !t.duplicate && t.parseErr == nil && !t.IsRoot()
}

func (t *Token) ID() string {
	return t.fields[colIndex]
}

// Index returns the linear index of the token. Using it
// on a multiword token is a contract violation.
func (t *Token) Index() int {
	if t.multiword || t.emptyNode {
		panic(ErrMultiwordAccess)
	}
	return t.index
}

// HeadIndex returns the raw head index (0 for root).
// Using it on a multiword token is a contract violation.
func (t *Token) HeadIndex() int {
	if t.multiword || t.emptyNode {
		panic(ErrMultiwordAccess)
	}
	return t.headIndex
}

func (t *Token) Form() string {
	return t.fields[colForm]
}

func (t *Token) Lemma() string {
	return t.fields[colLemma]
}

func (t *Token) UPOS() string {
	return t.fields[colUPOS]
}

func (t *Token) XPOS() string {
	return t.fields[colXPOS]
}

// Deprel returns the dependency relation with the
// "compound" relation normalized to "nmod".
func (t *Token) Deprel() string {
	if t.fields[colDeprel] == DeprelCompound {
		return DeprelNmod
	}
	return t.fields[colDeprel]
}

func (t *Token) RawDeprel() string {
	return t.fields[colDeprel]
}

func (t *Token) Deps() string {
	return t.fields[colDeps]
}

func (t *Token) Misc() string {
	return t.fields[colMisc]
}

// Feats returns the decoded feature map. It must be treated
// as read-only.
func (t *Token) Feats() feats.Features {
	return t.feats
}

// Feature returns values of a feature (sorted) or false
// if the feature is not set.
func (t *Token) Feature(name string) ([]string, bool) {
	if t.feats == nil {
		return nil, false
	}
	return t.feats.Get(name)
}

// FirstValue returns the first value of a feature or an empty string.
func (t *Token) FirstValue(name string) string {
	if t.feats == nil {
		return ""
	}
	return t.feats.First(name)
}

func (t *Token) HasFeature(name string) bool {
	_, ok := t.Feature(name)
	return ok
}

func (t *Token) Has(name, value string) bool {
	if t.feats == nil {
		return false
	}
	return t.feats.Has(name, value)
}

// AddFeature is available only to the autoset phase.
func (t *Token) AddFeature(name, value string) {
	if t.frozen {
		panic(ErrFrozenToken)
	}
	t.feats.Add(name, value)
}

// KillFeature is available only to the autoset phase.
func (t *Token) KillFeature(name, value string) {
	if t.frozen {
		panic(ErrFrozenToken)
	}
	t.feats.Kill(name, value)
}

// ------------- graph

func (t *Token) sentence() *Sentence {
	if t.sent == nil {
		panic(ErrDetachedToken)
	}
	return t.sent
}

// Head returns the governing token. The root is its own head.
func (t *Token) Head() *Token {
	if t.multiword || t.emptyNode {
		panic(ErrMultiwordAccess)
	}
	s := t.sentence()
	if t.headPos < 0 {
		panic(ErrGraphNotResolved)
	}
	return s.tokens[t.headPos]
}

// Predecessor returns the previous ordinary token,
// the root for the first one. The root is its own predecessor.
func (t *Token) Predecessor() *Token {
	s := t.sentence()
	if t.predPos < 0 {
		panic(ErrGraphNotResolved)
	}
	return s.tokens[t.predPos]
}

func (t *Token) Dependents() []*Token {
	s := t.sentence()
	ans := make([]*Token, len(t.deps))
	for i, p := range t.deps {
		ans[i] = s.tokens[p]
	}
	return ans
}

// HasDependent tests whether any dependent matches fn.
func (t *Token) HasDependent(fn func(d *Token) bool) bool {
	s := t.sentence()
	for _, p := range t.deps {
		if fn(s.tokens[p]) {
			return true
		}
	}
	return false
}

// UltimateHead is Head() recursing through coordinations so
// a conjunct sees the governor of the whole coordination.
func (t *Token) UltimateHead() *Token {
	curr := t
	for i := 0; i < len(t.sentence().tokens); i++ {
		if curr.Deprel() != DeprelConj {
			return curr.Head()
		}
		curr = curr.Head()
	}
	return curr.Head()
}

// UltimateDeprel is Deprel() of the top conjunct of a coordination.
func (t *Token) UltimateDeprel() string {
	curr := t
	for i := 0; i < len(t.sentence().tokens); i++ {
		if curr.Deprel() != DeprelConj {
			return curr.Deprel()
		}
		curr = curr.Head()
	}
	return curr.Deprel()
}

// Sentence returns the owning sentence
func (t *Token) Sentence() *Sentence {
	return t.sent
}

// ------------- convenience predicates

func (t *Token) IsNominal() bool {
	return t.UPOS() == "NOUN" || t.UPOS() == "PROPN"
}

func (t *Token) IsAnyNominal() bool {
	return t.IsNominal() || t.UPOS() == "PRON"
}

// IsInPP tells whether the token has a preposition attached
// via the "case" relation.
func (t *Token) IsInPP() bool {
	return t.HasDependent(func(d *Token) bool {
		return d.UPOS() == "ADP" && d.Deprel() == "case"
	})
}

// LowerForm is a plain lowercased surface form
func (t *Token) LowerForm() string {
	return strings.ToLower(t.Form())
}

// Descriptor provides a compact identification of the token
// for reports. It works for multiword tokens too.
func (t *Token) Descriptor() string {
	return fmt.Sprintf("(%s,%s,%s,%s)", t.ID(), t.Form(), t.Lemma(), t.UPOS())
}

func (t *Token) String() string {
	return t.Descriptor()
}

// Line provides the serialized CoNLL-U line with canonical features.
// Lines kept out of the graph (multiword, empty-node, duplicate
// and malformed ones) are returned verbatim.
func (t *Token) Line() string {
	if !t.IsOrdinary() {
		if t.raw != "" {
			return t.raw
		}
		return strings.Join(t.fields[:], FieldSeparator)
	}
	fields := t.fields
	fields[colFeats] = t.feats.String()
	return strings.Join(fields[:], FieldSeparator)
}
