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
	"strings"
)

const (
	CommentPrefix  = "#"
	sentIDPrefix   = "# sent_id = "
	sentIDPrefixNS = "# sent_id="
)

var (
	ErrInvalidState = errors.New("invalid sentence state transition")
)

// State represents a lifecycle phase of a sentence
type State int

const (
	StateUnloaded State = iota
	StateStreaming
	StateGraphLinked
	StateChecked
	StateEmitted
	StateReported
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateStreaming:
		return "streaming"
	case StateGraphLinked:
		return "graph-linked"
	case StateChecked:
		return "checked"
	case StateEmitted:
		return "emitted"
	case StateReported:
		return "reported"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// IssueKind distinguishes problems found while building a sentence
type IssueKind int

const (
	IssueParse IssueKind = iota
	IssueStructural
)

// Issue is a problem with input data detected during
// token parsing or graph linking.
type Issue struct {
	Kind    IssueKind
	LineNum int
	Token   *Token
	Message string
}

// Sentence owns its tokens in an arena with the synthetic
// root at position 0. All graph relations are arena positions.
type Sentence struct {
	ID       string
	Comments []string
	tokens   []*Token
	index    map[int]int
	issues   []Issue
	state    State
}

// NewSentence creates an empty sentence in the Unloaded state.
func NewSentence() *Sentence {
	root := NewRoot()
	s := &Sentence{
		tokens: []*Token{root},
		index:  map[int]int{0: 0},
	}
	root.sent = s
	root.headPos = 0
	root.predPos = 0
	return s
}

func (s *Sentence) State() State {
	return s.state
}

func (s *Sentence) transit(from []State, to State) error {
	for _, f := range from {
		if s.state == f {
			s.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidState, s.state, to)
}

// MarkChecked moves a linked sentence to the Checked state.
func (s *Sentence) MarkChecked() error {
	return s.transit([]State{StateGraphLinked}, StateChecked)
}

// MarkReported moves a checked sentence to the Reported state.
func (s *Sentence) MarkReported() error {
	return s.transit([]State{StateChecked}, StateReported)
}

func (s *Sentence) addComment(line string) error {
	if err := s.transit([]State{StateUnloaded, StateStreaming}, StateStreaming); err != nil {
		return err
	}
	s.Comments = append(s.Comments, line)
	if strings.HasPrefix(line, sentIDPrefix) {
		s.ID = strings.TrimSpace(line[len(sentIDPrefix):])

	} else if strings.HasPrefix(line, sentIDPrefixNS) {
		s.ID = strings.TrimSpace(line[len(sentIDPrefixNS):])
	}
	return nil
}

func (s *Sentence) addToken(tok *Token) error {
	if err := s.transit([]State{StateUnloaded, StateStreaming}, StateStreaming); err != nil {
		return err
	}
	tok.sent = s
	tok.pos = len(s.tokens)
	s.tokens = append(s.tokens, tok)
	if tok.parseErr != nil {
		s.issues = append(s.issues, Issue{
			Kind:    IssueParse,
			LineNum: tok.lineNum,
			Token:   tok,
			Message: fmt.Sprintf("Malformed line: %s", tok.parseErr),
		})
		return nil
	}
	if tok.IsOrdinary() {
		if _, ok := s.index[tok.index]; ok {
			tok.duplicate = true
			s.issues = append(s.issues, Issue{
				Kind:    IssueStructural,
				LineNum: tok.lineNum,
				Token:   tok,
				Message: fmt.Sprintf(
					"Problem with sentence %s: duplicate token index %d", s.displayID(), tok.index),
			})
			return nil
		}
		s.index[tok.index] = tok.pos
	}
	return nil
}

func (s *Sentence) displayID() string {
	if s.ID == "" {
		return "?"
	}
	return s.ID
}

// Link resolves heads, predecessors and dependents of all
// ordinary tokens. An unresolvable head produces a structural
// issue and the token is attached to the root.
func (s *Sentence) Link() error {
	if err := s.transit([]State{StateStreaming, StateUnloaded}, StateGraphLinked); err != nil {
		return err
	}
	prev := 0
	for _, tok := range s.tokens[1:] {
		if !tok.IsOrdinary() {
			continue
		}
		hp, ok := s.index[tok.headIndex]
		if !ok || hp == tok.pos {
			s.issues = append(s.issues, Issue{
				Kind:    IssueStructural,
				LineNum: tok.lineNum,
				Token:   tok,
				Message: fmt.Sprintf(
					"Problem with sentence %s: head index %d cannot be resolved", s.displayID(), tok.headIndex),
			})
			hp = 0
		}
		tok.headPos = hp
		s.tokens[hp].deps = append(s.tokens[hp].deps, tok.pos)
		tok.predPos = prev
		prev = tok.pos
	}
	return nil
}

func (s *Sentence) Root() *Token {
	return s.tokens[0]
}

// Tokens returns all the lines of the sentence in document
// order (multiword and malformed included, root excluded).
func (s *Sentence) Tokens() []*Token {
	return s.tokens[1:]
}

// OrdinaryTokens returns tokens taking part in the graph
func (s *Sentence) OrdinaryTokens() []*Token {
	ans := make([]*Token, 0, len(s.tokens))
	for _, t := range s.tokens[1:] {
		if t.IsOrdinary() {
			ans = append(ans, t)
		}
	}
	return ans
}

// TokenByIndex finds an ordinary token by its linear index
// (0 returns the root).
func (s *Sentence) TokenByIndex(idx int) (*Token, bool) {
	p, ok := s.index[idx]
	if !ok {
		return nil, false
	}
	return s.tokens[p], true
}

// Issues returns parsing and structural problems.
func (s *Sentence) Issues() []Issue {
	return s.issues
}

// IsEmpty is true for a sentence without any comments and lines.
func (s *Sentence) IsEmpty() bool {
	return len(s.tokens) == 1 && len(s.Comments) == 0
}

// FirstLine returns the line number of the first token line or 0
func (s *Sentence) FirstLine() int {
	if len(s.tokens) > 1 {
		return s.tokens[1].lineNum
	}
	return 0
}
