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
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	maxLineSize = 1024 * 1024
)

// Builder streams lines of a single sentence. Once Finish
// is called, the sentence is linked and the builder is reset.
type Builder struct {
	autoset Autosetter
	curr    *Sentence
}

func NewBuilder(autoset Autosetter) *Builder {
	return &Builder{autoset: autoset, curr: NewSentence()}
}

func (b *Builder) AddComment(line string) error {
	return b.curr.addComment(line)
}

func (b *Builder) AddLine(lineNum int, line string) error {
	return b.curr.addToken(NewToken(lineNum, line, b.autoset))
}

// HasContent tells whether anything has been streamed into
// the current sentence.
func (b *Builder) HasContent() bool {
	return !b.curr.IsEmpty()
}

// Finish links the current sentence and returns it. The builder
// starts a new sentence afterwards.
func (b *Builder) Finish() (*Sentence, error) {
	s := b.curr
	b.curr = NewSentence()
	if err := s.Link(); err != nil {
		return nil, fmt.Errorf("failed to finish sentence: %w", err)
	}
	return s, nil
}

// Reader reads CoNLL-U sentences one by one.
type Reader struct {
	scanner *bufio.Scanner
	builder *Builder
	lineNum int
}

func NewReader(r io.Reader, autoset Autosetter) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: sc, builder: NewBuilder(autoset)}
}

// LineNum returns the number of lines read so far
func (r *Reader) LineNum() int {
	return r.lineNum
}

// Next returns the next linked sentence or io.EOF. A final
// sentence without a trailing blank line is returned too.
func (r *Reader) Next() (*Sentence, error) {
	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimRight(r.scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if r.builder.HasContent() {
				return r.builder.Finish()
			}
			continue
		}
		var err error
		if strings.HasPrefix(line, CommentPrefix) {
			err = r.builder.AddComment(line)

		} else {
			err = r.builder.AddLine(r.lineNum, line)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read CoNLL-U data: %w", err)
	}
	if r.builder.HasContent() {
		return r.builder.Finish()
	}
	return nil, io.EOF
}

// ReadAll reads all sentences calling fn for each of them
func (r *Reader) ReadAll(fn func(s *Sentence) error) error {
	for {
		s, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
	}
}
