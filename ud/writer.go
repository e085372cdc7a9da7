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
	"io"
)

// WriteConllu writes comments, token lines and the terminating
// blank line. The sentence must be at least linked; it ends up
// in the Emitted state.
func (s *Sentence) WriteConllu(w io.Writer) error {
	if err := s.transit([]State{StateGraphLinked, StateChecked}, StateEmitted); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, c := range s.Comments {
		bw.WriteString(c)
		bw.WriteByte('\n')
	}
	for _, t := range s.tokens[1:] {
		bw.WriteString(t.Line())
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
