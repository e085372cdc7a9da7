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

package goidelic

import (
	"strings"

	"gaelcheck/ud"

	"github.com/czcorpus/cnc-gokit/collections"
)

var (
	attributiveDeprels = []string{"amod", "flat:name", "nmod"}
)

// Attributive decides whether an adjective agrees
// with the noun it modifies.
type Attributive func(tok *ud.Token) bool

// IsAttributiveAdjective is true for an adjective following
// a nominal head (reached through coordination) it modifies,
// which is neither comparative nor superlative.
func IsAttributiveAdjective(tok *ud.Token) bool {
	if tok.UPOS() != "ADJ" {
		return false
	}
	head := tok.UltimateHead()
	return head.IsNominal() &&
		collections.SliceContains(attributiveDeprels, tok.Deprel()) &&
		tok.Index() > head.Index() &&
		!tok.Has("Degree", "Cmp") && !tok.Has("Degree", "Sup")
}

// WithExceptions composes the generic attributive test
// with a language-specific exclusion.
func WithExceptions(except func(tok *ud.Token) bool) Attributive {
	return func(tok *ud.Token) bool {
		return IsAttributiveAdjective(tok) && !except(tok)
	}
}

func IsPluralPossessive(tok *ud.Token) bool {
	return tok.HasFeature("Poss") && tok.Has("Number", "Plur")
}

// PredForm returns the lowercased surface form of the predecessor
func PredForm(tok *ud.Token) string {
	return strings.ToLower(tok.Predecessor().Form())
}

func PrecededByForm(tok *ud.Token, forms ...string) bool {
	return collections.SliceContains(forms, PredForm(tok))
}

func PrecededByLemma(tok *ud.Token, lemmas ...string) bool {
	return collections.SliceContains(lemmas, tok.Predecessor().Lemma())
}

// FormIn tests the lowercased surface form
func FormIn(tok *ud.Token, forms ...string) bool {
	return collections.SliceContains(forms, tok.LowerForm())
}

func LemmaIn(tok *ud.Token, lemmas ...string) bool {
	return collections.SliceContains(lemmas, tok.Lemma())
}

// AnyDependent tests whether a dependent satisfies fn
func AnyDependent(tok *ud.Token, fn func(d *ud.Token) bool) bool {
	return tok.HasDependent(fn)
}

// HasDependentLemma is true if a dependent has the lemma and POS
func HasDependentLemma(tok *ud.Token, lemma, upos string) bool {
	return tok.HasDependent(func(d *ud.Token) bool {
		return d.Lemma() == lemma && d.UPOS() == upos
	})
}

// IsAdjacentBefore is true if tok immediately precedes other
func IsAdjacentBefore(tok, other *ud.Token) bool {
	return !tok.IsRoot() && !other.IsRoot() && tok.Index()+1 == other.Index()
}
