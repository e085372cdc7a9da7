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

package rules

import (
	"errors"
	"fmt"
	"sort"

	"gaelcheck/ud"
)

var (
	ErrSealedTable = errors.New("rule table is sealed")
)

// Rule predicts accepted values of a feature. The result
// is a disjunction; an empty result means the rule does
// not cover the token.
type Rule func(tok *ud.Token) []Constraint

// Facet is one of phenomena multiplexed under a single
// feature key (e.g. lenition within Form). Its rule is
// evaluated against values from Domain only.
type Facet struct {
	Name   string
	Domain []string
	Rule   Rule
}

func (f Facet) owns(value string) bool {
	for _, v := range f.Domain {
		if v == value {
			return true
		}
	}
	return false
}

func (f Facet) project(values []string) []string {
	ans := make([]string, 0, len(values))
	for _, v := range values {
		if f.owns(v) {
			ans = append(ans, v)
		}
	}
	return ans
}

// Entry is a dispatch table item. Either Rule or Facets is set.
type Entry struct {
	Rule   Rule
	Facets []Facet
}

func (e Entry) IsPacked() bool {
	return len(e.Facets) > 0
}

// Key identifies a table entry
type Key struct {
	POS     string
	Feature string
}

func (k Key) String() string {
	return k.Feature + k.POS
}

// Incompatible creates the uniform rule used when no entry
// matches: the feature should not be set for the POS at all.
func Incompatible() Entry {
	return Entry{
		Rule: func(tok *ud.Token) []Constraint {
			return One(Absent(fmt.Sprintf("Feature is not compatible with POS %s", tok.UPOS())))
		},
	}
}

// Table maps (POS, feature) to rule entries. A table can be
// layered over a parent one; lookup falls back to the parent,
// then to Default. Once sealed, the table is read-only.
type Table struct {
	Name    string
	Default Entry
	entries map[Key]Entry
	parent  *Table
	sealed  bool
}

func NewTable(name string, parent *Table) *Table {
	return &Table{
		Name:    name,
		Default: Incompatible(),
		entries: make(map[Key]Entry),
		parent:  parent,
	}
}

func (t *Table) put(k Key, e Entry) {
	if t.sealed {
		panic(fmt.Errorf("%w: %s", ErrSealedTable, t.Name))
	}
	t.entries[k] = e
}

// Register adds a rule for a feature and one or more POS tags.
func (t *Table) Register(feat string, rule Rule, pos ...string) *Table {
	for _, p := range pos {
		t.put(Key{POS: p, Feature: feat}, Entry{Rule: rule})
	}
	return t
}

// RegisterPacked adds a faceted entry for a packed feature.
func (t *Table) RegisterPacked(feat, pos string, facets ...Facet) *Table {
	t.put(Key{POS: pos, Feature: feat}, Entry{Facets: facets})
	return t
}

// Seal makes the table read-only
func (t *Table) Seal() *Table {
	t.sealed = true
	return t
}

// Lookup finds an entry for a POS and feature. The second
// returned value is false if the Default entry has been used.
func (t *Table) Lookup(pos, feat string) (Entry, bool) {
	k := Key{POS: pos, Feature: feat}
	for curr := t; curr != nil; curr = curr.parent {
		if e, ok := curr.entries[k]; ok {
			return e, true
		}
	}
	return t.Default, false
}

// Keys returns all registered keys including the parent ones
// in a stable order.
func (t *Table) Keys() []Key {
	uniq := make(map[Key]bool)
	for curr := t; curr != nil; curr = curr.parent {
		for k := range curr.entries {
			uniq[k] = true
		}
	}
	ans := make([]Key, 0, len(uniq))
	for k := range uniq {
		ans = append(ans, k)
	}
	sort.Slice(ans, func(i, j int) bool {
		if ans[i].Feature == ans[j].Feature {
			return ans[i].POS < ans[j].POS
		}
		return ans[i].Feature < ans[j].Feature
	})
	return ans
}

// POSFor lists POS tags having an entry for the feature
func (t *Table) POSFor(feat string) []string {
	ans := make([]string, 0, 10)
	for _, k := range t.Keys() {
		if k.Feature == feat {
			ans = append(ans, k.POS)
		}
	}
	return ans
}
