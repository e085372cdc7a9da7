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
	"gaelcheck/ud"
)

type FailureKind int

const (
	// FailViolation means no alternative of a prediction holds
	FailViolation FailureKind = iota

	// FailGap means no prediction covers the case
	FailGap

	// FailUnexplainedValue means a value of a packed feature
	// belongs to none of the entry facets
	FailUnexplainedValue
)

// Failure describes a single unsuccessful evaluation
// of an entry against a token.
type Failure struct {
	Kind        FailureKind
	Feature     string
	Facet       string
	Value       string
	Constraints []Constraint
}

// Messages returns distinct messages of the failed disjunction
func (f Failure) Messages() []string {
	ans := make([]string, 0, len(f.Constraints))
	seen := make(map[string]bool)
	for _, c := range f.Constraints {
		if !seen[c.Message()] {
			ans = append(ans, c.Message())
			seen[c.Message()] = true
		}
	}
	return ans
}

// Evaluate applies an entry to a token feature. Registered
// tells whether the entry comes from a table registration; when
// it does not, a failure of the fallback rule is reported
// as a coverage gap.
func Evaluate(tok *ud.Token, feat string, entry Entry, registered bool) []Failure {
	values, present := tok.Feature(feat)
	if !entry.IsPacked() {
		cs := entry.Rule(tok)
		if len(cs) == 0 {
			return []Failure{{Kind: FailGap, Feature: feat}}
		}
		if AnySatisfied(cs, values, present) {
			return nil
		}
		if !registered {
			return []Failure{{Kind: FailGap, Feature: feat, Constraints: cs}}
		}
		return []Failure{{Kind: FailViolation, Feature: feat, Constraints: cs}}
	}

	var ans []Failure
	for _, facet := range entry.Facets {
		cs := facet.Rule(tok)
		if len(cs) == 0 {
			ans = append(ans, Failure{Kind: FailGap, Feature: feat, Facet: facet.Name})
			continue
		}
		proj := facet.project(values)
		if !AnySatisfied(cs, proj, len(proj) > 0) {
			ans = append(ans, Failure{
				Kind: FailViolation, Feature: feat, Facet: facet.Name, Constraints: cs})
		}
	}
	for _, v := range values {
		var owned bool
		for _, facet := range entry.Facets {
			if facet.owns(v) {
				owned = true
				break
			}
		}
		if !owned {
			ans = append(ans, Failure{Kind: FailUnexplainedValue, Feature: feat, Value: v})
		}
	}
	return ans
}
