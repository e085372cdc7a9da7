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

// Package rules contains the declarative building blocks
// of the morphological grammar: constraints, rules and
// per-(POS, feature) dispatch tables.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
)

const (
	// NoneValue is the pseudo-value accepting an absent feature
	NoneValue = "None"

	altSeparator = "|"
	anyValue     = ".+"
)

var (
	compiled = collections.NewConcurrentMap[string, *regexp.Regexp]()
)

func compile(expr string) *regexp.Regexp {
	if rx, ok := compiled.GetWithTest(expr); ok {
		return rx
	}
	rx := regexp.MustCompile("^(?:" + expr + ")$")
	compiled.Set(expr, rx)
	return rx
}

// Constraint specifies accepted values of a single feature.
// Accepted values are matched as a whole against an anchored
// regular expression. Constraints are immutable.
type Constraint struct {
	source      string
	expr        *regexp.Regexp
	allowAbsent bool
	optional    bool
	message     string
}

func literalAlternatives(values string) (string, bool) {
	var allowAbsent bool
	alts := make([]string, 0, 4)
	for _, v := range strings.Split(values, altSeparator) {
		if v == NoneValue {
			allowAbsent = true
			continue
		}
		if v != "" {
			alts = append(alts, regexp.QuoteMeta(v))
		}
	}
	return strings.Join(alts, altSeparator), allowAbsent
}

func newLiteral(values, msg string, optional bool) Constraint {
	expr, allowAbsent := literalAlternatives(values)
	c := Constraint{
		source:      values,
		allowAbsent: allowAbsent,
		optional:    optional,
		message:     msg,
	}
	if expr != "" {
		c.expr = compile(expr)
	}
	return c
}

// New creates a constraint out of a "|"-separated list of literal
// values. The pseudo-value None accepts an absent feature.
func New(values, msg string) Constraint {
	return newLiteral(values, msg, false)
}

// Optional is like New but the constraint is always satisfied.
// It documents values a feature may take.
func Optional(values, msg string) Constraint {
	return newLiteral(values, msg, true)
}

// Pattern creates a constraint from a regular expression
// which must match a whole value.
func Pattern(expr string, allowAbsent bool, msg string) Constraint {
	return Constraint{
		source:      expr,
		expr:        compile(expr),
		allowAbsent: allowAbsent,
		message:     msg,
	}
}

// Absent mandates the feature not to be set.
func Absent(msg string) Constraint {
	return Constraint{source: NoneValue, allowAbsent: true, message: msg}
}

// Unexplained is a permissive fallback accepting anything.
func Unexplained(msg string) Constraint {
	return Constraint{
		source:      anyValue,
		expr:        compile(anyValue),
		allowAbsent: true,
		optional:    true,
		message:     msg,
	}
}

// Satisfied tests actual values of a feature. The present argument
// is false when the token does not have the feature at all.
func (c Constraint) Satisfied(values []string, present bool) bool {
	if c.optional {
		return true
	}
	if !present || len(values) == 0 {
		return c.allowAbsent
	}
	if c.expr == nil {
		return false
	}
	for _, v := range values {
		if c.expr.MatchString(v) {
			return true
		}
	}
	return false
}

// Explains tells whether a single value is one of accepted ones.
func (c Constraint) Explains(value string) bool {
	return c.expr != nil && c.expr.MatchString(value)
}

func (c Constraint) Message() string {
	return c.message
}

func (c Constraint) IsOptional() bool {
	return c.optional
}

func (c Constraint) AllowsAbsent() bool {
	return c.allowAbsent
}

// Source returns the values or the expression the constraint
// has been created from
func (c Constraint) Source() string {
	return c.source
}

func (c Constraint) String() string {
	return fmt.Sprintf("Constraint{%s, optional: %t}", c.source, c.optional)
}

// AnySatisfied is the disjunctive test of a rule result.
func AnySatisfied(list []Constraint, values []string, present bool) bool {
	for _, c := range list {
		if c.Satisfied(values, present) {
			return true
		}
	}
	return false
}

// One is a shortcut for a single-element rule result
func One(c Constraint) []Constraint {
	return []Constraint{c}
}
