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

package gv

import (
	"strings"

	"gaelcheck/goidelic"
	"gaelcheck/rules"
	"gaelcheck/ud"
)

var mutationDomain = []string{"Ecl", "HPref", "Len"}

func mutationFacet(rule rules.Rule) rules.Facet {
	return rules.Facet{Name: "mutation", Domain: mutationDomain, Rule: rule}
}

func emphasisFacet() rules.Facet {
	return rules.Facet{Name: "emphasis", Domain: []string{"Emp"}, Rule: emphatic}
}

// emphatic is aimed at NOUN and VERB
func emphatic(tok *ud.Token) []rules.Constraint {
	if nonSEmphaticEnd.MatchString(tok.LowerForm()) && !strings.HasSuffix(tok.Lemma(), "s") {
		return one(rules.New("Emp|None", "Could be an emphatic form"))
	}
	return absent("Does not look like an emphatic form")
}

func nounMutation(sh goidelic.Shared) rules.Rule {
	return func(tok *ud.Token) []rules.Constraint {
		if ans := sh.PossessiveEclipsis(tok); len(ans) > 0 {
			return ans
		}
		return one(rules.New("Ecl|HPref|Len|None", "Nouns are not checked for mutations in this context"))
	}
}

func verbMutation(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Ecl|Len|None", "Verbs can be lenited or eclipsed"))
}

// lenitionOnly serves ADJ and NUM where only Len is attested
func lenitionOnly(tok *ud.Token) []rules.Constraint {
	return one(rules.New("Len|None", "Only lenition is attested for this POS"))
}

func registerForm(tbl *rules.Table, sh goidelic.Shared) {
	lenFacet := rules.Facet{Name: "lenition", Domain: []string{"Len"}, Rule: lenitionOnly}
	tbl.RegisterPacked("Form", "ADJ", lenFacet)
	tbl.RegisterPacked("Form", "NUM", lenFacet)
	tbl.RegisterPacked("Form", "NOUN", mutationFacet(nounMutation(sh)), emphasisFacet())
	tbl.RegisterPacked("Form", "PROPN", mutationFacet(nounMutation(sh)), emphasisFacet())
	tbl.RegisterPacked("Form", "VERB", mutationFacet(verbMutation), emphasisFacet())
}
