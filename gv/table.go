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
	"gaelcheck/goidelic"
	"gaelcheck/rules"
)

const (
	Code = "gv"
	Name = "Manx"
)

// Checkable lists features checked on every token.
// Abbr, Foreign and Typo are not checked.
var Checkable = []string{
	"Case", "Definite", "Degree", "Form", "Gender", "Mood", "Number",
	"PartType", "Person", "Polarity", "Poss", "PronType", "Reflex", "Tense",
}

func Table() *rules.Table {
	shared := goidelic.Shared{Attributive: goidelic.IsAttributiveAdjective}
	tbl := rules.NewTable(Code, shared.Table()).
		Register("Case", caseDET, "DET").
		Register("Definite", definiteDET, "DET").
		Register("Degree", degreeADJ, "ADJ").
		Register("Gender", genderDET, "DET").
		Register("Gender", genderPRON, "PRON").
		Register("Mood", moodVERB, "VERB").
		Register("Number", numberADJ, "ADJ").
		Register("Number", numberDET, "DET").
		Register("Number", numberPRON, "PRON").
		Register("Number", numberVERB, "VERB").
		Register("PartType", partTypeADP, "ADP").
		Register("PartType", partTypePART, "PART").
		Register("Person", personDET, "DET").
		Register("Person", personPRON, "PRON").
		Register("Person", personVERB, "VERB").
		Register("Polarity", polarityAUX, "AUX").
		Register("Polarity", polarityPART, "PART").
		Register("Poss", possDET, "DET").
		Register("PronType", pronTypeDET, "DET").
		Register("PronType", pronTypePRON, "PRON").
		Register("Reflex", reflexPRON, "PRON").
		Register("Tense", tenseVERB, "VERB")
	registerForm(tbl, shared)
	return tbl.Seal()
}
