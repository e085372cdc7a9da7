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

package gd

import (
	"gaelcheck/goidelic"
	"gaelcheck/rules"
)

const (
	Code = "gd"
	Name = "Scottish Gaelic"
)

// Checkable lists features checked on every token
var Checkable = []string{
	"Case", "Degree", "Form", "Gender", "Mood", "Number", "Polarity",
	"Poss", "PronType", "Reflex", "Tense", "VerbForm",
}

func Table() *rules.Table {
	shared := goidelic.Shared{Attributive: isAttributiveAdjective}
	return rules.NewTable(Code, shared.Table()).
		Register("Case", caseDET, "DET").
		Register("Case", caseNOUN, "NOUN", "PROPN").
		Register("Degree", degreeADJ, "ADJ").
		Register("Form", formPRON, "PRON").
		Register("Gender", genderDET, "DET").
		Register("Gender", genderNOUN, "NOUN", "PROPN").
		Register("Gender", genderPRON, "PRON").
		Register("Mood", moodAUX, "AUX").
		Register("Mood", moodVERB, "VERB").
		Register("Number", numberADJ, "ADJ").
		Register("Number", numberDET, "DET").
		Register("Number", numberNOUN, "NOUN").
		Register("Number", numberPRON, "PRON").
		Register("Polarity", polarityAUX, "AUX").
		Register("Polarity", polarityPART, "PART").
		Register("Poss", possDET, "DET", "PRON").
		Register("PronType", pronTypeAUX, "AUX").
		Register("PronType", pronTypePART, "PART").
		Register("PronType", pronTypePRON, "PRON").
		Register("Reflex", reflexPRON, "PRON").
		Register("Tense", tenseAUX, "AUX").
		Register("Tense", tensePART, "PART").
		Seal()
}
