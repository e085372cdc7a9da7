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

package ga

import (
	"gaelcheck/goidelic"
	"gaelcheck/rules"
)

const (
	Code = "ga"
	Name = "Irish"
)

// Checkable lists features checked on every token. Degree
// and PartType have rules but are not checked by default.
var Checkable = []string{
	"Aspect", "Case", "Definite", "Form", "Gender", "NounType", "Number",
	"NumType", "Mood", "Person", "Polarity", "Poss", "PrepForm", "PronType",
	"Reflex", "Tense", "VerbForm", "XForm",
}

type grammar struct {
	shared goidelic.Shared
}

// Table creates the Irish rule table layered over
// the shared Goidelic defaults.
func Table() *rules.Table {
	g := &grammar{shared: goidelic.Shared{Attributive: isAttributiveAdjective}}
	tbl := rules.NewTable(Code, g.shared.Table())
	tbl.
		Register("Aspect", aspectVERB, "VERB").
		Register("Case", caseDET, "DET").
		Register("Case", caseNOUN, "NOUN", "PROPN").
		Register("Definite", definiteDET, "DET").
		Register("Definite", definiteNOUN, "NOUN").
		Register("Definite", definitePROPN, "PROPN").
		Register("Degree", degreeADJ, "ADJ").
		Register("Gender", genderADP, "ADP").
		Register("Gender", genderAUX, "AUX").
		Register("Gender", genderDET, "DET").
		Register("Gender", genderNOUN, "NOUN", "PROPN").
		Register("Gender", genderPRON, "PRON").
		Register("Mood", moodAUX, "AUX").
		Register("Mood", moodPART, "PART").
		Register("Mood", moodVERB, "VERB").
		Register("NounType", nounTypeADJ, "ADJ").
		Register("NounType", nounTypeNOUN, "NOUN", "PROPN").
		Register("Number", numberADJ, "ADJ").
		Register("Number", numberADP, "ADP").
		Register("Number", numberAUX, "AUX").
		Register("Number", numberDET, "DET").
		Register("Number", numberNOUN, "NOUN", "PROPN").
		Register("Number", numberPRON, "PRON").
		Register("Number", numberVERB, "VERB").
		Register("NumType", numTypeNUM, "NUM").
		Register("PartType", partTypePART, "PART").
		Register("Person", personADP, "ADP").
		Register("Person", personAUX, "AUX").
		Register("Person", personDET, "DET").
		Register("Person", personPRON, "PRON").
		Register("Person", personVERB, "VERB").
		Register("Polarity", polarityAUX, "AUX").
		Register("Polarity", polarityPART, "PART").
		Register("Polarity", polarityVERB, "VERB").
		Register("Poss", possADP, "ADP").
		Register("Poss", possDET, "DET").
		Register("PrepForm", prepFormADP, "ADP").
		Register("PrepForm", prepFormNOUN, "NOUN").
		Register("PronType", pronTypeADP, "ADP").
		Register("PronType", pronTypeADV, "ADV").
		Register("PronType", pronTypeAUX, "AUX").
		Register("PronType", pronTypeDET, "DET").
		Register("PronType", pronTypePART, "PART").
		Register("PronType", pronTypePRON, "PRON").
		Register("PronType", pronTypeVERB, "VERB").
		Register("Reflex", reflexPRON, "PRON").
		Register("Reflex", reflexPROPN, "PROPN").
		Register("Tense", tenseADV, "ADV").
		Register("Tense", tenseAUX, "AUX").
		Register("Tense", tensePART, "PART").
		Register("Tense", tenseSCONJ, "SCONJ").
		Register("VerbForm", verbFormADJ, "ADJ").
		Register("VerbForm", verbFormAUX, "AUX").
		Register("VerbForm", verbFormPART, "PART").
		Register("VerbForm", verbFormPRON, "PRON").
		Register("VerbForm", verbFormSCONJ, "SCONJ").
		Register("XForm", xFormDET, "DET").
		Register("XForm", xFormNOUN, "NOUN", "PROPN")
	g.registerForm(tbl)
	return tbl.Seal()
}
