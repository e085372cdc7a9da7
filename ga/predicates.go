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
	"regexp"
	"strconv"
	"strings"

	"gaelcheck/goidelic"
	"gaelcheck/ud"
)

var (
	// nominal lemmas which do not make their governor definite
	// ("rang Gaeilge", "fear Gaeltachta")
	nonPropagatingDefinites = []string{
		"Gaeilge", "Béarla", "Gaeltacht", "Eabhrais", "Fraincis", "Breatnais"}

	// prepositions governing the nominative instead of the dative
	nominativePrepositions = []string{
		"ach", "amhail", "gan", "go", "idir", "mar", "murach", "ná", "seachas"}

	endsInR = regexp.MustCompile(`r$`)
)

func predForm(tok *ud.Token) string {
	return goidelic.PredForm(tok)
}

func precedingCen(tok *ud.Token) bool {
	head := tok.Head()
	return !head.IsRoot() && head.Index() == tok.Index()-1 && head.LowerForm() == "cén"
}

func precedingDefiniteArticle(tok *ud.Token) bool {
	return predForm(tok) == "an"
}

// anyPrecedingDefiniteArticle covers "an" but also
// "sa", "den", "ón" etc.
func anyPrecedingDefiniteArticle(tok *ud.Token) bool {
	return tok.Predecessor().Has("PronType", "Art")
}

// anyDependentDefiniteArticle does not require the article to
// precede immediately ("sa dá chogadh")
func anyDependentDefiniteArticle(tok *ud.Token) bool {
	return tok.HasDependent(func(d *ud.Token) bool {
		return d.Has("PronType", "Art")
	})
}

func isPossessed(tok *ud.Token) bool {
	return tok.HasDependent(func(d *ud.Token) bool {
		return d.Has("Poss", "Yes")
	})
}

func hasGachDependent(tok *ud.Token) bool {
	return goidelic.HasDependentLemma(tok, "gach", "DET")
}

// hasNumberSpecifier covers "Airteagal III", "rang 5"
// and "bus a dó", "rang a 5"
func hasNumberSpecifier(tok *ud.Token) bool {
	return tok.HasDependent(func(d *ud.Token) bool {
		if d.UPOS() != "NUM" || d.Deprel() != "nmod" {
			return false
		}
		if d.Index() == tok.Index()+1 {
			return true
		}
		return d.Index() == tok.Index()+2 && d.HasDependent(func(p *ud.Token) bool {
			return p.Lemma() == "a" && p.UPOS() == "PART" && p.Has("PartType", "Num") &&
				p.Index() == tok.Index()+1
		})
	})
}

// hasPropagatingDefiniteDependent is true for nouns governing
// a definite noun in the genitive
func hasPropagatingDefiniteDependent(tok *ud.Token) bool {
	return tok.HasDependent(func(d *ud.Token) bool {
		return d.IsNominal() && d.Deprel() == "nmod" && d.Has("Definite", "Def") &&
			!d.IsInPP() &&
			(!goidelic.LemmaIn(d, nonPropagatingDefinites...) || anyPrecedingDefiniteArticle(d))
	})
}

func isLenitedPastVerbContext(tok *ud.Token) bool {
	pv := tok.FirstValue("Person")
	if pv == "" || !tok.Has("Tense", "Past") {
		return false
	}
	pers, err := strconv.Atoi(pv)
	if err != nil {
		return false
	}
	if pers == 0 {
		return goidelic.LemmaIn(tok, "bí", "clois", "feic", "tar", "téigh")
	}
	return !goidelic.LemmaIn(tok, "abair", "faigh")
}

// isEclipsingRelativizer covers also PRON ("sin a bhfuil agam")
func isEclipsingRelativizer(tok *ud.Token) bool {
	return tok.Has("PronType", "Rel") && !endsInR.MatchString(tok.LowerForm()) &&
		(tok.Has("Form", "Indirect") || tok.UPOS() == "PRON")
}

func isPastFaigh(tok *ud.Token) bool {
	return tok.Lemma() == "faigh" && tok.Has("Mood", "Ind") && tok.Has("Tense", "Past")
}

// isInDativePP is false for prepositions taking the nominative
func isInDativePP(tok *ud.Token) bool {
	return tok.IsInPP() && !tok.HasDependent(func(d *ud.Token) bool {
		return d.Deprel() == "case" && goidelic.LemmaIn(d, nominativePrepositions...)
	})
}

func has2Thru19(tok *ud.Token) bool {
	pr := tok.Predecessor()
	return pr.Deprel() == "nummod" && is2Thru19(pr)
}

// attributiveException removes Irish-specific cases from agreement
// ("go léir", "sách", "chomh" and participles)
func attributiveException(tok *ud.Token) bool {
	pr := tok.Predecessor()
	return tok.Has("VerbForm", "Part") ||
		(pr.Lemma() == "go" && tok.Lemma() == "léir") ||
		pr.Lemma() == "sách" || pr.Lemma() == "chomh"
}

var isAttributiveAdjective = goidelic.WithExceptions(attributiveException)

// compoundWithPredecessor joins the lowercased predecessor
// and the token form by a space
func compoundWithPredecessor(tok *ud.Token) string {
	return strings.ToLower(tok.Predecessor().Form()) + " " + tok.LowerForm()
}

func isCompoundPreposition(s string) bool {
	return compoundPrepositions.Contains(s) || s == "go dtí"
}
