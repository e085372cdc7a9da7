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

package report

import (
	"fmt"
	"io"
	"strings"

	"gaelcheck/check"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgHeading      = "Check of %s data"
	msgSources      = "Sources: %s"
	msgSentences    = "Sentences checked: %d"
	msgTokens       = "Tokens checked: %d"
	msgTotal        = "Diagnostics total: %d"
	msgCategoryLine = "  %s: %d"
)

func categoryName(printer *message.Printer, c check.Category) string {
	switch c {
	case check.Violation:
		return printer.Sprintf("constraint violations")
	case check.CoverageGap:
		return printer.Sprintf("coverage gaps")
	case check.Lexicon:
		return printer.Sprintf("lexicon objections")
	case check.Structural:
		return printer.Sprintf("structural problems")
	case check.Parse:
		return printer.Sprintf("malformed lines")
	}
	return c.String()
}

func init() {
	cs := language.Czech
	message.SetString(cs, msgHeading, "Kontrola dat (%s)")
	message.SetString(cs, msgSources, "Zdroje: %s")
	message.SetString(cs, msgSentences, "Zkontrolováno vět: %d")
	message.SetString(cs, msgTokens, "Zkontrolováno tokenů: %d")
	message.SetString(cs, msgTotal, "Celkem hlášení: %d")
	message.SetString(cs, "constraint violations", "porušení pravidel")
	message.SetString(cs, "coverage gaps", "nepokryté kombinace")
	message.SetString(cs, "lexicon objections", "námitky slovníku")
	message.SetString(cs, "structural problems", "strukturní problémy")
	message.SetString(cs, "malformed lines", "chybné řádky")
}

// NewPrinter creates a printer for a UI language code (e.g. "en", "cs").
// An unparseable code falls back to English.
func NewPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		log.Warn().Err(err).Str("language", lang).Msg("invalid UI language, using English")
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// WriteSummary writes a short human readable overview of a report
func WriteSummary(w io.Writer, printer *message.Printer, rep *Report) error {
	var sb strings.Builder
	sb.WriteString(printer.Sprintf(msgHeading, rep.Language))
	sb.WriteByte('\n')
	sb.WriteString(printer.Sprintf(msgSources, strings.Join(rep.Sources, ", ")))
	sb.WriteByte('\n')
	sb.WriteString(printer.Sprintf(msgSentences, rep.NumSentences))
	sb.WriteByte('\n')
	sb.WriteString(printer.Sprintf(msgTokens, rep.NumTokens))
	sb.WriteByte('\n')
	sb.WriteString(printer.Sprintf(msgTotal, rep.Total()))
	sb.WriteByte('\n')
	for _, c := range check.Categories {
		sb.WriteString(
			printer.Sprintf(msgCategoryLine, categoryName(printer, c), rep.Counts[c.String()]))
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
