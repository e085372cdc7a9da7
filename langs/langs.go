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

// Package langs is a registry of supported languages.
package langs

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"gaelcheck/ga"
	"gaelcheck/gd"
	"gaelcheck/goidelic"
	"gaelcheck/gv"
	"gaelcheck/rules"
	"gaelcheck/ud"
)

var (
	ErrUnknownLanguage = errors.New("unknown language")
)

// Language bundles everything the checker needs to know
// about a language.
type Language struct {
	Code      string
	Name      string
	Phonology goidelic.Phonology
	Table     *rules.Table
	Checkable []string
}

// Autoset is the token construction hook of the language
func (lang *Language) Autoset() ud.Autosetter {
	return lang.Phonology.Autoset
}

// IsCheckable tells whether a feature is checked for the language
func (lang *Language) IsCheckable(feat string) bool {
	for _, f := range lang.Checkable {
		if f == feat {
			return true
		}
	}
	return false
}

type factory func() *Language

var (
	factories = map[string]factory{
		ga.Code: func() *Language {
			return &Language{
				Code: ga.Code, Name: ga.Name, Phonology: ga.Phonology{},
				Table: ga.Table(), Checkable: ga.Checkable,
			}
		},
		gd.Code: func() *Language {
			return &Language{
				Code: gd.Code, Name: gd.Name, Phonology: gd.Phonology{},
				Table: gd.Table(), Checkable: gd.Checkable,
			}
		},
		gv.Code: func() *Language {
			return &Language{
				Code: gv.Code, Name: gv.Name, Phonology: gv.Phonology{},
				Table: gv.Table(), Checkable: gv.Checkable,
			}
		},
	}

	// tables are built lazily, once per language
	cache   = make(map[string]*Language)
	cacheMu sync.Mutex
)

// Get returns a language by its ISO 639-1 code.
func Get(code string) (*Language, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if lang, ok := cache[code]; ok {
		return lang, nil
	}
	fn, ok := factories[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, code)
	}
	lang := fn()
	cache[code] = lang
	return lang, nil
}

// Codes lists supported language codes in a stable order
func Codes() []string {
	ans := make([]string, 0, len(factories))
	for k := range factories {
		ans = append(ans, k)
	}
	sort.Strings(ans)
	return ans
}
