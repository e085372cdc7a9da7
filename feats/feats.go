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

// Package feats handles the morphological feature column
// of CoNLL-U data (e.g. "Case=Gen|Form=Ecl,Emp|Number=Sing").
package feats

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	Empty          = "_"
	PairSeparator  = "|"
	ValueSeparator = "="
	MultiValueSep  = ","

	// ReservedPrefix marks internal-only pseudo-features which
	// are used by the checker but never written to output.
	ReservedPrefix = "X"
)

var (
	ErrMalformedFeature = errors.New("malformed feature")
)

// Features maps a feature name to an ordered set
// of distinct values. The value slices are always kept sorted.
type Features map[string][]string

// Parse decodes a raw feature column. Repeated keys are
// merged, multi-values (comma separated) are split.
func Parse(raw string) (Features, error) {
	ans := make(Features)
	if raw == Empty || raw == "" {
		return ans, nil
	}
	for _, pair := range strings.Split(raw, PairSeparator) {
		kv := strings.Split(pair, ValueSeparator)
		if len(kv) != 2 || kv[0] == "" || kv[1] == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrMalformedFeature, pair)
		}
		for _, v := range strings.Split(kv[1], MultiValueSep) {
			if v == "" {
				return nil, fmt.Errorf("%w: '%s'", ErrMalformedFeature, pair)
			}
			ans.Add(kv[0], v)
		}
	}
	return ans, nil
}

// Get returns values of a feature. The returned slice
// must not be modified.
func (f Features) Get(key string) ([]string, bool) {
	v, ok := f[key]
	return v, ok
}

// First returns the first (in canonical order) value
// of a feature or an empty string.
func (f Features) First(key string) string {
	v, ok := f[key]
	if !ok || len(v) == 0 {
		return ""
	}
	return v[0]
}

func (f Features) Has(key, value string) bool {
	for _, v := range f[key] {
		if v == value {
			return true
		}
	}
	return false
}

// Add inserts a value to the set of values of key.
// It returns true if the value has not been there before.
func (f Features) Add(key, value string) bool {
	vals := f[key]
	i := sort.SearchStrings(vals, value)
	if i < len(vals) && vals[i] == value {
		return false
	}
	vals = append(vals, "")
	copy(vals[i+1:], vals[i:])
	vals[i] = value
	f[key] = vals
	return true
}

// Kill removes a single value of key. A key without
// values is removed altogether.
func (f Features) Kill(key, value string) bool {
	vals, ok := f[key]
	if !ok {
		return false
	}
	i := sort.SearchStrings(vals, value)
	if i >= len(vals) || vals[i] != value {
		return false
	}
	vals = append(vals[:i:i], vals[i+1:]...)
	if len(vals) == 0 {
		delete(f, key)

	} else {
		f[key] = vals
	}
	return true
}

// IsSubsetOf tests whether every key of f is present
// in other with an equal set of values.
func (f Features) IsSubsetOf(other Features) bool {
	for k, v := range f {
		v2, ok := other[k]
		if !ok || len(v) != len(v2) {
			return false
		}
		for i := range v {
			if v[i] != v2[i] {
				return false
			}
		}
	}
	return true
}

func (f Features) Clone() Features {
	ans := make(Features, len(f))
	for k, v := range f {
		ans[k] = append([]string{}, v...)
	}
	return ans
}

// Keys returns sorted feature names including the reserved ones.
func (f Features) Keys() []string {
	ans := make([]string, 0, len(f))
	for k := range f {
		ans = append(ans, k)
	}
	sort.Strings(ans)
	return ans
}

// String provides the canonical serialization: keys sorted,
// values sorted within a key, reserved keys suppressed and
// the "_" placeholder for an empty result.
func (f Features) String() string {
	var buff strings.Builder
	for _, k := range f.Keys() {
		if IsReserved(k) {
			continue
		}
		if buff.Len() > 0 {
			buff.WriteString(PairSeparator)
		}
		buff.WriteString(k)
		buff.WriteString(ValueSeparator)
		buff.WriteString(strings.Join(f[k], MultiValueSep))
	}
	if buff.Len() == 0 {
		return Empty
	}
	return buff.String()
}

func IsReserved(key string) bool {
	return strings.HasPrefix(key, ReservedPrefix)
}
