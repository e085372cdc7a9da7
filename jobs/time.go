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

package jobs

import (
	"time"
)

// JSONTime is a time serialized as RFC3339 or null
// when zero
type JSONTime time.Time

func (t JSONTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte("\"" + time.Time(t).Format(time.RFC3339) + "\""), nil
}

func (t *JSONTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = JSONTime{}
		return nil
	}
	v, err := time.Parse(`"`+time.RFC3339+`"`, string(data))
	if err != nil {
		return err
	}
	*t = JSONTime(v)
	return nil
}

func (t JSONTime) Sub(t2 JSONTime) time.Duration {
	return time.Time(t).Sub(time.Time(t2))
}

func (t JSONTime) IsZero() bool {
	return time.Time(t).IsZero()
}

func CurrentDatetime() JSONTime {
	return JSONTime(time.Now())
}
