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
	"gaelcheck/report"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	JobTypeCheck = "check"

	msgCheckJob    = "Morphological check of %s data"
	msgUnknownJob  = "Unknown job"
	msgPending     = "Job is waiting or running"
	msgFinishedOK  = "Job finished without errors"
	msgFinishedErr = "Job finished with error: %s"
)

func init() {
	cs := language.Czech
	message.SetString(cs, msgCheckJob, "Morfologická kontrola dat (%s)")
	message.SetString(cs, msgUnknownJob, "Neznámá úloha")
	message.SetString(cs, msgPending, "Úloha čeká nebo běží")
	message.SetString(cs, msgFinishedOK, "Úloha skončila bez chyb")
	message.SetString(cs, msgFinishedErr, "Úloha skončila s chybou: %s")
}

// CheckJobInfo collects information about an asynchronous check
type CheckJobInfo struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Language string         `json:"language"`
	Start    JSONTime       `json:"start"`
	Update   JSONTime       `json:"update"`
	Finished bool           `json:"finished"`
	Error    error          `json:"-"`
	Result   *report.Report `json:"result,omitempty"`
}

func (j CheckJobInfo) IsFinished() bool {
	return j.Finished
}

func (j CheckJobInfo) AsFinished(result *report.Report) CheckJobInfo {
	j.Update = CurrentDatetime()
	j.Finished = true
	j.Result = result
	return j
}

func (j CheckJobInfo) WithError(err error) CheckJobInfo {
	j.Update = CurrentDatetime()
	j.Finished = true
	j.Error = err
	return j
}

// CheckJobView is a JSON friendly, localized version of a job info
type CheckJobView struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Language    string         `json:"language"`
	Start       JSONTime       `json:"start"`
	Update      JSONTime       `json:"update"`
	Finished    bool           `json:"finished"`
	OK          bool           `json:"ok"`
	Error       string         `json:"error,omitempty"`
	Result      *report.Report `json:"result,omitempty"`
}

func (j CheckJobInfo) FullInfo(printer *message.Printer) CheckJobView {
	ans := CheckJobView{
		ID:          j.ID,
		Type:        j.Type,
		Description: extractJobDescription(printer, j),
		Status:      localizedStatus(printer, j),
		Language:    j.Language,
		Start:       j.Start,
		Update:      j.Update,
		Finished:    j.Finished,
		OK:          j.Error == nil,
		Result:      j.Result,
	}
	if j.Error != nil {
		ans.Error = j.Error.Error()
	}
	return ans
}

func extractJobDescription(printer *message.Printer, info CheckJobInfo) string {
	switch info.Type {
	case JobTypeCheck:
		return printer.Sprintf(msgCheckJob, info.Language)
	default:
		return printer.Sprintf(msgUnknownJob)
	}
}

func localizedStatus(printer *message.Printer, info CheckJobInfo) string {
	if !info.Finished {
		return printer.Sprintf(msgPending)
	}
	if info.Error == nil {
		return printer.Sprintf(msgFinishedOK)
	}
	return printer.Sprintf(msgFinishedErr, info.Error)
}
