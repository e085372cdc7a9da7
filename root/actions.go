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

// Package root contains the information action of the service
package root

import (
	"net/http"
	"os"

	"gaelcheck/cnf"
	"gaelcheck/langs"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

const (
	ServiceName = "gaelcheck - morphological checker of Goidelic treebanks"
)

type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

type Actions struct {
	Version VersionInfo
	Conf    *cnf.Conf
}

// RootAction is just an information action about the service
func (a *Actions) RootAction(ctx *gin.Context) {
	host, err := os.Hostname()
	if err != nil {
		host = "#failed_to_obtain"
	}
	ans := struct {
		Name      string      `json:"name"`
		Version   VersionInfo `json:"version"`
		Host      string      `json:"host"`
		ConfPath  string      `json:"confPath"`
		Languages []string    `json:"languages"`
	}{
		Name:      ServiceName,
		Version:   a.Version,
		Host:      host,
		ConfPath:  a.Conf.GetSourcePath(),
		Languages: langs.Codes(),
	}

	resp, err := sonic.Marshal(ans)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("failed to run the root action: %w", err),
			http.StatusInternalServerError,
		)
		return
	}
	ctx.Writer.Write(resp)
}
