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

package api

import (
	"html/template"
	"net/http"
	"sync"

	"gaelcheck/report"

	"github.com/rs/zerolog/log"
)

type ReportPage struct {
	LanguageName string
	Report       *report.Report
	Error        error
}

const (
	reportPage = `
<!DOCTYPE html>
<html>
	<head>
		<meta charset="UTF-8">
		<title>gaelcheck report</title>
		<style type="text/css">
		body {
			font-size: 1.1em;
			width: 60em;
			margin: 0 auto;
			font-family: sans-serif;
		}
		h1 {
			font-size: 1.7em;
		}
		td {
			padding: 0.2em 0.7em;
		}
		.category {
			font-weight: bold;
		}
		</style>
	</head>
	<body>
		<h1>gaelcheck: {{ .LanguageName }}</h1>
		{{ if .Error }}
		<p><strong class="err">ERROR:</strong> {{ .Error }}</p>
		{{ else }}
		<ul>
			{{ range $cat, $num := .Report.Counts }}
			<li>{{ $cat }}: {{ $num }}</li>
			{{ end }}
		</ul>
		<table>
			{{ range .Report.Diagnostics }}
			<tr>
				<td>{{ .LineNum }}</td>
				<td>{{ .Token }}</td>
				<td class="category">{{ .Category }}</td>
				<td>{{ .Message }}</td>
			</tr>
			{{ end }}
		</table>
		{{ end }}
	</body>
</html>`
)

var (
	initOnce sync.Once
	tpl      *template.Template
)

func compileReportPage() {
	initOnce.Do(func() {
		var err error
		tpl, err = template.New("report").Parse(reportPage)
		if err != nil {
			log.Fatal().Msg("Failed to parse the template")
		}
	})
}

// WriteHTMLResponse writes a report as an HTML page
func WriteHTMLResponse(w http.ResponseWriter, data *ReportPage) error {
	compileReportPage()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if data.Error != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	return tpl.Execute(w, data)
}
