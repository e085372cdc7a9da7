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
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gaelcheck/cnf"
	"gaelcheck/jobs"
	"gaelcheck/report"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	unmutatedAdj = "# sent_id = t1\n" +
		"1\tbean\tbean\tNOUN\tNoun\tCase=NomAcc|Gender=Fem|Number=Sing\t0\troot\t_\t_\n" +
		"2\tmór\tmór\tADJ\tAdj\tCase=NomAcc|Gender=Fem|Number=Sing\t1\tamod\t_\t_\n\n"
)

func newTestEngine(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	manager := jobs.NewManager(ctx, 1, "en")
	manager.Start()
	actions, err := NewActions(cnf.Default(), manager, NewMetrics())
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/languages", actions.Languages)
	engine.GET("/languages/:lang/features", actions.Features)
	engine.POST("/check/:lang", actions.Check)
	engine.POST("/jobs/check/:lang", actions.SubmitJob)
	engine.GET("/jobs/:jobId", actions.JobInfo)
	engine.GET("/runs/:runId", actions.RunInfo)
	engine.GET("/metrics", actions.MetricsHandler())
	return engine
}

func serve(engine *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	engine.ServeHTTP(w, req)
	return w
}

func TestLanguages(t *testing.T) {
	engine := newTestEngine(t)
	w := serve(engine, http.MethodGet, "/languages", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans []languageInfo
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &ans))
	require.Len(t, ans, 3)
	assert.Equal(t, "ga", ans[0].Code)
	assert.Equal(t, "gd", ans[1].Code)
	assert.Equal(t, "gv", ans[2].Code)
}

func TestFeatures(t *testing.T) {
	engine := newTestEngine(t)
	w := serve(engine, http.MethodGet, "/languages/ga/features", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans []featureInfo
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &ans))
	assert.NotEmpty(t, ans)

	w = serve(engine, http.MethodGet, "/languages/xx/features", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckReport(t *testing.T) {
	engine := newTestEngine(t)
	w := serve(engine, http.MethodPost, "/check/ga?report=1", unmutatedAdj)
	require.Equal(t, http.StatusOK, w.Code)
	var rep report.Report
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, "ga", rep.Language)
	assert.Equal(t, 1, rep.NumSentences)
	assert.Equal(t, 2, rep.NumTokens)
	assert.Equal(t, 1, rep.Counts["violation"])
	require.Len(t, rep.Diagnostics, 1)
	assert.Equal(t, 3, rep.Diagnostics[0].LineNum)
}

func TestCheckConllu(t *testing.T) {
	engine := newTestEngine(t)
	w := serve(engine, http.MethodPost, "/check/ga", unmutatedAdj)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, unmutatedAdj, w.Body.String())
}

func TestCheckHTML(t *testing.T) {
	engine := newTestEngine(t)
	w := serve(engine, http.MethodPost, "/check/ga?format=html", unmutatedAdj)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gaelcheck: Irish")
	assert.Contains(t, w.Body.String(), "mór")
}

func TestCheckInvalidArg(t *testing.T) {
	engine := newTestEngine(t)
	w := serve(engine, http.MethodPost, "/check/ga?report=yes", unmutatedAdj)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(engine, http.MethodPost, "/check/ga?report=0", unmutatedAdj)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mór")
}

func TestCheckJob(t *testing.T) {
	engine := newTestEngine(t)
	w := serve(engine, http.MethodPost, "/jobs/check/gd", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var view jobs.CheckJobView
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &view))
	require.NotEmpty(t, view.ID)

	require.Eventually(t, func() bool {
		w := serve(engine, http.MethodGet, "/jobs/"+view.ID, "")
		if w.Code != http.StatusOK {
			return false
		}
		var curr jobs.CheckJobView
		if err := sonic.Unmarshal(w.Body.Bytes(), &curr); err != nil {
			return false
		}
		return curr.Finished && curr.OK
	}, 2*time.Second, 10*time.Millisecond)

	w = serve(engine, http.MethodGet, "/jobs/foo", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunInfoWithoutStore(t *testing.T) {
	engine := newTestEngine(t)
	w := serve(engine, http.MethodGet, "/runs/foo", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetrics(t *testing.T) {
	engine := newTestEngine(t)
	serve(engine, http.MethodPost, "/check/ga?report=1", unmutatedAdj)
	w := serve(engine, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `gaelcheck_diagnostics_total{category="violation",lang="ga"} 1`)
	assert.Contains(t, w.Body.String(), `gaelcheck_sentences_checked_total{lang="ga"} 1`)
}
