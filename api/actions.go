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

// Package api contains HTTP actions of the checking service
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gaelcheck/check"
	"gaelcheck/cnf"
	"gaelcheck/corpus"
	"gaelcheck/jobs"
	"gaelcheck/langs"
	"gaelcheck/report"
	"gaelcheck/reportdb"
	"gaelcheck/sidecar"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	requestSource = "request"
	formatHTML    = "html"
)

type languageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type featureInfo struct {
	Feature string   `json:"feature"`
	POS     []string `json:"pos"`
}

type Actions struct {
	conf     *cnf.Conf
	checkers map[string]*check.Checker
	jobs     *jobs.Manager
	metrics  *Metrics

	// store is optional, with a store, results of
	// asynchronous jobs are persisted
	store *reportdb.Store
}

// NewActions prepares checkers of all the supported languages.
// A configured lexicon which cannot be loaded is an error.
func NewActions(conf *cnf.Conf, jobManager *jobs.Manager, metrics *Metrics) (*Actions, error) {
	checkers := make(map[string]*check.Checker)
	for _, code := range langs.Codes() {
		checker, err := check.Prepare(code, conf.LexiconPath(code))
		if err != nil {
			return nil, err
		}
		checkers[code] = checker
		log.Info().
			Str("language", code).
			Bool("withLexicon", conf.LexiconPath(code) != "").
			Msg("prepared checker")
	}
	return &Actions{
		conf:     conf,
		checkers: checkers,
		jobs:     jobManager,
		metrics:  metrics,
	}, nil
}

// WithStore makes asynchronous jobs persist their reports
func (a *Actions) WithStore(store *reportdb.Store) *Actions {
	a.store = store
	return a
}

func (a *Actions) checker(ctx *gin.Context) (*check.Checker, bool) {
	code := ctx.Param("lang")
	checker, ok := a.checkers[code]
	if !ok {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("%w: %s", langs.ErrUnknownLanguage, code), http.StatusNotFound)
		return nil, false
	}
	return checker, true
}

// run checks a loaded corpus and creates its report
func (a *Actions) run(ctx context.Context, data *corpus.Corpus, checker *check.Checker) (*report.Report, error) {
	t0 := time.Now()
	if err := data.Check(ctx, checker, a.conf.NumWorkers, nil); err != nil {
		return nil, err
	}
	rep := report.New(checker.Language().Code)
	if err := data.AddToReport(rep); err != nil {
		return nil, err
	}
	a.metrics.Observe(rep, time.Since(t0))
	return rep, nil
}

func (a *Actions) Languages(ctx *gin.Context) {
	ans := make([]languageInfo, 0, len(a.checkers))
	for _, code := range langs.Codes() {
		lang := a.checkers[code].Language()
		ans = append(ans, languageInfo{Code: lang.Code, Name: lang.Name})
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Features lists checkable features of a language along
// with the parts of speech having a rule for them.
func (a *Actions) Features(ctx *gin.Context) {
	checker, ok := a.checker(ctx)
	if !ok {
		return
	}
	lang := checker.Language()
	ans := make([]featureInfo, 0, len(lang.Checkable))
	for _, feat := range lang.Checkable {
		ans = append(ans, featureInfo{Feature: feat, POS: lang.Table.POSFor(feat)})
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Check checks CoNLL-U data sent in the request body. By default,
// the data are returned back with derived features set. With
// report=1, a JSON report is returned instead. With format=html,
// the report is rendered as an HTML page.
func (a *Actions) Check(ctx *gin.Context) {
	checker, ok := a.checker(ctx)
	if !ok {
		return
	}
	asReport, ok := unireq.GetURLBoolArgOrFail(ctx, "report", false)
	if !ok {
		return
	}
	data, err := corpus.Load(ctx.Request.Body, requestSource, checker.Language(), sidecar.Approvals{})
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	rep, err := a.run(ctx.Request.Context(), data, checker)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}

	if ctx.Query("format") == formatHTML {
		page := &ReportPage{LanguageName: checker.Language().Name, Report: rep}
		if err := WriteHTMLResponse(ctx.Writer, page); err != nil {
			log.Error().Err(err).Msg("failed to write HTML report")
		}
		return
	}
	if asReport {
		uniresp.WriteJSONResponse(ctx.Writer, rep)
		return
	}
	ctx.Writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := data.WriteConllu(ctx.Writer); err != nil {
		log.Error().Err(err).Msg("failed to write checked data")
	}
}

// SubmitJob loads the request body and checks it
// asynchronously. The job info is returned right away.
func (a *Actions) SubmitJob(ctx *gin.Context) {
	checker, ok := a.checker(ctx)
	if !ok {
		return
	}
	data, err := corpus.Load(ctx.Request.Body, requestSource, checker.Language(), sidecar.Approvals{})
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	info := a.jobs.Submit(checker.Language().Code, func(jobCtx context.Context) (*report.Report, error) {
		rep, err := a.run(jobCtx, data, checker)
		if err != nil || a.store == nil {
			return rep, err
		}
		if _, err := a.store.Save(jobCtx, rep); err != nil {
			return nil, err
		}
		return rep, nil
	})
	uniresp.WriteJSONResponseWithStatus(ctx.Writer, http.StatusCreated, a.jobs.View(info))
}

func (a *Actions) JobInfo(ctx *gin.Context) {
	info, ok := a.jobs.Get(ctx.Param("jobId"))
	if !ok {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("job %s not found", ctx.Param("jobId")), http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, a.jobs.View(info))
}

// RunInfo shows a summary of a stored job result
func (a *Actions) RunInfo(ctx *gin.Context) {
	if a.store == nil {
		uniresp.RespondWithErrorJSON(
			ctx, errors.New("report database not configured"), http.StatusNotFound)
		return
	}
	info, err := a.store.GetRun(ctx.Request.Context(), ctx.Param("runId"))
	if errors.Is(err, reportdb.ErrRunNotFound) {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return

	} else if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, info)
}

func (a *Actions) MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(a.metrics.Handler())
}
