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

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"gaelcheck/api"
	"gaelcheck/cnf"
	"gaelcheck/db/mysql"
	"gaelcheck/jobs"
	"gaelcheck/reportdb"
	"gaelcheck/root"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func main() {
	version := root.VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gaelcheck server - morphological checker of Goidelic treebanks\n\nUsage:\n\t%s [options] start [config.json]\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("gaelcheck server %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return

	} else if action != "start" {
		log.Fatal().Msgf("Unknown action %s", action)
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(conf.Logging)
	log.Info().Msg("Starting gaelcheck server")
	cnf.ApplyDefaults(conf)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()

	jobManager := jobs.NewManager(ctx, conf.MaxNumConcurrentJobs, conf.Language)
	jobManager.Start()

	checkActions, err := api.NewActions(conf, jobManager, api.NewMetrics())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare checkers")
	}

	if conf.HasReportDB() {
		reportDB, err := mysql.OpenDB(conf.ReportDB)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		defer reportDB.Close()
		store := reportdb.New(reportDB, conf.ReportTablePrefix)
		if err := store.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize report database")
		}
		checkActions.WithStore(store)
		log.Info().Msgf("report SQL database: %s@%s", conf.ReportDB.Name, conf.ReportDB.Host)
	}

	if !conf.Logging.Level.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	rootActions := root.Actions{Version: version, Conf: conf}

	engine.GET(
		"/", rootActions.RootAction)
	engine.GET(
		"/languages", checkActions.Languages)
	engine.GET(
		"/languages/:lang/features", checkActions.Features)
	engine.POST(
		"/check/:lang", checkActions.Check)
	engine.POST(
		"/jobs/check/:lang", checkActions.SubmitJob)
	engine.GET(
		"/jobs/:jobId", checkActions.JobInfo)
	engine.GET(
		"/runs/:runId", checkActions.RunInfo)
	engine.GET(
		"/metrics", checkActions.MetricsHandler())

	var handler http.Handler = engine
	if len(conf.CORSAllowedOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins: conf.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler(engine)
		log.Info().Strs("origins", conf.CORSAllowedOrigins).Msg("CORS enabled")
	}

	log.Info().Msgf("starting to listen at %s", conf.ServerAddress())
	srv := &http.Server{
		Handler:      handler,
		Addr:         conf.ServerAddress(),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Send()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutdown request received")

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
}
