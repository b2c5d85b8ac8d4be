// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
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

	"github.com/czcorpus/cnc-gokit/cors"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/technical-communicator/American-Transcendentalism/cnf"
	"github.com/technical-communicator/American-Transcendentalism/engine"
	"github.com/technical-communicator/American-Transcendentalism/extract"
	"github.com/technical-communicator/American-Transcendentalism/store"
)

var (
	version   string
	buildDate string
	gitCommit string
)

// VersionInfo provides a detailed information about the actual build
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

func newRouter(conf *cnf.Conf, report *engine.Report) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(cors.CORSMiddleware(conf.CorsAllowedOrigins))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	reportActions := NewActions(report, &conf.Query)

	engine.GET("/metadata", reportActions.Metadata)
	engine.GET("/texts", reportActions.Texts)
	engine.GET("/texts/:textId", reportActions.Text)
	engine.GET(
		"/texts/:textId/word-frequency", reportActions.WordFrequency)
	engine.GET(
		"/texts/:textId/distinctive-words", reportActions.DistinctiveWords)
	engine.GET(
		"/texts/:textId/overlap", reportActions.Overlap)
	return engine
}

func runApiServer(
	conf *cnf.Conf,
	syscallChan chan os.Signal,
	exitEvent chan os.Signal,
	report *engine.Report,
) {
	if !conf.LogLevel.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().Msgf("starting to listen at %s:%d", conf.ListenAddress, conf.ListenPort)
	srv := &http.Server{
		Handler:      newRouter(conf, report),
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("")
		}
		syscallChan <- syscall.SIGTERM
	}()

	<-exitEvent
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Info().Err(err).Msg("Shutdown request error")
	}
}

func runExtract(conf *cnf.Conf) {
	summary := extract.Run(conf.Corpus)
	printExtractSummary(os.Stdout, summary)
}

func runAnalyze(ctx context.Context, conf *cnf.Conf) {
	analyzer, err := engine.NewDefaultAnalyzer(conf.Analysis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize analyzer")
	}
	report, err := analyzer.Run(
		ctx,
		conf.Corpus,
		engine.RunMetadata{
			AnalysisDate: conf.RunDate(),
			Description:  conf.Description,
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis interrupted")
	}
	if err := report.Save(conf.OutputFile); err != nil {
		log.Fatal().Err(err).Msg("failed to export results")
	}
	log.Info().Str("file", conf.OutputFile).Msg("analysis complete, results saved")
	printAnalysisSummary(os.Stdout, report)
}

func runStore(ctx context.Context, conf *cnf.Conf, force bool) {
	if conf.DB == nil {
		log.Fatal().Msg("missing `db` configuration")
	}
	report, err := engine.LoadReport(conf.OutputFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load analysis results")
	}
	pool, err := store.OpenPool(ctx, conf.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database connection")
	}
	defer pool.Close()
	rdb := store.NewReportDatabase(ctx, pool, conf.DB.TablePrefix)
	if err := rdb.InitializeDB(force); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	if err := rdb.StoreReport(report); err != nil {
		log.Fatal().Err(err).Msg("failed to store analysis results")
	}
}

func main() {
	version := VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	forceInit := flag.Bool("f", false, "drop and recreate database tables (store action)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "DISTREAD - distant reading of a small literary corpus\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] extract [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] analyze [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] store [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] serve [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] test [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("distread %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}
	conf := cnf.LoadConfig(flag.Arg(1))

	if action == "test" {
		cnf.ValidateAndDefaults(conf)
		log.Info().Msg("config OK")
		return

	} else {
		logging.SetupLogging(conf.LogFile, conf.LogLevel)
	}
	log.Info().Str("config", conf.GetSourcePath()).Msg("Starting Distread")
	cnf.ValidateAndDefaults(conf)
	syscallChan := make(chan os.Signal, 1)
	signal.Notify(syscallChan, os.Interrupt)
	signal.Notify(syscallChan, syscall.SIGTERM)
	exitEvent := make(chan os.Signal)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		evt := <-syscallChan
		cancel()
		exitEvent <- evt
		close(exitEvent)
	}()

	switch action {
	case "extract":
		runExtract(conf)
	case "analyze":
		runAnalyze(ctx, conf)
	case "store":
		runStore(ctx, conf, *forceInit)
	case "serve":
		report, err := engine.LoadReport(conf.OutputFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load analysis results")
		}
		runApiServer(conf, syscallChan, exitEvent, report)
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
}
