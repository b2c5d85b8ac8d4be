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

package cnf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
	"github.com/technical-communicator/American-Transcendentalism/corpus"
	"github.com/technical-communicator/American-Transcendentalism/cql"
	"github.com/technical-communicator/American-Transcendentalism/engine"
	"github.com/technical-communicator/American-Transcendentalism/store"
)

const (
	dfltServerWriteTimeoutSecs = 30
	dfltServerReadTimeoutSecs  = 10
	dfltListenAddress          = "127.0.0.1"
	dfltListenPort             = 8080
	dfltOutputFile             = "analysis_results.json"
	dfltDescription            = "Distant reading analysis of American Transcendentalist literature"
	dfltTimeZone               = "Local"
	dfltLogLevel               = "info"

	analysisDateLayout = "2006-01-02"
)

// Conf is a global configuration of the app
type Conf struct {
	Corpus   corpus.CorpusConf     `json:"corpus"`
	Analysis engine.AnalysisParams `json:"analysis"`

	// OutputFile is the analysis report written by `analyze`
	// and read by `store` and `serve`
	OutputFile  string `json:"outputFile"`
	Description string `json:"description"`

	// AnalysisDate (YYYY-MM-DD) overrides the current date
	// in the report metadata
	AnalysisDate string `json:"analysisDate"`
	TimeZone     string `json:"timeZone"`

	ListenAddress          string           `json:"listenAddress"`
	ListenPort             int              `json:"listenPort"`
	ServerReadTimeoutSecs  int              `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int              `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string         `json:"corsAllowedOrigins"`
	Query                  cql.QueryAttrs   `json:"query"`
	DB                     *store.DBConf    `json:"db"`
	LogFile                string           `json:"logFile"`
	LogLevel               logging.LogLevel `json:"logLevel"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel.IsDebugMode()
}

func (conf *Conf) TimezoneLocation() *time.Location {
	// we can ignore the error here as we always call ValidateAndDefaults()
	// first (which also tries to load the location and report possible
	// error)
	loc, _ := time.LoadLocation(conf.TimeZone)
	return loc
}

// RunDate returns the configured analysis date or the current
// date in the configured time zone.
func (conf *Conf) RunDate() string {
	if conf.AnalysisDate != "" {
		return conf.AnalysisDate
	}
	return time.Now().In(conf.TimezoneLocation()).Format(analysisDateLayout)
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if conf.srcPath == "" {
		return "[built-in configuration]"
	}
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// DefaultConf returns a configuration with the built-in
// corpus and all the defaults set.
func DefaultConf() *Conf {
	return &Conf{
		Corpus:                 corpus.DefaultCorpus(),
		Analysis:               engine.DefaultAnalysisParams(),
		OutputFile:             dfltOutputFile,
		Description:            dfltDescription,
		TimeZone:               dfltTimeZone,
		ListenAddress:          dfltListenAddress,
		ListenPort:             dfltListenPort,
		ServerReadTimeoutSecs:  dfltServerReadTimeoutSecs,
		ServerWriteTimeoutSecs: dfltServerWriteTimeoutSecs,
		Query:                  cql.DefaultQueryAttrs(),
		LogLevel:               dfltLogLevel,
	}
}

func loadConfig(path string) (*Conf, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	var conf Conf
	conf.srcPath = path
	if err := json.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("cannot load config %s: %w", path, err)
	}
	return &conf, nil
}

// LoadConfig loads a JSON configuration. With an empty path,
// the built-in configuration is used.
func LoadConfig(path string) *Conf {
	if path == "" {
		return DefaultConf()
	}
	conf, err := loadConfig(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return conf
}

func validateAndDefaults(conf *Conf) error {
	if len(conf.Corpus) == 0 {
		conf.Corpus = corpus.DefaultCorpus()
		log.Warn().Msg("corpus not specified, using the built-in one")
	}
	if err := conf.Corpus.ValidateAndDefaults("corpus"); err != nil {
		return err
	}
	conf.Analysis.ValidateAndDefaults("analysis")
	if conf.OutputFile == "" {
		conf.OutputFile = dfltOutputFile
		log.Warn().Msgf("outputFile not specified, using default: %s", conf.OutputFile)
	}
	if conf.Description == "" {
		conf.Description = dfltDescription
		log.Warn().Msgf("description not specified, using default: %s", conf.Description)
	}
	if conf.AnalysisDate != "" {
		if _, err := time.Parse(analysisDateLayout, conf.AnalysisDate); err != nil {
			return fmt.Errorf("invalid analysisDate: %w", err)
		}
	}
	if conf.TimeZone == "" {
		conf.TimeZone = dfltTimeZone
		log.Warn().
			Str("timeZone", dfltTimeZone).
			Msg("time zone not specified, using default")
	}
	if _, err := time.LoadLocation(conf.TimeZone); err != nil {
		return fmt.Errorf("invalid time zone: %w", err)
	}
	if conf.ListenAddress == "" {
		conf.ListenAddress = dfltListenAddress
		log.Warn().Msgf("listenAddress not specified, using default: %s", conf.ListenAddress)
	}
	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
		log.Warn().Msgf("listenPort not specified, using default: %d", conf.ListenPort)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default: %d",
			dfltServerReadTimeoutSecs,
		)
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	conf.Query.ValidateAndDefaults("query")
	if conf.DB != nil {
		if err := conf.DB.ValidateAndDefaults("db"); err != nil {
			return err
		}
	}
	if conf.LogLevel == "" {
		conf.LogLevel = dfltLogLevel
	}
	return nil
}

func ValidateAndDefaults(conf *Conf) {
	if err := validateAndDefaults(conf); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
}
