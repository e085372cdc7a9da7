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
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gaelcheck/sidecar"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	vtedb "github.com/czcorpus/vert-tagextract/v3/db"
	"github.com/rs/zerolog/log"
)

const (
	dfltServerReadTimeoutSecs  = 30
	dfltServerWriteTimeoutSecs = 60
	dfltListenAddress          = "127.0.0.1"
	dfltListenPort             = 8095
	dfltLanguage               = "en"
	dfltMaxNumWorkers          = 4
	dfltReportTablePrefix      = "gaelcheck"
	dfltMaxNumConcurrentJobs   = 2
)

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string              `json:"listenAddress"`
	ListenPort             int                 `json:"listenPort"`
	ServerReadTimeoutSecs  int                 `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                 `json:"serverWriteTimeoutSecs"`
	CORSAllowedOrigins     []string            `json:"corsAllowedOrigins"`
	Logging                logging.LoggingConf `json:"logging"`

	// Lexicons maps language codes to lexicon TSV files
	Lexicons map[string]string `json:"lexicons"`

	SicDir               string      `json:"sicDir"`
	NumWorkers           int         `json:"numWorkers"`
	MaxNumConcurrentJobs int         `json:"maxNumConcurrentJobs"`
	ReportDB             *vtedb.Conf `json:"reportDb"`
	ReportTablePrefix    string      `json:"reportTablePrefix"`

	// Language is the language of user interface messages
	// (summaries, job descriptions)
	Language string `json:"language"`
	srcPath  string
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if conf.srcPath == "" {
		return ""
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

// LexiconPath returns a configured lexicon path for a language
// or an empty string (= no lexicon check).
func (conf *Conf) LexiconPath(lang string) string {
	return conf.Lexicons[lang]
}

func (conf *Conf) HasReportDB() bool {
	return conf.ReportDB != nil && conf.ReportDB.Host != ""
}

func (conf *Conf) ServerAddress() string {
	return fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort)
}

// ReadConfig decodes a JSON configuration file
func ReadConfig(path string) (*Conf, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if !isFile {
		return nil, fmt.Errorf("failed to read config: %s is not a file", path)
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var conf Conf
	conf.srcPath = path
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return &conf, nil
}

// LoadConfig reads a configuration or terminates the program
func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	conf, err := ReadConfig(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return conf
}

// Default creates a configuration used when no configuration
// file is provided (e.g. plain CLI checks).
func Default() *Conf {
	conf := &Conf{}
	applyDefaults(conf, false)
	return conf
}

func ApplyDefaults(conf *Conf) {
	applyDefaults(conf, true)
}

func applyDefaults(conf *Conf, verbose bool) {
	warn := func(msg string, args ...any) {
		if verbose {
			log.Warn().Msgf(msg, args...)
		}
	}
	if conf.ListenAddress == "" {
		conf.ListenAddress = dfltListenAddress
		warn("listenAddress not specified, using default: %s", dfltListenAddress)
	}
	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
		warn("listenPort not specified, using default: %d", dfltListenPort)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		warn("serverReadTimeoutSecs not specified, using default: %d", dfltServerReadTimeoutSecs)
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		warn("serverWriteTimeoutSecs not specified, using default: %d", dfltServerWriteTimeoutSecs)
	}
	if conf.SicDir == "" {
		conf.SicDir = sidecar.DefaultDir
		warn("sicDir not specified, using default: %s", conf.SicDir)
	}
	if conf.NumWorkers == 0 {
		v := dfltMaxNumWorkers
		if v >= runtime.NumCPU() {
			v = runtime.NumCPU()
		}
		conf.NumWorkers = v
		warn("numWorkers not specified, using default %d", v)
	}
	if conf.MaxNumConcurrentJobs == 0 {
		conf.MaxNumConcurrentJobs = dfltMaxNumConcurrentJobs
		warn("maxNumConcurrentJobs not specified, using default %d", dfltMaxNumConcurrentJobs)
	}
	if conf.ReportTablePrefix == "" {
		conf.ReportTablePrefix = dfltReportTablePrefix
		warn("reportTablePrefix not specified, using default: %s", dfltReportTablePrefix)
	}
	if conf.Language == "" {
		conf.Language = dfltLanguage
		warn("language not specified, using default: %s", conf.Language)
	}
	if conf.Lexicons == nil {
		conf.Lexicons = make(map[string]string)
	}
}
