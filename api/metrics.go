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
	"net/http"
	"time"

	"gaelcheck/report"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace = "gaelcheck"
)

// Metrics keeps its own registry so more instances
// (e.g. in tests) never collide.
type Metrics struct {
	registry    *prometheus.Registry
	sentences   *prometheus.CounterVec
	tokens      *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	ans := &Metrics{
		registry: prometheus.NewRegistry(),
		sentences: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "sentences_checked_total",
				Help:      "Number of checked sentences",
			},
			[]string{"lang"},
		),
		tokens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "tokens_checked_total",
				Help:      "Number of checked ordinary tokens",
			},
			[]string{"lang"},
		),
		diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "diagnostics_total",
				Help:      "Number of produced diagnostics",
			},
			[]string{"lang", "category"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "check_duration_seconds",
				Help:      "Duration of a single check request or job",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"lang"},
		),
	}
	ans.registry.MustRegister(
		ans.sentences, ans.tokens, ans.diagnostics, ans.duration)
	return ans
}

// Observe records a finished check
func (m *Metrics) Observe(rep *report.Report, elapsed time.Duration) {
	m.sentences.WithLabelValues(rep.Language).Add(float64(rep.NumSentences))
	m.tokens.WithLabelValues(rep.Language).Add(float64(rep.NumTokens))
	for cat, num := range rep.Counts {
		m.diagnostics.WithLabelValues(rep.Language, cat).Add(float64(num))
	}
	m.duration.WithLabelValues(rep.Language).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
