// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the label service collectors.
type Metrics struct {
	generated *prometheus.CounterVec
	failures  *prometheus.CounterVec
	latency   prometheus.Histogram
	gatherer  prometheus.Gatherer
}

// NewMetrics registers the collectors with a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "barcode_labels_generated_total",
				Help: "Number of labels rendered, by price format and symbology",
			},
			[]string{"format", "symbology"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "barcode_label_failures_total",
				Help: "Number of rejected or failed label requests, by kind",
			},
			[]string{"kind"},
		),
		latency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "barcode_label_render_seconds",
				Help:    "Time spent producing a label PNG",
				Buckets: prometheus.DefBuckets,
			},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.generated, m.failures, m.latency)
	return m
}

// Handler exposes the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
