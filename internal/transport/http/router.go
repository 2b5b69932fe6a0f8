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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Routes served by NewRouter.
const (
	GeneratePath       = "/api/generate-barcode"
	LegacyGeneratePath = "/generate"
	HealthPath         = "/health"
	MetricsPath        = "/metrics"
)

// NewRouter wires the handler and metrics into a chi router.
func NewRouter(h *Handler, metrics *Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLoggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	generate := MethodMiddleware(http.MethodPost)(http.HandlerFunc(h.Generate))
	r.Handle(GeneratePath, generate)
	r.Handle(LegacyGeneratePath, generate)
	r.Get(HealthPath, h.HealthCheck)
	r.Handle(MetricsPath, metrics.Handler())

	logger.Debug("HTTP routes registered",
		zap.Strings("endpoints", []string{GeneratePath, LegacyGeneratePath, HealthPath, MetricsPath}),
	)
	return r
}
