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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/label"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details string   `json:"details,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

type Handler struct {
	svc         label.Service
	logger      *zap.Logger
	metrics     *Metrics
	maxBodySize int64
}

// NewHandler creates a new HTTP handler for label generation.
func NewHandler(svc label.Service, logger *zap.Logger, metrics *Metrics, maxBodySize int64) *Handler {
	return &Handler{
		svc:         svc,
		logger:      logger,
		metrics:     metrics,
		maxBodySize: maxBodySize,
	}
}

// Generate handles POST /api/generate-barcode requests.
// Accepts a JSON label request, returns the label as a PNG attachment.
// Method checking is handled by MethodMiddleware.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	// Fast fail for obvious oversized requests
	if r.ContentLength > h.maxBodySize {
		h.logger.Warn("Request body too large (ContentLength check)",
			zap.Int64("content_length", r.ContentLength),
			zap.Int64("max_allowed", h.maxBodySize),
			zap.String("remote_addr", r.RemoteAddr),
		)
		h.fail(w, r, "too_large", http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req label.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			h.logger.Warn("Request body hit size limit",
				zap.Int64("max_allowed", h.maxBodySize),
				zap.String("remote_addr", r.RemoteAddr),
			)
			h.fail(w, r, "too_large", http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
		case errors.Is(err, io.EOF):
			h.logger.Warn("Empty request body received", zap.String("remote_addr", r.RemoteAddr))
			h.fail(w, r, "validation", http.StatusBadRequest, ErrorResponse{Error: "Request body is empty"})
		default:
			h.logger.Warn("Malformed request body", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
			h.fail(w, r, "validation", http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body", Details: err.Error()})
		}
		return
	}

	start := time.Now()
	res, err := h.svc.Generate(req)
	if err != nil {
		var verr *label.ValidationError
		if errors.As(err, &verr) {
			h.fail(w, r, "validation", http.StatusBadRequest, ErrorResponse{
				Error:  verr.Error(),
				Fields: append(append([]string{}, verr.Missing...), verr.InvalidFields()...),
			})
			return
		}
		h.logger.Error("Failed to generate barcode label",
			zap.Error(err),
			zap.String("product_code", req.ProductCode),
			zap.String("remote_addr", r.RemoteAddr),
		)
		h.fail(w, r, "rendering", http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate barcode",
			Details: err.Error(),
		})
		return
	}
	h.metrics.latency.Observe(time.Since(start).Seconds())
	h.metrics.generated.WithLabelValues(res.Format.String(), res.Symbology.String()).Inc()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.PNG)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(res.PNG); err != nil {
		h.logger.Error("failed to write response",
			zap.Error(err),
			zap.Int("png_size", len(res.PNG)),
			zap.String("remote_addr", r.RemoteAddr),
		)
		return
	}

	h.logger.Info("Label request completed successfully",
		zap.String("product_code", req.ProductCode),
		zap.String("format", res.Format.String()),
		zap.String("symbology", res.Symbology.String()),
		zap.Int("output_size", len(res.PNG)),
		zap.String("remote_addr", r.RemoteAddr),
	)
}

// HealthCheck handles GET /health requests for liveness/readiness probes.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Health check request received",
		zap.String("method", r.Method),
		zap.String("remote_addr", r.RemoteAddr),
	)

	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, kind string, status int, body ErrorResponse) {
	h.metrics.failures.WithLabelValues(kind).Inc()
	render.Status(r, status)
	render.JSON(w, r, body)
}
