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

// Package main is the entry point for the barcode label generation service.
// This HTTP service renders a product code as a Code128 barcode framed by a branded
// header, the product name and obfuscated sales/purchase prices, and returns a PNG.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/barcode"
	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/config"
	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/fonts"
	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/label"
	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/logger"
	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/pricing"
	transport "github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/transport/http"
)

func main() {
	// Load .env file (optional in production)
	envErr := godotenv.Load()

	log := logger.InitLogger()
	defer logger.Sync()

	if envErr != nil {
		log.Debug("No .env file found, using environment variables")
	} else {
		log.Info(".env file loaded successfully")
	}

	cfg := config.LoadConfig()
	log.Debug("Configuration loaded",
		zap.String("port", cfg.Port),
		zap.Duration("read_timeout", cfg.ReadTimeout),
		zap.Duration("write_timeout", cfg.WriteTimeout),
		zap.Int64("max_body_size", cfg.MaxBodySize),
		zap.String("default_hashing_format", cfg.DefaultHashingFormat),
	)

	if err := fonts.Register(cfg.FontRegularPath, cfg.FontBoldPath); err != nil {
		log.Fatal("Failed to register fonts", zap.Error(err))
	}
	log.Debug("Fonts registered",
		zap.String("regular", fontSource(cfg.FontRegularPath)),
		zap.String("bold", fontSource(cfg.FontBoldPath)),
	)

	defaultFormat, ok := pricing.ParseFormat(cfg.DefaultHashingFormat)
	if !ok {
		log.Warn("Unknown DEFAULT_HASHING_FORMAT, using built-in default",
			zap.String("value", cfg.DefaultHashingFormat),
			zap.String("default", pricing.DefaultFormat.String()),
		)
		defaultFormat = pricing.DefaultFormat
	}

	layout := label.DefaultLayout()
	layout.Branding = label.Branding{
		Name:        cfg.BrandName,
		SubLabel:    cfg.BrandSubLabel,
		Contact:     cfg.BrandContact,
		BrandColor:  cfg.BrandColor,
		BorderColor: cfg.BorderColor,
		PriceColor:  cfg.PriceColor,
	}

	barcodeOpts := barcode.DefaultOptions()
	barcodeOpts.Scale = cfg.BarcodeScale
	barcodeOpts.BarHeight = cfg.BarcodeHeight
	barcodeOpts.QRSize = cfg.QRSize

	svc := label.NewService(log, barcode.NewGenerator(log), label.NewRenderer(layout), barcodeOpts, defaultFormat)
	log.Debug("Label service initialized", zap.String("default_format", defaultFormat.String()))

	metrics := transport.NewMetrics()
	h := transport.NewHandler(svc, log, metrics, cfg.MaxBodySize)

	// Configure HTTP server with timeouts and security settings
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           transport.NewRouter(h, metrics, log),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("port", cfg.Port), zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatal("Server failed to start", zap.Error(err))
	case sig := <-quit:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	log.Debug("Initiating graceful shutdown", zap.Duration("timeout", cfg.ShutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err), zap.Duration("timeout", cfg.ShutdownTimeout))
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Shutdown timeout exceeded, closing connections")
			srv.Close()
		}
		logger.Sync()
		os.Exit(1)
	}

	log.Info("Server exited gracefully")
}

func fontSource(path string) string {
	if path == "" {
		return "bundled"
	}
	return path
}
