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

// Package config provides configuration management for the barcode label service.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodySize     int64

	DefaultHashingFormat string

	BarcodeScale  int
	BarcodeHeight int
	QRSize        int

	FontRegularPath string
	FontBoldPath    string

	BrandName     string
	BrandSubLabel string
	BrandContact  []string
	BrandColor    color.NRGBA
	BorderColor   color.NRGBA
	PriceColor    color.NRGBA
}

var (
	defaultBrandColor  = color.NRGBA{R: 0x1f, G: 0x3a, B: 0x68, A: 0xff}
	defaultBorderColor = color.NRGBA{R: 0x1f, G: 0x3a, B: 0x68, A: 0xff}
	defaultPriceColor  = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

// LoadConfig reads configuration from environment variables and returns a Config instance.
func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		ReadTimeout:     getEnvDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		MaxBodySize:     getEnvInt64("MAX_BODY_SIZE", 1<<20),

		DefaultHashingFormat: getEnv("DEFAULT_HASHING_FORMAT", "letter"),

		BarcodeScale:  getEnvInt("BARCODE_SCALE", 3),
		BarcodeHeight: getEnvInt("BARCODE_HEIGHT", 85),
		QRSize:        getEnvInt("QR_SIZE", 256),

		FontRegularPath: getEnv("FONT_REGULAR_PATH", ""),
		FontBoldPath:    getEnv("FONT_BOLD_PATH", ""),

		BrandName:     getEnv("BRAND_NAME", "WSO2 Store"),
		BrandSubLabel: getEnv("BRAND_SUBLABEL", "Price Label"),
		BrandContact:  splitLines(getEnv("BRAND_CONTACT", "+94 11 214 5345|store@wso2.com|www.wso2.com"), 3),
		BrandColor:    getEnvColor("BRAND_COLOR", defaultBrandColor),
		BorderColor:   getEnvColor("BORDER_COLOR", defaultBorderColor),
		PriceColor:    getEnvColor("PRICE_COLOR", defaultPriceColor),
	}
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// getEnv retrieves a string environment variable or returns fallback if not set.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvDuration retrieves a duration environment variable or returns fallback.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvInt retrieves an int environment variable or returns fallback (only accepts positive values).
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

// getEnvInt64 retrieves an int64 environment variable or returns fallback (only accepts positive values).
func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			if i > 0 {
				return i
			}
		}
	}
	return fallback
}

// getEnvColor retrieves a hex color environment variable or returns fallback.
func getEnvColor(key string, fallback color.NRGBA) color.NRGBA {
	if value := os.Getenv(key); value != "" {
		if c, err := ParseHexColor(value); err == nil {
			return c
		}
	}
	return fallback
}

// splitLines splits a "|"-separated list, dropping blanks and keeping at most max entries.
func splitLines(s string, max int) []string {
	var lines []string
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			lines = append(lines, part)
		}
		if len(lines) == max {
			break
		}
	}
	return lines
}
