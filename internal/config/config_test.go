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

package config

import (
	"image/color"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "READ_TIMEOUT", "MAX_BODY_SIZE", "DEFAULT_HASHING_FORMAT", "BARCODE_SCALE", "BRAND_CONTACT", "BRAND_COLOR"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Errorf("port got=%s want=8080", cfg.Port)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout got=%s want=5s", cfg.ReadTimeout)
	}
	if cfg.MaxBodySize != 1<<20 {
		t.Errorf("max body size got=%d want=%d", cfg.MaxBodySize, 1<<20)
	}
	if cfg.DefaultHashingFormat != "letter" {
		t.Errorf("default hashing format got=%s want=letter", cfg.DefaultHashingFormat)
	}
	if cfg.BarcodeScale != 3 {
		t.Errorf("barcode scale got=%d want=3", cfg.BarcodeScale)
	}
	if len(cfg.BrandContact) != 3 {
		t.Errorf("brand contact lines got=%d want=3", len(cfg.BrandContact))
	}
	if cfg.BrandColor != defaultBrandColor {
		t.Errorf("brand color got=%v want=%v", cfg.BrandColor, defaultBrandColor)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WRITE_TIMEOUT", "30s")
	t.Setenv("MAX_BODY_SIZE", "2048")
	t.Setenv("BARCODE_SCALE", "-1")
	t.Setenv("BRAND_CONTACT", " a | | b |c|d ")
	t.Setenv("BRAND_COLOR", "#ff8000")
	t.Setenv("PRICE_COLOR", "not-a-color")

	cfg := LoadConfig()

	if cfg.Port != "9090" {
		t.Errorf("port got=%s want=9090", cfg.Port)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Errorf("write timeout got=%s want=30s", cfg.WriteTimeout)
	}
	if cfg.MaxBodySize != 2048 {
		t.Errorf("max body size got=%d want=2048", cfg.MaxBodySize)
	}
	if cfg.BarcodeScale != 3 {
		t.Errorf("negative scale should fall back, got=%d", cfg.BarcodeScale)
	}
	want := []string{"a", "b", "c"}
	if len(cfg.BrandContact) != len(want) {
		t.Fatalf("brand contact got=%v want=%v", cfg.BrandContact, want)
	}
	for i := range want {
		if cfg.BrandContact[i] != want[i] {
			t.Errorf("brand contact[%d] got=%s want=%s", i, cfg.BrandContact[i], want[i])
		}
	}
	if cfg.BrandColor != (color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}) {
		t.Errorf("brand color got=%v", cfg.BrandColor)
	}
	if cfg.PriceColor != defaultPriceColor {
		t.Errorf("invalid price color should fall back, got=%v", cfg.PriceColor)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#000000", want: color.NRGBA{A: 0xff}},
		{in: "FFFFFF", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: " #1f3a68 ", want: color.NRGBA{R: 0x1f, G: 0x3a, B: 0x68, A: 0xff}},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) got=%v want=%v", tt.in, got, tt.want)
		}
	}
}
