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

// Package barcode renders product codes as barcode bitmaps with an optional human-readable caption.
package barcode

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/fonts"
)

// Symbology selects the barcode encoding.
type Symbology int

const (
	Code128 Symbology = iota
	QR
)

func (s Symbology) String() string {
	switch s {
	case Code128:
		return "code128"
	case QR:
		return "qr"
	default:
		return "unknown"
	}
}

// ParseSymbology maps a request value to a Symbology. Empty selects Code128.
func ParseSymbology(s string) (Symbology, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "code128":
		return Code128, true
	case "qr", "qrcode":
		return QR, true
	default:
		return Code128, false
	}
}

// quietZone is the blank margin on each side of linear barcodes, in modules.
const quietZone = 10

// Options controls how a barcode is rendered.
type Options struct {
	Symbology   Symbology
	Scale       int // module width in pixels
	BarHeight   int // bar height in pixels
	IncludeText bool
	QRSize      int // QR edge length in pixels
}

// DefaultOptions matches a 3x Code128 with 10mm bars and the code printed beneath.
func DefaultOptions() Options {
	return Options{
		Symbology:   Code128,
		Scale:       3,
		BarHeight:   85,
		IncludeText: true,
		QRSize:      256,
	}
}

// Generator produces barcode bitmaps.
type Generator interface {
	Generate(text string, opts Options) (image.Image, error)
}

type generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new barcode generator.
func NewGenerator(logger *zap.Logger) Generator {
	return &generator{logger: logger}
}

// Generate renders text in the requested symbology. It fails for empty text or text the symbology cannot encode.
func (g *generator) Generate(text string, opts Options) (image.Image, error) {
	if text == "" {
		return nil, fmt.Errorf("barcode text cannot be empty")
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	g.logger.Debug("Generating barcode",
		zap.String("symbology", opts.Symbology.String()),
		zap.Int("text_length", len(text)),
		zap.Int("scale", opts.Scale),
	)

	var (
		bars image.Image
		err  error
	)
	switch opts.Symbology {
	case Code128:
		bars, err = code128Bars(text, opts)
	case QR:
		bars, err = qrBars(text, opts)
	default:
		err = fmt.Errorf("unsupported symbology %d", opts.Symbology)
	}
	if err != nil {
		g.logger.Warn("Barcode encoding failed", zap.String("symbology", opts.Symbology.String()), zap.Error(err))
		return nil, err
	}

	if !opts.IncludeText {
		return bars, nil
	}
	return withCaption(bars, text, opts.Scale)
}

func code128Bars(text string, opts Options) (image.Image, error) {
	bc, err := code128.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("failed to encode code128: %w", err)
	}
	modules := bc.Bounds().Dx()
	height := opts.BarHeight
	if height <= 0 {
		height = DefaultOptions().BarHeight
	}
	scaled, err := barcode.Scale(bc, modules*opts.Scale, height)
	if err != nil {
		return nil, fmt.Errorf("failed to scale code128: %w", err)
	}

	margin := quietZone * opts.Scale
	canvas := imaging.New(modules*opts.Scale+2*margin, height, color.White)
	return imaging.Paste(canvas, scaled, image.Pt(margin, 0)), nil
}

func qrBars(text string, opts Options) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	size := opts.QRSize
	if size <= 0 {
		size = DefaultOptions().QRSize
	}
	return q.Image(size), nil
}

// withCaption appends a band beneath the bars with text centered in it.
func withCaption(bars image.Image, text string, scale int) (image.Image, error) {
	face, err := fonts.Regular(float64(6 * scale))
	if err != nil {
		return nil, fmt.Errorf("failed to load caption font: %w", err)
	}
	defer face.Close()

	b := bars.Bounds()
	band := 8 * scale
	canvas := imaging.New(b.Dx(), b.Dy()+band, color.White)
	canvas = imaging.Paste(canvas, bars, image.Pt(0, 0))

	fonts.DrawString(canvas, face, color.Black, text, b.Dx()/2, fonts.Baseline(face, b.Dy(), band), fonts.AlignCenter)
	return canvas, nil
}
