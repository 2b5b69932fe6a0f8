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

// Package label builds branded barcode price labels.
package label

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/barcode"
	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/pricing"
)

var requestFields = []string{"productCode", "salesPrice", "purchasePrice", "hashingFormat", "productName", "symbology"}

// Request is the label generation input as posted by clients.
type Request struct {
	ProductCode   string        `json:"productCode"`
	SalesPrice    pricing.Price `json:"salesPrice"`
	PurchasePrice pricing.Price `json:"purchasePrice"`
	HashingFormat string        `json:"hashingFormat,omitempty"`
	ProductName   string        `json:"productName,omitempty"`
	Symbology     string        `json:"symbology,omitempty"`
	// BillID is accepted for client compatibility and only logged.
	BillID any `json:"billId,omitempty"`
}

// Validate checks required fields. It returns a *ValidationError naming every offending field.
func (r Request) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(r.ProductCode) == "" {
		verr.Missing = append(verr.Missing, "productCode")
	}
	for _, p := range []struct {
		field string
		price pricing.Price
	}{
		{"salesPrice", r.SalesPrice},
		{"purchasePrice", r.PurchasePrice},
	} {
		err := p.price.Validate()
		switch {
		case err == nil:
		case errors.Is(err, pricing.ErrMissing):
			verr.Missing = append(verr.Missing, p.field)
		default:
			verr.invalid(p.field, err.Error())
		}
	}
	if _, ok := barcode.ParseSymbology(r.Symbology); !ok {
		verr.invalid("symbology", fmt.Sprintf("unsupported symbology %q", r.Symbology))
	}
	if verr.empty() {
		return nil
	}
	return verr
}

// Result is a rendered label ready to be served.
type Result struct {
	PNG       []byte
	Filename  string
	Format    pricing.Format
	Symbology barcode.Symbology
	Width     int
	Height    int
}

// Service defines the business logic for barcode labels.
type Service interface {
	Generate(req Request) (*Result, error)
}

type service struct {
	logger        *zap.Logger
	generator     barcode.Generator
	renderer      *Renderer
	barcodeOpts   barcode.Options
	defaultFormat pricing.Format
}

// NewService creates a new label generation service.
func NewService(logger *zap.Logger, generator barcode.Generator, renderer *Renderer, barcodeOpts barcode.Options, defaultFormat pricing.Format) Service {
	return &service{
		logger:        logger,
		generator:     generator,
		renderer:      renderer,
		barcodeOpts:   barcodeOpts,
		defaultFormat: defaultFormat,
	}
}

// Generate validates the request, obfuscates both prices, renders the barcode and composes the PNG label.
func (s *service) Generate(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Label request rejected", zap.Error(err))
		return nil, err
	}

	format := pricing.Resolve(req.HashingFormat, s.defaultFormat)
	symbology, _ := barcode.ParseSymbology(req.Symbology)
	code := strings.TrimSpace(req.ProductCode)

	s.logger.Debug("Starting label generation",
		zap.String("product_code", code),
		zap.String("format", format.String()),
		zap.String("symbology", symbology.String()),
		zap.Any("bill_id", req.BillID),
	)

	hashedSales := pricing.Obfuscate(req.SalesPrice.String(), format)
	hashedPurchase := pricing.Obfuscate(req.PurchasePrice.String(), format)

	opts := s.barcodeOpts
	opts.Symbology = symbology
	bc, err := s.generator.Generate(code, opts)
	if err != nil {
		return nil, &RenderingError{Stage: "generate barcode", Err: err}
	}

	img, err := s.renderer.Compose(bc, hashedSales, hashedPurchase, req.ProductName)
	if err != nil {
		return nil, &RenderingError{Stage: "compose label", Err: err}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, &RenderingError{Stage: "encode png", Err: err}
	}

	b := img.Bounds()
	s.logger.Debug("Label generated successfully",
		zap.Int("output_size_bytes", buf.Len()),
		zap.String("image_dimensions", fmt.Sprintf("%dx%d", b.Dx(), b.Dy())),
	)

	return &Result{
		PNG:       buf.Bytes(),
		Filename:  Filename(code),
		Format:    format,
		Symbology: symbology,
		Width:     b.Dx(),
		Height:    b.Dy(),
	}, nil
}

// Filename returns the attachment name for a product code. Characters that would break
// a quoted header parameter are replaced.
func Filename(productCode string) string {
	safe := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || r == '"' || r == '\\' || r == '/' {
			return '_'
		}
		return r
	}, productCode)
	return "barcode-" + safe + ".png"
}
