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

package label

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/fonts"
)

var headerTextColor = color.White

// Renderer composes barcode bitmaps into branded price labels.
type Renderer struct {
	layout Layout
}

// NewRenderer creates a renderer for the given layout.
func NewRenderer(layout Layout) *Renderer {
	return &Renderer{layout: layout}
}

// Layout returns the geometry the renderer draws with.
func (r *Renderer) Layout() Layout {
	return r.layout
}

type faceSet struct {
	brand, sub, contact, name, price font.Face
}

func (f *faceSet) Close() {
	for _, face := range []font.Face{f.brand, f.sub, f.contact, f.name, f.price} {
		if face != nil {
			face.Close()
		}
	}
}

func (r *Renderer) loadFaces() (*faceSet, error) {
	l := r.layout
	fs := &faceSet{}
	var err error
	if fs.brand, err = fonts.Bold(l.BrandFontSize); err != nil {
		return nil, err
	}
	if fs.sub, err = fonts.Regular(l.SubFontSize); err != nil {
		fs.Close()
		return nil, err
	}
	if fs.contact, err = fonts.Regular(l.ContactFontSize); err != nil {
		fs.Close()
		return nil, err
	}
	if fs.name, err = fonts.Bold(l.NameFontSize); err != nil {
		fs.Close()
		return nil, err
	}
	if fs.price, err = fonts.Bold(l.PriceFontSize); err != nil {
		fs.Close()
		return nil, err
	}
	return fs, nil
}

// Compose draws the label: header, product name, the unscaled barcode and the price band,
// cropped to rounded corners and outlined with a rounded border.
func (r *Renderer) Compose(bc image.Image, hashedSales, hashedPurchase, productName string) (*image.NRGBA, error) {
	if bc == nil || bc.Bounds().Empty() {
		return nil, errors.New("barcode bitmap is empty")
	}

	faces, err := r.loadFaces()
	if err != nil {
		return nil, fmt.Errorf("failed to load label fonts: %w", err)
	}
	defer faces.Close()

	l := r.layout
	bcBounds := bc.Bounds()
	width := bcBounds.Dx()
	height := l.Height(bcBounds.Dy())

	canvas := imaging.New(width, height, color.White)

	r.drawHeader(canvas, faces)

	nameTop := l.HeaderHeight
	if name := truncateString(productName, l.MaxNameLength); name != "" {
		fonts.DrawString(canvas, faces.name, l.Branding.PriceColor, name,
			width/2, fonts.Baseline(faces.name, nameTop, l.NameHeight), fonts.AlignCenter)
	}

	barcodeTop := nameTop + l.NameHeight
	draw.Draw(canvas, image.Rect(0, barcodeTop, width, barcodeTop+bcBounds.Dy()), bc, bcBounds.Min, draw.Src)

	priceTop := barcodeTop + bcBounds.Dy()
	r.drawPrices(canvas, faces.price, priceTop, hashedSales, hashedPurchase)

	// The border is stroked before the clip is applied. The ring lies inside the clip
	// shape, so the result is the same as clipping first and stroking last.
	border := roundedRingMask(width, height, l.BorderInset, l.BorderWidth, l.CornerRadius-l.BorderInset)
	draw.DrawMask(canvas, canvas.Bounds(), image.NewUniform(l.Branding.BorderColor), image.Point{}, border, image.Point{}, draw.Over)

	clip := roundedRectMask(width, height, 0, l.CornerRadius)
	out := image.NewNRGBA(canvas.Bounds())
	draw.DrawMask(out, out.Bounds(), canvas, image.Point{}, clip, image.Point{}, draw.Src)
	return out, nil
}

func (r *Renderer) drawHeader(canvas *image.NRGBA, faces *faceSet) {
	l := r.layout
	width := canvas.Bounds().Dx()
	draw.Draw(canvas, image.Rect(0, 0, width, l.HeaderHeight), image.NewUniform(l.Branding.BrandColor), image.Point{}, draw.Src)

	// Brand name over the sub-label on the left half of the band.
	half := l.HeaderHeight / 2
	fonts.DrawString(canvas, faces.brand, headerTextColor, l.Branding.Name,
		l.Padding, fonts.Baseline(faces.brand, l.Padding/2, half), fonts.AlignLeft)
	fonts.DrawString(canvas, faces.sub, headerTextColor, l.Branding.SubLabel,
		l.Padding, fonts.Baseline(faces.sub, half, half-l.Padding/2), fonts.AlignLeft)

	contact := l.Branding.Contact
	if len(contact) > 3 {
		contact = contact[:3]
	}
	if len(contact) == 0 {
		return
	}
	top := l.Padding / 2
	lineHeight := (l.HeaderHeight - l.Padding) / len(contact)
	for i, line := range contact {
		fonts.DrawString(canvas, faces.contact, headerTextColor, line,
			width-l.Padding, fonts.Baseline(faces.contact, top+i*lineHeight, lineHeight), fonts.AlignRight)
	}
}

func (r *Renderer) drawPrices(canvas *image.NRGBA, face font.Face, top int, sales, purchase string) {
	l := r.layout
	width := canvas.Bounds().Dx()
	draw.Draw(canvas, image.Rect(0, top, width, top+l.PriceHeight), image.White, image.Point{}, draw.Src)

	center := width / 2
	gap := fonts.Width(face, "/")/2 + l.Padding/2
	baseline := fonts.Baseline(face, top, l.PriceHeight)
	c := l.Branding.PriceColor

	fonts.DrawString(canvas, face, c, sales, center-gap, baseline, fonts.AlignRight)
	fonts.DrawString(canvas, face, c, "/", center, baseline, fonts.AlignCenter)
	fonts.DrawString(canvas, face, c, purchase, center+gap, baseline, fonts.AlignLeft)
}
