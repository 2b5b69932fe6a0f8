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
	"image/color"
	"unicode/utf8"
)

// Branding is the company identity printed in the label header.
type Branding struct {
	Name        string
	SubLabel    string
	Contact     []string // at most three lines, right-aligned
	BrandColor  color.Color
	BorderColor color.Color
	PriceColor  color.Color
}

// Layout is the fixed geometry of a label, in pixels.
type Layout struct {
	HeaderHeight  int
	NameHeight    int
	PriceHeight   int
	Padding       int
	CornerRadius  float32
	BorderWidth   float32
	BorderInset   float32
	MaxNameLength int

	BrandFontSize   float64
	SubFontSize     float64
	ContactFontSize float64
	NameFontSize    float64
	PriceFontSize   float64

	Branding Branding
}

// DefaultLayout returns the standard label geometry with a neutral branding.
func DefaultLayout() Layout {
	return Layout{
		HeaderHeight:  64,
		NameHeight:    32,
		PriceHeight:   44,
		Padding:       12,
		CornerRadius:  14,
		BorderWidth:   3,
		BorderInset:   2,
		MaxNameLength: 40,

		BrandFontSize:   20,
		SubFontSize:     11,
		ContactFontSize: 10,
		NameFontSize:    15,
		PriceFontSize:   18,

		Branding: Branding{
			BrandColor:  color.NRGBA{R: 0x1f, G: 0x3a, B: 0x68, A: 0xff},
			BorderColor: color.NRGBA{R: 0x1f, G: 0x3a, B: 0x68, A: 0xff},
			PriceColor:  color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff},
		},
	}
}

// Height returns the label height for a barcode of the given height.
func (l Layout) Height(barcodeHeight int) int {
	return l.HeaderHeight + l.NameHeight + barcodeHeight + l.PriceHeight
}

// truncateString truncates a string to maxLen runes and appends an ellipsis when it was longer.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}
