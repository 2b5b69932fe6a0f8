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

package barcode

import (
	"testing"

	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/barcode-label-generation/internal/fonts"
)

func newTestGenerator(t *testing.T) Generator {
	t.Helper()
	if err := fonts.Register("", ""); err != nil {
		t.Fatalf("register fonts: %v", err)
	}
	return NewGenerator(zap.NewNop())
}

func TestGenerateCode128(t *testing.T) {
	g := newTestGenerator(t)

	opts := DefaultOptions()
	opts.IncludeText = false
	img, err := g.Generate("ABC123", opts)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dy() != opts.BarHeight {
		t.Errorf("height got=%d want=%d", b.Dy(), opts.BarHeight)
	}
	if b.Dx()%opts.Scale != 0 {
		t.Errorf("width %d is not a multiple of scale %d", b.Dx(), opts.Scale)
	}
	// The quiet zone stays white.
	if r, g, bl, _ := img.At(b.Min.X, b.Min.Y).RGBA(); r != 0xffff || g != 0xffff || bl != 0xffff {
		t.Errorf("quiet zone pixel is not white")
	}
	// The first bar of a Code128 symbol starts right after the quiet zone.
	if r, _, _, _ := img.At(b.Min.X+quietZone*opts.Scale, b.Min.Y).RGBA(); r != 0 {
		t.Errorf("expected a bar after the quiet zone")
	}
}

func TestGenerateCaptionAddsBand(t *testing.T) {
	g := newTestGenerator(t)

	opts := DefaultOptions()
	plain := opts
	plain.IncludeText = false

	withText, err := g.Generate("ABC123", opts)
	if err != nil {
		t.Fatal(err)
	}
	without, err := g.Generate("ABC123", plain)
	if err != nil {
		t.Fatal(err)
	}
	if withText.Bounds().Dx() != without.Bounds().Dx() {
		t.Errorf("caption changed width: %d vs %d", withText.Bounds().Dx(), without.Bounds().Dx())
	}
	if got, want := withText.Bounds().Dy(), without.Bounds().Dy()+8*opts.Scale; got != want {
		t.Errorf("captioned height got=%d want=%d", got, want)
	}
}

func TestGenerateQR(t *testing.T) {
	g := newTestGenerator(t)

	opts := DefaultOptions()
	opts.Symbology = QR
	opts.IncludeText = false
	img, err := g.Generate("ABC123", opts)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != opts.QRSize || b.Dy() != opts.QRSize {
		t.Errorf("qr size got=%dx%d want=%d", b.Dx(), b.Dy(), opts.QRSize)
	}
}

func TestGenerateRejectsInvalidText(t *testing.T) {
	g := newTestGenerator(t)

	for _, text := range []string{"", "価格"} {
		if _, err := g.Generate(text, DefaultOptions()); err == nil {
			t.Errorf("Generate(%q) expected error", text)
		}
	}
}

func TestParseSymbology(t *testing.T) {
	tests := []struct {
		in   string
		want Symbology
		ok   bool
	}{
		{"", Code128, true},
		{"Code128", Code128, true},
		{"qr", QR, true},
		{"ean13", Code128, false},
	}
	for _, tt := range tests {
		got, ok := ParseSymbology(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSymbology(%q) got=%s,%v want=%s,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
