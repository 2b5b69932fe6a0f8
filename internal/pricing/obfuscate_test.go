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

package pricing

import (
	"encoding/base64"
	"strings"
	"testing"
)

var samplePrices = []string{"0", "5", "100", "75.50", "509", "1234.56", "9999999.99", "0.05"}

func TestObfuscate(t *testing.T) {
	tests := []struct {
		value  string
		format Format
		want   string
	}{
		{"100", FormatMask, "***"},
		{"75.50", FormatMask, "75***50"},
		{"1234", FormatMask, "***"},
		{"12345", FormatMask, "12***45"},
		{"509", FormatReplace, "@#*"},
		{"1.95", FormatReplace, "1.*@"},
		{"1234567890.", FormatLetter, "OWHRFXSENTZ"},
		{"75.50", FormatLetter, "SFZFT"},
		{"100", FormatBase64, "MTAw"},
		{"75.50", FormatBase64, "NzUuNTA="},
		{"75.50", FormatUnspecified, "SFZFT"},
	}
	for _, tt := range tests {
		if got := Obfuscate(tt.value, tt.format); got != tt.want {
			t.Errorf("Obfuscate(%q, %s) got=%q want=%q", tt.value, tt.format, got, tt.want)
		}
	}
}

func TestObfuscateDeterministic(t *testing.T) {
	for _, f := range []Format{FormatBase64, FormatMask, FormatReplace, FormatLetter} {
		for _, v := range samplePrices {
			if a, b := Obfuscate(v, f), Obfuscate(v, f); a != b {
				t.Errorf("Obfuscate(%q, %s) not deterministic: %q vs %q", v, f, a, b)
			}
		}
	}
}

func TestMaskLength(t *testing.T) {
	for _, v := range samplePrices {
		got := Obfuscate(v, FormatMask)
		if len(v) <= 4 {
			if got != "***" {
				t.Errorf("mask(%q) got=%q want=***", v, got)
			}
			continue
		}
		if len(got) != 5+len(v)-4 {
			t.Errorf("mask(%q) length got=%d want=%d", v, len(got), 5+len(v)-4)
		}
		if !strings.HasPrefix(got, v[:2]) || !strings.HasSuffix(got, v[len(v)-2:]) {
			t.Errorf("mask(%q) got=%q: affixes do not match", v, got)
		}
	}
}

func TestReplacePreservesLength(t *testing.T) {
	for _, v := range samplePrices {
		got := Obfuscate(v, FormatReplace)
		if len(got) != len(v) {
			t.Errorf("replace(%q) length got=%d want=%d", v, len(got), len(v))
		}
		for i := range v {
			want := v[i]
			switch v[i] {
			case '0':
				want = '#'
			case '5':
				want = '@'
			case '9':
				want = '*'
			}
			if got[i] != want {
				t.Errorf("replace(%q)[%d] got=%c want=%c", v, i, got[i], want)
			}
		}
	}
}

func TestLetterHasNoDigits(t *testing.T) {
	for _, v := range samplePrices {
		got := Obfuscate(v, FormatLetter)
		if len(got) != len(v) {
			t.Errorf("letter(%q) length got=%d want=%d", v, len(got), len(v))
		}
		if strings.ContainsAny(got, "0123456789.") {
			t.Errorf("letter(%q) got=%q: contains digit or decimal point", v, got)
		}
	}
	if got := Obfuscate("1-2", FormatLetter); got != "O-W" {
		t.Errorf("letter passthrough got=%q want=O-W", got)
	}
}

func TestBase64RoundTrip(t *testing.T) {
	for _, v := range samplePrices {
		decoded, err := base64.StdEncoding.DecodeString(Obfuscate(v, FormatBase64))
		if err != nil {
			t.Fatalf("base64(%q) does not decode: %v", v, err)
		}
		if string(decoded) != v {
			t.Errorf("base64(%q) decoded to %q", v, decoded)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		selector string
		def      Format
		want     Format
	}{
		{"mask", FormatBase64, FormatMask},
		{" REPLACE ", FormatBase64, FormatReplace},
		{"letter-substitution", FormatBase64, FormatLetter},
		{"base64", FormatLetter, FormatBase64},
		{"", FormatBase64, FormatBase64},
		{"rot13", FormatBase64, FormatBase64},
		{"", FormatUnspecified, DefaultFormat},
	}
	for _, tt := range tests {
		if got := Resolve(tt.selector, tt.def); got != tt.want {
			t.Errorf("Resolve(%q, %s) got=%s want=%s", tt.selector, tt.def, got, tt.want)
		}
	}
}

func TestParseFormatUnknown(t *testing.T) {
	if _, ok := ParseFormat("sha256"); ok {
		t.Error("ParseFormat accepted an unknown selector")
	}
	if f, ok := ParseFormat("Mask"); !ok || f != FormatMask {
		t.Errorf("ParseFormat(Mask) got=%s,%v", f, ok)
	}
}
