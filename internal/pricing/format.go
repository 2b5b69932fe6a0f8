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

// Package pricing turns prices into the obfuscated strings printed on labels.
package pricing

import "strings"

// Format selects the obfuscation applied to a price before display.
type Format int

const (
	FormatUnspecified Format = iota
	FormatBase64
	FormatMask
	FormatReplace
	FormatLetter
)

// DefaultFormat is used when no format is requested and no other default is configured.
const DefaultFormat = FormatLetter

var formatNames = map[Format]string{
	FormatUnspecified: "unspecified",
	FormatBase64:      "base64",
	FormatMask:        "mask",
	FormatReplace:     "replace",
	FormatLetter:      "letter",
}

var formatAliases = map[string]Format{
	"base64":              FormatBase64,
	"mask":                FormatMask,
	"replace":             FormatReplace,
	"letter":              FormatLetter,
	"letters":             FormatLetter,
	"substitution":        FormatLetter,
	"letter-substitution": FormatLetter,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat maps a request selector to a Format. Matching ignores case and surrounding space.
func ParseFormat(s string) (Format, bool) {
	f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]
	return f, ok
}

// Resolve returns the format named by selector, or def when the selector is absent or unknown.
// An unspecified def resolves to DefaultFormat.
func Resolve(selector string, def Format) Format {
	if f, ok := ParseFormat(selector); ok {
		return f
	}
	if def == FormatUnspecified {
		return DefaultFormat
	}
	return def
}
