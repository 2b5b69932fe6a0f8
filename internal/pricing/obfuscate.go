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
)

const maskFill = "***"

var (
	replaceDigits = strings.NewReplacer("0", "#", "5", "@", "9", "*")
	letterDigits  = strings.NewReplacer(
		"1", "O", "2", "W", "3", "H", "4", "R", "5", "F",
		"6", "X", "7", "S", "8", "E", "9", "N", "0", "T",
		".", "Z",
	)
)

// Obfuscate renders value in the given format. It is total: every input yields a string.
func Obfuscate(value string, f Format) string {
	switch f {
	case FormatBase64:
		return base64.StdEncoding.EncodeToString([]byte(value))
	case FormatMask:
		return mask(value)
	case FormatReplace:
		return replaceDigits.Replace(value)
	case FormatLetter:
		return letterDigits.Replace(value)
	default:
		return Obfuscate(value, DefaultFormat)
	}
}

// mask keeps the first and last two characters of values longer than four.
func mask(value string) string {
	if len(value) <= 4 {
		return maskFill
	}
	return value[:2] + maskFill + value[len(value)-2:]
}
