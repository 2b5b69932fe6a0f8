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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissing is returned by Validate for an absent, null or empty price.
	ErrMissing = errors.New("price is missing")
	// ErrNegative is returned by Validate for prices below zero.
	ErrNegative = errors.New("price must not be negative")
	// ErrOutOfRange is returned by Validate for prices with too many integer or fractional digits.
	ErrOutOfRange = fmt.Errorf("price must have at most %d integer and %d fractional digits", maxIntegerDigits, maxFractionDigits)
)

const (
	maxIntegerDigits  = 20
	maxFractionDigits = 20
)

// Price is a non-negative decimal kept in its canonical text form.
// It decodes from either a JSON number or a JSON string.
type Price struct {
	text string
	err  error
}

// NewPrice builds a Price from its textual form, as if it had been sent as a JSON string.
func NewPrice(s string) Price {
	var p Price
	p.setText(strings.TrimSpace(s))
	return p
}

// String returns the canonical decimal text that gets obfuscated.
func (p Price) String() string {
	return p.text
}

// Validate reports whether the price is present and a valid non-negative decimal.
func (p Price) Validate() error {
	if p.err != nil {
		return p.err
	}
	if p.text == "" {
		return ErrMissing
	}
	return nil
}

// UnmarshalJSON accepts numbers and strings. Invalid values are recorded and surfaced by Validate
// so the caller can name the offending field.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*p = Price{}
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.setText(strings.TrimSpace(s))
		return nil
	default:
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			p.err = fmt.Errorf("invalid price %s: not a number", data)
			return nil
		}
		// Exponents are checked before String expands them into digits.
		if err := checkNumber(d); err != nil {
			p.text = string(data)
			p.err = err
			return nil
		}
		// Numbers print without trailing zeros, the way they are shown to customers.
		p.text = d.String()
		return nil
	}
}

// MarshalJSON writes the canonical text as a JSON string.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.text)
}

func (p *Price) setText(s string) {
	p.text = s
	if s == "" {
		return
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		p.err = fmt.Errorf("invalid price %q: not a number", s)
		return
	}
	p.err = checkNumber(d)
}

// checkNumber rejects negative values and values whose expanded form would be unreasonably long.
func checkNumber(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegative
	}
	exp := int64(d.Exponent())
	if int64(d.NumDigits())+exp > maxIntegerDigits || -exp > maxFractionDigits {
		return ErrOutOfRange
	}
	return nil
}
