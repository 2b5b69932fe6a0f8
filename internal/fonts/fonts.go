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

// Package fonts registers the label typefaces once per process and hands out font faces.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrNotRegistered is returned when faces are requested before Register succeeded.
var ErrNotRegistered = errors.New("fonts not registered")

var (
	registerOnce sync.Once
	registerErr  error
	regular      *opentype.Font
	bold         *opentype.Font
)

// Register loads the regular and bold families. Empty paths select the bundled Go fonts.
// Only the first call does any work; later calls return its result.
func Register(regularPath, boldPath string) error {
	registerOnce.Do(func() {
		r, err := load(regularPath, goregular.TTF)
		if err != nil {
			registerErr = fmt.Errorf("failed to load regular font: %w", err)
			return
		}
		b, err := load(boldPath, gobold.TTF)
		if err != nil {
			registerErr = fmt.Errorf("failed to load bold font: %w", err)
			return
		}
		regular, bold = r, b
	})
	return registerErr
}

// Regular returns a new regular face at the given pixel size.
func Regular(size float64) (font.Face, error) {
	return newFace(regular, size)
}

// Bold returns a new bold face at the given pixel size.
func Bold(size float64) (font.Face, error) {
	return newFace(bold, size)
}

// Faces are not safe for concurrent use, so every caller gets its own.
func newFace(f *opentype.Font, size float64) (font.Face, error) {
	if f == nil {
		return nil, ErrNotRegistered
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

func load(path string, bundled []byte) (*opentype.Font, error) {
	data := bundled
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	return opentype.Parse(data)
}
