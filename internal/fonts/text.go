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

package fonts

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Align is the horizontal anchor of a string relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DrawString draws s with its baseline at y, anchored at x according to align.
func DrawString(dst draw.Image, face font.Face, c color.Color, s string, x, y int, align Align) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(s)
	start := fixed.I(x)
	switch align {
	case AlignCenter:
		start -= width / 2
	case AlignRight:
		start -= width
	}
	d.Dot = fixed.Point26_6{X: start, Y: fixed.I(y)}
	d.DrawString(s)
}

// Baseline returns the baseline that vertically centers a line of face inside [top, top+height).
func Baseline(face font.Face, top, height int) int {
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	return top + (height+ascent-descent)/2
}

// Width returns the advance width of s in whole pixels.
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
