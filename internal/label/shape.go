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
	"image"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so a quarter curve approximates a circle.
const kappa = 0.5522847

// roundedRectMask rasterizes a rounded rectangle inset from the edges of a w×h area.
func roundedRectMask(w, h int, inset, radius float32) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	x0, y0 := inset, inset
	x1, y1 := float32(w)-inset, float32(h)-inset
	if x1 <= x0 || y1 <= y0 {
		return mask
	}
	r := min(max(radius, 0), (x1-x0)/2, (y1-y0)/2)
	k := r * kappa

	z := vector.NewRasterizer(w, h)
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// roundedRingMask covers the band between a rounded rectangle and the same shape shrunk by width.
func roundedRingMask(w, h int, inset, width, radius float32) *image.Alpha {
	outer := roundedRectMask(w, h, inset, radius)
	inner := roundedRectMask(w, h, inset+width, radius-width)
	for i, a := range inner.Pix {
		if a >= outer.Pix[i] {
			outer.Pix[i] = 0
			continue
		}
		outer.Pix[i] -= a
	}
	return outer
}
