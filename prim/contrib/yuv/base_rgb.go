// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yuv

import "github.com/ajroetker/go-prim/prim"

// baseRGBToYUV444 is the reference RGB -> 4:4:4 conversion.
func baseRGBToYUV444(src prim.PlaneView, l prim.Layout, dst Planes, roi prim.ROI) {
	bpp := l.BytesPerPixel
	for y := range roi.Height {
		s := src.Row(y)
		yRow := dst.Y.Row(y)
		uRow := dst.U.Row(y)
		vRow := dst.V.Row(y)
		for x := range roi.Width {
			p := s[x*bpp : x*bpp+bpp]
			r, g, b := int32(p[l.R]), int32(p[l.G]), int32(p[l.B])
			yRow[x] = luma(r, g, b)
			uRow[x] = chroma(kUR*r+kUG*g+kUB*b, fixBits)
			vRow[x] = chroma(kVR*r+kVG*g+kVB*b, fixBits)
		}
	}
}

// baseRGBToYUV420 is the reference RGB -> 4:2:0 conversion. Chroma is the
// average over the pixels of each 2x2 block that lie inside roi, so odd
// widths and heights average 2 or 1 pixels at the edges.
func baseRGBToYUV420(src prim.PlaneView, l prim.Layout, dst Planes, roi prim.ROI) {
	bpp := l.BytesPerPixel
	c := roi.ChromaSize()
	for cy := range c.Height {
		y0 := 2 * cy
		rows := min(2, roi.Height-y0)
		uRow := dst.U.Row(cy)
		vRow := dst.V.Row(cy)
		for cx := range c.Width {
			x0 := 2 * cx
			cols := min(2, roi.Width-x0)
			var rs, gs, bs int32
			for dy := range rows {
				s := src.Row(y0 + dy)
				yRow := dst.Y.Row(y0 + dy)
				for dx := range cols {
					x := x0 + dx
					p := s[x*bpp : x*bpp+bpp]
					r, g, b := int32(p[l.R]), int32(p[l.G]), int32(p[l.B])
					yRow[x] = luma(r, g, b)
					rs += r
					gs += g
					bs += b
				}
			}
			shift := chromaShift[rows*cols]
			uRow[cx] = chroma(kUR*rs+kUG*gs+kUB*bs, shift)
			vRow[cx] = chroma(kVR*rs+kVG*gs+kVB*bs, shift)
		}
	}
}
