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

// putPixel stores one converted pixel. The alpha (or padding) byte is always
// opaque: planar YUV carries no alpha.
func putPixel(p []byte, l prim.Layout, r, g, b byte) {
	p[l.R] = r
	p[l.G] = g
	p[l.B] = b
	p[l.A] = 0xFF
}

// baseYUV444ToRGB is the reference 4:4:4 -> RGB conversion.
func baseYUV444ToRGB(src Planes, dst prim.PlaneView, l prim.Layout, roi prim.ROI) {
	bpp := l.BytesPerPixel
	for y := range roi.Height {
		yRow := src.Y.Row(y)
		uRow := src.U.Row(y)
		vRow := src.V.Row(y)
		d := dst.Row(y)
		for x := range roi.Width {
			r, g, b := toRGB(int32(yRow[x]), int32(uRow[x]), int32(vRow[x]))
			putPixel(d[x*bpp:x*bpp+bpp], l, r, g, b)
		}
	}
}

// baseYUV420ToRGB is the reference 4:2:0 -> RGB conversion. Chroma is
// replicated over its 2x2 block (nearest neighbour).
func baseYUV420ToRGB(src Planes, dst prim.PlaneView, l prim.Layout, roi prim.ROI) {
	bpp := l.BytesPerPixel
	for y := range roi.Height {
		yRow := src.Y.Row(y)
		uRow := src.U.Row(y / 2)
		vRow := src.V.Row(y / 2)
		d := dst.Row(y)
		for x := range roi.Width {
			r, g, b := toRGB(int32(yRow[x]), int32(uRow[x/2]), int32(vRow[x/2]))
			putPixel(d[x*bpp:x*bpp+bpp], l, r, g, b)
		}
	}
}
