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

// combineRows is the optimized combine. Where the reference makes four passes
// over the destination chroma, this one builds each pair of output rows in a
// single pass: interleave main and aux into the even row, fill the odd row,
// then restore the even/even corners while both rows are hot.
func combineRows(main, aux, dst Planes, roi prim.ROI) {
	w, h := roi.Width, roi.Height
	c := roi.ChromaSize()

	for y := range h {
		copy(dst.Y.Row(y), main.Y.Row(y)[:w])
	}

	auxRows := aux.Y.Height()
	for cy := range c.Height {
		y0 := 2 * cy
		var oddU, oddV []byte
		if y0+1 < h {
			if r := auxLumaRow(cy, false); r < auxRows {
				oddU = aux.Y.Row(r)[:w]
			}
			if r := auxLumaRow(cy, true); r < auxRows {
				oddV = aux.Y.Row(r)[:w]
			}
		}
		combineChromaRows(dst.U, main.U.Row(cy), aux.U.Row(cy), oddU, y0, w, h)
		combineChromaRows(dst.V, main.V.Row(cy), aux.V.Row(cy), oddV, y0, w, h)
	}
}

// combineChromaRows writes rows y0 and y0+1 (when inside h) of one chroma
// plane. odd is the auxiliary row for y0+1, or nil to upsample m instead.
func combineChromaRows(dst prim.PlaneView, m, a, odd []byte, y0, w, h int) {
	even := dst.Row(y0)[:w]
	for x := range even {
		if x&1 == 0 {
			even[x] = m[x>>1]
		} else {
			even[x] = a[x>>1]
		}
	}

	if y0+1 >= h {
		for x0 := 0; x0+1 < w; x0 += 2 {
			even[x0] = clamp8(2*int32(m[x0>>1]) - int32(even[x0+1]))
		}
		return
	}

	oddRow := dst.Row(y0 + 1)[:w]
	if odd != nil {
		copy(oddRow, odd)
	} else {
		for x := range oddRow {
			oddRow[x] = m[x>>1]
		}
	}
	for x0 := 0; x0 < w; x0 += 2 {
		avg := int32(m[x0>>1])
		if x0+1 < w {
			even[x0] = clamp8(4*avg - int32(even[x0+1]) - int32(oddRow[x0]) - int32(oddRow[x0+1]))
		} else {
			even[x0] = clamp8(2*avg - int32(oddRow[x0]))
		}
	}
}
