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

// AVC444 frame layout.
//
// A 4:4:4 frame travels as two 4:2:0 frames. The main frame carries the full
// luma plane and the 2x2 average of each chroma plane. The auxiliary frame
// carries what the average loses:
//
//   - aux Y: the odd rows of the 4:4:4 U and V planes, in 16-row blocks of
//     8 U rows followed by 8 V rows;
//   - aux U/V: the odd columns of the even rows of the 4:4:4 U and V planes.
//
// The even/even sample is rebuilt from the average and the three others.

// stripeRows is the number of chroma rows per stripe in the auxiliary luma
// plane. Two stripes (U then V) fill one 16-row block.
const stripeRows = 8

// auxLumaRow returns the auxiliary luma row that carries the odd 4:4:4
// chroma row 2k+1 of the U plane, or of the V plane when isV is set.
func auxLumaRow(k int, isV bool) int {
	r := (k/stripeRows)*2*stripeRows + k%stripeRows
	if isV {
		r += stripeRows
	}
	return r
}

// blockAverage rounds the mean of the cols x rows block at (x0, y0).
func blockAverage(p prim.PlaneView, x0, y0, cols, rows int) byte {
	sum, n := 0, cols*rows
	for dy := range rows {
		row := p.Row(y0 + dy)
		for dx := range cols {
			sum += int(row[x0+dx])
		}
	}
	return byte((sum + n/2) / n)
}

// restoreCorner rewrites the even/even sample of a block so that the block
// averages to avg again.
func restoreCorner(p prim.PlaneView, avg byte, x0, y0, cols, rows int) {
	n := cols * rows
	if n == 1 {
		return
	}
	sum := int32(n) * int32(avg)
	for dy := range rows {
		row := p.Row(y0 + dy)
		for dx := range cols {
			if dx != 0 || dy != 0 {
				sum -= int32(row[x0+dx])
			}
		}
	}
	p.Row(y0)[x0] = clamp8(sum)
}

// baseYUV444SplitToYUV420 is the reference split of a 4:4:4 frame.
func baseYUV444SplitToYUV420(src, main, aux Planes, roi prim.ROI) {
	w, h := roi.Width, roi.Height
	c := roi.ChromaSize()

	for y := range h {
		copy(main.Y.Row(y), src.Y.Row(y)[:w])
	}

	for cy := range c.Height {
		y0 := 2 * cy
		rows := min(2, h-y0)
		mu := main.U.Row(cy)
		mv := main.V.Row(cy)
		for cx := range c.Width {
			x0 := 2 * cx
			cols := min(2, w-x0)
			mu[cx] = blockAverage(src.U, x0, y0, cols, rows)
			mv[cx] = blockAverage(src.V, x0, y0, cols, rows)
		}
	}

	// Stripes beyond the auxiliary luma plane are dropped.
	auxRows := aux.Y.Height()
	for k := 0; 2*k+1 < h; k++ {
		if r := auxLumaRow(k, false); r < auxRows {
			copy(aux.Y.Row(r), src.U.Row(2*k + 1)[:w])
		}
		if r := auxLumaRow(k, true); r < auxRows {
			copy(aux.Y.Row(r), src.V.Row(2*k + 1)[:w])
		}
	}

	for cy := range c.Height {
		su := src.U.Row(2 * cy)
		sv := src.V.Row(2 * cy)
		au := aux.U.Row(cy)
		av := aux.V.Row(cy)
		for cx := range c.Width {
			// An odd width has no odd column in its last block; repeat the edge.
			x := min(2*cx+1, w-1)
			au[cx] = su[x]
			av[cx] = sv[x]
		}
	}
}

// baseYUV420CombineToYUV444 is the reference combine of a main and an
// auxiliary frame. Odd rows whose stripe lies beyond the auxiliary luma plane
// keep the upsampled main chroma.
func baseYUV420CombineToYUV444(main, aux, dst Planes, roi prim.ROI) {
	w, h := roi.Width, roi.Height
	c := roi.ChromaSize()

	for y := range h {
		copy(dst.Y.Row(y), main.Y.Row(y)[:w])
	}

	for cy := range c.Height {
		y0 := 2 * cy
		rows := min(2, h-y0)
		mu := main.U.Row(cy)
		mv := main.V.Row(cy)
		for dy := range rows {
			du := dst.U.Row(y0 + dy)
			dv := dst.V.Row(y0 + dy)
			for x := range w {
				du[x] = mu[x/2]
				dv[x] = mv[x/2]
			}
		}
	}

	auxRows := aux.Y.Height()
	for k := 0; 2*k+1 < h; k++ {
		if r := auxLumaRow(k, false); r < auxRows {
			copy(dst.U.Row(2*k+1), aux.Y.Row(r)[:w])
		}
		if r := auxLumaRow(k, true); r < auxRows {
			copy(dst.V.Row(2*k+1), aux.Y.Row(r)[:w])
		}
	}

	for cy := range c.Height {
		du := dst.U.Row(2 * cy)
		dv := dst.V.Row(2 * cy)
		au := aux.U.Row(cy)
		av := aux.V.Row(cy)
		for cx := 0; 2*cx+1 < w; cx++ {
			du[2*cx+1] = au[cx]
			dv[2*cx+1] = av[cx]
		}
	}

	for cy := range c.Height {
		y0 := 2 * cy
		rows := min(2, h-y0)
		mu := main.U.Row(cy)
		mv := main.V.Row(cy)
		for cx := range c.Width {
			x0 := 2 * cx
			cols := min(2, w-x0)
			restoreCorner(dst.U, mu[cx], x0, y0, cols, rows)
			restoreCorner(dst.V, mv[cx], x0, y0, cols, rows)
		}
	}
}
