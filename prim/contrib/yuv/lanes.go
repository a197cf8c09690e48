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

// Optimized kernels process pixels in batches of up to 16 lanes. Channels are
// deinterleaved into fixed lane arrays once per batch and the arithmetic runs
// through laneOps, which is either the portable loop below or a vector
// implementation registered for a dispatch level. The last batch of a row is
// simply shorter: lane arrays are never read past n for output, and rows are
// never read past the roi width.

// maxLanes is the widest supported batch (AVX-512, 16 x int32).
const maxLanes = 16

// packedBytes is the size of every supported pixel format.
const packedBytes = 4

type lanes [maxLanes]int32

// laneOps is the arithmetic of a batch. Vector implementations may compute
// every lane of the array; only the first n lanes are meaningful.
type laneOps struct {
	// width is the vector width in lanes, or 0 for the portable loops.
	width int

	// weigh computes cr*r + cg*g + cb*b.
	weigh func(out *lanes, n int, cr, cg, cb int32, r, g, b *lanes)

	// narrow stores clamp8((acc+round)>>shift + bias) into out.
	narrow func(out []byte, acc *lanes, round int32, shift uint, bias int32)

	// terms computes the chroma contributions to R, G and B from the
	// unbiased chroma samples d (U-128) and e (V-128).
	terms func(n int, d, e, rc, gc, bc *lanes)

	// decode rebuilds clamped R, G and B lanes from luma and chroma terms.
	decode func(n int, y, rc, gc, bc, r, g, b *lanes)
}

var portableOps = laneOps{
	weigh:  weighPortable,
	narrow: narrowPortable,
	terms:  termsPortable,
	decode: decodePortable,
}

// vectorOps holds the vector implementations usable on this host, keyed by
// dispatch level. It is filled by init functions in SIMD builds only.
var vectorOps = map[prim.DispatchLevel]laneOps{}

// laneKernels holds the batch width and arithmetic selected for this host.
type laneKernels struct {
	n   int
	ops laneOps
}

// newLaneKernels picks the batch width for n lanes. Vector ops fix the width.
func newLaneKernels(n int, ops laneOps) laneKernels {
	if ops.width > 0 {
		return laneKernels{n: ops.width, ops: ops}
	}
	switch {
	case n <= 4:
		n = 4
	case n <= 8:
		n = 8
	default:
		n = maxLanes
	}
	return laneKernels{n: n, ops: ops}
}

func weighPortable(out *lanes, n int, cr, cg, cb int32, r, g, b *lanes) {
	for i := range n {
		out[i] = cr*r[i] + cg*g[i] + cb*b[i]
	}
}

func narrowPortable(out []byte, acc *lanes, round int32, shift uint, bias int32) {
	for i := range out {
		out[i] = clamp8((acc[i]+round)>>shift + bias)
	}
}

func termsPortable(n int, d, e, rc, gc, bc *lanes) {
	for i := range n {
		rc[i] = kRV * e[i]
		gc[i] = kGU*d[i] + kGV*e[i]
		bc[i] = kBU * d[i]
	}
}

func decodePortable(n int, y, rc, gc, bc, r, g, b *lanes) {
	for i := range n {
		base := y[i]<<fixBits + fixHalf
		r[i] = int32(clamp8((base + rc[i]) >> fixBits))
		g[i] = int32(clamp8((base - gc[i]) >> fixBits))
		b[i] = int32(clamp8((base + bc[i]) >> fixBits))
	}
}

// loadRGB deinterleaves n pixels starting at s.
func loadRGB(s []byte, l prim.Layout, n int, r, g, b *lanes) {
	s = s[:n*packedBytes]
	for i := range n {
		p := s[i*packedBytes : i*packedBytes+packedBytes]
		r[i] = int32(p[l.R])
		g[i] = int32(p[l.G])
		b[i] = int32(p[l.B])
	}
}

// storeRGB interleaves n decoded pixels into d.
func storeRGB(d []byte, l prim.Layout, n int, r, g, b *lanes) {
	d = d[:n*packedBytes]
	for i := range n {
		putPixel(d[i*packedBytes:i*packedBytes+packedBytes], l, byte(r[i]), byte(g[i]), byte(b[i]))
	}
}

// loadChroma widens a batch of U and V samples and removes the bias.
func loadChroma(u, v []byte, d, e *lanes) {
	for i := range u {
		d[i] = int32(u[i]) - 128
		e[i] = int32(v[i]) - 128
	}
}

func loadLuma(ys []byte, y *lanes) {
	for i := range ys {
		y[i] = int32(ys[i])
	}
}

// chromaRound is the rounding term of a chroma sum scaled by 1<<shift.
func chromaRound(shift uint) int32 {
	return 1 << (shift - 1)
}

func (k laneKernels) rgbToYUV444(src prim.PlaneView, l prim.Layout, dst Planes, roi prim.ROI) {
	var r, g, b, acc lanes
	w := roi.Width
	for y := range roi.Height {
		s := src.Row(y)[:w*packedBytes]
		yRow := dst.Y.Row(y)[:w]
		uRow := dst.U.Row(y)[:w]
		vRow := dst.V.Row(y)[:w]
		for x := 0; x < w; x += k.n {
			n := min(k.n, w-x)
			loadRGB(s[x*packedBytes:], l, n, &r, &g, &b)

			k.ops.weigh(&acc, n, kYR, kYG, kYB, &r, &g, &b)
			k.ops.narrow(yRow[x:x+n], &acc, fixHalf, fixBits, 0)

			k.ops.weigh(&acc, n, kUR, kUG, kUB, &r, &g, &b)
			k.ops.narrow(uRow[x:x+n], &acc, chromaRound(fixBits), fixBits, 128)

			k.ops.weigh(&acc, n, kVR, kVG, kVB, &r, &g, &b)
			k.ops.narrow(vRow[x:x+n], &acc, chromaRound(fixBits), fixBits, 128)
		}
	}
}

// rgbToYUV420 handles one row pair per chroma row. Each batch covers n chroma
// samples, i.e. up to 2n pixels of each of the two rows, converted k.n pixels
// at a time; the 2x2 sums are accumulated in lane arrays while luma is
// written.
func (k laneKernels) rgbToYUV420(src prim.PlaneView, l prim.Layout, dst Planes, roi prim.ROI) {
	var r, g, b, rs, gs, bs, acc lanes
	w, h := roi.Width, roi.Height
	c := roi.ChromaSize()
	for cy := range c.Height {
		y0 := 2 * cy
		rows := min(2, h-y0)
		uRow := dst.U.Row(cy)[:c.Width]
		vRow := dst.V.Row(cy)[:c.Width]
		for cx := 0; cx < c.Width; cx += k.n {
			n := min(k.n, c.Width-cx)
			x0 := 2 * cx
			px := min(2*n, w-x0)
			clear(rs[:n])
			clear(gs[:n])
			clear(bs[:n])
			for dy := range rows {
				s := src.Row(y0 + dy)[x0*packedBytes : (x0+px)*packedBytes]
				yRow := dst.Y.Row(y0 + dy)[x0 : x0+px]
				for p0 := 0; p0 < px; p0 += k.n {
					m := min(k.n, px-p0)
					loadRGB(s[p0*packedBytes:], l, m, &r, &g, &b)
					k.ops.weigh(&acc, m, kYR, kYG, kYB, &r, &g, &b)
					k.ops.narrow(yRow[p0:p0+m], &acc, fixHalf, fixBits, 0)
					for i := range m {
						j := (p0 + i) >> 1
						rs[j] += r[i]
						gs[j] += g[i]
						bs[j] += b[i]
					}
				}
			}

			// Only the last chroma column of an odd width averages one column.
			shift := chromaShift[2*rows]
			lastShift := shift
			if px < 2*n {
				lastShift = chromaShift[rows]
			}

			k.ops.weigh(&acc, n, kUR, kUG, kUB, &rs, &gs, &bs)
			out := uRow[cx : cx+n]
			k.ops.narrow(out, &acc, chromaRound(shift), shift, 128)
			out[n-1] = chroma(acc[n-1], lastShift)

			k.ops.weigh(&acc, n, kVR, kVG, kVB, &rs, &gs, &bs)
			out = vRow[cx : cx+n]
			k.ops.narrow(out, &acc, chromaRound(shift), shift, 128)
			out[n-1] = chroma(acc[n-1], lastShift)
		}
	}
}

func (k laneKernels) yuv444ToRGB(src Planes, dst prim.PlaneView, l prim.Layout, roi prim.ROI) {
	var yl, d, e, rc, gc, bc, r, g, b lanes
	w := roi.Width
	for y := range roi.Height {
		yRow := src.Y.Row(y)[:w]
		uRow := src.U.Row(y)[:w]
		vRow := src.V.Row(y)[:w]
		out := dst.Row(y)[:w*packedBytes]
		for x := 0; x < w; x += k.n {
			n := min(k.n, w-x)
			loadChroma(uRow[x:x+n], vRow[x:x+n], &d, &e)
			k.ops.terms(n, &d, &e, &rc, &gc, &bc)
			loadLuma(yRow[x:x+n], &yl)
			k.ops.decode(n, &yl, &rc, &gc, &bc, &r, &g, &b)
			storeRGB(out[x*packedBytes:], l, n, &r, &g, &b)
		}
	}
}

// yuv420ToRGB computes the chroma terms of a batch once, spreads them over
// the pixel columns of the batch and applies them to both rows of each block.
func (k laneKernels) yuv420ToRGB(src Planes, dst prim.PlaneView, l prim.Layout, roi prim.ROI) {
	var yl, d, e, rc, gc, bc, r, g, b lanes
	// Per-pixel chroma terms of the up to 2n columns of a batch.
	var rx, gx, bx [2]lanes
	w, h := roi.Width, roi.Height
	c := roi.ChromaSize()
	for cy := range c.Height {
		y0 := 2 * cy
		rows := min(2, h-y0)
		uRow := src.U.Row(cy)[:c.Width]
		vRow := src.V.Row(cy)[:c.Width]
		for cx := 0; cx < c.Width; cx += k.n {
			n := min(k.n, c.Width-cx)
			loadChroma(uRow[cx:cx+n], vRow[cx:cx+n], &d, &e)
			k.ops.terms(n, &d, &e, &rc, &gc, &bc)
			x0 := 2 * cx
			px := min(2*n, w-x0)
			for i := range px {
				half, j := i/k.n, i%k.n
				rx[half][j] = rc[i>>1]
				gx[half][j] = gc[i>>1]
				bx[half][j] = bc[i>>1]
			}
			for dy := range rows {
				ys := src.Y.Row(y0 + dy)[x0 : x0+px]
				out := dst.Row(y0 + dy)[x0*packedBytes : (x0+px)*packedBytes]
				for p0, half := 0, 0; p0 < px; p0, half = p0+k.n, half+1 {
					m := min(k.n, px-p0)
					loadLuma(ys[p0:p0+m], &yl)
					k.ops.decode(m, &yl, &rx[half], &gx[half], &bx[half], &r, &g, &b)
					storeRGB(out[p0*packedBytes:], l, m, &r, &g, &b)
				}
			}
		}
	}
}
