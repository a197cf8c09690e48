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

package primtest

import (
	"math/rand/v2"

	"github.com/ajroetker/go-prim/prim"
)

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomROI returns a region with width in [1, maxWidth] and height in
// [1, maxHeight].
func RandomROI(r *rand.Rand, maxWidth, maxHeight int) prim.ROI {
	return prim.ROI{
		Width:  1 + r.IntN(maxWidth),
		Height: 1 + r.IntN(maxHeight),
	}
}

// FillRandom fills the logical rows of b with random bytes.
func FillRandom(r *rand.Rand, b *Buffer) {
	for y := range b.height {
		row := b.Row(y)
		for i := range row {
			row[i] = byte(r.Uint32())
		}
	}
}

// FillColor fills a packed buffer of format f with one color.
func FillColor(b *Buffer, f prim.PixelFormat, red, green, blue, alpha byte) error {
	c, err := prim.PackColor(red, green, blue, alpha, f)
	if err != nil {
		return err
	}
	for y := range b.height {
		row := b.Row(y)
		for x := 0; x+b.bps <= len(row); x += b.bps {
			if err := prim.WriteColor(c, f, row[x:x+b.bps]); err != nil {
				return err
			}
		}
	}
	return nil
}

// FillBlocks fills a packed buffer of format f with a random opaque color per
// 2x2 block, so that 4:2:0 subsampling loses no chroma.
func FillBlocks(r *rand.Rand, b *Buffer, f prim.PixelFormat) error {
	cw := (b.width + 1) / 2
	colors := make([]uint32, cw)
	for y := range b.height {
		if y%2 == 0 {
			for i := range colors {
				c, err := prim.PackColor(byte(r.Uint32()), byte(r.Uint32()), byte(r.Uint32()), 0xFF, f)
				if err != nil {
					return err
				}
				colors[i] = c
			}
		}
		row := b.Row(y)
		for x := range b.width {
			if err := prim.WriteColor(colors[x/2], f, row[x*b.bps:x*b.bps+b.bps]); err != nil {
				return err
			}
		}
	}
	return nil
}
