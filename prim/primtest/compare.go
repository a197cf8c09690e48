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
	"fmt"

	"github.com/ajroetker/go-prim/prim"
)

func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// SimilarSamples compares the width x height region of two 8-bit planes and
// returns an error at the first sample differing by more than tol.
func SimilarSamples(got, want prim.PlaneView, width, height, tol int) error {
	for y := range height {
		g := got.Row(y)[:width]
		w := want.Row(y)[:width]
		for x := range g {
			if d := absDiff(g[x], w[x]); d > tol {
				return fmt.Errorf("sample (%d,%d): got %d, want %d (diff %d > %d)", x, y, g[x], w[x], d, tol)
			}
		}
	}
	return nil
}

// SimilarRGB compares two packed views of format f channel by channel. Both
// must also be opaque: alpha (or the padding byte) is 0xFF.
func SimilarRGB(got, want prim.PlaneView, f prim.PixelFormat, width, height, tol int) error {
	l, err := prim.LayoutOf(f)
	if err != nil {
		return err
	}
	bpp := l.BytesPerPixel
	for y := range height {
		g := got.Row(y)[:width*bpp]
		w := want.Row(y)[:width*bpp]
		for x := range width {
			pg := g[x*bpp : x*bpp+bpp]
			pw := w[x*bpp : x*bpp+bpp]
			for _, c := range []struct {
				name string
				off  int
			}{{"R", l.R}, {"G", l.G}, {"B", l.B}} {
				if d := absDiff(pg[c.off], pw[c.off]); d > tol {
					return fmt.Errorf("%v pixel (%d,%d) %s: got %d, want %d (diff %d > %d)",
						f, x, y, c.name, pg[c.off], pw[c.off], d, tol)
				}
			}
			if pg[l.A] != 0xFF || pw[l.A] != 0xFF {
				return fmt.Errorf("%v pixel (%d,%d): alpha %#02x/%#02x, want 0xff", f, x, y, pg[l.A], pw[l.A])
			}
		}
	}
	return nil
}

// CheckColor verifies every pixel of a packed view is within tol of (r, g, b)
// and opaque.
func CheckColor(v prim.PlaneView, f prim.PixelFormat, width, height int, r, g, b byte, tol int) error {
	l, err := prim.LayoutOf(f)
	if err != nil {
		return err
	}
	bpp := l.BytesPerPixel
	for y := range height {
		row := v.Row(y)
		for x := range width {
			p := row[x*bpp : x*bpp+bpp]
			if absDiff(p[l.R], r) > tol || absDiff(p[l.G], g) > tol || absDiff(p[l.B], b) > tol {
				return fmt.Errorf("%v pixel (%d,%d): got (%d,%d,%d), want (%d,%d,%d) within %d",
					f, x, y, p[l.R], p[l.G], p[l.B], r, g, b, tol)
			}
			if p[l.A] != 0xFF {
				return fmt.Errorf("%v pixel (%d,%d): alpha %#02x, want 0xff", f, x, y, p[l.A])
			}
		}
	}
	return nil
}
