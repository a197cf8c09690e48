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

package image

import (
	"fmt"
	stdimage "image"

	xdraw "golang.org/x/image/draw"

	"github.com/ajroetker/go-prim/prim"
)

// ToRGBA copies the roi of a packed view of format f into a new image.RGBA.
// Formats without alpha come out opaque.
func ToRGBA(v prim.PlaneView, f prim.PixelFormat, roi prim.ROI) (*stdimage.RGBA, error) {
	if err := roi.Validate(); err != nil {
		return nil, err
	}
	l, err := prim.LayoutOf(f)
	if err != nil {
		return nil, err
	}
	if err := v.Covers("src", roi.Width, roi.Height, l.BytesPerPixel); err != nil {
		return nil, err
	}
	out := stdimage.NewRGBA(stdimage.Rect(0, 0, roi.Width, roi.Height))
	bpp := l.BytesPerPixel
	for y := range roi.Height {
		src := v.Row(y)
		dst := out.Pix[y*out.Stride : y*out.Stride+roi.Width*4]
		for x := range roi.Width {
			p := src[x*bpp : x*bpp+bpp]
			d := dst[x*4 : x*4+4]
			d[0], d[1], d[2] = p[l.R], p[l.G], p[l.B]
			if l.HasAlpha {
				d[3] = p[l.A]
			} else {
				d[3] = 0xFF
			}
		}
	}
	return out, nil
}

// FromImage converts img into a packed image of format f.
func FromImage(img stdimage.Image, f prim.PixelFormat) (*Packed, error) {
	b := img.Bounds()
	p, err := NewPacked(b.Dx(), b.Dy(), f)
	if err != nil {
		return nil, fmt.Errorf("converting %T: %w", img, err)
	}
	rgba, ok := img.(*stdimage.RGBA)
	if !ok || b.Min != (stdimage.Point{}) {
		rgba = stdimage.NewRGBA(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	}
	bpp := p.bps
	for y := range p.height {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+p.width*4]
		dst := p.Row(y)
		for x := range p.width {
			s := src[x*4 : x*4+4]
			c, err := prim.PackColor(s[0], s[1], s[2], s[3], f)
			if err != nil {
				return nil, err
			}
			if err := prim.WriteColor(c, f, dst[x*bpp:x*bpp+bpp]); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

// Scale resizes img to width x height with a Catmull-Rom filter.
func Scale(img stdimage.Image, width, height int) *stdimage.RGBA {
	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
