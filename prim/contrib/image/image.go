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

// Package image allocates frames for the conversion kernels.
//
// Frames own their memory and hand out prim.PlaneView values. Rows are
// padded to a multiple of prim.BlockSize bytes and the auxiliary luma plane
// of an AVC444 frame is padded to whole 16-row blocks, matching what a
// decoder produces. Kernels never touch the padding.
//
// Example usage:
//
//	src, err := image.NewPacked(1920, 1080, prim.BGRX32)
//	...
//	dst, err := image.NewFrame420(1920, 1080)
//	...
//	err = yuv.Active().RGBToYUV420(src.View(), src.Format(), dst.Planes(), dst.ROI())
package image

import (
	"fmt"

	"github.com/ajroetker/go-prim/prim"
	"github.com/ajroetker/go-prim/prim/contrib/yuv"
)

// Plane is an owning single-channel plane with block-aligned rows.
type Plane struct {
	data   []byte
	width  int
	height int
	stride int // bytes per row, including padding
	bps    int
}

// NewPlane allocates a width x height plane of bps-byte samples with
// max(height, allocHeight) rows. Non-positive sizes yield an empty plane.
func NewPlane(width, height, allocHeight, bps int) *Plane {
	if width <= 0 || height <= 0 || bps <= 0 {
		return &Plane{bps: max(bps, 1)}
	}
	stride := prim.AlignUp(width*bps, prim.BlockSize)
	rows := max(height, allocHeight)
	return &Plane{
		data:   make([]byte, stride*rows),
		width:  width,
		height: rows,
		stride: stride,
		bps:    bps,
	}
}

// Width returns the plane width in samples.
func (p *Plane) Width() int {
	return p.width
}

// Height returns the number of allocated rows.
func (p *Plane) Height() int {
	return p.height
}

// Stride returns the number of bytes per row (including padding).
func (p *Plane) Stride() int {
	return p.stride
}

// Row returns row y limited to the plane width, or nil out of range.
func (p *Plane) Row(y int) []byte {
	if y < 0 || y >= p.height || p.data == nil {
		return nil
	}
	start := y * p.stride
	return p.data[start : start+p.width*p.bps]
}

// View returns a PlaneView over the whole plane.
func (p *Plane) View() prim.PlaneView {
	if p.data == nil {
		return prim.PlaneView{}
	}
	// The buffer is stride*height bytes and the stride covers a row, so the
	// view always builds.
	v, _ := prim.NewPlaneView(p.data, p.stride, p.width, p.height, p.bps)
	return v
}

// Fill sets every sample byte of the plane to value.
func (p *Plane) Fill(value byte) {
	for y := range p.height {
		row := p.Row(y)
		for i := range row {
			row[i] = value
		}
	}
}

// Clone creates a deep copy of the plane.
func (p *Plane) Clone() *Plane {
	c := *p
	c.data = append([]byte(nil), p.data...)
	return &c
}

// Frame is an owning Y/U/V frame.
type Frame struct {
	Y, U, V    *Plane
	width      int
	height     int
	subsampled bool
}

func newFrame(width, height int, subsampled bool, lumaRows int) (*Frame, error) {
	roi := prim.ROI{Width: width, Height: height}
	if err := roi.Validate(); err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	c := roi
	if subsampled {
		c = roi.ChromaSize()
	}
	return &Frame{
		Y:          NewPlane(width, height, lumaRows, 1),
		U:          NewPlane(c.Width, c.Height, 0, 1),
		V:          NewPlane(c.Width, c.Height, 0, 1),
		width:      width,
		height:     height,
		subsampled: subsampled,
	}, nil
}

// NewFrame420 allocates a 4:2:0 frame (I420). Sizes beyond prim.MaxDimension
// return prim.ErrInternalLimit.
func NewFrame420(width, height int) (*Frame, error) {
	return newFrame(width, height, true, 0)
}

// NewFrame444 allocates a 4:4:4 frame (I444).
func NewFrame444(width, height int) (*Frame, error) {
	return newFrame(width, height, false, 0)
}

// NewAuxFrame allocates the auxiliary frame of an AVC444 pair: 4:2:0 with the
// luma plane padded to whole 16-row blocks.
func NewAuxFrame(width, height int) (*Frame, error) {
	return newFrame(width, height, true, prim.AlignUp(height, prim.BlockSize))
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Subsampled reports whether the chroma planes are 4:2:0.
func (f *Frame) Subsampled() bool {
	return f.subsampled
}

// ROI returns the frame region.
func (f *Frame) ROI() prim.ROI {
	return prim.ROI{Width: f.width, Height: f.height}
}

// Planes returns views of the three planes.
func (f *Frame) Planes() yuv.Planes {
	return yuv.Planes{Y: f.Y.View(), U: f.U.View(), V: f.V.View()}
}

// Clone creates a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := *f
	c.Y, c.U, c.V = f.Y.Clone(), f.U.Clone(), f.V.Clone()
	return &c
}

// Packed is an owning packed RGB image.
type Packed struct {
	*Plane
	format prim.PixelFormat
}

// NewPacked allocates a packed image of format f.
func NewPacked(width, height int, f prim.PixelFormat) (*Packed, error) {
	bpp, err := prim.BytesPerPixel(f)
	if err != nil {
		return nil, err
	}
	if err := (prim.ROI{Width: width, Height: height}).Validate(); err != nil {
		return nil, fmt.Errorf("packed image: %w", err)
	}
	return &Packed{Plane: NewPlane(width, height, 0, bpp), format: f}, nil
}

// Format returns the pixel format.
func (p *Packed) Format() prim.PixelFormat {
	return p.format
}

// ROI returns the image region.
func (p *Packed) ROI() prim.ROI {
	return prim.ROI{Width: p.width, Height: p.height}
}
