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

package prim

import "fmt"

// PlaneView is a non-owning view over caller memory: one plane of samples
// with its own stride. The zero value is the null view.
//
// A view is validated when built, so every row it hands out lies inside the
// borrowed slice. Rows are capped at the logical width: the alignment padding
// between the end of a row and the next stride is never reachable.
type PlaneView struct {
	data   []byte
	stride int // bytes between row starts
	width  int // samples per row
	height int
	bps    int // bytes per sample
}

// NewPlaneView wraps buf as a plane of width x height samples of
// bytesPerSample bytes each, rows stride bytes apart.
//
// The last row need not be padded to a full stride: buf must hold
// (height-1)*stride + width*bytesPerSample bytes. Views may exceed
// MaxDimension; only the ROI handed to a kernel is bounded by it.
func NewPlaneView(buf []byte, stride, width, height, bytesPerSample int) (PlaneView, error) {
	if width < 0 || height < 0 || bytesPerSample <= 0 {
		return PlaneView{}, fmt.Errorf("%w: plane %dx%d, %d bytes per sample",
			ErrInvalidParameter, width, height, bytesPerSample)
	}
	rowBytes := width * bytesPerSample
	if stride < rowBytes {
		return PlaneView{}, fmt.Errorf("%w: stride %d below row size %d",
			ErrInvalidParameter, stride, rowBytes)
	}
	if width == 0 || height == 0 {
		return PlaneView{stride: stride, width: width, height: height, bps: bytesPerSample}, nil
	}
	need := (height-1)*stride + rowBytes
	if len(buf) < need {
		return PlaneView{}, fmt.Errorf("%w: buffer holds %d bytes, plane %dx%d stride %d needs %d",
			ErrInvalidParameter, len(buf), width, height, stride, need)
	}
	return PlaneView{
		data:   buf[:need:need],
		stride: stride,
		width:  width,
		height: height,
		bps:    bytesPerSample,
	}, nil
}

// NewPlane wraps an 8-bit sample plane (Y, U or V).
func NewPlane(buf []byte, stride, width, height int) (PlaneView, error) {
	return NewPlaneView(buf, stride, width, height, 1)
}

// NewPacked wraps a packed RGB buffer of format f.
func NewPacked(buf []byte, stride, width, height int, f PixelFormat) (PlaneView, error) {
	bpp, err := BytesPerPixel(f)
	if err != nil {
		return PlaneView{}, err
	}
	return NewPlaneView(buf, stride, width, height, bpp)
}

// IsNull reports whether the view borrows no memory.
func (p PlaneView) IsNull() bool {
	return p.data == nil
}

// Width returns the logical width in samples.
func (p PlaneView) Width() int {
	return p.width
}

// Height returns the number of rows.
func (p PlaneView) Height() int {
	return p.height
}

// Stride returns the byte distance between row starts.
func (p PlaneView) Stride() int {
	return p.stride
}

// BytesPerSample returns the size of one sample in bytes.
func (p PlaneView) BytesPerSample() int {
	return p.bps
}

// Row returns row y limited to the logical width. The returned slice has no
// spare capacity.
func (p PlaneView) Row(y int) []byte {
	start := y * p.stride
	end := start + p.width*p.bps
	return p.data[start:end:end]
}

// Bytes returns the borrowed region [0, (height-1)*stride + width*bps).
func (p PlaneView) Bytes() []byte {
	return p.data
}

// SubRows returns the band of rows [y0, y1). The band shares memory with p.
func (p PlaneView) SubRows(y0, y1 int) PlaneView {
	if y0 < 0 || y1 > p.height || y0 >= y1 {
		return PlaneView{stride: p.stride, width: p.width, bps: p.bps}
	}
	start := y0 * p.stride
	end := (y1-1)*p.stride + p.width*p.bps
	return PlaneView{
		data:   p.data[start:end:end],
		stride: p.stride,
		width:  p.width,
		height: y1 - y0,
		bps:    p.bps,
	}
}

// Covers checks that the view can hold a width x height region of
// bytesPerSample samples. name labels the plane in the returned error.
func (p PlaneView) Covers(name string, width, height, bytesPerSample int) error {
	if p.IsNull() {
		return fmt.Errorf("%w: %s plane is null", ErrInvalidParameter, name)
	}
	if p.bps != bytesPerSample {
		return fmt.Errorf("%w: %s plane has %d bytes per sample, want %d",
			ErrInvalidParameter, name, p.bps, bytesPerSample)
	}
	if p.width < width || p.height < height {
		return fmt.Errorf("%w: %s plane %dx%d smaller than %dx%d",
			ErrInvalidParameter, name, p.width, p.height, width, height)
	}
	return nil
}

func (p PlaneView) String() string {
	return fmt.Sprintf("plane %dx%d stride %d bps %d", p.width, p.height, p.stride, p.bps)
}
