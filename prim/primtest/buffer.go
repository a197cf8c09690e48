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

// Package primtest provides guarded buffers and comparators for testing
// conversion kernels.
//
// Every Buffer is surrounded by GuardBytes sentinel bytes and its inter-row
// padding is filled with the same sentinel. After a kernel runs, Check
// reports any sentinel that changed: a write outside the logical rows.
package primtest

import (
	"bytes"
	"fmt"

	"github.com/ajroetker/go-prim/prim"
)

// Sentinel is the guard byte value.
const Sentinel = 'A'

// GuardBytes is the size of the guard region before and after each buffer.
const GuardBytes = 32

// RowPadding is the slack added to every stride beyond the 16-byte aligned
// row size, so that even aligned widths have inter-row padding.
const RowPadding = 16

// Buffer is a sample plane embedded in sentinel-filled memory.
type Buffer struct {
	name     string
	raw      []byte
	stride   int
	width    int
	height   int
	bps      int
	rowBytes int
}

// NewBuffer allocates a guarded plane of width x height samples of bps
// bytes. Logical rows start zeroed; everything else holds Sentinel.
func NewBuffer(name string, width, height, bps int) *Buffer {
	rowBytes := width * bps
	stride := prim.AlignUp(rowBytes, prim.BlockSize) + RowPadding
	b := &Buffer{
		name:     name,
		raw:      bytes.Repeat([]byte{Sentinel}, 2*GuardBytes+stride*height),
		stride:   stride,
		width:    width,
		height:   height,
		bps:      bps,
		rowBytes: rowBytes,
	}
	for y := range height {
		clear(b.Row(y))
	}
	return b
}

// Name returns the label used in error messages.
func (b *Buffer) Name() string {
	return b.name
}

// Stride returns the distance between row starts.
func (b *Buffer) Stride() int {
	return b.stride
}

// Region returns the memory between the two guard regions.
func (b *Buffer) Region() []byte {
	return b.raw[GuardBytes : GuardBytes+b.stride*b.height]
}

// Row returns logical row y.
func (b *Buffer) Row(y int) []byte {
	start := GuardBytes + y*b.stride
	return b.raw[start : start+b.rowBytes]
}

// View returns a PlaneView over the buffer. It panics if the view cannot be
// built, which only happens for negative sizes.
func (b *Buffer) View() prim.PlaneView {
	v, err := prim.NewPlaneView(b.Region(), b.stride, b.width, b.height, b.bps)
	if err != nil {
		panic(fmt.Sprintf("primtest: %s: %v", b.name, err))
	}
	return v
}

// guarded reports whether raw offset i lies outside every logical row.
func (b *Buffer) guarded(i int) bool {
	off := i - GuardBytes
	if off < 0 || off >= b.stride*b.height {
		return true
	}
	return off%b.stride >= b.rowBytes
}

// Check returns an error naming the first overwritten sentinel.
func (b *Buffer) Check() error {
	for i, c := range b.raw {
		if c != Sentinel && b.guarded(i) {
			return fmt.Errorf("%s: guard byte at offset %d overwritten with %#02x", b.name, i-GuardBytes, c)
		}
	}
	return nil
}

// Snapshot copies the whole buffer, guards included.
func (b *Buffer) Snapshot() []byte {
	return bytes.Clone(b.raw)
}

// Unchanged returns an error if the buffer differs from a Snapshot.
func (b *Buffer) Unchanged(snap []byte) error {
	for i := range b.raw {
		if b.raw[i] != snap[i] {
			return fmt.Errorf("%s: byte at offset %d changed from %#02x to %#02x",
				b.name, i-GuardBytes, snap[i], b.raw[i])
		}
	}
	return nil
}

// Planar is a guarded Y/U/V plane triple.
type Planar struct {
	Y, U, V *Buffer
}

// NewPlanar allocates a 4:4:4 triple, or a 4:2:0 one when subsampled is set.
func NewPlanar(name string, roi prim.ROI, subsampled bool) *Planar {
	c := roi
	if subsampled {
		c = roi.ChromaSize()
	}
	return &Planar{
		Y: NewBuffer(name+" Y", roi.Width, roi.Height, 1),
		U: NewBuffer(name+" U", c.Width, c.Height, 1),
		V: NewBuffer(name+" V", c.Width, c.Height, 1),
	}
}

// NewAux allocates an AVC444 auxiliary frame: 4:2:0 with the luma plane
// padded to whole 16-row blocks.
func NewAux(name string, roi prim.ROI) *Planar {
	p := NewPlanar(name, roi, true)
	p.Y = NewBuffer(name+" Y", roi.Width, prim.AlignUp(roi.Height, prim.BlockSize), 1)
	return p
}

// Views returns the three plane views.
func (p *Planar) Views() (y, u, v prim.PlaneView) {
	return p.Y.View(), p.U.View(), p.V.View()
}

// Buffers returns the planes in Y, U, V order.
func (p *Planar) Buffers() []*Buffer {
	return []*Buffer{p.Y, p.U, p.V}
}

// Check runs Check on every plane.
func (p *Planar) Check() error {
	for _, b := range p.Buffers() {
		if err := b.Check(); err != nil {
			return err
		}
	}
	return nil
}

// NewPackedBuffer allocates a guarded packed RGB buffer of format f.
func NewPackedBuffer(name string, roi prim.ROI, f prim.PixelFormat) *Buffer {
	bpp, err := prim.BytesPerPixel(f)
	if err != nil {
		panic(fmt.Sprintf("primtest: %s: %v", name, err))
	}
	return NewBuffer(name, roi.Width, roi.Height, bpp)
}
