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
	"io"
)

// RawSize returns the size of a tightly packed planar frame: width x height
// luma samples followed by the two chroma planes.
func RawSize(width, height int, subsampled bool) int {
	cw, ch := width, height
	if subsampled {
		cw, ch = (width+1)/2, (height+1)/2
	}
	return width*height + 2*cw*ch
}

// rawPlanes lists the planes with the number of rows each contributes to the
// raw layout. Padding rows of an auxiliary luma plane are not part of it.
func (f *Frame) rawPlanes() []struct {
	p    *Plane
	rows int
} {
	return []struct {
		p    *Plane
		rows int
	}{
		{f.Y, f.height},
		{f.U, f.U.height},
		{f.V, f.V.height},
	}
}

// WriteRaw writes the frame as tightly packed planes (I420 or I444 order).
func (f *Frame) WriteRaw(w io.Writer) error {
	for _, pl := range f.rawPlanes() {
		for y := range pl.rows {
			if _, err := w.Write(pl.p.Row(y)); err != nil {
				return fmt.Errorf("writing raw frame: %w", err)
			}
		}
	}
	return nil
}

// ReadRaw fills the frame from tightly packed planes.
func (f *Frame) ReadRaw(r io.Reader) error {
	for _, pl := range f.rawPlanes() {
		for y := range pl.rows {
			if _, err := io.ReadFull(r, pl.p.Row(y)); err != nil {
				return fmt.Errorf("reading raw %dx%d frame: %w", f.width, f.height, err)
			}
		}
	}
	return nil
}
