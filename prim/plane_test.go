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

import (
	"errors"
	"testing"
)

func TestNewPlaneView(t *testing.T) {
	buf := make([]byte, 100)
	p, err := NewPlane(buf, 12, 10, 8)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	if p.Width() != 10 || p.Height() != 8 || p.Stride() != 12 || p.BytesPerSample() != 1 {
		t.Errorf("got %v", p)
	}
	// Last row needs only width bytes: 7*12 + 10 = 94.
	if len(p.Bytes()) != 94 {
		t.Errorf("Bytes() len = %d, want 94", len(p.Bytes()))
	}
}

func TestNewPlaneViewRejects(t *testing.T) {
	tests := []struct {
		name                  string
		size                  int
		stride, width, height int
		bps                   int
		want                  error
	}{
		{"stride below row", 100, 9, 10, 2, 1, ErrInvalidParameter},
		{"packed stride below row", 400, 39, 10, 2, 4, ErrInvalidParameter},
		{"buffer too short", 93, 12, 10, 8, 1, ErrInvalidParameter},
		{"negative width", 100, 12, -1, 8, 1, ErrInvalidParameter},
		{"negative height", 100, 12, 10, -1, 1, ErrInvalidParameter},
		{"zero bps", 100, 12, 10, 8, 0, ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlaneView(make([]byte, tt.size), tt.stride, tt.width, tt.height, tt.bps)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlaneViewBeyondMaxDimension(t *testing.T) {
	const width = MaxDimension + 16
	p, err := NewPlane(make([]byte, 2*width), width, width, 2)
	if err != nil {
		t.Fatalf("NewPlane %dx2: %v", width, err)
	}
	if err := p.Covers("wide", 64, 2, 1); err != nil {
		t.Errorf("Covers(64x2) = %v", err)
	}
	if err := (ROI{Width: width, Height: 2}).Validate(); !errors.Is(err, ErrInternalLimit) {
		t.Errorf("ROI %dx2 Validate() = %v, want ErrInternalLimit", width, err)
	}
}

func TestPlaneViewRowIsCapped(t *testing.T) {
	buf := make([]byte, 64)
	p, err := NewPlane(buf, 16, 5, 4)
	if err != nil {
		t.Fatal(err)
	}
	for y := range p.Height() {
		row := p.Row(y)
		if len(row) != 5 || cap(row) != 5 {
			t.Errorf("row %d: len %d cap %d, want 5/5", y, len(row), cap(row))
		}
		row[0] = byte(y + 1)
	}
	for y := range 4 {
		if buf[y*16] != byte(y+1) {
			t.Errorf("row %d not written through to caller memory", y)
		}
	}
}

func TestPlaneViewZeroSize(t *testing.T) {
	p, err := NewPlane(nil, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewPlane(empty): %v", err)
	}
	if !p.IsNull() {
		t.Error("empty view should be null")
	}
	var zero PlaneView
	if err := zero.Covers("Y", 1, 1, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Covers on null view: got %v", err)
	}
}

func TestPlaneViewSubRows(t *testing.T) {
	buf := make([]byte, 8*10)
	for i := range buf {
		buf[i] = byte(i)
	}
	p, _ := NewPlane(buf, 8, 6, 10)
	band := p.SubRows(3, 7)
	if band.Height() != 4 || band.Width() != 6 {
		t.Fatalf("band %v", band)
	}
	for y := range band.Height() {
		if band.Row(y)[0] != byte((y+3)*8) {
			t.Errorf("band row %d starts at %d", y, band.Row(y)[0])
		}
	}
	if !p.SubRows(5, 5).IsNull() {
		t.Error("empty band should be null")
	}
	if !p.SubRows(8, 11).IsNull() {
		t.Error("out of range band should be null")
	}
}

func TestPlaneViewCovers(t *testing.T) {
	p, _ := NewPacked(make([]byte, 4*8*8), 32, 8, 8, BGRA32)
	if err := p.Covers("rgb", 8, 8, 4); err != nil {
		t.Errorf("Covers exact: %v", err)
	}
	if err := p.Covers("rgb", 9, 8, 4); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Covers wide: got %v", err)
	}
	if err := p.Covers("rgb", 8, 8, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Covers bps: got %v", err)
	}
	if _, err := NewPacked(make([]byte, 64), 32, 1, 1, FormatUnknown); !errors.Is(err, ErrUnsupported) {
		t.Errorf("NewPacked unknown format: got %v", err)
	}
}

func TestROI(t *testing.T) {
	tests := []struct {
		roi             ROI
		chroma, aligned ROI
		err             error
	}{
		{ROI{64, 64}, ROI{32, 32}, ROI{64, 64}, nil},
		{ROI{17, 33}, ROI{9, 17}, ROI{32, 48}, nil},
		{ROI{1, 1}, ROI{1, 1}, ROI{16, 16}, nil},
		{ROI{0, 10}, ROI{0, 5}, ROI{0, 16}, ErrInvalidParameter},
		{ROI{10, 0}, ROI{5, 0}, ROI{16, 0}, ErrInvalidParameter},
		{ROI{MaxDimension + 1, 4}, ROI{MaxDimension/2 + 1, 2}, ROI{MaxDimension + 16, 16}, ErrInternalLimit},
	}
	for _, tt := range tests {
		t.Run(tt.roi.String(), func(t *testing.T) {
			if got := tt.roi.ChromaSize(); got != tt.chroma {
				t.Errorf("ChromaSize = %v, want %v", got, tt.chroma)
			}
			if got := tt.roi.Aligned(); got != tt.aligned {
				t.Errorf("Aligned = %v, want %v", got, tt.aligned)
			}
			if err := tt.roi.Validate(); !errors.Is(err, tt.err) {
				t.Errorf("Validate = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want Status
	}{
		{nil, Success},
		{ErrInvalidParameter, InvalidParameter},
		{ErrUnsupported, Unsupported},
		{ErrInternalLimit, InternalLimit},
		{ROI{}.Validate(), InvalidParameter},
		{func() error { _, err := LayoutOf(0); return err }(), Unsupported},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("StatusOf(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
