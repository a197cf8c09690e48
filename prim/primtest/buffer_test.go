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
	"testing"

	"github.com/ajroetker/go-prim/prim"
)

func TestBufferLayout(t *testing.T) {
	b := NewBuffer("y", 17, 3, 1)
	if b.Stride() != 32+RowPadding {
		t.Fatalf("Stride() = %d, want %d", b.Stride(), 32+RowPadding)
	}
	v := b.View()
	if v.Width() != 17 || v.Height() != 3 {
		t.Fatalf("View() = %v", v)
	}
	for y := range 3 {
		for _, c := range b.Row(y) {
			if c != 0 {
				t.Fatalf("row %d not zeroed", y)
			}
		}
	}
	if err := b.Check(); err != nil {
		t.Fatalf("fresh buffer: %v", err)
	}
}

func TestBufferCheckDetectsWrites(t *testing.T) {
	tests := []struct {
		name   string
		offset func(b *Buffer) int
	}{
		{"before", func(b *Buffer) int { return GuardBytes - 1 }},
		{"row padding", func(b *Buffer) int { return GuardBytes + 17 }},
		{"last row padding", func(b *Buffer) int { return GuardBytes + 2*b.Stride() + 17 }},
		{"after", func(b *Buffer) int { return len(b.raw) - 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer("y", 17, 3, 1)
			b.raw[tt.offset(b)] = 0
			if err := b.Check(); err == nil {
				t.Fatal("Check() = nil, want guard error")
			}
		})
	}
}

func TestBufferRowWritesAreAllowed(t *testing.T) {
	b := NewBuffer("rgb", 5, 4, 4)
	for y := range 4 {
		row := b.View().Row(y)
		for i := range row {
			row[i] = 0xEE
		}
	}
	if err := b.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestUnchanged(t *testing.T) {
	b := NewBuffer("u", 9, 9, 1)
	snap := b.Snapshot()
	if err := b.Unchanged(snap); err != nil {
		t.Fatal(err)
	}
	b.Row(4)[8] = 1
	if err := b.Unchanged(snap); err == nil {
		t.Fatal("Unchanged() = nil after a write")
	}
}

func TestNewAux(t *testing.T) {
	p := NewAux("aux", prim.ROI{Width: 17, Height: 33})
	y, u, v := p.Views()
	if y.Height() != 48 || y.Width() != 17 {
		t.Errorf("aux Y = %v, want 17x48", y)
	}
	if u.Width() != 9 || u.Height() != 17 || v.Width() != 9 || v.Height() != 17 {
		t.Errorf("aux U/V = %v / %v, want 9x17", u, v)
	}
}

func TestSimilarRGB(t *testing.T) {
	roi := prim.ROI{Width: 3, Height: 2}
	a := NewPackedBuffer("a", roi, prim.BGRX32)
	b := NewPackedBuffer("b", roi, prim.BGRX32)
	if err := FillColor(a, prim.BGRX32, 10, 20, 30, 0xFF); err != nil {
		t.Fatal(err)
	}
	if err := FillColor(b, prim.BGRX32, 12, 19, 30, 0xFF); err != nil {
		t.Fatal(err)
	}
	if err := SimilarRGB(a.View(), b.View(), prim.BGRX32, 3, 2, 2); err != nil {
		t.Errorf("within tolerance: %v", err)
	}
	if err := SimilarRGB(a.View(), b.View(), prim.BGRX32, 3, 2, 1); err == nil {
		t.Error("SimilarRGB() = nil beyond tolerance")
	}
	if err := CheckColor(a.View(), prim.BGRX32, 3, 2, 10, 20, 30, 0); err != nil {
		t.Error(err)
	}
}

func TestRandomROI(t *testing.T) {
	r := NewRand(1)
	for range 1000 {
		roi := RandomROI(r, 64, 5)
		if roi.Width < 1 || roi.Width > 64 || roi.Height < 1 || roi.Height > 5 {
			t.Fatalf("RandomROI() = %v out of range", roi)
		}
	}
}

func TestFillBlocksIsBlockUniform(t *testing.T) {
	roi := prim.ROI{Width: 7, Height: 5}
	b := NewPackedBuffer("rgb", roi, prim.RGBA32)
	if err := FillBlocks(NewRand(7), b, prim.RGBA32); err != nil {
		t.Fatal(err)
	}
	for y := range roi.Height {
		for x := range roi.Width {
			want := b.Row(y &^ 1)[(x&^1)*4 : (x&^1)*4+4]
			got := b.Row(y)[x*4 : x*4+4]
			if string(got) != string(want) {
				t.Fatalf("pixel (%d,%d) = %v, block corner %v", x, y, got, want)
			}
		}
	}
}
