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

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-prim/prim"
)

// expectUntouched runs every operation of k with roi and format on frames
// sized for alloc and checks that each fails with want and writes nothing.
func expectUntouched(t *testing.T, k KernelSet, alloc, roi prim.ROI, format prim.PixelFormat, want error) {
	t.Helper()
	for _, op := range opCases {
		f := newFrames(alloc, prim.BGRX32)
		f.randomize(11)
		f.roi = roi
		f.format = format
		bufs := f.buffers()
		snaps := make([][]byte, len(bufs))
		for i, b := range bufs {
			snaps[i] = b.Snapshot()
		}

		err := op.run(k, f)
		if !errors.Is(err, want) {
			t.Errorf("%s %s roi %v format %v: err = %v, want %v", k.Name(), op.name, roi, format, err, want)
		}
		for i, b := range bufs {
			if err := b.Unchanged(snaps[i]); err != nil {
				t.Errorf("%s %s: %v", k.Name(), op.name, err)
			}
		}
	}
}

func TestZeroAreaROI(t *testing.T) {
	alloc := prim.ROI{Width: 8, Height: 8}
	for _, k := range []KernelSet{NewGeneric(), Active()} {
		for _, roi := range []prim.ROI{{}, {Width: 0, Height: 5}, {Width: 5, Height: 0}, {Width: -1, Height: 4}} {
			expectUntouched(t, k, alloc, roi, prim.BGRX32, prim.ErrInvalidParameter)
		}
	}
}

func TestOversizeROI(t *testing.T) {
	alloc := prim.ROI{Width: 8, Height: 8}
	roi := prim.ROI{Width: prim.MaxDimension + 1, Height: 2}
	expectUntouched(t, NewGeneric(), alloc, roi, prim.BGRX32, prim.ErrInternalLimit)
}

// TestWideViewsSmallROI converts a small region of surfaces wider than
// prim.MaxDimension.
func TestWideViewsSmallROI(t *testing.T) {
	alloc := prim.ROI{Width: prim.MaxDimension + 16, Height: 2}
	for _, k := range []KernelSet{NewGeneric(), Active()} {
		for _, op := range opCases {
			f := newFrames(alloc, prim.BGRX32)
			f.randomize(5)
			f.roi = prim.ROI{Width: 8, Height: 2}
			if err := op.run(k, f); err != nil {
				t.Errorf("%s %s: %v", k.Name(), op.name, err)
			}
			f.check(t)
		}
	}
}

func TestUndersizedViews(t *testing.T) {
	alloc := prim.ROI{Width: 8, Height: 8}
	for _, roi := range []prim.ROI{{Width: 9, Height: 8}, {Width: 8, Height: 9}, {Width: 16, Height: 16}} {
		expectUntouched(t, NewGeneric(), alloc, roi, prim.BGRX32, prim.ErrInvalidParameter)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	alloc := prim.ROI{Width: 8, Height: 8}
	k := NewGeneric()
	for _, format := range []prim.PixelFormat{prim.FormatUnknown, prim.PixelFormat(200)} {
		for _, op := range opCases[:4] {
			f := newFrames(alloc, prim.BGRX32)
			f.format = format
			snap := f.rgb.Snapshot()
			if err := op.run(k, f); !errors.Is(err, prim.ErrUnsupported) {
				t.Errorf("%s format %d: err = %v, want ErrUnsupported", op.name, format, err)
			}
			if err := f.rgb.Unchanged(snap); err != nil {
				t.Error(err)
			}
		}
	}
}

func TestNullViews(t *testing.T) {
	roi := prim.ROI{Width: 4, Height: 4}
	k := NewGeneric()
	var null Planes
	if err := k.RGBToYUV444(prim.PlaneView{}, prim.RGBA32, null, roi); !errors.Is(err, prim.ErrInvalidParameter) {
		t.Errorf("RGBToYUV444 with null views: %v", err)
	}
	if err := k.YUV420CombineToYUV444(null, null, null, roi); !errors.Is(err, prim.ErrInvalidParameter) {
		t.Errorf("YUV420CombineToYUV444 with null views: %v", err)
	}
	if got := prim.StatusOf(k.YUV444SplitToYUV420(null, null, null, roi)); got != prim.InvalidParameter {
		t.Errorf("StatusOf(split with null views) = %v", got)
	}
}

func TestWrongSampleSize(t *testing.T) {
	roi := prim.ROI{Width: 4, Height: 4}
	f := newFrames(roi, prim.RGBA32)
	k := NewGeneric()
	// A packed view passed where an 8-bit plane is expected.
	dst := planesOf(f.yuv444)
	dst.U = f.rgb.View()
	if err := k.RGBToYUV444(f.rgb.View(), prim.RGBA32, dst, roi); !errors.Is(err, prim.ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}
