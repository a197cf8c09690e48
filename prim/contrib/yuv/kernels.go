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
	"fmt"

	"github.com/ajroetker/go-prim/prim"
)

// Planes is a Y/U/V plane triple. U and V are full size for 4:4:4 and
// ((w+1)/2, (h+1)/2) for 4:2:0.
type Planes struct {
	Y, U, V prim.PlaneView
}

// KernelSet is one implementation of the six conversion operations.
//
// Every operation validates all of its views before writing anything: on
// error no destination byte has been modified. Views must not overlap.
type KernelSet interface {
	// RGBToYUV420 converts packed RGB to Y plus 2x2 box-filtered U and V.
	RGBToYUV420(src prim.PlaneView, format prim.PixelFormat, dst Planes, roi prim.ROI) error

	// RGBToYUV444 converts packed RGB to full resolution Y, U and V.
	RGBToYUV444(src prim.PlaneView, format prim.PixelFormat, dst Planes, roi prim.ROI) error

	// YUV420ToRGB converts 4:2:0 planes to packed RGB with alpha 255.
	YUV420ToRGB(src Planes, dst prim.PlaneView, format prim.PixelFormat, roi prim.ROI) error

	// YUV444ToRGB converts 4:4:4 planes to packed RGB with alpha 255.
	YUV444ToRGB(src Planes, dst prim.PlaneView, format prim.PixelFormat, roi prim.ROI) error

	// YUV420CombineToYUV444 rebuilds a 4:4:4 frame from the main (luma) and
	// auxiliary (chroma) 4:2:0 frames of an AVC444 pair.
	YUV420CombineToYUV444(main, aux Planes, dst Planes, roi prim.ROI) error

	// YUV444SplitToYUV420 decomposes a 4:4:4 frame into main and auxiliary
	// 4:2:0 frames.
	YUV444SplitToYUV420(src Planes, main, aux Planes, roi prim.ROI) error

	// Name identifies the implementation ("generic", "optimized(avx2)", ...).
	Name() string
}

// Table holds one function per operation. Slots receive arguments that have
// already been validated. A nil slot means the operation is not provided.
type Table struct {
	RGBToYUV420           func(src prim.PlaneView, l prim.Layout, dst Planes, roi prim.ROI)
	RGBToYUV444           func(src prim.PlaneView, l prim.Layout, dst Planes, roi prim.ROI)
	YUV420ToRGB           func(src Planes, dst prim.PlaneView, l prim.Layout, roi prim.ROI)
	YUV444ToRGB           func(src Planes, dst prim.PlaneView, l prim.Layout, roi prim.ROI)
	YUV420CombineToYUV444 func(main, aux, dst Planes, roi prim.ROI)
	YUV444SplitToYUV420   func(src, main, aux Planes, roi prim.ROI)
}

// Slots returns the operation names whose slot is populated.
func (t *Table) Slots() []string {
	var names []string
	add := func(name string, ok bool) {
		if ok {
			names = append(names, name)
		}
	}
	add("RGBToYUV420", t.RGBToYUV420 != nil)
	add("RGBToYUV444", t.RGBToYUV444 != nil)
	add("YUV420ToRGB", t.YUV420ToRGB != nil)
	add("YUV444ToRGB", t.YUV444ToRGB != nil)
	add("YUV420CombineToYUV444", t.YUV420CombineToYUV444 != nil)
	add("YUV444SplitToYUV420", t.YUV444SplitToYUV420 != nil)
	return names
}

// TableSet is a KernelSet backed by a Table. Arguments are validated before
// the slot runs; a nil slot reports prim.ErrUnsupported.
type TableSet struct {
	name  string
	table Table
}

func (k *TableSet) Name() string {
	return k.name
}

// Table returns a copy of the function table.
func (k *TableSet) Table() Table {
	return k.table
}

func (k *TableSet) unsupported(op string) error {
	return fmt.Errorf("%w: %s has no %s", prim.ErrUnsupported, k.name, op)
}

func (k *TableSet) RGBToYUV420(src prim.PlaneView, format prim.PixelFormat, dst Planes, roi prim.ROI) error {
	if k.table.RGBToYUV420 == nil {
		return k.unsupported("RGBToYUV420")
	}
	l, err := checkRGBToYUV(src, format, dst, roi, true)
	if err != nil {
		return err
	}
	k.table.RGBToYUV420(src, l, dst, roi)
	return nil
}

func (k *TableSet) RGBToYUV444(src prim.PlaneView, format prim.PixelFormat, dst Planes, roi prim.ROI) error {
	if k.table.RGBToYUV444 == nil {
		return k.unsupported("RGBToYUV444")
	}
	l, err := checkRGBToYUV(src, format, dst, roi, false)
	if err != nil {
		return err
	}
	k.table.RGBToYUV444(src, l, dst, roi)
	return nil
}

func (k *TableSet) YUV420ToRGB(src Planes, dst prim.PlaneView, format prim.PixelFormat, roi prim.ROI) error {
	if k.table.YUV420ToRGB == nil {
		return k.unsupported("YUV420ToRGB")
	}
	l, err := checkYUVToRGB(src, dst, format, roi, true)
	if err != nil {
		return err
	}
	k.table.YUV420ToRGB(src, dst, l, roi)
	return nil
}

func (k *TableSet) YUV444ToRGB(src Planes, dst prim.PlaneView, format prim.PixelFormat, roi prim.ROI) error {
	if k.table.YUV444ToRGB == nil {
		return k.unsupported("YUV444ToRGB")
	}
	l, err := checkYUVToRGB(src, dst, format, roi, false)
	if err != nil {
		return err
	}
	k.table.YUV444ToRGB(src, dst, l, roi)
	return nil
}

func (k *TableSet) YUV420CombineToYUV444(main, aux, dst Planes, roi prim.ROI) error {
	if k.table.YUV420CombineToYUV444 == nil {
		return k.unsupported("YUV420CombineToYUV444")
	}
	if err := checkAVC444(dst, main, aux, roi); err != nil {
		return err
	}
	k.table.YUV420CombineToYUV444(main, aux, dst, roi)
	return nil
}

func (k *TableSet) YUV444SplitToYUV420(src, main, aux Planes, roi prim.ROI) error {
	if k.table.YUV444SplitToYUV420 == nil {
		return k.unsupported("YUV444SplitToYUV420")
	}
	if err := checkAVC444(src, main, aux, roi); err != nil {
		return err
	}
	k.table.YUV444SplitToYUV420(src, main, aux, roi)
	return nil
}
