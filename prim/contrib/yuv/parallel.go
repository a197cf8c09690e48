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
	"github.com/ajroetker/go-prim/prim"
	"github.com/ajroetker/go-prim/prim/contrib/workerpool"
)

// avcBlockRows is the row alignment of an AVC444 band: one 16-row block of
// the auxiliary luma plane.
const avcBlockRows = 2 * stripeRows

// parallelSet cuts every call into row bands and converts the bands on a
// worker pool. 4:2:0 bands start on even rows and AVC444 bands on 16-row
// block boundaries, so each band owns whole chroma rows and whole stripes.
type parallelSet struct {
	set  KernelSet
	pool *workerpool.Pool
}

var _ KernelSet = (*parallelSet)(nil)

// Parallel returns a KernelSet that runs set over row bands on pool. The
// whole call is validated before any band starts, so a failing call still
// writes nothing. The pool is borrowed; the caller closes it.
func Parallel(set KernelSet, pool *workerpool.Pool) KernelSet {
	return &parallelSet{set: set, pool: pool}
}

func (p *parallelSet) Name() string {
	return p.set.Name() + "/parallel"
}

func bandROI(roi prim.ROI, y0, y1 int) prim.ROI {
	return prim.ROI{Width: roi.Width, Height: y1 - y0}
}

func bandPlanes(pl Planes, y0, y1 int, subsampled bool) Planes {
	c0, c1 := y0, y1
	if subsampled {
		c0, c1 = y0/2, (y1+1)/2
	}
	return Planes{
		Y: pl.Y.SubRows(y0, y1),
		U: pl.U.SubRows(c0, c1),
		V: pl.V.SubRows(c0, c1),
	}
}

// auxBand is bandPlanes for an auxiliary frame. The last band also takes the
// padding rows of the auxiliary luma plane, which carry the trailing stripes.
func auxBand(aux Planes, y0, y1, height int) Planes {
	b := bandPlanes(aux, y0, y1, true)
	if y1 == height {
		b.Y = aux.Y.SubRows(y0, aux.Y.Height())
	}
	return b
}

func (p *parallelSet) RGBToYUV420(src prim.PlaneView, format prim.PixelFormat, dst Planes, roi prim.ROI) error {
	if _, err := checkRGBToYUV(src, format, dst, roi, true); err != nil {
		return err
	}
	return p.pool.Bands(roi.Height, 2, func(y0, y1 int) error {
		return p.set.RGBToYUV420(src.SubRows(y0, y1), format,
			bandPlanes(dst, y0, y1, true), bandROI(roi, y0, y1))
	})
}

func (p *parallelSet) RGBToYUV444(src prim.PlaneView, format prim.PixelFormat, dst Planes, roi prim.ROI) error {
	if _, err := checkRGBToYUV(src, format, dst, roi, false); err != nil {
		return err
	}
	return p.pool.Bands(roi.Height, 1, func(y0, y1 int) error {
		return p.set.RGBToYUV444(src.SubRows(y0, y1), format,
			bandPlanes(dst, y0, y1, false), bandROI(roi, y0, y1))
	})
}

func (p *parallelSet) YUV420ToRGB(src Planes, dst prim.PlaneView, format prim.PixelFormat, roi prim.ROI) error {
	if _, err := checkYUVToRGB(src, dst, format, roi, true); err != nil {
		return err
	}
	return p.pool.Bands(roi.Height, 2, func(y0, y1 int) error {
		return p.set.YUV420ToRGB(bandPlanes(src, y0, y1, true),
			dst.SubRows(y0, y1), format, bandROI(roi, y0, y1))
	})
}

func (p *parallelSet) YUV444ToRGB(src Planes, dst prim.PlaneView, format prim.PixelFormat, roi prim.ROI) error {
	if _, err := checkYUVToRGB(src, dst, format, roi, false); err != nil {
		return err
	}
	return p.pool.Bands(roi.Height, 1, func(y0, y1 int) error {
		return p.set.YUV444ToRGB(bandPlanes(src, y0, y1, false),
			dst.SubRows(y0, y1), format, bandROI(roi, y0, y1))
	})
}

func (p *parallelSet) YUV420CombineToYUV444(main, aux, dst Planes, roi prim.ROI) error {
	if err := checkAVC444(dst, main, aux, roi); err != nil {
		return err
	}
	return p.pool.Bands(roi.Height, avcBlockRows, func(y0, y1 int) error {
		return p.set.YUV420CombineToYUV444(
			bandPlanes(main, y0, y1, true),
			auxBand(aux, y0, y1, roi.Height),
			bandPlanes(dst, y0, y1, false),
			bandROI(roi, y0, y1))
	})
}

func (p *parallelSet) YUV444SplitToYUV420(src, main, aux Planes, roi prim.ROI) error {
	if err := checkAVC444(src, main, aux, roi); err != nil {
		return err
	}
	return p.pool.Bands(roi.Height, avcBlockRows, func(y0, y1 int) error {
		return p.set.YUV444SplitToYUV420(
			bandPlanes(src, y0, y1, false),
			bandPlanes(main, y0, y1, true),
			auxBand(aux, y0, y1, roi.Height),
			bandROI(roi, y0, y1))
	})
}
