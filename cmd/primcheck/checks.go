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

package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ajroetker/go-prim/prim"
	"github.com/ajroetker/go-prim/prim/contrib/yuv"
	"github.com/ajroetker/go-prim/prim/primtest"
)

// check is one property verified on a pseudo-random region per iteration.
type check struct {
	name string
	run  func(r *rand.Rand, limit prim.ROI) error
}

var checks = []check{
	{"constant", checkConstant},
	{"roundtrip", checkRoundTrip},
	{"equivalence", checkEquivalence},
	{"guards", checkGuards},
	{"avc444", checkAVC444},
	{"errors", checkErrors},
}

func planesOf(p *primtest.Planar) yuv.Planes {
	y, u, v := p.Views()
	return yuv.Planes{Y: y, U: u, V: v}
}

// frameSet holds guarded buffers for every operation on one region.
type frameSet struct {
	roi       prim.ROI
	format    prim.PixelFormat
	rgb       *primtest.Buffer
	sub, full *primtest.Planar
	main, aux *primtest.Planar
}

func newFrameSet(r *rand.Rand, roi prim.ROI, format prim.PixelFormat) *frameSet {
	fs := &frameSet{
		roi:    roi,
		format: format,
		rgb:    primtest.NewPackedBuffer("rgb", roi, format),
		sub:    primtest.NewPlanar("420", roi, true),
		full:   primtest.NewPlanar("444", roi, false),
		main:   primtest.NewPlanar("main", roi, true),
		aux:    primtest.NewAux("aux", roi),
	}
	for _, b := range fs.buffers() {
		primtest.FillRandom(r, b)
	}
	return fs
}

func (fs *frameSet) buffers() []*primtest.Buffer {
	bufs := []*primtest.Buffer{fs.rgb}
	for _, p := range []*primtest.Planar{fs.sub, fs.full, fs.main, fs.aux} {
		bufs = append(bufs, p.Buffers()...)
	}
	return bufs
}

func (fs *frameSet) clone() *frameSet {
	c := *fs
	c.rgb = primtest.NewPackedBuffer("rgb", fs.roi, fs.format)
	c.sub = primtest.NewPlanar("420", fs.roi, true)
	c.full = primtest.NewPlanar("444", fs.roi, false)
	c.main = primtest.NewPlanar("main", fs.roi, true)
	c.aux = primtest.NewAux("aux", fs.roi)
	dst := c.buffers()
	for i, b := range fs.buffers() {
		copy(dst[i].Region(), b.Region())
	}
	return &c
}

func (fs *frameSet) checkGuards() error {
	for _, b := range fs.buffers() {
		if err := b.Check(); err != nil {
			return err
		}
	}
	return nil
}

type operation struct {
	name string
	run  func(k yuv.KernelSet, fs *frameSet) error
	// outputs lists the written planes; nil means the packed buffer.
	outputs func(fs *frameSet) []*primtest.Buffer
}

var operations = []operation{
	{"RGBToYUV420", func(k yuv.KernelSet, fs *frameSet) error {
		return k.RGBToYUV420(fs.rgb.View(), fs.format, planesOf(fs.sub), fs.roi)
	}, func(fs *frameSet) []*primtest.Buffer { return fs.sub.Buffers() }},
	{"RGBToYUV444", func(k yuv.KernelSet, fs *frameSet) error {
		return k.RGBToYUV444(fs.rgb.View(), fs.format, planesOf(fs.full), fs.roi)
	}, func(fs *frameSet) []*primtest.Buffer { return fs.full.Buffers() }},
	{"YUV420ToRGB", func(k yuv.KernelSet, fs *frameSet) error {
		return k.YUV420ToRGB(planesOf(fs.sub), fs.rgb.View(), fs.format, fs.roi)
	}, nil},
	{"YUV444ToRGB", func(k yuv.KernelSet, fs *frameSet) error {
		return k.YUV444ToRGB(planesOf(fs.full), fs.rgb.View(), fs.format, fs.roi)
	}, nil},
	{"YUV420CombineToYUV444", func(k yuv.KernelSet, fs *frameSet) error {
		return k.YUV420CombineToYUV444(planesOf(fs.main), planesOf(fs.aux), planesOf(fs.full), fs.roi)
	}, func(fs *frameSet) []*primtest.Buffer { return fs.full.Buffers() }},
	{"YUV444SplitToYUV420", func(k yuv.KernelSet, fs *frameSet) error {
		return k.YUV444SplitToYUV420(planesOf(fs.full), planesOf(fs.main), planesOf(fs.aux), fs.roi)
	}, func(fs *frameSet) []*primtest.Buffer { return append(fs.main.Buffers(), fs.aux.Buffers()...) }},
}

func randomFormat(r *rand.Rand) prim.PixelFormat {
	formats := prim.AllPixelFormats()
	return formats[r.IntN(len(formats))]
}

func checkConstant(r *rand.Rand, _ prim.ROI) error {
	const red, green, blue = 0x81, 0x33, 0xAB
	roi := prim.ROI{Width: 64, Height: 64}
	k := yuv.Active()
	src := primtest.NewPackedBuffer("src", roi, prim.XRGB32)
	if err := primtest.FillColor(src, prim.XRGB32, red, green, blue, 0xFF); err != nil {
		return err
	}
	for _, subsampled := range []bool{true, false} {
		p := primtest.NewPlanar("yuv", roi, subsampled)
		dst := primtest.NewPackedBuffer("dst", roi, prim.XRGB32)
		to, from := k.RGBToYUV444, k.YUV444ToRGB
		if subsampled {
			to, from = k.RGBToYUV420, k.YUV420ToRGB
		}
		if err := to(src.View(), prim.XRGB32, planesOf(p), roi); err != nil {
			return err
		}
		if err := from(planesOf(p), dst.View(), prim.XRGB32, roi); err != nil {
			return err
		}
		if err := primtest.CheckColor(dst.View(), prim.XRGB32, roi.Width, roi.Height,
			red, green, blue, yuv.ColorTolerance); err != nil {
			return fmt.Errorf("subsampled=%v: %w", subsampled, err)
		}
	}
	return nil
}

func checkRoundTrip(r *rand.Rand, limit prim.ROI) error {
	roi := primtest.RandomROI(r, limit.Width, limit.Height)
	format := randomFormat(r)
	k := yuv.Active()
	src := primtest.NewPackedBuffer("src", roi, format)
	if err := primtest.FillBlocks(r, src, format); err != nil {
		return err
	}
	for _, subsampled := range []bool{true, false} {
		p := primtest.NewPlanar("yuv", roi, subsampled)
		dst := primtest.NewPackedBuffer("dst", roi, format)
		to, from := k.RGBToYUV444, k.YUV444ToRGB
		if subsampled {
			to, from = k.RGBToYUV420, k.YUV420ToRGB
		}
		if err := to(src.View(), format, planesOf(p), roi); err != nil {
			return err
		}
		if err := from(planesOf(p), dst.View(), format, roi); err != nil {
			return err
		}
		if err := primtest.SimilarRGB(dst.View(), src.View(), format, roi.Width, roi.Height, yuv.ColorTolerance); err != nil {
			return fmt.Errorf("%v %v subsampled=%v: %w", roi, format, subsampled, err)
		}
	}
	return nil
}

func checkEquivalence(r *rand.Rand, limit prim.ROI) error {
	roi := primtest.RandomROI(r, limit.Width, limit.Height)
	format := randomFormat(r)
	want := newFrameSet(r, roi, format)
	for _, op := range operations {
		got := want.clone()
		ref := want.clone()
		err := op.run(yuv.Optimized(), got)
		if errors.Is(err, prim.ErrUnsupported) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s %v: %w", op.name, roi, err)
		}
		if err := op.run(yuv.Generic(), ref); err != nil {
			return fmt.Errorf("%s %v generic: %w", op.name, roi, err)
		}
		if op.outputs == nil {
			err = primtest.SimilarRGB(got.rgb.View(), ref.rgb.View(), format, roi.Width, roi.Height, yuv.ColorTolerance)
		} else {
			g, w := op.outputs(got), op.outputs(ref)
			for i := range g {
				gv, wv := g[i].View(), w[i].View()
				if err = primtest.SimilarSamples(gv, wv, gv.Width(), gv.Height(), yuv.SampleTolerance); err != nil {
					err = fmt.Errorf("%s: %w", g[i].Name(), err)
					break
				}
			}
		}
		if err != nil {
			return fmt.Errorf("%s %v %v: %w", op.name, roi, format, err)
		}
	}
	return nil
}

func checkGuards(r *rand.Rand, limit prim.ROI) error {
	roi := primtest.RandomROI(r, limit.Width, limit.Height)
	fs := newFrameSet(r, roi, randomFormat(r))
	for _, k := range []yuv.KernelSet{yuv.Generic(), yuv.Active()} {
		for _, op := range operations {
			if err := op.run(k, fs); err != nil {
				return fmt.Errorf("%s %s %v: %w", k.Name(), op.name, roi, err)
			}
			if err := fs.checkGuards(); err != nil {
				return fmt.Errorf("%s %s %v: %w", k.Name(), op.name, roi, err)
			}
		}
	}
	return nil
}

// checkAVC444 verifies that split(combine(main, aux)) reproduces a consistent
// main/aux pair for whole 16-row blocks and even widths.
func checkAVC444(r *rand.Rand, limit prim.ROI) error {
	roi := primtest.RandomROI(r, max(1, limit.Width/2), max(1, limit.Height/prim.BlockSize))
	roi.Width *= 2
	roi.Height *= prim.BlockSize
	k := yuv.Active()

	src := primtest.NewPlanar("src", roi, false)
	for _, b := range src.Buffers() {
		v := b.View()
		for y := range v.Height() {
			row := b.Row(y)
			for i := range row {
				row[i] = byte(16 + r.IntN(224))
			}
		}
	}
	main := primtest.NewPlanar("main", roi, true)
	aux := primtest.NewAux("aux", roi)
	if err := k.YUV444SplitToYUV420(planesOf(src), planesOf(main), planesOf(aux), roi); err != nil {
		return err
	}
	full := primtest.NewPlanar("full", roi, false)
	if err := k.YUV420CombineToYUV444(planesOf(main), planesOf(aux), planesOf(full), roi); err != nil {
		return err
	}
	main2 := primtest.NewPlanar("main", roi, true)
	aux2 := primtest.NewAux("aux", roi)
	if err := k.YUV444SplitToYUV420(planesOf(full), planesOf(main2), planesOf(aux2), roi); err != nil {
		return err
	}
	got := append(main2.Buffers(), aux2.Buffers()...)
	want := append(main.Buffers(), aux.Buffers()...)
	for i := range got {
		gv, wv := got[i].View(), want[i].View()
		if err := primtest.SimilarSamples(gv, wv, gv.Width(), gv.Height(), 0); err != nil {
			return fmt.Errorf("%v %s: %w", roi, got[i].Name(), err)
		}
	}
	return nil
}

// checkErrors verifies that a zero-area region is rejected without writes.
func checkErrors(r *rand.Rand, limit prim.ROI) error {
	roi := primtest.RandomROI(r, limit.Width, limit.Height)
	fs := newFrameSet(r, roi, randomFormat(r))
	bufs := fs.buffers()
	snaps := make([][]byte, len(bufs))
	for i, b := range bufs {
		snaps[i] = b.Snapshot()
	}
	for _, empty := range []prim.ROI{{Width: 0, Height: roi.Height}, {Width: roi.Width, Height: 0}} {
		fs.roi = empty
		for _, op := range operations {
			if err := op.run(yuv.Active(), fs); !errors.Is(err, prim.ErrInvalidParameter) {
				return fmt.Errorf("%s roi %v: err = %v, want %v", op.name, empty, err, prim.ErrInvalidParameter)
			}
		}
	}
	for i, b := range bufs {
		if err := b.Unchanged(snaps[i]); err != nil {
			return err
		}
	}
	return nil
}
