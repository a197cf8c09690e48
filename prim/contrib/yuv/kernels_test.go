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
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-prim/prim"
	"github.com/ajroetker/go-prim/prim/primtest"
)

var testWidths = []int{1, 7, 8, 15, 16, 17, 100, 1024}

func widthName(w int) string {
	return fmt.Sprintf("w%d", w)
}

func planesOf(p *primtest.Planar) Planes {
	y, u, v := p.Views()
	return Planes{Y: y, U: u, V: v}
}

// frames holds one guarded buffer set for every operation of a roi.
type frames struct {
	roi    prim.ROI
	format prim.PixelFormat
	rgb    *primtest.Buffer
	yuv420 *primtest.Planar
	yuv444 *primtest.Planar
	main   *primtest.Planar
	aux    *primtest.Planar
}

func newFrames(roi prim.ROI, format prim.PixelFormat) *frames {
	return &frames{
		roi:    roi,
		format: format,
		rgb:    primtest.NewPackedBuffer("rgb", roi, format),
		yuv420: primtest.NewPlanar("420", roi, true),
		yuv444: primtest.NewPlanar("444", roi, false),
		main:   primtest.NewPlanar("main", roi, true),
		aux:    primtest.NewAux("aux", roi),
	}
}

func (f *frames) buffers() []*primtest.Buffer {
	bufs := []*primtest.Buffer{f.rgb}
	for _, p := range []*primtest.Planar{f.yuv420, f.yuv444, f.main, f.aux} {
		bufs = append(bufs, p.Buffers()...)
	}
	return bufs
}

// randomize fills every buffer. Two frames randomized with the same seed hold
// identical content.
func (f *frames) randomize(seed uint64) {
	r := primtest.NewRand(seed)
	for _, b := range f.buffers() {
		primtest.FillRandom(r, b)
	}
}

func (f *frames) check(t *testing.T) {
	t.Helper()
	for _, b := range f.buffers() {
		if err := b.Check(); err != nil {
			t.Fatal(err)
		}
	}
}

// opCase runs one operation on a frames set.
type opCase struct {
	name   string
	run    func(k KernelSet, f *frames) error
	rgbOut bool
	out    func(f *frames) []*primtest.Buffer
}

var opCases = []opCase{
	{
		name: "RGBToYUV420",
		run: func(k KernelSet, f *frames) error {
			return k.RGBToYUV420(f.rgb.View(), f.format, planesOf(f.yuv420), f.roi)
		},
		out: func(f *frames) []*primtest.Buffer { return f.yuv420.Buffers() },
	},
	{
		name: "RGBToYUV444",
		run: func(k KernelSet, f *frames) error {
			return k.RGBToYUV444(f.rgb.View(), f.format, planesOf(f.yuv444), f.roi)
		},
		out: func(f *frames) []*primtest.Buffer { return f.yuv444.Buffers() },
	},
	{
		name: "YUV420ToRGB",
		run: func(k KernelSet, f *frames) error {
			return k.YUV420ToRGB(planesOf(f.yuv420), f.rgb.View(), f.format, f.roi)
		},
		rgbOut: true,
	},
	{
		name: "YUV444ToRGB",
		run: func(k KernelSet, f *frames) error {
			return k.YUV444ToRGB(planesOf(f.yuv444), f.rgb.View(), f.format, f.roi)
		},
		rgbOut: true,
	},
	{
		name: "YUV420CombineToYUV444",
		run: func(k KernelSet, f *frames) error {
			return k.YUV420CombineToYUV444(planesOf(f.main), planesOf(f.aux), planesOf(f.yuv444), f.roi)
		},
		out: func(f *frames) []*primtest.Buffer { return f.yuv444.Buffers() },
	},
	{
		name: "YUV444SplitToYUV420",
		run: func(k KernelSet, f *frames) error {
			return k.YUV444SplitToYUV420(planesOf(f.yuv444), planesOf(f.main), planesOf(f.aux), f.roi)
		},
		out: func(f *frames) []*primtest.Buffer {
			return append(f.main.Buffers(), f.aux.Buffers()...)
		},
	},
}

// compareOutputs checks the outputs of op in got against want within the
// cross-implementation tolerances.
func compareOutputs(t *testing.T, op opCase, got, want *frames) {
	t.Helper()
	if op.rgbOut {
		if err := primtest.SimilarRGB(got.rgb.View(), want.rgb.View(), got.format,
			got.roi.Width, got.roi.Height, ColorTolerance); err != nil {
			t.Fatalf("%s %v %v: %v", op.name, got.roi, got.format, err)
		}
		return
	}
	g, w := op.out(got), op.out(want)
	for i := range g {
		gv, wv := g[i].View(), w[i].View()
		if err := primtest.SimilarSamples(gv, wv, gv.Width(), gv.Height(), SampleTolerance); err != nil {
			t.Fatalf("%s %v %s: %v", op.name, got.roi, g[i].Name(), err)
		}
	}
}

func randomFormat(r *rand.Rand) prim.PixelFormat {
	formats := prim.AllPixelFormats()
	return formats[r.IntN(len(formats))]
}

func TestConstantImage(t *testing.T) {
	const red, green, blue = 0x81, 0x33, 0xAB
	roi := prim.ROI{Width: 64, Height: 64}
	k := Active()

	for _, subsampled := range []bool{true, false} {
		t.Run(fmt.Sprintf("subsampled=%v", subsampled), func(t *testing.T) {
			src := primtest.NewPackedBuffer("src", roi, prim.XRGB32)
			dst := primtest.NewPackedBuffer("dst", roi, prim.XRGB32)
			yuv := primtest.NewPlanar("yuv", roi, subsampled)
			if err := primtest.FillColor(src, prim.XRGB32, red, green, blue, 0xFF); err != nil {
				t.Fatal(err)
			}

			var err error
			if subsampled {
				err = k.RGBToYUV420(src.View(), prim.XRGB32, planesOf(yuv), roi)
			} else {
				err = k.RGBToYUV444(src.View(), prim.XRGB32, planesOf(yuv), roi)
			}
			if err != nil {
				t.Fatalf("to YUV: %v", err)
			}
			if subsampled {
				err = k.YUV420ToRGB(planesOf(yuv), dst.View(), prim.XRGB32, roi)
			} else {
				err = k.YUV444ToRGB(planesOf(yuv), dst.View(), prim.XRGB32, roi)
			}
			if err != nil {
				t.Fatalf("to RGB: %v", err)
			}

			if err := primtest.CheckColor(dst.View(), prim.XRGB32, roi.Width, roi.Height,
				red, green, blue, ColorTolerance); err != nil {
				t.Error(err)
			}
			for _, b := range append(yuv.Buffers(), src, dst) {
				if err := b.Check(); err != nil {
					t.Error(err)
				}
			}
		})
	}
}

func TestGreyIsNeutral(t *testing.T) {
	for _, v := range []int32{0, 1, 127, 128, 200, 255} {
		if got := luma(v, v, v); int32(got) != v {
			t.Errorf("luma(%d, %d, %d) = %d", v, v, v, got)
		}
		if got := chroma(kUR*v+kUG*v+kUB*v, fixBits); got != 128 {
			t.Errorf("U of grey %d = %d, want 128", v, got)
		}
		if got := chroma(kVR*v+kVG*v+kVB*v, fixBits); got != 128 {
			t.Errorf("V of grey %d = %d, want 128", v, got)
		}
		r, g, b := toRGB(v, 128, 128)
		if int32(r) != v || int32(g) != v || int32(b) != v {
			t.Errorf("toRGB(%d, 128, 128) = %d, %d, %d", v, r, g, b)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, k := range []KernelSet{Generic(), Active()} {
		for _, format := range prim.AllPixelFormats() {
			for _, subsampled := range []bool{true, false} {
				for _, w := range testWidths {
					name := fmt.Sprintf("%s/%v/subsampled=%v/%s", k.Name(), format, subsampled, widthName(w))
					t.Run(name, func(t *testing.T) {
						roi := prim.ROI{Width: w, Height: 5}
						src := primtest.NewPackedBuffer("src", roi, format)
						dst := primtest.NewPackedBuffer("dst", roi, format)
						yuv := primtest.NewPlanar("yuv", roi, subsampled)
						if err := primtest.FillBlocks(primtest.NewRand(uint64(w)), src, format); err != nil {
							t.Fatal(err)
						}

						to, from := k.RGBToYUV444, k.YUV444ToRGB
						if subsampled {
							to, from = k.RGBToYUV420, k.YUV420ToRGB
						}
						if err := to(src.View(), format, planesOf(yuv), roi); err != nil {
							t.Fatal(err)
						}
						if err := from(planesOf(yuv), dst.View(), format, roi); err != nil {
							t.Fatal(err)
						}
						if err := primtest.SimilarRGB(dst.View(), src.View(), format, w, roi.Height, ColorTolerance); err != nil {
							t.Fatal(err)
						}
						for _, b := range append(yuv.Buffers(), src, dst) {
							if err := b.Check(); err != nil {
								t.Fatal(err)
							}
						}
					})
				}
			}
		}
	}
}

func TestAlphaIsOpaque(t *testing.T) {
	roi := prim.ROI{Width: 9, Height: 3}
	for _, format := range prim.AllPixelFormats() {
		t.Run(format.String(), func(t *testing.T) {
			l, err := prim.LayoutOf(format)
			if err != nil {
				t.Fatal(err)
			}
			f := newFrames(roi, format)
			f.randomize(3)
			for _, op := range []opCase{opCases[2], opCases[3]} {
				if err := op.run(Generic(), f); err != nil {
					t.Fatalf("%s: %v", op.name, err)
				}
				for y := range roi.Height {
					row := f.rgb.Row(y)
					for x := range roi.Width {
						if a := row[x*4+l.A]; a != 0xFF {
							t.Fatalf("%s pixel (%d,%d) alpha = %#02x", op.name, x, y, a)
						}
					}
				}
			}
		})
	}
}

// TestGuards runs every operation of every implementation at sizes that are
// not block aligned and checks that no guard byte changed.
func TestGuards(t *testing.T) {
	sets := []struct {
		k       KernelSet
		partial bool
	}{
		{k: NewGeneric()},
		{k: newBatchedSet(prim.DispatchAVX2, 8), partial: true},
		{k: Active()},
	}
	rois := []prim.ROI{{Width: 17, Height: 33}, {Width: 1, Height: 1}, {Width: 2, Height: 17}, {Width: 33, Height: 2}}
	for _, s := range sets {
		for _, roi := range rois {
			for _, format := range prim.AllPixelFormats() {
				for _, op := range opCases {
					f := newFrames(roi, format)
					f.randomize(uint64(roi.Area()))
					err := op.run(s.k, f)
					if err != nil && !(s.partial && errors.Is(err, prim.ErrUnsupported)) {
						t.Fatalf("%s %s %v %v: %v", s.k.Name(), op.name, roi, format, err)
					}
					f.check(t)
				}
			}
		}
	}
}
