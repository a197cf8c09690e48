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

// Command primconv converts between raw planar frames and images.
//
// Usage:
//
//	primconv -in frame.yuv -width 1920 -height 1080 -out frame.png
//	primconv -in frame.yuv.zst -width 1920 -height 1080 -layout i444 -out frame.bmp
//	primconv -reverse -in shot.png -out shot.yuv.zst -format RGBX32
//	primconv -reverse -in photo.webp -width 640 -height 360 -out small.yuv
//
// Raw frames are tightly packed planes (Y, then U, then V). Paths ending in
// .zst are zstd compressed. Images are decoded from PNG, BMP or WebP and
// encoded to PNG or BMP, chosen by extension. -format selects the packed
// layout the frame passes through on its way to or from YUV.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ajroetker/go-prim/prim"
	"github.com/ajroetker/go-prim/prim/contrib/workerpool"
	"github.com/ajroetker/go-prim/prim/contrib/yuv"
)

var (
	inPath   = flag.String("in", "", "Input file (required)")
	outPath  = flag.String("out", "", "Output file (required)")
	width    = flag.Int("width", 0, "Frame width; with -reverse, scale the image to this width")
	height   = flag.Int("height", 0, "Frame height; with -reverse, scale the image to this height")
	layout   = flag.String("layout", "i420", "Raw layout: i420 or i444")
	format   = flag.String("format", "BGRX32", "Packed pixel format used for the conversion")
	reverse  = flag.Bool("reverse", false, "Convert an image to a raw frame")
	parallel = flag.Bool("parallel", false, "Convert row bands on a worker pool")
	verbose  = flag.Bool("v", false, "Log conversion details")
)

func logV(format string, args ...any) {
	if *verbose {
		log.Printf(format, args...)
	}
}

// options is the validated command line.
type options struct {
	in, out    string
	width      int
	height     int
	subsampled bool
	format     prim.PixelFormat
}

func parseOptions() (*options, error) {
	if *inPath == "" || *outPath == "" {
		return nil, fmt.Errorf("-in and -out are required")
	}
	f, err := prim.ParsePixelFormat(*format)
	if err != nil {
		return nil, err
	}
	opts := &options{in: *inPath, out: *outPath, width: *width, height: *height, format: f}
	switch strings.ToLower(*layout) {
	case "i420":
		opts.subsampled = true
	case "i444":
	default:
		return nil, fmt.Errorf("unknown layout %q (want i420 or i444)", *layout)
	}
	if !*reverse {
		roi := prim.ROI{Width: opts.width, Height: opts.height}
		if err := roi.Validate(); err != nil {
			return nil, fmt.Errorf("-width and -height: %w", err)
		}
	}
	return opts, nil
}

func main() {
	flag.Parse()

	opts, err := parseOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	k := yuv.Active()
	if *parallel {
		pool := workerpool.New(0)
		defer pool.Close()
		k = yuv.Parallel(k, pool)
	}
	logV("kernels %s on %s", k.Name(), prim.CurrentName())

	if *reverse {
		err = encodeFrame(k, opts)
	} else {
		err = decodeFrame(k, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
