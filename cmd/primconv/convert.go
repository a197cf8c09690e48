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
	"bufio"
	"fmt"
	stdimage "image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"

	// Registered for image.Decode.
	_ "golang.org/x/image/webp"

	"github.com/ajroetker/go-prim/prim/contrib/image"
	"github.com/ajroetker/go-prim/prim/contrib/yuv"
)

// openRaw opens a raw frame file, decompressing .zst on the fly.
func openRaw(path string) (io.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return bufio.NewReader(f), f.Close, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return dec, func() error {
		dec.Close()
		return f.Close()
	}, nil
}

// createRaw creates a raw frame file, compressing when path ends in .zst.
// The returned close function flushes everything written.
func createRaw(path string) (io.Writer, func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	bw := bufio.NewWriter(f)
	if !strings.HasSuffix(path, ".zst") {
		return bw, func() error {
			if err := bw.Flush(); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}, nil
	}
	enc, err := zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return enc, func() error {
		if err := enc.Close(); err != nil {
			f.Close()
			return err
		}
		if err := bw.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

func newFrame(width, height int, subsampled bool) (*image.Frame, error) {
	if subsampled {
		return image.NewFrame420(width, height)
	}
	return image.NewFrame444(width, height)
}

// decodeFrame converts a raw frame into an image file.
func decodeFrame(k yuv.KernelSet, opts *options) error {
	r, closeIn, err := openRaw(opts.in)
	if err != nil {
		return err
	}
	defer closeIn()

	frame, err := newFrame(opts.width, opts.height, opts.subsampled)
	if err != nil {
		return err
	}
	if err := frame.ReadRaw(r); err != nil {
		return err
	}
	packed, err := image.NewPacked(opts.width, opts.height, opts.format)
	if err != nil {
		return err
	}
	if opts.subsampled {
		err = k.YUV420ToRGB(frame.Planes(), packed.View(), opts.format, frame.ROI())
	} else {
		err = k.YUV444ToRGB(frame.Planes(), packed.View(), opts.format, frame.ROI())
	}
	if err != nil {
		return fmt.Errorf("converting %s: %w", opts.in, err)
	}
	img, err := image.ToRGBA(packed.View(), opts.format, packed.ROI())
	if err != nil {
		return err
	}
	logV("decoded %dx%d frame from %s", opts.width, opts.height, opts.in)
	return writeImage(opts.out, img)
}

func writeImage(path string, img stdimage.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = fmt.Errorf("unsupported image extension %q (want .png or .bmp)", filepath.Ext(path))
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// encodeFrame converts an image file into a raw frame.
func encodeFrame(k yuv.KernelSet, opts *options) error {
	f, err := os.Open(opts.in)
	if err != nil {
		return err
	}
	img, kind, err := stdimage.Decode(bufio.NewReader(f))
	f.Close()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", opts.in, err)
	}
	b := img.Bounds()
	if (opts.width > 0 && opts.width != b.Dx()) || (opts.height > 0 && opts.height != b.Dy()) {
		w, h := opts.width, opts.height
		if w <= 0 {
			w = b.Dx() * h / b.Dy()
		}
		if h <= 0 {
			h = b.Dy() * w / b.Dx()
		}
		logV("scaling %s image from %dx%d to %dx%d", kind, b.Dx(), b.Dy(), w, h)
		img = image.Scale(img, w, h)
	}

	packed, err := image.FromImage(img, opts.format)
	if err != nil {
		return err
	}
	frame, err := newFrame(packed.Width(), packed.Height(), opts.subsampled)
	if err != nil {
		return err
	}
	if opts.subsampled {
		err = k.RGBToYUV420(packed.View(), opts.format, frame.Planes(), frame.ROI())
	} else {
		err = k.RGBToYUV444(packed.View(), opts.format, frame.Planes(), frame.ROI())
	}
	if err != nil {
		return fmt.Errorf("converting %s: %w", opts.in, err)
	}

	w, closeOut, err := createRaw(opts.out)
	if err != nil {
		return err
	}
	if err := frame.WriteRaw(w); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("writing %s: %w", opts.out, err)
	}
	logV("wrote %dx%d frame to %s", frame.Width(), frame.Height(), opts.out)
	return nil
}
