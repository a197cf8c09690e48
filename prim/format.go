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
	"encoding/binary"
	"fmt"
	"strings"
)

// PixelFormat identifies a packed 32-bit RGB layout. The letters name the
// bytes in memory order: XRGB32 stores the padding byte first and blue last.
type PixelFormat uint8

const (
	FormatUnknown PixelFormat = iota
	XRGB32
	XBGR32
	ARGB32
	ABGR32
	RGBA32
	RGBX32
	BGRA32
	BGRX32

	numFormats
)

// Layout describes where each channel lives inside a packed pixel.
type Layout struct {
	Name          string
	BytesPerPixel int

	// Byte offsets inside a pixel. A is the alpha byte, or the padding byte
	// when HasAlpha is false.
	R, G, B, A int

	HasAlpha bool
}

var layouts = [numFormats]Layout{
	XRGB32: {Name: "XRGB32", BytesPerPixel: 4, A: 0, R: 1, G: 2, B: 3},
	XBGR32: {Name: "XBGR32", BytesPerPixel: 4, A: 0, B: 1, G: 2, R: 3},
	ARGB32: {Name: "ARGB32", BytesPerPixel: 4, A: 0, R: 1, G: 2, B: 3, HasAlpha: true},
	ABGR32: {Name: "ABGR32", BytesPerPixel: 4, A: 0, B: 1, G: 2, R: 3, HasAlpha: true},
	RGBA32: {Name: "RGBA32", BytesPerPixel: 4, R: 0, G: 1, B: 2, A: 3, HasAlpha: true},
	RGBX32: {Name: "RGBX32", BytesPerPixel: 4, R: 0, G: 1, B: 2, A: 3},
	BGRA32: {Name: "BGRA32", BytesPerPixel: 4, B: 0, G: 1, R: 2, A: 3, HasAlpha: true},
	BGRX32: {Name: "BGRX32", BytesPerPixel: 4, B: 0, G: 1, R: 2, A: 3},
}

// AllPixelFormats returns every supported format in declaration order.
func AllPixelFormats() []PixelFormat {
	return []PixelFormat{XRGB32, XBGR32, ARGB32, ABGR32, RGBA32, RGBX32, BGRA32, BGRX32}
}

// Valid reports whether f is one of the supported formats.
func (f PixelFormat) Valid() bool {
	return f > FormatUnknown && f < numFormats
}

func (f PixelFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
	return layouts[f].Name
}

// LayoutOf returns the layout descriptor for f.
func LayoutOf(f PixelFormat) (Layout, error) {
	if !f.Valid() {
		return Layout{}, fmt.Errorf("%w: pixel format %v", ErrUnsupported, f)
	}
	return layouts[f], nil
}

// ParsePixelFormat looks a format up by name, ignoring case.
func ParsePixelFormat(name string) (PixelFormat, error) {
	for _, f := range AllPixelFormats() {
		if strings.EqualFold(layouts[f].Name, name) {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%w: pixel format %q", ErrUnsupported, name)
}

// BytesPerPixel returns the pixel size of f.
func BytesPerPixel(f PixelFormat) (int, error) {
	l, err := LayoutOf(f)
	if err != nil {
		return 0, err
	}
	return l.BytesPerPixel, nil
}

// HasAlpha reports whether f carries an alpha channel.
func HasAlpha(f PixelFormat) (bool, error) {
	l, err := LayoutOf(f)
	if err != nil {
		return false, err
	}
	return l.HasAlpha, nil
}

// ReadColor reads one pixel. The packed value holds the bytes in memory
// order, first byte most significant.
func ReadColor(src []byte, f PixelFormat) (uint32, error) {
	l, err := LayoutOf(f)
	if err != nil {
		return 0, err
	}
	if len(src) < l.BytesPerPixel {
		return 0, fmt.Errorf("%w: %d bytes for one %v pixel", ErrInvalidParameter, len(src), f)
	}
	return binary.BigEndian.Uint32(src), nil
}

// WriteColor stores a packed value produced by ReadColor or PackColor.
func WriteColor(color uint32, f PixelFormat, dst []byte) error {
	l, err := LayoutOf(f)
	if err != nil {
		return err
	}
	if len(dst) < l.BytesPerPixel {
		return fmt.Errorf("%w: %d bytes for one %v pixel", ErrInvalidParameter, len(dst), f)
	}
	binary.BigEndian.PutUint32(dst, color)
	return nil
}

// SplitColor extracts the channels of a packed value. Formats without alpha
// report a = 255.
func SplitColor(color uint32, f PixelFormat) (r, g, b, a uint8, err error) {
	l, err := LayoutOf(f)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	r = channelAt(color, l.R)
	g = channelAt(color, l.G)
	b = channelAt(color, l.B)
	a = 0xFF
	if l.HasAlpha {
		a = channelAt(color, l.A)
	}
	return r, g, b, a, nil
}

// PackColor builds a packed value. Formats without alpha store 0xFF in the
// padding byte and ignore a.
func PackColor(r, g, b, a uint8, f PixelFormat) (uint32, error) {
	l, err := LayoutOf(f)
	if err != nil {
		return 0, err
	}
	if !l.HasAlpha {
		a = 0xFF
	}
	return placeAt(r, l.R) | placeAt(g, l.G) | placeAt(b, l.B) | placeAt(a, l.A), nil
}

func channelAt(color uint32, offset int) uint8 {
	return uint8(color >> (24 - 8*offset))
}

func placeAt(v uint8, offset int) uint32 {
	return uint32(v) << (24 - 8*offset)
}
