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

// Package prim provides the shared vocabulary of the pixel conversion
// primitives: packed RGB pixel formats, non-owning plane views, regions of
// interest, error values, and the host acceleration level probed at startup.
//
// The conversion kernels themselves live in prim/contrib/yuv.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-prim/prim"
//
//	// Describe caller memory without copying it
//	rgb, err := prim.NewPacked(buf, stride, width, height, prim.BGRX32)
//	y, err := prim.NewPlane(yBuf, yStride, width, height)
//
//	// Inspect a pixel
//	c, _ := prim.ReadColor(rgb.Row(0), prim.BGRX32)
//	r, g, b, a, _ := prim.SplitColor(c, prim.BGRX32)
//
// Set PRIM_NO_SIMD=1 to force the generic kernels regardless of CPU features.
package prim
