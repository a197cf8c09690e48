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

// Package yuv converts between packed RGB and planar Y'CbCr frames.
//
// Six operations are provided by every KernelSet: RGB to 4:2:0 and 4:4:4,
// the two inverse conversions, and the AVC444 combine and split that move a
// 4:4:4 frame in and out of a main/auxiliary pair of 4:2:0 frames.
//
// Two implementations exist. Generic is portable, complete, and the
// reference for correctness. Optimized processes pixels in lane batches
// sized for the vector width detected at startup; operations it does not
// accelerate return prim.ErrUnsupported, so callers normally use Active,
// which falls back to Generic:
//
//	k := yuv.Active()
//	err := k.YUV420ToRGB(yuv.Planes{Y: y, U: u, V: v}, dst, prim.BGRX32, roi)
//
// Both use BT.709 full-range coefficients in 16-bit fixed point. Results of
// two implementations of the same operation differ by at most
// SampleTolerance per Y/U/V sample and ColorTolerance per RGB channel.
//
// Every call validates all of its views before writing, so an error leaves
// every destination untouched. Parallel spreads a call over a worker pool in
// row bands.
package yuv
