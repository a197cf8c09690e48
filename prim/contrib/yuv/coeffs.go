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

// BT.709 full-range transform in 16-bit fixed point. Each forward row sums to
// 1<<16 (luma) or 0 (chroma) so grey maps to U = V = 128 exactly.
//
//	Y =  0.2126*R + 0.7152*G + 0.0722*B
//	U = -0.1146*R - 0.3854*G + 0.5*B    + 128
//	V =  0.5*R    - 0.4542*G - 0.0458*B + 128
//
//	R = Y + 1.5748*(V-128)
//	G = Y - 0.1873*(U-128) - 0.4681*(V-128)
//	B = Y + 1.8556*(U-128)
const (
	fixBits = 16
	fixHalf = 1 << (fixBits - 1)

	kYR int32 = 13933
	kYG int32 = 46871
	kYB int32 = 4732

	kUR int32 = -7510
	kUG int32 = -25258
	kUB int32 = 32768

	kVR int32 = 32768
	kVG int32 = -29766
	kVB int32 = -3002

	kRV int32 = 103206
	kGU int32 = 12275
	kGV int32 = 30677
	kBU int32 = 121610
)

// Tolerances between two implementations of the same operation.
const (
	// SampleTolerance bounds the difference of raw Y/U/V samples.
	SampleTolerance = 4

	// ColorTolerance bounds the per-channel difference of decoded RGB.
	ColorTolerance = 2
)

// chromaShift[n] is the shift that averages n summed samples (n = 1, 2, 4).
var chromaShift = [5]uint{1: fixBits, 2: fixBits + 1, 4: fixBits + 2}

func clamp8(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

func luma(r, g, b int32) byte {
	return byte((kYR*r + kYG*g + kYB*b + fixHalf) >> fixBits)
}

// chroma converts a weighted sum scaled by 1<<shift into a biased sample.
func chroma(sum int32, shift uint) byte {
	return clamp8((sum+1<<(shift-1))>>shift + 128)
}

func toRGB(y, u, v int32) (r, g, b byte) {
	c := y<<fixBits + fixHalf
	d := u - 128
	e := v - 128
	r = clamp8((c + kRV*e) >> fixBits)
	g = clamp8((c - kGU*d - kGV*e) >> fixBits)
	b = clamp8((c + kBU*d) >> fixBits)
	return r, g, b
}
