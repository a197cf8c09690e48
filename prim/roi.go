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

import "fmt"

// MaxDimension bounds both ROI dimensions. It keeps every fixed-point
// intermediate (sums of four samples times 17-bit coefficients plus row
// offsets) inside int32.
const MaxDimension = 1 << 14

// BlockSize is the macroblock edge used by codecs. Work buffers are padded to
// it; kernels never touch the padding.
const BlockSize = 16

// ROI is the rectangle a kernel processes, anchored at the origin of every
// view passed with it.
type ROI struct {
	Width, Height int
}

// Area returns Width*Height, or 0 for degenerate regions.
func (r ROI) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// IsEmpty returns true if the region has zero or negative area.
func (r ROI) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ChromaSize returns the 4:2:0 chroma plane size, rounding odd sizes up.
func (r ROI) ChromaSize() ROI {
	return ROI{Width: (r.Width + 1) / 2, Height: (r.Height + 1) / 2}
}

// Aligned returns the region rounded up to the next multiple of BlockSize in
// both dimensions.
func (r ROI) Aligned() ROI {
	return ROI{Width: AlignUp(r.Width, BlockSize), Height: AlignUp(r.Height, BlockSize)}
}

// Validate checks the region before any kernel touches a buffer.
func (r ROI) Validate() error {
	if r.IsEmpty() {
		return fmt.Errorf("%w: empty roi %dx%d", ErrInvalidParameter, r.Width, r.Height)
	}
	if r.Width > MaxDimension || r.Height > MaxDimension {
		return fmt.Errorf("%w: roi %dx%d, max %d", ErrInternalLimit, r.Width, r.Height, MaxDimension)
	}
	return nil
}

func (r ROI) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// AlignUp rounds n up to a multiple of align. align must be positive.
func AlignUp(n, align int) int {
	return (n + align - 1) / align * align
}
