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

import "github.com/ajroetker/go-prim/prim"

// checkPlanes verifies a plane triple: Y covers roi, U and V cover roi or its
// chroma size.
func checkPlanes(prefix string, p Planes, roi prim.ROI, subsampled bool) error {
	c := roi
	if subsampled {
		c = roi.ChromaSize()
	}
	if err := p.Y.Covers(prefix+"Y", roi.Width, roi.Height, 1); err != nil {
		return err
	}
	if err := p.U.Covers(prefix+"U", c.Width, c.Height, 1); err != nil {
		return err
	}
	return p.V.Covers(prefix+"V", c.Width, c.Height, 1)
}

func checkPacked(name string, v prim.PlaneView, format prim.PixelFormat, roi prim.ROI) (prim.Layout, error) {
	l, err := prim.LayoutOf(format)
	if err != nil {
		return prim.Layout{}, err
	}
	if err := v.Covers(name, roi.Width, roi.Height, l.BytesPerPixel); err != nil {
		return prim.Layout{}, err
	}
	return l, nil
}

func checkRGBToYUV(src prim.PlaneView, format prim.PixelFormat, dst Planes, roi prim.ROI, subsampled bool) (prim.Layout, error) {
	if err := roi.Validate(); err != nil {
		return prim.Layout{}, err
	}
	l, err := checkPacked("src", src, format, roi)
	if err != nil {
		return prim.Layout{}, err
	}
	return l, checkPlanes("dst ", dst, roi, subsampled)
}

func checkYUVToRGB(src Planes, dst prim.PlaneView, format prim.PixelFormat, roi prim.ROI, subsampled bool) (prim.Layout, error) {
	if err := roi.Validate(); err != nil {
		return prim.Layout{}, err
	}
	l, err := checkPacked("dst", dst, format, roi)
	if err != nil {
		return prim.Layout{}, err
	}
	return l, checkPlanes("src ", src, roi, subsampled)
}

// checkAVC444 validates the three frames of a combine or split. Both the main
// and the auxiliary frame are 4:2:0 frames of the full roi size; an auxiliary
// luma plane padded to a multiple of 16 rows carries the trailing stripes.
func checkAVC444(full, main, aux Planes, roi prim.ROI) error {
	if err := roi.Validate(); err != nil {
		return err
	}
	if err := checkPlanes("444 ", full, roi, false); err != nil {
		return err
	}
	if err := checkPlanes("main ", main, roi, true); err != nil {
		return err
	}
	return checkPlanes("aux ", aux, roi, true)
}
