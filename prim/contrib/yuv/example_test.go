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

package yuv_test

import (
	"fmt"

	"github.com/ajroetker/go-prim/prim"
	"github.com/ajroetker/go-prim/prim/contrib/yuv"
)

func Example() {
	const w, h = 6, 4
	roi := prim.ROI{Width: w, Height: h}
	c := roi.ChromaSize()

	rgb := make([]byte, w*4*h)
	for i := 0; i < len(rgb); i += 4 {
		copy(rgb[i:], []byte{0x20, 0x80, 0xE0, 0xFF}) // BGRA
	}
	src, _ := prim.NewPacked(rgb, w*4, w, h, prim.BGRA32)

	yv, _ := prim.NewPlane(make([]byte, w*h), w, w, h)
	uv, _ := prim.NewPlane(make([]byte, c.Width*c.Height), c.Width, c.Width, c.Height)
	vv, _ := prim.NewPlane(make([]byte, c.Width*c.Height), c.Width, c.Width, c.Height)
	planes := yuv.Planes{Y: yv, U: uv, V: vv}

	if err := yuv.Active().RGBToYUV420(src, prim.BGRA32, planes, roi); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Y:", yv.Row(0)[0], "U:", uv.Row(0)[0], "V:", vv.Row(0)[0])
	// Output: Y: 141 U: 69 V: 180
}

func ExampleWithFallback() {
	k := yuv.WithFallback(yuv.Optimized(), yuv.Generic())
	roi := prim.ROI{Width: 2, Height: 2}

	err := k.RGBToYUV444(prim.PlaneView{}, prim.XRGB32, yuv.Planes{}, roi)
	fmt.Println(prim.StatusOf(err))
	// Output: invalid parameter
}
