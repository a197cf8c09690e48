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
	"fmt"
	"testing"

	"github.com/ajroetker/go-prim/prim"
	"github.com/ajroetker/go-prim/prim/contrib/workerpool"
)

// Benchmark sizes for conversions
var convBenchSizes = []struct {
	name   string
	width  int
	height int
}{
	{"64x64", 64, 64},
	{"720p", 1280, 720},
	{"1080p", 1920, 1080},
}

func benchSets(b *testing.B) []KernelSet {
	pool := workerpool.New(0)
	b.Cleanup(pool.Close)
	sets := []KernelSet{
		NewGeneric(),
		newBatchedSet(prim.DispatchAVX2, 8),
	}
	for _, level := range []prim.DispatchLevel{prim.DispatchAVX2, prim.DispatchAVX512} {
		if s, ok := newVectorSet(level); ok {
			sets = append(sets, s)
		}
	}
	return append(sets, Parallel(Active(), pool))
}

func BenchmarkOperations(b *testing.B) {
	sets := benchSets(b)
	for _, op := range opCases {
		for _, size := range convBenchSizes {
			roi := prim.ROI{Width: size.width, Height: size.height}
			f := newFrames(roi, prim.BGRX32)
			f.randomize(1)
			for _, k := range sets {
				if op.run(k, f) != nil {
					continue
				}
				b.Run(fmt.Sprintf("%s/%s/%s", op.name, size.name, k.Name()), func(b *testing.B) {
					b.ReportAllocs()
					b.SetBytes(int64(roi.Area() * 4))
					for b.Loop() {
						_ = op.run(k, f)
					}
				})
			}
		}
	}
}
