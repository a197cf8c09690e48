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
	"errors"
	"fmt"
	"sync"

	"github.com/ajroetker/go-prim/prim"
)

var (
	_ KernelSet = (*TableSet)(nil)
	_ KernelSet = (*fallbackSet)(nil)
)

// Names of the built-in kernel sets. Optimized sets carry the dispatch level
// in parentheses: "optimized(avx2)" runs vector arithmetic, "batched(neon)"
// runs the lane-batched kernels on portable loops.
const (
	GenericName   = "generic"
	OptimizedName = "optimized"
	BatchedName   = "batched"
)

var (
	genericOnce sync.Once
	genericSet  *TableSet

	optimizedOnce sync.Once
	optimizedSet  *TableSet

	activeOnce sync.Once
	activeSet  KernelSet
)

// genericTable is always complete: it is the correctness baseline.
func genericTable() Table {
	return Table{
		RGBToYUV420:           baseRGBToYUV420,
		RGBToYUV444:           baseRGBToYUV444,
		YUV420ToRGB:           baseYUV420ToRGB,
		YUV444ToRGB:           baseYUV444ToRGB,
		YUV420CombineToYUV444: baseYUV420CombineToYUV444,
		YUV444SplitToYUV420:   baseYUV444SplitToYUV420,
	}
}

// optimizedTable holds the lane-batched kernels. The split has no optimized
// form; its slot stays nil.
func optimizedTable(k laneKernels) Table {
	return Table{
		RGBToYUV420:           k.rgbToYUV420,
		RGBToYUV444:           k.rgbToYUV444,
		YUV420ToRGB:           k.yuv420ToRGB,
		YUV444ToRGB:           k.yuv444ToRGB,
		YUV420CombineToYUV444: combineRows,
	}
}

// NewGeneric builds a fresh generic kernel set.
func NewGeneric() *TableSet {
	return &TableSet{name: GenericName, table: genericTable()}
}

// NewOptimized builds a fresh optimized kernel set for the current dispatch
// level: vector kernels where this build has them for the level, batched
// portable kernels otherwise. On a scalar host (or with PRIM_NO_SIMD set)
// every slot is nil and every operation returns prim.ErrUnsupported.
func NewOptimized() *TableSet {
	level := prim.CurrentLevel()
	if !prim.Accelerated() {
		return &TableSet{name: setName(OptimizedName, level)}
	}
	return newOptimizedSet(level, prim.Lanes())
}

// newOptimizedSet returns the vector set of level if one is registered, else
// the batched set with the given batch width.
func newOptimizedSet(level prim.DispatchLevel, lanes int) *TableSet {
	if s, ok := newVectorSet(level); ok {
		return s
	}
	return newBatchedSet(level, lanes)
}

func newVectorSet(level prim.DispatchLevel) (*TableSet, bool) {
	ops, ok := vectorOps[level]
	if !ok {
		return nil, false
	}
	k := newLaneKernels(ops.width, ops)
	return &TableSet{name: setName(OptimizedName, level), table: optimizedTable(k)}, true
}

func newBatchedSet(level prim.DispatchLevel, lanes int) *TableSet {
	k := newLaneKernels(lanes, portableOps)
	return &TableSet{name: setName(BatchedName, level), table: optimizedTable(k)}
}

func setName(kind string, level prim.DispatchLevel) string {
	return fmt.Sprintf("%s(%s)", kind, level)
}

// Generic returns the process-wide generic kernel set.
func Generic() KernelSet {
	genericOnce.Do(func() {
		genericSet = NewGeneric()
	})
	return genericSet
}

// Optimized returns the process-wide optimized kernel set. Operations it does
// not accelerate return prim.ErrUnsupported; see WithFallback.
func Optimized() KernelSet {
	optimizedOnce.Do(func() {
		optimizedSet = NewOptimized()
	})
	return optimizedSet
}

// Active returns the optimized set degrading to the generic one.
func Active() KernelSet {
	activeOnce.Do(func() {
		activeSet = WithFallback(Optimized(), Generic())
	})
	return activeSet
}

// SlotsOf reports the populated operations of a table-backed set, or nil for
// any other KernelSet.
func SlotsOf(k KernelSet) []string {
	ts, ok := k.(*TableSet)
	if !ok {
		return nil
	}
	t := ts.Table()
	return t.Slots()
}

// fallbackSet runs primary and retries on fallback when primary reports
// prim.ErrUnsupported. Since validation precedes any write, the retry never
// sees a half-written destination.
type fallbackSet struct {
	primary, fallback KernelSet
}

// WithFallback returns a KernelSet that calls primary and degrades to
// fallback for every operation primary does not support.
func WithFallback(primary, fallback KernelSet) KernelSet {
	return &fallbackSet{primary: primary, fallback: fallback}
}

func (f *fallbackSet) Name() string {
	return f.primary.Name() + "+" + f.fallback.Name()
}

func degrade(err error, retry func() error) error {
	if errors.Is(err, prim.ErrUnsupported) {
		return retry()
	}
	return err
}

func (f *fallbackSet) RGBToYUV420(src prim.PlaneView, format prim.PixelFormat, dst Planes, roi prim.ROI) error {
	return degrade(f.primary.RGBToYUV420(src, format, dst, roi), func() error {
		return f.fallback.RGBToYUV420(src, format, dst, roi)
	})
}

func (f *fallbackSet) RGBToYUV444(src prim.PlaneView, format prim.PixelFormat, dst Planes, roi prim.ROI) error {
	return degrade(f.primary.RGBToYUV444(src, format, dst, roi), func() error {
		return f.fallback.RGBToYUV444(src, format, dst, roi)
	})
}

func (f *fallbackSet) YUV420ToRGB(src Planes, dst prim.PlaneView, format prim.PixelFormat, roi prim.ROI) error {
	return degrade(f.primary.YUV420ToRGB(src, dst, format, roi), func() error {
		return f.fallback.YUV420ToRGB(src, dst, format, roi)
	})
}

func (f *fallbackSet) YUV444ToRGB(src Planes, dst prim.PlaneView, format prim.PixelFormat, roi prim.ROI) error {
	return degrade(f.primary.YUV444ToRGB(src, dst, format, roi), func() error {
		return f.fallback.YUV444ToRGB(src, dst, format, roi)
	})
}

func (f *fallbackSet) YUV420CombineToYUV444(main, aux, dst Planes, roi prim.ROI) error {
	return degrade(f.primary.YUV420CombineToYUV444(main, aux, dst, roi), func() error {
		return f.fallback.YUV420CombineToYUV444(main, aux, dst, roi)
	})
}

func (f *fallbackSet) YUV444SplitToYUV420(src, main, aux Planes, roi prim.ROI) error {
	return degrade(f.primary.YUV444SplitToYUV420(src, main, aux, roi), func() error {
		return f.fallback.YUV444SplitToYUV420(src, main, aux, roi)
	})
}
