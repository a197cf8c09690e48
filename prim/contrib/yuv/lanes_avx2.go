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

//go:build amd64 && goexperiment.simd

package yuv

import (
	"simd/archsimd"

	"github.com/ajroetker/go-prim/prim"
)

// Batch arithmetic on AVX2 (8 x int32) vectors. Lane arrays hold 16 values,
// so a load at any offset below n stays in bounds.

// Constants are broadcast in init, after the CPU check.
var (
	avx2Zero archsimd.Int32x8
	avx2Max8 archsimd.Int32x8
	avx2Half archsimd.Int32x8
	avx2RV   archsimd.Int32x8
	avx2GU   archsimd.Int32x8
	avx2GV   archsimd.Int32x8
	avx2BU   archsimd.Int32x8
)

func init() {
	if archsimd.X86.AVX2() {
		avx2Zero = archsimd.BroadcastInt32x8(0)
		avx2Max8 = archsimd.BroadcastInt32x8(255)
		avx2Half = archsimd.BroadcastInt32x8(fixHalf)
		avx2RV = archsimd.BroadcastInt32x8(kRV)
		avx2GU = archsimd.BroadcastInt32x8(kGU)
		avx2GV = archsimd.BroadcastInt32x8(kGV)
		avx2BU = archsimd.BroadcastInt32x8(kBU)

		vectorOps[prim.DispatchAVX2] = laneOps{
			width:  8,
			weigh:  weighAVX2,
			narrow: narrowAVX2,
			terms:  termsAVX2,
			decode: decodeAVX2,
		}
	}
}

func weighAVX2(out *lanes, n int, cr, cg, cb int32, r, g, b *lanes) {
	vr := archsimd.BroadcastInt32x8(cr)
	vg := archsimd.BroadcastInt32x8(cg)
	vb := archsimd.BroadcastInt32x8(cb)
	for i := 0; i < n; i += 8 {
		sum := archsimd.LoadInt32x8Slice(r[i:]).Mul(vr)
		sum = sum.Add(archsimd.LoadInt32x8Slice(g[i:]).Mul(vg))
		sum = sum.Add(archsimd.LoadInt32x8Slice(b[i:]).Mul(vb))
		sum.StoreSlice(out[i:])
	}
}

func narrowAVX2(out []byte, acc *lanes, round int32, shift uint, bias int32) {
	var tmp lanes
	vr := archsimd.BroadcastInt32x8(round)
	vb := archsimd.BroadcastInt32x8(bias)
	for i := 0; i < len(out); i += 8 {
		v := archsimd.LoadInt32x8Slice(acc[i:]).Add(vr).ShiftAllRight(uint64(shift))
		v.Add(vb).Max(avx2Zero).Min(avx2Max8).StoreSlice(tmp[i:])
	}
	for i := range out {
		out[i] = byte(tmp[i])
	}
}

func termsAVX2(n int, d, e, rc, gc, bc *lanes) {
	for i := 0; i < n; i += 8 {
		vd := archsimd.LoadInt32x8Slice(d[i:])
		ve := archsimd.LoadInt32x8Slice(e[i:])
		ve.Mul(avx2RV).StoreSlice(rc[i:])
		vd.Mul(avx2GU).Add(ve.Mul(avx2GV)).StoreSlice(gc[i:])
		vd.Mul(avx2BU).StoreSlice(bc[i:])
	}
}

func decodeAVX2(n int, y, rc, gc, bc, r, g, b *lanes) {
	for i := 0; i < n; i += 8 {
		base := archsimd.LoadInt32x8Slice(y[i:]).ShiftAllLeft(fixBits).Add(avx2Half)
		vr := base.Add(archsimd.LoadInt32x8Slice(rc[i:])).ShiftAllRight(fixBits)
		vg := base.Sub(archsimd.LoadInt32x8Slice(gc[i:])).ShiftAllRight(fixBits)
		vb := base.Add(archsimd.LoadInt32x8Slice(bc[i:])).ShiftAllRight(fixBits)
		vr.Max(avx2Zero).Min(avx2Max8).StoreSlice(r[i:])
		vg.Max(avx2Zero).Min(avx2Max8).StoreSlice(g[i:])
		vb.Max(avx2Zero).Min(avx2Max8).StoreSlice(b[i:])
	}
}
