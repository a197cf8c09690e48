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

// Batch arithmetic on AVX-512 (16 x int32) vectors. Lane arrays hold 16 values,
// so a load at any offset below n stays in bounds.

// Constants are broadcast in init, after the CPU check.
var (
	avx512Zero archsimd.Int32x16
	avx512Max8 archsimd.Int32x16
	avx512Half archsimd.Int32x16
	avx512RV   archsimd.Int32x16
	avx512GU   archsimd.Int32x16
	avx512GV   archsimd.Int32x16
	avx512BU   archsimd.Int32x16
)

func init() {
	if archsimd.X86.AVX512() {
		avx512Zero = archsimd.BroadcastInt32x16(0)
		avx512Max8 = archsimd.BroadcastInt32x16(255)
		avx512Half = archsimd.BroadcastInt32x16(fixHalf)
		avx512RV = archsimd.BroadcastInt32x16(kRV)
		avx512GU = archsimd.BroadcastInt32x16(kGU)
		avx512GV = archsimd.BroadcastInt32x16(kGV)
		avx512BU = archsimd.BroadcastInt32x16(kBU)

		vectorOps[prim.DispatchAVX512] = laneOps{
			width:  16,
			weigh:  weighAVX512,
			narrow: narrowAVX512,
			terms:  termsAVX512,
			decode: decodeAVX512,
		}
	}
}

func weighAVX512(out *lanes, n int, cr, cg, cb int32, r, g, b *lanes) {
	vr := archsimd.BroadcastInt32x16(cr)
	vg := archsimd.BroadcastInt32x16(cg)
	vb := archsimd.BroadcastInt32x16(cb)
	for i := 0; i < n; i += 16 {
		sum := archsimd.LoadInt32x16Slice(r[i:]).Mul(vr)
		sum = sum.Add(archsimd.LoadInt32x16Slice(g[i:]).Mul(vg))
		sum = sum.Add(archsimd.LoadInt32x16Slice(b[i:]).Mul(vb))
		sum.StoreSlice(out[i:])
	}
}

func narrowAVX512(out []byte, acc *lanes, round int32, shift uint, bias int32) {
	var tmp lanes
	vr := archsimd.BroadcastInt32x16(round)
	vb := archsimd.BroadcastInt32x16(bias)
	for i := 0; i < len(out); i += 16 {
		v := archsimd.LoadInt32x16Slice(acc[i:]).Add(vr).ShiftAllRight(uint64(shift))
		v.Add(vb).Max(avx512Zero).Min(avx512Max8).StoreSlice(tmp[i:])
	}
	for i := range out {
		out[i] = byte(tmp[i])
	}
}

func termsAVX512(n int, d, e, rc, gc, bc *lanes) {
	for i := 0; i < n; i += 16 {
		vd := archsimd.LoadInt32x16Slice(d[i:])
		ve := archsimd.LoadInt32x16Slice(e[i:])
		ve.Mul(avx512RV).StoreSlice(rc[i:])
		vd.Mul(avx512GU).Add(ve.Mul(avx512GV)).StoreSlice(gc[i:])
		vd.Mul(avx512BU).StoreSlice(bc[i:])
	}
}

func decodeAVX512(n int, y, rc, gc, bc, r, g, b *lanes) {
	for i := 0; i < n; i += 16 {
		base := archsimd.LoadInt32x16Slice(y[i:]).ShiftAllLeft(fixBits).Add(avx512Half)
		vr := base.Add(archsimd.LoadInt32x16Slice(rc[i:])).ShiftAllRight(fixBits)
		vg := base.Sub(archsimd.LoadInt32x16Slice(gc[i:])).ShiftAllRight(fixBits)
		vb := base.Add(archsimd.LoadInt32x16Slice(bc[i:])).ShiftAllRight(fixBits)
		vr.Max(avx512Zero).Min(avx512Max8).StoreSlice(r[i:])
		vg.Max(avx512Zero).Min(avx512Max8).StoreSlice(g[i:])
		vb.Max(avx512Zero).Min(avx512Max8).StoreSlice(b[i:])
	}
}
