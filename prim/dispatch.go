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

import (
	"os"
	"slices"
	"strconv"
)

// DispatchLevel names the instruction set the optimized kernels are selected
// for. A level above DispatchScalar means the optimized kernel set is
// populated; whether it runs vector code or lane-batched portable loops
// depends on what the build carries for that level. On amd64, levels above
// scalar are only reported by builds with GOEXPERIMENT=simd.
type DispatchLevel int

const (
	// DispatchScalar selects the generic kernels only.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 is the amd64 baseline (128-bit).
	DispatchSSE2

	// DispatchAVX2 selects 8-lane kernels (256-bit).
	DispatchAVX2

	// DispatchAVX512 selects 16-lane kernels (512-bit).
	DispatchAVX512

	// DispatchNEON is the arm64 baseline (128-bit).
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int // bytes per vector register at currentLevel

	// cpuFeatures lists what the CPU reports, independent of the level.
	cpuFeatures []string
)

// CurrentLevel returns the level selected at startup.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes: 16 for SSE2, NEON and
// scalar, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the current level.
func CurrentName() string {
	return currentLevel.String()
}

// Lanes returns the number of 32-bit lanes per vector at the current level.
// Optimized kernels process pixels in batches of this size.
func Lanes() int {
	return currentWidth / 4
}

// Accelerated reports whether an optimized kernel set should be populated.
func Accelerated() bool {
	return currentLevel != DispatchScalar
}

// CPUFeatures returns the relevant features the CPU reports, such as "avx2"
// or "asimd". A feature may be present while CurrentLevel is lower: levels
// also depend on the build and on PRIM_NO_SIMD.
func CPUFeatures() []string {
	return slices.Clone(cpuFeatures)
}

// NoSimdEnv reports whether PRIM_NO_SIMD is set. Any value other than a false
// boolean ("0", "false", ...) forces DispatchScalar.
func NoSimdEnv() bool {
	val := os.Getenv("PRIM_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}

// featureList returns the names whose flag is set, in order.
func featureList(flags ...feature) []string {
	var out []string
	for _, f := range flags {
		if f.has {
			out = append(out, f.name)
		}
	}
	return out
}

type feature struct {
	name string
	has  bool
}
