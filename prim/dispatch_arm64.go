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

//go:build arm64

package prim

import "golang.org/x/sys/cpu"

// NEON selects the lane-batched kernels on portable loops; there are no arm64
// vector kernels.
func init() {
	cpuFeatures = featureList(
		feature{"asimd", cpu.ARM64.HasASIMD},
		feature{"sve", cpu.ARM64.HasSVE},
		feature{"sve2", cpu.ARM64.HasSVE2},
	)
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ASIMD is part of the ARMv8-A base architecture; checked for consistency.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
		return
	}
	setScalarMode()
}
