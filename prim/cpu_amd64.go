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

//go:build amd64

package prim

import "golang.org/x/sys/cpu"

func detectX86Features() []string {
	return featureList(
		feature{"sse2", cpu.X86.HasSSE2},
		feature{"sse41", cpu.X86.HasSSE41},
		feature{"avx", cpu.X86.HasAVX},
		feature{"avx2", cpu.X86.HasAVX2},
		feature{"fma", cpu.X86.HasFMA},
		feature{"avx512f", cpu.X86.HasAVX512F},
		feature{"avx512bw", cpu.X86.HasAVX512BW},
	)
}
