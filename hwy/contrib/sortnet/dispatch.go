// Copyright 2025 go-sortnet Authors
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

package sortnet

import "github.com/ajroetker/go-sortnet/hwy"

// Kernel dispatch. Each variable starts at the portable implementation;
// z_sortnet_amd64.go replaces them with AVX2 kernels at init when the CPU
// supports it. Sorters bind the current values when they are created.
var (
	Sort4Int32  = BaseSort4[int32]
	Sort8Int32  = BaseSort8[int32]
	Sort16Int32 = BaseSort16[int32]
	Sort32Int32 = BaseSort32[int32]
	BlockInt32  = BaseBlockN[int32]
	FlipInt32   = BaseFlip[int32]

	Sort4Float32  = BaseSort4[float32]
	Sort8Float32  = BaseSort8[float32]
	Sort16Float32 = BaseSort16[float32]
	Sort32Float32 = BaseSort32[float32]
	BlockFloat32  = BaseBlockN[float32]
	FlipFloat32   = BaseFlip[float32]
)

// kernelName is the name of the implementation the variables above hold.
var kernelName = "base"

// KernelName returns the name of the kernel set selected at init:
// "base" for the portable kernels, "avx2" for the native ones.
func KernelName() string {
	return kernelName
}

// kernelSet is the per-type view of the dispatch variables.
type kernelSet[T hwy.Lanes] struct {
	name  string
	fixed [numInlinedRungs]func(data []T)
	phase phaseKernels[T]
}

// currentKernels snapshots the dispatch variables for T.
func currentKernels[T hwy.Lanes]() kernelSet[T] {
	var ks kernelSet[T]
	ks.name = kernelName
	switch p := any(&ks).(type) {
	case *kernelSet[int32]:
		p.fixed = [numInlinedRungs]func([]int32){Sort4Int32, Sort8Int32, Sort16Int32, Sort32Int32}
		p.phase = phaseKernels[int32]{block: BlockInt32, flip: FlipInt32}
	case *kernelSet[float32]:
		p.fixed = [numInlinedRungs]func([]float32){Sort4Float32, Sort8Float32, Sort16Float32, Sort32Float32}
		p.phase = phaseKernels[float32]{block: BlockFloat32, flip: FlipFloat32}
	}
	return ks
}
