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

//go:build amd64 && goexperiment.simd

// NOTE: This file is named "z_sortnet_amd64.go" (starting with 'z')
// to ensure its init() runs AFTER the dispatch defaults in dispatch.go.
// Go executes init() functions in lexicographic filename order within a package.

package sortnet

import "github.com/ajroetker/go-sortnet/hwy"

func init() {
	if hwy.NoSimdEnv() || hwy.CurrentLevel() < hwy.DispatchAVX2 {
		return
	}
	initAVX2Masks()

	// Override sortnet dispatch with archsimd AVX2 implementations
	Sort4Int32 = sort4AVX2I32
	Sort8Int32 = sort8AVX2I32
	Sort16Int32 = sort16AVX2I32
	Sort32Int32 = sort32AVX2I32
	BlockInt32 = blockAVX2I32
	FlipInt32 = flipAVX2I32

	Sort4Float32 = sort4AVX2F32
	Sort8Float32 = sort8AVX2F32
	Sort16Float32 = sort16AVX2F32
	Sort32Float32 = sort32AVX2F32
	BlockFloat32 = blockAVX2F32
	FlipFloat32 = flipAVX2F32

	kernelName = "avx2"
}
