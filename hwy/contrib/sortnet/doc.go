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

// Package sortnet provides data-parallel periodic balanced sorting networks
// for int32 and float32 keys.
//
// A sorting network is a fixed sequence of compare-exchange steps: the same
// comparisons run whatever the data, so the sort is branch-free and maps
// directly onto 8-lane registers. The networks here are built from four
// register-level blocks (4, 8, 16 and 32 elements). Arrays up to 32 elements
// are sorted entirely in registers; longer arrays, up to 2^24 elements, are
// sorted by a composer that applies the same periodic schedule over memory.
//
// # Algorithm
//
// A block of 2^k elements executes up to k phases. Phase 1 compares element i
// with element 2^k-1-i (a "flip"); each following phase applies the same flip
// to both halves. Sorting 2^k elements runs k blocks with p_i = min(i+2, k)
// phases, so an 8-element sort is Block8(2), Block8(3), Block8(3).
//
// Lengths that are not a power of two are padded with the largest key
// (math.MaxInt32 or +Inf). Every comparator sends its minimum to the lower
// index, so padding never moves below the real data and is never written back.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortnet/hwy/contrib/sortnet"
//
//	s, err := sortnet.NewInt32(16)
//	if err != nil {
//	    return err
//	}
//	data := []int32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3}
//	if err := s.Sort(data); err != nil {
//	    return err
//	}
//
// A Sorter accepts lengths in [MinLength, MaxLength]. SortUnchecked skips the
// check; calling it outside the bounds is undefined.
//
// Networks can be proven correct with Validate, which runs all 2^n zero-one
// inputs of length n (n <= 28) through a sorter.
//
// The sort is not stable, and the ordering of NaN keys is undefined.
//
// # Build Requirements
//
// SIMD implementations require:
//   - GOEXPERIMENT=simd build flag
//   - AMD64 with AVX2
//
// Without SIMD, or with HWY_NO_SIMD set, the package uses the portable
// kernels built on hwy.Vec.
package sortnet
