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

import (
	"math/bits"

	"github.com/ajroetker/go-sortnet/hwy"
)

// phaseKernels are the register-level steps the composer drives over memory.
type phaseKernels[T hwy.Lanes] struct {
	// block runs p phases of an n-element block (n <= MaxInlinedLength) on
	// data, which holds the first len(data) <= n elements of the block.
	block func(p, n int, data []T)
	// flip compares data[lo+i] with data[hi+7-i] for i in [0, 8). Fewer than
	// 8 elements may be present at hi; the missing ones act as the largest key.
	flip func(data []T, lo, hi int)
}

// BaseFlip is one 16-element flip step between the registers at lo and hi.
func BaseFlip[T hwy.Lanes](data []T, lo, hi int) {
	v0, v1 := flip16(hwy.Load(data[lo:]), loadBlock8(data, hi))
	hwy.Store(v0, data[lo:])
	storeBlock8(v1, data, hi)
}

// upsize returns the smallest power of two >= n (at least 4) and its log2.
func upsize(n int) (int, int) {
	k := max(2, bits.Len(uint(n-1)))
	return 1 << k, k
}

// composeSort sorts data of any length up to MaxSupportedLength by running
// the periodic schedule over the array padded to a power of two.
func composeSort[T hwy.Lanes](k phaseKernels[T], data []T) {
	if len(data) < 2 {
		return
	}
	u, log2u := upsize(len(data))
	for i := range log2u {
		composeBlock(k, min(i+2, log2u), data, u)
	}
}

// composeBlock runs p phases of a u-element block whose first len(data)
// elements are real. At each level the sub-block size halves; sub-blocks
// that start at or beyond len(data) are all padding and are skipped.
func composeBlock[T hwy.Lanes](k phaseKernels[T], p int, data []T, u int) {
	c := len(data)
	for ; p > 0; p, u = p-1, u/2 {
		if u <= MaxInlinedLength {
			for sb := 0; sb < c; sb += u {
				k.block(p, u, data[sb:min(sb+u, c)])
			}
			return
		}
		for sb := 0; sb < c; sb += u {
			composePhase(k, data[sb:min(sb+u, c)], u)
		}
	}
}

// composePhase applies one flip to a u-element sub-block (u > 32) whose
// first len(data) elements are real: register j is paired with register
// u/8-1-j.
func composePhase[T hwy.Lanes](k phaseKernels[T], data []T, u int) {
	pad := u - len(data)
	// The top i0 registers are all padding; their partners are already
	// smaller and stay put.
	i0 := pad >> 3
	lo, hi := 8*i0, u-8*(i0+1)

	// Only the first pair can hold a partially filled register at hi, with
	// 8-pad&7 real elements.
	for ; lo < hi; lo, hi = lo+8, hi-8 {
		k.flip(data, lo, hi)
	}
}
