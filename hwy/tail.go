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

package hwy

// Constant lane masks. A compare-exchange phase computes GreaterThan(v, r)
// against a permuted copy r and flips the bits of the upper member of every
// comparator pair, so that the low lane keeps the minimum and the high lane
// the maximum.
const (
	// AlternatingMaskLo128 selects lanes 0-3.
	AlternatingMaskLo128 Mask = 0x0F
	// AlternatingMaskHi128 selects lanes 4-7.
	AlternatingMaskHi128 Mask = 0xF0
	// AlternatingMaskHi64 selects lanes 2,3,6,7.
	AlternatingMaskHi64 Mask = 0xCC
	// AlternatingMaskHi32 selects the odd lanes.
	AlternatingMaskHi32 Mask = 0xAA
)

var firstN = [NumLanes + 1]Mask{0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}

// FirstN returns a mask with the first n lanes active. n is clamped to
// [0, NumLanes].
//
// Example:
//
//	tail := data[off:]
//	mask := hwy.FirstN(len(tail))
//	v := hwy.IfThenElse(mask, hwy.MaskLoad(mask, tail), hwy.Set(hwy.MaxValue[float32]()))
//	// ... process the register
//	hwy.MaskStore(mask, v, tail)
func FirstN(n int) Mask {
	return firstN[max(0, min(n, NumLanes))]
}

// Xor returns the lanes active in exactly one mask.
func (m Mask) Xor(o Mask) Mask { return m ^ o }

