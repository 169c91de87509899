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

// The blocks below are the portable kernels. Each executes the top p phases
// of a periodic balanced block and is only valid for 1 <= p <= log2(size).

// exchange is one compare-exchange phase within a register: r is v under a
// lane permutation pairing every lane with its partner, and hi selects the
// upper member of each pair. Low members keep the minimum, high members the
// maximum.
func exchange[T hwy.Lanes](v, r hwy.Vec[T], hi hwy.Mask) hwy.Vec[T] {
	m := hwy.GreaterThan(v, r).Xor(hi)
	return hwy.IfThenElse(m, r, v)
}

// BaseBlock4 runs p phases of a 4-element block on both 4-lane groups of v.
//
//	phase 1: (0,3) (1,2)
//	phase 2: (0,1) (2,3)
func BaseBlock4[T hwy.Lanes](p int, v hwy.Vec[T]) hwy.Vec[T] {
	v = exchange(v, hwy.Reverse4(v), hwy.AlternatingMaskHi64)
	if p == 1 {
		return v
	}
	return exchange(v, hwy.Reverse2(v), hwy.AlternatingMaskHi32)
}

// BaseBlock8 runs p phases of an 8-element block on v.
// Phase 1 compares lane i with lane 7-i; the rest are BaseBlock4.
func BaseBlock8[T hwy.Lanes](p int, v hwy.Vec[T]) hwy.Vec[T] {
	v = exchange(v, hwy.Reverse(v), hwy.AlternatingMaskHi128)
	if p == 1 {
		return v
	}
	return BaseBlock4(p-1, v)
}

// flip16 is phase 1 of a 16-element block: element i of v0 against element
// 15-i of the pair, which is lane 7-i of v1.
func flip16[T hwy.Lanes](v0, v1 hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	r := hwy.Reverse(v1)
	return hwy.Min(v0, r), hwy.Reverse(hwy.Max(v0, r))
}

// BaseBlock16 runs p phases of a 16-element block held in v0 (elements 0-7)
// and v1 (elements 8-15).
func BaseBlock16[T hwy.Lanes](p int, v0, v1 hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	v0, v1 = flip16(v0, v1)
	if p == 1 {
		return v0, v1
	}
	return BaseBlock8(p-1, v0), BaseBlock8(p-1, v1)
}

// BaseBlock32 runs p phases of a 32-element block held in v0..v3.
// Phase 1 pairs v0 with reversed v3 and v1 with reversed v2.
func BaseBlock32[T hwy.Lanes](p int, v0, v1, v2, v3 hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T], hwy.Vec[T], hwy.Vec[T]) {
	v0, v3 = flip16(v0, v3)
	v1, v2 = flip16(v1, v2)
	if p == 1 {
		return v0, v1, v2, v3
	}
	v0, v1 = BaseBlock16(p-1, v0, v1)
	v2, v3 = BaseBlock16(p-1, v2, v3)
	return v0, v1, v2, v3
}

// block4Lanes runs p phases of Block-4 on both 4-lane groups of an array
// register, the same comparators as BaseBlock4.
func block4Lanes[T hwy.Lanes](p int, lanes *[hwy.NumLanes]T) {
	for g := 0; g < hwy.NumLanes; g += 4 {
		a, b, c, d := lanes[g], lanes[g+1], lanes[g+2], lanes[g+3]
		a, d = min(a, d), max(a, d)
		b, c = min(b, c), max(b, c)
		if p > 1 {
			a, b = min(a, b), max(a, b)
			c, d = min(c, d), max(c, d)
		}
		lanes[g], lanes[g+1], lanes[g+2], lanes[g+3] = a, b, c, d
	}
}

// loadBlock8 loads the register starting at data[off:]. Lanes past the end
// of data hold the largest key.
func loadBlock8[T hwy.Lanes](data []T, off int) hwy.Vec[T] {
	tail := data[min(off, len(data)):]
	m := hwy.FirstN(len(tail))
	return hwy.IfThenElse(m, hwy.MaskLoad(m, tail), hwy.Set(hwy.MaxValue[T]()))
}

// storeBlock8 writes back only the lanes that lie inside data.
func storeBlock8[T hwy.Lanes](v hwy.Vec[T], data []T, off int) {
	tail := data[min(off, len(data)):]
	hwy.MaskStore(hwy.FirstN(len(tail)), v, tail)
}

// BaseSort4 sorts up to 4 elements in one register.
func BaseSort4[T hwy.Lanes](data []T) {
	v := loadBlock8(data, 0)
	v = BaseBlock4(2, v)
	v = BaseBlock4(2, v)
	storeBlock8(v, data, 0)
}

// BaseSort8 sorts up to 8 elements in one register.
func BaseSort8[T hwy.Lanes](data []T) {
	v := loadBlock8(data, 0)
	v = BaseBlock8(2, v)
	v = BaseBlock8(3, v)
	v = BaseBlock8(3, v)
	storeBlock8(v, data, 0)
}

// BaseSort16 sorts up to 16 elements in two registers.
func BaseSort16[T hwy.Lanes](data []T) {
	v0, v1 := loadBlock8(data, 0), loadBlock8(data, 8)
	v0, v1 = BaseBlock16(2, v0, v1)
	v0, v1 = BaseBlock16(3, v0, v1)
	v0, v1 = BaseBlock16(4, v0, v1)
	v0, v1 = BaseBlock16(4, v0, v1)
	storeBlock8(v0, data, 0)
	storeBlock8(v1, data, 8)
}

// BaseSort32 sorts up to 32 elements in four registers.
func BaseSort32[T hwy.Lanes](data []T) {
	v0, v1 := loadBlock8(data, 0), loadBlock8(data, 8)
	v2, v3 := loadBlock8(data, 16), loadBlock8(data, 24)
	for _, p := range [...]int{2, 3, 4, 5, 5} {
		v0, v1, v2, v3 = BaseBlock32(p, v0, v1, v2, v3)
	}
	storeBlock8(v0, data, 0)
	storeBlock8(v1, data, 8)
	storeBlock8(v2, data, 16)
	storeBlock8(v3, data, 24)
}

// BaseBlockN runs p phases of an n-element block (n = 4, 8, 16 or 32) over
// data, which holds the first len(data) <= n elements of the block.
func BaseBlockN[T hwy.Lanes](p, n int, data []T) {
	switch n {
	case 4:
		storeBlock8(BaseBlock4(p, loadBlock8(data, 0)), data, 0)
	case 8:
		storeBlock8(BaseBlock8(p, loadBlock8(data, 0)), data, 0)
	case 16:
		v0, v1 := BaseBlock16(p, loadBlock8(data, 0), loadBlock8(data, 8))
		storeBlock8(v0, data, 0)
		storeBlock8(v1, data, 8)
	case 32:
		v0, v1, v2, v3 := BaseBlock32(p,
			loadBlock8(data, 0), loadBlock8(data, 8), loadBlock8(data, 16), loadBlock8(data, 24))
		storeBlock8(v0, data, 0)
		storeBlock8(v1, data, 8)
		storeBlock8(v2, data, 16)
		storeBlock8(v3, data, 24)
	default:
		panic("sortnet: inlined block size must be 4, 8, 16 or 32")
	}
}
