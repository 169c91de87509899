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

package sortnet

import (
	"math"
	"simd/archsimd"

	"github.com/ajroetker/go-sortnet/hwy"
)

// AVX2 kernels on archsimd registers. The network is the same as in
// block_base.go. Lane permutations have no archsimd form, so they go through
// an array using the hwy index tables; Block-4 runs both of its phases on a
// single array copy of the register.

// lanesLo128 selects the low member of each pair of Block-8 phase 1. Built in
// init (z_sortnet_amd64.go) once AVX2 is known to be available.
var lanesLo128 archsimd.Mask32x8

var inf32 = float32(math.Inf(1))

func initAVX2Masks() {
	lanesLo128 = archsimd.Mask32x8FromBits(hwy.AlternatingMaskLo128.Bits())
}

// ============================================================================
// int32 kernels
// ============================================================================

// reverseI32 reverses the lanes of v.
// [0,1,2,3,4,5,6,7] -> [7,6,5,4,3,2,1,0]
func reverseI32(v archsimd.Int32x8) archsimd.Int32x8 {
	var src, dst [hwy.NumLanes]int32
	v.StoreSlice(src[:])
	for i, j := range hwy.ReverseIndices {
		dst[i] = src[j]
	}
	return archsimd.LoadInt32x8Slice(dst[:])
}

func minMaxI32(a, b archsimd.Int32x8) (archsimd.Int32x8, archsimd.Int32x8) {
	gt := a.Greater(b)
	return b.Merge(a, gt), a.Merge(b, gt)
}

// exchangeI32 keeps min(v, r) in the lanes of low and max(v, r) elsewhere.
func exchangeI32(v, r archsimd.Int32x8, low archsimd.Mask32x8) archsimd.Int32x8 {
	lo, hi := minMaxI32(v, r)
	return lo.Merge(hi, low)
}

func block4I32(p int, v archsimd.Int32x8) archsimd.Int32x8 {
	var lanes [hwy.NumLanes]int32
	v.StoreSlice(lanes[:])
	block4Lanes(p, &lanes)
	return archsimd.LoadInt32x8Slice(lanes[:])
}

func block8I32(p int, v archsimd.Int32x8) archsimd.Int32x8 {
	v = exchangeI32(v, reverseI32(v), lanesLo128)
	if p == 1 {
		return v
	}
	return block4I32(p-1, v)
}

func flip16I32(v0, v1 archsimd.Int32x8) (archsimd.Int32x8, archsimd.Int32x8) {
	lo, hi := minMaxI32(v0, reverseI32(v1))
	return lo, reverseI32(hi)
}

func block16I32(p int, v0, v1 archsimd.Int32x8) (archsimd.Int32x8, archsimd.Int32x8) {
	v0, v1 = flip16I32(v0, v1)
	if p == 1 {
		return v0, v1
	}
	return block8I32(p-1, v0), block8I32(p-1, v1)
}

func block32I32(p int, v0, v1, v2, v3 archsimd.Int32x8) (archsimd.Int32x8, archsimd.Int32x8, archsimd.Int32x8, archsimd.Int32x8) {
	v0, v3 = flip16I32(v0, v3)
	v1, v2 = flip16I32(v1, v2)
	if p == 1 {
		return v0, v1, v2, v3
	}
	v0, v1 = block16I32(p-1, v0, v1)
	v2, v3 = block16I32(p-1, v2, v3)
	return v0, v1, v2, v3
}

// loadI32 loads the register at data[off:], padding with math.MaxInt32.
func loadI32(data []int32, off int) archsimd.Int32x8 {
	if off+8 <= len(data) {
		return archsimd.LoadInt32x8Slice(data[off:])
	}
	buf := [8]int32{math.MaxInt32, math.MaxInt32, math.MaxInt32, math.MaxInt32, math.MaxInt32, math.MaxInt32, math.MaxInt32, math.MaxInt32}
	if off < len(data) {
		copy(buf[:], data[off:])
	}
	return archsimd.LoadInt32x8Slice(buf[:])
}

// storeI32 writes back the lanes of v that lie inside data.
func storeI32(v archsimd.Int32x8, data []int32, off int) {
	if off+8 <= len(data) {
		v.StoreSlice(data[off:])
		return
	}
	if off < len(data) {
		var buf [8]int32
		v.StoreSlice(buf[:])
		copy(data[off:], buf[:])
	}
}

func sort4AVX2I32(data []int32) {
	v := loadI32(data, 0)
	v = block4I32(2, v)
	v = block4I32(2, v)
	storeI32(v, data, 0)
}

func sort8AVX2I32(data []int32) {
	v := loadI32(data, 0)
	v = block8I32(2, v)
	v = block8I32(3, v)
	v = block8I32(3, v)
	storeI32(v, data, 0)
}

func sort16AVX2I32(data []int32) {
	v0, v1 := loadI32(data, 0), loadI32(data, 8)
	v0, v1 = block16I32(2, v0, v1)
	v0, v1 = block16I32(3, v0, v1)
	v0, v1 = block16I32(4, v0, v1)
	v0, v1 = block16I32(4, v0, v1)
	storeI32(v0, data, 0)
	storeI32(v1, data, 8)
}

func sort32AVX2I32(data []int32) {
	v0, v1 := loadI32(data, 0), loadI32(data, 8)
	v2, v3 := loadI32(data, 16), loadI32(data, 24)
	for _, p := range [...]int{2, 3, 4, 5, 5} {
		v0, v1, v2, v3 = block32I32(p, v0, v1, v2, v3)
	}
	storeI32(v0, data, 0)
	storeI32(v1, data, 8)
	storeI32(v2, data, 16)
	storeI32(v3, data, 24)
}

func blockAVX2I32(p, n int, data []int32) {
	switch n {
	case 4:
		storeI32(block4I32(p, loadI32(data, 0)), data, 0)
	case 8:
		storeI32(block8I32(p, loadI32(data, 0)), data, 0)
	case 16:
		v0, v1 := block16I32(p, loadI32(data, 0), loadI32(data, 8))
		storeI32(v0, data, 0)
		storeI32(v1, data, 8)
	case 32:
		v0, v1, v2, v3 := block32I32(p,
			loadI32(data, 0), loadI32(data, 8), loadI32(data, 16), loadI32(data, 24))
		storeI32(v0, data, 0)
		storeI32(v1, data, 8)
		storeI32(v2, data, 16)
		storeI32(v3, data, 24)
	default:
		panic("sortnet: inlined block size must be 4, 8, 16 or 32")
	}
}

func flipAVX2I32(data []int32, lo, hi int) {
	v0, v1 := flip16I32(archsimd.LoadInt32x8Slice(data[lo:]), loadI32(data, hi))
	v0.StoreSlice(data[lo:])
	storeI32(v1, data, hi)
}

// ============================================================================
// float32 kernels
// ============================================================================

func reverseF32(v archsimd.Float32x8) archsimd.Float32x8 {
	var src, dst [hwy.NumLanes]float32
	v.StoreSlice(src[:])
	for i, j := range hwy.ReverseIndices {
		dst[i] = src[j]
	}
	return archsimd.LoadFloat32x8Slice(dst[:])
}

func minMaxF32(a, b archsimd.Float32x8) (archsimd.Float32x8, archsimd.Float32x8) {
	return a.Min(b), a.Max(b)
}

// exchangeF32 keeps min(v, r) in the lanes of low and max(v, r) elsewhere.
func exchangeF32(v, r archsimd.Float32x8, low archsimd.Mask32x8) archsimd.Float32x8 {
	lo, hi := minMaxF32(v, r)
	return lo.Merge(hi, low)
}

func block4F32(p int, v archsimd.Float32x8) archsimd.Float32x8 {
	var lanes [hwy.NumLanes]float32
	v.StoreSlice(lanes[:])
	block4Lanes(p, &lanes)
	return archsimd.LoadFloat32x8Slice(lanes[:])
}

func block8F32(p int, v archsimd.Float32x8) archsimd.Float32x8 {
	v = exchangeF32(v, reverseF32(v), lanesLo128)
	if p == 1 {
		return v
	}
	return block4F32(p-1, v)
}

func flip16F32(v0, v1 archsimd.Float32x8) (archsimd.Float32x8, archsimd.Float32x8) {
	lo, hi := minMaxF32(v0, reverseF32(v1))
	return lo, reverseF32(hi)
}

func block16F32(p int, v0, v1 archsimd.Float32x8) (archsimd.Float32x8, archsimd.Float32x8) {
	v0, v1 = flip16F32(v0, v1)
	if p == 1 {
		return v0, v1
	}
	return block8F32(p-1, v0), block8F32(p-1, v1)
}

func block32F32(p int, v0, v1, v2, v3 archsimd.Float32x8) (archsimd.Float32x8, archsimd.Float32x8, archsimd.Float32x8, archsimd.Float32x8) {
	v0, v3 = flip16F32(v0, v3)
	v1, v2 = flip16F32(v1, v2)
	if p == 1 {
		return v0, v1, v2, v3
	}
	v0, v1 = block16F32(p-1, v0, v1)
	v2, v3 = block16F32(p-1, v2, v3)
	return v0, v1, v2, v3
}

// loadF32 loads the register at data[off:], padding with +Inf.
func loadF32(data []float32, off int) archsimd.Float32x8 {
	if off+8 <= len(data) {
		return archsimd.LoadFloat32x8Slice(data[off:])
	}
	buf := [8]float32{inf32, inf32, inf32, inf32, inf32, inf32, inf32, inf32}
	if off < len(data) {
		copy(buf[:], data[off:])
	}
	return archsimd.LoadFloat32x8Slice(buf[:])
}

// storeF32 writes back the lanes of v that lie inside data.
func storeF32(v archsimd.Float32x8, data []float32, off int) {
	if off+8 <= len(data) {
		v.StoreSlice(data[off:])
		return
	}
	if off < len(data) {
		var buf [8]float32
		v.StoreSlice(buf[:])
		copy(data[off:], buf[:])
	}
}

func sort4AVX2F32(data []float32) {
	v := loadF32(data, 0)
	v = block4F32(2, v)
	v = block4F32(2, v)
	storeF32(v, data, 0)
}

func sort8AVX2F32(data []float32) {
	v := loadF32(data, 0)
	v = block8F32(2, v)
	v = block8F32(3, v)
	v = block8F32(3, v)
	storeF32(v, data, 0)
}

func sort16AVX2F32(data []float32) {
	v0, v1 := loadF32(data, 0), loadF32(data, 8)
	v0, v1 = block16F32(2, v0, v1)
	v0, v1 = block16F32(3, v0, v1)
	v0, v1 = block16F32(4, v0, v1)
	v0, v1 = block16F32(4, v0, v1)
	storeF32(v0, data, 0)
	storeF32(v1, data, 8)
}

func sort32AVX2F32(data []float32) {
	v0, v1 := loadF32(data, 0), loadF32(data, 8)
	v2, v3 := loadF32(data, 16), loadF32(data, 24)
	for _, p := range [...]int{2, 3, 4, 5, 5} {
		v0, v1, v2, v3 = block32F32(p, v0, v1, v2, v3)
	}
	storeF32(v0, data, 0)
	storeF32(v1, data, 8)
	storeF32(v2, data, 16)
	storeF32(v3, data, 24)
}

func blockAVX2F32(p, n int, data []float32) {
	switch n {
	case 4:
		storeF32(block4F32(p, loadF32(data, 0)), data, 0)
	case 8:
		storeF32(block8F32(p, loadF32(data, 0)), data, 0)
	case 16:
		v0, v1 := block16F32(p, loadF32(data, 0), loadF32(data, 8))
		storeF32(v0, data, 0)
		storeF32(v1, data, 8)
	case 32:
		v0, v1, v2, v3 := block32F32(p,
			loadF32(data, 0), loadF32(data, 8), loadF32(data, 16), loadF32(data, 24))
		storeF32(v0, data, 0)
		storeF32(v1, data, 8)
		storeF32(v2, data, 16)
		storeF32(v3, data, 24)
	default:
		panic("sortnet: inlined block size must be 4, 8, 16 or 32")
	}
}

func flipAVX2F32(data []float32, lo, hi int) {
	v0, v1 := flip16F32(archsimd.LoadFloat32x8Slice(data[lo:]), loadF32(data, hi))
	v0.StoreSlice(data[lo:])
	storeF32(v1, data, hi)
}
