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

// Package hwy provides the fixed-width register layer used by the sorting
// networks: an 8-lane vector of 32-bit keys, lane masks, and the loads,
// comparisons, blends and permutations a compare-exchange phase is made of.
//
// It follows the Highway C++ library's design philosophy: kernels are written
// once against Vec and Mask, and architecture-specific packages may replace
// whole kernels with native SIMD versions selected at init time.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-sortnet/hwy"
//
//	v := hwy.Load(data)          // 8 lanes
//	r := hwy.Reverse(v)          // 7,6,...,0
//	lo, hi := hwy.Min(v, r), hwy.Max(v, r)
//	hwy.Store(hwy.IfThenElse(hwy.AlternatingMaskLo128, lo, hi), data)
//
// All operations work on values: a Vec is an array, never a slice, so no
// operation in this package allocates.
package hwy

// NumLanes is the number of lanes in a Vec: one 256-bit register of 32-bit keys.
const NumLanes = 8

// Floats is a constraint for the floating-point key type.
type Floats interface {
	float32
}

// SignedInts is a constraint for the integer key type.
type SignedInts interface {
	int32
}

// Lanes is the closed set of key types a Vec can hold. Kernels are selected
// with a type switch on T, so only the exact types are accepted.
type Lanes interface {
	Floats | SignedInts
}

// Vec is a register of NumLanes keys.
//
// Vec instances should not be created directly; use Load, MaskLoad or Set.
type Vec[T Lanes] struct {
	data [NumLanes]T
}

// Data returns a copy of the lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() [NumLanes]T {
	return v.data
}

// Mask selects lanes of a Vec: bit i is set if lane i is active.
//
// Every Lanes type is 32 bits wide, so one Mask constant serves both int32
// and float32 registers.
type Mask uint8

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask) AnyTrue() bool {
	return m != 0
}

// Bits returns the mask as an integer, lane 0 in bit 0.
func (m Mask) Bits() uint8 {
	return uint8(m)
}
