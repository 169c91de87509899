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

import "math"

// This file provides pure Go (scalar) implementations of the register
// operations. Native kernels (see contrib/sortnet/*_avx2.go) replace whole
// networks built from these, so every operation here must match the lane
// semantics of its archsimd counterpart exactly.

// Load creates a vector from the first NumLanes elements of src.
// If src is shorter, the remaining lanes are zero.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	copy(v.data[:], src)
	return v
}

// Store writes a vector's lanes to dst, truncated to len(dst).
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	for i := range v.data {
		v.data[i] = value
	}
	return v
}

// MaxValue returns the value that sorts after every other key of type T:
// math.MaxInt32 for int32 and +Inf for float32.
func MaxValue[T Lanes]() T {
	var maxVal T
	switch p := any(&maxVal).(type) {
	case *float32:
		*p = float32(math.Inf(1))
	case *int32:
		*p = math.MaxInt32
	}
	return maxVal
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		r.data[i] = min(a.data[i], b.data[i])
	}
	return r
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		r.data[i] = max(a.data[i], b.data[i])
	}
	return r
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask {
	var m Mask
	for i := range a.data {
		if a.data[i] > b.data[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// IfThenElse performs conditional selection: lane i of the result is a[i]
// where mask bit i is set and b[i] otherwise.
func IfThenElse[T Lanes](mask Mask, a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		if mask&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// MaskLoad loads data from a slice only for lanes where the mask is true.
// Inactive lanes, and lanes beyond len(src), are zero. Sorting networks
// blend the inactive lanes with MaxValue so that padding sorts to the end.
func MaskLoad[T Lanes](mask Mask, src []T) Vec[T] {
	var v Vec[T]
	n := min(len(src), NumLanes)
	for i := range n {
		if mask&(1<<uint(i)) != 0 {
			v.data[i] = src[i]
		}
	}
	return v
}

// MaskStore stores vector data to a slice only for lanes where the mask is true.
func MaskStore[T Lanes](mask Mask, v Vec[T], dst []T) {
	n := min(len(dst), NumLanes)
	for i := range n {
		if mask&(1<<uint(i)) != 0 {
			dst[i] = v.data[i]
		}
	}
}
