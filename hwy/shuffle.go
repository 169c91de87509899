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

// This file provides the lane permutations used by compare-exchange phases.
// These are pure Go (scalar) implementations.

// Lane permutations in the form accepted by TableLookupLanes: lane i of the
// result is lane idx[i] of the input.
var (
	ReverseIndices  = [NumLanes]int32{7, 6, 5, 4, 3, 2, 1, 0}
	Reverse4Indices = [NumLanes]int32{3, 2, 1, 0, 7, 6, 5, 4}
	Reverse2Indices = [NumLanes]int32{1, 0, 3, 2, 5, 4, 7, 6}
)

// Reverse reverses the order of lanes in the vector.
// [0,1,2,3,4,5,6,7] -> [7,6,5,4,3,2,1,0]
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	return TableLookupLanes(v, ReverseIndices)
}

// Reverse2 reverses pairs of lanes.
// [0,1,2,3,4,5,6,7] -> [1,0,3,2,5,4,7,6]
func Reverse2[T Lanes](v Vec[T]) Vec[T] {
	return TableLookupLanes(v, Reverse2Indices)
}

// Reverse4 reverses groups of 4 lanes.
// [0,1,2,3,4,5,6,7] -> [3,2,1,0,7,6,5,4]
func Reverse4[T Lanes](v Vec[T]) Vec[T] {
	return TableLookupLanes(v, Reverse4Indices)
}

// TableLookupLanes performs a lane-level table lookup.
// Each entry of idx specifies which lane from tbl to select; out-of-range
// entries select zero.
func TableLookupLanes[T Lanes](tbl Vec[T], idx [NumLanes]int32) Vec[T] {
	var r Vec[T]
	for i, j := range idx {
		if j >= 0 && j < NumLanes {
			r.data[i] = tbl.data[j]
		}
	}
	return r
}
