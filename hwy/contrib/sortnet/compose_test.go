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
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUpsize(t *testing.T) {
	tests := []struct {
		n, u, log2 int
	}{
		{1, 4, 2},
		{2, 4, 2},
		{4, 4, 2},
		{5, 8, 3},
		{11, 16, 4},
		{33, 64, 6},
		{64, 64, 6},
		{65, 128, 7},
		{1 << 24, 1 << 24, 24},
	}
	for _, tt := range tests {
		u, log2 := upsize(tt.n)
		if u != tt.u || log2 != tt.log2 {
			t.Errorf("upsize(%d) = (%d, %d), want (%d, %d)", tt.n, u, log2, tt.u, tt.log2)
		}
	}
}

func composeInt32(data []int32) {
	composeSort(currentKernels[int32]().phase, data)
}

func TestComposeSortExample(t *testing.T) {
	data := []int32{7, 2, 9, 4, 1, 8, 3, 6, 5, 0, 10}
	composeInt32(data)
	want := []int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("composeSort() mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeSortTrivial(t *testing.T) {
	composeInt32(nil)
	one := []int32{5}
	composeInt32(one)
	if one[0] != 5 {
		t.Errorf("composeSort([5]) = %v", one)
	}
}

func TestComposeSortZeroOne(t *testing.T) {
	// Exhaustive for every length across the first composed block sizes.
	for n := 2; n <= 14; n++ {
		buf := make([]int32, n)
		for pattern := range uint32(1) << n {
			for k := range buf {
				buf[k] = int32(pattern>>uint(k)) & 1
			}
			composeInt32(buf)
			if !IsSorted(buf) {
				t.Fatalf("composeSort(n=%d, pattern=%#x) = %v", n, pattern, buf)
			}
		}
	}
}

func TestComposeSortRandomLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	lengths := []int{33, 63, 64, 65, 100, 127, 128, 129, 255, 256, 257, 1000, 1023, 1024, 1025, 4096}
	for range 100 {
		lengths = append(lengths, 1+rng.Intn(4096))
	}
	for _, n := range lengths {
		data := make([]int32, n)
		for i := range data {
			data[i] = rng.Int31n(int32(n)) - int32(n/2)
		}
		want := slices.Clone(data)
		slices.Sort(want)

		composeInt32(data)
		if !slices.Equal(data, want) {
			t.Fatalf("composeSort(n=%d) differs from slices.Sort", n)
		}
	}
}

func TestComposeSortFloat32(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	k := currentKernels[float32]().phase
	for _, n := range []int{40, 77, 513, 3000} {
		data := make([]float32, n)
		for i := range data {
			data[i] = float32(rng.NormFloat64())
		}
		data[0] = float32(math.Inf(-1))
		data[n/2] = float32(math.Inf(1))
		want := slices.Clone(data)
		slices.Sort(want)

		composeSort(k, data)
		if !slices.Equal(data, want) {
			t.Fatalf("composeSort(float32, n=%d) differs from slices.Sort", n)
		}
	}
}

func TestComposeSortLarge(t *testing.T) {
	n := 1 << 16
	if testing.Short() {
		n = 1 << 12
	}
	rng := rand.New(rand.NewSource(16))
	data := make([]int32, n)
	for i := range data {
		data[i] = rng.Int31()
	}
	want := slices.Clone(data)
	slices.Sort(want)

	composeInt32(data)
	if !slices.Equal(data, want) {
		t.Fatal("composeSort(2^16) differs from slices.Sort")
	}
}

func TestComposeSortMatchesBase(t *testing.T) {
	// The dispatched kernels and the portable ones give the same result.
	base := phaseKernels[int32]{block: BaseBlockN[int32], flip: BaseFlip[int32]}
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{5, 31, 90, 777} {
		a := make([]int32, n)
		for i := range a {
			a[i] = rng.Int31n(100)
		}
		b := slices.Clone(a)
		composeSort(base, a)
		composeInt32(b)
		if !slices.Equal(a, b) {
			t.Fatalf("n=%d: base %v != dispatched %v", n, a, b)
		}
	}
}

func TestComposeSortLeavesTailAlone(t *testing.T) {
	backing := make([]int32, 200)
	for i := range backing {
		backing[i] = int32(-i)
	}
	composeInt32(backing[:77])
	for i := 77; i < len(backing); i++ {
		if backing[i] != int32(-i) {
			t.Fatalf("composeSort wrote index %d past count 77", i)
		}
	}
	if !IsSorted(backing[:77]) {
		t.Error("prefix not sorted")
	}
}
