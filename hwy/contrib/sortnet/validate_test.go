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
	"context"
	"fmt"
	"slices"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortnet/hwy"
	"github.com/ajroetker/go-sortnet/hwy/contrib/workerpool"
)

// fakeNetwork adapts a slice function to Network.
type fakeNetwork[T hwy.Lanes] struct {
	lo, hi int
	fn     func([]T)
}

func (f fakeNetwork[T]) MinLength() int { return f.lo }
func (f fakeNetwork[T]) MaxLength() int { return f.hi }
func (f fakeNetwork[T]) SortUnchecked(p *T, count int) {
	f.fn(unsafe.Slice(p, count))
}

// truncatedSort8 omits the last block of the 8-element schedule.
func truncatedSort8(data []int32) {
	v := loadBlock8(data, 0)
	v = BaseBlock8(2, v)
	v = BaseBlock8(3, v)
	storeBlock8(v, data, 0)
}

func TestValidateInlinedRungs(t *testing.T) {
	maxSize := 20
	if testing.Short() {
		maxSize = 17
	}
	for _, s := range Rungs[int32]()[:numInlinedRungs] {
		for size := s.MinLength(); size <= min(s.MaxLength(), maxSize); size++ {
			require.NoError(t, Validate[int32](s, size), "int32 %v size %d", s, size)
		}
	}
	for _, s := range Rungs[float32]()[:numInlinedRungs] {
		for size := s.MinLength(); size <= min(s.MaxLength(), 17); size++ {
			require.NoError(t, Validate[float32](s, size), "float32 %v size %d", s, size)
		}
	}
}

func TestValidateRangeErrors(t *testing.T) {
	s16, err := NewInt32(16)
	require.NoError(t, err)
	big, err := NewInt32(64)
	require.NoError(t, err)

	tests := []struct {
		name     string
		net      Network[int32]
		size     int
		min, max int
	}{
		{"zero", s16, 0, 1, MaxValidationSize},
		{"too large", s16, 29, 1, MaxValidationSize},
		{"below rung", s16, 8, 9, 16},
		{"above rung", s16, 17, 9, 16},
		// The smallest composed rung starts above the enumeration limit.
		{"composed", big, 28, 33, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate[int32](tt.net, tt.size)
			require.True(t, errors.Is(err, ErrRange), "Validate() = %v", err)
			var re *RangeError
			require.True(t, errors.As(err, &re))
			require.Equal(t, RangeError{Param: "size", Value: tt.size, Min: tt.min, Max: tt.max}, *re)
		})
	}
}

func TestValidateDetectsUnsorted(t *testing.T) {
	// The identity network already fails on pattern 1: [1 0 0 ...].
	identity := fakeNetwork[int32]{lo: 1, hi: 8, fn: func([]int32) {}}
	err := Validate[int32](identity, 6)
	require.True(t, errors.Is(err, ErrValidation), "Validate() = %v", err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, ValidationError{Size: 6, Pattern: 1, Reason: ReasonNotSorted}, *ve)
	require.Equal(t, "sortnet: sorting failed for bit pattern 00000001 (size 6)", ve.Error())
}

func TestValidateDetectsTruncatedSchedule(t *testing.T) {
	err := Validate[int32](fakeNetwork[int32]{lo: 5, hi: 8, fn: truncatedSort8}, 8)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "Validate() = %v", err)
	require.Equal(t, ReasonNotSorted, ve.Reason)

	// The reported pattern really is one the network mis-sorts.
	buf := make([]int32, 8)
	for k := range buf {
		buf[k] = int32(ve.Pattern>>uint(k)) & 1
	}
	truncatedSort8(buf)
	require.False(t, IsSorted(buf))
}

func TestValidateDetectsLostElements(t *testing.T) {
	// Sorts, then clears element 0: sorted output, wrong number of ones.
	lossy := fakeNetwork[float32]{lo: 1, hi: 8, fn: func(d []float32) {
		slices.Sort(d)
		d[0] = 0
	}}
	err := Validate[float32](lossy, 8)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "Validate() = %v", err)
	// Pattern 0xFF sorts to all ones; clearing one leaves [0 1 1 ...],
	// still sorted but with seven ones.
	require.Equal(t, ValidationError{Size: 8, Pattern: 0xFF, Reason: ReasonNotPermutation}, *ve)
	require.Equal(t, "sortnet: result is not a permutation for bit pattern 000000FF (size 8)", ve.Error())
}

func TestValidateDetectsForeignValues(t *testing.T) {
	leaky := fakeNetwork[int32]{lo: 1, hi: 8, fn: func(d []int32) {
		slices.Sort(d)
		d[len(d)-1] = 2
	}}
	err := Validate[int32](leaky, 3)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "Validate() = %v", err)
	require.Equal(t, ValidationError{Size: 3, Pattern: 0, Reason: ReasonNotPermutation}, *ve)
}

// lateFailure sorts correctly except when the first and last elements are
// both one, so the smallest failing pattern is 1 | 1<<(size-1).
func lateFailure(d []int32) {
	corrupt := d[0] == 1 && d[len(d)-1] == 1
	slices.Sort(d)
	if corrupt {
		d[0], d[len(d)-1] = d[len(d)-1], d[0]
	}
}

func TestValidateParallelMatchesSequential(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()
	ctx := context.Background()

	for _, size := range []int{3, 12, 16} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			net := fakeNetwork[int32]{lo: 1, hi: 16, fn: lateFailure}
			seq := Validate[int32](net, size)
			par := ValidateParallel[int32](ctx, pool, net, size)

			var sv, pv *ValidationError
			require.True(t, errors.As(seq, &sv), "Validate() = %v", seq)
			require.True(t, errors.As(par, &pv), "ValidateParallel() = %v", par)
			require.Equal(t, uint32(1|1<<(size-1)), sv.Pattern)
			require.Equal(t, *sv, *pv)
		})
	}

	s, err := NewInt32(16)
	require.NoError(t, err)
	require.NoError(t, ValidateParallel[int32](ctx, pool, s, 16))
}

func TestValidateParallelCancelled(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := NewInt32(32)
	require.NoError(t, err)
	err = ValidateParallel[int32](ctx, pool, s, 24)
	require.ErrorIs(t, err, context.Canceled)
}

func TestValidateParallelRangeError(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	s, err := NewInt32(8)
	require.NoError(t, err)
	err = ValidateParallel[int32](context.Background(), pool, s, 9)
	require.True(t, errors.Is(err, ErrRange))
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		data []int32
		want bool
	}{
		{nil, true},
		{[]int32{1}, true},
		{[]int32{1, 1, 2}, true},
		{[]int32{2, 1}, false},
		{[]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, true},
		{[]int32{1, 2, 3, 4, 5, 6, 7, 8, 0, 10, 11, 12}, false},
		{[]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 11}, false},
	}
	for _, tt := range tests {
		if got := IsSorted(tt.data); got != tt.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
}
