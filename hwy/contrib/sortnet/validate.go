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
	"math/bits"

	"github.com/ajroetker/go-sortnet/hwy"
	"github.com/ajroetker/go-sortnet/hwy/contrib/workerpool"
)

// MaxValidationSize is the largest size Validate enumerates (2^28 inputs).
const MaxValidationSize = 28

// validationBatch is the number of patterns a worker claims at a time.
const validationBatch = 1 << 12

// Network is the unchecked sorting contract Validate exercises. *Sorter
// implements it.
type Network[T hwy.Lanes] interface {
	MinLength() int
	MaxLength() int
	SortUnchecked(p *T, count int)
}

// checkValidationSize rejects sizes Validate cannot enumerate or the
// network does not accept.
func checkValidationSize[T hwy.Lanes](n Network[T], size int) error {
	if size < 1 || size > MaxValidationSize {
		return newRangeError("size", size, 1, MaxValidationSize)
	}
	if size < n.MinLength() || size > n.MaxLength() {
		return newRangeError("size", size, n.MinLength(), n.MaxLength())
	}
	return nil
}

// Validate proves that n sorts every input of the given size, by the
// zero-one principle: a comparator network sorts all inputs iff it sorts all
// 2^size inputs made of zeros and ones. Bit k of each pattern is element k.
//
// It returns a *RangeError if size is outside [1, MaxValidationSize] or
// outside the network's bounds, and a *ValidationError for the first
// (smallest) pattern that comes out unsorted or with the wrong number of ones.
func Validate[T hwy.Lanes](n Network[T], size int) error {
	if err := checkValidationSize(n, size); err != nil {
		return err
	}
	return checkPatterns(n, make([]T, size), 0, 1<<size)
}

// ValidateParallel is Validate with the patterns split into batches over
// pool. It reports the same error Validate would, whatever the scheduling,
// and returns ctx.Err() if ctx is done before every batch has run.
func ValidateParallel[T hwy.Lanes](ctx context.Context, pool *workerpool.Pool, n Network[T], size int) error {
	if err := checkValidationSize(n, size); err != nil {
		return err
	}
	return pool.ParallelForBatched(ctx, 1<<size, validationBatch, func(start, end int) error {
		return checkPatterns(n, make([]T, size), start, end)
	})
}

// checkPatterns runs patterns [start, end) through n using buf as scratch.
func checkPatterns[T hwy.Lanes](n Network[T], buf []T, start, end int) error {
	for i := start; i < end; i++ {
		pattern := uint32(i)
		for k := range buf {
			buf[k] = T((pattern >> uint(k)) & 1)
		}
		n.SortUnchecked(&buf[0], len(buf))

		if !IsSorted(buf) {
			return newValidationError(len(buf), pattern, ReasonNotSorted)
		}
		if !isZeroOnePermutation(buf, bits.OnesCount32(pattern)) {
			return newValidationError(len(buf), pattern, ReasonNotPermutation)
		}
	}
	return nil
}

// isZeroOnePermutation reports whether data holds only zeros and ones, with
// exactly ones ones.
func isZeroOnePermutation[T hwy.Lanes](data []T, ones int) bool {
	for _, v := range data {
		switch v {
		case 0:
		case 1:
			ones--
		default:
			return false
		}
	}
	return ones == 0
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T hwy.Lanes](data []T) bool {
	n := len(data)
	i := 0

	// Compare adjacent pairs a register at a time.
	for ; i+hwy.NumLanes < n; i += hwy.NumLanes {
		v1 := hwy.Load(data[i:])
		v2 := hwy.Load(data[i+1:])
		if hwy.GreaterThan(v1, v2).AnyTrue() {
			return false
		}
	}

	// Handle tail
	for ; i < n-1; i++ {
		if data[i] > data[i+1] {
			return false
		}
	}
	return true
}
