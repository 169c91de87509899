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
	"sync"

	"github.com/ajroetker/go-sortnet/hwy"
)

const (
	// MaxSupportedLength is the largest array a Sorter can handle (2^24).
	MaxSupportedLength = 1 << maxLog2

	// MaxInlinedLength is the largest network run entirely in registers.
	MaxInlinedLength = 32

	maxLog2         = 24
	numInlinedRungs = 4
	// Composed rungs cover block sizes 2^6 .. 2^24.
	numRungs = numInlinedRungs + maxLog2 - 5
)

// catalog caches one Sorter per rung of the ladder.
type catalog[T hwy.Lanes] struct {
	once    [numRungs]sync.Once
	sorters [numRungs]*Sorter[T]
}

var (
	int32Catalog   catalog[int32]
	float32Catalog catalog[float32]
)

func catalogFor[T hwy.Lanes]() *catalog[T] {
	switch c := any(&int32Catalog).(type) {
	case *catalog[T]:
		return c
	}
	return any(&float32Catalog).(*catalog[T])
}

// rungIndex maps maxLength (1..MaxSupportedLength) to its rung.
func rungIndex(maxLength int) int {
	if maxLength <= 4 {
		return 0
	}
	// Block size 2^k lands on rung k-2.
	return bits.Len(uint(maxLength-1)) - 2
}

// rungBounds returns the [min, max] lengths of rung i.
func rungBounds(i int) (int, int) {
	if i == 0 {
		return 1, 4
	}
	u := 4 << i
	return u/2 + 1, u
}

func (c *catalog[T]) rung(i int) *Sorter[T] {
	c.once[i].Do(func() {
		c.sorters[i] = newSorter(currentKernels[T](), i)
	})
	return c.sorters[i]
}

// newSorter builds the descriptor for rung i over the kernels ks.
func newSorter[T hwy.Lanes](ks kernelSet[T], i int) *Sorter[T] {
	lo, hi := rungBounds(i)
	s := &Sorter[T]{minLength: lo, maxLength: hi, kernel: ks.name}
	if i < numInlinedRungs {
		s.kind = KindInlined
		s.sort = ks.fixed[i]
	} else {
		s.kind = KindComposed
		phase := ks.phase
		s.sort = func(data []T) { composeSort(phase, data) }
	}
	return s
}

// New returns the sorter for arrays of up to maxLength elements:
//
//	maxLength      MinLength  MaxLength
//	1..4           1          4
//	5..8           5          8
//	9..16          9          16
//	17..32         17         32
//	33..2^24       U/2+1      U (maxLength rounded up to a power of two)
//
// It returns a *RangeError if maxLength is outside [1, MaxSupportedLength].
// Sorters are created once per rung and shared.
func New[T hwy.Lanes](maxLength int) (*Sorter[T], error) {
	if maxLength < 1 || maxLength > MaxSupportedLength {
		return nil, newRangeError("maxLength", maxLength, 1, MaxSupportedLength)
	}
	return catalogFor[T]().rung(rungIndex(maxLength)), nil
}

// NewInt32 is New[int32].
func NewInt32(maxLength int) (*Sorter[int32], error) { return New[int32](maxLength) }

// NewFloat32 is New[float32].
func NewFloat32(maxLength int) (*Sorter[float32], error) { return New[float32](maxLength) }

// Rungs returns every sorter of the ladder for T, smallest first.
func Rungs[T hwy.Lanes]() []*Sorter[T] {
	c := catalogFor[T]()
	out := make([]*Sorter[T], numRungs)
	for i := range out {
		out[i] = c.rung(i)
	}
	return out
}
