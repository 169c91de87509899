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
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-sortnet/hwy"
)

// Kind tells how a Sorter's network is executed.
type Kind int

const (
	// KindInlined networks run entirely in registers (up to 32 elements).
	KindInlined Kind = iota
	// KindComposed networks are driven over memory by the composer.
	KindComposed
)

func (k Kind) String() string {
	switch k {
	case KindInlined:
		return "inlined"
	case KindComposed:
		return "composed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sorter sorts arrays whose length lies in [MinLength, MaxLength].
// Sorters are immutable and safe for concurrent use.
type Sorter[T hwy.Lanes] struct {
	minLength int
	maxLength int
	kind      Kind
	kernel    string
	sort      func(data []T)
}

// MinLength is the smallest length the sorter is guaranteed to sort.
func (s *Sorter[T]) MinLength() int { return s.minLength }

// MaxLength is the network's block size, the largest length it sorts.
func (s *Sorter[T]) MaxLength() int { return s.maxLength }

// Kind reports whether the network is inlined or composed.
func (s *Sorter[T]) Kind() Kind { return s.kind }

// Kernel is the name of the kernel set the sorter was bound to.
func (s *Sorter[T]) Kernel() string { return s.kernel }

// Sort sorts data in place in ascending order. It returns a *RangeError,
// without touching data, if len(data) is outside [MinLength, MaxLength].
func (s *Sorter[T]) Sort(data []T) error {
	if n := len(data); n < s.minLength || n > s.maxLength {
		return newRangeError("length", n, s.minLength, s.maxLength)
	}
	s.sort(data)
	return nil
}

// SortUnchecked sorts the count elements starting at p in place.
//
// Lengths are not checked: for count outside [MinLength, MaxLength], or
// fewer than count addressable elements at p, the result is undefined.
func (s *Sorter[T]) SortUnchecked(p *T, count int) {
	s.sort(unsafe.Slice(p, count))
}

func (s *Sorter[T]) String() string {
	var zero T
	return fmt.Sprintf("%T[%d,%d] %s/%s", zero, s.minLength, s.maxLength, s.kind, s.kernel)
}
