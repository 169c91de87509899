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

	"github.com/cockroachdb/errors"
)

var (
	// ErrRange marks every *RangeError.
	ErrRange = errors.New("sortnet: value out of range")
	// ErrValidation marks every *ValidationError.
	ErrValidation = errors.New("sortnet: network validation failed")
)

// RangeError reports a length or size argument outside its accepted bounds.
type RangeError struct {
	// Param names the argument: "maxLength", "length" or "size".
	Param string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sortnet: %s %d out of range [%d, %d]", e.Param, e.Value, e.Min, e.Max)
}

func newRangeError(param string, value, lo, hi int) error {
	return errors.Mark(errors.WithStack(&RangeError{Param: param, Value: value, Min: lo, Max: hi}), ErrRange)
}

// Failure reasons carried by ValidationError.
const (
	ReasonNotSorted      = "not sorted"
	ReasonNotPermutation = "not a permutation"
)

// ValidationError reports the first zero-one input a sorter failed on.
type ValidationError struct {
	Size int
	// Pattern is the input: bit k is element k.
	Pattern uint32
	Reason  string
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonNotPermutation:
		return fmt.Sprintf("sortnet: result is not a permutation for bit pattern %08X (size %d)", e.Pattern, e.Size)
	default:
		return fmt.Sprintf("sortnet: sorting failed for bit pattern %08X (size %d)", e.Pattern, e.Size)
	}
}

func newValidationError(size int, pattern uint32, reason string) error {
	return errors.Mark(errors.WithStack(&ValidationError{Size: size, Pattern: pattern, Reason: reason}), ErrValidation)
}
