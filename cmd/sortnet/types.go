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
package main

import (
	"strconv"
	"strings"

	"github.com/ajroetker/go-sortnet/hwy"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// keyTypes are the element types accepted by --type.
var keyTypes = []string{"int32", "float32"}

// parseTypes expands a --type value into the element types to run.
func parseTypes(s string) ([]string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" {
		return keyTypes, nil
	}
	if !lo.Contains(keyTypes, s) {
		return nil, errors.Newf("unknown type %q (want int32, float32 or all)", s)
	}
	return []string{s}, nil
}

func parseInt32(field string) (int32, error) {
	v, err := strconv.ParseInt(field, 10, 32)
	return int32(v), err
}

func parseFloat32(field string) (float32, error) {
	v, err := strconv.ParseFloat(field, 32)
	return float32(v), err
}

// parseKeys parses the whitespace-separated fields of line.
func parseKeys[T hwy.Lanes](line string, parse func(string) (T, error)) ([]T, error) {
	fields := strings.Fields(line)
	keys := make([]T, len(fields))
	for i, f := range fields {
		v, err := parse(f)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", i+1)
		}
		keys[i] = v
	}
	return keys, nil
}

func formatKeys[T hwy.Lanes](keys []T) string {
	return strings.Join(lo.Map(keys, func(v T, _ int) string {
		switch x := any(v).(type) {
		case float32:
			return strconv.FormatFloat(float64(x), 'g', -1, 32)
		case int32:
			return strconv.FormatInt(int64(x), 10)
		}
		return ""
	}), " ")
}
