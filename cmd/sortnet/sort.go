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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ajroetker/go-sortnet/hwy"
	"github.com/ajroetker/go-sortnet/hwy/contrib/sortnet"
	"github.com/ajroetker/go-sortnet/hwy/contrib/workerpool"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newSortCmd(cc *cliContext) *cobra.Command {
	var keyType string
	cmd := &cobra.Command{
		Use:   "sort [--type T] [numbers...]",
		Short: "sort numbers with the sorting networks",
		Long: `
	Sorts the numbers given as arguments, or else each line of standard input
	as its own array, and prints the results one array per line.
	`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines []string
			if len(args) > 0 {
				lines = []string{strings.Join(args, " ")}
			} else {
				var err error
				if lines, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			switch keyType {
			case "int32":
				return sortLines(cc, lines, parseInt32)
			case "float32":
				return sortLines(cc, lines, parseFloat32)
			}
			return errors.Newf("unknown type %q (want int32 or float32)", keyType)
		},
	}
	cmd.Flags().StringVar(&keyType, "type", "int32", "element type: int32 or float32")
	return cmd
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return lo.Filter(lines, func(l string, _ int) bool {
		return strings.TrimSpace(l) != ""
	}), nil
}

func sortLines[T hwy.Lanes](cc *cliContext, lines []string, parse func(string) (T, error)) error {
	arrays := make([][]T, len(lines))
	for i, line := range lines {
		keys, err := parseKeys(line, parse)
		if err != nil {
			return errors.Wrapf(err, "line %d", i+1)
		}
		arrays[i] = keys
	}

	errs := make([]error, len(arrays))
	pool := workerpool.New(0)
	defer pool.Close()
	pool.ParallelForAtomic(len(arrays), func(i int) {
		errs[i] = sortKeys(arrays[i])
	})
	for i, err := range errs {
		if err != nil {
			return errors.Wrapf(err, "line %d", i+1)
		}
	}

	for _, keys := range arrays {
		fmt.Fprintln(cc.out, formatKeys(keys))
	}
	return nil
}

// sortKeys sorts keys with the smallest sorter that accepts their length.
func sortKeys[T hwy.Lanes](keys []T) error {
	if len(keys) == 0 {
		return nil
	}
	s, err := sortnet.New[T](len(keys))
	if err != nil {
		return err
	}
	return s.Sort(keys)
}
