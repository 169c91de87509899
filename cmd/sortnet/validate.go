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
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/ajroetker/go-sortnet/hwy"
	"github.com/ajroetker/go-sortnet/hwy/contrib/sortnet"
	"github.com/ajroetker/go-sortnet/hwy/contrib/workerpool"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type validateOptions struct {
	keyType   string
	sizes     []int
	maxLength int
	parallel  bool
	workers   int
}

func newValidateCmd(cc *cliContext) *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [--type T] [--size N]... [--max M]",
		Short: "prove sorters correct by the zero-one principle",
		Long: `
	Runs every 0/1 input of each requested size through the sorter returned for
	--max (or for the size itself when --max is not given) and checks that the
	output is sorted and has the same number of ones. Without --size, every size
	the sorter accepts up to 28 is validated.
	`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cc, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.keyType, "type", "int32", "element type: int32, float32 or all")
	f.IntSliceVar(&opts.sizes, "size", nil, "input size to validate (repeatable)")
	f.IntVar(&opts.maxLength, "max", 0, "maximum length passed to the catalog")
	f.BoolVar(&opts.parallel, "parallel", false, "split the patterns over a worker pool")
	f.IntVar(&opts.workers, "workers", runtime.GOMAXPROCS(0), "worker count for --parallel")
	return cmd
}

func runValidate(ctx context.Context, cc *cliContext, opts *validateOptions) error {
	types, err := parseTypes(opts.keyType)
	if err != nil {
		return err
	}
	if len(opts.sizes) == 0 && opts.maxLength == 0 {
		return errors.New("at least one of --size or --max is required")
	}

	var pool *workerpool.Pool
	if opts.parallel {
		pool = workerpool.New(opts.workers)
		defer pool.Close()
	}

	for _, typ := range types {
		switch typ {
		case "int32":
			err = validateSizes[int32](ctx, cc, pool, typ, opts)
		case "float32":
			err = validateSizes[float32](ctx, cc, pool, typ, opts)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// sizesFor lists the sizes to validate against s.
func sizesFor[T hwy.Lanes](s *sortnet.Sorter[T], requested []int) []int {
	if len(requested) > 0 {
		return lo.Uniq(requested)
	}
	hi := min(s.MaxLength(), sortnet.MaxValidationSize)
	if hi < s.MinLength() {
		return nil
	}
	return lo.RangeFrom(s.MinLength(), hi-s.MinLength()+1)
}

func validateSizes[T hwy.Lanes](
	ctx context.Context, cc *cliContext, pool *workerpool.Pool, typ string, opts *validateOptions,
) error {
	var fixed *sortnet.Sorter[T]
	if opts.maxLength != 0 {
		s, err := sortnet.New[T](opts.maxLength)
		if err != nil {
			return errors.Wrapf(err, "creating %s sorter", typ)
		}
		fixed = s
	}

	var sizes []int
	if fixed != nil {
		sizes = sizesFor(fixed, opts.sizes)
	} else {
		sizes = lo.Uniq(opts.sizes)
	}
	if len(sizes) == 0 {
		return errors.Newf("%s: no sizes up to %d to validate", typ, sortnet.MaxValidationSize)
	}

	for _, size := range sizes {
		s := fixed
		if s == nil {
			var err error
			if s, err = sortnet.New[T](size); err != nil {
				return errors.Wrapf(err, "creating %s sorter", typ)
			}
		}
		elapsed, err := validateOne(ctx, pool, s, size)
		cc.logger.Info("validated",
			zap.String("type", typ),
			zap.Int("size", size),
			zap.Stringer("sorter", s),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		if err != nil {
			return errors.Wrapf(err, "validating %s at size %d", typ, size)
		}
		fmt.Fprintf(cc.out, "%-7s size %2d  ok  %d patterns  %v\n", typ, size, 1<<size, elapsed.Round(time.Microsecond))
	}
	return nil
}

// validateOne validates s at size, over pool when pool is not nil.
func validateOne[T hwy.Lanes](ctx context.Context, pool *workerpool.Pool, s *sortnet.Sorter[T], size int) (time.Duration, error) {
	start := time.Now()
	var err error
	if pool != nil {
		err = sortnet.ValidateParallel[T](ctx, pool, s, size)
	} else {
		err = sortnet.Validate[T](s, size)
	}
	return time.Since(start), err
}
