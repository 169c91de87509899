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
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type matrixOptions struct {
	keyType string
	limit   int
	jobs    int
}

// matrixResult is one row of the matrix report.
type matrixResult struct {
	typ     string
	sorter  string
	size    int
	elapsed time.Duration
	err     error
}

func newMatrixCmd(cc *cliContext) *cobra.Command {
	opts := &matrixOptions{}
	cmd := &cobra.Command{
		Use:   "matrix [--type T] [--limit N]",
		Short: "validate every catalog rung at every size it accepts",
		Long: `
	Validates each rung of the catalog at all the sizes it accepts, up to
	--limit, running the jobs concurrently, and prints a table of the results.
	`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(cmd.Context(), cc, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.keyType, "type", "all", "element type: int32, float32 or all")
	f.IntVar(&opts.limit, "limit", 20, "largest size to validate (at most 28)")
	f.IntVar(&opts.jobs, "jobs", runtime.GOMAXPROCS(0), "number of validations to run at once")
	return cmd
}

func runMatrix(ctx context.Context, cc *cliContext, opts *matrixOptions) error {
	types, err := parseTypes(opts.keyType)
	if err != nil {
		return err
	}
	if opts.limit < 1 || opts.limit > sortnet.MaxValidationSize {
		return errors.Newf("--limit %d out of range [1, %d]", opts.limit, sortnet.MaxValidationSize)
	}

	var jobs []func() matrixResult
	for _, typ := range types {
		switch typ {
		case "int32":
			jobs = append(jobs, matrixJobs[int32](typ, opts.limit)...)
		case "float32":
			jobs = append(jobs, matrixJobs[float32](typ, opts.limit)...)
		}
	}

	results := make([]matrixResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.jobs))
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = job()
			cc.logger.Info("validated",
				zap.String("type", results[i].typ),
				zap.Int("size", results[i].size),
				zap.String("sorter", results[i].sorter),
				zap.Duration("elapsed", results[i].elapsed),
				zap.Error(results[i].err))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := renderMatrix(cc, results)
	if failed > 0 {
		return errors.Newf("%d of %d validations failed", failed, len(results))
	}
	return nil
}

// matrixJobs returns one validation job per (rung, size) pair with size up
// to limit.
func matrixJobs[T hwy.Lanes](typ string, limit int) []func() matrixResult {
	var jobs []func() matrixResult
	for _, s := range sortnet.Rungs[T]() {
		if s.MinLength() > limit {
			break
		}
		for size := s.MinLength(); size <= min(s.MaxLength(), limit); size++ {
			jobs = append(jobs, func() matrixResult {
				elapsed, err := validateOne(context.Background(), nil, s, size)
				return matrixResult{typ: typ, sorter: s.String(), size: size, elapsed: elapsed, err: err}
			})
		}
	}
	return jobs
}

// renderMatrix prints results as a table and returns the number of failures.
func renderMatrix(cc *cliContext, results []matrixResult) int {
	t := table.NewWriter()
	t.SetOutputMirror(cc.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Type", "Sorter", "Size", "Patterns", "Result", "Elapsed"})
	failed := 0
	for _, r := range results {
		status := "ok"
		if r.err != nil {
			status = r.err.Error()
			failed++
		}
		t.AppendRow(table.Row{r.typ, r.sorter, r.size, 1 << r.size, status, r.elapsed.Round(time.Microsecond)})
	}
	t.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d failed", failed), ""})
	t.Render()
	return failed
}
