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
// Command sortnet validates and exercises the sorting networks of
// github.com/ajroetker/go-sortnet/hwy/contrib/sortnet.
//
// Usage:
//
//	sortnet validate --type int32 --size 16
//	sortnet validate --type all --max 32 --parallel
//	sortnet matrix --limit 20
//	sortnet info
//	echo "3 1 2" | sortnet sort --type float32
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliContext carries the state shared by all subcommands.
type cliContext struct {
	verbose bool
	logger  *zap.Logger
	out     io.Writer
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		return cfg.Build()
	}
	return zap.NewProduction()
}

func newRootCmd() (*cobra.Command, *cliContext) {
	cc := &cliContext{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "sortnet",
		Short: "validate and run data-parallel sorting networks",
		Long: `
	sortnet proves the int32 and float32 sorting networks correct by the
	zero-one principle, reports the kernels selected for this CPU, and sorts
	numbers read from the command line or standard input.
	`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cc.verbose)
			if err != nil {
				return err
			}
			cc.logger = logger
			cc.out = cmd.OutOrStdout()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = cc.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&cc.verbose, "verbose", "v", false, "debug logging and detailed errors")

	root.AddCommand(
		newValidateCmd(cc),
		newMatrixCmd(cc),
		newInfoCmd(cc),
		newSortCmd(cc),
	)
	return root, cc
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root, cc := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		if cc.verbose {
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
