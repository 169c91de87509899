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
	"strings"

	"github.com/ajroetker/go-sortnet/hwy"
	"github.com/ajroetker/go-sortnet/hwy/contrib/sortnet"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newInfoCmd(cc *cliContext) *cobra.Command {
	var showRungs bool
	cmd := &cobra.Command{
		Use:          "info",
		Short:        "show the CPU, dispatch level and sorter catalog",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runInfo(cc, showRungs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showRungs, "rungs", false, "list every catalog rung")
	return cmd
}

func runInfo(cc *cliContext, showRungs bool) {
	cpu := hwy.DetectCPU()

	t := table.NewWriter()
	t.SetOutputMirror(cc.out)
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"CPU", cpu.Brand},
		{"Vendor", cpu.Vendor},
		{"Cores", cpu.PhysicalCores},
		{"Threads", cpu.LogicalCores},
		{"Features", strings.Join(cpu.Features, " ")},
		{"Dispatch", hwy.CurrentName()},
		{"Register width", hwy.CurrentWidth()},
		{"AVX2", hwy.HasAVX2()},
		{"AVX-512", hwy.HasAVX512()},
		{"HWY_NO_SIMD", hwy.NoSimdEnv()},
		{"Kernels", sortnet.KernelName()},
		{"Max length", sortnet.MaxSupportedLength},
	})
	t.Render()

	if !showRungs {
		return
	}
	r := table.NewWriter()
	r.SetOutputMirror(cc.out)
	r.SetStyle(table.StyleLight)
	r.AppendHeader(table.Row{"Rung", "Min", "Max", "Kind", "Kernel"})
	for i, s := range sortnet.Rungs[int32]() {
		r.AppendRow(table.Row{i, s.MinLength(), s.MaxLength(), s.Kind(), s.Kernel()})
	}
	r.Render()
}
