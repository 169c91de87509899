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

package hwy

import "github.com/klauspost/cpuid/v2"

// CPUInfo describes the host processor and the dispatch decision taken for it.
type CPUInfo struct {
	Brand         string
	Vendor        string
	PhysicalCores int
	LogicalCores  int
	// Features lists the SIMD-relevant features the CPU reports.
	Features []string
	// Level is the dispatch level selected at init.
	Level DispatchLevel
	// AVX2Kernels reports whether the AVX2 sorting kernels can run on this CPU.
	AVX2Kernels bool
}

// simdFeatures are the feature flags relevant to 32-bit key networks.
var simdFeatures = []cpuid.FeatureID{
	cpuid.SSE2, cpuid.SSE4, cpuid.AVX, cpuid.AVX2,
	cpuid.AVX512F, cpuid.AVX512DQ, cpuid.AVX512VL,
	cpuid.ASIMD, cpuid.SVE,
}

// DetectCPU returns a report of the host CPU.
func DetectCPU() CPUInfo {
	info := CPUInfo{
		Brand:         cpuid.CPU.BrandName,
		Vendor:        cpuid.CPU.VendorString,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		Level:         currentLevel,
		AVX2Kernels:   cpuid.CPU.Supports(cpuid.AVX2) && currentLevel >= DispatchAVX2 && currentLevel <= DispatchAVX512,
	}
	for _, f := range simdFeatures {
		if cpuid.CPU.Supports(f) {
			info.Features = append(info.Features, f.String())
		}
	}
	return info
}
