// Copyright 2026 go-sizeconv Authors
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

// Package main provides a diagnostic tool to print the size conversions
// compiled into this build.
package main

import (
	"fmt"
	"math/bits"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-sizeconv/sizeconv"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("bits.UintSize: %d\n", bits.UintSize)
	fmt.Printf("Byte order: %s\n", byteOrder())
	fmt.Println()

	branch, ok := sizeconv.Active()
	if !ok {
		fmt.Println("No width-matrix branch for this target; no conversions are available.")
		return
	}

	fmt.Printf("sizeconv pointer width: %d bits\n", sizeconv.PointerWidth)
	fmt.Println("Registered pairs:")
	for _, p := range sizeconv.Registered() {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println()

	emulated, err := emulatedSamples(branch.Pointer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sizeinfo: %v\n", err)
		os.Exit(1)
	}
	printSamples("Native conversions", nativeSamples())
	fmt.Println()
	printSamples("Emulated conversions", emulated)
}

func byteOrder() string {
	if cpu.IsBigEndian {
		return "big endian (low-order bits are the trailing bytes)"
	}
	return "little endian (low-order bits are the leading bytes)"
}

func printSamples(title string, samples []sample) {
	fmt.Printf("=== %s ===\n", title)
	for _, s := range samples {
		fmt.Printf("  %-16s %s -> %s\n", s.Pair, s.In, s.Out)
	}
}
