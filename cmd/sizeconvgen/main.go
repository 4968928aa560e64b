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

// Command sizeconvgen generates the build-constrained conversion files of
// package sizeconv from the width-selection matrix.
//
// Usage:
//
//	sizeconvgen -output ./sizeconv [-package sizeconv] [-arches arches.yaml] [-check]
//
// One file is written per pointer width that some GOARCH builds with,
// plus z_sizeconv_other.go for every GOARCH the targets do not list.
// With -check nothing is written and the command fails if a file on disk
// differs from what it would generate.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	output := flag.String("output", ".", "Output directory")
	pkg := flag.String("package", "sizeconv", "Package name of the generated files")
	matrixImport := flag.String("matrix", defaultMatrixImport, "Import path of the matrix package")
	arches := flag.String("arches", "", "YAML file overriding the GOARCH list of pointer widths")
	check := flag.Bool("check", false, "Fail if generated files are out of date instead of writing them")
	flag.Parse()

	targets := DefaultTargets()
	if *arches != "" {
		var err error
		targets, err = LoadArches(*arches, targets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sizeconvgen: %v\n", err)
			os.Exit(1)
		}
	}

	g := &Generator{
		PackageName:  *pkg,
		OutputDir:    *output,
		MatrixImport: *matrixImport,
		Targets:      targets,
		Check:        *check,
	}
	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "sizeconvgen: %v\n", err)
		os.Exit(1)
	}
}
