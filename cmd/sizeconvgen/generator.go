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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-sizeconv/sizeconv/matrix"
)

const (
	defaultMatrixImport = "github.com/ajroetker/go-sizeconv/sizeconv/matrix"
	fallbackFilename    = "z_sizeconv_other.go"
)

var (
	// errNoGoType is returned when a branch pairs the size type with a width
	// Go has no builtin unsigned type for.
	errNoGoType = errors.New("no Go type for width")
	// errStale is returned in check mode when a file on disk differs from
	// what would be generated.
	errStale = errors.New("generated file is stale")
)

// Generator renders the per-width conversion files of package sizeconv.
type Generator struct {
	PackageName  string   // package clause of generated files
	OutputDir    string   // directory files are written to
	MatrixImport string   // import path of package matrix
	Targets      []Target // one per matrix branch
	Check        bool     // compare with files on disk instead of writing
}

// Run validates the matrix and the targets, then writes one file per
// buildable target and the fallback file for every other GOARCH.
func (g *Generator) Run() error {
	if err := matrix.Validate(matrix.Matrix()); err != nil {
		return err
	}
	if err := validateTargets(g.Targets); err != nil {
		return err
	}

	files := make(map[string][]byte)
	var order []string
	for _, t := range g.Targets {
		if !t.Buildable() {
			continue
		}
		src, err := g.renderBranch(t)
		if err != nil {
			return err
		}
		files[t.Filename()] = src
		order = append(order, t.Filename())
	}
	src, err := g.renderFallback()
	if err != nil {
		return err
	}
	files[fallbackFilename] = src
	order = append(order, fallbackFilename)

	for _, name := range order {
		if err := g.emit(name, files[name]); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) emit(name string, src []byte) error {
	filename := filepath.Join(g.OutputDir, name)
	if g.Check {
		have, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("check %s: %w", filename, err)
		}
		if !bytes.Equal(have, src) {
			return fmt.Errorf("%w: %s", errStale, filename)
		}
		fmt.Printf("Up to date: %s\n", filename)
		return nil
	}
	if err := os.WriteFile(filename, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	fmt.Printf("Generated: %s\n", filename)
	return nil
}

// renderBranch renders the conversion file for one target.
func (g *Generator) renderBranch(t Target) ([]byte, error) {
	b, err := matrix.BranchFor(t.Width)
	if err != nil {
		return nil, err
	}
	for _, w := range b.Peers {
		if _, ok := goType(w); !ok {
			return nil, fmt.Errorf("target %s: %w: %d", t.Name, errNoGoType, int(w))
		}
	}
	width := int(t.Width)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by sizeconvgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "//go:build %s\n\n", t.BuildTag())
	fmt.Fprintf(&buf, "package %s\n\n", g.PackageName)
	fmt.Fprintf(&buf, "import (\n\t\"math/bits\"\n\n\tmatrix %q\n)\n\n", g.MatrixImport)

	fmt.Fprintf(&buf, "// PointerWidth is the bit width of Size on %d-bit targets.\n", width)
	fmt.Fprintf(&buf, "const PointerWidth matrix.Width = %d\n\n", width)

	fmt.Fprintf(&buf, "// Size must be exactly %d bits wide for this branch to be selected.\n", width)
	fmt.Fprintf(&buf, "var (\n")
	fmt.Fprintf(&buf, "\t_ [bits.UintSize - %d]struct{}\n", width)
	fmt.Fprintf(&buf, "\t_ [%d - bits.UintSize]struct{}\n", width)
	fmt.Fprintf(&buf, ")\n\n")

	terms := lo.Map(b.Peers, func(w matrix.Width, _ int) string { return "~" + w.TypeName() })
	fmt.Fprintf(&buf, "// Fixed is the set of fixed-width unsigned types paired with Size on\n")
	fmt.Fprintf(&buf, "// %d-bit targets.\n", width)
	fmt.Fprintf(&buf, "type Fixed interface {\n\t%s\n}\n\n", strings.Join(terms, " | "))

	fmt.Fprintf(&buf, "var registered = []matrix.Pair{\n")
	for _, p := range b.Pairs() {
		fmt.Fprintf(&buf, "\t{Source: %s, Target: %s},\n", typeExpr(p.Source), typeExpr(p.Target))
	}
	fmt.Fprintf(&buf, "}\n")

	for _, w := range b.Peers {
		emitPairFuncs(&buf, w, t.Width)
	}

	return formatSource(t.Filename(), buf.Bytes())
}

// emitPairFuncs writes the named conversions between Size and the
// fixed-width type of width w.
func emitPairFuncs(buf *bytes.Buffer, w, pointer matrix.Width) {
	typ, _ := goType(w)
	ident := typeIdent(w)

	fmt.Fprintf(buf, "\n// %sFromSize converts v to %s.", ident, typ)
	if w < pointer {
		fmt.Fprintf(buf, " Bits above the low %d are discarded.", int(w))
	}
	fmt.Fprintf(buf, "\nfunc %sFromSize(v Size) %s { return FixedFromSize[%s]{}.From(v) }\n", ident, typ, typ)

	fmt.Fprintf(buf, "\n// SizeFrom%s converts v to Size.\n", ident)
	fmt.Fprintf(buf, "func SizeFrom%s(v %s) Size { return SizeFromFixed[%s]{}.From(v) }\n", ident, typ, typ)
}

// renderFallback renders the file selected by every GOARCH no target lists.
func (g *Generator) renderFallback() ([]byte, error) {
	all := lo.FlatMap(g.Targets, func(t Target, _ int) []string { return t.Arches })
	if len(all) == 0 {
		return nil, errNoBuildableTarget
	}
	negated := lo.Map(all, func(arch string, _ int) string { return "!" + arch })

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by sizeconvgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "//go:build %s\n\n", strings.Join(negated, " && "))
	fmt.Fprintf(&buf, "package %s\n\n", g.PackageName)
	fmt.Fprintf(&buf, "import matrix %q\n\n", g.MatrixImport)

	fmt.Fprintf(&buf, "// PointerWidth is zero on targets without a branch in the width matrix.\n")
	fmt.Fprintf(&buf, "const PointerWidth matrix.Width = 0\n\n")

	fmt.Fprintf(&buf, "// Fixed has no satisfying types on this target, so no conversion resolves.\n")
	fmt.Fprintf(&buf, "type Fixed interface {\n\t~uint8\n\tunsupportedTarget()\n}\n\n")

	fmt.Fprintf(&buf, "var registered []matrix.Pair\n")

	return formatSource(fallbackFilename, buf.Bytes())
}

// goType returns the Go builtin for a fixed width.
func goType(w matrix.Width) (string, bool) {
	switch w {
	case matrix.W8, matrix.W16, matrix.W32, matrix.W64:
		return w.TypeName(), true
	}
	return "", false
}

// typeIdent converts a width to the identifier used in function names.
// E.g., 32 -> "Uint32"
func typeIdent(w matrix.Width) string {
	return cases.Title(language.English).String(w.TypeName())
}

// typeExpr returns the Go expression for t in package matrix.
func typeExpr(t matrix.Type) string {
	if t.Size {
		return "matrix.SizeType"
	}
	return fmt.Sprintf("matrix.FixedType(matrix.W%d)", int(t.Width))
}

func formatSource(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return out, nil
}
