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

// Package matrix describes which fixed-width unsigned types are paired with
// the platform size type for each supported pointer width.
//
// The table returned by [Matrix] is the single description of the
// width-selection matrix: cmd/sizeconvgen renders the build-constrained
// conversion files of package sizeconv from it, and [Platform] emulates any
// of its branches at run time so that widths with no Go port (8, 16 and
// 128 bits) can still be checked.
package matrix

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// Width is a bit width of a pointer or of a fixed-width unsigned integer.
type Width uint8

// Supported widths.
const (
	W8   Width = 8
	W16  Width = 16
	W32  Width = 32
	W64  Width = 64
	W128 Width = 128
)

// widths is ordered widest first, which is also the order peers are
// registered in.
var widths = []Width{W128, W64, W32, W16, W8}

var (
	// ErrUnsupportedWidth is returned for a width outside 8/16/32/64/128.
	ErrUnsupportedWidth = errors.New("unsupported width")
	// ErrDuplicatePair is returned when a branch registers a pair twice.
	ErrDuplicatePair = errors.New("duplicate conversion pair")
	// ErrWiderPeer is returned when a branch pairs the size type with a
	// type wider than the pointer.
	ErrWiderPeer = errors.New("peer wider than pointer")
	// ErrMissingPeer is returned when a branch omits a width it must carry.
	ErrMissingPeer = errors.New("missing peer")
	// ErrDuplicateBranch is returned when two branches share a pointer width.
	ErrDuplicateBranch = errors.New("duplicate branch")
	// ErrUnregisteredPair is returned by Platform.Convert for a pair the
	// platform's branch does not register.
	ErrUnregisteredPair = errors.New("unregistered conversion pair")
)

// Widths returns the supported widths, widest first.
func Widths() []Width {
	return slices.Clone(widths)
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	return slices.Contains(widths, w)
}

// TypeName returns the name of the fixed-width unsigned type of width w,
// e.g. "uint32".
func (w Width) TypeName() string {
	return "uint" + strconv.Itoa(int(w))
}

func (w Width) String() string {
	return strconv.Itoa(int(w)) + "-bit"
}

// Type is either the size type or a fixed-width unsigned type.
type Type struct {
	Size  bool
	Width Width // zero for the size type
}

// SizeType is the platform size type.
var SizeType = Type{Size: true}

// FixedType returns the fixed-width unsigned type of width w.
func FixedType(w Width) Type {
	return Type{Width: w}
}

func (t Type) String() string {
	if t.Size {
		return "size"
	}
	return t.Width.TypeName()
}

// Pair is an ordered (source, target) combination with a forward conversion.
type Pair struct {
	Source Type
	Target Type
}

func (p Pair) String() string {
	return p.Source.String() + " -> " + p.Target.String()
}

// Branch is one row of the width-selection matrix: the fixed-width types
// paired, in both directions, with a size type of width Pointer.
type Branch struct {
	Pointer Width
	Peers   []Width
}

// Pairs returns every pair the branch registers, widest peer first, with
// size -> peer before peer -> size.
func (b Branch) Pairs() []Pair {
	pairs := make([]Pair, 0, 2*len(b.Peers))
	for _, w := range b.Peers {
		pairs = append(pairs,
			Pair{Source: SizeType, Target: FixedType(w)},
			Pair{Source: FixedType(w), Target: SizeType},
		)
	}
	return pairs
}

// Has reports whether the branch registers p.
func (b Branch) Has(p Pair) bool {
	return slices.Contains(b.Pairs(), p)
}

var table = []Branch{
	{Pointer: W128, Peers: []Width{W128, W64, W32, W16, W8}},
	{Pointer: W64, Peers: []Width{W64, W32, W16, W8}},
	{Pointer: W32, Peers: []Width{W32, W16, W8}},
	{Pointer: W16, Peers: []Width{W16, W8}},
	{Pointer: W8, Peers: []Width{W8}},
}

// Matrix returns a copy of the width-selection matrix, widest pointer first.
func Matrix() []Branch {
	return lo.Map(table, func(b Branch, _ int) Branch {
		return Branch{Pointer: b.Pointer, Peers: slices.Clone(b.Peers)}
	})
}

// BranchFor returns the branch selected for pointer width w.
func BranchFor(w Width) (Branch, error) {
	for _, b := range table {
		if b.Pointer == w {
			return Branch{Pointer: b.Pointer, Peers: slices.Clone(b.Peers)}, nil
		}
	}
	return Branch{}, fmt.Errorf("matrix: pointer width %d: %w", int(w), ErrUnsupportedWidth)
}

// Validate checks that branches form a partition: every branch has a
// supported pointer width not used by another branch, registers each pair
// once, never pairs the size type with a wider type and omits no supported
// width up to its pointer width.
func Validate(branches []Branch) error {
	pointers := lo.Map(branches, func(b Branch, _ int) Width { return b.Pointer })
	if dups := lo.FindDuplicates(pointers); len(dups) > 0 {
		return fmt.Errorf("matrix: %s: %w", dups[0], ErrDuplicateBranch)
	}
	for _, b := range branches {
		if err := validateBranch(b); err != nil {
			return err
		}
	}
	return nil
}

func validateBranch(b Branch) error {
	if !b.Pointer.Valid() {
		return fmt.Errorf("matrix: pointer width %d: %w", int(b.Pointer), ErrUnsupportedWidth)
	}
	if dups := lo.FindDuplicates(b.Pairs()); len(dups) > 0 {
		return fmt.Errorf("matrix: %s branch: %w: %s", b.Pointer, ErrDuplicatePair, dups[0])
	}
	for _, w := range b.Peers {
		if !w.Valid() {
			return fmt.Errorf("matrix: %s branch: peer width %d: %w", b.Pointer, int(w), ErrUnsupportedWidth)
		}
		if w > b.Pointer {
			return fmt.Errorf("matrix: %s branch: %w: %s", b.Pointer, ErrWiderPeer, w.TypeName())
		}
	}
	for _, w := range widths {
		if w <= b.Pointer && !slices.Contains(b.Peers, w) {
			return fmt.Errorf("matrix: %s branch: %w: %s", b.Pointer, ErrMissingPeer, w.TypeName())
		}
	}
	return nil
}
