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

package sizeconv

import (
	"slices"

	"github.com/ajroetker/go-sizeconv/sizeconv/matrix"
)

// Size is the platform size type. It is PointerWidth bits wide.
type Size = uint

// From constructs a T from an S.
type From[S, T any] interface {
	From(v S) T
}

// Into converts an S into a T.
type Into[S, T any] interface {
	Into(v S) T
}

// FixedFromSize is the From instance building a fixed-width F from a Size.
// Bits of the Size above F's width are discarded.
type FixedFromSize[F Fixed] struct{}

func (FixedFromSize[F]) From(v Size) F {
	return F(v)
}

// SizeFromFixed is the From instance building a Size from a fixed-width F.
// F is never wider than Size, so the value is preserved.
type SizeFromFixed[F Fixed] struct{}

func (SizeFromFixed[F]) From(v F) Size {
	return Size(v)
}

// Reverse derives Into from the From instance C. It is the only
// implementation of Into in this package.
type Reverse[S, T any, C From[S, T]] struct{}

func (Reverse[S, T, C]) Into(v S) T {
	var c C
	return c.From(v)
}

// FromSize converts v to F.
func FromSize[F Fixed](v Size) F {
	return FixedFromSize[F]{}.From(v)
}

// FromFixed converts v to Size.
func FromFixed[F Fixed](v F) Size {
	return SizeFromFixed[F]{}.From(v)
}

// IntoFixed converts v into F. It always agrees with FromSize.
func IntoFixed[F Fixed](v Size) F {
	return Reverse[Size, F, FixedFromSize[F]]{}.Into(v)
}

// IntoSize converts v into Size. It always agrees with FromFixed.
func IntoSize[F Fixed](v F) Size {
	return Reverse[F, Size, SizeFromFixed[F]]{}.Into(v)
}

// Active returns the matrix branch compiled into this build. It reports
// false on targets without a branch, where no conversion is available.
func Active() (matrix.Branch, bool) {
	b, err := matrix.BranchFor(PointerWidth)
	return b, err == nil
}

// Registered returns the conversion pairs compiled into this build.
func Registered() []matrix.Pair {
	return slices.Clone(registered)
}
