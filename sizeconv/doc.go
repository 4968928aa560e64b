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

// Package sizeconv converts between the platform size type and fixed-width
// unsigned integers.
//
// The conversions available depend on the pointer width of the build
// target. On a 64-bit target Size is paired, in both directions, with
// uint64, uint32, uint16 and uint8; on a 32-bit target with uint32, uint16
// and uint8. Using a pair the target does not register is a compile error:
//
//	lo := sizeconv.FromSize[uint32](n) // low 32 bits of n
//	w := sizeconv.FromSize[uint64](n)  // does not build for GOARCH=386
//
// Narrowing conversions truncate to the low-order bits of the target type
// and never fail.
//
// Two capabilities mirror each other. [From] is implemented by the target
// side of a pair ([FixedFromSize], [SizeFromFixed]); [Into] is implemented
// only by [Reverse], which derives it from a From. The per-width files
// z_sizeconv_*.go are generated from package matrix by cmd/sizeconvgen.
//
// Warning: code that names a fixed-width type wider than 32 bits is not
// portable to 32-bit targets.
package sizeconv

//go:generate go run ../cmd/sizeconvgen -output .
