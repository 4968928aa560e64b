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

package matrix

import "fmt"

// Platform emulates the conversions of one matrix branch, tagged with its
// pointer width at run time. The native package sizeconv only ever compiles
// the branch of the build target; Platform lets every branch be exercised
// on any host.
type Platform struct {
	branch Branch
}

// NewPlatform returns a Platform with a size type of w bits.
func NewPlatform(w Width) (*Platform, error) {
	b, err := BranchFor(w)
	if err != nil {
		return nil, err
	}
	return &Platform{branch: b}, nil
}

// Pointer returns the platform's pointer width.
func (p *Platform) Pointer() Width {
	return p.branch.Pointer
}

// Branch returns the branch the platform registers.
func (p *Platform) Branch() Branch {
	return p.branch
}

// WidthOf returns the bit width of t on this platform.
func (p *Platform) WidthOf(t Type) Width {
	if t.Size {
		return p.branch.Pointer
	}
	return t.Width
}

// Convert performs the forward conversion for pair on v.
//
// v is first reduced to the source type's range, as a value of that type
// could hold nothing wider. The result keeps the low bits that fit the
// target type; narrowing is never reported as an error.
func (p *Platform) Convert(pair Pair, v Uint128) (Uint128, error) {
	if !p.branch.Has(pair) {
		return Uint128{}, fmt.Errorf("matrix: %s platform: %w: %s", p.branch.Pointer, ErrUnregisteredPair, pair)
	}
	return v.Truncate(p.WidthOf(pair.Source)).Truncate(p.WidthOf(pair.Target)), nil
}
