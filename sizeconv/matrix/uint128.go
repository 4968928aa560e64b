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

import "math/big"

// Uint128 is an unsigned 128-bit value, wide enough to hold a value of any
// type in the matrix.
type Uint128 struct {
	Hi, Lo uint64
}

// From64 returns v as a Uint128.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Max returns the largest value representable in w bits.
func Max(w Width) Uint128 {
	return Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}.Truncate(w)
}

// Truncate keeps the low w bits of u and clears the rest.
func (u Uint128) Truncate(w Width) Uint128 {
	switch {
	case w >= 128:
		return u
	case w > 64:
		return Uint128{Hi: u.Hi & (1<<(w-64) - 1), Lo: u.Lo}
	case w == 64:
		return Uint128{Lo: u.Lo}
	default:
		return Uint128{Lo: u.Lo & (1<<w - 1)}
	}
}

// Fits reports whether u is representable in w bits.
func (u Uint128) Fits(w Width) bool {
	return u.Truncate(w) == u
}

// Lsh returns u << n.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Add returns u + v, wrapping at 128 bits.
func (u Uint128) Add(v Uint128) Uint128 {
	lo := u.Lo + v.Lo
	carry := uint64(0)
	if lo < u.Lo {
		carry = 1
	}
	return Uint128{Hi: u.Hi + v.Hi + carry, Lo: lo}
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.Big().String()
}
