// Copyright 2026 The Cmult Authors
// This file is part of cmult-go.
//
// cmult-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cmult-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with cmult-go. If not, see <http://www.gnu.org/licenses/>.

package search

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// Leapfrog expressions multiply up to four operands bounded by
// 2^(max_bits+2) each; plain uint64 overflows long before the final
// odd-kernel reduction. widen/absDiffW/oddKernelWide do the arithmetic at
// 256-bit width (holiman/uint256, the same fixed-width integer type the
// teacher uses for EVM word arithmetic) so no intermediate ever wraps within
// the configured bounds.
func widen(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func mulW(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).Mul(a, b)
}

func addW(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).Add(a, b)
}

func absDiffW(a, b *uint256.Int) *uint256.Int {
	if a.Cmp(b) >= 0 {
		return new(uint256.Int).Sub(a, b)
	}
	return new(uint256.Int).Sub(b, a)
}

// oddKernelWide reduces a widened intermediate to its odd part, mirroring
// OddKernel but operating above 64 bits.
func oddKernelWide(n *uint256.Int) *uint256.Int {
	z := n.Clone()
	if z.IsZero() {
		return z
	}
	for z.Uint64() == 0 {
		z.Rsh(z, 64)
	}
	tz := bits.TrailingZeros64(z.Uint64())
	if tz > 0 {
		z.Rsh(z, uint(tz))
	}
	return z
}

// toBoundedU64 returns (value, true) when n fits in a uint64 and is <= bound;
// otherwise (0, false). Every candidate produced by a leapfrog kernel passes
// through this gate before it can touch cost[]/graphs[]; AddSub and Cascade
// work in uint64 and rely on relax's own bound check.
func toBoundedU64(n *uint256.Int, bound uint64) (uint64, bool) {
	if !n.IsUint64() {
		return 0, false
	}
	v := n.Uint64()
	if v == 0 || v > bound {
		return 0, false
	}
	return v, true
}
