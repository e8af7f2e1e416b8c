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

// ShiftClosure extends values by every leftward shift that stays within
// bound, inclusive. Iteration order is outer over values, inner over shift
// ascending from 0 — this order is preserved because downstream combiner
// loops are order-sensitive. Duplicates are not removed.
func ShiftClosure(values []uint64, bound uint64) []uint64 {
	out := make([]uint64, 0, len(values)*2)
	for _, v := range values {
		for shift := uint(0); ; shift++ {
			shifted := v << shift
			if shifted > bound || shifted < v {
				// shifted < v indicates we overflowed uint64 for pathological
				// inputs; the configured table bound (max-bits <= 30) keeps
				// ordinary runs far from this, but the guard keeps the loop finite.
				break
			}
			out = append(out, shifted)
		}
	}
	return out
}

// ExtractFrontier scans cost for every odd index whose recorded cost equals
// layer, in ascending index order.
func ExtractFrontier(cost []uint8, layer uint8) []uint64 {
	var out []uint64
	for i := 1; i < len(cost); i += 2 {
		if cost[i] == layer {
			out = append(out, uint64(i))
		}
	}
	return out
}
