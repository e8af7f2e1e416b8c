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

// Package search implements the layered breadth-first adder-cost search:
// the combiner kernels, their pruning predicates, and the GraphType catalog
// they produce.
package search

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Tag identifies one of the 19 GraphType variants. Values are stable and
// match the on-disk artifact schema; never renumber an existing tag.
type Tag uint8

const (
	TagAdder Tag = iota
	TagSubtractor
	TagCascade
	TagLeapfrog4_1
	TagLeapfrog4_2
	TagLeapfrog4_3
	TagLeapfrog4_4
	TagLeapfrog5_1
	TagLeapfrog5_2
	TagLeapfrog5_3
	TagLeapfrog5_4
	TagLeapfrog7_1
	TagLeapfrog7_2
	TagLeapfrog7_3
	TagLeapfrog7_4
	TagLeapfrog7_5
	TagLeapfrog7_6
	TagLeapfrog7_7
	TagLeapfrog7_8
	tagCount
)

// MaxTag is the largest valid tag value; decoders must reject anything past it.
const MaxTag = tagCount - 1

var variantNames = [tagCount]string{
	TagAdder:       "Adder",
	TagSubtractor:  "Subtractor",
	TagCascade:     "Cascade",
	TagLeapfrog4_1: "Leapfrog4_1",
	TagLeapfrog4_2: "Leapfrog4_2",
	TagLeapfrog4_3: "Leapfrog4_3",
	TagLeapfrog4_4: "Leapfrog4_4",
	TagLeapfrog5_1: "Leapfrog5_1",
	TagLeapfrog5_2: "Leapfrog5_2",
	TagLeapfrog5_3: "Leapfrog5_3",
	TagLeapfrog5_4: "Leapfrog5_4",
	TagLeapfrog7_1: "Leapfrog7_1",
	TagLeapfrog7_2: "Leapfrog7_2",
	TagLeapfrog7_3: "Leapfrog7_3",
	TagLeapfrog7_4: "Leapfrog7_4",
	TagLeapfrog7_5: "Leapfrog7_5",
	TagLeapfrog7_6: "Leapfrog7_6",
	TagLeapfrog7_7: "Leapfrog7_7",
	TagLeapfrog7_8: "Leapfrog7_8",
}

var variantArity = [tagCount]int{
	TagAdder:       2,
	TagSubtractor:  2,
	TagCascade:     2,
	TagLeapfrog4_1: 4,
	TagLeapfrog4_2: 4,
	TagLeapfrog4_3: 4,
	TagLeapfrog4_4: 4,
	TagLeapfrog5_1: 5,
	TagLeapfrog5_2: 5,
	TagLeapfrog5_3: 5,
	TagLeapfrog5_4: 5,
	TagLeapfrog7_1: 7,
	TagLeapfrog7_2: 7,
	TagLeapfrog7_3: 7,
	TagLeapfrog7_4: 7,
	TagLeapfrog7_5: 7,
	TagLeapfrog7_6: 7,
	TagLeapfrog7_7: 7,
	TagLeapfrog7_8: 7,
}

// Arity returns the number of parameters a tag carries, or 0 for an unknown
// tag. The consumer's decoder reads exactly this many parameters per tag;
// the generator's encoder writes a Graph's Params as given and does not
// check them against this table.
func Arity(tag Tag) int {
	if tag > MaxTag {
		return 0
	}
	return variantArity[tag]
}

// Name returns the display name of a tag, or "" for an unknown tag.
func Name(tag Tag) string {
	if tag > MaxTag {
		return ""
	}
	return variantNames[tag]
}

// Graph is one realizing expression for an odd integer: a tagged variant
// plus its parameters. Parameters store the shifted operand (value * 2^k)
// rather than a separate shift field.
type Graph struct {
	Tag    Tag
	Params []uint64
}

// String formats a Graph the way the consumer displays it, e.g.
// "Leapfrog4_2(3 << 1, 1, 5, 1 << 2)".
func (g Graph) String() string {
	parts := make([]string, len(g.Params))
	for i, v := range g.Params {
		parts[i] = formatShifted(v)
	}
	return fmt.Sprintf("%s(%s)", Name(g.Tag), strings.Join(parts, ", "))
}

// formatShifted prints v as "v" when it is already odd (or zero), otherwise
// as "odd_part << shift".
func formatShifted(v uint64) string {
	if v == 0 {
		return "0"
	}
	shift := bits.TrailingZeros64(v)
	if shift == 0 {
		return strconv.FormatUint(v, 10)
	}
	return fmt.Sprintf("%d << %d", v>>uint(shift), shift)
}

// OddKernel reduces n to its odd part: n >> trailing_zeros(n). OddKernel(0) == 0.
func OddKernel(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return n >> uint(bits.TrailingZeros64(n))
}
