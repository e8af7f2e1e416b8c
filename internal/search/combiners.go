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

import "github.com/sirupsen/logrus"

func isEven(v uint64) bool { return v%2 == 0 }

func absDiffU64(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return b - a
}

// AddSub relaxes the table against every (a, b) pair drawn from left x
// rightShifted, with both a+b (Adder) and |a-b| (Subtractor, when nonzero).
// Parameters are canonicalized a<=b for Adder and a>=b for Subtractor.
func AddSub(t *Table, left, rightShifted []uint64, layer uint8, log logrus.FieldLogger) {
	log.WithField("terms1_count", len(left)).
		WithField("terms2_count", len(rightShifted)).
		WithField("cost", layer).
		Debug("addsub: starting")

	for _, a := range left {
		for _, b := range rightShifted {
			sum := OddKernel(a + b)
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			t.relax(sum, layer, Graph{Tag: TagAdder, Params: []uint64{lo, hi}})

			diff := absDiffU64(a, b)
			if diff != 0 {
				diff = OddKernel(diff)
				hi2, lo2 := a, b
				if hi2 < lo2 {
					hi2, lo2 = lo2, hi2
				}
				t.relax(diff, layer, Graph{Tag: TagSubtractor, Params: []uint64{hi2, lo2}})
			}
		}
	}
}

// Cascade relaxes the table against a*b for every (a, b) in terms1 x terms2.
// When sameTerms is set, the iteration space is halved by skipping b < a:
// the product is symmetric, so the full cross product would duplicate work.
func Cascade(t *Table, terms1, terms2 []uint64, layer uint8, sameTerms bool, log logrus.FieldLogger) {
	log.WithField("terms1_count", len(terms1)).
		WithField("terms2_count", len(terms2)).
		WithField("cost", layer).
		WithField("same_terms", sameTerms).
		Debug("cascade: starting")

	for _, a := range terms1 {
		for _, b := range terms2 {
			if sameTerms && b < a {
				continue
			}
			product := OddKernel(a * b)
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			t.relax(product, layer, Graph{Tag: TagCascade, Params: []uint64{lo, hi}})
		}
	}
}
