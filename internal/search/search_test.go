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
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestOddKernel(t *testing.T) {
	cases := map[uint64]uint64{
		0:  0,
		1:  1,
		2:  1,
		3:  3,
		4:  1,
		12: 3,
		96: 3,
	}
	for in, want := range cases {
		assert.Equal(t, want, OddKernel(in), "OddKernel(%d)", in)
	}
}

func TestShiftClosure(t *testing.T) {
	out := ShiftClosure([]uint64{1}, 8)
	assert.Equal(t, []uint64{1, 2, 4, 8}, out)
}

func TestArity(t *testing.T) {
	assert.Equal(t, 2, Arity(TagAdder))
	assert.Equal(t, 2, Arity(TagSubtractor))
	assert.Equal(t, 2, Arity(TagCascade))
	assert.Equal(t, 4, Arity(TagLeapfrog4_1))
	assert.Equal(t, 5, Arity(TagLeapfrog5_1))
	assert.Equal(t, 7, Arity(TagLeapfrog7_1))
	assert.Equal(t, 0, Arity(Tag(MaxTag+1)))
}

func TestRunSmallBound(t *testing.T) {
	log := discardLogger()
	result := Run(8, 2, log)

	require.NotNil(t, result.Table)
	tab := result.Table

	assert.Equal(t, uint8(0), tab.Cost[1])
	assert.Equal(t, uint8(1), tab.Cost[3], "3 = 1 + (1<<1)")
	assert.Equal(t, uint8(1), tab.Cost[5], "5 = 1 + (1<<2)")
	assert.LessOrEqual(t, tab.Cost[45], uint8(3), "45 = 5*9")
	assert.Equal(t, tab.Cost[5], tab.Cost[OddKernel(20)], "20 = 5 * 4, same odd kernel")

	require.NotEmpty(t, tab.Graphs[3])
	found := false
	for _, g := range tab.Graphs[3] {
		if g.Tag == TagAdder {
			found = true
		}
	}
	assert.True(t, found, "expected an Adder realization of 3")
}

func TestRunLayerGating(t *testing.T) {
	log := discardLogger()

	below := Run(10, 2, log)
	assert.Equal(t, 4, below.LayersRun, "max_bits <= 12 stops after layer 4")

	mid := Run(16, 2, log)
	assert.Equal(t, 5, mid.LayersRun, "max_bits > 12 runs layer 5")
}

func TestTableRelaxAccumulatesWithinLayer(t *testing.T) {
	tab := NewTable(16)
	tab.relax(9, 2, Graph{Tag: TagCascade, Params: []uint64{1, 9}})
	require.Len(t, tab.Graphs[9], 1)
	assert.Equal(t, uint8(2), tab.Cost[9])

	tab.relax(9, 2, Graph{Tag: TagAdder, Params: []uint64{1, 8}})
	assert.Len(t, tab.Graphs[9], 2, "a second realization at the same cost accumulates")

	tab.relax(9, 3, Graph{Tag: TagSubtractor, Params: []uint64{16, 7}})
	assert.Len(t, tab.Graphs[9], 2, "a later, strictly worse layer must not touch an already-settled entry")
	assert.Equal(t, uint8(2), tab.Cost[9])
}

func TestAddSubCanonicalizesParameters(t *testing.T) {
	tab := NewTable(32)
	log := discardLogger()
	AddSub(tab, []uint64{8}, []uint64{1}, 1, log)
	require.NotEmpty(t, tab.Graphs[9])
	assert.Equal(t, []uint64{1, 8}, tab.Graphs[9][0].Params)
}
