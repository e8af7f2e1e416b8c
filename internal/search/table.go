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

// SentinelCost is the initial value every table entry holds before the
// search reaches it — larger than any cost a 6-layer search can discover.
const SentinelCost uint8 = 7

// Table holds the two arrays the layer driver mutates in place: the dense
// cost table and the per-index graph lists. Both live only for the duration
// of a generator run.
type Table struct {
	Cost     []uint8
	Graphs   [][]Graph
	TableMax uint64
}

// NewTable allocates a table sized for odd kernels up to tableMax, with
// cost[1] seeded at 0 (the constant 1 costs nothing) and everything else at
// the sentinel.
func NewTable(tableMax uint64) *Table {
	t := &Table{
		Cost:     make([]uint8, tableMax+1),
		Graphs:   make([][]Graph, tableMax+1),
		TableMax: tableMax,
	}
	for i := range t.Cost {
		t.Cost[i] = SentinelCost
	}
	t.Cost[1] = 0
	return t
}

// relax is the shared relaxation idiom every combiner kernel uses: if
// candidate is in range and not already known at a strictly lower cost,
// record layer as its cost and append graph. The comparison is >=, not >, so
// additional minimum-cost graphs accumulate within the same layer.
func (t *Table) relax(candidate uint64, layer uint8, graph Graph) {
	if candidate == 0 || candidate > t.TableMax {
		return
	}
	if t.Cost[candidate] < layer {
		return
	}
	t.Cost[candidate] = layer
	t.Graphs[candidate] = append(t.Graphs[candidate], graph)
}
