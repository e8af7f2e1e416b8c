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

package cmult

import (
	_ "embed"
	"fmt"

	"github.com/b-asic-eda/cmult-go/internal/artifact"
	"github.com/b-asic-eda/cmult-go/internal/search"
)

//go:embed testdata/demo/adder_cost.bin
var defaultCostData []byte

//go:embed testdata/demo/graph_types.bin
var defaultGraphData []byte

// Graph is one realizing expression for an odd integer: a named variant
// (Adder, Cascade, Leapfrog5_3, ...) plus its shifted operands.
type Graph struct {
	Variant string
	Params  []uint64
}

func (g Graph) String() string {
	return search.Graph{Tag: tagByName[g.Variant], Params: g.Params}.String()
}

var tagByName = buildTagByName()

func buildTagByName() map[string]search.Tag {
	m := make(map[string]search.Tag, search.MaxTag+1)
	for t := search.Tag(0); t <= search.MaxTag; t++ {
		m[search.Name(t)] = t
	}
	return m
}

// DB is a loaded, read-only cost/graph artifact pair. The zero value is not
// usable; construct one with Open or Default.
type DB struct {
	cost   *artifact.CostReader
	graphs [][]search.Graph
}

// Default returns the DB backed by the small fixture artifact embedded into
// this binary, covering odd values up to 2^6.
func Default() (*DB, error) {
	return Open(defaultCostData, defaultGraphData)
}

// Open parses a cost file and a graph file already held in memory, as
// produced by the generator's output pair.
func Open(costData, graphData []byte) (*DB, error) {
	cost, err := artifact.NewCostReader(costData)
	if err != nil {
		return nil, err
	}
	graphs, err := artifact.DecodeGraphLists(graphData)
	if err != nil {
		return nil, err
	}
	return &DB{cost: cost, graphs: graphs}, nil
}

// position reduces idx to its odd kernel and maps it to the compact
// position the on-disk arrays use: index 1 -> 0, index 3 -> 1, and so on.
func position(idx uint64) uint64 {
	return search.OddKernel(idx) / 2
}

// Cost returns the minimum adder/subtractor operation count needed to
// realize idx (after reduction to its odd kernel). idx must be >= 1: 0 has
// no odd kernel of its own and is rejected rather than silently aliasing
// to position 0 (value 1).
func (db *DB) Cost(idx uint64) (uint8, error) {
	if idx == 0 {
		return 0, &artifact.IndexError{Index: 0, Bound: uint64(len(db.graphs))}
	}
	return db.cost.At(position(idx))
}

// Graphs returns every minimum-cost realization of idx. idx must be >= 1,
// for the same reason Cost rejects 0.
func (db *DB) Graphs(idx uint64) ([]Graph, error) {
	if idx == 0 {
		return nil, &artifact.IndexError{Index: 0, Bound: uint64(len(db.graphs))}
	}
	pos := position(idx)
	if pos >= uint64(len(db.graphs)) {
		return nil, &artifact.IndexError{Index: pos, Bound: uint64(len(db.graphs))}
	}
	internal := db.graphs[pos]
	out := make([]Graph, len(internal))
	for i, g := range internal {
		out[i] = Graph{Variant: search.Name(g.Tag), Params: g.Params}
	}
	return out, nil
}

// AllGraphs returns every index's realizations, in ascending odd-index
// order (position 0 is index 1, position 1 is index 3, ...).
func (db *DB) AllGraphs() [][]Graph {
	out := make([][]Graph, len(db.graphs))
	for i, internal := range db.graphs {
		list := make([]Graph, len(internal))
		for j, g := range internal {
			list[j] = Graph{Variant: search.Name(g.Tag), Params: g.Params}
		}
		out[i] = list
	}
	return out
}

// Info describes the loaded artifact: how many entries it covers and how
// large the two on-disk components are.
func (db *DB) Info() string {
	return fmt.Sprintf(
		"cmult database: %d elements, %d bytes packed cost table, %d compact graph entries",
		db.cost.Count()*2, db.cost.PackedLen(), len(db.graphs),
	)
}
