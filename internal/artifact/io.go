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

package artifact

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/b-asic-eda/cmult-go/internal/search"
)

const (
	// CostFileName is the conventional name of the bit-packed cost table.
	CostFileName = "adder_cost.bin"
	// GraphFileName is the conventional name of the compressed graph list.
	GraphFileName = "graph_types.bin"
)

// WriteArtifacts packs cost and graphs from table and writes both files
// under dir through fs, logging sizes the way a generator run reports them.
func WriteArtifacts(fs afero.Fs, dir string, table *search.Table, log logrus.FieldLogger) error {
	packed, count := PackCostTable(table.Cost)
	costFile := EncodeCostFile(packed, count)

	costPath := filepath.Join(dir, CostFileName)
	if err := afero.WriteFile(fs, costPath, costFile, 0o644); err != nil {
		return err
	}
	log.WithField("path", costPath).
		WithField("entries", count).
		WithField("bytes", len(costFile)).
		Info("wrote cost table")

	graphBytes, err := EncodeGraphLists(compactOddGraphs(table.Graphs))
	if err != nil {
		return err
	}
	graphPath := filepath.Join(dir, GraphFileName)
	if err := afero.WriteFile(fs, graphPath, graphBytes, 0o644); err != nil {
		return err
	}
	log.WithField("path", graphPath).
		WithField("bytes", len(graphBytes)).
		Info("wrote graph types")

	return nil
}

// compactOddGraphs collapses a full index-addressed graph table down to the
// one-entry-per-odd-index list the on-disk format stores: position 0 holds
// index 1's graphs, position 1 holds index 3's, and so on.
func compactOddGraphs(graphs [][]search.Graph) [][]search.Graph {
	out := make([][]search.Graph, 0, (len(graphs)+1)/2)
	for i := 1; i < len(graphs); i += 2 {
		out = append(out, graphs[i])
	}
	return out
}

// ReadArtifacts loads both files from dir through fs.
func ReadArtifacts(fs afero.Fs, dir string) (costData, graphData []byte, err error) {
	costData, err = afero.ReadFile(fs, filepath.Join(dir, CostFileName))
	if err != nil {
		return nil, nil, err
	}
	graphData, err = afero.ReadFile(fs, filepath.Join(dir, GraphFileName))
	if err != nil {
		return nil, nil, err
	}
	return costData, graphData, nil
}
