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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoads(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestCostKnownValues(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	cost, err := db.Cost(3)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), cost)

	cost, err = db.Cost(1)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), cost)

	// 20 and 5 share an odd kernel, so they share a cost.
	c5, err := db.Cost(5)
	require.NoError(t, err)
	c20, err := db.Cost(20)
	require.NoError(t, err)
	assert.Equal(t, c5, c20)
}

func TestGraphsReturnsRealizations(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	graphs, err := db.Graphs(3)
	require.NoError(t, err)
	require.NotEmpty(t, graphs)

	found := false
	for _, g := range graphs {
		if g.Variant == "Adder" {
			found = true
			assert.NotEmpty(t, g.String())
		}
	}
	assert.True(t, found)
}

func TestZeroIndexReturnsIndexError(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	_, err = db.Cost(0)
	require.Error(t, err)
	var idxErr *IndexError
	assert.ErrorAs(t, err, &idxErr)

	_, err = db.Graphs(0)
	require.Error(t, err)
	assert.ErrorAs(t, err, &idxErr)
}

func TestGraphsOutOfRangeReturnsIndexError(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	_, err = db.Graphs((1 << 20) + 1) // large odd index, well past the fixture's table_max
	require.Error(t, err)
	var idxErr *IndexError
	assert.ErrorAs(t, err, &idxErr)
}

func TestAllGraphsCoversEveryOddIndex(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	all := db.AllGraphs()
	assert.Equal(t, 32, len(all)) // table_max=64 -> 32 odd indices
}

func TestInfoIsNonEmpty(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, db.Info())
}

func TestOpenRejectsGarbage(t *testing.T) {
	_, err := Open([]byte{1, 2}, []byte{1, 2, 3})
	require.Error(t, err)
}
