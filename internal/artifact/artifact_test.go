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
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b-asic-eda/cmult-go/internal/search"
)

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestCostPackRoundTrip(t *testing.T) {
	cost := make([]uint8, 17)
	for i := range cost {
		cost[i] = uint8(i % 7)
	}

	packed, count := PackCostTable(cost)
	file := EncodeCostFile(packed, count)

	reader, err := NewCostReader(file)
	require.NoError(t, err)
	assert.Equal(t, uint64(count), reader.Count())

	for i := 1; i < len(cost); i += 2 {
		position := uint64(i / 2)
		got, err := reader.At(position)
		require.NoError(t, err)
		assert.Equal(t, cost[i]&0b111, got, "position %d (index %d)", position, i)
	}
}

func TestCostReaderRejectsOutOfRange(t *testing.T) {
	cost := []uint8{0, 1, 2, 3}
	packed, count := PackCostTable(cost)
	reader, err := NewCostReader(EncodeCostFile(packed, count))
	require.NoError(t, err)

	_, err = reader.At(uint64(count) + 10)
	require.Error(t, err)
	var idxErr *IndexError
	assert.ErrorAs(t, err, &idxErr)
}

func TestCostReaderRejectsTruncatedHeader(t *testing.T) {
	_, err := NewCostReader([]byte{1, 2, 3})
	require.Error(t, err)
	var corruptErr *DataCorruptionError
	assert.ErrorAs(t, err, &corruptErr)
}

func TestGraphCodecRoundTrip(t *testing.T) {
	lists := [][]search.Graph{
		{{Tag: search.TagAdder, Params: []uint64{1, 8}}},
		{},
		{
			{Tag: search.TagCascade, Params: []uint64{3, 5}},
			{Tag: search.TagLeapfrog7_8, Params: []uint64{1, 2, 3, 4, 5, 6, 7}},
		},
	}

	encoded, err := EncodeGraphLists(lists)
	require.NoError(t, err)

	decoded, err := DecodeGraphLists(encoded)
	require.NoError(t, err)
	require.Equal(t, lists, decoded)
}

func TestGraphCodecRejectsUnknownTag(t *testing.T) {
	raw := serializeGraphLists([][]search.Graph{{{Tag: search.Tag(250), Params: nil}}})
	_, err := deserializeGraphLists(raw)
	require.Error(t, err)
	var valErr *ValueError
	assert.ErrorAs(t, err, &valErr)
}

func TestWriteAndReadArtifactsRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := discardLogger()

	tab := search.NewTable(16)
	tab.Graphs[3] = []search.Graph{{Tag: search.TagAdder, Params: []uint64{1, 2}}}
	tab.Cost[3] = 1

	require.NoError(t, WriteArtifacts(fs, "/out", tab, log))

	costData, graphData, err := ReadArtifacts(fs, "/out")
	require.NoError(t, err)

	reader, err := NewCostReader(costData)
	require.NoError(t, err)
	val, err := reader.At(1) // index 3 -> position 1
	require.NoError(t, err)
	assert.Equal(t, uint8(1), val)

	decoded, err := DecodeGraphLists(graphData)
	require.NoError(t, err)
	require.Len(t, decoded, 8) // tableMax=16 -> 8 odd indices
	assert.Equal(t, tab.Graphs[3], decoded[1])
}
