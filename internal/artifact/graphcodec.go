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
	"bytes"
	"encoding/binary"

	"github.com/multiformats/go-varint"
	"github.com/pierrec/lz4/v4"

	"github.com/b-asic-eda/cmult-go/internal/search"
)

// frameModeStore and frameModeLZ4 tag how EncodeGraphLists' output was
// framed: compression is skipped for inputs the block compressor can't
// shrink, rather than ever emitting an expanded block.
const (
	frameModeStore byte = 0
	frameModeLZ4   byte = 1
)

// EncodeGraphLists varint-encodes graphs (one list of Graph per odd index,
// in ascending index order) and LZ4-compresses the result, framed as
// [4-byte LE uncompressed size][1-byte mode][payload].
func EncodeGraphLists(graphs [][]search.Graph) ([]byte, error) {
	raw := serializeGraphLists(graphs)

	bound := lz4.CompressBlockBound(len(raw))
	compressed := make([]byte, bound)
	var compressor lz4.Compressor
	n, err := compressor.CompressBlock(raw, compressed)
	if err != nil {
		return nil, err
	}

	header := make([]byte, 5)
	binary.LittleEndian.PutUint32(header[:4], uint32(len(raw)))

	if n == 0 || n >= len(raw) {
		header[4] = frameModeStore
		return append(header, raw...), nil
	}
	header[4] = frameModeLZ4
	return append(header, compressed[:n]...), nil
}

// DecodeGraphLists reverses EncodeGraphLists, validating the declared tag
// arity of every decoded Graph against search.Arity.
func DecodeGraphLists(data []byte) ([][]search.Graph, error) {
	if len(data) < 5 {
		return nil, &DataCorruptionError{Reason: "graph file shorter than its frame header"}
	}
	uncompressedLen := binary.LittleEndian.Uint32(data[:4])
	mode := data[4]
	payload := data[5:]

	var raw []byte
	switch mode {
	case frameModeStore:
		if uint32(len(payload)) != uncompressedLen {
			return nil, &DataCorruptionError{Reason: "stored graph payload length mismatch"}
		}
		raw = payload
	case frameModeLZ4:
		raw = make([]byte, uncompressedLen)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, &DataCorruptionError{Reason: "lz4 decompression failed: " + err.Error()}
		}
		if uint32(n) != uncompressedLen {
			return nil, &DataCorruptionError{Reason: "decompressed length mismatch"}
		}
	default:
		return nil, &DataCorruptionError{Reason: "unknown graph frame mode"}
	}

	return deserializeGraphLists(raw)
}

func serializeGraphLists(graphs [][]search.Graph) []byte {
	var buf bytes.Buffer

	writeUvarint(&buf, uint64(len(graphs)))
	for _, list := range graphs {
		writeUvarint(&buf, uint64(len(list)))
		for _, g := range list {
			buf.WriteByte(byte(g.Tag))
			for _, p := range g.Params {
				writeUvarint(&buf, p)
			}
		}
	}
	return buf.Bytes()
}

func deserializeGraphLists(data []byte) ([][]search.Graph, error) {
	r := bytes.NewReader(data)

	count, err := readUvarint(r)
	if err != nil {
		return nil, &DataCorruptionError{Reason: "failed to read entry count: " + err.Error()}
	}

	result := make([][]search.Graph, 0, count)
	for i := uint64(0); i < count; i++ {
		listLen, err := readUvarint(r)
		if err != nil {
			return nil, &DataCorruptionError{Reason: "failed to read list length: " + err.Error()}
		}

		list := make([]search.Graph, 0, listLen)
		for j := uint64(0); j < listLen; j++ {
			tagByte, err := r.ReadByte()
			if err != nil {
				return nil, &DataCorruptionError{Reason: "unexpected end of data reading tag"}
			}
			tag := search.Tag(tagByte)
			arity := search.Arity(tag)
			if arity == 0 {
				return nil, &ValueError{Reason: "unknown graph variant tag"}
			}

			params := make([]uint64, arity)
			for k := 0; k < arity; k++ {
				v, err := readUvarint(r)
				if err != nil {
					return nil, &DataCorruptionError{Reason: "failed to read graph parameter: " + err.Error()}
				}
				params[k] = v
			}
			list = append(list, search.Graph{Tag: tag, Params: params})
		}
		result = append(result, list)
	}
	return result, nil
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	tmp := make([]byte, varint.MaxLenUvarint63)
	n := varint.PutUvarint(tmp, v)
	buf.Write(tmp[:n])
}

func readUvarint(r *bytes.Reader) (uint64, error) {
	return varint.ReadUvarint(r)
}
