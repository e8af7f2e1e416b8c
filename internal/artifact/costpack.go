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

// Package artifact implements the two on-disk formats a search run
// produces: a bit-packed cost table and an LZ4-compressed, varint-encoded
// graph list.
package artifact

import "encoding/binary"

// costHeaderSize is the width of the little-endian count prefix every
// adder_cost.bin-style file carries.
const costHeaderSize = 8

// PackCostTable bit-packs the odd-indexed entries of cost (index 1, 3, 5,
// ...) three bits at a time, low bits first, across byte boundaries. It
// returns the packed bytes and the header count (len(cost)+1)/2; when
// len(cost) is odd that count is one more than the number of entries packed.
func PackCostTable(cost []uint8) (packed []byte, count int) {
	count = (len(cost) + 1) / 2

	var bitBuffer uint32
	var bitsInBuffer uint

	for i := 1; i < len(cost); i += 2 {
		val := uint32(cost[i] & 0b111)
		bitBuffer |= val << bitsInBuffer
		bitsInBuffer += 3

		for bitsInBuffer >= 8 {
			packed = append(packed, byte(bitBuffer))
			bitBuffer >>= 8
			bitsInBuffer -= 8
		}
	}
	if bitsInBuffer > 0 {
		packed = append(packed, byte(bitBuffer))
	}
	return packed, count
}

// EncodeCostFile prepends the little-endian entry count header to packed,
// producing the full adder_cost.bin contents.
func EncodeCostFile(packed []byte, count int) []byte {
	out := make([]byte, costHeaderSize+len(packed))
	binary.LittleEndian.PutUint64(out[:costHeaderSize], uint64(count))
	copy(out[costHeaderSize:], packed)
	return out
}

// CostReader answers cost queries against a packed cost file already held in
// memory, without unpacking the whole table up front.
type CostReader struct {
	count  uint64
	packed []byte
}

// NewCostReader parses a cost file's header and wraps the remaining bytes.
func NewCostReader(data []byte) (*CostReader, error) {
	if len(data) < costHeaderSize {
		return nil, &DataCorruptionError{Reason: "cost file shorter than its header"}
	}
	count := binary.LittleEndian.Uint64(data[:costHeaderSize])
	return &CostReader{count: count, packed: data[costHeaderSize:]}, nil
}

// Count returns the number of odd-indexed entries the file covers.
func (r *CostReader) Count() uint64 { return r.count }

// PackedLen returns the number of packed data bytes, excluding the header.
func (r *CostReader) PackedLen() int { return len(r.packed) }

// At returns the 3-bit cost stored for odd-kernel position (idx/2), where
// idx is already reduced to its odd form by the caller.
func (r *CostReader) At(position uint64) (uint8, error) {
	if position >= r.count {
		return 0, &IndexError{Index: position, Bound: r.count}
	}

	bitOffset := position * 3
	byteOffset := bitOffset / 8
	bitInByte := bitOffset % 8

	if byteOffset >= uint64(len(r.packed)) {
		return 0, &DataCorruptionError{Reason: "cost position beyond packed data"}
	}

	val := (r.packed[byteOffset] >> bitInByte) & 0b111

	if bitInByte > 5 && byteOffset+1 < uint64(len(r.packed)) {
		bitsFromNext := 3 - (8 - bitInByte)
		val |= (r.packed[byteOffset+1] & ((1 << bitsFromNext) - 1)) << (8 - bitInByte)
	}

	return val & 0b111, nil
}
