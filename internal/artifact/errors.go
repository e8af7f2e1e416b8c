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

import "fmt"

// IndexError reports a query index outside the range the loaded artifact
// covers.
type IndexError struct {
	Index uint64
	Bound uint64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range, artifact covers %d entries", e.Index, e.Bound)
}

// DataCorruptionError reports that a loaded artifact's bytes don't agree
// with its own header, or ran out before a decode finished.
type DataCorruptionError struct {
	Reason string
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("data corruption: %s", e.Reason)
}

// ValueError reports a malformed value encountered while decoding an
// artifact, distinct from a corrupted-structure DataCorruptionError.
type ValueError struct {
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value: %s", e.Reason)
}
