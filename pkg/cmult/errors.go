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

// Package cmult is the read-only query library for a generated cost/graph
// artifact pair: cost(idx), graphs(idx), all_graphs(), info().
package cmult

import "github.com/b-asic-eda/cmult-go/internal/artifact"

// IndexError, DataCorruptionError and ValueError are the three error kinds
// every query method can return. They are defined once in internal/artifact
// where the decoders that raise them live, and re-exported here as the
// stable public names callers type-assert against.
type (
	IndexError          = artifact.IndexError
	DataCorruptionError = artifact.DataCorruptionError
	ValueError          = artifact.ValueError
)
