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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestTableMaxAndMaxValue(t *testing.T) {
	c := Config{MaxBits: 8, MaxExtraBits: 2, OutDir: ".", LogLevel: "info"}
	assert.Equal(t, uint64(256), c.TableMax())
	assert.Equal(t, uint64(1024), c.MaxValue())
}

func TestValidateRejectsOutOfRangeMaxBits(t *testing.T) {
	c := Default()
	c.MaxBits = 1
	assert.Error(t, c.Validate())

	c.MaxBits = 100
	assert.Error(t, c.Validate())
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	c := Default()
	c.LogLevel = "not-a-level"
	assert.Error(t, c.Validate())
}

func TestValidateRejectsEmptyOutDir(t *testing.T) {
	c := Default()
	c.OutDir = ""
	assert.Error(t, c.Validate())
}
