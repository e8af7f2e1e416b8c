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

// Package config holds the generator's run configuration: the two
// dimensions the search depends on, plus the logging and output-directory
// knobs a cobra command line overrides.
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxBits is the default table size exponent: the search covers
	// every odd C in [1, 2^DefaultMaxBits].
	DefaultMaxBits = 19

	// DefaultMaxExtraBits bounds how far ShiftClosure is allowed to grow an
	// intermediate beyond the table itself, trading search breadth for time.
	DefaultMaxExtraBits = 2

	// MinMaxBits is the smallest table size the search supports; below this
	// the layer-1 seed alone exhausts the table.
	MinMaxBits = 3

	// MaxMaxBits bounds table memory: at 3 bits per entry a table this wide
	// already occupies hundreds of megabytes.
	MaxMaxBits = 30
)

// Config is the resolved set of parameters a generator run needs.
type Config struct {
	MaxBits      int
	MaxExtraBits int
	OutDir       string
	LogLevel     string
}

// Default returns a Config seeded with the package defaults.
func Default() Config {
	return Config{
		MaxBits:      DefaultMaxBits,
		MaxExtraBits: DefaultMaxExtraBits,
		OutDir:       ".",
		LogLevel:     "info",
	}
}

// Validate checks that the configuration describes a table the search and
// bit-packer can actually build.
func (c Config) Validate() error {
	if c.MaxBits < MinMaxBits || c.MaxBits > MaxMaxBits {
		return fmt.Errorf("max-bits must be between %d and %d, got %d", MinMaxBits, MaxMaxBits, c.MaxBits)
	}
	if c.MaxExtraBits < 0 {
		return fmt.Errorf("max-extra-bits must be non-negative, got %d", c.MaxExtraBits)
	}
	if c.OutDir == "" {
		return fmt.Errorf("out-dir must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// TableMax is the table's upper index bound, 2^MaxBits; the largest odd
// kernel it covers is 2^MaxBits - 1.
func (c Config) TableMax() uint64 {
	return uint64(1) << uint(c.MaxBits)
}

// MaxValue is the largest intermediate ShiftClosure is allowed to produce,
// 2^(MaxBits+MaxExtraBits).
func (c Config) MaxValue() uint64 {
	return uint64(1) << uint(c.MaxBits+c.MaxExtraBits)
}

// NewLogger builds a logrus logger at the configured level, with the
// full-timestamp text format the generator CLI logs in.
func (c Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}
