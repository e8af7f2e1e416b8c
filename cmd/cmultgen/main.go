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

// Command cmultgen runs the layered adder-cost search and writes the
// generated cost table and graph list to disk.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/b-asic-eda/cmult-go/internal/artifact"
	"github.com/b-asic-eda/cmult-go/internal/config"
	"github.com/b-asic-eda/cmult-go/internal/search"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "cmultgen",
		Short: "Generate the constant-multiplication adder-cost table and graph list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.MaxBits, "max-bits", cfg.MaxBits, "table size exponent: odd values up to 2^max-bits are covered")
	flags.IntVar(&cfg.MaxExtraBits, "max-extra-bits", cfg.MaxExtraBits, "extra bits of breathing room for shift-closure intermediates")
	flags.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "directory to write adder_cost.bin and graph_types.bin into")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logrus level: trace, debug, info, warn, error")

	return cmd
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	entry := logrus.NewEntry(log).WithField("component", "cmultgen")

	result := search.Run(cfg.MaxBits, cfg.MaxExtraBits, entry)

	if result.MissingCount > 0 {
		entry.WithField("missing_count", result.MissingCount).
			Warn("some odd values have no known realization")
		for _, gap := range result.MissingGaps {
			entry.WithField("value", gap).Warn("no graph types found for value")
		}
	}

	fs := afero.NewOsFs()
	if err := fs.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := artifact.WriteArtifacts(fs, cfg.OutDir, result.Table, entry); err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}

	entry.WithField("result_count", result.ResultCount).
		WithField("missing_count", result.MissingCount).
		Info("generation complete")

	return nil
}
