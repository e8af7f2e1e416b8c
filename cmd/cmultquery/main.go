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

// Command cmultquery answers cost and graph questions against a generated
// artifact pair, defaulting to the small fixture embedded in pkg/cmult.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/b-asic-eda/cmult-go/internal/artifact"
	"github.com/b-asic-eda/cmult-go/pkg/cmult"
)

var dataDir string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmultquery",
		Short: "Query a generated adder-cost table and graph list",
	}
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"directory containing adder_cost.bin and graph_types.bin (defaults to the embedded fixture)")

	cmd.AddCommand(newCostCmd(), newGraphsCmd(), newInfoCmd())
	return cmd
}

func openDB() (*cmult.DB, error) {
	if dataDir == "" {
		return cmult.Default()
	}
	costData, graphData, err := artifact.ReadArtifacts(afero.NewOsFs(), dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifacts from %s: %w", dataDir, err)
	}
	return cmult.Open(costData, graphData)
}

func parseIndex(arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", arg, err)
	}
	return v, nil
}

func newCostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost <C>",
		Short: "Print the minimum operation count for C",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			cost, err := db.Cost(idx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cost)
			return nil
		},
	}
}

func newGraphsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graphs <C>",
		Short: "Print every minimum-cost realization of C",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			graphs, err := db.Graphs(idx)
			if err != nil {
				return err
			}
			for _, g := range graphs {
				fmt.Fprintln(cmd.OutOrStdout(), g.String())
			}
			return nil
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print a summary of the loaded artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), db.Info())
			return nil
		},
	}
}
