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

package search

import "github.com/sirupsen/logrus"

// Result is what a completed search run hands back to the caller: the
// filled cost/graph table plus the summary counters the generator logs.
type Result struct {
	Table         *Table
	ResultCount   int
	MissingGaps   []uint64
	MissingCount  int
	LayersRun     int
}

// Run performs the full layered breadth-first search up through layer 4
// unconditionally, layer 5 when maxBits > 12, and layer 6 when maxBits > 19.
// The recipe of combiner calls at each layer is a design constant of the
// search, reproduced here exactly as the reference generator runs it.
func Run(maxBits, maxExtraBits int, log *logrus.Entry) *Result {
	tableMax := uint64(1) << uint(maxBits)
	maxValue := uint64(1) << uint(maxBits+maxExtraBits)

	log.WithField("max_bits", maxBits).
		WithField("max_extra_bits", maxExtraBits).
		WithField("table_max", tableMax).
		WithField("max_value", maxValue).
		Info("configuration initialized")

	t := NewTable(tableMax)

	cost0 := []uint64{1}
	cost0Shifted := ShiftClosure(cost0, maxValue)

	layerLog := log.WithField("component", "search")

	// --- layer 1 ---
	layerLog.WithField("layer", 1).Debug("processing cost 1 combinations")
	AddSub(t, cost0, cost0Shifted, 1, layerLog)
	cost1 := ExtractFrontier(t.Cost, 1)
	layerLog.WithField("layer", 1).WithField("count", len(cost1)).Debug("cost 1 values found")
	cost1Shifted := ShiftClosure(cost1, maxValue)

	// --- layer 2 ---
	layerLog.WithField("layer", 2).Debug("processing cost 2 combinations")
	AddSub(t, cost1, cost0Shifted, 2, layerLog)
	AddSub(t, cost0, cost1Shifted, 2, layerLog)
	Cascade(t, cost1, cost1, 2, true, layerLog)
	cost2 := ExtractFrontier(t.Cost, 2)
	layerLog.WithField("layer", 2).WithField("count", len(cost2)).Debug("cost 2 values found")
	cost2Shifted := ShiftClosure(cost2, maxValue)

	// --- layer 3 ---
	layerLog.WithField("layer", 3).Debug("processing cost 3 combinations")
	AddSub(t, cost2, cost0Shifted, 3, layerLog)
	AddSub(t, cost1, cost1Shifted, 3, layerLog)
	AddSub(t, cost0, cost2Shifted, 3, layerLog)
	Cascade(t, cost1, cost2, 3, false, layerLog)
	cost3 := ExtractFrontier(t.Cost, 3)
	layerLog.WithField("layer", 3).WithField("count", len(cost3)).Debug("cost 3 values found")
	cost3Shifted := ShiftClosure(cost3, maxValue)

	// --- layer 4 ---
	layerLog.WithField("layer", 4).Debug("processing cost 4 combinations")
	AddSub(t, cost3, cost0Shifted, 4, layerLog)
	AddSub(t, cost2, cost1Shifted, 4, layerLog)
	AddSub(t, cost1, cost2Shifted, 4, layerLog)
	AddSub(t, cost0, cost3Shifted, 4, layerLog)
	Cascade(t, cost1, cost3, 4, false, layerLog)
	Cascade(t, cost2, cost2, 4, true, layerLog)
	Leapfrog4(t, cost1Shifted, cost0Shifted, cost0Shifted, cost1Shifted, 4, layerLog)
	cost4 := ExtractFrontier(t.Cost, 4)
	layerLog.WithField("layer", 4).WithField("count", len(cost4)).Debug("cost 4 values found")
	cost4Shifted := ShiftClosure(cost4, maxValue)

	layersRun := 4

	if maxBits > 12 {
		layersRun = 5
		layerLog.WithField("layer", 5).Debug("processing cost 5 combinations")
		AddSub(t, cost4, cost0Shifted, 5, layerLog)
		AddSub(t, cost3, cost1Shifted, 5, layerLog)
		AddSub(t, cost2, cost2Shifted, 5, layerLog)
		AddSub(t, cost1, cost3Shifted, 5, layerLog)
		AddSub(t, cost0, cost4Shifted, 5, layerLog)
		Cascade(t, cost1, cost4, 5, false, layerLog)
		Cascade(t, cost2, cost3, 5, false, layerLog)
		Leapfrog5(t, cost1Shifted, cost0Shifted, cost1, cost0Shifted, cost1Shifted, 5, layerLog)
		Leapfrog4(t, cost2Shifted, cost0Shifted, cost0Shifted, cost1Shifted, 5, layerLog)
		Leapfrog4(t, cost1Shifted, cost1Shifted, cost0Shifted, cost1Shifted, 5, layerLog)
		Leapfrog4(t, cost1Shifted, cost0Shifted, cost0Shifted, cost2Shifted, 5, layerLog)
		Leapfrog7(t, cost1Shifted, cost0Shifted, cost0Shifted, cost0Shifted, cost0Shifted, cost0Shifted, cost1Shifted, 5, layerLog)
	}

	if maxBits > 19 {
		layersRun = 6
		cost5 := ExtractFrontier(t.Cost, 5)
		layerLog.WithField("layer", 5).WithField("count", len(cost5)).Debug("cost 5 values found")
		cost5Shifted := ShiftClosure(cost5, maxValue)

		layerLog.WithField("layer", 6).Debug("processing cost 6 combinations")
		AddSub(t, cost5, cost0Shifted, 6, layerLog)
		AddSub(t, cost4, cost1Shifted, 6, layerLog)
		AddSub(t, cost3, cost2Shifted, 6, layerLog)
		AddSub(t, cost2, cost3Shifted, 6, layerLog)
		AddSub(t, cost1, cost4Shifted, 6, layerLog)
		AddSub(t, cost0, cost5Shifted, 6, layerLog)
		Cascade(t, cost1, cost5, 6, false, layerLog)
		Cascade(t, cost2, cost4, 6, false, layerLog)
		Cascade(t, cost3, cost3, 6, true, layerLog)
		Leapfrog5(t, cost2Shifted, cost0Shifted, cost1, cost0Shifted, cost1Shifted, 6, layerLog)
		Leapfrog4(t, cost3Shifted, cost0Shifted, cost0Shifted, cost1Shifted, 6, layerLog)
		Leapfrog4(t, cost2Shifted, cost0Shifted, cost0Shifted, cost2Shifted, 6, layerLog)
		Leapfrog4(t, cost1Shifted, cost1Shifted, cost0Shifted, cost2Shifted, 6, layerLog)
		Leapfrog4(t, cost1Shifted, cost1Shifted, cost1Shifted, cost1Shifted, 6, layerLog)
		Leapfrog4(t, cost2Shifted, cost1Shifted, cost0Shifted, cost1Shifted, 6, layerLog)
		Leapfrog5(t, cost1Shifted, cost0Shifted, cost2, cost0Shifted, cost1Shifted, 6, layerLog)
		// A second Leapfrog5(cost1Shifted, cost0Shifted, cost1Shifted, cost0Shifted, cost2Shifted, 6, ...)
		// invocation is commented out in the reference generator (never enabled for any
		// configuration that has shipped) and is intentionally not reproduced here.
		Leapfrog7(t, cost2Shifted, cost0Shifted, cost0Shifted, cost0Shifted, cost0Shifted, cost0Shifted, cost1Shifted, 6, layerLog)
		Leapfrog7(t, cost1Shifted, cost1Shifted, cost0Shifted, cost0Shifted, cost0Shifted, cost0Shifted, cost1Shifted, 6, layerLog)
		Leapfrog7(t, cost1Shifted, cost0Shifted, cost1Shifted, cost0Shifted, cost0Shifted, cost0Shifted, cost1Shifted, 6, layerLog)
		Leapfrog7(t, cost1Shifted, cost0Shifted, cost0Shifted, cost1Shifted, cost0Shifted, cost0Shifted, cost1Shifted, 6, layerLog)
	}

	resultCount, missingCount, gaps := summarize(t, tableMax)

	log.WithField("result_count", resultCount).
		WithField("missing_count", missingCount).
		WithField("layers_run", layersRun).
		Info("computation complete")

	return &Result{
		Table:        t,
		ResultCount:  resultCount,
		MissingGaps:  gaps,
		MissingCount: missingCount,
		LayersRun:    layersRun,
	}
}

// summarize counts how many odd indices in [1, tableMax] hold at least one
// graph and collects the indices that hold none — a search gap the
// generator warns about.
func summarize(t *Table, tableMax uint64) (resultCount, missingCount int, gaps []uint64) {
	for i := uint64(1); i <= tableMax; i += 2 {
		if len(t.Graphs[i]) > 0 {
			resultCount++
			continue
		}
		missingCount++
		gaps = append(gaps, i)
	}
	return resultCount, missingCount, gaps
}
