// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package stats runs a sorter repeatedly over generated inputs and summarises
// the recorded call depth, comparison count and work list length.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/pbnjay/memory"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mlnoga/qsort"
	"github.com/mlnoga/qsort/gen"
	"github.com/mlnoga/qsort/internal"
)

// Settings for a series of trials
type Config struct {
	Sorter qsort.Sorter
	Shape  gen.Shape
	Size   int    // elements per input
	Trials int    // number of inputs to sort
	Seed   uint32 // generator seed, zero for a random one
}

func DefaultConfig() Config {
	return Config{
		Sorter: qsort.Bounded,
		Shape:  gen.Random,
		Size:   1000,
		Trials: 32,
		Seed:   1,
	}
}

var ErrInvalidConfig = errors.New("invalid config")

const intBytes = strconv.IntSize / 8

// Worst-case memory needed for one trial: the input buffer plus a work list
// holding one lo, hi pair per element.
// Saturates at math.MaxUint64.
func (c Config) MemoryBytes() uint64 {
	n := uint64(c.Size)
	if n >= math.MaxUint64/(3*intBytes)-1 {
		return math.MaxUint64
	}
	return n*intBytes + (n+1)*2*intBytes
}

func (c Config) Validate() error {
	if _, err := qsort.ParseSorter(c.Sorter.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := gen.ParseShape(c.Shape.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Size < 0 {
		return fmt.Errorf("%w: size %d is negative", ErrInvalidConfig, c.Size)
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: need at least one trial, got %d", ErrInvalidConfig, c.Trials)
	}
	// TotalMemory is zero where it cannot be determined
	if total := memory.TotalMemory(); total > 0 && c.MemoryBytes() > total {
		return fmt.Errorf("%w: size %d needs %d MiB, physical memory is %d MiB",
			ErrInvalidConfig, c.Size, c.MemoryBytes()/1024/1024, total/1024/1024)
	}
	return nil
}

// Distribution of one counter over all trials
type Dist struct {
	Mean, StdDev, Median, Min, Max float64
}

func (d Dist) String() string {
	return fmt.Sprintf("%.1f±%.1f (median %.1f, range %.0f..%.0f)", d.Mean, d.StdDev, d.Median, d.Min, d.Max)
}

// Aggregated results of a series of trials
type Summary struct {
	Config      Config
	Depth       Dist
	Partitions  Dist
	Comparisons Dist
	Pending     Dist
}

func (s Summary) String() string {
	return fmt.Sprintf("%s/%s n=%d trials=%d: depth %v, partitions %v, comparisons %v, pending %v",
		s.Config.Sorter, s.Config.Shape, s.Config.Size, s.Config.Trials,
		s.Depth, s.Partitions, s.Comparisons, s.Pending)
}

var errNotSorted = errors.New("output not sorted")

// Sorts c.Trials freshly generated inputs and returns the summary along with
// the individual per-trial counters.
func Run(c Config) (Summary, []qsort.Stats, error) {
	if err := c.Validate(); err != nil {
		return Summary{}, nil, err
	}
	rng := gen.NewRNG(c.Seed)
	a := make([]int, c.Size)
	runs := make([]qsort.Stats, c.Trials)
	for i := range runs {
		gen.Fill(a, c.Shape, rng)
		c.Sorter.SortProbe(a, 0, len(a)-1, &runs[i])
		if !sort.IntsAreSorted(a) {
			return Summary{}, nil, fmt.Errorf("%v on %v input, trial %d: %w", c.Sorter, c.Shape, i, errNotSorted)
		}
	}
	return Summarize(c, runs), runs, nil
}

// Runs the same series of trials for each sorter. All sorters see identical
// inputs since each run restarts from the same seed. A zero c.Seed is replaced
// by one random seed shared by all runs.
func Compare(c Config, sorters []qsort.Sorter) ([]Summary, error) {
	if c.Seed == 0 {
		c.Seed = gen.RandomSeed()
	}
	sums := make([]Summary, 0, len(sorters))
	for _, s := range sorters {
		c.Sorter = s
		sum, _, err := Run(c)
		if err != nil {
			return nil, err
		}
		sums = append(sums, sum)
	}
	return sums, nil
}

// Aggregates per-trial counters into a summary
func Summarize(c Config, runs []qsort.Stats) Summary {
	depth := make([]float64, len(runs))
	parts := make([]float64, len(runs))
	comps := make([]float64, len(runs))
	pend := make([]float64, len(runs))
	for i, r := range runs {
		depth[i] = float64(r.MaxDepth)
		parts[i] = float64(r.Partitions)
		comps[i] = float64(r.Comparisons)
		pend[i] = float64(r.MaxPending)
	}
	return Summary{
		Config:      c,
		Depth:       distOf(depth),
		Partitions:  distOf(parts),
		Comparisons: distOf(comps),
		Pending:     distOf(pend),
	}
}

// Reorders xs
func distOf(xs []float64) Dist {
	if len(xs) == 0 {
		return Dist{}
	}
	sort.Float64s(xs)
	d := Dist{
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
	}
	if len(xs) == 1 {
		d.Mean = xs[0] // sample std dev is undefined
		return d
	}
	d.Mean, d.StdDev = stat.MeanStdDev(xs, nil)
	return d
}

// Logs one line per summary through the internal log writer
func Report(sums []Summary) {
	for _, s := range sums {
		internal.LogPrintln(s.String())
	}
}
