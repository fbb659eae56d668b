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

package qsort

import (
	"fmt"
)

// Receives progress events from an instrumented sort, see Sorter.SortProbe.
type Probe interface {
	// A sort call frame was entered at the given depth, starting at 1.
	// Iterative variants report a single frame.
	Frame(depth int)

	// a[lo..hi] was partitioned with the pivot landing at index p
	Partition(lo, hi, p int)

	// The work list now holds n ranges. Only reported by iterative variants.
	Pending(n int)
}

// Counts events of a sort run. The zero value is ready to use.
type Stats struct {
	Frames      int // call frames entered
	MaxDepth    int // deepest call frame
	Partitions  int // partition steps
	Comparisons int // element comparisons made while partitioning
	MaxPending  int // largest work list length seen
}

func (s *Stats) Frame(depth int) {
	s.Frames++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}

func (s *Stats) Partition(lo, hi, p int) {
	s.Partitions++
	s.Comparisons += hi - lo
}

func (s *Stats) Pending(n int) {
	if n > s.MaxPending {
		s.MaxPending = n
	}
}

// Clears all counters
func (s *Stats) Reset() {
	*s = Stats{}
}

func (s Stats) String() string {
	return fmt.Sprintf("frames %d maxDepth %d partitions %d comparisons %d maxPending %d",
		s.Frames, s.MaxDepth, s.Partitions, s.Comparisons, s.MaxPending)
}

// Forwards every event to each probe in turn
type Probes []Probe

func (ps Probes) Frame(depth int) {
	for _, p := range ps {
		p.Frame(depth)
	}
}

func (ps Probes) Partition(lo, hi, pivot int) {
	for _, p := range ps {
		p.Partition(lo, hi, pivot)
	}
}

func (ps Probes) Pending(n int) {
	for _, p := range ps {
		p.Pending(n)
	}
}
