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

// Sorts a[lo..hi] in ascending order without recursion, keeping pending ranges
// on a work list. After each partition the left side is pushed before the right
// side, so the right side is processed first. No preference is given to the
// smaller side, and the work list can hold O(n) ranges on adversarial input.
func SortIterative(a []int, lo, hi int) {
	sortIterative(a, lo, hi, nil)
}

func sortIterative(a []int, lo, hi int, probe Probe) {
	if probe != nil {
		probe.Frame(1)
	}
	s := getWorkList()
	defer putWorkList(s)
	s.push(lo, hi)
	if probe != nil {
		probe.Pending(s.len())
	}
	for !s.empty() {
		lo, hi := s.pop()
		if lo >= hi {
			continue
		}
		p := Partition(a, lo, hi)
		if probe != nil {
			probe.Partition(lo, hi, p)
		}
		s.push(lo, p-1)
		s.push(p+1, hi)
		if probe != nil {
			probe.Pending(s.len())
		}
	}
}

// Sorts a[lo..hi] in ascending order without recursion. Like SortIterative, but
// pushes the larger side first so the smaller side is processed first, which keeps
// the work list at O(log n) ranges.
func SortIterativeBounded(a []int, lo, hi int) {
	sortIterativeBounded(a, lo, hi, nil)
}

func sortIterativeBounded(a []int, lo, hi int, probe Probe) {
	if probe != nil {
		probe.Frame(1)
	}
	s := getWorkList()
	defer putWorkList(s)
	s.push(lo, hi)
	if probe != nil {
		probe.Pending(s.len())
	}
	for !s.empty() {
		lo, hi := s.pop()
		if lo >= hi {
			continue
		}
		p := Partition(a, lo, hi)
		if probe != nil {
			probe.Partition(lo, hi, p)
		}
		if p-lo < hi-p {
			s.push(p+1, hi)
			s.push(lo, p-1)
		} else {
			s.push(lo, p-1)
			s.push(p+1, hi)
		}
		if probe != nil {
			probe.Pending(s.len())
		}
	}
}
