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

// Sorts a[lo..hi] in ascending order. Recurses only into the smaller side of each
// partition and continues with the larger side in a loop, so the call depth stays
// at most floor(log2(hi-lo+1))+1.
func SortBounded(a []int, lo, hi int) {
	sortBounded(a, lo, hi, 1, nil)
}

func sortBounded(a []int, lo, hi, depth int, probe Probe) {
	if probe != nil {
		probe.Frame(depth)
	}
	for lo < hi {
		p := Partition(a, lo, hi)
		if probe != nil {
			probe.Partition(lo, hi, p)
		}
		if p-lo < hi-p {
			sortBounded(a, lo, p-1, depth+1, probe)
			lo = p + 1
		} else {
			sortBounded(a, p+1, hi, depth+1, probe)
			hi = p - 1
		}
	}
}
