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

// Sorts a[lo..hi] in ascending order, recursing into both sides of each partition.
// Call depth grows linearly on sorted and reverse-sorted input.
func SortRecursive(a []int, lo, hi int) {
	sortRecursive(a, lo, hi, 1, nil)
}

func sortRecursive(a []int, lo, hi, depth int, probe Probe) {
	if probe != nil {
		probe.Frame(depth)
	}
	if lo < hi {
		p := Partition(a, lo, hi)
		if probe != nil {
			probe.Partition(lo, hi, p)
		}
		sortRecursive(a, lo, p-1, depth+1, probe)
		sortRecursive(a, p+1, hi, depth+1, probe)
	}
}
