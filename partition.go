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

// Partitions a[lo..hi] around the pivot a[lo] and returns the pivot's final index p.
// Afterwards a[lo..p-1] <= a[p] <= a[p+1..hi]. Requires lo<=hi.
//
// Elements greater than the pivot are collected at the right end while scanning
// downwards from hi, so equal elements stay left of the pivot.
// Makes exactly hi-lo comparisons.
func Partition(a []int, lo, hi int) int {
	pivot := a[lo]
	bound := hi + 1 // a[bound..hi] holds the elements greater than the pivot
	for i := hi; i > lo; i-- {
		if a[i] > pivot {
			bound--
			a[bound], a[i] = a[i], a[bound]
		}
	}
	a[bound-1], a[lo] = a[lo], a[bound-1]
	return bound - 1
}
