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
	"sync"
)

// A growable last-in first-out list of inclusive index ranges, stored as
// consecutive lo, hi pairs.
type workList struct {
	bounds []int
}

func (w *workList) push(lo, hi int) {
	w.bounds = append(w.bounds, lo, hi)
}

// Removes and returns the most recently pushed range. Panics if empty.
func (w *workList) pop() (lo, hi int) {
	n := len(w.bounds)
	lo, hi = w.bounds[n-2], w.bounds[n-1]
	w.bounds = w.bounds[:n-2]
	return lo, hi
}

// Number of ranges held
func (w *workList) len() int {
	return len(w.bounds) >> 1
}

func (w *workList) empty() bool {
	return len(w.bounds) == 0
}

// Buffers larger than this many bounds are not returned to the pool
const maxPooledBounds = 1 << 16

// Pool of work lists, to reduce memory allocation overhead
var poolWorkList = sync.Pool{
	New: func() interface{} { return &workList{bounds: make([]int, 0, 64)} },
}

func getWorkList() *workList {
	return poolWorkList.Get().(*workList)
}

func putWorkList(w *workList) {
	if cap(w.bounds) > maxPooledBounds {
		return
	}
	w.bounds = w.bounds[:0]
	poolWorkList.Put(w)
}
