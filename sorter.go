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
	"errors"
	"fmt"
)

// A quicksort control-flow variant. All variants share Partition and differ only
// in how pending ranges are tracked.
type Sorter int

const (
	Recursive        Sorter = iota // SortRecursive
	Bounded                        // SortBounded
	Iterative                      // SortIterative
	IterativeBounded               // SortIterativeBounded
)

var sorterNames = [...]string{
	Recursive:        "recursive",
	Bounded:          "bounded",
	Iterative:        "iterative",
	IterativeBounded: "iterative-bounded",
}

var ErrUnknownSorter = errors.New("unknown sorter")

// Returns all sorter variants in declaration order
func Sorters() []Sorter {
	return []Sorter{Recursive, Bounded, Iterative, IterativeBounded}
}

// Looks up a sorter variant by the name returned from String()
func ParseSorter(name string) (Sorter, error) {
	for i, n := range sorterNames {
		if n == name {
			return Sorter(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSorter, name)
}

func (s Sorter) String() string {
	if s >= 0 && int(s) < len(sorterNames) {
		return sorterNames[s]
	}
	return fmt.Sprintf("Sorter(%d)", int(s))
}

// Sorts a[lo..hi] in ascending order with this variant
func (s Sorter) Sort(a []int, lo, hi int) {
	s.SortProbe(a, lo, hi, nil)
}

// Sorts a[lo..hi] in ascending order with this variant, reporting progress to the
// given probe. A nil probe is allowed.
func (s Sorter) SortProbe(a []int, lo, hi int, probe Probe) {
	switch s {
	case Recursive:
		sortRecursive(a, lo, hi, 1, probe)
	case Bounded:
		sortBounded(a, lo, hi, 1, probe)
	case Iterative:
		sortIterative(a, lo, hi, probe)
	case IterativeBounded:
		sortIterativeBounded(a, lo, hi, probe)
	default:
		panic(fmt.Sprintf("qsort: unknown %v", s))
	}
}

// Sorts the whole slice with this variant
func (s Sorter) SortSlice(a []int) {
	s.Sort(a, 0, len(a)-1)
}

// Sorts a slice of int in ascending order
func Ints(a []int) {
	SortBounded(a, 0, len(a)-1)
}

// Select kth lowest element from a slice of int, with k counting from 1.
// Partially reorders the slice. Panics unless 1<=k<=len(a).
func Select(a []int, k int) int {
	if k < 1 || k > len(a) {
		panic(fmt.Sprintf("qsort: select rank %d out of range [1,%d]", k, len(a)))
	}
	index := k - 1
	lo, hi := 0, len(a)-1
	for lo < hi {
		p := Partition(a, lo, hi)
		if index == p {
			return a[p]
		} else if index < p {
			hi = p - 1
		} else {
			lo = p + 1
		}
	}
	return a[lo]
}

// Select median of a slice of int. For even lengths this is the upper median.
// Partially reorders the slice.
func Median(a []int) int {
	return Select(a, (len(a)>>1)+1)
}
