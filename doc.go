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

// Package qsort sorts slices of int in place with a first-element-pivot
// quicksort, in three control-flow variants over one shared partition step:
//
//   - SortRecursive recurses into both sides of every partition. Call depth
//     is O(n) on sorted or reverse-sorted input and large inputs of that
//     shape can exhaust the goroutine stack.
//   - SortBounded recurses into the smaller side only and loops on the
//     larger one, which bounds the call depth by floor(log2 n)+1.
//   - SortIterative keeps pending ranges on an explicit work list instead of
//     the call stack. It pushes both sides in a fixed order, so the list can
//     still grow to O(n) ranges on adversarial input.
//
// SortIterativeBounded is the work-list variant with the smaller side
// processed first, which keeps the list at O(log n) ranges.
//
// All variants take inclusive bounds lo and hi. Ranges with lo>=hi are left
// alone. Otherwise 0<=lo and hi<len(a) must hold; this is not checked beyond
// the bounds checks of the Go runtime. Sorting is not stable.
package qsort
