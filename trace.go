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
	"github.com/mlnoga/qsort/internal"
)

// Logs one line per probe event through the internal log writer.
type Tracer struct {
	Prefix string
}

func (t Tracer) Frame(depth int) {
	internal.LogPrintf("%sframe %d\n", t.Prefix, depth)
}

func (t Tracer) Partition(lo, hi, p int) {
	internal.LogPrintf("%spartition [%d,%d] pivot at %d\n", t.Prefix, lo, hi, p)
}

func (t Tracer) Pending(n int) {
	internal.LogPrintf("%spending %d\n", t.Prefix, n)
}
