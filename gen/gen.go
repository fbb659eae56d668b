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

// Package gen fills int slices with test inputs of well-known shapes,
// from uniformly random to the sorted and reverse-sorted worst cases of
// first-element pivot selection.
package gen

import (
	"errors"
	"fmt"
	"math"

	"github.com/valyala/fastrand"
)

// Shape of a generated input
type Shape int

const (
	Random    Shape = iota // uniform values in [0,n)
	Sorted                 // 0, 1, ..., n-1
	Reversed               // n-1, ..., 1, 0
	Constant               // all zero
	OrganPipe              // ascending to the middle, then descending
	Sawtooth               // ascending runs of length about sqrt(n)
	FewUnique              // uniform values in [0,fewUniqueValues)
)

const fewUniqueValues = 8

var shapeNames = [...]string{
	Random:    "random",
	Sorted:    "sorted",
	Reversed:  "reversed",
	Constant:  "constant",
	OrganPipe: "organpipe",
	Sawtooth:  "sawtooth",
	FewUnique: "fewunique",
}

var ErrUnknownShape = errors.New("unknown shape")

// Returns all shapes in declaration order
func Shapes() []Shape {
	shapes := make([]Shape, len(shapeNames))
	for i := range shapes {
		shapes[i] = Shape(i)
	}
	return shapes
}

func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownShape, name)
}

func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Returns a generator seeded for reproducible output. Seed zero picks a random seed.
func NewRNG(seed uint32) *fastrand.RNG {
	rng := &fastrand.RNG{}
	rng.Seed(seed)
	return rng
}

// Returns a random non-zero seed
func RandomSeed() uint32 {
	for {
		if seed := fastrand.Uint32(); seed != 0 {
			return seed
		}
	}
}

// Creates a new slice of length n with the given shape
func New(n int, s Shape, rng *fastrand.RNG) []int {
	a := make([]int, n)
	Fill(a, s, rng)
	return a
}

// Overwrites a with values of the given shape. The generator is only used by
// the random shapes. Panics on an unknown shape.
func Fill(a []int, s Shape, rng *fastrand.RNG) {
	n := len(a)
	switch s {
	case Random:
		for i := range a {
			a[i] = int(rng.Uint32n(uint32(n)))
		}
	case Sorted:
		for i := range a {
			a[i] = i
		}
	case Reversed:
		for i := range a {
			a[i] = n - 1 - i
		}
	case Constant:
		for i := range a {
			a[i] = 0
		}
	case OrganPipe:
		for i := range a {
			if i < n-1-i {
				a[i] = i
			} else {
				a[i] = n - 1 - i
			}
		}
	case Sawtooth:
		period := int(math.Sqrt(float64(n)))
		if period < 1 {
			period = 1
		}
		for i := range a {
			a[i] = i % period
		}
	case FewUnique:
		for i := range a {
			a[i] = int(rng.Uint32n(fewUniqueValues))
		}
	default:
		panic(fmt.Sprintf("gen: unknown %v", s))
	}
}

// Randomly permutes a in place (Fisher-Yates)
func Shuffle(a []int, rng *fastrand.RNG) {
	for i := len(a) - 1; i > 0; i-- {
		j := int(rng.Uint32n(uint32(i + 1)))
		a[i], a[j] = a[j], a[i]
	}
}
