// This file is part of cgol.
//
// cgol is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cgol is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cgol.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed used when no seed is specified
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Random is a random number generator for grid initialisation.
type Random struct {
	seed uint64

	// use zero seed rather than the random base seed. this is only really
	// useful for testing where random numbers must be predictable
	ZeroSeed bool

	// the sequential stream used by Intn()
	stream *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means that the base seed is used. The base seed is different
// for every run of the program.
func NewRandom(seed int64) *Random {
	return &Random{
		seed: uint64(seed),
	}
}

// Seed returns the seed that is in effect. Passing the value to NewRandom()
// will reproduce the same numbers.
func (rnd *Random) Seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	if rnd.seed == 0 {
		return int64(baseSeed)
	}
	return int64(rnd.seed)
}

// Cell returns a number in the range [0.0,1.0) for the cell at the row and
// column.
func (rnd *Random) Cell(row int, col int) float64 {
	key := uint64(uint32(row))<<32 | uint64(uint32(col))
	return rand.New(rand.NewPCG(uint64(rnd.Seed()), key)).Float64()
}

// Intn returns the next number in the range [0,n) from a sequence that
// depends only on the seed. The function will panic if n <= 0.
func (rnd *Random) Intn(n int) int {
	if rnd.stream == nil {
		rnd.stream = rand.New(rand.NewPCG(uint64(rnd.Seed()), 0x636f6c67))
	}
	return rnd.stream.IntN(n)
}
