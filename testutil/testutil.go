// Package testutil provides fixtures for tests and benchmarks: seeded random
// binary matrices, implanted biclusters, and a naive containment check used
// as ground truth against the bit-parallel engine.
package testutil

import (
	"math/rand"

	"github.com/hupe1980/bibit/matrix"
)

// RNG encapsulates a seeded random number generator so fixtures are
// reproducible across runs.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Values generates a rows×cols 0/1 slice where each cell is 1 with the given
// density.
func (r *RNG) Values(rows, cols int, density float64) [][]int {
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
		for j := range out[i] {
			if r.rand.Float64() < density {
				out[i][j] = 1
			}
		}
	}
	return out
}

// BinaryMatrix generates a random matrix with the given density. It panics on
// constructor errors since the generated values are binary by construction.
func (r *RNG) BinaryMatrix(rows, cols int, density float64) *matrix.BinaryMatrix {
	m, err := matrix.FromInts(r.Values(rows, cols, density))
	if err != nil {
		panic(err)
	}
	return m
}

// Implant sets every cell at the cross product of rows and cols to 1,
// planting a known all-ones submatrix into the values.
func Implant(values [][]int, rows, cols []int) {
	for _, i := range rows {
		for _, j := range cols {
			values[i][j] = 1
		}
	}
}

// AllOnes reports whether every given row of m carries a 1 in every given
// column. This is the per-cell reference for the engine's word-level
// containment test.
func AllOnes(m *matrix.BinaryMatrix, rows, cols []uint32) bool {
	for _, i := range rows {
		for _, j := range cols {
			if m.At(int(i), int(j)) != 1 {
				return false
			}
		}
	}
	return true
}
