// Package grid implements the place grid: a dense n-dimensional
// boolean array over [0,length)^n, indexed by a canonical token.
//
// Semantically it is a membership cache that is monotone set-once per
// cell during a single dimension's firing: cells are set true when a
// token enters the store and are never cleared when a token is
// removed (spec.md §3). The n-dimensional array is linearised
// row-major into a single bits-and-blooms/bitset.BitSet, which packs
// the len^n booleans 64 to a word instead of spending a whole byte (or
// word, for a naive []bool) per cell.
package grid

import "github.com/bits-and-blooms/bitset"

// Grid is a dense n-dimensional boolean grid, each axis of length
// Length.
type Grid struct {
	bits   *bitset.BitSet
	n      int
	length int
}

// New allocates a fresh Grid with n axes each of length length. Every
// cell starts false.
func New(n, length int) *Grid {
	size := uint(1)
	for i := 0; i < n; i++ {
		size *= uint(length)
	}
	return &Grid{
		bits:   bitset.New(size),
		n:      n,
		length: length,
	}
}

// linearize converts a canonical n-tuple into a row-major flat index.
func (g *Grid) linearize(tuple []int) uint {
	if len(tuple) != g.n {
		panic("grid: tuple dimension mismatch")
	}
	idx := uint(0)
	for _, v := range tuple {
		if v < 0 || v >= g.length {
			panic("grid: tuple component out of range")
		}
		idx = idx*uint(g.length) + uint(v)
	}
	return idx
}

// Get reports whether a token with this (assumed canonical) index
// tuple has ever been present.
func (g *Grid) Get(tuple []int) bool {
	return g.bits.Test(g.linearize(tuple))
}

// Set marks the cell for tuple. The grid is monotone set-once: callers
// never need (and this type provides no) way to clear a cell, matching
// spec.md's place-grid invariant.
func (g *Grid) Set(tuple []int) {
	g.bits.Set(g.linearize(tuple))
}

// Dimension returns n, the number of axes.
func (g *Grid) Dimension() int { return g.n }

// Length returns the per-axis length (the formula size).
func (g *Grid) Length() int { return g.length }
