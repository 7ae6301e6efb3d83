// Package net builds and owns the n-dimensional Petri net a single
// search dimension fires over: the formula's flattened symbol table,
// the token store and the place grid.
package net

import (
	"github.com/adamlassiter/coalescence/formula"
	"github.com/adamlassiter/coalescence/grid"
	"github.com/adamlassiter/coalescence/token"
)

// Net owns everything one dimension's coalescence needs. A Net is
// built fresh for each dimension the search driver tries and is
// discarded once that dimension finishes (left for the garbage
// collector — no manual free, unlike the C original's
// petri_net_free).
type Net struct {
	Symbols []*formula.Node // index -> node, from formula.Flatten
	Len     int             // formula size, = len(Symbols)
	Tokens  *token.Store
	Places  *grid.Grid
}

// New builds an empty Net of dimension n over f's flattened symbol
// table. Tokens and Places are allocated but not yet populated; callers
// seed/extrapolate the token set and then call PopulateGrid.
func New(f *formula.Node, n int) *Net {
	symbols := formula.Flatten(f)
	return &Net{
		Symbols: symbols,
		Len:     len(symbols),
		Tokens:  token.NewStore(n),
		Places:  grid.New(n, len(symbols)),
	}
}

// PopulateGrid walks the current token set once, marking every entry
// true in the place grid. Per spec.md §4.4, this runs once after
// extrapolation completes, before firing begins.
func (net *Net) PopulateGrid() {
	net.Tokens.Ascend(func(t token.Token) bool {
		net.Places.Set(t)
		return true
	})
}
