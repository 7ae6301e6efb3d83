package net

import (
	"github.com/adamlassiter/coalescence/formula"
	"github.com/adamlassiter/coalescence/grid"
	"github.com/adamlassiter/coalescence/token"
)

// seedPairs enumerates all unordered pairs (i,j), i<=j, of subformula
// indices and seeds a 2-token for each pair satisfying the Top rule
// (either side is Top) or the Axiom rule (Atom(s) paired with
// NotAtom(s) for the same symbol s). Duplicates after canonical sort
// are discarded by the store's set semantics.
func seedPairs(symbols []*formula.Node) *token.Store {
	store := token.NewStore(2)
	length := len(symbols)
	for i := 0; i < length; i++ {
		a := symbols[i]
		for j := i; j < length; j++ {
			b := symbols[j]
			if seedsToken(a, b) {
				store.Insert(token.Canonical([]int{i, j}))
			}
		}
	}
	return store
}

func seedsToken(a, b *formula.Node) bool {
	if a.Kind == formula.Top || b.Kind == formula.Top {
		return true
	}
	axiom := func(x, y *formula.Node) bool {
		return x.Kind == formula.Atom && y.Kind == formula.NotAtom && x.Symbol == y.Symbol
	}
	return axiom(a, b) || axiom(b, a)
}

// extrapolate extends an existing k-dimensional token set to k+1
// dimensions: for each k-token t and each subformula index m, append m
// and canonicalise. Duplicates are discarded by the store's set
// semantics.
//
// Per spec.md §9 "Token enumeration omissions", this reproduces the
// original's documented FIXME: it only appends the new index to each
// existing token once, rather than also enumerating permutations of
// which position in the (k+1)-tuple the new coordinate could occupy
// relative to ties. The result is still every k-token extended
// (preservation, spec.md §8 invariant 5) but not, in general, every
// combinatorially possible (k+1)-token. This is deliberate: spec.md
// instructs a faithful rewrite to reproduce this behaviour rather than
// silently "fixing" it.
func extrapolate(old *token.Store, length int) *token.Store {
	next := token.NewStore(old.Dimension() + 1)
	old.Ascend(func(t token.Token) bool {
		for m := 0; m < length; m++ {
			extended := make([]int, len(t)+1)
			copy(extended, t)
			extended[len(t)] = m
			next.Insert(token.Canonical(extended))
		}
		return true
	})
	return next
}

// Build constructs a Net at dimension n over f: seed the 2-D token set
// from the pair rules, then extrapolate up through n, finally
// populating the place grid from the resulting n-token set. n must be
// >= 2.
func Build(f *formula.Node, n int) *Net {
	if n < 2 {
		panic("net: dimension must be >= 2")
	}
	symbols := formula.Flatten(f)
	length := len(symbols)

	tokens := seedPairs(symbols)
	for k := 2; k < n; k++ {
		tokens = extrapolate(tokens, length)
	}

	result := &Net{
		Symbols: symbols,
		Len:     length,
		Tokens:  tokens,
		Places:  grid.New(n, length),
	}
	result.PopulateGrid()
	return result
}
