package net

import (
	"testing"

	"github.com/adamlassiter/coalescence/formula"
	"github.com/adamlassiter/coalescence/token"
)

func TestSeedPairsTopRule(t *testing.T) {
	// T alone: index 0 is Top, pairs with itself.
	f := formula.NewTop()
	formula.Index(f, 0)
	symbols := formula.Flatten(f)

	store := seedPairs(symbols)
	if !store.Has(token.Canonical([]int{0, 0})) {
		t.Errorf("Top rule should seed (0,0)")
	}
}

func TestSeedPairsAxiomRule(t *testing.T) {
	// a ∨ ¬a : index 0 = Or, 1 = Atom(a), 2 = NotAtom(a)
	f := formula.NewOr(formula.NewAtom("a"), formula.NewNotAtom("a"))
	formula.Index(f, 0)
	symbols := formula.Flatten(f)

	store := seedPairs(symbols)
	if !store.Has(token.Canonical([]int{1, 2})) {
		t.Errorf("Axiom rule should seed (1,2) for a/¬a pair, got tokens %v", store.All())
	}
}

func TestSeedPairsNoSpuriousAxiom(t *testing.T) {
	// a ∧ ¬b : mismatched symbols must not seed an axiom token.
	f := formula.NewAnd(formula.NewAtom("a"), formula.NewNotAtom("b"))
	formula.Index(f, 0)
	symbols := formula.Flatten(f)

	store := seedPairs(symbols)
	if store.Has(token.Canonical([]int{1, 2})) {
		t.Errorf("mismatched atom/notatom should not seed a token")
	}
}

func TestExtrapolatePreservesPrefix(t *testing.T) {
	// spec.md §8 invariant 5: every k-token is the prefix (after sort)
	// of at least one (k+1)-token produced by extrapolation.
	f := formula.NewOr(formula.NewAtom("a"), formula.NewNotAtom("a"))
	formula.Index(f, 0)
	symbols := formula.Flatten(f)
	length := len(symbols)

	two := seedPairs(symbols)
	three := extrapolate(two, length)

	two.Ascend(func(kTok token.Token) bool {
		found := false
		three.Ascend(func(kPlus1 token.Token) bool {
			// kTok should be a sub-multiset obtainable by appending one
			// index and re-sorting: check by trying every possible
			// removal of one coordinate from kPlus1.
			if containsAsPrefixAfterRemovingOne(kPlus1, kTok) {
				found = true
				return false
			}
			return true
		})
		if !found {
			t.Errorf("k-token %v has no (k+1)-extension in extrapolated set", kTok)
		}
		return true
	})
}

func containsAsPrefixAfterRemovingOne(big, small token.Token) bool {
	if len(big) != len(small)+1 {
		return false
	}
	for skip := 0; skip < len(big); skip++ {
		reduced := make([]int, 0, len(small))
		for i, v := range big {
			if i == skip {
				continue
			}
			reduced = append(reduced, v)
		}
		if token.Canonical(reduced).Equal(small) {
			return true
		}
	}
	return false
}

func TestBuildDimensionTwo(t *testing.T) {
	f := formula.NewOr(formula.NewAtom("a"), formula.NewNotAtom("a"))
	formula.Index(f, 0)

	n := Build(f, 2)
	if n.Tokens.Dimension() != 2 {
		t.Errorf("Build(f,2) token store dimension = %d, want 2", n.Tokens.Dimension())
	}
	if n.Places.Dimension() != 2 {
		t.Errorf("Build(f,2) grid dimension = %d, want 2", n.Places.Dimension())
	}
	// grid must be populated from the seeded tokens
	n.Tokens.Ascend(func(tk token.Token) bool {
		if !n.Places.Get(tk) {
			t.Errorf("grid cell for seeded token %v should be set", tk)
		}
		return true
	})
}
