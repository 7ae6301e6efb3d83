// Package firing implements the firing engine: the 1-D coalescence
// step that moves a token toward the formula root along one axis, and
// the redundancy prune that removes tokens whose parent is already
// realised on every axis.
package firing

import (
	"github.com/adamlassiter/coalescence/formula"
	"github.com/adamlassiter/coalescence/net"
	"github.com/adamlassiter/coalescence/token"
)

// Coalesce1D performs a single fire-or-prune action along axis on net,
// per spec.md §4.5. It iterates tokens in ascending lexicographic
// order; on the first token where an action is possible, it performs
// exactly that one action and stops (the store is being structurally
// mutated mid-iteration, so iteration must not continue past a
// mutation — spec.md §4.2/§9). Returns whether an action was taken.
func Coalesce1D(n *net.Net, axis int) bool {
	fired := false
	n.Tokens.Ascend(func(t token.Token) bool {
		this := n.Symbols[t[axis]]
		parent := this.Parent
		if parent == nil {
			// at a partial root on this axis: nothing to do, keep scanning
			return true
		}

		parentCandidate := t.With(axis, parent.I)

		if n.Places.Get(parentCandidate) {
			if pruneRedundant(n, t) {
				fired = true
				return false
			}
			// redundancy test failed on some axis: no action for this
			// token, keep scanning.
			return true
		}

		sibling := this.Sibling()
		siblingCandidate := t.With(axis, sibling.I)
		if tryFire(n, t, axis, parent, siblingCandidate) {
			fired = true
			return false
		}
		return true
	})
	return fired
}

// pruneRedundant implements spec.md §4.5 step 3: t is removed iff,
// for every axis, the symbol at that coordinate has a parent and the
// corresponding parent-candidate token is already present in the
// grid. The grid cell for t itself is left set (monotone, never
// cleared).
func pruneRedundant(n *net.Net, t token.Token) bool {
	for d := 0; d < len(t); d++ {
		sym := n.Symbols[t[d]]
		parent := sym.Parent
		if parent == nil {
			return false
		}
		candidate := t.With(d, parent.I)
		if !n.Places.Get(candidate) {
			return false
		}
	}
	n.Tokens.Remove(t)
	return true
}

// tryFire implements spec.md §4.5 step 4: fire iff the sibling's peer
// token is already present in the grid, or the parent is an Or node
// (which needs only one premise). On fire, t is replaced by its
// axis-coordinate moved up to the parent.
func tryFire(n *net.Net, t token.Token, axis int, parent *formula.Node, siblingCandidate token.Token) bool {
	if !(n.Places.Get(siblingCandidate) || parent.Kind == formula.Or) {
		return false
	}
	n.Tokens.Remove(t)
	next := t.With(axis, parent.I)
	n.Places.Set(next)
	n.Tokens.Insert(next)
	return true
}

// Sweep runs Coalesce1D once for every axis 0..n-1, always invoking
// every axis regardless of earlier results in the same sweep (mirrors
// the C original's `fired |= petri_net_1d_coalescence(...)` loop, which
// never short-circuits the per-axis call). Returns whether any axis
// fired during this sweep.
func Sweep(n *net.Net) bool {
	fired := false
	for d := 0; d < n.Tokens.Dimension(); d++ {
		if Coalesce1D(n, d) {
			fired = true
		}
	}
	return fired
}
