// Package subst implements the subproof-substitution optimisation:
// replacing any subformula whose all-same-index token is present with
// a fresh ⊤ carrying a fresh free-variable name.
package subst

import (
	"github.com/adamlassiter/coalescence/formula"
	"github.com/adamlassiter/coalescence/net"
	"github.com/adamlassiter/coalescence/token"
)

// PrintHook is the substitution print hook contract of spec.md §6: a
// callable invoked exactly once per substitution discovered. Unless
// suppress is true, it should emit "<v> := <print(f)>" somewhere
// (typically stdout). The engine always invokes it when a subformula
// is substituted, independent of whether the caller chooses to apply
// the reduced formula (see Result.Substituted and search.Search's use
// of it) — suppress is the knob a caller uses to silence output
// without skipping the computation.
type PrintHook func(f *formula.Node, v byte, suppress bool)

// NoopHook never prints; useful in tests that only care about the
// resulting formula.
func NoopHook(*formula.Node, byte, bool) {}

// Result carries the outcome of one Substitute call: the rebuilt
// formula, whether any substitution occurred anywhere in it, and the
// next unused free-variable letter.
type Result struct {
	Formula     *formula.Node
	Substituted bool
	NextFreeVar byte
}

// Substitute performs spec.md §4.7's recursive descent over root using
// n's token store/grid to test provedness. freeVar is the first
// free-variable letter to use (the caller threads NextFreeVar through
// successive calls so letters are never reused within one round).
// suppress is forwarded to hook unchanged.
func Substitute(n *net.Net, root *formula.Node, freeVar byte, suppress bool, hook PrintHook) Result {
	if root.Kind == formula.And || root.Kind == formula.Or {
		dim := n.Tokens.Dimension()
		allSame := make([]int, dim)
		for i := range allSame {
			allSame[i] = root.I
		}
		if n.Places.Get(token.Canonical(allSame)) {
			hook(root, freeVar, suppress)
			fresh := formula.NewTop()
			fresh.Symbol = string(freeVar)
			return Result{Formula: fresh, Substituted: true, NextFreeVar: freeVar + 1}
		}

		left := Substitute(n, root.Left, freeVar, suppress, hook)
		right := Substitute(n, root.Right, left.NextFreeVar, suppress, hook)

		var rebuilt *formula.Node
		if root.Kind == formula.And {
			rebuilt = formula.NewAnd(left.Formula, right.Formula)
		} else {
			rebuilt = formula.NewOr(left.Formula, right.Formula)
		}
		formula.Index(rebuilt, 0)
		return Result{
			Formula:     rebuilt,
			Substituted: left.Substituted || right.Substituted,
			NextFreeVar: right.NextFreeVar,
		}
	}

	// Top/Atom/NotAtom pass through unchanged (as a fresh node, so the
	// rebuilt tree owns its own nodes and can be re-indexed/re-parented
	// independently of root's old tree).
	var leaf *formula.Node
	switch root.Kind {
	case formula.Top:
		leaf = formula.NewTop()
		leaf.Symbol = root.Symbol
	case formula.Atom:
		leaf = formula.NewAtom(root.Symbol)
	case formula.NotAtom:
		leaf = formula.NewNotAtom(root.Symbol)
	default:
		panic("subst: malformed formula node")
	}
	formula.Index(leaf, 0)
	return Result{Formula: leaf, Substituted: false, NextFreeVar: freeVar}
}
