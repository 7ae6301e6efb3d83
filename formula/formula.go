// Package formula implements the propositional formula tree: the
// alphabet that tokens, nets and substitutions all operate on.
//
// A Node is a tagged variant over {Top, Atom, NotAtom, And, Or}. Every
// node carries a parent back-reference (nil at the root) and a dense
// pre-order index assigned by Index. The tree is immutable once indexed;
// Substitute (package subst) builds a fresh tree rather than mutating
// this one.
package formula

import "fmt"

// Kind tags the variant a Node holds.
type Kind int

const (
	Top Kind = iota
	Atom
	NotAtom
	And
	Or
)

func (k Kind) String() string {
	switch k {
	case Top:
		return "Top"
	case Atom:
		return "Atom"
	case NotAtom:
		return "NotAtom"
	case And:
		return "And"
	case Or:
		return "Or"
	default:
		return "Unknown"
	}
}

// Node is one node of a formula tree. Symbol is meaningful only for
// Atom/NotAtom. Left/Right are nil for Top/Atom/NotAtom.
type Node struct {
	Kind   Kind
	Symbol string
	Left   *Node
	Right  *Node
	Parent *Node

	// I is the dense pre-order index assigned by Index. Valid only
	// after Index has run on the root of this tree.
	I int
}

// NewTop builds a Top (⊤) node.
func NewTop() *Node { return &Node{Kind: Top} }

// NewAtom builds an Atom(symbol) node.
func NewAtom(symbol string) *Node { return &Node{Kind: Atom, Symbol: symbol} }

// NewNotAtom builds a NotAtom(symbol) node.
func NewNotAtom(symbol string) *Node { return &Node{Kind: NotAtom, Symbol: symbol} }

// NewAnd builds an And(left, right) node and wires parent links.
func NewAnd(left, right *Node) *Node {
	n := &Node{Kind: And, Left: left, Right: right}
	left.Parent = n
	right.Parent = n
	return n
}

// NewOr builds an Or(left, right) node and wires parent links.
func NewOr(left, right *Node) *Node {
	n := &Node{Kind: Or, Left: left, Right: right}
	left.Parent = n
	right.Parent = n
	return n
}

// Sibling returns the other child of n's parent. Panics if n has no
// parent or the parent is malformed (missing a child) — per spec, a
// constructed And/Or missing a child is a programming error in a
// collaborator, not a condition this package recovers from.
func (n *Node) Sibling() *Node {
	p := n.Parent
	if p == nil {
		panic("formula: Sibling called on a root node")
	}
	switch {
	case p.Left == n:
		if p.Right == nil {
			panic("formula: malformed tree, parent missing right child")
		}
		return p.Right
	case p.Right == n:
		if p.Left == nil {
			panic("formula: malformed tree, parent missing left child")
		}
		return p.Left
	default:
		panic("formula: malformed tree, parent does not own this child")
	}
}

// Index assigns dense pre-order indices starting at start, returning
// the next free index. Call on the root of a freshly built (or
// substituted) tree before using it with token/net/firing/search.
func Index(f *Node, start int) int {
	f.I = start
	next := start + 1
	if f.Left != nil {
		next = Index(f.Left, next)
	}
	if f.Right != nil {
		next = Index(f.Right, next)
	}
	return next
}

// Flatten returns an index -> node table of length Length(f), built by
// a pre-order walk. f must already be indexed.
func Flatten(f *Node) []*Node {
	table := make([]*Node, Length(f))
	var walk func(*Node)
	walk = func(n *Node) {
		table[n.I] = n
		if n.Left != nil {
			walk(n.Left)
		}
		if n.Right != nil {
			walk(n.Right)
		}
	}
	walk(f)
	return table
}

// Length returns the number of nodes in f's tree.
func Length(f *Node) int {
	n := 1
	if f.Left != nil {
		n += Length(f.Left)
	}
	if f.Right != nil {
		n += Length(f.Right)
	}
	return n
}

// NFreeNames counts the distinct atomic symbols (across both Atom and
// NotAtom occurrences) appearing in f.
func NFreeNames(f *Node) int {
	seen := make(map[string]struct{})
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Kind == Atom || n.Kind == NotAtom {
			seen[n.Symbol] = struct{}{}
		}
		if n.Left != nil {
			walk(n.Left)
		}
		if n.Right != nil {
			walk(n.Right)
		}
	}
	walk(f)
	return len(seen)
}

// String renders a compact debug form; pretty.Print is the
// user-facing printer (package pretty).
func (n *Node) String() string {
	switch n.Kind {
	case Top:
		return "T"
	case Atom:
		return n.Symbol
	case NotAtom:
		return "¬" + n.Symbol
	case And:
		return fmt.Sprintf("(%s ∧ %s)", n.Left, n.Right)
	case Or:
		return fmt.Sprintf("(%s ∨ %s)", n.Left, n.Right)
	default:
		return "?"
	}
}
