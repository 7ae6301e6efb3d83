// Package diagram renders a formula tree as Graphviz DOT, annotating
// each node with whether its diagonal (all-axes-equal) token is
// currently realised in the net's place grid. Adapted from the
// teacher's GenerateGraphviz (a strings.Builder walk emitting a
// digraph literal) to the formula/net domain instead of Kripke
// structures.
package diagram

import (
	"fmt"
	"strings"

	"github.com/adamlassiter/coalescence/formula"
	"github.com/adamlassiter/coalescence/net"
	"github.com/adamlassiter/coalescence/pretty"
	"github.com/adamlassiter/coalescence/token"
)

// Dot renders the formula tree under root as a Graphviz "digraph"
// string. Nodes whose diagonal token (I repeated
// built.Tokens.Dimension() times)
// is set in the place grid are filled green; the rest are left
// unfilled.
func Dot(built *net.Net, root *formula.Node) string {
	var sb strings.Builder

	sb.WriteString("digraph Coalescence {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box];\n\n")

	dim := built.Tokens.Dimension()
	var walk func(n *formula.Node)
	walk = func(n *formula.Node) {
		label := pretty.Print(n, false)
		diagonal := make([]int, dim)
		for i := range diagonal {
			diagonal[i] = n.I
		}
		proven := built.Places.Get(token.Canonical(diagonal))

		style := ""
		if proven {
			style = ", style=filled, fillcolor=lightgreen"
		}
		sb.WriteString(fmt.Sprintf("  n%d [label=\"%s\"%s];\n", n.I, escape(label), style))

		if n.Left != nil {
			sb.WriteString(fmt.Sprintf("  n%d -> n%d;\n", n.I, n.Left.I))
			walk(n.Left)
		}
		if n.Right != nil {
			sb.WriteString(fmt.Sprintf("  n%d -> n%d;\n", n.I, n.Right.I))
			walk(n.Right)
		}
	}
	walk(root)

	sb.WriteString("}\n")
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
