// Package pretty implements the "Formula printer (external)" contract
// of spec.md §6: a presentation-mode-aware pretty-printer for formula
// trees, plus a subst.PrintHook constructor for the substitution
// announcement line the original CLI prints ("<v> := <formula>").
package pretty

import (
	"fmt"
	"io"

	"github.com/adamlassiter/coalescence/formula"
	"github.com/adamlassiter/coalescence/subst"
)

// Print renders f in either plain-text or LaTeX presentation.
func Print(f *formula.Node, latex bool) string {
	if latex {
		return printLatex(f)
	}
	return printPlain(f)
}

func printPlain(n *formula.Node) string {
	switch n.Kind {
	case formula.Top:
		return "T"
	case formula.Atom:
		return n.Symbol
	case formula.NotAtom:
		return "¬" + n.Symbol
	case formula.And:
		return fmt.Sprintf("(%s ∧ %s)", printPlain(n.Left), printPlain(n.Right))
	case formula.Or:
		return fmt.Sprintf("(%s ∨ %s)", printPlain(n.Left), printPlain(n.Right))
	default:
		return "?"
	}
}

func printLatex(n *formula.Node) string {
	switch n.Kind {
	case formula.Top:
		return `\top`
	case formula.Atom:
		return n.Symbol
	case formula.NotAtom:
		return `\lnot ` + n.Symbol
	case formula.And:
		return fmt.Sprintf(`(%s \land %s)`, printLatex(n.Left), printLatex(n.Right))
	case formula.Or:
		return fmt.Sprintf(`(%s \lor %s)`, printLatex(n.Left), printLatex(n.Right))
	default:
		return "?"
	}
}

// SubstitutionHook returns a subst.PrintHook that writes
// "<v> := <printed subformula>" to w, in the presentation chosen by
// latex, whenever a substitution is not suppressed.
func SubstitutionHook(w io.Writer, latex bool) subst.PrintHook {
	return func(f *formula.Node, v byte, suppress bool) {
		if suppress {
			return
		}
		fmt.Fprintf(w, "%c := %s\n", v, Print(f, latex))
	}
}
