package pretty

import (
	"bytes"
	"testing"

	"github.com/adamlassiter/coalescence/formula"
)

func TestPrintPlain(t *testing.T) {
	f := formula.NewOr(formula.NewAtom("a"), formula.NewNotAtom("a"))
	if got, want := Print(f, false), "(a ∨ ¬a)"; got != want {
		t.Errorf("Print(plain) = %q, want %q", got, want)
	}
}

func TestPrintLatex(t *testing.T) {
	f := formula.NewAnd(formula.NewAtom("a"), formula.NewNotAtom("b"))
	if got, want := Print(f, true), `(a \land \lnot b)`; got != want {
		t.Errorf("Print(latex) = %q, want %q", got, want)
	}
}

func TestSubstitutionHookSuppressed(t *testing.T) {
	var buf bytes.Buffer
	hook := SubstitutionHook(&buf, false)
	hook(formula.NewAtom("a"), 'A', true)
	if buf.Len() != 0 {
		t.Errorf("suppressed hook should write nothing, got %q", buf.String())
	}
}

func TestSubstitutionHookWrites(t *testing.T) {
	var buf bytes.Buffer
	hook := SubstitutionHook(&buf, false)
	hook(formula.NewOr(formula.NewAtom("a"), formula.NewNotAtom("a")), 'A', false)
	if got, want := buf.String(), "A := (a ∨ ¬a)\n"; got != want {
		t.Errorf("hook wrote %q, want %q", got, want)
	}
}
