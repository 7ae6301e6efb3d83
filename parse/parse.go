// Package parse turns the textual formula surface syntax into a
// formula.Node tree, filling the external "Formula parser" contract
// spec.md §6 leaves opaque. Grammar (⊤ | T is the top constant, bare
// identifiers are atoms, ! or ¬ negates an atom only — the formula
// model has no general negation of compound subformulas, matching
// formula.Kind's Atom/NotAtom split):
//
//	formula := orExpr
//	orExpr   := andExpr ( ('|'|'∨') andExpr )*
//	andExpr  := primary ( ('&'|'∧') primary )*
//	primary  := '⊤' | 'T' | ['!'|'¬'] IDENT | '(' formula ')'
package parse

import (
	"github.com/pkg/errors"

	"github.com/adamlassiter/coalescence/formula"
)

// Parse parses src and returns a formula tree with parent links wired
// and pre-order indices assigned, per spec.md §6's parser contract.
func Parse(src string) (*formula.Node, error) {
	lexemes, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{lexemes: lexemes}
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, errors.Errorf("parse: unexpected trailing input near column %d", p.peek().col)
	}

	formula.Index(f, 0)
	return f, nil
}

type parser struct {
	lexemes []lexeme
	pos     int
}

func (p *parser) peek() lexeme {
	return p.lexemes[p.pos]
}

func (p *parser) next() lexeme {
	l := p.lexemes[p.pos]
	if p.pos < len(p.lexemes)-1 {
		p.pos++
	}
	return l
}

func (p *parser) parseOr() (*formula.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = formula.NewOr(left, right)
	}
	return left, nil
}

func (p *parser) parseAnd() (*formula.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = formula.NewAnd(left, right)
	}
	return left, nil
}

func (p *parser) parsePrimary() (*formula.Node, error) {
	l := p.peek()
	switch l.kind {
	case tokTop:
		p.next()
		return formula.NewTop(), nil

	case tokNot:
		p.next()
		ident := p.peek()
		if ident.kind != tokIdent {
			return nil, errors.Errorf("parse: %q negates only a bare atom, got %s at column %d", l.literal, ident.kind, ident.col)
		}
		p.next()
		return formula.NewNotAtom(ident.literal), nil

	case tokIdent:
		p.next()
		return formula.NewAtom(l.literal), nil

	case tokLParen:
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, errors.Errorf("parse: expected ')' at column %d", p.peek().col)
		}
		p.next()
		return inner, nil

	default:
		return nil, errors.Errorf("parse: unexpected %s at column %d", l.kind, l.col)
	}
}
