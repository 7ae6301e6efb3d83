// Package token implements the canonical token type and the ordered
// token store the firing engine iterates.
//
// A Token is an n-tuple of subformula indices, always stored in
// non-decreasing order: canonicality is the identity criterion. The
// dimension n is simply len(Token) — every token alive in one Store
// shares the same width, so the store's comparator never needs to
// consult an ambient, process-wide dimension (spec §9's "ambient
// comparator dimension" design note).
package token

import "sort"

// Token is a canonical (sorted, non-decreasing) n-tuple of subformula
// indices.
type Token []int

// Canonical returns a sorted copy of t. t itself is never mutated in
// place by callers that still hold a reference to it (tokens are
// logically immutable once canonical).
func Canonical(t []int) Token {
	out := make(Token, len(t))
	copy(out, t)
	sort.Ints(out)
	return out
}

// With returns the canonical token obtained from t by replacing the
// component at index axis with value, leaving t itself untouched.
func (t Token) With(axis, value int) Token {
	out := make([]int, len(t))
	copy(out, t)
	out[axis] = value
	return Canonical(out)
}

// Equal reports whether two tokens are componentwise equal. Both must
// already be canonical (the usual case, since Token is never
// constructed any other way by this package).
func (t Token) Equal(other Token) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// Less implements a lexicographic ordering over tokens of equal width.
// This is the comparator google/btree's Item interface requires; it
// never reads any state outside the two tokens being compared.
func (t Token) Less(other Token) bool {
	n := len(t)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if t[i] != other[i] {
			return t[i] < other[i]
		}
	}
	return len(t) < len(other)
}

// Clone returns a copy of t.
func (t Token) Clone() Token {
	out := make(Token, len(t))
	copy(out, t)
	return out
}
