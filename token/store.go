package token

import "github.com/google/btree"

// btreeDegree is the branching factor handed to google/btree. The
// store never holds more than len^n tokens for the dimension cap
// spec.md imposes, so a modest fixed degree is plenty.
const btreeDegree = 32

// item adapts a Token to btree.Item.
type item Token

func (a item) Less(than btree.Item) bool {
	return Token(a).Less(Token(than.(item)))
}

// Store is a totally-ordered set of tokens under lexicographic
// comparison, supporting insert, remove, membership and in-order
// iteration. Ownership of inserted tokens transfers to the Store.
type Store struct {
	tree *btree.BTree
	n    int // dimension: every token in this store has this width
}

// NewStore creates an empty Store for tokens of dimension n.
func NewStore(n int) *Store {
	return &Store{tree: btree.New(btreeDegree), n: n}
}

// Dimension returns the token width this store was built for.
func (s *Store) Dimension() int { return s.n }

// Len returns the number of tokens currently in the store.
func (s *Store) Len() int { return s.tree.Len() }

// Has reports whether t (assumed canonical) is present.
func (s *Store) Has(t Token) bool {
	return s.tree.Has(item(t))
}

// Insert adds t (assumed canonical) to the store. Re-inserting an
// already-present token is a no-op (idempotent, as for any set).
func (s *Store) Insert(t Token) {
	s.tree.ReplaceOrInsert(item(t.Clone()))
}

// Remove deletes t (assumed canonical) from the store, if present.
func (s *Store) Remove(t Token) {
	s.tree.Delete(item(t))
}

// Ascend iterates the store's tokens in ascending lexicographic order,
// calling visit for each. Per spec.md §4.2, the engine's contract is
// to break out of iteration immediately after any fire or prune: visit
// returns false to stop early, true to continue. Ascend itself never
// mutates the store; callers must not call Insert/Remove from inside
// visit and keep iterating afterwards — stop (return false) and
// restart a fresh Ascend instead.
func (s *Store) Ascend(visit func(Token) bool) {
	s.tree.Ascend(func(i btree.Item) bool {
		return visit(Token(i.(item)))
	})
}

// All returns a snapshot slice of every token currently in the store,
// in ascending order. Useful for tests and for the post-extrapolation
// population pass.
func (s *Store) All() []Token {
	out := make([]Token, 0, s.tree.Len())
	s.Ascend(func(t Token) bool {
		out = append(out, t)
		return true
	})
	return out
}
