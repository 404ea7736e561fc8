package search

import (
	"github.com/npillmayer/forest"
)

// Ordered is a binary tree with an ordering over its elements.
//
// Compare returns a negative number if a < b, zero if a == b and a positive
// number if a > b. It has to be a total order and has to be the same for a
// tree and all of its subtrees.
type Ordered[E any, T any] interface {
	forest.Foldable[E, T]
	Compare(a, b E) int
}

// Get looks up the element equal to x. It returns the element stored in the
// tree, not x, which matters for elements which compare equal but differ in
// representation.
func Get[E any, T Ordered[E, T]](t T, x E) (E, bool) {
	type result struct {
		e     E
		found bool
	}
	res := forest.Analysis(t, func(l T, e E, r T) result {
		switch c := t.Compare(x, e); {
		case c < 0:
			v, found := Get[E](l, x)
			return result{v, found}
		case c > 0:
			v, found := Get[E](r, x)
			return result{v, found}
		}
		return result{e, true}
	}, func() result {
		return result{}
	})
	return res.e, res.found
}

// Contains reports whether t has an element equal to x.
func Contains[E any, T Ordered[E, T]](t T, x E) bool {
	_, found := Get[E](t, x)
	return found
}

// Min returns the smallest element of t.
func Min[E any, T forest.Foldable[E, T]](t T) (E, bool) {
	return forest.Element[E](forest.LeftmostBranch[E](t))
}

// Max returns the largest element of t.
func Max[E any, T forest.Foldable[E, T]](t T) (E, bool) {
	return forest.Element[E](forest.RightmostBranch[E](t))
}

// SearchPath descends t in search of x, calling visit for every subtree
// entered on the way together with the branch taken to get there. The
// descent ends at the node holding x or at an empty subtree.
func SearchPath[E any, T Ordered[E, T]](t T, x E, visit func(T, forest.Step)) {
	visit(t, forest.Root)
	searchFrom(t, x, visit)
}

func searchFrom[E any, T Ordered[E, T]](t T, x E, visit func(T, forest.Step)) {
	forest.Analysis(t, func(l T, e E, r T) struct{} {
		if c := t.Compare(x, e); c < 0 {
			visit(l, forest.LeftBranch)
			searchFrom(l, x, visit)
		} else if c > 0 {
			visit(r, forest.RightBranch)
			searchFrom(r, x, visit)
		}
		return struct{}{}
	}, func() struct{} {
		return struct{}{}
	})
}

// Seek returns a position index at the node holding x, with empty positions
// skipped. If x is not in t, ok is false and the index is positioned at the
// last node visited during the search, if any.
func Seek[E any, T Ordered[E, T]](t T, x E) (forest.Index[E, T], bool) {
	idx := forest.NewIndex[E](t, true)
	SearchPath(t, x, func(_ T, step forest.Step) {
		if step != forest.Root {
			if next, ok := idx.Push(step); ok {
				idx = next
			}
		}
	})
	e, ok := idx.Element()
	return idx, ok && t.Compare(x, e) == 0
}
