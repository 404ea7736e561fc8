package forest

import "iter"

// Traversal walks a tree in depth-first order. The visitor is called with
// every subtree in turn; its element may be retrieved with Element.
//
// If SkipEmpty is set, empty subtrees are not handed to the visitor. Otherwise
// every empty subtree at the bottom of the tree is visited as well, which is
// useful for diagnostics.
//
// Traversal stops early if the visitor returns false.
type Traversal[E any, T Foldable[E, T]] struct {
	SkipEmpty bool
}

// Preorder visits a node before its subtrees.
func (trav Traversal[E, T]) Preorder(t T, visit func(T) bool) {
	trav.preorder(t, visit)
}

// Inorder visits the left subtree, then the node, then the right subtree.
// For a search tree this visits elements in ascending order.
func (trav Traversal[E, T]) Inorder(t T, visit func(T) bool) {
	trav.inorder(t, visit)
}

// Postorder visits the subtrees of a node before the node.
func (trav Traversal[E, T]) Postorder(t T, visit func(T) bool) {
	trav.postorder(t, visit)
}

func (trav Traversal[E, T]) preorder(t T, visit func(T) bool) bool {
	return Analysis(t, func(l T, _ E, r T) bool {
		return visit(t) && trav.preorder(l, visit) && trav.preorder(r, visit)
	}, func() bool {
		return trav.SkipEmpty || visit(t)
	})
}

func (trav Traversal[E, T]) inorder(t T, visit func(T) bool) bool {
	return Analysis(t, func(l T, _ E, r T) bool {
		return trav.inorder(l, visit) && visit(t) && trav.inorder(r, visit)
	}, func() bool {
		return trav.SkipEmpty || visit(t)
	})
}

func (trav Traversal[E, T]) postorder(t T, visit func(T) bool) bool {
	return Analysis(t, func(l T, _ E, r T) bool {
		return trav.postorder(l, visit) && trav.postorder(r, visit) && visit(t)
	}, func() bool {
		return trav.SkipEmpty || visit(t)
	})
}

// All returns an iterator over the elements of t in in-order sequence.
// The sequence may be ranged over any number of times.
func All[E any, T Foldable[E, T]](t T) iter.Seq[E] {
	return func(yield func(E) bool) {
		it := NewIterator[E](t)
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of t in reverse in-order
// sequence.
func Backward[E any, T Foldable[E, T]](t T) iter.Seq[E] {
	return func(yield func(E) bool) {
		it := NewReverseIterator[E](t)
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// PreOrder returns an iterator over the elements of t in pre-order sequence.
func PreOrder[E any, T Foldable[E, T]](t T) iter.Seq[E] {
	return elementsOf[E](t, Traversal[E, T]{SkipEmpty: true}.Preorder)
}

// PostOrder returns an iterator over the elements of t in post-order sequence.
func PostOrder[E any, T Foldable[E, T]](t T) iter.Seq[E] {
	return elementsOf[E](t, Traversal[E, T]{SkipEmpty: true}.Postorder)
}

func elementsOf[E any, T Foldable[E, T]](t T, walk func(T, func(T) bool)) iter.Seq[E] {
	return func(yield func(E) bool) {
		walk(t, func(s T) bool {
			e, _ := Element[E](s)
			return yield(e)
		})
	}
}

// Collect returns the elements of t in ascending order as a slice.
func Collect[E any, T Foldable[E, T]](t T) []E {
	var elems []E
	for e := range All[E](t) {
		elems = append(elems, e)
	}
	return elems
}
