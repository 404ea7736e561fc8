package avl

import (
	"fmt"
	"iter"

	"github.com/npillmayer/forest"
	"github.com/npillmayer/forest/search"
)

// Tree is a persistent height-balanced binary search tree.
//
// The zero value is an empty tree without a comparator. It may be queried, but
// elements can be inserted only into trees created by New, NewFunc or
// NewWithConfig (or derived from such trees).
type Tree[E any] struct {
	root *node[E]
	cfg  *Config[E]
}

type node[E any] struct {
	left, right *node[E]
	element     E
	height      int
}

// h is the height of a subtree, with nil as the empty tree.
func (n *node[E]) h() int {
	if n == nil {
		return 0
	}
	return n.height
}

// makeNode creates a node caching the height derived from its children.
func makeNode[E any](left *node[E], e E, right *node[E]) *node[E] {
	return &node[E]{
		left:    left,
		right:   right,
		element: e,
		height:  max(left.h(), right.h()) + 1,
	}
}

func (t Tree[E]) with(root *node[E]) Tree[E] {
	return Tree[E]{root: root, cfg: t.cfg}
}

// Branch destructures a tree into its left subtree, its element and its right
// subtree. ok is false for the empty tree.
func (t Tree[E]) Branch() (left Tree[E], element E, right Tree[E], ok bool) {
	if t.root == nil {
		return
	}
	return t.with(t.root.left), t.root.element, t.with(t.root.right), true
}

// Compare orders two elements with the comparator of the tree.
func (t Tree[E]) Compare(a, b E) int {
	assert(t.cfg != nil, "avl: tree has no comparator; create trees with New or NewFunc")
	return t.cfg.Compare(a, b)
}

// Tolerance is the balance tolerance which Insert and Remove maintain.
func (t Tree[E]) Tolerance() int {
	if t.cfg == nil {
		return DefaultTolerance
	}
	return t.cfg.Tolerance
}

// CachedHeight returns the height stored with the root node.
func (t Tree[E]) CachedHeight() int {
	return t.root.h()
}

// Height is the number of nodes on the longest path from the root to an
// empty subtree.
func (t Tree[E]) Height() int {
	return t.root.h()
}

// Balance is the height of the right subtree minus the height of the left one.
func (t Tree[E]) Balance() int {
	if t.root == nil {
		return 0
	}
	return t.root.right.h() - t.root.left.h()
}

// IsEmpty is true for the empty tree.
func (t Tree[E]) IsEmpty() bool {
	return t.root == nil
}

// Count returns the number of elements in t. It is computed, not cached.
func (t Tree[E]) Count() int {
	return forest.Count[E](t)
}

// Element returns the element at the root of t.
func (t Tree[E]) Element() (E, bool) {
	return forest.Element[E](t)
}

// Empty returns an empty tree of the same configuration as t.
func (t Tree[E]) Empty() Tree[E] {
	return t.with(nil)
}

// Clear is the same as Empty.
func (t Tree[E]) Clear() Tree[E] {
	return t.Empty()
}

// Singleton returns a tree holding just e, configured like t.
func (t Tree[E]) Singleton(e E) Tree[E] {
	return t.with(makeNode(nil, e, nil))
}

// Node assembles a tree from two subtrees and an element, configured like t.
// It neither checks the ordering nor rebalances.
func (t Tree[E]) Node(left Tree[E], e E, right Tree[E]) Tree[E] {
	return t.with(makeNode(left.root, e, right.root))
}

// FromSortedSequence builds a tree of minimal height from ascending,
// duplicate-free elements, configured like t. The input is not checked.
func (t Tree[E]) FromSortedSequence(sorted []E) Tree[E] {
	return search.Build(sorted, t.Empty(), func(l Tree[E], e E, r Tree[E], _ int) Tree[E] {
		return t.Node(l, e, r)
	})
}

// FromSequence builds a tree from elements in any order, configured like t.
// For elements comparing equal the last one wins.
func (t Tree[E]) FromSequence(elems []E) Tree[E] {
	return t.FromSortedSequence(search.Sorted(elems, t.Compare))
}

// Get returns the element of t equal to x.
func (t Tree[E]) Get(x E) (E, bool) {
	return search.Get[E](t, x)
}

// Contains reports whether t holds an element equal to x.
func (t Tree[E]) Contains(x E) bool {
	return search.Contains[E](t, x)
}

// Min returns the smallest element of t.
func (t Tree[E]) Min() (E, bool) {
	return search.Min[E](t)
}

// Max returns the largest element of t.
func (t Tree[E]) Max() (E, bool) {
	return search.Max[E](t)
}

// All iterates over the elements of t in ascending order.
func (t Tree[E]) All() iter.Seq[E] {
	return forest.All[E](t)
}

// Backward iterates over the elements of t in descending order.
func (t Tree[E]) Backward() iter.Seq[E] {
	return forest.Backward[E](t)
}

// Elements returns the elements of t in ascending order.
func (t Tree[E]) Elements() []E {
	return forest.Collect[E](t)
}

// Seek returns an index positioned at x.
func (t Tree[E]) Seek(x E) (forest.Index[E, Tree[E]], bool) {
	return search.Seek[E](t, x)
}

// Equal reports whether t and other have the same shape, the same heights and
// equal elements at corresponding nodes.
func (t Tree[E]) Equal(other Tree[E]) bool {
	return equalNodes(t.root, other.root, t.Compare)
}

func equalNodes[E any](a, b *node[E], compare func(E, E) int) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	return a.height == b.height && compare(a.element, b.element) == 0 &&
		equalNodes(a.left, b.left, compare) && equalNodes(a.right, b.right, compare)
}

// String draws t, leaving out empty subtrees.
func (t Tree[E]) String() string {
	return forest.String[E](t)
}

// DebugString draws t with the height of every subtree.
func (t Tree[E]) DebugString() string {
	return forest.Render[E](t, func(s Tree[E]) (string, bool) {
		if s.root == nil {
			return "nil @ 0", true
		}
		return fmt.Sprintf("%v @ %d", s.root.element, s.root.height), true
	})
}
