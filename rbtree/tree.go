package rbtree

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/npillmayer/forest"
	"github.com/npillmayer/forest/search"
)

// Tree is a persistent red-black search tree.
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
	color       Color
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
	assert(t.cfg != nil, "rbtree: tree has no comparator; create trees with New or NewFunc")
	return t.cfg.Compare(a, b)
}

// Color returns the color of the root of t. The empty tree is Black.
func (t Tree[E]) Color() Color {
	if t.root == nil {
		return Black
	}
	return t.root.color
}

// IsEmpty is true for the empty tree.
func (t Tree[E]) IsEmpty() bool {
	return t.root == nil
}

// Height is the number of nodes on the longest path from the root to an
// empty subtree.
func (t Tree[E]) Height() int {
	return forest.Height[E](t)
}

// Count returns the number of elements in t.
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

// Singleton returns a tree holding just e in a Black node, configured like t.
func (t Tree[E]) Singleton(e E) Tree[E] {
	return t.Node(t.Empty(), e, Black, t.Empty())
}

// Node assembles a tree from two subtrees and a colored element, configured
// like t. It neither checks the colors nor the ordering.
func (t Tree[E]) Node(left Tree[E], e E, c Color, right Tree[E]) Tree[E] {
	return t.with(&node[E]{left: left.root, right: right.root, element: e, color: c})
}

// FromSortedSequence builds a valid tree of minimal height from ascending,
// duplicate-free elements, configured like t. The input is not checked.
//
// The nodes on the deepest level of a tree with more than one level are Red,
// all the other nodes are Black.
func (t Tree[E]) FromSortedSequence(sorted []E) Tree[E] {
	h := bits.Len(uint(len(sorted)))
	return search.Build(sorted, t.Empty(), func(l Tree[E], e E, r Tree[E], depth int) Tree[E] {
		if h > 1 && depth == h-1 {
			return t.Node(l, e, Red, r)
		}
		return t.Node(l, e, Black, r)
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

// Equal reports whether t and other have the same shape and equal elements at
// corresponding nodes. Colors are not compared.
func (t Tree[E]) Equal(other Tree[E]) bool {
	return forest.Equal[E](t, other, func(a, b E) bool {
		return t.Compare(a, b) == 0
	})
}

// String draws t, leaving out empty subtrees.
func (t Tree[E]) String() string {
	return forest.String[E](t)
}

// DebugString draws t with the color of every node.
func (t Tree[E]) DebugString() string {
	return forest.Render[E](t, func(s Tree[E]) (string, bool) {
		if s.root == nil {
			return "nil", true
		}
		return fmt.Sprintf("%v %s", s.root.element, s.root.color), true
	})
}
