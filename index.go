package forest

import "fmt"

// Index is a bidirectional position index into a tree.
//
// An index stores the path from the root of a tree down to the position it
// refers to, together with the kind of branch taken at every step. Stepping to
// the successor or predecessor walks back up this path until an unvisited
// subtree is found and then descends that subtree's near spine. This makes a
// step O(log n) for balanced trees, without materializing an in-order
// sequence.
//
// Index values are immutable. Successor and Predecessor return new indexes,
// which share their path prefix with the index they were derived from.
//
// With SkipEmpty set (the usual case) every position of an index is a node.
// Otherwise the empty subtrees at the bottom of the tree are positions as well,
// interleaved with the nodes in in-order sequence: an index then steps through
// e₀, n₁, e₁, n₂, …, nₖ, eₖ.
type Index[E any, T Foldable[E, T]] struct {
	top       *frame[T]
	skipEmpty bool
}

type frame[T any] struct {
	tree  T
	step  Step
	depth int
	up    *frame[T]
}

// NewIndex creates an index positioned at the root of t.
func NewIndex[E any, T Foldable[E, T]](t T, skipEmpty bool) Index[E, T] {
	return Index[E, T]{
		top:       &frame[T]{tree: t, step: Root},
		skipEmpty: skipEmpty,
	}
}

// First returns an index positioned at the first position of t in in-order
// sequence. ok is false if there is no such position, i.e. if t is empty and
// empty positions are skipped.
func First[E any, T Foldable[E, T]](t T, skipEmpty bool) (Index[E, T], bool) {
	idx := NewIndex[E](t, skipEmpty)
	if IsEmpty[E](t) {
		return idx, !skipEmpty
	}
	return idx.descend(t, LeftBranch), true
}

// Last returns an index positioned at the last position of t in in-order
// sequence.
func Last[E any, T Foldable[E, T]](t T, skipEmpty bool) (Index[E, T], bool) {
	idx := NewIndex[E](t, skipEmpty)
	if IsEmpty[E](t) {
		return idx, !skipEmpty
	}
	return idx.descend(t, RightBranch), true
}

// IsValid is false for the zero value of Index.
func (idx Index[E, T]) IsValid() bool {
	return idx.top != nil
}

// Tree returns the subtree at the position of idx.
func (idx Index[E, T]) Tree() T {
	assert(idx.IsValid(), "forest.Index: use of uninitialized index")
	return idx.top.tree
}

// Element returns the element at the position of idx, if the position is a node.
func (idx Index[E, T]) Element() (E, bool) {
	return Element[E](idx.Tree())
}

// Step returns how the current position has been reached from its parent.
func (idx Index[E, T]) Step() Step {
	if !idx.IsValid() {
		return Root
	}
	return idx.top.step
}

// Depth returns the number of steps from the root to the current position.
// The root is at depth 0.
func (idx Index[E, T]) Depth() int {
	if !idx.IsValid() {
		return 0
	}
	return idx.top.depth
}

// Path returns the subtrees from the root down to the current position.
func (idx Index[E, T]) Path() []T {
	if !idx.IsValid() {
		return nil
	}
	path := make([]T, idx.top.depth+1)
	for f := idx.top; f != nil; f = f.up {
		path[f.depth] = f.tree
	}
	return path
}

// Steps returns the branch kinds from the root down to the current position.
// The first step is always Root.
func (idx Index[E, T]) Steps() []Step {
	if !idx.IsValid() {
		return nil
	}
	steps := make([]Step, idx.top.depth+1)
	for f := idx.top; f != nil; f = f.up {
		steps[f.depth] = f.step
	}
	return steps
}

// Equal reports whether two indexes denote the same position, i.e. whether
// they took the same branches from the root.
func (idx Index[E, T]) Equal(other Index[E, T]) bool {
	a, b := idx.top, other.top
	for a != nil && b != nil {
		if a.depth != b.depth || a.step != b.step {
			return false
		}
		a, b = a.up, b.up
	}
	return a == nil && b == nil
}

// Successor returns an index at the next position in in-order sequence.
// ok is false if idx is positioned at the last position.
func (idx Index[E, T]) Successor() (Index[E, T], bool) {
	return idx.step(RightBranch, LeftBranch)
}

// Predecessor returns an index at the previous position in in-order
// sequence. ok is false if idx is positioned at the first position.
func (idx Index[E, T]) Predecessor() (Index[E, T], bool) {
	return idx.step(LeftBranch, RightBranch)
}

// step moves one position towards side. Either the subtree on side of the
// current node is entered and its spine towards the opposite side is
// descended, or the path is climbed until we arrive from the opposite side.
func (idx Index[E, T]) step(side, opposite Step) (Index[E, T], bool) {
	if !idx.IsValid() {
		return idx, false
	}
	l, _, r, ok := destructure[E](idx.top.tree)
	if ok {
		next := r
		if side == LeftBranch {
			next = l
		}
		if !idx.skipEmpty || !IsEmpty[E](next) {
			return idx.push(next, side).descend(next, opposite), true
		}
	}
	for f := idx.top; f.up != nil; f = f.up {
		if f.step == opposite {
			return Index[E, T]{top: f.up, skipEmpty: idx.skipEmpty}, true
		}
	}
	return idx, false
}

// descend walks down from t (which has to be the current position) towards
// side as far as possible.
func (idx Index[E, T]) descend(t T, side Step) Index[E, T] {
	for {
		l, _, r, ok := destructure[E](t)
		if !ok {
			return idx
		}
		next := l
		if side == RightBranch {
			next = r
		}
		if idx.skipEmpty && IsEmpty[E](next) {
			return idx
		}
		idx = idx.push(next, side)
		t = next
	}
}

func (idx Index[E, T]) push(t T, step Step) Index[E, T] {
	assert(step != Root, "forest.Index: cannot push a root step")
	return Index[E, T]{
		top:       &frame[T]{tree: t, step: step, depth: idx.top.depth + 1, up: idx.top},
		skipEmpty: idx.skipEmpty,
	}
}

// Push returns an index one step further down, at the left or right subtree
// of the current position. ok is false if the current position is empty, or
// if the subtree is empty and empty positions are skipped.
func (idx Index[E, T]) Push(step Step) (Index[E, T], bool) {
	if !idx.IsValid() || step == Root {
		return idx, false
	}
	l, _, r, ok := destructure[E](idx.top.tree)
	if !ok {
		return idx, false
	}
	next := l
	if step == RightBranch {
		next = r
	}
	if idx.skipEmpty && IsEmpty[E](next) {
		return idx, false
	}
	return idx.push(next, step), true
}

// Pop returns an index at the parent of the current position. ok is false
// at the root.
func (idx Index[E, T]) Pop() (Index[E, T], bool) {
	if !idx.IsValid() || idx.top.up == nil {
		return idx, false
	}
	return Index[E, T]{top: idx.top.up, skipEmpty: idx.skipEmpty}, true
}

func (idx Index[E, T]) String() string {
	if !idx.IsValid() {
		return "<Index: invalid>"
	}
	if e, ok := idx.Element(); ok {
		return fmt.Sprintf("<Index: %v>", e)
	}
	return "<Index: nil>"
}
