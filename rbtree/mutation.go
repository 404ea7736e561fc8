package rbtree

import (
	"github.com/npillmayer/forest"
)

type outcome[E any] struct {
	tree  Tree[E]
	elem  E
	found bool
}

// Insert returns a tree containing x. An element equal to x is replaced.
func (t Tree[E]) Insert(x E) Tree[E] {
	tree, _, _ := t.InsertAndReturnExisting(x)
	return tree
}

// InsertAndReturnExisting returns a tree containing x. If t already held an
// element equal to x, the element is replaced by x in place and the old
// element is returned as displaced. The root of the result is Black.
func (t Tree[E]) InsertAndReturnExisting(x E) (tree Tree[E], displaced E, ok bool) {
	assert(t.cfg != nil, "rbtree: cannot insert into an unconfigured tree; create trees with New or NewFunc")
	o := t.insert(x)
	return o.tree.with(o.tree.root.painted(Black)), o.elem, o.found
}

func (t Tree[E]) insert(x E) outcome[E] {
	return forest.Analysis(t, func(l Tree[E], e E, r Tree[E]) outcome[E] {
		c := t.root.color
		switch cmp := t.Compare(x, e); {
		case cmp < 0:
			o := l.insert(x)
			o.tree = t.with(balanced(c, o.tree.root, e, r.root))
			return o
		case cmp > 0:
			o := r.insert(x)
			o.tree = t.with(balanced(c, l.root, e, o.tree.root))
			return o
		}
		return outcome[E]{t.with(colored(c, l.root, x, r.root)), e, true}
	}, func() outcome[E] {
		return outcome[E]{tree: t.with(red[E](nil, x, nil))}
	})
}

// InsertInPlace inserts x and rebinds t to the result. Holders of the
// previous tree value are not affected.
func (t *Tree[E]) InsertInPlace(x E) (displaced E, ok bool) {
	tree, displaced, ok := t.InsertAndReturnExisting(x)
	*t = tree
	return displaced, ok
}

// Remove returns a tree without x.
func (t Tree[E]) Remove(x E) Tree[E] {
	tree, _, _ := t.RemoveAndReturnExisting(x)
	return tree
}

// RemoveAndReturnExisting returns a tree without x, together with the
// element removed. If t does not hold x, t itself is returned and ok is false.
//
// A node with two children is replaced by its in-order predecessor, keeping
// the node's color. Losses of black height are repaired on the way up, so a
// valid tree stays valid.
func (t Tree[E]) RemoveAndReturnExisting(x E) (tree Tree[E], removed E, ok bool) {
	n, removed, ok, _ := t.remove(t.root, x)
	if !ok {
		return t, removed, false
	}
	return t.with(n.painted(Black)), removed, true
}

// RemoveInPlace removes x and rebinds t to the result.
func (t *Tree[E]) RemoveInPlace(x E) (removed E, ok bool) {
	tree, removed, ok := t.RemoveAndReturnExisting(x)
	*t = tree
	return removed, ok
}

// RemoveRoot removes the element at the root of t. ok is false if t is empty.
func (t Tree[E]) RemoveRoot() (tree Tree[E], removed E, ok bool) {
	if t.root == nil {
		return t, removed, false
	}
	n, _ := t.removeNode(t.root)
	return t.with(n.painted(Black)), t.root.element, true
}

// remove returns n without x, the element removed and whether n has become
// short of one level of black height.
func (t Tree[E]) remove(n *node[E], x E) (*node[E], E, bool, bool) {
	if n == nil {
		var zero E
		return nil, zero, false, false
	}
	switch c := t.Compare(x, n.element); {
	case c < 0:
		l, removed, found, short := t.remove(n.left, x)
		if !found {
			return n, removed, false, false
		}
		res, short := fixLeft(n.color, l, n.element, n.right, short)
		return res, removed, true, short
	case c > 0:
		r, removed, found, short := t.remove(n.right, x)
		if !found {
			return n, removed, false, false
		}
		res, short := fixRight(n.color, n.left, n.element, r, short)
		return res, removed, true, short
	}
	res, short := t.removeNode(n)
	return res, n.element, true, short
}

func (t Tree[E]) removeNode(n *node[E]) (*node[E], bool) {
	switch {
	case n.left == nil && n.right == nil:
		return nil, n.color == Black
	case n.left == nil:
		return lift(n, n.right)
	case n.right == nil:
		return lift(n, n.left)
	}
	pred := n.left
	for pred.right != nil {
		pred = pred.right
	}
	l, _, _, short := t.remove(n.left, pred.element)
	return fixLeft(n.color, l, pred.element, n.right, short)
}

// lift replaces n by its only child.
func lift[E any](n, child *node[E]) (*node[E], bool) {
	if n.color == Red {
		return child, false
	}
	if child.color == Red {
		return child.painted(Black), false
	}
	return child, true
}
