package avl

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
// element equal to x, the element is replaced by x in place (the tree keeps
// its shape) and the old element is returned as displaced.
//
// All nodes on the path to x are rebuilt and rebalanced with the tolerance of
// the tree.
func (t Tree[E]) InsertAndReturnExisting(x E) (tree Tree[E], displaced E, ok bool) {
	assert(t.cfg != nil, "avl: cannot insert into an unconfigured tree; create trees with New or NewFunc")
	o := forest.Analysis(t, func(l Tree[E], e E, r Tree[E]) outcome[E] {
		switch c := t.Compare(x, e); {
		case c < 0:
			l, displaced, ok := l.InsertAndReturnExisting(x)
			return outcome[E]{t.Node(l, e, r).Rebalance(t.cfg.Tolerance), displaced, ok}
		case c > 0:
			r, displaced, ok := r.InsertAndReturnExisting(x)
			return outcome[E]{t.Node(l, e, r).Rebalance(t.cfg.Tolerance), displaced, ok}
		}
		return outcome[E]{t.Node(l, x, r), e, true}
	}, func() outcome[E] {
		return outcome[E]{tree: t.Singleton(x)}
	})
	return o.tree, o.elem, o.found
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
func (t Tree[E]) RemoveAndReturnExisting(x E) (tree Tree[E], removed E, ok bool) {
	o := forest.Analysis(t, func(l Tree[E], e E, r Tree[E]) outcome[E] {
		switch c := t.Compare(x, e); {
		case c < 0:
			l, removed, ok := l.RemoveAndReturnExisting(x)
			if !ok {
				return outcome[E]{tree: t}
			}
			return outcome[E]{t.Node(l, e, r).Rebalance(t.cfg.Tolerance), removed, true}
		case c > 0:
			r, removed, ok := r.RemoveAndReturnExisting(x)
			if !ok {
				return outcome[E]{tree: t}
			}
			return outcome[E]{t.Node(l, e, r).Rebalance(t.cfg.Tolerance), removed, true}
		}
		tree, removed, _ := t.RemoveRoot()
		return outcome[E]{tree, removed, true}
	}, func() outcome[E] {
		return outcome[E]{tree: t}
	})
	return o.tree, o.elem, o.found
}

// RemoveInPlace removes x and rebinds t to the result.
func (t *Tree[E]) RemoveInPlace(x E) (removed E, ok bool) {
	tree, removed, ok := t.RemoveAndReturnExisting(x)
	*t = tree
	return removed, ok
}

// RemoveRoot removes the element at the root of t. A node with two children
// is replaced by its in-order predecessor, which is removed from the left
// subtree. ok is false if t is empty.
func (t Tree[E]) RemoveRoot() (tree Tree[E], removed E, ok bool) {
	o := forest.Analysis(t, func(l Tree[E], e E, r Tree[E]) outcome[E] {
		switch {
		case l.IsEmpty():
			return outcome[E]{r, e, true}
		case r.IsEmpty():
			return outcome[E]{l, e, true}
		}
		pred := forest.RightmostBranch[E](l).root.element
		l, _, _ = l.RemoveAndReturnExisting(pred)
		return outcome[E]{t.Node(l, pred, r).Rebalance(t.Tolerance()), e, true}
	}, func() outcome[E] {
		return outcome[E]{tree: t}
	})
	return o.tree, o.elem, o.found
}
