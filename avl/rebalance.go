package avl

// Rebalance restores the balance of the root of t, if the heights of its
// subtrees differ by more than tolerance. Subtrees are left as they are.
//
// The taller child decides between the rotations: if its outer child is at
// least as tall as its inner child, a single rotation lifts the taller child
// to the top, otherwise a double rotation lifts the inner grandchild.
func (t Tree[E]) Rebalance(tolerance int) Tree[E] {
	return t.with(rebalance(t.root, tolerance))
}

func rebalance[E any](n *node[E], tolerance int) *node[E] {
	if n == nil {
		return nil
	}
	tolerance = max(tolerance, 1)
	l, r := n.left, n.right
	switch {
	case l.h() > r.h()+tolerance && l.left.h() >= l.right.h():
		tracer().Debugf("avl: rotate right at %v", n.element)
		return makeNode(l.left, l.element, makeNode(l.right, n.element, r))
	case r.h() > l.h()+tolerance && r.right.h() >= r.left.h():
		tracer().Debugf("avl: rotate left at %v", n.element)
		return makeNode(makeNode(l, n.element, r.left), r.element, r.right)
	case l.h() > r.h()+tolerance:
		tracer().Debugf("avl: rotate left-right at %v", n.element)
		lr := l.right
		return makeNode(makeNode(l.left, l.element, lr.left), lr.element, makeNode(lr.right, n.element, r))
	case r.h() > l.h()+tolerance:
		tracer().Debugf("avl: rotate right-left at %v", n.element)
		rl := r.left
		return makeNode(makeNode(l, n.element, rl.left), rl.element, makeNode(rl.right, r.element, r.right))
	}
	return n
}
