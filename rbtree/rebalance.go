package rbtree

// Rebalance repairs a red-red conflict directly below the root of t. If the
// root is Black and has a Red child with a Red child of its own, the middle one
// of the three elements is rotated to the top. The new top node is Red and its
// two children are Black. In all other cases t is returned unchanged.
func (t Tree[E]) Rebalance() Tree[E] {
	if t.root == nil {
		return t
	}
	n := t.root
	if b := balance(n.color, n.left, n.element, n.right); b != nil {
		return t.with(b)
	}
	return t
}

// balance returns nil if no red-red conflict is present.
func balance[E any](c Color, l *node[E], e E, r *node[E]) *node[E] {
	if c != Black {
		return nil
	}
	switch {
	case l.isRed() && l.left.isRed():
		tracer().Debugf("rbtree: balance left-left at %v", e)
		ll := l.left
		return red(black(ll.left, ll.element, ll.right), l.element, black(l.right, e, r))
	case l.isRed() && l.right.isRed():
		tracer().Debugf("rbtree: balance left-right at %v", e)
		lr := l.right
		return red(black(l.left, l.element, lr.left), lr.element, black(lr.right, e, r))
	case r.isRed() && r.left.isRed():
		tracer().Debugf("rbtree: balance right-left at %v", e)
		rl := r.left
		return red(black(l, e, rl.left), rl.element, black(rl.right, r.element, r.right))
	case r.isRed() && r.right.isRed():
		tracer().Debugf("rbtree: balance right-right at %v", e)
		rr := r.right
		return red(black(l, e, r.left), r.element, black(rr.left, rr.element, rr.right))
	}
	return nil
}

func colored[E any](c Color, l *node[E], e E, r *node[E]) *node[E] {
	return &node[E]{left: l, right: r, element: e, color: c}
}

func red[E any](l *node[E], e E, r *node[E]) *node[E] {
	return colored(Red, l, e, r)
}

func black[E any](l *node[E], e E, r *node[E]) *node[E] {
	return colored(Black, l, e, r)
}

// balanced builds a node and repairs a red-red conflict below it.
func balanced[E any](c Color, l *node[E], e E, r *node[E]) *node[E] {
	if b := balance(c, l, e, r); b != nil {
		return b
	}
	return colored(c, l, e, r)
}

// fixLeft builds a node whose left subtree l may have lost one level of
// black height (short). It returns the node and whether the node as a whole
// is short of one level of black height.
func fixLeft[E any](c Color, l *node[E], e E, r *node[E], short bool) (*node[E], bool) {
	if !short {
		return colored(c, l, e, r), false
	}
	switch {
	case l.isRed():
		return colored(c, l.painted(Black), e, r), false
	case r == nil:
		return colored(c, l, e, r), true
	case r.color == Red:
		// rotate the red sibling up, the deficit moves one level down
		inner, short := fixLeft(Red, l, e, r.left, true)
		return black(inner, r.element, r.right), short
	case r.right.isRed():
		return colored(c, black(l, e, r.left), r.element, r.right.painted(Black)), false
	case r.left.isRed():
		rl := r.left
		return colored(c, black(l, e, rl.left), rl.element, black(rl.right, r.element, r.right)), false
	}
	return black(l, e, r.painted(Red)), c == Black
}

// fixRight is the mirror image of fixLeft.
func fixRight[E any](c Color, l *node[E], e E, r *node[E], short bool) (*node[E], bool) {
	if !short {
		return colored(c, l, e, r), false
	}
	switch {
	case r.isRed():
		return colored(c, l, e, r.painted(Black)), false
	case l == nil:
		return colored(c, l, e, r), true
	case l.color == Red:
		inner, short := fixRight(Red, l.right, e, r, true)
		return black(l.left, l.element, inner), short
	case l.left.isRed():
		return colored(c, l.left.painted(Black), l.element, black(l.right, e, r)), false
	case l.right.isRed():
		lr := l.right
		return colored(c, black(l.left, l.element, lr.left), lr.element, black(lr.right, e, r)), false
	}
	return black(l.painted(Red), e, r), c == Black
}
