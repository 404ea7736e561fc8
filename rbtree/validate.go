package rbtree

// IsValid reports whether t satisfies the red-black invariants: the root is
// Black and CheckSubtree confirms the whole tree.
func (t Tree[E]) IsValid() bool {
	if t.root == nil {
		return true
	}
	if t.root.color != Black {
		tracer().Debugf("rbtree: root %v is not black", t.root.element)
		return false
	}
	ok, _ := t.CheckSubtree()
	return ok
}

// CheckSubtree verifies that no Red node of t has a Red child, that the
// children of every node are ordered against the node's element, and that
// all paths from a node down to an empty subtree carry the same number of
// Black nodes. It returns the black height of t, counting the empty subtree
// as one Black node. For an invalid tree, the black height is -1.
//
// The color of the root of t is not checked.
func (t Tree[E]) CheckSubtree() (bool, int) {
	bh := t.checkNode(t.root)
	return bh > 0, bh
}

func (t Tree[E]) checkNode(n *node[E]) int {
	if n == nil {
		return 1
	}
	if n.color == Red && (n.left.isRed() || n.right.isRed()) {
		tracer().Debugf("rbtree: red node %v has a red child", n.element)
		return -1
	}
	if n.left != nil && t.Compare(n.left.element, n.element) >= 0 {
		tracer().Debugf("rbtree: left child %v not less than %v", n.left.element, n.element)
		return -1
	}
	if n.right != nil && t.Compare(n.right.element, n.element) <= 0 {
		tracer().Debugf("rbtree: right child %v not greater than %v", n.right.element, n.element)
		return -1
	}
	bl := t.checkNode(n.left)
	if bl < 0 {
		return -1
	}
	br := t.checkNode(n.right)
	if br < 0 {
		return -1
	}
	if bl != br {
		tracer().Debugf("rbtree: black heights %d and %d differ below %v", bl, br, n.element)
		return -1
	}
	if n.color == Black {
		return bl + 1
	}
	return bl
}
