package avl

import (
	"fmt"

	"github.com/npillmayer/forest"
)

// Check validates the invariants of t: cached heights, balance within the
// tolerance of the tree and the search order of the elements.
//
// Check is intended for tests. Trees assembled with Node are not required to
// be balanced and may well fail it.
func (t Tree[E]) Check() error {
	if t.root != nil && t.cfg == nil {
		return fmt.Errorf("%w: non-empty tree without comparator", forest.ErrInvariant)
	}
	tolerance := max(t.Tolerance(), 1)
	_, err := t.checkNode(t.root, nil, nil, tolerance)
	return err
}

// checkNode returns the height of n. lo and hi are exclusive bounds for the
// elements of n, if present.
func (t Tree[E]) checkNode(n *node[E], lo, hi *E, tolerance int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.Compare(n.element, *lo) <= 0 {
		return 0, fmt.Errorf("%w: element %v not greater than %v", forest.ErrInvariant, n.element, *lo)
	}
	if hi != nil && t.Compare(n.element, *hi) >= 0 {
		return 0, fmt.Errorf("%w: element %v not less than %v", forest.ErrInvariant, n.element, *hi)
	}
	hl, err := t.checkNode(n.left, lo, &n.element, tolerance)
	if err != nil {
		return 0, err
	}
	hr, err := t.checkNode(n.right, &n.element, hi, tolerance)
	if err != nil {
		return 0, err
	}
	if h := max(hl, hr) + 1; h != n.height {
		return 0, fmt.Errorf("%w: node %v caches height %d, has %d", forest.ErrInvariant, n.element, n.height, h)
	}
	if b := hr - hl; b > tolerance || -b > tolerance {
		return 0, fmt.Errorf("%w: node %v has balance %d", forest.ErrInvariant, n.element, b)
	}
	return n.height, nil
}
