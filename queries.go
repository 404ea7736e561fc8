package forest

// HeightCache is implemented by tree variants which store the height of a
// node with the node. Height uses it instead of recomputing the height.
type HeightCache interface {
	CachedHeight() int
}

// Element returns the element of a node, or ok == false for an empty tree.
func Element[E any, T Foldable[E, T]](t T) (e E, ok bool) {
	type result struct {
		e  E
		ok bool
	}
	r := Analysis(t, func(_ T, e E, _ T) result {
		return result{e, true}
	}, func() result {
		return result{}
	})
	return r.e, r.ok
}

// Left returns the left subtree of a node. ok is false if t is empty or if
// the left subtree is empty.
func Left[E any, T Foldable[E, T]](t T) (left T, ok bool) {
	type result struct {
		t  T
		ok bool
	}
	r := Analysis(t, func(l T, _ E, _ T) result {
		return result{l, !IsEmpty[E](l)}
	}, func() result {
		return result{}
	})
	return r.t, r.ok
}

// Right returns the right subtree of a node. ok is false if t is empty or if
// the right subtree is empty.
func Right[E any, T Foldable[E, T]](t T) (right T, ok bool) {
	type result struct {
		t  T
		ok bool
	}
	r := Analysis(t, func(_ T, _ E, r T) result {
		return result{r, !IsEmpty[E](r)}
	}, func() result {
		return result{}
	})
	return r.t, r.ok
}

// IsEmpty reports whether t is the empty tree.
func IsEmpty[E any, T Foldable[E, T]](t T) bool {
	return Analysis(t, func(_ T, _ E, _ T) bool {
		return false
	}, func() bool {
		return true
	})
}

// Height returns the height of t, where the empty tree has height 0.
//
// Height is O(n), unless the tree variant implements HeightCache.
func Height[E any, T Foldable[E, T]](t T) int {
	if hc, ok := any(t).(HeightCache); ok {
		return hc.CachedHeight()
	}
	return Analysis(t, func(l T, _ E, r T) int {
		return max(Height[E](l), Height[E](r)) + 1
	}, func() int {
		return 0
	})
}

// SubtreeHeights returns the heights of the left and the right subtree of t.
func SubtreeHeights[E any, T Foldable[E, T]](t T) (left, right int) {
	hs := Analysis(t, func(l T, _ E, r T) [2]int {
		return [2]int{Height[E](l), Height[E](r)}
	}, func() [2]int {
		return [2]int{}
	})
	return hs[0], hs[1]
}

// Balance is height(right) - height(left).
func Balance[E any, T Foldable[E, T]](t T) int {
	l, r := SubtreeHeights[E](t)
	return r - l
}

// Count returns the number of elements in t. O(n).
func Count[E any, T Foldable[E, T]](t T) int {
	return Analysis(t, func(l T, _ E, r T) int {
		return Count[E](l) + 1 + Count[E](r)
	}, func() int {
		return 0
	})
}

// TraverseLeftwards walks down the leftmost spine of t, calling visit for
// every subtree on the way, including the terminating empty tree. It returns
// the empty tree terminating the spine.
func TraverseLeftwards[E any, T Foldable[E, T]](t T, visit func(T)) T {
	for {
		visit(t)
		l, _, _, ok := destructure[E](t)
		if !ok {
			return t
		}
		t = l
	}
}

// TraverseRightwards walks down the rightmost spine of t, calling visit for
// every subtree on the way, including the terminating empty tree. It returns
// the empty tree terminating the spine.
func TraverseRightwards[E any, T Foldable[E, T]](t T, visit func(T)) T {
	for {
		visit(t)
		_, _, r, ok := destructure[E](t)
		if !ok {
			return t
		}
		t = r
	}
}

// LeftmostBranch returns the leftmost node of t, i.e. the node holding the
// minimum element of a search tree. For an empty tree it returns t.
func LeftmostBranch[E any, T Foldable[E, T]](t T) T {
	node := t
	TraverseLeftwards[E](t, func(s T) {
		if !IsEmpty[E](s) {
			node = s
		}
	})
	return node
}

// RightmostBranch returns the rightmost node of t, i.e. the node holding the
// maximum element of a search tree. For an empty tree it returns t.
func RightmostBranch[E any, T Foldable[E, T]](t T) T {
	node := t
	TraverseRightwards[E](t, func(s T) {
		if !IsEmpty[E](s) {
			node = s
		}
	})
	return node
}
