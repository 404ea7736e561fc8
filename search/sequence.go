package search

import (
	"slices"

	"github.com/npillmayer/forest"
)

// Sorted returns the elements of elems in ascending order. Elements which
// compare equal collapse into one, where the last occurrence in elems wins,
// just like repeated insertion would do. elems is not modified.
func Sorted[E any](elems []E, compare func(a, b E) int) []E {
	if len(elems) == 0 {
		return nil
	}
	sorted := slices.Clone(elems)
	slices.SortStableFunc(sorted, compare)
	out := sorted[:0]
	for _, e := range sorted {
		if n := len(out); n > 0 && compare(out[n-1], e) == 0 {
			out[n-1] = e
			continue
		}
		out = append(out, e)
	}
	if dropped := len(sorted) - len(out); dropped > 0 {
		tracer().Debugf("sorted sequence: %d duplicate elements collapsed", dropped)
	}
	return out
}

// IsSorted reports whether elems is strictly ascending.
func IsSorted[E any](elems []E, compare func(a, b E) int) bool {
	for i := 1; i < len(elems); i++ {
		if compare(elems[i-1], elems[i]) >= 0 {
			return false
		}
	}
	return true
}

// Build constructs a tree of minimal height from sorted elements by
// bisection: the middle element becomes the root and both halves are built
// recursively. node is called bottom-up with the two subtrees, the element
// and the depth of the new node (the root is at depth 0).
//
// Build does not check that sorted is ascending. For unsorted input the result
// is a structurally valid binary tree, but not a valid search tree.
func Build[E any, T any](sorted []E, empty T, node func(left T, e E, right T, depth int) T) T {
	var build func(forest.Range, int) T
	build = func(r forest.Range, depth int) T {
		lower, mid, upper, ok := forest.Bisect(r)
		if !ok {
			return empty
		}
		left := build(lower, depth+1)
		right := build(upper, depth+1)
		return node(left, sorted[mid], right, depth)
	}
	return build(forest.Range{Lo: 0, Hi: len(sorted)}, 0)
}
