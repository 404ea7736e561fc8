package forest

// Range is a half-open index range [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	if r.Hi < r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

// IsEmpty reports whether r contains no index.
func (r Range) IsEmpty() bool {
	return r.Len() == 0
}

// Bisect splits r into a lower range, a midpoint and an upper range, with
//
//	mid   = r.Lo + r.Len()/2
//	lower = [r.Lo, mid)
//	upper = [mid+1, r.Hi)
//
// For ranges of even length the lower range gets the larger half. ok is false
// for an empty range.
//
// Building a tree by making the midpoint a node's element and bisecting the
// two sides recursively yields a tree of minimal height.
func Bisect(r Range) (lower Range, mid int, upper Range, ok bool) {
	n := r.Len()
	if n < 1 {
		return Range{}, 0, Range{}, false
	}
	mid = r.Lo + n/2
	return Range{r.Lo, mid}, mid, Range{mid + 1, r.Hi}, true
}
