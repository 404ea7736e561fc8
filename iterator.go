package forest

// Iterator is an external, stateful in-order iterator over a tree.
//
// The iterator keeps the path of not yet visited ancestors on an explicit
// stack, so iteration may be suspended between calls to Next. As trees are
// immutable, an iterator stays valid even if new versions of its tree are
// created while it is in use; it continues to deliver the elements of the
// version it was created for.
type Iterator[E any, T Foldable[E, T]] struct {
	stack   []T
	reverse bool
}

// NewIterator creates an iterator delivering the elements of t in ascending
// in-order sequence.
func NewIterator[E any, T Foldable[E, T]](t T) *Iterator[E, T] {
	it := &Iterator[E, T]{}
	it.descend(t)
	return it
}

// NewReverseIterator creates an iterator delivering the elements of t in
// descending sequence.
func NewReverseIterator[E any, T Foldable[E, T]](t T) *Iterator[E, T] {
	it := &Iterator[E, T]{reverse: true}
	it.descend(t)
	return it
}

// HasNext reports whether another call to Next will deliver an element.
func (it *Iterator[E, T]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

// Next returns the next element, or ok == false if the iterator is exhausted.
func (it *Iterator[E, T]) Next() (e E, ok bool) {
	if !it.HasNext() {
		return e, false
	}
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	l, e, r, _ := destructure[E](top)
	if it.reverse {
		it.descend(l)
	} else {
		it.descend(r)
	}
	return e, true
}

// descend pushes the near spine of t (leftmost for ascending iteration,
// rightmost for descending iteration) onto the stack.
func (it *Iterator[E, T]) descend(t T) {
	for {
		l, _, r, ok := destructure[E](t)
		if !ok {
			return
		}
		it.stack = append(it.stack, t)
		if it.reverse {
			t = r
		} else {
			t = l
		}
	}
}
