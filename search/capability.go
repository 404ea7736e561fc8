package search

// Growable is a search tree which elements may be inserted into.
//
// InsertAndReturnExisting returns a new tree containing x. If the tree already
// held an element equal to x, that element is replaced by x in place and
// returned as displaced, with ok == true.
type Growable[E any, T any] interface {
	Ordered[E, T]
	InsertAndReturnExisting(x E) (tree T, displaced E, ok bool)
}

// Prunable is a search tree which elements may be removed from.
//
// RemoveAndReturnExisting returns a new tree without x. If the tree held an
// element equal to x, that element is returned as removed, with ok == true.
// Otherwise the tree is returned unchanged.
type Prunable[E any, T any] interface {
	Ordered[E, T]
	RemoveAndReturnExisting(x E) (tree T, removed E, ok bool)
}

// Mutable is a search tree which may grow and shrink.
type Mutable[E any, T any] interface {
	Growable[E, T]
	Prunable[E, T]
}

// Clearable is a tree which is able to produce an empty tree of the same
// configuration.
type Clearable[T any] interface {
	Clear() T
}

// Insert returns a new tree containing x.
func Insert[E any, T Growable[E, T]](t T, x E) T {
	tree, _, _ := t.InsertAndReturnExisting(x)
	return tree
}

// Remove returns a new tree not containing x.
func Remove[E any, T Prunable[E, T]](t T, x E) T {
	tree, _, _ := t.RemoveAndReturnExisting(x)
	return tree
}

// InsertInPlace inserts x and rebinds *t to the resulting tree. It returns
// the element displaced by x, if any.
//
// Only the variable t is changed. Other holders of the previous tree value
// are not affected, as no node of a tree is ever modified.
func InsertInPlace[E any, T Growable[E, T]](t *T, x E) (E, bool) {
	tree, displaced, ok := (*t).InsertAndReturnExisting(x)
	*t = tree
	return displaced, ok
}

// RemoveInPlace removes x and rebinds *t to the resulting tree. It returns
// the element removed, if any.
func RemoveInPlace[E any, T Prunable[E, T]](t *T, x E) (E, bool) {
	tree, removed, ok := (*t).RemoveAndReturnExisting(x)
	*t = tree
	return removed, ok
}

// ClearInPlace rebinds *t to an empty tree.
func ClearInPlace[T Clearable[T]](t *T) {
	*t = (*t).Clear()
}
