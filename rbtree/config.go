package rbtree

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/forest"
)

// Config configures a red-black tree.
type Config[E any] struct {
	// Compare orders the elements of the tree. It is required.
	Compare func(a, b E) int
}

func (cfg Config[E]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", forest.ErrInvalidConfig)
	}
	return nil
}

// New creates an empty tree for ordered element types.
func New[E cmp.Ordered]() Tree[E] {
	return NewFunc(cmp.Compare[E])
}

// NewFunc creates an empty tree ordered by compare, which must not be nil.
func NewFunc[E any](compare func(a, b E) int) Tree[E] {
	t, err := NewWithConfig(Config[E]{Compare: compare})
	assert(err == nil, "rbtree.NewFunc: compare function is required")
	return t
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig[E any](cfg Config[E]) (Tree[E], error) {
	if err := cfg.validate(); err != nil {
		return Tree[E]{}, err
	}
	return Tree[E]{cfg: &cfg}, nil
}

// Of creates a tree from a literal list of elements.
func Of[E cmp.Ordered](elems ...E) Tree[E] {
	return New[E]().FromSequence(elems)
}
