package avl

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/forest"
)

// DefaultTolerance is the balance tolerance of trees created by New and NewFunc.
const DefaultTolerance = 1

// Config configures a height-balanced tree.
type Config[E any] struct {
	// Compare orders the elements of the tree. It is required.
	Compare func(a, b E) int
	// Tolerance is the maximum height difference between the two subtrees of
	// a node which is left alone by rebalancing. It must not be negative.
	// A single level of imbalance is never rotated away, as a rotation cannot
	// improve it; a tolerance of 0 therefore balances like a tolerance of 1.
	Tolerance int
}

func (cfg Config[E]) normalized() Config[E] {
	return cfg
}

func (cfg Config[E]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", forest.ErrInvalidConfig)
	}
	if cfg.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance %d", forest.ErrInvalidConfig, cfg.Tolerance)
	}
	return nil
}

// New creates an empty tree for ordered element types, using the default
// tolerance.
func New[E cmp.Ordered]() Tree[E] {
	return NewFunc(cmp.Compare[E])
}

// NewFunc creates an empty tree ordered by compare, using the default
// tolerance. compare must not be nil.
func NewFunc[E any](compare func(a, b E) int) Tree[E] {
	t, err := NewWithConfig(Config[E]{Compare: compare, Tolerance: DefaultTolerance})
	assert(err == nil, "avl.NewFunc: compare function is required")
	return t
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig[E any](cfg Config[E]) (Tree[E], error) {
	if err := cfg.validate(); err != nil {
		return Tree[E]{}, err
	}
	cfg = cfg.normalized()
	return Tree[E]{cfg: &cfg}, nil
}

// Of creates a tree from a literal list of elements.
func Of[E cmp.Ordered](elems ...E) Tree[E] {
	return New[E]().FromSequence(elems)
}
