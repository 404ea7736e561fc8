package rbtree

// Color is the color of a tree node.
type Color uint8

// Nodes are either Red or Black. Empty trees are Black.
const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Black:
		return "B"
	}
	return "?"
}

func (n *node[E]) isRed() bool {
	return n != nil && n.color == Red
}

// painted returns n in color c, copying n if necessary.
func (n *node[E]) painted(c Color) *node[E] {
	if n == nil || n.color == c {
		return n
	}
	m := *n
	m.color = c
	return &m
}
