package forest

import (
	"fmt"
	"strings"
)

// Render returns a multi-line drawing of a tree.
//
// The right subtree of a node is drawn above the node's line, the left subtree
// below it, each indented one level:
//
//	   ┌─ 5
//	   │  └─ 4
//	┌─ 3
//	│  └─ 2
//	│     └─ 1
//
// label produces the text of a subtree's line. Subtrees for which label
// returns false are not drawn, together with everything below them.
func Render[E any, T Foldable[E, T]](t T, label func(T) (string, bool)) string {
	var b strings.Builder
	render[E](&b, t, label, "", false)
	return b.String()
}

func render[E any, T Foldable[E, T]](b *strings.Builder, t T, label func(T) (string, bool), prefix string, isTail bool) {
	text, ok := label(t)
	if !ok {
		return
	}
	l, _, r, isNode := destructure[E](t)
	if isNode {
		if isTail {
			render[E](b, r, label, prefix+"│  ", false)
		} else {
			render[E](b, r, label, prefix+"   ", false)
		}
	}
	b.WriteString(prefix)
	if isTail {
		b.WriteString("└─ ")
	} else {
		b.WriteString("┌─ ")
	}
	b.WriteString(text)
	b.WriteByte('\n')
	if isNode {
		if isTail {
			render[E](b, l, label, prefix+"   ", true)
		} else {
			render[E](b, l, label, prefix+"│  ", true)
		}
	}
}

// String renders the elements of t, leaving out empty subtrees. The empty
// tree renders as the empty string.
func String[E any, T Foldable[E, T]](t T) string {
	return Render[E](t, func(s T) (string, bool) {
		if e, ok := Element[E](s); ok {
			return fmt.Sprint(e), true
		}
		return "", false
	})
}

// DebugString renders the elements of t, drawing empty subtrees as "nil".
func DebugString[E any, T Foldable[E, T]](t T) string {
	return Render[E](t, func(s T) (string, bool) {
		if e, ok := Element[E](s); ok {
			return fmt.Sprint(e), true
		}
		return "nil", true
	})
}

// Equal reports whether a and b have the same shape and equal elements at
// corresponding nodes. Variant specific node data is not compared.
func Equal[E any, T Foldable[E, T]](a, b T, eq func(E, E) bool) bool {
	la, ea, ra, oka := destructure[E](a)
	lb, eb, rb, okb := destructure[E](b)
	if !oka || !okb {
		return oka == okb
	}
	return eq(ea, eb) && Equal[E](la, lb, eq) && Equal[E](ra, rb, eq)
}
