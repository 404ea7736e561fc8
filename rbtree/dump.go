package rbtree

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/forest"
	"golang.org/x/term"
)

// Dump writes a drawing of t to w. If w is a terminal, Red nodes are printed
// in red, otherwise they are marked with "R".
func (t Tree[E]) Dump(w io.Writer) error {
	redNode := color.New(color.FgRed)
	terminal := isTerminal(w)
	if terminal {
		redNode.EnableColor()
	} else {
		redNode.DisableColor()
	}
	s := forest.Render[E](t, func(s Tree[E]) (string, bool) {
		switch {
		case s.root == nil:
			return "", false
		case s.root.color == Black:
			return fmt.Sprint(s.root.element), true
		case terminal:
			return redNode.Sprint(s.root.element), true
		}
		return fmt.Sprintf("%v %s", s.root.element, Red), true
	})
	_, err := io.WriteString(w, s)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
