package forest

import (
	"fmt"
	"io"
)

// ToDot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// label produces the node labels; attrs may return additional DOT attributes
// for a node (e.g. a fill color), or the empty string. attrs may be nil.
func ToDot[E any, T Foldable[E, T]](w io.Writer, t T, label func(E) string, attrs func(T) string) error {
	var nodelist, edgelist string
	var emit func(T) int
	next := 0
	emit = func(s T) int {
		next++
		id := next
		l, e, r, ok := destructure[E](s)
		if !ok {
			nodelist += fmt.Sprintf("\"%d\" %s;\n", id, emptyNode())
			return id
		}
		styles := nodeDotStyles()
		if attrs != nil {
			if a := attrs(s); a != "" {
				styles += "," + a
			}
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", id, label(e), styles)
		lid := emit(l)
		rid := emit(r)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, lid)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, rid)
		return id
	}
	emit(t)
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist)
	write(edgelist)
	write("}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles() string {
	return ",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle"
}
