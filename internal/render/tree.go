package render

import (
	"fmt"
	"io"
	"strings"
)

// WriteTree renders node and its descendants as an indented branch
// drawing.
func WriteTree(w io.Writer, node Node) {
	fmt.Fprintln(w, node.Label())
	writeChildren(w, node.Children(), "")
}

func writeChildren(w io.Writer, children []Node, prefix string) {
	for i, child := range children {
		branch := "├── "
		next := prefix + "│   "
		if i == len(children)-1 {
			branch = "└── "
			next = prefix + "    "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.Label())
		writeChildren(w, child.Children(), next)
	}
}

// Tree renders node to a string.
func Tree(node Node) string {
	var sb strings.Builder
	WriteTree(&sb, node)
	return sb.String()
}
