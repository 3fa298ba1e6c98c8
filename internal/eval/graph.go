package eval

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"calc/internal/parse"
)

// AssignIDs numbers the nodes of n in preorder, starting at 1 for the
// root. Each call starts a fresh count.
func AssignIDs(n *parse.Node) map[*parse.Node]int {
	ids := make(map[*parse.Node]int)
	next := 1
	parse.Preorder(n, func(m *parse.Node) bool {
		ids[m] = next
		next++
		return true
	})
	return ids
}

// WriteGraph writes n as an undirected graphviz graph.
func WriteGraph(w io.Writer, n *parse.Node) error {
	bw := bufio.NewWriter(w)
	ids := AssignIDs(n)
	fmt.Fprintln(bw, `graph ""`)
	fmt.Fprintln(bw, "{")
	writeNode(bw, n, ids)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func writeNode(w io.Writer, n *parse.Node, ids map[*parse.Node]int) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "n%d [label=\"%s\"] ;\n", ids[n], n.Label())
	for _, child := range n.Children() {
		fmt.Fprintf(w, "n%d -- n%d ;\n", ids[n], ids[child])
		writeNode(w, child, ids)
	}
}

// Render returns the graph text for n.
func Render(n *parse.Node) string {
	var b strings.Builder
	_ = WriteGraph(&b, n)
	return b.String()
}
