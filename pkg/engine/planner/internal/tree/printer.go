package tree

import (
	"fmt"
	"io"
	"strings"
)

const (
	connectorItem = "├── "
	connectorLast = "└── "
	prefixBar     = "│   "
	prefixSpace   = "    "
)

// Printer renders a [Node] tree with box-drawing connectors, one node per
// line. Comments of a node are rendered before its children and indented one
// level deeper.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a new Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print renders the tree rooted at node.
func (p *Printer) Print(node *Node) {
	fmt.Fprintln(p.w, header(node))
	p.printDescendants(node, "")
}

func (p *Printer) printDescendants(n *Node, prefix string) {
	commentPrefix := prefix + prefixSpace
	if len(n.Children) > 0 {
		commentPrefix = prefix + prefixBar
	}
	for i, comment := range n.Comments {
		p.printNode(comment, commentPrefix, i == len(n.Comments)-1)
	}
	for i, child := range n.Children {
		p.printNode(child, prefix, i == len(n.Children)-1)
	}
}

func (p *Printer) printNode(n *Node, prefix string, last bool) {
	connector, childPrefix := connectorItem, prefix+prefixBar
	if last {
		connector, childPrefix = connectorLast, prefix+prefixSpace
	}
	fmt.Fprintln(p.w, prefix+connector+header(n))
	p.printDescendants(n, childPrefix)
}

func header(n *Node) string {
	parts := make([]string, 0, len(n.Properties)+1)
	parts = append(parts, n.Name)
	for _, prop := range n.Properties {
		parts = append(parts, formatProperty(prop))
	}
	return strings.Join(parts, " ")
}

func formatProperty(prop Property) string {
	values := make([]string, len(prop.Values))
	for i, v := range prop.Values {
		values[i] = fmt.Sprintf("%v", v)
	}
	if prop.IsMultiValue {
		return fmt.Sprintf("%s=(%s)", prop.Key, strings.Join(values, ", "))
	}
	joined := strings.Join(values, " ")
	if prop.Key == "" {
		return joined
	}
	return fmt.Sprintf("%s=%s", prop.Key, joined)
}
