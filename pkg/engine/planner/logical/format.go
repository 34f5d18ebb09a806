package logical

import (
	"fmt"
	"io"
	"strings"

	"github.com/driftlake/driftlake/pkg/engine/planner/internal/tree"
)

// BuildTree converts a logical plan node and its children into a tree
// structure that can be used for visualization and debugging purposes.
func BuildTree(p Plan) *tree.Node {
	root := toTreeNode(p)
	for _, child := range p.Children() {
		root.Children = append(root.Children, BuildTree(child))
	}
	return root
}

func toTreeNode(p Plan) *tree.Node {
	node := tree.NewNode(p.Type().String())
	switch p := p.(type) {
	case *MakeTable:
		node.Properties = []tree.Property{
			tree.NewProperty("name", false, p.TableName),
		}
	case *Projection:
		for _, expr := range p.Expressions() {
			node.Comments = append(node.Comments, exprTree(expr))
		}
	case *Select:
		node.Comments = append(node.Comments, exprTree(p.Predicate()))
	case *Unnest:
		node.Properties = []tree.Property{
			tree.NewProperty("column", false, p.Column()),
		}
	case *Limit:
		node.Properties = []tree.Property{
			tree.NewProperty("skip", false, p.Skip()),
			tree.NewProperty("fetch", false, p.Fetch()),
		}
	}
	return node
}

func exprTree(e Expr) *tree.Node {
	switch e := e.(type) {
	case *ColumnRef:
		return tree.NewNode("ColumnRef", tree.NewProperty("", false, e.Ref.String()))
	case *Literal:
		return tree.NewNode("Literal",
			tree.NewProperty("value", false, e.String()),
			tree.NewProperty("kind", false, e.Kind()),
		)
	case *BinOp:
		node := tree.NewNode("BinOp", tree.NewProperty("op", false, e.Op))
		node.Children = append(node.Children, exprTree(e.Left), exprTree(e.Right))
		return node
	case *ScalarFn:
		node := tree.NewNode("ScalarFn", tree.NewProperty("name", false, e.Name))
		for _, arg := range e.Args {
			node.Children = append(node.Children, exprTree(arg))
		}
		return node
	case *Alias:
		node := tree.NewNode("Alias", tree.NewProperty("name", false, e.Name))
		node.Children = append(node.Children, exprTree(e.Expr))
		return node
	default:
		return tree.NewNode(fmt.Sprintf("%T", e))
	}
}

// PrintTree writes a human-readable tree representation of p to w.
func PrintTree(w io.Writer, p Plan) {
	tree.NewPrinter(w).Print(BuildTree(p))
}

// PlanString returns the tree representation of p as a string.
func PlanString(p Plan) string {
	var sb strings.Builder
	PrintTree(&sb, p)
	return sb.String()
}
