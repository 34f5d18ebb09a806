// Package tree converts plan nodes into a tree structure that can be printed
// for debugging and golden tests.
package tree

// Property represents a key-value property of a [Node]. The value is either
// a single value or a list of values. A single-value property is rendered as
// `key=value`, a multi-value property as `key=(value1, value2, ...)`, and a
// property with an empty key as the bare value.
type Property struct {
	// Key is the name of the property.
	Key string
	// Values holds the value(s) of the property.
	Values []any
	// IsMultiValue marks whether the property is a multi-value property.
	IsMultiValue bool
}

// NewProperty creates a new Property with the specified key, multi-value
// flag, and values.
func NewProperty(key string, multi bool, values ...any) Property {
	return Property{
		Key:          key,
		Values:       values,
		IsMultiValue: multi,
	}
}

// Node represents a node in a tree structure that can be traversed and
// printed by the [Printer]. Each node can have multiple properties and
// multiple children.
type Node struct {
	// Name is the display name of the node.
	Name string
	// Properties contains a list of key-value properties associated with the node.
	Properties []Property
	// Children are child nodes of the node.
	Children []*Node
	// Comments, like Children, are child nodes, with the difference that
	// comments are indented a level deeper than children. They hold
	// tree-style properties of a node, such as the expressions of a plan
	// node.
	Comments []*Node
}

// NewNode creates a new node with the given name and properties.
func NewNode(name string, properties ...Property) *Node {
	return &Node{
		Name:       name,
		Properties: properties,
	}
}

// AddChild creates a new node with the given name and properties and adds it
// to the parent node.
func (n *Node) AddChild(name string, properties ...Property) *Node {
	child := NewNode(name, properties...)
	n.Children = append(n.Children, child)
	return child
}

// AddComment creates a new node with the given name and properties and adds
// it to the parent node's comments.
func (n *Node) AddComment(name string, properties ...Property) *Node {
	node := NewNode(name, properties...)
	n.Comments = append(n.Comments, node)
	return node
}
