package soap

import "strconv"

// Node is an ordered XML element tree, used to build requests and to hold
// decoded replies. Element order is significant on the wire.
type Node struct {
	Name     string
	Text     string
	Nil      bool
	Common   bool
	Children []*Node
}

// Str builds a text element.
func Str(name, value string) *Node {
	return &Node{Name: name, Text: value}
}

// OptStr builds a text element, or nil when value is empty.
func OptStr(name, value string) *Node {
	if value == "" {
		return nil
	}
	return Str(name, value)
}

// Bool builds an element holding the literal true/false token.
func Bool(name string, value bool) *Node {
	return &Node{Name: name, Text: strconv.FormatBool(value)}
}

// Group builds a nested element; nil children are skipped.
func Group(name string, children ...*Node) *Node {
	n := &Node{Name: name}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Child returns the first child with the given local name.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Value returns the text of a child element and whether it was provided.
// An element marked xsi:nil counts as not provided.
func (n *Node) Value(name string) (string, bool) {
	c := n.Child(name)
	if c == nil || c.Nil {
		return "", false
	}
	return c.Text, true
}

// Present reports whether the node exists and is not xsi:nil.
func (n *Node) Present() bool {
	return n != nil && !n.Nil
}
