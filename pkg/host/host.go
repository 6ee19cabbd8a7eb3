// Package host declares the document capability a progress widget is
// attached to.
//
// The widget never builds or queries a tree itself; it locates its container
// and mutates a handful of nodes through these interfaces. pkg/dom provides
// the in-memory implementation used by the CLI and tests.
package host

// Document locates and creates nodes.
type Document interface {
	// QuerySelector returns the first element matching selector in
	// document order.
	QuerySelector(selector string) (Node, bool)

	// CreateElement returns a new detached element.
	CreateElement(tag string) Node
}

// Node is a mutable element of a Document.
type Node interface {
	// HasChildNodes reports whether the node has any children, text
	// included.
	HasChildNodes() bool

	// ElementsByClassName returns the descendants carrying class, in
	// document order.
	ElementsByClassName(class string) []Node

	// AppendChild adds child as the last child.
	AppendChild(child Node)

	// SetClassName replaces the class attribute.
	SetClassName(class string)

	// SetInnerText replaces the node's children with text.
	SetInnerText(text string)

	// SetStyle sets one inline style property.
	SetStyle(property, value string)
}
