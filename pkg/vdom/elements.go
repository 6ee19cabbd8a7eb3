package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, string.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if !v.IsEmpty() {
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.Props[a.Key] = a.Value
				}
			}

		case *VNode:
			node.AppendChild(v)

		case []*VNode:
			for _, c := range v {
				node.AppendChild(c)
			}

		case string:
			node.AppendChild(Text(v))
		}
	}

	return node
}

// El creates an element with an arbitrary tag.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }

// Div creates a <div> element.
func Div(args ...any) *VNode { return createElement("div", args) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return createElement("span", args) }

// Br creates a <br> element.
func Br(args ...any) *VNode { return createElement("br", args) }
