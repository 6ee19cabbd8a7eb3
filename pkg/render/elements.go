package render

import "github.com/vango-dev/progressus/pkg/vdom"

// booleanAttrs are attributes that don't need a value.
// When true, they're rendered as just the attribute name.
var booleanAttrs = map[string]bool{
	"async":     true,
	"autofocus": true,
	"checked":   true,
	"defer":     true,
	"disabled":  true,
	"hidden":    true,
	"multiple":  true,
	"open":      true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

// isBooleanAttr returns true if the attribute is a boolean attribute.
func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// hasElementChildren reports whether any child is an element or comment,
// which makes the pretty printer break lines inside the parent.
func hasElementChildren(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c.Kind != vdom.KindText {
			return true
		}
	}
	return false
}
