package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <span>, etc.
	KindText                 // Plain text node
	KindComment              // <!-- ... -->
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindComment
	HID      string   // Hydration ID (assigned by AssignAllHIDs)
}

// Props holds element attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attr returns the string form of an attribute and whether it is set.
func (v *VNode) Attr(key string) (string, bool) {
	if v == nil || v.Props == nil {
		return "", false
	}
	val, ok := v.Props[key]
	if !ok {
		return "", false
	}
	return propToString(val), true
}

// SetAttr sets an attribute, allocating Props if needed.
func (v *VNode) SetAttr(key string, value any) {
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[key] = value
}

// AppendChild adds child as the last child of v.
func (v *VNode) AppendChild(child *VNode) {
	if child == nil {
		return
	}
	v.Children = append(v.Children, child)
}

// TextContent returns the concatenated text of v and its descendants.
// Comments contribute nothing.
func (v *VNode) TextContent() string {
	if v == nil || v.Kind == KindComment {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	var out []byte
	for _, c := range v.Children {
		out = append(out, c.TextContent()...)
	}
	return string(out)
}

// SetTextContent replaces all children of v with a single text node.
// An empty string leaves v without children.
func (v *VNode) SetTextContent(text string) {
	if v.Kind == KindText {
		v.Text = text
		return
	}
	if text == "" {
		v.Children = nil
		return
	}
	v.Children = []*VNode{Text(text)}
}

// Clone returns a deep copy of the tree rooted at v, HIDs included.
func (v *VNode) Clone() *VNode {
	if v == nil {
		return nil
	}
	c := &VNode{
		Kind: v.Kind,
		Tag:  v.Tag,
		Text: v.Text,
		HID:  v.HID,
	}
	if v.Props != nil {
		c.Props = make(Props, len(v.Props))
		for k, val := range v.Props {
			c.Props[k] = val
		}
	}
	if len(v.Children) > 0 {
		c.Children = make([]*VNode, len(v.Children))
		for i, child := range v.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Walk visits v and its descendants in document order. Returning false from
// fn stops the walk.
func (v *VNode) Walk(fn func(*VNode) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v) {
		return false
	}
	for _, c := range v.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
