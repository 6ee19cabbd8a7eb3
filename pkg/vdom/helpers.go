package vdom

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Comment creates a comment node.
func Comment(content string) *VNode {
	return &VNode{
		Kind: KindComment,
		Text: content,
	}
}
