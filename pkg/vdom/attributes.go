package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("role", "progress") → data-role="progress"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return attr("title", title) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// A sets an arbitrary attribute.
func A(key string, value any) Attr { return attr(key, value) }
