package vdom

import "strings"

// StyleDecl is one property declaration of an inline style.
type StyleDecl struct {
	Property string
	Value    string
}

// ParseStyle splits an inline style attribute into declarations, keeping
// source order. Empty and malformed declarations are dropped and property
// names are lowercased.
func ParseStyle(style string) []StyleDecl {
	var decls []StyleDecl
	for _, part := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" {
			continue
		}
		decls = append(decls, StyleDecl{Property: prop, Value: value})
	}
	return decls
}

// FormatStyle joins declarations back into an inline style attribute.
func FormatStyle(decls []StyleDecl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// StyleValue returns the value of property in an inline style string.
func StyleValue(style, property string) (string, bool) {
	property = strings.ToLower(property)
	for _, d := range ParseStyle(style) {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// SetStyleValue returns style with property set to value, replaced in place
// or appended. An empty value removes the property.
func SetStyleValue(style, property, value string) string {
	property = strings.ToLower(property)
	decls := ParseStyle(style)

	found := false
	out := decls[:0]
	for _, d := range decls {
		if d.Property == property {
			found = true
			if value == "" {
				continue
			}
			d.Value = value
		}
		out = append(out, d)
	}
	if !found && value != "" {
		out = append(out, StyleDecl{Property: property, Value: value})
	}
	return FormatStyle(out)
}
