package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse reads an HTML document. Fragments are accepted; the parser wraps
// them in <html><head></head><body>...</body></html> the way a browser does.
// Doctypes and comments outside <html> are dropped; comments and whitespace
// text inside it are kept.
func Parse(r io.Reader) (*Document, error) {
	top, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}

	for c := top.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			top.RemoveChild(c)
			return newDocument(c, findBody(c)), nil
		}
	}
	return New(), nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// findBody returns the first <body> under root, or root itself.
func findBody(root *html.Node) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "body" {
			return c
		}
	}
	return root
}
