package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/vango-dev/progressus/pkg/host"
	"github.com/vango-dev/progressus/pkg/render"
	"github.com/vango-dev/progressus/pkg/vdom"
)

// Element is an element node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

var _ host.Node = (*Element)(nil)

// Node returns the underlying html node.
func (e *Element) Node() *html.Node { return e.node }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.node.Data }

// HID returns the element's hydration ID, or "" until a snapshot or pretty
// render has seen it attached.
func (e *Element) HID() string { return e.doc.hids[e.node] }

// HasChildNodes reports whether the element has any child node, text and
// comments included.
func (e *Element) HasChildNodes() bool {
	return e.node.FirstChild != nil
}

func (e *Element) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.node).Selection
}

// Children returns the element children, skipping text and comments.
func (e *Element) Children() []*Element {
	var out []*Element
	e.selection().Children().Each(func(_ int, s *goquery.Selection) {
		out = append(out, e.doc.wrap(s.Get(0)))
	})
	return out
}

// ElementsByClassName returns the descendants carrying class, in document
// order. The element itself is not included.
func (e *Element) ElementsByClassName(class string) []host.Node {
	if strings.TrimSpace(class) == "" {
		return nil
	}
	var out []host.Node
	e.selection().Find("*").
		FilterFunction(func(_ int, s *goquery.Selection) bool { return s.HasClass(class) }).
		Each(func(_ int, s *goquery.Selection) {
			out = append(out, e.doc.wrap(s.Get(0)))
		})
	return out
}

// AppendChild moves child to the end of the element's children. Nodes that
// do not belong to a dom.Document, and ancestors of e, are ignored.
func (e *Element) AppendChild(child host.Node) {
	c, ok := child.(*Element)
	if !ok || c == nil {
		return
	}
	for p := e.node; p != nil; p = p.Parent {
		if p == c.node {
			return
		}
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

// ClassName returns the class attribute.
func (e *Element) ClassName() string {
	s, _ := e.Attr("class")
	return s
}

// SetClassName replaces the class attribute.
func (e *Element) SetClassName(class string) {
	e.SetAttr("class", class)
}

// Attr returns an attribute value.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if attrKey(a) == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, keeping its position when it already exists.
func (e *Element) SetAttr(key, value string) {
	for i, a := range e.node.Attr {
		if attrKey(a) == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr deletes an attribute.
func (e *Element) RemoveAttr(key string) {
	out := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if attrKey(a) != key {
			out = append(out, a)
		}
	}
	e.node.Attr = out
}

// InnerText returns the concatenated text of the element. Comments
// contribute nothing.
func (e *Element) InnerText() string {
	return e.selection().Text()
}

// SetInnerText replaces the element's children with text. An empty string
// leaves the element without children.
func (e *Element) SetInnerText(text string) {
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
	}
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// Style returns one inline style property.
func (e *Element) Style(property string) string {
	s, _ := e.Attr("style")
	v, _ := vdom.StyleValue(s, property)
	return v
}

// SetStyle sets one inline style property.
func (e *Element) SetStyle(property, value string) {
	s, _ := e.Attr("style")
	if out := vdom.SetStyleValue(s, property, value); out != "" {
		e.SetAttr("style", out)
		return
	}
	e.RemoveAttr("style")
}

// OuterHTML renders the element and its subtree.
func (e *Element) OuterHTML() (string, error) {
	return e.doc.render(e.node, render.RendererConfig{})
}

// Pretty renders the subtree with indentation and hydration IDs.
func (e *Element) Pretty() (string, error) {
	e.doc.assignHIDs()
	return e.doc.render(e.node, render.RendererConfig{Pretty: true, IncludeHIDs: true})
}
