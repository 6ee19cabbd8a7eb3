package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/progressus/pkg/host"
	"github.com/vango-dev/progressus/pkg/render"
	"github.com/vango-dev/progressus/pkg/vdom"
)

// Document is a mutable html.Node tree addressed like a browser document.
type Document struct {
	root     *html.Node
	body     *html.Node
	gen      *vdom.HIDGenerator
	hids     map[*html.Node]string
	elements map[*html.Node]*Element
}

var _ host.Document = (*Document)(nil)

// New returns an empty document: <html><body></body></html>.
func New() *Document {
	root := newElement("html")
	body := newElement("body")
	root.AppendChild(body)
	return newDocument(root, body)
}

func newDocument(root, body *html.Node) *Document {
	return &Document{
		root:     root,
		body:     body,
		gen:      vdom.NewHIDGenerator(),
		hids:     make(map[*html.Node]string),
		elements: make(map[*html.Node]*Element),
	}
}

func newElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// Root returns the document element.
func (d *Document) Root() *Element { return d.wrap(d.root) }

// Body returns the <body> element.
func (d *Document) Body() *Element { return d.wrap(d.body) }

// wrap returns the single Element for a node so that identity comparisons
// between lookups hold.
func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

// CreateElement returns a new detached element with a lowercased tag.
func (d *Document) CreateElement(tag string) host.Node {
	return d.NewElement(tag)
}

// NewElement is CreateElement returning the concrete type.
func (d *Document) NewElement(tag string) *Element {
	return d.wrap(newElement(tag))
}

// Compile parses a CSS selector. Blank selectors and selectors naming a
// pseudo-element are rejected; neither can address an element.
func Compile(selector string) (cascadia.Sel, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, fmt.Errorf("dom: empty selector")
	}
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: selector %q: %w", selector, err)
	}
	if sel.PseudoElement() != "" {
		return nil, fmt.Errorf("dom: selector %q: pseudo-elements match no element", selector)
	}
	return sel, nil
}

// QuerySelector returns the first element matching selector. Invalid
// selectors match nothing.
func (d *Document) QuerySelector(selector string) (host.Node, bool) {
	el, err := d.Query(selector)
	if err != nil || el == nil {
		return nil, false
	}
	return el, true
}

// Query returns the first element matching selector, nil when nothing
// matches, or an error when the selector cannot be parsed.
func (d *Document) Query(selector string) (*Element, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	if n := cascadia.Query(d.root, sel); n != nil {
		return d.wrap(n), nil
	}
	return nil, nil
}

// QueryAll returns every element matching selector in document order.
func (d *Document) QueryAll(selector string) ([]*Element, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	var out []*Element
	for _, n := range cascadia.QueryAll(d.root, sel) {
		out = append(out, d.wrap(n))
	}
	return out, nil
}

// NewElementFor creates a detached element that selector matches, built from
// its tag, #id and .class tokens. Selectors that need ancestors, attributes
// or pseudo-classes to match are rejected.
func (d *Document) NewElementFor(selector string) (*Element, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}

	selector = strings.TrimSpace(selector)
	end := strings.IndexAny(selector, "#.")
	if end < 0 {
		end = len(selector)
	}
	tag := selector[:end]
	if tag == "" || tag == "*" {
		tag = "div"
	}
	if !isName(tag) {
		return nil, fmt.Errorf("dom: selector %q: cannot build an element for it", selector)
	}
	el := d.NewElement(tag)

	var classes []string
	for rest := selector[end:]; rest != ""; {
		kind := rest[0]
		next := strings.IndexAny(rest[1:], "#.")
		if next < 0 {
			next = len(rest) - 1
		}
		name := rest[1 : next+1]
		rest = rest[next+1:]
		if !isName(name) {
			return nil, fmt.Errorf("dom: selector %q: cannot build an element for it", selector)
		}
		if kind == '#' {
			el.SetAttr("id", name)
		} else {
			classes = append(classes, name)
		}
	}
	if len(classes) > 0 {
		el.SetClassName(strings.Join(classes, " "))
	}

	if !sel.Match(el.node) {
		return nil, fmt.Errorf("dom: selector %q: cannot build an element for it", selector)
	}
	return el, nil
}

// isName reports whether s is a plain identifier token.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// Snapshot returns a vdom copy of the current tree, assigning hydration IDs
// to any element that has none.
func (d *Document) Snapshot() *vdom.VNode {
	d.assignHIDs()
	return d.toVNode(d.root)
}

// DiffSince returns the patches that turn snapshot into the current tree.
func (d *Document) DiffSince(snapshot *vdom.VNode) []vdom.Patch {
	return vdom.Diff(snapshot, d.Snapshot())
}

// HTML renders the whole document.
func (d *Document) HTML() (string, error) {
	return d.render(d.root, render.RendererConfig{})
}

// Pretty renders the whole document with indentation and hydration IDs.
func (d *Document) Pretty() (string, error) {
	d.assignHIDs()
	return d.render(d.root, render.RendererConfig{Pretty: true, IncludeHIDs: true})
}

func (d *Document) render(n *html.Node, cfg render.RendererConfig) (string, error) {
	return render.NewRenderer(cfg).RenderToString(d.toVNode(n))
}

// assignHIDs gives every attached element a hydration ID in document order.
func (d *Document) assignHIDs() {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, ok := d.hids[n]; !ok {
				d.hids[n] = d.gen.Next()
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
}

// toVNode copies an html.Node subtree into vdom nodes. Doctypes and other
// non-content nodes are skipped.
func (d *Document) toVNode(n *html.Node) *vdom.VNode {
	switch n.Type {
	case html.TextNode:
		return vdom.Text(n.Data)
	case html.CommentNode:
		return vdom.Comment(n.Data)
	case html.ElementNode:
		el := vdom.El(n.Data)
		el.HID = d.hids[n]
		for _, a := range n.Attr {
			el.SetAttr(attrKey(a), a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if v := d.toVNode(c); v != nil {
				el.AppendChild(v)
			}
		}
		return el
	default:
		return nil
	}
}

func attrKey(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}
