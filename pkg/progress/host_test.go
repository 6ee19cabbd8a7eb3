package progress

import (
	"strings"

	"github.com/vango-dev/progressus/pkg/host"
)

// fakeNode is a minimal host.Node for tests that do not need a real tree.
type fakeNode struct {
	tag      string
	class    string
	text     string
	style    map[string]string
	children []*fakeNode
}

func (n *fakeNode) HasChildNodes() bool { return len(n.children) > 0 }

func (n *fakeNode) ElementsByClassName(class string) []host.Node {
	var out []host.Node
	var walk func(*fakeNode)
	walk = func(p *fakeNode) {
		for _, c := range p.children {
			for _, f := range strings.Fields(c.class) {
				if f == class {
					out = append(out, c)
					break
				}
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func (n *fakeNode) AppendChild(child host.Node) {
	if c, ok := child.(*fakeNode); ok {
		n.children = append(n.children, c)
	}
}

func (n *fakeNode) SetClassName(class string) { n.class = class }

func (n *fakeNode) SetInnerText(text string) {
	n.text = text
	n.children = nil
}

func (n *fakeNode) SetStyle(property, value string) {
	if n.style == nil {
		n.style = make(map[string]string)
	}
	n.style[property] = value
}

// fakeDocument resolves selectors by exact key.
type fakeDocument struct {
	nodes   map[string]*fakeNode
	created int
}

func newFakeDocument() *fakeDocument {
	return &fakeDocument{nodes: make(map[string]*fakeNode)}
}

func (d *fakeDocument) add(selector string, n *fakeNode) *fakeNode {
	d.nodes[selector] = n
	return n
}

func (d *fakeDocument) QuerySelector(selector string) (host.Node, bool) {
	n, ok := d.nodes[selector]
	if !ok {
		return nil, false
	}
	return n, true
}

func (d *fakeDocument) CreateElement(tag string) host.Node {
	d.created++
	return &fakeNode{tag: tag}
}
