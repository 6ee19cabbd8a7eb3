package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/vango-dev/progressus/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// IncludeHIDs renders each element's hydration ID as a data-hid
	// attribute so patches can be matched against the markup.
	IncludeHIDs bool
}

// Renderer serializes VNode trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindComment:
		if r.config.Pretty && depth > 0 {
			r.writeIndent(w, depth)
		}
		if _, err := fmt.Fprintf(w, "<!--%s-->", node.Text); err != nil {
			return err
		}
		r.newline(w)
		return nil
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("element without tag")
	}

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if r.config.IncludeHIDs && node.HID != "" {
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, escapeAttr(node.HID)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		r.newline(w)
		return nil
	}

	block := r.config.Pretty && hasElementChildren(node)
	if block {
		r.newline(w)
	}

	for _, child := range node.Children {
		if block && child.Kind == vdom.KindText {
			r.writeIndent(w, depth+1)
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
			r.newline(w)
			continue
		}
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if block {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	r.newline(w)
	return nil
}

// renderAttributes renders all attributes for an element in key order.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrToString(value))); err != nil {
			return err
		}
	}

	return nil
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *Renderer) newline(w io.Writer) {
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
