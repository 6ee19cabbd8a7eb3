// Package render serializes vdom trees to HTML.
//
// It handles the parts of producing valid, safe markup that the widget's host
// document needs:
//
//   - Text and attribute escaping
//   - Void elements (input, br, img, etc.)
//   - Boolean attributes (hidden, disabled, etc.)
//   - Deterministic attribute order
//   - Optional pretty printing and hydration ID attributes
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To stream HTML to a writer:
//
//	err := renderer.RenderToWriter(w, node)
package render
