// Package dom is an in-memory host document for progress widgets.
//
// A Document owns a golang.org/x/net/html tree and implements host.Document;
// its elements implement host.Node. Documents are created empty with New or
// from existing markup with Parse:
//
//	doc, err := dom.ParseString(`<div class="abc"></div>`)
//	el, ok := doc.QuerySelector(".abc")
//
// # Selectors
//
// Selectors are compiled by cascadia, so QuerySelector accepts the same CSS
// Level 3 grammar as a browser: combinators, attribute selectors, groups and
// structural pseudo-classes. A selector cascadia rejects is a syntax error
// reported by Query and treated as "no match" by QuerySelector.
//
// # Snapshots
//
// Snapshot captures the current tree as vdom nodes; DiffSince returns the vdom patches that
// happened after a snapshot was taken. Every element gets a stable hydration
// ID the first time a snapshot or diff sees it.
//
// A Document is not safe for concurrent use.
package dom
