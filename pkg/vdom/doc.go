// Package vdom provides the snapshot tree the progressus host document is
// diffed and rendered through.
//
// VNode is the fundamental building block. Elements carry a tag, attribute
// props and children; text and comment nodes carry their content. Trees are built with
// variadic factory functions:
//
//	Div(Class("progress"), ID("upload"),
//	    Div(Class("progress-bar-progress"), StyleAttr("width: 0%")),
//	    Span(Text("Installing...")),
//	)
//
// # Style
//
// StyleValue and SetStyleValue read and edit inline style strings, keeping
// declaration order stable so rendered output is deterministic.
//
// # Diffing
//
// Diff compares two trees and returns the Patch operations that turn one
// into the other. Patches address elements by hydration ID; AssignAllHIDs
// numbers every element so a tree and its Clone can be compared.
package vdom
