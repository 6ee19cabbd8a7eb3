package vdom

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Diff compares two VNode trees and returns the patches needed to transform prev into next.
// Patches are emitted in document order; attribute patches on one element are
// sorted by key.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

// diff recursively compares nodes and appends patches.
// parentHID is the HID of the parent element, used for text patches.
func diff(prev, next *VNode, parentHID string, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Node added (handled by parent via InsertNode)
	if prev == nil {
		return
	}

	if next == nil {
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			HID: prev.HID,
		})
		return
	}

	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  targetHID(prev, parentHID),
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText:
		diffText(prev, next, parentHID, patches)
	case KindComment:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{
				Op:   PatchReplaceNode,
				HID:  targetHID(prev, parentHID),
				Node: next,
			})
		}
	case KindElement:
		diffElement(prev, next, patches)
	}
}

// targetHID falls back to the parent when a node carries no HID of its own.
func targetHID(n *VNode, parentHID string) string {
	if n.HID != "" {
		return n.HID
	}
	return parentHID
}

// diffText compares text nodes. Text nodes have no HID, so the patch targets
// the parent element and the client replaces its text content.
func diffText(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID

	if prev.Text != next.Text {
		if hid := targetHID(prev, parentHID); hid != "" {
			*patches = append(*patches, Patch{
				Op:    PatchSetText,
				HID:   hid,
				Value: next.Text,
			})
		}
	}
}

// diffElement compares element nodes.
func diffElement(prev, next *VNode, patches *[]Patch) {
	if prev.Tag != next.Tag {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	next.HID = prev.HID

	diffProps(prev, next, patches)

	// A single text child that changed, appeared or vanished is one SetText
	// on the element rather than an insert or remove.
	if isTextOnly(prev) && isTextOnly(next) {
		if prev.TextContent() != next.TextContent() {
			*patches = append(*patches, Patch{
				Op:    PatchSetText,
				HID:   prev.HID,
				Value: next.TextContent(),
			})
		}
		return
	}

	diffChildren(prev, next, patches)
}

// isTextOnly reports whether an element has no children or a single text child.
func isTextOnly(n *VNode) bool {
	return len(n.Children) == 0 || (len(n.Children) == 1 && n.Children[0].Kind == KindText)
}

// diffProps compares and patches attributes.
func diffProps(prev, next *VNode, patches *[]Patch) {
	keys := make(map[string]struct{}, len(prev.Props)+len(next.Props))
	for k := range prev.Props {
		keys[k] = struct{}{}
	}
	for k := range next.Props {
		keys[k] = struct{}{}
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	for _, key := range sorted {
		prevVal, inPrev := prev.Props[key]
		nextVal, inNext := next.Props[key]

		switch {
		case inPrev && !inNext:
			*patches = append(*patches, Patch{
				Op:  PatchRemoveAttr,
				HID: prev.HID,
				Key: key,
			})
		case !inPrev && inNext, !propsEqual(prevVal, nextVal):
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: propToString(nextVal),
			})
		}
	}
}

// diffChildren compares children by position.
func diffChildren(parent, next *VNode, patches *[]Patch) {
	prev := parent.Children
	nextChildren := next.Children

	n := len(prev)
	if len(nextChildren) > n {
		n = len(nextChildren)
	}

	for i := 0; i < n; i++ {
		var prevChild, nextChild *VNode
		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(nextChildren) {
			nextChild = nextChildren[i]
		}

		if prevChild == nil {
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.HID,
				Index:    i,
				Node:     nextChild,
			})
			continue
		}
		diff(prevChild, nextChild, parent.HID, patches)
	}
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

// propToString converts a prop value to a string for the patch.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
