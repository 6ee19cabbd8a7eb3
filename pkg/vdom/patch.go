package vdom

import "fmt"

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Update text content
	PatchSetAttr     PatchOp = 0x02 // Set/update attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove attribute
	PatchInsertNode  PatchOp = 0x04 // Insert new node
	PatchRemoveNode  PatchOp = 0x05 // Remove node
	PatchReplaceNode PatchOp = 0x07 // Replace node entirely
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchReplaceNode:
		return "ReplaceNode"
	default:
		return "Unknown"
	}
}

// Patch represents a single DOM operation to apply.
type Patch struct {
	Op       PatchOp // Operation type
	HID      string  // Target element's hydration ID
	Key      string  // Attribute key (for SetAttr/RemoveAttr)
	Value    string  // New value
	Node     *VNode  // For InsertNode/ReplaceNode
	Index    int     // Insert position
	ParentID string  // Parent for InsertNode
}

// String renders the patch as a single human-readable line.
func (p Patch) String() string {
	switch p.Op {
	case PatchSetText:
		return fmt.Sprintf("%s %s %q", p.Op, p.HID, p.Value)
	case PatchSetAttr:
		return fmt.Sprintf("%s %s %s=%q", p.Op, p.HID, p.Key, p.Value)
	case PatchRemoveAttr:
		return fmt.Sprintf("%s %s %s", p.Op, p.HID, p.Key)
	case PatchInsertNode:
		return fmt.Sprintf("%s %s[%d] <%s>", p.Op, p.ParentID, p.Index, nodeLabel(p.Node))
	default:
		return fmt.Sprintf("%s %s", p.Op, p.HID)
	}
}

func nodeLabel(n *VNode) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindText:
		return "#text"
	case KindComment:
		return "#comment"
	}
	return n.Tag
}
