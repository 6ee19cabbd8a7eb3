package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates unique hydration IDs.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// AssignAllHIDs assigns an HID to every element that does not have one yet.
func AssignAllHIDs(node *VNode, gen *HIDGenerator) {
	node.Walk(func(n *VNode) bool {
		if n.Kind == KindElement && n.HID == "" {
			n.HID = gen.Next()
		}
		return true
	})
}
