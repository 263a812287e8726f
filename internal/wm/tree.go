package wm

import (
	"slices"

	"quickswitch/internal/models"
)

// Node is one vertex of the manager's layout tree as returned by the
// GET_TREE query. Pointer fields distinguish absent from empty.
type Node struct {
	ID               int64             `json:"id"`
	Name             *string           `json:"name"`
	Type             string            `json:"type"`
	Window           *int              `json:"window"`
	WindowProperties *WindowProperties `json:"window_properties"`
	Nodes            []Node            `json:"nodes"`
}

// WindowProperties carries the X11 properties i3 attaches to leaves
// that hold a real window.
type WindowProperties struct {
	Class    string `json:"class"`
	Instance string `json:"instance"`
	Title    string `json:"title"`
}

// internal helper windows that must never be offered for selection
var ignoreWindowNames = []string{"__i3_scratch"}

// classes of non-application windows such as status bars
var ignoreWindowClasses = []string{"i3bar"}

// SelectableWindows flattens the tree below the given roots and keeps
// the leaves that represent real application windows, in depth-first
// order.
func SelectableWindows(nodes []Node) []models.Window {
	var windows []models.Window
	for _, leaf := range flattenLeaves(nodes) {
		if !selectableLeaf(leaf) {
			continue
		}
		if leaf.Name == nil {
			continue
		}
		w := models.Window{ID: *leaf.Window, Name: *leaf.Name}
		if leaf.WindowProperties != nil {
			w.Class = leaf.WindowProperties.Class
		}
		windows = append(windows, w)
	}
	return windows
}

// flattenLeaves descends depth-first. Interior nodes are expanded and
// never emitted themselves; leaves are emitted whatever they are, and
// the filter decides what survives.
func flattenLeaves(nodes []Node) []*Node {
	var leaves []*Node
	for i := range nodes {
		n := &nodes[i]
		if len(n.Nodes) > 0 {
			leaves = append(leaves, flattenLeaves(n.Nodes)...)
		} else {
			leaves = append(leaves, n)
		}
	}
	return leaves
}

// selectableLeaf reports whether a leaf stands for an application
// window worth offering.
func selectableLeaf(n *Node) bool {
	if n.Window == nil {
		// no X11 window id means a layout construct, not a window
		return false
	}
	if n.Name == nil || slices.Contains(ignoreWindowNames, *n.Name) {
		return false
	}
	if n.WindowProperties != nil && slices.Contains(ignoreWindowClasses, n.WindowProperties.Class) {
		return false
	}
	return true
}
