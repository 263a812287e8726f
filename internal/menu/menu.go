package menu

import (
	"fmt"
	"strings"

	"quickswitch/internal/models"
)

// classNameMargin is the gap between the widest class column and the
// window names, so the two columns stay readable in the picker.
const classNameMargin = 5

// Menu maps the human-scannable labels shown by the picker back to
// their targets. Labels keep their insertion order; a map alone would
// shuffle the picker list between runs.
type Menu struct {
	labels  []string
	targets map[string]models.Target
}

// ForWorkspaces builds a menu whose labels are the workspace names
// verbatim. Workspace names are unique within one manager instance.
func ForWorkspaces(names []string) *Menu {
	m := newMenu(len(names))
	for _, name := range names {
		m.add(name, models.WorkspaceTarget(name))
	}
	return m
}

// ForWindows builds a menu with the class name left-justified into a
// shared column followed by the window name. Two windows that would
// render the same label get the window id appended so both stay
// selectable.
func ForWindows(windows []models.Window) *Menu {
	width := maxClassWidth(windows) + classNameMargin
	m := newMenu(len(windows))
	for _, w := range windows {
		label := fmt.Sprintf("%-*s%s", width, w.Class, w.Name)
		if _, taken := m.targets[label]; taken {
			label = fmt.Sprintf("%s [%d]", label, w.ID)
		}
		m.add(label, models.WindowTarget(w))
	}
	return m
}

func newMenu(capacity int) *Menu {
	return &Menu{
		labels:  make([]string, 0, capacity),
		targets: make(map[string]models.Target, capacity),
	}
}

func (m *Menu) add(label string, target models.Target) {
	m.labels = append(m.labels, label)
	m.targets[label] = target
}

// Labels returns the picker lines in insertion order.
func (m *Menu) Labels() []string {
	return m.labels
}

// Lookup resolves a picked label back to its target.
func (m *Menu) Lookup(label string) (models.Target, bool) {
	target, ok := m.targets[label]
	return target, ok
}

func (m *Menu) Len() int {
	return len(m.labels)
}

// Lines joins the labels into the block written to the picker's stdin.
func (m *Menu) Lines() string {
	return strings.Join(m.labels, "\n")
}

func maxClassWidth(windows []models.Window) int {
	max := 0
	for _, w := range windows {
		if len(w.Class) > max {
			max = len(w.Class)
		}
	}
	return max
}
