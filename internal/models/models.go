package models

import "fmt"

// Window is one selectable application window from the manager's tree.
// An empty Class means the window reported no class.
type Window struct {
	ID    int
	Name  string
	Class string
}

// Workspace is one named virtual desktop.
type Workspace struct {
	Name string
}

// Kind discriminates the two selectable target variants.
type Kind int

const (
	KindWindow Kind = iota
	KindWorkspace
)

// Target is what the user ultimately picks: either a window or a
// workspace. Exactly these two kinds exist, so a closed variant stored
// by value replaces any interface indirection.
type Target struct {
	Kind      Kind
	Window    Window
	Workspace Workspace
}

func WindowTarget(w Window) Target {
	return Target{Kind: KindWindow, Window: w}
}

func WorkspaceTarget(name string) Target {
	return Target{Kind: KindWorkspace, Workspace: Workspace{Name: name}}
}

// SelectString renders the target as an i3 command selector: windows
// become an id criteria block, workspaces are addressed by bare name.
func (t Target) SelectString() string {
	switch t.Kind {
	case KindWindow:
		return fmt.Sprintf("[id=\"%d\"]", t.Window.ID)
	case KindWorkspace:
		return t.Workspace.Name
	}
	return ""
}
