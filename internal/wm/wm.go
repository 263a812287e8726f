package wm

// Manager is the slice of the window manager's IPC surface the tool
// consumes: two queries and one command send.
type Manager interface {
	// Tree returns the children of the layout tree's root.
	Tree() ([]Node, error)
	// Workspaces returns the current workspace list.
	Workspaces() ([]Workspace, error)
	// Command sends a textual command and fails if the manager
	// rejects it.
	Command(command string) error
}

// Workspace is one entry of the GET_WORKSPACES reply.
type Workspace struct {
	Num     int    `json:"num"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Focused bool   `json:"focused"`
	Urgent  bool   `json:"urgent"`
	Output  string `json:"output"`
}
