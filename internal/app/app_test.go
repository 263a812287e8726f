package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"quickswitch/internal/wm"
	"quickswitch/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(logger.WithLevel(zerolog.Disabled))
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	return log
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// fakeManager serves canned query replies and records sent commands.
type fakeManager struct {
	tree       []wm.Node
	workspaces []wm.Workspace
	queryErr   error
	commandErr error

	commands []string
}

func (f *fakeManager) Tree() ([]wm.Node, error) {
	return f.tree, f.queryErr
}

func (f *fakeManager) Workspaces() ([]wm.Workspace, error) {
	return f.workspaces, f.queryErr
}

func (f *fakeManager) Command(command string) error {
	f.commands = append(f.commands, command)
	return f.commandErr
}

func window(id int, name, class string) wm.Node {
	n := wm.Node{Window: intPtr(id), Name: strPtr(name)}
	if class != "" {
		n.WindowProperties = &wm.WindowProperties{Class: class}
	}
	return n
}

func newTestApp(t *testing.T, mode Mode, conn *fakeManager, choice string) *QuickSwitch {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Mode = mode
	q, err := New(cfg, conn, newTestLogger(t))
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}
	q.notifier = nil
	q.pick = func(lines []string) (string, error) {
		return choice + "\n", nil
	}
	return q
}

func TestMoveModeEndToEnd(t *testing.T) {
	conn := &fakeManager{tree: []wm.Node{
		{Name: strPtr("content"), Nodes: []wm.Node{
			window(5, "Inbox", "Mail"),
			window(9, "Editor", "Code"),
		}},
	}}

	q := newTestApp(t, ModeMove, conn, "")
	var fed []string
	q.pick = func(lines []string) (string, error) {
		fed = lines
		return lines[1] + "\n", nil
	}

	if err := q.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fed) != 2 {
		t.Fatalf("expected two candidate labels, got %#v", fed)
	}
	if len(conn.commands) != 1 || conn.commands[0] != `[id="9"] move workspace current` {
		t.Fatalf("unexpected commands %#v", conn.commands)
	}
}

func TestMoveModeUnknownChoiceIsNoOp(t *testing.T) {
	conn := &fakeManager{tree: []wm.Node{window(5, "Inbox", "Mail")}}

	q := newTestApp(t, ModeMove, conn, "something the picker made up")
	if err := q.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.commands) != 0 {
		t.Fatalf("expected no command, got %#v", conn.commands)
	}
}

func TestWorkspaceModeSwitchesToKnownWorkspace(t *testing.T) {
	conn := &fakeManager{workspaces: []wm.Workspace{
		{Num: 1, Name: "1: term"},
		{Num: 2, Name: "2: web"},
	}}

	q := newTestApp(t, ModeWorkspace, conn, "2: web")
	if err := q.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.commands) != 1 || conn.commands[0] != "workspace 2: web" {
		t.Fatalf("unexpected commands %#v", conn.commands)
	}
}

func TestWorkspaceModeUnknownChoiceCreatesWorkspace(t *testing.T) {
	conn := &fakeManager{workspaces: []wm.Workspace{{Num: 1, Name: "1: term"}}}

	q := newTestApp(t, ModeWorkspace, conn, "scratch")
	if err := q.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.commands) != 1 || conn.commands[0] != "workspace scratch" {
		t.Fatalf("expected literal fallback, got %#v", conn.commands)
	}
}

func TestEmptySelectionIsNoOp(t *testing.T) {
	conn := &fakeManager{workspaces: []wm.Workspace{{Num: 1, Name: "1: term"}}}

	q := newTestApp(t, ModeWorkspace, conn, "")
	if err := q.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.commands) != 0 {
		t.Fatalf("expected no command for empty selection, got %#v", conn.commands)
	}
}

func TestQueryFailureAborts(t *testing.T) {
	conn := &fakeManager{queryErr: errors.New("socket gone")}

	q := newTestApp(t, ModeMove, conn, "anything")
	if err := q.Run(); err == nil {
		t.Fatal("expected query failure to abort the run")
	}
	if len(conn.commands) != 0 {
		t.Fatalf("expected no command after failed query, got %#v", conn.commands)
	}
}

func TestCommandFailureDoesNotAbort(t *testing.T) {
	conn := &fakeManager{
		workspaces: []wm.Workspace{{Num: 1, Name: "1: term"}},
		commandErr: errors.New("unknown command"),
	}

	q := newTestApp(t, ModeWorkspace, conn, "1: term")
	if err := q.Run(); err != nil {
		t.Fatalf("expected command failure to be non-fatal, got %v", err)
	}
}

func TestMoveModeLabelsShareClassColumn(t *testing.T) {
	conn := &fakeManager{tree: []wm.Node{
		window(1, "Inbox", "abc"),
		window(2, "Editor", "abcdefg"),
		window(3, "Popup", ""),
	}}

	q := newTestApp(t, ModeMove, conn, "")
	var fed []string
	q.pick = func(lines []string) (string, error) {
		fed = lines
		return "", nil
	}

	if err := q.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, label := range fed {
		name := label[strings.LastIndex(label, " ")+1:]
		if idx := strings.Index(label, name); idx != 12 {
			t.Fatalf("expected names to start at column 12, got %d in %q", idx, label)
		}
	}
}

func TestRunWithoutModeFails(t *testing.T) {
	q := newTestApp(t, ModeNone, &fakeManager{}, "")
	if err := q.Run(); err == nil {
		t.Fatal("expected error when no mode is selected")
	}
}
