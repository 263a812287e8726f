package wm

import (
	"net"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

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

// fakeManager answers exactly one framed request on a unix socket and
// records what arrived. done closes once the request is served; tests
// must receive from it before inspecting the got fields.
type fakeManager struct {
	listener net.Listener
	done     chan struct{}

	gotType    messageType
	gotPayload string
}

func newFakeManager(t *testing.T, replyType messageType, reply string) *fakeManager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ipc.sock")
	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	f := &fakeManager{listener: listener, done: make(chan struct{})}
	t.Cleanup(func() { listener.Close() })

	go func() {
		defer close(f.done)
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		reqType, payload, err := readMessage(conn)
		if err != nil {
			return
		}
		f.gotType = reqType
		f.gotPayload = string(payload)
		writeMessage(conn, replyType, []byte(reply))
	}()
	return f
}

func (f *fakeManager) client(t *testing.T) *Client {
	t.Helper()
	return &Client{socketPath: f.listener.Addr().String(), log: newTestLogger(t)}
}

func TestClientCommandRoundTrip(t *testing.T) {
	fake := newFakeManager(t, runCommand, `[{"success": true}]`)

	if err := fake.client(t).Command(`[id="9"] move workspace current`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-fake.done
	if fake.gotType != runCommand {
		t.Fatalf("expected RUN_COMMAND message, got %d", fake.gotType)
	}
	if fake.gotPayload != `[id="9"] move workspace current` {
		t.Fatalf("unexpected payload %q", fake.gotPayload)
	}
}

func TestClientCommandRejection(t *testing.T) {
	fake := newFakeManager(t, runCommand, `[{"success": false, "error": "Unknown command"}]`)

	err := fake.client(t).Command("bogus")
	if err == nil {
		t.Fatal("expected error for rejected command")
	}
}

func TestClientTreeParsesNodes(t *testing.T) {
	reply := `{
		"id": 1, "name": "root", "nodes": [
			{"id": 2, "name": "output", "nodes": [
				{"id": 3, "name": "Editor", "window": 9,
				 "window_properties": {"class": "Code"}, "nodes": []}
			]}
		]
	}`
	fake := newFakeManager(t, getTree, reply)

	nodes, err := fake.client(t).Tree()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	windows := SelectableWindows(nodes)
	if len(windows) != 1 || windows[0].ID != 9 || windows[0].Class != "Code" {
		t.Fatalf("unexpected windows %#v", windows)
	}
}

func TestClientWorkspaces(t *testing.T) {
	reply := `[{"num": 1, "name": "1: term", "visible": true, "focused": true, "output": "eDP-1"},
	           {"num": 2, "name": "2: web"}]`
	fake := newFakeManager(t, getWorkspaces, reply)

	workspaces, err := fake.client(t).Workspaces()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(workspaces) != 2 || workspaces[0].Name != "1: term" || workspaces[1].Num != 2 {
		t.Fatalf("unexpected workspaces %#v", workspaces)
	}
}

func TestClientMismatchedReplyType(t *testing.T) {
	fake := newFakeManager(t, getTree, `{}`)

	if err := fake.client(t).Command("focus left"); err == nil {
		t.Fatal("expected error for mismatched reply type")
	}
}
