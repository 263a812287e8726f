package wm

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"strings"

	"quickswitch/pkg/logger"
)

// The i3 IPC wire format: a 6-byte magic, then payload length and
// message type as 32-bit little-endian integers, then a JSON payload.
// Replies are framed the same way. sway speaks the identical protocol.
const ipcMagic = "i3-ipc"

const headerSize = len(ipcMagic) + 8

type messageType uint32

const (
	runCommand    messageType = 0
	getWorkspaces messageType = 1
	getTree       messageType = 4
)

// Client talks to i3 or sway over the manager's unix socket. Each
// request dials its own connection, mirroring the one-shot nature of
// the tool.
type Client struct {
	socketPath string
	log        *logger.Logger
}

// NewClient locates the manager socket: $I3SOCK, then $SWAYSOCK, then
// asking the i3 or sway binary for its socket path.
func NewClient(log *logger.Logger) (*Client, error) {
	path, err := findSocketPath()
	if err != nil {
		log.Error("No window manager socket found", err)
		return nil, err
	}
	log.Debug("Found window manager socket", "path", path)
	return &Client{socketPath: path, log: log}, nil
}

func findSocketPath() (string, error) {
	for _, env := range []string{"I3SOCK", "SWAYSOCK"} {
		if path := os.Getenv(env); path != "" {
			return path, nil
		}
	}
	for _, program := range []string{"i3", "sway"} {
		if _, err := exec.LookPath(program); err != nil {
			continue
		}
		out, err := exec.Command(program, "--get-socketpath").Output()
		if err != nil {
			continue
		}
		if path := strings.TrimSpace(string(out)); path != "" {
			return path, nil
		}
	}
	return "", fmt.Errorf("no i3 or sway socket found: set I3SOCK or SWAYSOCK")
}

// Tree fetches the layout tree and returns the root's children.
func (c *Client) Tree() ([]Node, error) {
	payload, err := c.roundTrip(getTree, nil)
	if err != nil {
		return nil, fmt.Errorf("tree query failed: %w", err)
	}
	var root Node
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil, fmt.Errorf("failed to parse tree reply: %w", err)
	}
	return root.Nodes, nil
}

// Workspaces fetches the current workspace list.
func (c *Client) Workspaces() ([]Workspace, error) {
	payload, err := c.roundTrip(getWorkspaces, nil)
	if err != nil {
		return nil, fmt.Errorf("workspace query failed: %w", err)
	}
	var workspaces []Workspace
	if err := json.Unmarshal(payload, &workspaces); err != nil {
		return nil, fmt.Errorf("failed to parse workspace reply: %w", err)
	}
	for _, ws := range workspaces {
		c.log.Debug("Workspace",
			"num", ws.Num,
			"name", ws.Name,
			"visible", ws.Visible,
			"focused", ws.Focused,
			"output", ws.Output)
	}
	return workspaces, nil
}

type commandResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Command sends a textual command. The manager answers with one result
// per command in the payload; any failed one fails the call.
func (c *Client) Command(command string) error {
	c.log.Info("Sending command", "command", command)
	payload, err := c.roundTrip(runCommand, []byte(command))
	if err != nil {
		return fmt.Errorf("command %q failed: %w", command, err)
	}
	var results []commandResult
	if err := json.Unmarshal(payload, &results); err != nil {
		return fmt.Errorf("failed to parse command reply: %w", err)
	}
	for _, res := range results {
		if !res.Success {
			return fmt.Errorf("manager rejected %q: %s", command, res.Error)
		}
	}
	return nil
}

func (c *Client) roundTrip(t messageType, payload []byte) ([]byte, error) {
	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	if err := writeMessage(conn, t, payload); err != nil {
		return nil, err
	}
	replyType, reply, err := readMessage(conn)
	if err != nil {
		return nil, err
	}
	if replyType != t {
		return nil, fmt.Errorf("reply type %d does not match request type %d", replyType, t)
	}
	return reply, nil
}

func writeMessage(conn net.Conn, t messageType, payload []byte) error {
	msg := make([]byte, headerSize+len(payload))
	copy(msg, ipcMagic)
	binary.LittleEndian.PutUint32(msg[6:], uint32(len(payload)))
	binary.LittleEndian.PutUint32(msg[10:], uint32(t))
	copy(msg[headerSize:], payload)
	if _, err := conn.Write(msg); err != nil {
		return fmt.Errorf("failed to write request: %w", err)
	}
	return nil
}

func readMessage(conn net.Conn) (messageType, []byte, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(conn, header); err != nil {
		return 0, nil, fmt.Errorf("failed to read reply header: %w", err)
	}
	if string(header[:len(ipcMagic)]) != ipcMagic {
		return 0, nil, fmt.Errorf("bad reply magic %q", header[:len(ipcMagic)])
	}
	length := binary.LittleEndian.Uint32(header[6:10])
	t := messageType(binary.LittleEndian.Uint32(header[10:14]))
	payload := make([]byte, length)
	if _, err := io.ReadFull(conn, payload); err != nil {
		return 0, nil, fmt.Errorf("failed to read reply payload: %w", err)
	}
	return t, payload, nil
}
