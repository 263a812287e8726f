package app

import (
	"fmt"
	"strings"

	"quickswitch/internal/menu"
	"quickswitch/internal/picker"
	"quickswitch/internal/wm"
	"quickswitch/pkg/logger"
	"quickswitch/pkg/notify"
)

// QuickSwitch runs one query→pick→act cycle against the window
// manager and exits. No state survives the run.
type QuickSwitch struct {
	config   *Config
	conn     wm.Manager
	log      *logger.Logger
	notifier *notify.NotifyService

	// pick drives the external picker; split out so tests can stub
	// the subprocess away
	pick func(lines []string) (string, error)
}

// New wires up the picker subprocess driver and the notifier.
func New(config *Config, conn wm.Manager, log *logger.Logger) (*QuickSwitch, error) {
	p, err := picker.New(config.PickerCommand, log)
	if err != nil {
		return nil, err
	}
	return &QuickSwitch{
		config:   config,
		conn:     conn,
		log:      log,
		notifier: notify.NewNotifyService(config.NotifyCommand, log),
		pick:     p.Pick,
	}, nil
}

// Run performs the whole cycle. Query and picker failures abort the
// run; a failed command send is only reported, since by then the
// user's choice has already been consumed.
func (q *QuickSwitch) Run() error {
	m, err := q.buildMenu()
	if err != nil {
		return err
	}
	if m.Len() == 0 {
		q.log.Info("Nothing to pick", "mode", q.config.Mode)
		return nil
	}

	raw, err := q.pick(m.Labels())
	if err != nil {
		return err
	}

	// pickers terminate the chosen line with a newline
	choice := strings.TrimSpace(raw)
	if choice == "" {
		q.log.Debug("Picker returned no selection")
		return nil
	}

	switch q.config.Mode {
	case ModeWorkspace:
		q.switchWorkspace(m, choice)
	case ModeMove:
		q.moveWindow(m, choice)
	default:
		return fmt.Errorf("no mode selected")
	}
	return nil
}

func (q *QuickSwitch) buildMenu() (*menu.Menu, error) {
	switch q.config.Mode {
	case ModeWorkspace:
		workspaces, err := q.conn.Workspaces()
		if err != nil {
			return nil, fmt.Errorf("workspace query failed: %w", err)
		}
		names := make([]string, 0, len(workspaces))
		for _, ws := range workspaces {
			names = append(names, ws.Name)
		}
		return menu.ForWorkspaces(names), nil
	case ModeMove:
		nodes, err := q.conn.Tree()
		if err != nil {
			return nil, fmt.Errorf("tree query failed: %w", err)
		}
		windows := wm.SelectableWindows(nodes)
		q.log.Debug("Collected selectable windows", "count", len(windows))
		return menu.ForWindows(windows), nil
	}
	return nil, fmt.Errorf("no mode selected")
}

// switchWorkspace issues `workspace <selector>`. A choice that matches
// no label is used verbatim, so typing a fresh name creates that
// workspace.
func (q *QuickSwitch) switchWorkspace(m *menu.Menu, choice string) {
	selector := choice
	if target, ok := m.Lookup(choice); ok {
		selector = target.SelectString()
	} else {
		q.log.Info("No such workspace, switching will create it", "name", choice)
	}
	q.sendCommand("workspace " + selector)
}

// moveWindow issues `<selector> move workspace current`. A choice that
// matches no label is a no-op: moving needs an existing window.
func (q *QuickSwitch) moveWindow(m *menu.Menu, choice string) {
	target, ok := m.Lookup(choice)
	if !ok {
		q.log.Debug("Choice matches no window, nothing to move", "choice", choice)
		return
	}
	q.sendCommand(target.SelectString() + " move workspace current")
}

// sendCommand reports a rejected command without failing the run.
func (q *QuickSwitch) sendCommand(command string) {
	if err := q.conn.Command(command); err != nil {
		q.log.Error("Window manager rejected command", err, "command", command)
		if q.notifier != nil {
			q.notifier.Show(fmt.Sprintf("command failed: %s", command), notify.Error)
		}
	}
}
