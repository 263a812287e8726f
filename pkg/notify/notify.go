package notify

import (
	"fmt"
	"os/exec"

	"quickswitch/pkg/logger"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

// NotifyService surfaces messages on the desktop. A tool launched from
// a keybinding has no terminal, so failures would otherwise vanish.
type NotifyService struct {
	log           *logger.Logger
	notifyCommand string
}

// NewNotifyService creates a new notification service. notifyCommand
// may be empty, in which case common notification tools are tried.
func NewNotifyService(notifyCommand string, log *logger.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
	}
}

// Show displays a notification of the specified type
func (n *NotifyService) Show(message string, nType NotificationType) error {
	if n.notifyCommand != "" {
		if err := n.executeNotifyCommand(message, nType); err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand)
	}

	return n.trySystemNotification(message, nType)
}

func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	typeStr := "ERROR"
	if nType == Info {
		typeStr = "INFO"
	}
	n.log.Debug("Executing notify command", "command", n.notifyCommand, "type", typeStr)

	cmd := exec.Command("sh", "-c", fmt.Sprintf("%s '%s' '%s'", n.notifyCommand, typeStr, message))
	return cmd.Run()
}

type notificationTool struct {
	name         string
	buildCommand func(tool string, message string, nType NotificationType) *exec.Cmd
}

var notificationTools = []notificationTool{
	{
		name: "dunstify",
		buildCommand: func(tool string, message string, nType NotificationType) *exec.Cmd {
			urgency := "normal"
			if nType == Error {
				urgency = "critical"
			}
			return exec.Command(tool, "-u", urgency, "-t", "5000", "quickswitch", message)
		},
	},
	{
		name: "notify-send",
		buildCommand: func(tool string, message string, nType NotificationType) *exec.Cmd {
			urgency := "normal"
			if nType == Error {
				urgency = "critical"
			}
			return exec.Command(tool, "-u", urgency, "quickswitch", message)
		},
	},
}

func (n *NotifyService) trySystemNotification(message string, nType NotificationType) error {
	for _, tool := range notificationTools {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		if err := tool.buildCommand(tool.name, message, nType).Run(); err == nil {
			n.log.Debug("Notification sent", "tool", tool.name, "type", nType)
			return nil
		}
	}
	return fmt.Errorf("no notification tool available")
}
