package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"quickswitch/internal/app"
	"quickswitch/internal/wm"
	"quickswitch/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := app.DefaultConfig()
	var (
		workspaceMode bool
		moveMode      bool
		debug         bool
	)

	cmd := &cobra.Command{
		Use:   "quickswitch",
		Short: "pick i3/sway windows and workspaces through an external menu",
		Long: `quickswitch feeds the manager's windows or workspaces to a
line-oriented picker such as dmenu, then switches to the chosen
workspace or moves the chosen window to the current one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workspaceMode == moveMode {
				return fmt.Errorf("exactly one of --workspace or --move is required")
			}
			if workspaceMode {
				cfg.Mode = app.ModeWorkspace
			} else {
				cfg.Mode = app.ModeMove
			}
			return run(cfg, debug)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.PickerCommand, "dmenu", "d", app.DefaultPickerCommand, "picker command to execute")
	flags.BoolVarP(&workspaceMode, "workspace", "w", false, "pick a workspace and switch to it")
	flags.BoolVarP(&moveMode, "move", "m", false, "pick a window and move it to the current workspace")
	flags.StringVar(&cfg.NotifyCommand, "notify-command", "", "command used to report failures on the desktop")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("workspace", "move")

	return cmd
}

func run(cfg *app.Config, debug bool) error {
	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}

	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Debug("Starting quickswitch",
		"pid", os.Getpid(),
		"picker", cfg.PickerCommand,
		"mode", cfg.Mode)

	conn, err := wm.NewClient(log)
	if err != nil {
		return err
	}

	qs, err := app.New(cfg, conn, log)
	if err != nil {
		return err
	}
	return qs.Run()
}
