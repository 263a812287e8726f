package app

// DefaultPickerCommand is fed to the tokenizer when --dmenu is not
// given: dmenu docked at the bottom, case-insensitive, 20 lines.
const DefaultPickerCommand = "dmenu -b -i -l 20"

// Mode selects what the picker offers and what happens to the choice.
type Mode int

const (
	ModeNone Mode = iota
	// ModeWorkspace offers the workspaces and switches to the choice.
	ModeWorkspace
	// ModeMove offers the open windows and moves the choice onto the
	// current workspace.
	ModeMove
)

// Config carries the resolved flag values for one run. There is no
// config file and nothing persists between invocations.
type Config struct {
	PickerCommand string
	Mode          Mode
	NotifyCommand string
}

// DefaultConfig returns a config with compiled-in defaults; the mode
// still has to be chosen.
func DefaultConfig() *Config {
	return &Config{
		PickerCommand: DefaultPickerCommand,
	}
}
