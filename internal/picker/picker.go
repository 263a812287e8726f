package picker

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"quickswitch/pkg/logger"
)

// Picker drives an external line-oriented filter program: candidates
// go in on stdin, the chosen line comes back on stdout.
type Picker struct {
	program string
	args    []string
	log     *logger.Logger
}

// New tokenizes the invocation string and prepares the picker.
func New(command string, log *logger.Logger) (*Picker, error) {
	program, args, err := Tokenize(command)
	if err != nil {
		return nil, fmt.Errorf("invalid picker command %q: %w", command, err)
	}
	return &Picker{program: program, args: args, log: log}, nil
}

// Pick runs the picker with the candidate lines on its stdin and
// returns whatever it wrote to stdout, untrimmed. The stdin reader is
// drained and closed by os/exec once the write completes, so the child
// sees end-of-input and the read below cannot deadlock. A non-zero
// exit is not an error here: dmenu and friends exit non-zero when the
// user aborts, and an empty capture already says everything.
func (p *Picker) Pick(lines []string) (string, error) {
	cmd := exec.Command(p.program, p.args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	p.log.Debug("Running picker",
		"program", p.program,
		"args", p.args,
		"candidates", len(lines))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			p.log.Debug("Picker exited non-zero", "exit_code", exitErr.ExitCode())
			return out.String(), nil
		}
		return "", fmt.Errorf("failed to run picker %q: %w", p.program, err)
	}

	p.log.Debug("Picker finished", "output_bytes", out.Len())
	return out.String(), nil
}
