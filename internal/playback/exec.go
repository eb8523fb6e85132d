package playback

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// DefaultCommand is the macOS command line audio player
const DefaultCommand = "afplay"

// ExecPlayer shells out to an external command with the file path as its only argument
type ExecPlayer struct {
	command string
}

func NewExecPlayer(command string) *ExecPlayer {
	if command == "" {
		command = DefaultCommand
	}
	return &ExecPlayer{command: command}
}

func (e *ExecPlayer) Command() string {
	return e.command
}

// Play blocks until the command exits. No timeout is applied.
func (e *ExecPlayer) Play(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, e.command, path)
	if err := cmd.Run(); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s: %v", ErrPlayerNotFound, e.command, err)
		}
		return fmt.Errorf("%s %s: %w", e.command, path, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
