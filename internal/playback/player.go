package playback

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrPlayerNotFound means the playback capability itself is unavailable, so no
// later item can be played either.
var ErrPlayerNotFound = errors.New("player not found")

// Player renders one audio file audibly and returns once playback has finished
type Player interface {
	Play(ctx context.Context, path string) error
}

type Type string

const (
	TypeExec Type = "exec"
	TypeBeep Type = "beep"
	TypeMock Type = "mock"
	TypeAuto Type = "auto" // exec when the command resolves, beep otherwise
)

func (t Type) String() string {
	return string(t)
}

// Config selects and configures a Player
type Config struct {
	Type    string
	Command string
}

// NewPlayer creates a Player based on the provided config
func NewPlayer(config Config) (Player, error) {
	if config.Type == "" {
		config.Type = TypeExec.String()
	}
	if config.Type == TypeAuto.String() {
		config.Type = bestTypeFor(config.Command).String()
	}

	switch config.Type {
	case TypeExec.String():
		return NewExecPlayer(config.Command), nil
	case TypeBeep.String():
		return NewBeepPlayer(), nil
	case TypeMock.String():
		return NewMockPlayer(), nil
	default:
		return nil, fmt.Errorf("unsupported player type: %s", config.Type)
	}
}

func bestTypeFor(command string) Type {
	if command == "" {
		command = DefaultCommand
	}
	if _, err := exec.LookPath(command); err == nil {
		return TypeExec
	}
	return TypeBeep
}

// AvailableTypes lists the selectable player types
func AvailableTypes() []Type {
	return []Type{TypeExec, TypeBeep, TypeMock, TypeAuto}
}
