package playback

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	tests := []struct {
		typ  string
		want interface{}
	}{
		{"", &ExecPlayer{}},
		{"exec", &ExecPlayer{}},
		{"beep", &BeepPlayer{}},
		{"mock", &MockPlayer{}},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			p, err := NewPlayer(Config{Type: tt.typ})
			if err != nil {
				t.Fatalf("NewPlayer failed: %v", err)
			}
			switch tt.want.(type) {
			case *ExecPlayer:
				ep, ok := p.(*ExecPlayer)
				if !ok {
					t.Fatalf("got %T, want *ExecPlayer", p)
				}
				if ep.Command() != DefaultCommand {
					t.Errorf("command = %q, want %q", ep.Command(), DefaultCommand)
				}
			case *BeepPlayer:
				if _, ok := p.(*BeepPlayer); !ok {
					t.Errorf("got %T, want *BeepPlayer", p)
				}
			case *MockPlayer:
				if _, ok := p.(*MockPlayer); !ok {
					t.Errorf("got %T, want *MockPlayer", p)
				}
			}
		})
	}

	if _, err := NewPlayer(Config{Type: "vinyl"}); err == nil {
		t.Error("unknown type should fail")
	}
}

func TestNewPlayer_Auto(t *testing.T) {
	p, err := NewPlayer(Config{Type: "auto", Command: "definitely-not-a-player-binary"})
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	if _, ok := p.(*BeepPlayer); !ok {
		t.Errorf("auto without command should fall back to beep, got %T", p)
	}
}

func TestExecPlayer_NotFound(t *testing.T) {
	p := NewExecPlayer("definitely-not-a-player-binary")
	err := p.Play(context.Background(), "x.mp3")
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("Play() = %v, want ErrPlayerNotFound", err)
	}

	abs := NewExecPlayer(filepath.Join(t.TempDir(), "missing-player"))
	if err := abs.Play(context.Background(), "x.mp3"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("Play() with absolute path = %v, want ErrPlayerNotFound", err)
	}
}

func TestExecPlayer_ExitStatus(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}

	err := NewExecPlayer("false").Play(context.Background(), "x.mp3")
	if err == nil {
		t.Fatal("expected failure from false")
	}
	if errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("a non-zero exit is a per-item failure, got %v", err)
	}
}

func TestExecPlayer_Success(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	if err := NewExecPlayer("true").Play(context.Background(), "x.mp3"); err != nil {
		t.Errorf("Play() = %v", err)
	}
}

func TestBeepPlayer_MissingFile(t *testing.T) {
	err := NewBeepPlayer().Play(context.Background(), filepath.Join(t.TempDir(), "nope.mp3"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("a missing file is a per-item failure, got %v", err)
	}
}
