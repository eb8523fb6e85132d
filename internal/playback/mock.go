package playback

import (
	"context"
	"sync"

	"github.com/fatih/color"
)

// MockPlayer records played paths instead of producing sound
type MockPlayer struct {
	mu      sync.Mutex
	played  []string
	errs    map[string]error
	Verbose bool
}

func NewMockPlayer() *MockPlayer {
	return &MockPlayer{errs: make(map[string]error), Verbose: true}
}

// FailOn makes Play return err for path
func (m *MockPlayer) FailOn(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[path] = err
}

func (m *MockPlayer) Play(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.played = append(m.played, path)
	if err := m.errs[path]; err != nil {
		return err
	}
	if m.Verbose {
		color.Yellow("🔊 Playing %s (simulated)", path)
	}
	return nil
}

// Played returns the attempted paths in call order
func (m *MockPlayer) Played() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.played))
	copy(out, m.played)
	return out
}
