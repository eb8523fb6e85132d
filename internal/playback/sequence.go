package playback

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"voiceshowcase/internal/cli/scheme/colours"
	"voiceshowcase/internal/domain/showcase"
)

// DefaultPause separates consecutive samples
const DefaultPause = 2 * time.Second

// Outcome summarises one sequential playback run
type Outcome struct {
	Played  []string
	Failed  []string
	Aborted bool
}

// Sequencer plays generated samples one after another
type Sequencer struct {
	player Player
	pause  time.Duration
	sleep  func(context.Context, time.Duration) error
	out    io.Writer
}

type SequencerOption func(*Sequencer)

func WithPause(d time.Duration) SequencerOption {
	return func(s *Sequencer) { s.pause = d }
}

// WithSleep replaces the wait between items.
func WithSleep(fn func(context.Context, time.Duration) error) SequencerOption {
	return func(s *Sequencer) { s.sleep = fn }
}

func WithOutput(w io.Writer) SequencerOption {
	return func(s *Sequencer) { s.out = w }
}

func NewSequencer(player Player, opts ...SequencerOption) *Sequencer {
	s := &Sequencer{
		player: player,
		pause:  DefaultPause,
		sleep:  sleepContext,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays entries in order. A missing player stops the loop and lists the
// files for manual playback; any other failure only skips that entry.
func (s *Sequencer) Run(ctx context.Context, entries []showcase.Entry) Outcome {
	var outcome Outcome

	colours.Info.Fprintln(s.out, "\n🔊 Starting voice showcase playback...")
	colours.Info.Fprintln(s.out, "Press Ctrl+C to stop playback at any time.")

	for i, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		colours.Title.Fprintf(s.out, "\n🎧 Playing: %s\n", entry.Name)
		colours.Path.Fprintf(s.out, "📁 File: %s\n", entry.Filename)
		colours.Voice.Fprintf(s.out, "🎤 Characteristics: %s\n", entry.Characteristics)

		err := s.player.Play(ctx, entry.Filename)
		switch {
		case err == nil:
			outcome.Played = append(outcome.Played, entry.Filename)
			colours.Success.Fprintf(s.out, "✅ Completed: %s\n", entry.Name)

			if i < len(entries)-1 {
				colours.Info.Fprintln(s.out, "⏸️  Brief pause before next voice...")
				if err := s.sleep(ctx, s.pause); err != nil {
					return outcome
				}
			}
		case errors.Is(err, ErrPlayerNotFound):
			outcome.Aborted = true
			logrus.WithError(err).Warn("playback unavailable")
			colours.Warning.Fprintln(s.out, "⚠️  Player not found. Please play the files manually:")
			for _, e := range entries {
				s.printManual(e.Filename)
			}
			return outcome
		default:
			outcome.Failed = append(outcome.Failed, entry.Filename)
			logrus.WithError(err).WithField("file", entry.Filename).Warn("playback failed")
			colours.Warning.Fprintf(s.out, "⚠️  Failed to play %s: %v\n", entry.Name, err)
		}
	}

	return outcome
}

func (s *Sequencer) printManual(path string) {
	colours.Path.Fprintf(s.out, "   - %s\n", path)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
