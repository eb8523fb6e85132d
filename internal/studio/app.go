package studio

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"voiceshowcase/internal/cli/scheme/colours"
	"voiceshowcase/internal/config"
	"voiceshowcase/internal/domain/showcase"
	"voiceshowcase/internal/domain/voice"
	"voiceshowcase/internal/minimax"
	"voiceshowcase/internal/playback"
)

// App wires configuration, the generator and the player into cobra commands
type App struct {
	voices []voice.Spec
	out    io.Writer
	ctx    context.Context
	Cancel context.CancelFunc

	loadConfig func() config.Config
	newSynth   func(config.Config) minimax.Synthesizer
	newPlayer  func(config.Config) (playback.Player, error)
	seqOpts    []playback.SequencerOption
}

func NewApp() *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		voices:     voice.Catalogue(),
		out:        os.Stdout,
		ctx:        ctx,
		Cancel:     cancel,
		loadConfig: config.Load,
		newSynth:   newMinimaxClient,
		newPlayer: func(cfg config.Config) (playback.Player, error) {
			return playback.NewPlayer(playback.Config{Type: cfg.PlayerType, Command: cfg.PlayerCommand})
		},
	}
}

func newMinimaxClient(cfg config.Config) minimax.Synthesizer {
	opts := []minimax.Option{minimax.WithBaseURL(cfg.BaseURL)}
	if cfg.Timeout > 0 {
		opts = append(opts, minimax.WithTimeout(cfg.Timeout))
	}
	return minimax.NewClient(cfg.APIKey, cfg.GroupID, cfg.Model, opts...)
}

// Showcase generates every voice and then plays the successful samples
func (a *App) Showcase(cmd *cobra.Command, args []string) error {
	cfg := a.loadConfig()
	config.ConfigureLogging(cfg.LogLevel)

	report, err := a.generate(cfg)
	if err != nil {
		return err
	}

	noPlay, _ := cmd.Flags().GetBool("no-play")
	if noPlay {
		return nil
	}
	return a.play(cfg, report.Voices)
}

// Generate runs the batch generator only
func (a *App) Generate(cmd *cobra.Command, args []string) error {
	cfg := a.loadConfig()
	config.ConfigureLogging(cfg.LogLevel)

	_, err := a.generate(cfg)
	return err
}

// Play replays the samples listed in the last persisted report
func (a *App) Play(cmd *cobra.Command, args []string) error {
	cfg := a.loadConfig()
	config.ConfigureLogging(cfg.LogLevel)

	report, err := NewStore(cfg.OutputDir, cfg.ReportName).LoadReport()
	if err != nil {
		colours.Info.Fprintln(a.out, "💡 Run 'voiceshowcase generate' first to create the samples")
		return err
	}
	if len(report.Voices) == 0 {
		colours.Warning.Fprintln(a.out, "🔍 The last run produced no samples to play.")
		a.finish(cfg)
		return nil
	}
	return a.play(cfg, report.Voices)
}

// ListVoices prints the fixed voice table
func (a *App) ListVoices(cmd *cobra.Command, args []string) {
	fmt.Fprintln(a.out)
	colours.Title.Fprintln(a.out, "🎙️ Showcase Voices")
	fmt.Fprintln(a.out)

	for i, v := range a.voices {
		s := v.Settings.WithDefaults()
		fmt.Fprintf(a.out, "  %d. ", i+1)
		colours.Title.Fprintf(a.out, "%s\n", v.Name)
		colours.Voice.Fprintf(a.out, "     🎤 %s | speed %v | pitch %d | %s\n", v.Characteristics, s.Speed, s.Pitch, s.Emotion)
		colours.Info.Fprintf(a.out, "     ID: %s\n", v.VoiceID)
		colours.Path.Fprintf(a.out, "     File: %s\n", v.Filename(i+1))
	}
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, Summary(a.voices))
}

func (a *App) generate(cfg config.Config) (*showcase.Report, error) {
	colours.Title.Fprintln(a.out, "🎯 GENERATING VERIFIED VOICE SHOWCASE")
	colours.Title.Fprintln(a.out, colours.Rule())
	colours.Info.Fprintln(a.out, "Creating showcase with only verified voice characteristics...")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := NewStore(cfg.OutputDir, cfg.ReportName)
	gen := NewGenerator(a.newSynth(cfg), store, WithOutput(a.out))

	logrus.WithFields(logrus.Fields{
		"voices": len(a.voices),
		"model":  cfg.Model,
		"dir":    cfg.OutputDir,
	}).Info("starting generation")

	return gen.Generate(a.ctx, a.voices)
}

func (a *App) play(cfg config.Config, entries []showcase.Entry) error {
	player, err := a.newPlayer(cfg)
	if err != nil {
		return err
	}

	opts := append([]playback.SequencerOption{
		playback.WithPause(cfg.Pause),
		playback.WithOutput(a.out),
	}, a.seqOpts...)
	outcome := playback.NewSequencer(player, opts...).Run(a.ctx, entries)

	logrus.WithFields(logrus.Fields{
		"played":  len(outcome.Played),
		"failed":  len(outcome.Failed),
		"aborted": outcome.Aborted,
	}).Info("playback finished")

	a.finish(cfg)
	return nil
}

func (a *App) finish(cfg config.Config) {
	colours.Success.Fprintln(a.out, "\n🎭 Voice showcase completed!")
	colours.Info.Fprintf(a.out, "📁 All files saved in: %s/\n", cfg.OutputDir)
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, Summary(a.voices))
}

// Interrupted cancels in-flight work and prints the shutdown notice
func (a *App) Interrupted(w io.Writer) {
	a.Cancel()
	fmt.Fprintln(w, "\n\n"+colours.Warning.Sprint("🛑 Playback interrupted by user."))
	colours.Info.Fprintln(w, "📁 Generated files are still available in the output directory.")
}
