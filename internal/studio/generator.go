package studio

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"voiceshowcase/internal/cli/scheme/colours"
	"voiceshowcase/internal/domain/showcase"
	"voiceshowcase/internal/domain/voice"
	"voiceshowcase/internal/minimax"
)

// Result is the outcome of one synthesis attempt
type Result struct {
	Success bool
	Audio   []byte
	Error   string
}

// Generator synthesizes every voice in order and persists the successes
type Generator struct {
	synth minimax.Synthesizer
	store *Store
	out   io.Writer
	now   func() time.Time
}

type GeneratorOption func(*Generator)

func WithOutput(w io.Writer) GeneratorOption {
	return func(g *Generator) { g.out = w }
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

func NewGenerator(synth minimax.Synthesizer, store *Store, opts ...GeneratorOption) *Generator {
	g := &Generator{
		synth: synth,
		store: store,
		out:   os.Stdout,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) synthesize(ctx context.Context, spec voice.Spec) Result {
	audio, err := g.synth.Synthesize(ctx, spec.Text, spec.VoiceID, spec.Settings)
	if err != nil {
		return Result{Error: err.Error()}
	}
	if len(audio) == 0 {
		return Result{Error: minimax.ErrNoAudioData.Error()}
	}
	return Result{Success: true, Audio: audio}
}

// Generate runs one request per voice, strictly in order. A failed voice is
// reported and skipped; only directory or report I/O errors are returned.
func (g *Generator) Generate(ctx context.Context, specs []voice.Spec) (*showcase.Report, error) {
	if err := g.store.Ensure(); err != nil {
		return nil, err
	}

	entries := make([]showcase.Entry, 0, len(specs))

	for i, spec := range specs {
		if ctx.Err() != nil {
			break
		}

		settings := spec.Settings.WithDefaults()
		path := g.store.PathFor(spec.Filename(i + 1))

		colours.Title.Fprintf(g.out, "\n🎤 Generating %s...\n", spec.Name)
		colours.Voice.Fprintf(g.out, "- Voice ID: %s\n", spec.VoiceID)
		colours.Voice.Fprintf(g.out, "- Characteristics: %s\n", spec.Characteristics)
		colours.Voice.Fprintf(g.out, "- Speed: %v\n", settings.Speed)
		colours.Voice.Fprintf(g.out, "- Pitch: %d\n", settings.Pitch)

		res := g.synthesize(ctx, spec)
		if !res.Success {
			logrus.WithFields(logrus.Fields{
				"voice": spec.Name,
				"error": res.Error,
			}).Warn("synthesis failed")
			colours.Error.Fprintf(g.out, "❌ Failed: %s\n", res.Error)
			continue
		}

		if err := g.store.WriteAudio(path, res.Audio); err != nil {
			logrus.WithError(err).WithField("voice", spec.Name).Warn("could not save sample")
			colours.Error.Fprintf(g.out, "❌ Failed: %v\n", err)
			continue
		}

		colours.Success.Fprintf(g.out, "✅ Generated: %s\n", path)
		colours.Info.Fprintf(g.out, "📁 File size: %d bytes (%s)\n", len(res.Audio), humanize.Bytes(uint64(len(res.Audio))))

		entries = append(entries, showcase.Entry{
			Name:            spec.Name,
			VoiceID:         spec.VoiceID,
			Characteristics: spec.Characteristics,
			Filename:        path,
			FileSize:        len(res.Audio),
			Settings:        settings,
		})
	}

	report := showcase.Report{
		Timestamp:             g.now().UTC(),
		TotalVoices:           len(specs),
		SuccessfulGenerations: len(entries),
		Voices:                entries,
	}

	if err := g.store.SaveReport(report); err != nil {
		return &report, err
	}

	colours.Title.Fprintln(g.out, "\n📋 VOICE SHOWCASE COMPLETE")
	colours.Title.Fprintln(g.out, colours.Rule())
	colours.Success.Fprintf(g.out, "✅ Generated %d voice samples\n", report.SuccessfulGenerations)
	if failed := report.Failed(); failed > 0 {
		colours.Warning.Fprintf(g.out, "⚠️  %d of %d voices failed\n", failed, report.TotalVoices)
	}
	colours.Info.Fprintf(g.out, "📁 All files saved in: %s/\n", g.store.Dir())
	colours.Info.Fprintf(g.out, "📊 Showcase report: %s\n", g.store.ReportPath())

	return &report, nil
}
