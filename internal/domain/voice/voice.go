package voice

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	DefaultSpeed   = 1.0
	DefaultPitch   = 0
	DefaultEmotion = "neutral"

	// AudioExtension is the extension of every generated sample.
	AudioExtension = ".mp3"
)

// Settings are the delivery parameters sent alongside a voice id
type Settings struct {
	Speed   float64 `json:"speed"`
	Pitch   int     `json:"pitch"`
	Emotion string  `json:"emotion"`
}

// WithDefaults fills any unset field with its default value
func (s Settings) WithDefaults() Settings {
	if s.Speed == 0 {
		s.Speed = DefaultSpeed
	}
	if s.Emotion == "" {
		s.Emotion = DefaultEmotion
	}
	return s
}

// Spec describes one synthesizable voice configuration
type Spec struct {
	Name            string
	VoiceID         string
	Characteristics string
	Speaker         string
	Variation       string
	Flag            string
	Text            string
	Settings        Settings
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug lower-cases the display name and collapses whitespace runs into underscores.
func (s Spec) Slug() string {
	return strings.ToLower(whitespace.ReplaceAllString(s.Name, "_"))
}

// Filename returns the sample file name for the 1-based position index.
func (s Spec) Filename(index int) string {
	return fmt.Sprintf("voice_%d_%s%s", index, s.Slug(), AudioExtension)
}
