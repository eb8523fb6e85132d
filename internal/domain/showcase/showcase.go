package showcase

import (
	"time"

	"voiceshowcase/internal/domain/voice"
)

// Entry records one successfully generated voice sample
type Entry struct {
	Name            string         `json:"name"`
	VoiceID         string         `json:"voiceId"`
	Characteristics string         `json:"characteristics"`
	Filename        string         `json:"filename"`
	FileSize        int            `json:"fileSize"`
	Settings        voice.Settings `json:"settings"`
}

// Report is the manifest persisted once at the end of a generation run
type Report struct {
	Timestamp             time.Time `json:"timestamp"`
	TotalVoices           int       `json:"totalVoices"`
	SuccessfulGenerations int       `json:"successfulGenerations"`
	Voices                []Entry   `json:"voices"`
}

// Failed returns how many requested voices produced no sample.
func (r Report) Failed() int {
	return r.TotalVoices - r.SuccessfulGenerations
}
