package voice

import "testing"

func TestSpec_Filename(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  string
	}{
		{"American Female - Professional", 1, "voice_1_american_female_-_professional.mp3"},
		{"American Female - Warm & Friendly", 5, "voice_5_american_female_-_warm_&_friendly.mp3"},
		{"  Tabbed\tName  ", 2, "voice_2__tabbed_name_.mp3"},
		{"Single", 10, "voice_10_single.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spec{Name: tt.name}.Filename(tt.index)
			if got != tt.want {
				t.Errorf("Filename(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestSettings_WithDefaults(t *testing.T) {
	got := Settings{}.WithDefaults()
	if got.Speed != DefaultSpeed || got.Pitch != DefaultPitch || got.Emotion != DefaultEmotion {
		t.Errorf("zero Settings defaulted to %+v", got)
	}

	set := Settings{Speed: 0.8, Pitch: -1, Emotion: "happy"}
	if got := set.WithDefaults(); got != set {
		t.Errorf("explicit Settings changed: got %+v, want %+v", got, set)
	}
}

func TestCatalogue(t *testing.T) {
	voices := Catalogue()
	if len(voices) != 8 {
		t.Fatalf("Catalogue() has %d voices, want 8", len(voices))
	}

	seen := make(map[string]bool)
	for i, v := range voices {
		if v.VoiceID == "" || v.Text == "" || v.Speaker == "" || v.Variation == "" {
			t.Errorf("voice %d (%s) is missing fields", i, v.Name)
		}
		file := v.Filename(i + 1)
		if seen[file] {
			t.Errorf("duplicate filename %s", file)
		}
		seen[file] = true
	}

	// Mutating the returned slice must not leak into the table.
	voices[0].Name = "changed"
	if Catalogue()[0].Name == "changed" {
		t.Error("Catalogue() returned the backing table")
	}
}
