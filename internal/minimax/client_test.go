package minimax

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voiceshowcase/internal/domain/voice"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", "group-7", "speech-02-hd", WithBaseURL(srv.URL))
}

func TestClient_Synthesize_Success(t *testing.T) {
	var got synthesisRequest
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != synthesisPath {
			t.Errorf("path = %s, want %s", r.URL.Path, synthesisPath)
		}
		if g := r.URL.Query().Get("GroupId"); g != "group-7" {
			t.Errorf("GroupId = %q, want group-7", g)
		}
		if a := r.Header.Get("Authorization"); a != "Bearer test-key" {
			t.Errorf("Authorization = %q", a)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		io.WriteString(w, `{"base_resp":{"status_code":0,"status_msg":"success"},"data":{"audio":"68656c6c6f"}}`)
	})

	audio, err := client.Synthesize(context.Background(), "hi there", "voice-a", voice.Settings{Speed: 0.9, Pitch: -1, Emotion: "happy"})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(audio) != "hello" {
		t.Errorf("audio = %q, want hello", audio)
	}

	want := synthesisRequest{
		Text:         "hi there",
		Model:        "speech-02-hd",
		VoiceSetting: voiceSetting{VoiceID: "voice-a", Speed: 0.9, Pitch: -1, Emotion: "happy"},
	}
	if got != want {
		t.Errorf("request = %+v, want %+v", got, want)
	}
}

func TestClient_Synthesize_DefaultsSettings(t *testing.T) {
	var got synthesisRequest
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		io.WriteString(w, `{"base_resp":{"status_code":0},"data":{"audio":"00"}}`)
	})

	if _, err := client.Synthesize(context.Background(), "x", "v", voice.Settings{}); err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if got.VoiceSetting.Speed != 1.0 || got.VoiceSetting.Pitch != 0 || got.VoiceSetting.Emotion != "neutral" {
		t.Errorf("voice_setting not defaulted: %+v", got.VoiceSetting)
	}
}

func TestClient_Synthesize_Failures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		noAudio   bool
		apiStatus int
	}{
		{"non-zero status", 200, `{"base_resp":{"status_code":1008,"status_msg":"insufficient balance"}}`, true, 1008},
		{"missing audio", 200, `{"base_resp":{"status_code":0},"data":{}}`, true, 0},
		{"empty audio", 200, `{"base_resp":{"status_code":0},"data":{"audio":""}}`, true, 0},
		{"missing status_code", 200, `{"base_resp":{},"data":{"audio":"68656c6c6f"}}`, true, 0},
		{"missing base_resp", 200, `{"data":{"audio":"00"}}`, true, 0},
		{"bad hex", 200, `{"base_resp":{"status_code":0},"data":{"audio":"zz"}}`, true, 0},
		{"http error", 500, `oops`, false, 0},
		{"bad json", 200, `not json`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			audio, err := client.Synthesize(context.Background(), "x", "v", voice.Settings{})
			if err == nil {
				t.Fatalf("expected error, got %d bytes", len(audio))
			}
			if audio != nil {
				t.Errorf("audio should be nil on failure")
			}
			if got := errors.Is(err, ErrNoAudioData); got != tt.noAudio {
				t.Errorf("errors.Is(ErrNoAudioData) = %v for %v", got, err)
			}

			var apiErr *APIError
			if tt.apiStatus != 0 {
				if !errors.As(err, &apiErr) || apiErr.StatusCode != tt.apiStatus {
					t.Fatalf("expected APIError %d, got %v", tt.apiStatus, err)
				}
				if !strings.Contains(err.Error(), "Insufficient balance") {
					t.Errorf("readable message missing: %v", err)
				}
			}
		})
	}
}

func TestClient_Synthesize_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	client := NewClient("k", "g", "m", WithBaseURL(base))
	_, err := client.Synthesize(context.Background(), "x", "v", voice.Settings{})
	if err == nil {
		t.Fatal("expected transport error")
	}
	if errors.Is(err, ErrNoAudioData) {
		t.Errorf("transport error should carry its own message, got %v", err)
	}
}

func TestClient_OptionOrder(t *testing.T) {
	custom := &http.Client{Transport: http.DefaultTransport}

	c := NewClient("k", "g", "m", WithHTTPClient(custom), WithTimeout(3*time.Second))
	if c.httpClient.Transport != custom.Transport {
		t.Error("WithTimeout dropped the client set by WithHTTPClient")
	}
	if c.httpClient.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", c.httpClient.Timeout)
	}
	if custom.Timeout != 0 {
		t.Error("WithTimeout mutated the caller's client")
	}

	c = NewClient("k", "g", "m", WithTimeout(3*time.Second), WithHTTPClient(custom))
	if c.httpClient != custom {
		t.Error("a later WithHTTPClient should win")
	}
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{StatusCode: 9999, StatusMsg: "weird"}
	if got := err.Error(); got != "No audio data (status 9999: weird)" {
		t.Errorf("Error() = %q", got)
	}
}
