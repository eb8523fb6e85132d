// Package minimax talks to the MiniMax t2a_v2 text-to-audio endpoint.
package minimax

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"voiceshowcase/internal/domain/voice"
)

const synthesisPath = "/v1/t2a_v2"

// ErrNoAudioData is reported when the service answers without a usable payload
var ErrNoAudioData = errors.New("No audio data")

// Synthesizer converts text spoken by one voice into encoded audio bytes
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string, settings voice.Settings) ([]byte, error)
}

// APIError is a non-zero base_resp status returned by the service
type APIError struct {
	StatusCode int
	StatusMsg  string
}

var readableStatus = map[int]string{
	1008: "Insufficient balance in MiniMax account. Please add credits.",
	2013: "Invalid parameters provided to MiniMax API.",
	401:  "Invalid MiniMax API key or authentication failed.",
}

func (e *APIError) Error() string {
	msg := e.StatusMsg
	if readable, ok := readableStatus[e.StatusCode]; ok {
		msg = readable
	}
	if msg == "" {
		msg = "unknown error"
	}
	return fmt.Sprintf("%s (status %d: %s)", ErrNoAudioData, e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return ErrNoAudioData
}

type voiceSetting struct {
	VoiceID string  `json:"voice_id"`
	Speed   float64 `json:"speed"`
	Pitch   int     `json:"pitch"`
	Emotion string  `json:"emotion"`
}

type synthesisRequest struct {
	Text         string       `json:"text"`
	Model        string       `json:"model"`
	VoiceSetting voiceSetting `json:"voice_setting"`
}

type synthesisResponse struct {
	BaseResp *struct {
		StatusCode *int   `json:"status_code"`
		StatusMsg  string `json:"status_msg"`
	} `json:"base_resp"`
	Data *struct {
		Audio string `json:"audio"`
	} `json:"data"`
}

// Client is a Synthesizer backed by the MiniMax HTTP API
type Client struct {
	apiKey     string
	groupID    string
	model      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which has no timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		hc := *cl.httpClient
		hc.Timeout = d
		cl.httpClient = &hc
	}
}

func WithBaseURL(u string) Option {
	return func(cl *Client) { cl.baseURL = strings.TrimRight(u, "/") }
}

// NewClient creates a client for the given credential, group and model
func NewClient(apiKey, groupID, model string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		groupID:    groupID,
		model:      model,
		baseURL:    "https://api.minimaxi.chat",
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) endpoint() string {
	return c.baseURL + synthesisPath + "?GroupId=" + url.QueryEscape(c.groupID)
}

// Synthesize performs one request and returns the hex-decoded audio.
func (c *Client) Synthesize(ctx context.Context, text, voiceID string, settings voice.Settings) ([]byte, error) {
	settings = settings.WithDefaults()

	body, err := json.Marshal(synthesisRequest{
		Text:  text,
		Model: c.model,
		VoiceSetting: voiceSetting{
			VoiceID: voiceID,
			Speed:   settings.Speed,
			Pitch:   settings.Pitch,
			Emotion: settings.Emotion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	logrus.WithFields(logrus.Fields{
		"voice_id": voiceID,
		"model":    c.model,
		"chars":    len([]rune(text)),
	}).Debug("sending synthesis request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed synthesisResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return parsed.audio()
}

func (r synthesisResponse) audio() ([]byte, error) {
	if r.BaseResp == nil || r.BaseResp.StatusCode == nil {
		return nil, ErrNoAudioData
	}
	if code := *r.BaseResp.StatusCode; code != 0 {
		return nil, &APIError{StatusCode: code, StatusMsg: r.BaseResp.StatusMsg}
	}
	if r.Data == nil || r.Data.Audio == "" {
		return nil, ErrNoAudioData
	}

	audio, err := hex.DecodeString(r.Data.Audio)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex payload: %v", ErrNoAudioData, err)
	}
	return audio, nil
}
