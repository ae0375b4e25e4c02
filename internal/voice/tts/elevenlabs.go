package tts

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const elevenLabsDefaultWSBase = "wss://api.elevenlabs.io"

// ElevenLabsProvider streams synthesis over the ElevenLabs stream-input
// websocket. It is the platform's primary TTS backend.
type ElevenLabsProvider struct {
	apiKey    string
	wsBaseURL string
}

// NewElevenLabs creates an ElevenLabs provider.
func NewElevenLabs(apiKey, baseURL string) *ElevenLabsProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = elevenLabsDefaultWSBase
	}
	return &ElevenLabsProvider{
		apiKey:    strings.TrimSpace(apiKey),
		wsBaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Name returns the provider identifier.
func (e *ElevenLabsProvider) Name() string {
	return "elevenlabs"
}

// Synthesize collects the full streamed output into one buffer.
func (e *ElevenLabsProvider) Synthesize(ctx context.Context, text string, opts SynthesizeOptions) (*Synthesis, error) {
	stream, err := e.SynthesizeStream(ctx, text, opts)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var out []byte
	for chunk := range stream.Chunks() {
		out = append(out, chunk...)
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return &Synthesis{Audio: out, Format: getFormat(opts.Format)}, nil
}

// SynthesizeStream opens the stream-input websocket, sends the text and
// a flush marker, and forwards decoded audio chunks until the vendor
// reports the final frame.
func (e *ElevenLabsProvider) SynthesizeStream(ctx context.Context, text string, opts SynthesizeOptions) (*SynthesisStream, error) {
	if e.apiKey == "" {
		return nil, fmt.Errorf("elevenlabs: api key is required")
	}
	voiceID := strings.TrimSpace(opts.Voice)
	if voiceID == "" {
		return nil, fmt.Errorf("elevenlabs: voice id is required")
	}

	wsURL, err := e.buildWSURL(voiceID, opts)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("xi-api-key", e.apiKey)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: dial: %w", err)
	}

	stream := NewSynthesisStream()
	connDone := make(chan struct{})
	var closeOnce sync.Once
	closeConn := func() {
		closeOnce.Do(func() {
			close(connDone)
			_ = conn.Close()
		})
	}

	// Opening frame, then the text, then flush.
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(map[string]any{"text": " "}); err != nil {
		closeConn()
		return nil, fmt.Errorf("elevenlabs: open stream: %w", err)
	}
	payload := strings.TrimSpace(text)
	if payload != "" && !strings.HasSuffix(payload, " ") {
		payload += " "
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(map[string]any{"text": payload}); err != nil {
		closeConn()
		return nil, fmt.Errorf("elevenlabs: send text: %w", err)
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(map[string]any{"text": "", "flush": true}); err != nil {
		closeConn()
		return nil, fmt.Errorf("elevenlabs: flush: %w", err)
	}

	go func() {
		defer stream.FinishSending()
		defer closeConn()
		for {
			select {
			case <-ctx.Done():
				stream.SetError(ctx.Err())
				return
			case <-connDone:
				return
			default:
			}
			_, data, err := conn.ReadMessage()
			if err != nil {
				stream.SetError(fmt.Errorf("elevenlabs: read: %w", err))
				return
			}
			var msg elevenLabsFrame
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			if msg.Audio != "" {
				audio, err := base64.StdEncoding.DecodeString(msg.Audio)
				if err == nil && len(audio) > 0 {
					if !stream.Send(audio) {
						return
					}
				}
			}
			if msg.IsFinal {
				return
			}
		}
	}()

	return stream, nil
}

type elevenLabsFrame struct {
	Audio   string `json:"audio"`
	IsFinal bool   `json:"isFinal"`
}

func (e *ElevenLabsProvider) buildWSURL(voiceID string, opts SynthesizeOptions) (string, error) {
	u, err := url.Parse(e.wsBaseURL)
	if err != nil {
		return "", fmt.Errorf("elevenlabs: invalid ws base url: %w", err)
	}
	if u.Scheme == "" {
		u.Scheme = "wss"
	}
	u.Path = "/v1/text-to-speech/" + url.PathEscape(voiceID) + "/stream-input"

	q := u.Query()
	q.Set("model_id", "eleven_flash_v2_5")
	format := "pcm_" + fmt.Sprint(getSampleRate(opts.SampleRate))
	if getFormat(opts.Format) == "mp3" {
		format = "mp3_44100_128"
	}
	q.Set("output_format", format)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
