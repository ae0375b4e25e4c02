package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	cartesiaDefaultBaseURL = "https://api.cartesia.ai"
	cartesiaVersion        = "2025-04-16"
)

// CartesiaProvider is the fallback TTS backend. It uses the blocking
// /tts/bytes endpoint; streaming calls are served from the buffered
// result so the caller-facing contract stays the same.
type CartesiaProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewCartesia creates a Cartesia provider.
func NewCartesia(apiKey, baseURL string) *CartesiaProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = cartesiaDefaultBaseURL
	}
	// Config carries a wss:// base shared with the streaming vendors.
	baseURL = strings.Replace(baseURL, "wss://", "https://", 1)
	return &CartesiaProvider{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the provider identifier.
func (c *CartesiaProvider) Name() string {
	return "cartesia"
}

type cartesiaVoiceSpec struct {
	Mode string `json:"mode"`
	ID   string `json:"id"`
}

type cartesiaOutputFormat struct {
	Container  string `json:"container"`
	Encoding   string `json:"encoding,omitempty"`
	SampleRate int    `json:"sample_rate"`
	BitRate    int    `json:"bit_rate,omitempty"`
}

type cartesiaTTSRequest struct {
	ModelID      string               `json:"model_id"`
	Transcript   string               `json:"transcript"`
	Voice        cartesiaVoiceSpec    `json:"voice"`
	OutputFormat cartesiaOutputFormat `json:"output_format"`
	Language     string               `json:"language,omitempty"`
	Speed        float64              `json:"speed,omitempty"`
}

// Synthesize converts text to audio via the bytes endpoint.
func (c *CartesiaProvider) Synthesize(ctx context.Context, text string, opts SynthesizeOptions) (*Synthesis, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("cartesia: api key is required")
	}
	if strings.TrimSpace(opts.Voice) == "" {
		return nil, fmt.Errorf("cartesia: voice id is required")
	}

	reqBody := cartesiaTTSRequest{
		ModelID:      "sonic-2",
		Transcript:   text,
		Voice:        cartesiaVoiceSpec{Mode: "id", ID: opts.Voice},
		OutputFormat: c.buildOutputFormat(opts),
		Language:     opts.Language,
		Speed:        opts.Speed,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("cartesia: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tts/bytes", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cartesia: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Cartesia-Version", cartesiaVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cartesia: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("cartesia: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cartesia: read audio: %w", err)
	}
	return &Synthesis{Audio: audio, Format: getFormat(opts.Format)}, nil
}

// SynthesizeStream satisfies the Provider interface by chunking the
// buffered synthesis result.
func (c *CartesiaProvider) SynthesizeStream(ctx context.Context, text string, opts SynthesizeOptions) (*SynthesisStream, error) {
	synthesis, err := c.Synthesize(ctx, text, opts)
	if err != nil {
		return nil, err
	}

	stream := NewSynthesisStream()
	go func() {
		defer stream.FinishSending()
		const chunkSize = 8192
		audio := synthesis.Audio
		for len(audio) > 0 {
			n := chunkSize
			if n > len(audio) {
				n = len(audio)
			}
			if !stream.Send(audio[:n]) {
				return
			}
			audio = audio[n:]
		}
	}()
	return stream, nil
}

func (c *CartesiaProvider) buildOutputFormat(opts SynthesizeOptions) cartesiaOutputFormat {
	if getFormat(opts.Format) == "mp3" {
		return cartesiaOutputFormat{Container: "mp3", SampleRate: 44100, BitRate: 128000}
	}
	return cartesiaOutputFormat{
		Container:  "raw",
		Encoding:   "pcm_s16le",
		SampleRate: getSampleRate(opts.SampleRate),
	}
}
