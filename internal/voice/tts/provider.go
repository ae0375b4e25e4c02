// Package tts wraps the text-to-speech vendors behind one Provider
// interface so callers never depend on a specific backend.
package tts

import (
	"context"
	"errors"
	"sync"
)

// Provider is the interface for text-to-speech backends.
type Provider interface {
	// Name returns the provider identifier ("elevenlabs", "cartesia").
	Name() string

	// Synthesize converts text to a complete audio buffer.
	Synthesize(ctx context.Context, text string, opts SynthesizeOptions) (*Synthesis, error)

	// SynthesizeStream converts text to streaming audio chunks.
	SynthesizeStream(ctx context.Context, text string, opts SynthesizeOptions) (*SynthesisStream, error)
}

// SynthesizeOptions configures synthesis.
type SynthesizeOptions struct {
	Voice      string  // Vendor voice identifier
	Language   string  // Language code
	Speed      float64 // Speed multiplier (0.6-1.5, default 1.0)
	Format     string  // Output format: "mp3" or "pcm"
	SampleRate int     // Sample rate, default 24000
}

// Synthesis is the result of a blocking synthesis call.
type Synthesis struct {
	Audio  []byte
	Format string
}

// ErrStreamClosed is returned when pushing to a closed stream.
var ErrStreamClosed = errors.New("tts: synthesis stream closed")

// SynthesisStream delivers audio chunks as the vendor produces them.
type SynthesisStream struct {
	chunks     chan []byte
	err        error
	done       chan struct{}
	doneOnce   sync.Once
	finishOnce sync.Once
}

// NewSynthesisStream creates an empty stream for a provider to fill.
func NewSynthesisStream() *SynthesisStream {
	return &SynthesisStream{
		chunks: make(chan []byte, 64),
		done:   make(chan struct{}),
	}
}

// Chunks returns the channel of audio chunks. It is closed when the
// vendor finishes or fails; check Err afterwards.
func (s *SynthesisStream) Chunks() <-chan []byte {
	return s.chunks
}

// Err blocks until the vendor finishes sending (or the stream is
// closed) and returns the terminal error, if any.
func (s *SynthesisStream) Err() error {
	<-s.done
	return s.err
}

// Close releases the stream. Safe to call more than once.
func (s *SynthesisStream) Close() error {
	s.doneOnce.Do(func() {
		close(s.done)
	})
	return nil
}

// SetError records the terminal error. Must be called before
// FinishSending. Provider-internal.
func (s *SynthesisStream) SetError(err error) {
	s.err = err
}

// Send pushes a chunk. Returns false once the stream is closed.
func (s *SynthesisStream) Send(chunk []byte) bool {
	select {
	case s.chunks <- chunk:
		return true
	case <-s.done:
		return false
	}
}

// FinishSending closes the chunk channel and unblocks Err.
func (s *SynthesisStream) FinishSending() {
	s.finishOnce.Do(func() {
		close(s.chunks)
	})
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

func getFormat(format string) string {
	if format == "" {
		return "pcm"
	}
	return format
}

func getSampleRate(rate int) int {
	if rate == 0 {
		return 24000
	}
	return rate
}
