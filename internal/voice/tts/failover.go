package tts

import (
	"context"
	"errors"
	"fmt"

	"estatevoice-backend/internal/logger"
)

// FailoverProvider tries each backend in order and returns the first
// success. A primary vendor outage degrades to the fallback instead of
// failing the caller's request.
type FailoverProvider struct {
	providers []Provider
	log       *logger.Logger
}

// NewFailover chains providers in priority order.
func NewFailover(providers ...Provider) *FailoverProvider {
	return &FailoverProvider{
		providers: providers,
		log:       logger.New().WithField("component", "tts"),
	}
}

// Name returns the provider identifier.
func (f *FailoverProvider) Name() string {
	return "failover"
}

// Synthesize tries each provider in order.
func (f *FailoverProvider) Synthesize(ctx context.Context, text string, opts SynthesizeOptions) (*Synthesis, error) {
	var errs []error
	for _, p := range f.providers {
		synthesis, err := p.Synthesize(ctx, text, opts)
		if err == nil {
			return synthesis, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.log.WithField("provider", p.Name()).Warnf("synthesis failed, trying next provider: %v", err)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	if len(errs) == 0 {
		return nil, errors.New("tts: no providers configured")
	}
	return nil, errors.Join(errs...)
}

// SynthesizeStream tries each provider in order. Only dial/setup errors
// fail over; once a stream is handed out, its errors belong to the caller.
func (f *FailoverProvider) SynthesizeStream(ctx context.Context, text string, opts SynthesizeOptions) (*SynthesisStream, error) {
	var errs []error
	for _, p := range f.providers {
		stream, err := p.SynthesizeStream(ctx, text, opts)
		if err == nil {
			return stream, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.log.WithField("provider", p.Name()).Warnf("stream setup failed, trying next provider: %v", err)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	if len(errs) == 0 {
		return nil, errors.New("tts: no providers configured")
	}
	return nil, errors.Join(errs...)
}
