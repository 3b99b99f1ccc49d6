// Package unavailable provides stand-in capability providers used when no
// backend is configured. Every call fails with a unit-level ProviderError so
// jobs still complete with neutral scores.
package unavailable

import (
	"context"
	"errors"
	"image"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port"
)

var ErrNotConfigured = errors.New("provider not configured")

type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (p *Provider) DetectFaces(context.Context, image.Image) (int, error) {
	return 0, domain.NewProviderError(domain.CapabilityFace, ErrNotConfigured)
}

func (p *Provider) DetectWatermark(context.Context, image.Image) (bool, *string, error) {
	return false, nil, domain.NewProviderError(domain.CapabilityWatermark, ErrNotConfigured)
}

func (p *Provider) ScoreContent(context.Context, image.Image) (float64, error) {
	return 0, domain.NewProviderError(domain.CapabilityContent, ErrNotConfigured)
}

func (p *Provider) Transcribe(context.Context, string) (*domain.Transcription, error) {
	return nil, domain.NewProviderError(domain.CapabilityTranscribe, ErrNotConfigured)
}

func (p *Provider) AnalyzeAudio(context.Context, string) (*domain.AudioQuality, error) {
	return nil, domain.NewProviderError(domain.CapabilityAudioQuality, ErrNotConfigured)
}

var (
	_ port.FaceDetector         = (*Provider)(nil)
	_ port.WatermarkDetector    = (*Provider)(nil)
	_ port.ContentScorer        = (*Provider)(nil)
	_ port.Transcriber          = (*Provider)(nil)
	_ port.AudioQualityAnalyzer = (*Provider)(nil)
)
