// Package provider builds the capability providers a job is scored with.
package provider

import (
	"sync"
	"time"

	"github.com/bnema/vidqa/internal/adapter/provider/inference"
	"github.com/bnema/vidqa/internal/adapter/provider/pcm"
	"github.com/bnema/vidqa/internal/adapter/provider/unavailable"
	"github.com/bnema/vidqa/internal/adapter/provider/whisper"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
)

type Config struct {
	InferenceURL    string
	WhisperURL      string
	WhisperAPIKey   string
	WhisperModel    string
	WhisperLanguage string
	Timeout         time.Duration
	FrameMaxWidth   uint
}

// Registry builds providers on first use and hands out the same set for the
// lifetime of the process.
type Registry struct {
	cfg       Config
	once      sync.Once
	providers port.Providers
}

func NewRegistry(cfg Config) *Registry {
	return &Registry{cfg: cfg}
}

func (r *Registry) Providers() port.Providers {
	r.once.Do(func() {
		r.providers = build(r.cfg)
	})
	return r.providers
}

func build(cfg Config) port.Providers {
	fallback := unavailable.New()
	p := port.Providers{
		Faces:        fallback,
		Watermarks:   fallback,
		Content:      fallback,
		Transcriber:  fallback,
		AudioQuality: pcm.NewAnalyzer(),
	}

	if cfg.InferenceURL != "" {
		client := inference.NewClient(cfg.InferenceURL, cfg.Timeout, cfg.FrameMaxWidth)
		p.Faces = client
		p.Watermarks = client
		p.Content = client
		logger.Info.Printf("Vision providers: inference sidecar at %s", cfg.InferenceURL)
	} else {
		logger.Warn.Printf("No inference URL configured, face/watermark/richness scores will be neutral")
	}

	if cfg.WhisperURL != "" {
		// transcription of a long track takes far longer than a frame call
		timeout := cfg.Timeout * 10
		p.Transcriber = whisper.NewClient(cfg.WhisperURL, cfg.WhisperAPIKey, cfg.WhisperModel, cfg.WhisperLanguage, timeout)
		logger.Info.Printf("Transcription provider: %s", cfg.WhisperURL)
	} else {
		logger.Warn.Printf("No transcription URL configured, transcripts will be empty")
	}

	return p
}
